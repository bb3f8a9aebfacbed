package services

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/gezerm85/GymPara-Backend/config"
	"github.com/gezerm85/GymPara-Backend/models"
)

// newTestDB opens an isolated in-memory database with the full schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, config.Migrate(db))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()

	user := &models.User{Name: "Test User", Email: email, Password: "hashed"}
	require.NoError(t, db.Create(user).Error)
	return user
}

func sampleRequest() WorkoutRequest {
	rating := 4
	return WorkoutRequest{
		ActivityID:    "running",
		ActivityTitle: "Morning Run",
		Duration:      30,
		Unit:          "minutes",
		Rating:        &rating,
		Note:          "easy pace",
		BodyParts: []BodyPartRequest{
			{ID: "legs", Name: "Leg", Icon: "leg-icon", Color: "#ff0000"},
			{ID: "back", Name: "Back", Icon: "back-icon", Color: "#00ff00"},
			{ID: "core", Name: "Core", Icon: "core-icon", Color: "#0000ff"},
		},
		Supplements: &SupplementsRequest{
			Creatine: &SupplementDose{Amount: 5, Unit: "g"},
			Protein:  &SupplementDose{Amount: 30, Unit: "g"},
		},
	}
}

func countRows(t *testing.T, db *gorm.DB, model any, query string, args ...any) int64 {
	t.Helper()

	var n int64
	require.NoError(t, db.Model(model).Where(query, args...).Count(&n).Error)
	return n
}

func TestLogWorkoutPersistsAllRows(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "runner@example.com")
	svc := NewWorkoutService(db)

	require.NoError(t, svc.LogWorkout(user.ID, sampleRequest()))

	var log models.WorkoutLog
	require.NoError(t, db.Where("user_id = ?", user.ID).First(&log).Error)
	assert.Equal(t, "running", log.ActivityID)
	assert.Equal(t, "Morning Run", log.ActivityTitle)
	require.NotNil(t, log.Rating)
	assert.Equal(t, 4, *log.Rating)

	assert.EqualValues(t, 1, countRows(t, db, &models.WorkoutLog{}, "user_id = ?", user.ID))
	assert.EqualValues(t, 3, countRows(t, db, &models.WorkoutBodyPart{}, "workout_log_id = ?", log.ID))
	assert.EqualValues(t, 2, countRows(t, db, &models.WorkoutSupplement{}, "workout_log_id = ?", log.ID))
}

func TestLogWorkoutRollsBackOnChildFailure(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "runner@example.com")
	svc := NewWorkoutService(db)

	// Force the second body-part insert to fail mid-transaction.
	inserts := 0
	injected := errors.New("injected body part failure")
	err := db.Callback().Create().Before("gorm:create").Register("fail_second_body_part", func(tx *gorm.DB) {
		if tx.Statement.Table == "workout_body_parts" {
			inserts++
			if inserts == 2 {
				tx.AddError(injected)
			}
		}
	})
	require.NoError(t, err)

	err = svc.LogWorkout(user.ID, sampleRequest())
	require.Error(t, err)
	assert.ErrorIs(t, err, injected)

	// Nothing may remain visible across any of the three tables.
	assert.EqualValues(t, 0, countRows(t, db, &models.WorkoutLog{}, "user_id = ?", user.ID))
	assert.EqualValues(t, 0, countRows(t, db, &models.WorkoutBodyPart{}, "1 = 1"))
	assert.EqualValues(t, 0, countRows(t, db, &models.WorkoutSupplement{}, "1 = 1"))
}

func TestLogWorkoutEmptyBodyPartsIsValid(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "runner@example.com")
	svc := NewWorkoutService(db)

	req := sampleRequest()
	req.BodyParts = nil
	req.Supplements = nil

	require.NoError(t, svc.LogWorkout(user.ID, req))

	assert.EqualValues(t, 1, countRows(t, db, &models.WorkoutLog{}, "user_id = ?", user.ID))
	assert.EqualValues(t, 0, countRows(t, db, &models.WorkoutBodyPart{}, "1 = 1"))
	assert.EqualValues(t, 0, countRows(t, db, &models.WorkoutSupplement{}, "1 = 1"))
}

func TestLogWorkoutSupplementKeyIsolation(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "runner@example.com")
	svc := NewWorkoutService(db)

	req := sampleRequest()
	req.BodyParts = nil
	req.Supplements = &SupplementsRequest{Protein: &SupplementDose{Amount: 25, Unit: "g"}}
	require.NoError(t, svc.LogWorkout(user.ID, req))

	assert.EqualValues(t, 1, countRows(t, db, &models.WorkoutSupplement{}, "type = ?", models.SupplementProtein))
	assert.EqualValues(t, 0, countRows(t, db, &models.WorkoutSupplement{}, "type = ?", models.SupplementCreatine))

	req.Supplements = &SupplementsRequest{Creatine: &SupplementDose{Amount: 5, Unit: "g"}}
	require.NoError(t, svc.LogWorkout(user.ID, req))

	assert.EqualValues(t, 1, countRows(t, db, &models.WorkoutSupplement{}, "type = ?", models.SupplementCreatine))
}

func TestLogWorkoutHonorsCallerTimestamp(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "runner@example.com")
	svc := NewWorkoutService(db)

	at := time.Date(2025, 3, 1, 7, 30, 0, 0, time.UTC)
	req := sampleRequest()
	req.BodyParts = nil
	req.Supplements = nil
	req.CreatedAt = &at

	require.NoError(t, svc.LogWorkout(user.ID, req))

	var log models.WorkoutLog
	require.NoError(t, db.Where("user_id = ?", user.ID).First(&log).Error)
	assert.True(t, log.CreatedAt.Equal(at), "expected %s, got %s", at, log.CreatedAt)
}

func TestListWorkoutsCollapsesDuplicateBodyParts(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "runner@example.com")
	svc := NewWorkoutService(db)

	req := sampleRequest()
	req.Supplements = nil
	req.BodyParts = []BodyPartRequest{
		{ID: "legs", Name: "Leg"},
		{ID: "legs2", Name: "Leg"},
		{ID: "back", Name: "Back"},
	}
	require.NoError(t, svc.LogWorkout(user.ID, req))

	views, err := svc.ListWorkouts(user.ID)
	require.NoError(t, err)
	require.Len(t, views, 1, "fan-out must not duplicate the parent row")
	assert.ElementsMatch(t, []string{"Leg", "Back"}, views[0].BodyParts)
}

func TestListWorkoutsNewestFirst(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "runner@example.com")
	svc := NewWorkoutService(db)

	t1 := time.Date(2025, 3, 1, 7, 0, 0, 0, time.UTC)
	t2 := time.Date(2025, 3, 2, 7, 0, 0, 0, time.UTC)

	first := sampleRequest()
	first.ActivityTitle = "Old Run"
	first.BodyParts, first.Supplements = nil, nil
	first.CreatedAt = &t1
	require.NoError(t, svc.LogWorkout(user.ID, first))

	second := sampleRequest()
	second.ActivityTitle = "New Run"
	second.BodyParts, second.Supplements = nil, nil
	second.CreatedAt = &t2
	require.NoError(t, svc.LogWorkout(user.ID, second))

	views, err := svc.ListWorkouts(user.ID)
	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, "New Run", views[0].ActivityTitle)
	assert.Equal(t, "Old Run", views[1].ActivityTitle)
}

func TestListWorkoutsIsolatesUsers(t *testing.T) {
	db := newTestDB(t)
	alice := seedUser(t, db, "alice@example.com")
	bob := seedUser(t, db, "bob@example.com")
	svc := NewWorkoutService(db)

	require.NoError(t, svc.LogWorkout(alice.ID, sampleRequest()))

	bobReq := sampleRequest()
	bobReq.ActivityTitle = "Bob's Lift"
	require.NoError(t, svc.LogWorkout(bob.ID, bobReq))

	views, err := svc.ListWorkouts(alice.ID)
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, "Morning Run", views[0].ActivityTitle)
}

func TestListWorkoutsEmptySetsAreNeverNull(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "runner@example.com")
	svc := NewWorkoutService(db)

	req := sampleRequest()
	req.BodyParts = nil
	req.Supplements = nil
	require.NoError(t, svc.LogWorkout(user.ID, req))

	views, err := svc.ListWorkouts(user.ID)
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.NotNil(t, views[0].BodyParts)
	assert.NotNil(t, views[0].Supplements)
	assert.Empty(t, views[0].BodyParts)
	assert.Empty(t, views[0].Supplements)
}
