package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/gezerm85/GymPara-Backend/models"
)

type Config struct {
	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string
	JWTSecret  string
	Port       string
	UploadDir  string
}

// Load reads .env (when present) and the environment into a Config.
func Load() (*Config, error) {
	// .env is optional in deployed environments
	_ = godotenv.Load()

	cfg := &Config{
		DBHost:     os.Getenv("DB_HOST"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     os.Getenv("DB_NAME"),
		DBPort:     getenvDefault("DB_PORT", "5432"),
		JWTSecret:  os.Getenv("JWT_SECRET"),
		Port:       getenvDefault("PORT", "5000"),
		UploadDir:  getenvDefault("UPLOAD_DIR", "uploads"),
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is not set")
	}
	return cfg, nil
}

// ConnectDB opens the Postgres connection and runs migrations. The returned
// handle is passed to every service explicitly; there is no package-level DB.
func ConnectDB(cfg *Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		cfg.DBHost,
		cfg.DBUser,
		cfg.DBPassword,
		cfg.DBName,
		cfg.DBPort,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate runs AutoMigrate for every model. Exposed so tests can reuse it
// against their own database handle.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.UserProfile{},
		&models.ExerciseCategory{},
		&models.Exercise{},
		&models.Reward{},
		&models.CarouselItem{},
		&models.Slider{},
		&models.WorkoutLog{},
		&models.WorkoutBodyPart{},
		&models.WorkoutSupplement{},
	)
	if err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
