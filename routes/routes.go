package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/gezerm85/GymPara-Backend/config"
	"github.com/gezerm85/GymPara-Backend/controllers"
	"github.com/gezerm85/GymPara-Backend/middlewares"
	"github.com/gezerm85/GymPara-Backend/services"
)

// SetupRouter builds the full API surface. Every service gets the database
// handle injected here; nothing reaches for process-wide state.
func SetupRouter(db *gorm.DB, cfg *config.Config, hub *services.RealtimeHub) *gin.Engine {
	r := gin.Default()

	authSvc := services.NewAuthService(db, cfg.JWTSecret)
	profileSvc := services.NewProfileService(db)
	userSvc := services.NewUserService(db, hub)
	exerciseSvc := services.NewExerciseService(db)
	rewardSvc := services.NewRewardService(db)
	carouselSvc := services.NewCarouselService(db)
	workoutSvc := services.NewWorkoutService(db)

	authCtl := controllers.NewAuthController(authSvc)
	profileCtl := controllers.NewProfileController(profileSvc)
	userCtl := controllers.NewUserController(userSvc, cfg.UploadDir)
	exerciseCtl := controllers.NewExerciseController(exerciseSvc)
	rewardCtl := controllers.NewRewardController(rewardSvc, cfg.UploadDir)
	carouselCtl := controllers.NewCarouselController(carouselSvc, cfg.UploadDir)
	workoutCtl := controllers.NewWorkoutController(workoutSvc)
	realtimeCtl := controllers.NewRealtimeController(hub)

	// uploaded images are served straight from disk
	r.Static("/uploads", cfg.UploadDir)

	api := r.Group("/api")

	auth := api.Group("/auth")
	{
		auth.POST("/register", authCtl.Register)
		auth.POST("/login", authCtl.Login)
		auth.POST("/logout", authCtl.Logout)
	}

	// Public catalog/content reads
	api.GET("/exercises", exerciseCtl.GetExercises)
	api.GET("/exercises/categories", exerciseCtl.GetCategories)
	api.GET("/rewards", rewardCtl.GetRewards)
	api.GET("/carousel", carouselCtl.GetCarousel)
	api.GET("/sliders", carouselCtl.GetSliders)

	protected := api.Group("")
	protected.Use(middlewares.AuthMiddleware(cfg.JWTSecret))
	{
		protected.GET("/profile", profileCtl.GetProfile)
		protected.POST("/profile", profileCtl.CreateProfile)
		protected.PUT("/profile", profileCtl.UpdateProfile)

		protected.GET("/users/me", userCtl.GetMe)
		protected.POST("/users/me/avatar", userCtl.UploadProfileImage)
		protected.PUT("/users/me/point", userCtl.UpdatePoint)
		protected.GET("/users/leaderboard", userCtl.GetLeaderboard)

		protected.POST("/exercises", exerciseCtl.CreateExercise)
		protected.POST("/exercises/categories", exerciseCtl.CreateCategory)
		protected.POST("/rewards", rewardCtl.CreateReward)
		protected.POST("/carousel", carouselCtl.CreateCarousel)
		protected.PUT("/carousel/:id", carouselCtl.UpdateCarousel)
		protected.DELETE("/carousel/:id", carouselCtl.DeleteCarousel)

		protected.GET("/workouts", workoutCtl.GetWorkouts)
		protected.POST("/workouts", workoutCtl.LogWorkout)

		protected.GET("/realtime/points", realtimeCtl.PointsWS)
	}

	return r
}
