package main

import (
	"github.com/sirupsen/logrus"

	"github.com/gezerm85/GymPara-Backend/config"
	"github.com/gezerm85/GymPara-Backend/routes"
	"github.com/gezerm85/GymPara-Backend/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("failed to load configuration")
	}

	db, err := config.ConnectDB(cfg)
	if err != nil {
		logrus.WithError(err).Fatal("failed to connect to database")
	}

	hub := services.NewRealtimeHub()

	r := routes.SetupRouter(db, cfg, hub)
	logrus.WithField("port", cfg.Port).Info("server listening")
	if err := r.Run(":" + cfg.Port); err != nil {
		logrus.WithError(err).Fatal("server stopped")
	}
}
