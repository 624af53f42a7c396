package main

import (
	"cinevault-backend/config"
	"cinevault-backend/database"
	"cinevault-backend/logging"
	"cinevault-backend/server"

	"github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("invalid configuration")
	}

	log, closer, err := logging.New(cfg.LogLevel, cfg.LogFormat, cfg.LogFile)
	if err != nil {
		logrus.WithError(err).Fatal("logging failed")
	}
	defer closer.Close()
	log.WithField("environment", cfg.Env).Info("Starting CineVault API")

	db, err := database.Connect(cfg, log)
	if err != nil {
		log.WithError(err).Fatal("Could not connect to database")
	}
	if err := database.Migrate(db); err != nil {
		log.WithError(err).Fatal("Could not migrate database")
	}

	app := server.New(cfg, db, log)

	log.WithField("port", cfg.Port).Info("API server listening")
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.WithError(err).Fatal("server stopped")
	}
}
