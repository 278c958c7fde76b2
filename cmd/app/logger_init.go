package main

import (
	"github.com/Vcvzgbzz/goodieBag/internal/config"
	"github.com/Vcvzgbzz/goodieBag/internal/logger"
)

// initLogger initializes the logger using centralized app configuration
func initLogger(cfg *config.Config) {
	// Source info only in dev, it is noise in production JSON logs
	addSource := cfg.Environment == logger.EnvironmentDev || cfg.Environment == "development"

	loggerConfig := logger.NewConfig(
		cfg.LogLevel,
		cfg.LogFormat,
		cfg.ServiceName,
		cfg.Version,
		cfg.Environment,
		addSource,
	)

	logger.InitLogger(loggerConfig)
}
