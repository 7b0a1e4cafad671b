package main

import (
	"github.com/tolvmar/chestwarden/internal/config"
	"github.com/tolvmar/chestwarden/internal/handler"
	"github.com/tolvmar/chestwarden/internal/logger"
)

const serviceName = "chestwarden"

// initLogger initializes the logger using centralized app configuration
func initLogger(cfg *config.Config) {
	// Source info only in development
	addSource := cfg.Environment == "development"

	loggerConfig := logger.NewConfig(
		cfg.LogLevel,
		cfg.LogFormat,
		serviceName,
		handler.Version,
		cfg.Environment,
		addSource,
	)

	logger.InitLogger(loggerConfig)
}
