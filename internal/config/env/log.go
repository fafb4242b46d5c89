package env

import (
	"fmt"
	"os"
	"strings"

	"fruit_trio/internal/config"
)

const (
	logLevelEnvName = "LOG_LEVEL"
	logFileEnvName  = "LOG_FILE"
	logDevEnvName   = "LOG_DEV"
)

type logConfig struct {
	level string
	file  string
	dev   bool
}

func NewLogConfig() (config.LogConfig, error) {
	level := strings.ToLower(os.Getenv(logLevelEnvName))
	switch level {
	case "":
		level = "info"
	case "debug", "info", "warn", "error":
	default:
		return nil, fmt.Errorf("invalid log level %q", level)
	}

	return &logConfig{
		level: level,
		file:  os.Getenv(logFileEnvName),
		dev:   os.Getenv(logDevEnvName) == "true",
	}, nil
}

func (cfg *logConfig) Level() string {
	return cfg.level
}

func (cfg *logConfig) File() string {
	return cfg.file
}

func (cfg *logConfig) Development() bool {
	return cfg.dev
}
