package env

import (
	"errors"
	"fmt"
	"os"
	"time"

	"fruit_trio/internal/config"
)

const (
	sessionSecretEnvName   = "SESSION_SECRET"
	sessionDurationEnvName = "SESSION_DURATION"
	sessionIdleTTLEnvName  = "SESSION_IDLE_TTL"

	defaultSessionDuration = 24 * time.Hour
	defaultSessionIdleTTL  = 30 * time.Minute
)

type sessionConfig struct {
	secretKey     string
	tokenDuration time.Duration
	idleTTL       time.Duration
}

func NewSessionConfig() (config.SessionConfig, error) {
	secret := os.Getenv(sessionSecretEnvName)
	if len(secret) == 0 {
		return nil, errors.New("session secret key not found")
	}

	duration := defaultSessionDuration
	if raw := os.Getenv(sessionDurationEnvName); len(raw) != 0 {
		parsed, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid session duration: %w", err)
		}
		duration = parsed
	}

	idleTTL := defaultSessionIdleTTL
	if raw := os.Getenv(sessionIdleTTLEnvName); len(raw) != 0 {
		parsed, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid session idle ttl: %w", err)
		}
		idleTTL = parsed
	}

	return &sessionConfig{
		secretKey:     secret,
		tokenDuration: duration,
		idleTTL:       idleTTL,
	}, nil
}

func (s *sessionConfig) SecretKey() []byte {
	return []byte(s.secretKey)
}

func (s *sessionConfig) TokenDuration() time.Duration {
	return s.tokenDuration
}

func (s *sessionConfig) IdleTTL() time.Duration {
	return s.idleTTL
}
