package config

import (
	"time"

	"fruit_trio/internal/model"

	"github.com/joho/godotenv"
)

func Load(path string) error {
	err := godotenv.Load(path)
	if err != nil {
		return err
	}
	return nil
}

type GameConfig interface {
	Catalog() []model.WeightedSymbol
	Rules() model.Rules
	Timing() model.Timing
	Assets() model.Assets
}

type HTTPConfig interface {
	Address() string
}

type SessionConfig interface {
	SecretKey() []byte
	TokenDuration() time.Duration
	// IdleTTL Через сколько простоя стол сессии выбрасывается из памяти
	IdleTTL() time.Duration
}

type LogConfig interface {
	Level() string
	File() string
	Development() bool
}
