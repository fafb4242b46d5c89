package env

import (
	"errors"
	"fmt"
	"os"
	"time"

	"fruit_trio/internal/config"
	"fruit_trio/internal/model"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

const gameConfigEnvName = "GAME_CONFIG"

type symbolYAML struct {
	Name   string `yaml:"name"`
	Weight int    `yaml:"weight"`
}

type paceYAML struct {
	Duration string `yaml:"duration"`
	Extra    int    `yaml:"extra"`
}

type rulesYAML struct {
	StartingBalance string `yaml:"starting_balance"`
	MinBet          string `yaml:"min_bet"`
	MaxBet          string `yaml:"max_bet"`
	DefaultBet      string `yaml:"default_bet"`
	BetStep         string `yaml:"bet_step"`
	ForcedWinBonus  string `yaml:"forced_win_bonus"`
}

type assetsYAML struct {
	SymbolDir string `yaml:"symbol_dir"`
	SymbolExt string `yaml:"symbol_ext"`
	WinVideo  string `yaml:"win_video"`
}

type gameYAML struct {
	Symbols          []symbolYAML `yaml:"symbols"`
	Reels            []paceYAML   `yaml:"reels"`
	SettleDelay      string       `yaml:"settle_delay"`
	HighlightDelay   string       `yaml:"highlight_delay"`
	AnimationTimeout string       `yaml:"animation_timeout"`
	Rules            rulesYAML    `yaml:"rules"`
	Assets           assetsYAML   `yaml:"assets"`
}

type gameConfig struct {
	catalog []model.WeightedSymbol
	rules   model.Rules
	timing  model.Timing
	assets  model.Assets
}

// NewGameConfig Конфиг игры со стандартными значениями
func NewGameConfig() config.GameConfig {
	return &gameConfig{
		catalog: model.DefaultCatalog(),
		rules:   model.DefaultRules(),
		timing:  model.DefaultTiming(),
		assets:  model.DefaultAssets(),
	}
}

// NewGameConfigFromEnv Читает YAML по пути из GAME_CONFIG, без переменной - стандартный конфиг
func NewGameConfigFromEnv() (config.GameConfig, error) {
	path := os.Getenv(gameConfigEnvName)
	if len(path) == 0 {
		return NewGameConfig(), nil
	}
	return NewGameConfigFromYAML(path)
}

// NewGameConfigFromYAML Читает конфиг игры из YAML файла.
// Незаданные поля берутся из стандартного конфига.
func NewGameConfigFromYAML(path string) (config.GameConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read game config: %w", err)
	}
	return ParseGameConfig(data)
}

func ParseGameConfig(data []byte) (config.GameConfig, error) {
	var raw gameYAML
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse game config: %w", err)
	}

	cfg := &gameConfig{
		catalog: model.DefaultCatalog(),
		rules:   model.DefaultRules(),
		timing:  model.DefaultTiming(),
		assets:  model.DefaultAssets(),
	}

	// Символы
	if len(raw.Symbols) > 0 {
		catalog := make([]model.WeightedSymbol, 0, len(raw.Symbols))
		for _, s := range raw.Symbols {
			if s.Name == "" {
				return nil, errors.New("symbol name is empty")
			}
			if s.Weight <= 0 {
				return nil, fmt.Errorf("symbol %s: weight must be positive", s.Name)
			}
			catalog = append(catalog, model.WeightedSymbol{Symbol: model.Symbol(s.Name), Weight: s.Weight})
		}
		cfg.catalog = catalog
	}

	// Барабаны
	if len(raw.Reels) > 0 {
		if len(raw.Reels) != model.ReelCount {
			return nil, fmt.Errorf("expected %d reels, got %d", model.ReelCount, len(raw.Reels))
		}
		for i, r := range raw.Reels {
			d, err := parseDuration(r.Duration, cfg.timing.Paces[i].Duration)
			if err != nil {
				return nil, fmt.Errorf("reel %d: %w", i+1, err)
			}
			if r.Extra < 0 {
				return nil, fmt.Errorf("reel %d: extra must not be negative", i+1)
			}
			cfg.timing.Paces[i] = model.Pace{Duration: d, Extra: r.Extra}
		}
	}

	var err error
	if cfg.timing.SettleDelay, err = parseDuration(raw.SettleDelay, cfg.timing.SettleDelay); err != nil {
		return nil, fmt.Errorf("settle_delay: %w", err)
	}
	if cfg.timing.HighlightDelay, err = parseDuration(raw.HighlightDelay, cfg.timing.HighlightDelay); err != nil {
		return nil, fmt.Errorf("highlight_delay: %w", err)
	}
	if cfg.timing.AnimationTimeout, err = parseDuration(raw.AnimationTimeout, cfg.timing.AnimationTimeout); err != nil {
		return nil, fmt.Errorf("animation_timeout: %w", err)
	}

	// Деньги
	fields := []struct {
		name string
		raw  string
		dst  *decimal.Decimal
	}{
		{"starting_balance", raw.Rules.StartingBalance, &cfg.rules.StartingBalance},
		{"min_bet", raw.Rules.MinBet, &cfg.rules.MinBet},
		{"max_bet", raw.Rules.MaxBet, &cfg.rules.MaxBet},
		{"default_bet", raw.Rules.DefaultBet, &cfg.rules.DefaultBet},
		{"bet_step", raw.Rules.BetStep, &cfg.rules.BetStep},
		{"forced_win_bonus", raw.Rules.ForcedWinBonus, &cfg.rules.ForcedWinBonus},
	}
	for _, f := range fields {
		if f.raw == "" {
			continue
		}
		v, err := decimal.NewFromString(f.raw)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", f.name, err)
		}
		if v.IsNegative() {
			return nil, fmt.Errorf("%s must not be negative", f.name)
		}
		*f.dst = v
	}
	if err := validateRules(cfg.rules); err != nil {
		return nil, err
	}

	if raw.Assets.SymbolDir != "" {
		cfg.assets.SymbolDir = raw.Assets.SymbolDir
	}
	if raw.Assets.SymbolExt != "" {
		cfg.assets.SymbolExt = raw.Assets.SymbolExt
	}
	if raw.Assets.WinVideo != "" {
		cfg.assets.WinVideo = raw.Assets.WinVideo
	}

	return cfg, nil
}

func validateRules(r model.Rules) error {
	if !r.MinBet.IsPositive() {
		return errors.New("min_bet must be positive")
	}
	if r.MaxBet.LessThan(r.MinBet) {
		return errors.New("max_bet must not be less than min_bet")
	}
	if r.DefaultBet.LessThan(r.MinBet) || r.DefaultBet.GreaterThan(r.MaxBet) {
		return errors.New("default_bet must be within [min_bet, max_bet]")
	}
	if !r.BetStep.IsPositive() {
		return errors.New("bet_step must be positive")
	}
	return nil
}

func parseDuration(raw string, fallback time.Duration) (time.Duration, error) {
	if raw == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, err
	}
	if d < 0 {
		return 0, errors.New("duration must not be negative")
	}
	return d, nil
}

func (g *gameConfig) Catalog() []model.WeightedSymbol {
	out := make([]model.WeightedSymbol, len(g.catalog))
	copy(out, g.catalog)
	return out
}

func (g *gameConfig) Rules() model.Rules {
	return g.rules
}

func (g *gameConfig) Timing() model.Timing {
	return g.timing
}

func (g *gameConfig) Assets() model.Assets {
	return g.assets
}
