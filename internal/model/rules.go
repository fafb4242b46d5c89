package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Rules Денежные правила сессии
type Rules struct {
	StartingBalance decimal.Decimal
	MinBet          decimal.Decimal
	MaxBet          decimal.Decimal
	DefaultBet      decimal.Decimal
	BetStep         decimal.Decimal
	ForcedWinBonus  decimal.Decimal
}

// Timing Тайминги анимации
type Timing struct {
	Paces          [ReelCount]Pace
	SettleDelay    time.Duration
	HighlightDelay time.Duration
	// AnimationTimeout 0 - ждать сигнал завершения перехода бесконечно
	AnimationTimeout time.Duration
}

// Assets Ресурсы для слоя отображения
type Assets struct {
	SymbolDir string
	SymbolExt string
	WinVideo  string
}

func DefaultRules() Rules {
	return Rules{
		StartingBalance: decimal.NewFromInt(1000),
		MinBet:          decimal.NewFromInt(1),
		MaxBet:          decimal.NewFromInt(50),
		DefaultBet:      decimal.NewFromInt(1),
		BetStep:         decimal.NewFromInt(1),
		ForcedWinBonus:  decimal.NewFromInt(50),
	}
}

// DefaultTiming Барабаны стартуют вместе и останавливаются каскадом: 900/1100/1300 мс
func DefaultTiming() Timing {
	return Timing{
		Paces: [ReelCount]Pace{
			{Duration: 900 * time.Millisecond, Extra: 12},
			{Duration: 1100 * time.Millisecond, Extra: 14},
			{Duration: 1300 * time.Millisecond, Extra: 16},
		},
		SettleDelay:    180 * time.Millisecond,
		HighlightDelay: 500 * time.Millisecond,
	}
}

func DefaultAssets() Assets {
	return Assets{
		SymbolDir: "assets/symbols",
		SymbolExt: ".png",
		WinVideo:  "assets/ui/win/win.mp4",
	}
}

// SymbolImage Путь к картинке символа, ключ - имя символа
func (a Assets) SymbolImage(s Symbol) string {
	return a.SymbolDir + "/" + string(s) + a.SymbolExt
}
