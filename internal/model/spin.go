package model

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	// Барабаны
	ReelCount = 3
	// Видимые строки барабана (верх, середина, низ)
	RowCount = 3
)

const (
	RowTop = iota
	RowMid
	RowBottom
)

// Triple Видимые символы одного барабана [верх, середина, низ]
type Triple [RowCount]Symbol

// SpinResult Итог спина: по тройке символов на каждый барабан
type SpinResult [ReelCount]Triple

// Pace Параметры анимации одного барабана
type Pace struct {
	Duration time.Duration
	Extra    int
}

// SpinOutcome То, что видит клиент после завершения спина
type SpinOutcome struct {
	Result    SpinResult
	ForcedWin bool
	Bet       decimal.Decimal
	Payout    decimal.Decimal
	Balance   decimal.Decimal
	// Highlighted Подсвеченные ячейки [барабан][строка]
	Highlighted [ReelCount][RowCount]bool
}
