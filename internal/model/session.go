package model

import "github.com/shopspring/decimal"

// SessionState Состояние игровой сессии
type SessionState struct {
	Balance     decimal.Decimal
	Bet         decimal.Decimal
	WinUsed     bool // Выигрыш первого спина уже выдан
	Spinning    bool
	OverlayOpen bool
}

// CanSpin Спин возможен, если барабаны стоят и хватает баланса на ставку
func (s SessionState) CanSpin() bool {
	return !s.Spinning && s.Balance.GreaterThanOrEqual(s.Bet)
}
