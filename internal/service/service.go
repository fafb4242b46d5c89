package service

import (
	"context"

	"fruit_trio/internal/model"
	"fruit_trio/internal/presenter"
	"fruit_trio/internal/presenter/ws"
)

type SlotService interface {
	presenter.Listener

	Spin(ctx context.Context) (*model.SpinOutcome, error)
	IncreaseBet() (model.SessionState, error)
	DecreaseBet() (model.SessionState, error)
	Reset() model.SessionState
	CloseOverlay()
	State() model.SessionState
	Reels() [model.ReelCount]model.Reel
	// Redraw Повторно отправляет HUD, барабаны и подсветку, например новому зрителю
	Redraw()
}

type LobbyService interface {
	// Table Стол сессии, создаётся при первом обращении
	Table(ctx context.Context, sessionID string) *Table
	// Sweep Удаляет простаивающие столы, возвращает сколько удалено
	Sweep(ctx context.Context) int
}

// Table Игровой автомат сессии и его слой отображения
type Table struct {
	Slot SlotService
	View *ws.Hub
}

// Busy Стол нельзя выбрасывать, пока крутятся барабаны или смотрит зритель
func (t *Table) Busy() bool {
	return t.Slot.State().Spinning || t.View.Connected() > 0
}
