package presenter

import (
	"time"

	"fruit_trio/internal/model"

	"github.com/shopspring/decimal"
)

// Headless Слой отображения без зрителя: переход завершается по таймеру через duration
type Headless struct{}

func (Headless) Transition(_ int, _ []model.Symbol, _ int, duration time.Duration) <-chan struct{} {
	done := make(chan struct{})
	time.AfterFunc(duration, func() { close(done) })
	return done
}

func (Headless) SetReelState(int, model.ReelState) {}
func (Headless) RenderCells(int, model.Triple) {}
func (Headless) SetHighlight(int, int, bool) {}
func (Headless) ClearHighlights() {}
func (Headless) UpdateHUD(decimal.Decimal, decimal.Decimal) {}
func (Headless) CloseOverlay() {}

func (Headless) OpenOverlay(string) error {
	return model.ErrNoViewer
}
