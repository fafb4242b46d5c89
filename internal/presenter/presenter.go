package presenter

import (
	"time"

	"fruit_trio/internal/model"

	"github.com/shopspring/decimal"
)

// Presenter Слой отображения: браузер рисует ленту, крутит CSS переход и видео
type Presenter interface {
	// Transition Рисует ленту в позиции 0 и анимирует её до смещения offset (в ячейках) за duration.
	// Канал закрывается, когда переход завершён.
	Transition(reel int, strip []model.Symbol, offset int, duration time.Duration) <-chan struct{}
	SetReelState(reel int, state model.ReelState)
	// RenderCells Заменяет содержимое барабана тремя ячейками и мгновенно сбрасывает позицию
	RenderCells(reel int, cells model.Triple)
	SetHighlight(reel, row int, on bool)
	ClearHighlights()
	UpdateHUD(balance, bet decimal.Decimal)
	// OpenOverlay Открывает видео поверх игры с начала
	OpenOverlay(video string) error
	CloseOverlay()
}

// Listener Сигналы, которые слой отображения отправляет обратно в игру
type Listener interface {
	OnVideoEnded()
	OnPlaybackFailed(reason string)
}
