package slot

import (
	"errors"
	"time"

	"fruit_trio/internal/metrics"
	"fruit_trio/internal/model"

	"go.uber.org/zap"
)

// Подсвечиваемые строки выигрыша первого спина
var winRows = []int{model.RowTop, model.RowMid}

// presentWin Начисление, подсветка бананов и оверлей с видео.
// Ничего не делает, если сессию сбросили, пока крутились барабаны.
func (s *serv) presentWin(epoch uint64, out *model.SpinOutcome) {
	reels := s.sequencer.Reels()

	s.mtx.Lock()
	if s.epoch != epoch {
		s.mtx.Unlock()
		return
	}
	s.state.Balance = s.state.Balance.Add(s.rules.ForcedWinBonus)
	state := s.state

	// Подсвечиваем только то, что реально отрисовано бананом
	for r := range reels {
		for _, row := range winRows {
			if reels[r].Cells[row] == model.Banana {
				s.highlighted[r][row] = true
			}
		}
	}
	out.Highlighted = s.highlighted
	s.mtx.Unlock()

	out.Payout = s.rules.ForcedWinBonus
	s.view.UpdateHUD(state.Balance, state.Bet)
	for r := range out.Highlighted {
		for row, on := range out.Highlighted[r] {
			if on {
				s.view.SetHighlight(r, row, true)
			}
		}
	}

	// Даём подсветке отрисоваться до оверлея
	if s.timing.HighlightDelay > 0 {
		t := time.NewTimer(s.timing.HighlightDelay)
		<-t.C
	}

	s.openOverlay(epoch)
}

func (s *serv) openOverlay(epoch uint64) {
	s.mtx.Lock()
	if s.epoch != epoch {
		s.mtx.Unlock()
		return
	}
	s.state.OverlayOpen = true
	s.mtx.Unlock()

	if err := s.view.OpenOverlay(s.assets.WinVideo); err != nil {
		reason := metrics.ReasonPlayback
		if errors.Is(err, model.ErrNoViewer) {
			reason = metrics.ReasonNoViewer
		}
		metrics.PresentationFailure(reason)
		s.log.Error("failed to open win overlay", zap.Error(err))
	}
}

// CloseOverlay Закрыть оверлей вручную
func (s *serv) CloseOverlay() {
	s.mtx.Lock()
	if !s.state.OverlayOpen {
		s.mtx.Unlock()
		return
	}
	s.state.OverlayOpen = false
	s.mtx.Unlock()

	s.view.CloseOverlay()
}

// OnVideoEnded Видео доиграло - оверлей закрывается сам
func (s *serv) OnVideoEnded() {
	s.CloseOverlay()
}

// OnPlaybackFailed Видео не запустилось. Выигрыш уже начислен и не откатывается
func (s *serv) OnPlaybackFailed(reason string) {
	metrics.PresentationFailure(metrics.ReasonPlayback)
	s.log.Error("win video playback failed", zap.String("reason", reason))
}
