package slot

import (
	"sync"

	"fruit_trio/internal/config"
	"fruit_trio/internal/model"
	"fruit_trio/internal/presenter"
	"fruit_trio/internal/repository"
	"fruit_trio/internal/service"
	"fruit_trio/internal/service/reel"
	"fruit_trio/internal/service/symbol"

	"go.uber.org/zap"
)

type serv struct {
	rules  model.Rules
	timing model.Timing
	assets model.Assets

	gen       *symbol.Generator
	sequencer *reel.Sequencer
	view      presenter.Presenter
	statsRepo repository.StatsRepository
	log       *zap.Logger

	mtx   sync.Mutex
	state model.SessionState
	// epoch Растёт при сбросе, эффекты спина из прошлой эпохи не применяются
	epoch       uint64
	highlighted [model.ReelCount][model.RowCount]bool
}

// NewSlotService Создать автомат 3x3 для одной сессии
func NewSlotService(
	cfg config.GameConfig,
	gen *symbol.Generator,
	view presenter.Presenter,
	statsRepo repository.StatsRepository,
	log *zap.Logger,
) service.SlotService {
	s := &serv{
		rules:     cfg.Rules(),
		timing:    cfg.Timing(),
		assets:    cfg.Assets(),
		gen:       gen,
		view:      view,
		statsRepo: statsRepo,
		log:       log,
	}
	s.sequencer = reel.NewSequencer(gen, view, s.timing, log)
	s.state = s.initialState()
	return s
}

func (s *serv) initialState() model.SessionState {
	return model.SessionState{
		Balance: s.rules.StartingBalance,
		Bet:     s.rules.DefaultBet,
	}
}

func (s *serv) State() model.SessionState {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	return s.state
}

func (s *serv) Reels() [model.ReelCount]model.Reel {
	return s.sequencer.Reels()
}

// Reset Полная переинициализация сессии.
// Если барабаны крутятся, они докрутятся, но выигрыш и оверлей старого спина не применятся.
func (s *serv) Reset() model.SessionState {
	s.mtx.Lock()
	spinning := s.state.Spinning
	overlay := s.state.OverlayOpen
	s.epoch++
	s.state = s.initialState()
	s.state.Spinning = spinning
	s.highlighted = [model.ReelCount][model.RowCount]bool{}
	state := s.state
	s.mtx.Unlock()

	s.log.Info("session reset", zap.Bool("spinning", spinning))

	if overlay {
		s.view.CloseOverlay()
	}
	s.view.ClearHighlights()
	s.view.UpdateHUD(state.Balance, state.Bet)
	return state
}

func (s *serv) Redraw() {
	s.mtx.Lock()
	state := s.state
	highlighted := s.highlighted
	s.mtx.Unlock()

	s.view.UpdateHUD(state.Balance, state.Bet)
	s.sequencer.Redraw()
	s.view.ClearHighlights()
	for r := range highlighted {
		for row, on := range highlighted[r] {
			if on {
				s.view.SetHighlight(r, row, true)
			}
		}
	}
}
