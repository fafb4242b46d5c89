package stats_repo

import (
	"sync"

	"fruit_trio/internal/metrics"
	repoModel "fruit_trio/internal/repository/stats_repo/model"
)

const defaultWindowSize = 500

// Реализация репозитория для хранения статистики казино
type StateRepo struct {
	mtx   sync.RWMutex
	state repoModel.CasinoState
}

// NewStatsRepository Конструктор репозитория с пустой статистикой
func NewStatsRepository() *StateRepo {
	return &StateRepo{
		state: repoModel.CasinoState{
			SpinWindow: make([]repoModel.SpinResult, 0),
			WindowSize: defaultWindowSize,
		},
	}
}

// CasinoState Копия текущего состояния
func (r *StateRepo) CasinoState() repoModel.CasinoState {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	state := r.state
	state.SpinWindow = make([]repoModel.SpinResult, len(r.state.SpinWindow))
	copy(state.SpinWindow, r.state.SpinWindow)
	return state
}

// UpdateState Обновление статистики после спина
func (r *StateRepo) UpdateState(bet, payout float64, forced bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.state.TotalSpins++
	if forced {
		r.state.ForcedWins++
	}
	r.state.TotalBet += bet
	r.state.TotalPayout += payout
	if r.state.TotalBet > 0 {
		r.state.CurrentRTP = r.state.TotalPayout / r.state.TotalBet * 100
	}

	// Добавляем спин в окно
	spinRTP := 0.0
	if bet > 0 {
		spinRTP = payout / bet * 100
	}
	r.state.SpinWindow = append(r.state.SpinWindow, repoModel.SpinResult{
		Bet:    bet,
		Payout: payout,
		RTP:    spinRTP,
	})

	// Поддерживаем размер окна
	if len(r.state.SpinWindow) > r.state.WindowSize {
		r.state.SpinWindow = r.state.SpinWindow[1:]
	}

	// Пересчитываем RTP в окне
	var windowBet, windowPayout float64
	for _, spin := range r.state.SpinWindow {
		windowBet += spin.Bet
		windowPayout += spin.Payout
	}

	if windowBet > 0 {
		r.state.WindowRTP = windowPayout / windowBet * 100
	} else {
		r.state.WindowRTP = 0
	}

	metrics.SetTotals(r.state.TotalBet, r.state.TotalPayout, r.state.CurrentRTP, r.state.WindowRTP)
}
