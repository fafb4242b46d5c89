package slot

import (
	"fruit_trio/internal/metrics"
	"fruit_trio/internal/model"

	"github.com/shopspring/decimal"
)

// IncreaseBet Ставка + шаг, не выше максимума
func (s *serv) IncreaseBet() (model.SessionState, error) {
	return s.adjustBet(s.rules.BetStep)
}

// DecreaseBet Ставка - шаг, не ниже минимума
func (s *serv) DecreaseBet() (model.SessionState, error) {
	return s.adjustBet(s.rules.BetStep.Neg())
}

func (s *serv) adjustBet(delta decimal.Decimal) (model.SessionState, error) {
	s.mtx.Lock()
	if s.state.Spinning {
		state := s.state
		s.mtx.Unlock()
		metrics.Rejected(metrics.ReasonBetLocked)
		return state, model.ErrBetLocked
	}

	bet := s.state.Bet.Add(delta)
	bet = decimal.Min(bet, s.rules.MaxBet)
	bet = decimal.Max(bet, s.rules.MinBet)
	s.state.Bet = bet
	state := s.state
	s.mtx.Unlock()

	s.view.UpdateHUD(state.Balance, state.Bet)
	return state, nil
}
