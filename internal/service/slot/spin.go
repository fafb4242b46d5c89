package slot

import (
	"context"
	"time"

	"fruit_trio/internal/metrics"
	"fruit_trio/internal/model"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Spin Выполняет спин: списывает ставку, крутит барабаны и ждёт остановки всех трёх.
// Первый успешный спин сессии всегда выигрышный.
func (s *serv) Spin(ctx context.Context) (*model.SpinOutcome, error) {
	s.mtx.Lock()
	if s.state.Spinning {
		s.mtx.Unlock()
		metrics.Rejected(metrics.ReasonInProgress)
		return nil, model.ErrSpinInProgress
	}
	if s.state.Balance.LessThan(s.state.Bet) {
		s.mtx.Unlock()
		metrics.Rejected(metrics.ReasonBalance)
		return nil, model.ErrInsufficientBalance
	}

	s.state.Spinning = true
	s.highlighted = [model.ReelCount][model.RowCount]bool{}
	epoch := s.epoch

	// Списание ставки
	bet := s.state.Bet
	s.state.Balance = decimal.Max(decimal.Zero, s.state.Balance.Sub(bet))
	balance := s.state.Balance

	// Решаем исход
	forced := !s.state.WinUsed
	var result model.SpinResult
	if forced {
		result = s.gen.ForcedWin()
		s.state.WinUsed = true
	} else {
		result = s.gen.Ordinary()
	}
	s.mtx.Unlock()

	defer s.finishSpin()

	s.view.ClearHighlights()
	s.view.UpdateHUD(balance, bet)

	// Спин не отменяется, даже если клиент ушёл
	ctx = context.WithoutCancel(ctx)

	start := time.Now()
	if err := s.sequencer.Run(ctx, result); err != nil {
		metrics.PresentationFailure(metrics.ReasonAnimation)
		s.log.Warn("reels settled with errors", zap.Error(err))
	}

	out := &model.SpinOutcome{
		Result:    result,
		ForcedWin: forced,
		Bet:       bet,
		Payout:    decimal.Zero,
	}

	if forced {
		s.presentWin(epoch, out)
	}

	metrics.SpinCompleted(forced, time.Since(start).Seconds())
	s.statsRepo.UpdateState(bet.InexactFloat64(), out.Payout.InexactFloat64(), forced)

	out.Balance = s.State().Balance
	s.log.Debug("spin finished",
		zap.Bool("forced_win", forced),
		zap.String("bet", bet.String()),
		zap.String("payout", out.Payout.String()),
		zap.String("balance", out.Balance.String()),
	)

	return out, nil
}

func (s *serv) finishSpin() {
	s.mtx.Lock()
	s.state.Spinning = false
	s.mtx.Unlock()
}
