package reel

import (
	"context"
	"sync"
	"time"

	"fruit_trio/internal/model"
	"fruit_trio/internal/presenter"
	"fruit_trio/internal/service/symbol"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Sequencer Анимирует барабаны и хранит то, что на них сейчас отрисовано
type Sequencer struct {
	gen    *symbol.Generator
	view   presenter.Presenter
	timing model.Timing
	log    *zap.Logger

	mtx   sync.RWMutex
	reels [model.ReelCount]model.Reel
}

// NewSequencer Создать барабаны со случайными стартовыми тройками
func NewSequencer(gen *symbol.Generator, view presenter.Presenter, timing model.Timing, log *zap.Logger) *Sequencer {
	s := &Sequencer{
		gen:    gen,
		view:   view,
		timing: timing,
		log:    log,
	}
	for i := range s.reels {
		s.reels[i] = model.Reel{
			Index: i,
			Cells: gen.Triple(),
			State: model.ReelIdle,
		}
	}
	return s
}

// Reels Копия отрисованного состояния
func (s *Sequencer) Reels() [model.ReelCount]model.Reel {
	s.mtx.RLock()
	defer s.mtx.RUnlock()
	return s.reels
}

// Redraw Отправляет текущее содержимое барабанов в слой отображения
func (s *Sequencer) Redraw() {
	reels := s.Reels()
	for _, r := range reels {
		s.view.RenderCells(r.Index, r.Cells)
		s.view.SetReelState(r.Index, r.State)
	}
}

// Run Запускает все барабаны в одном вызове (1, 2, 3) и ждёт остановки каждого
func (s *Sequencer) Run(ctx context.Context, result model.SpinResult) error {
	var futures [model.ReelCount]*Future
	for i := range futures {
		futures[i] = s.Animate(i, result[i], s.timing.Paces[i])
	}

	var g errgroup.Group
	for _, f := range futures {
		g.Go(func() error {
			return f.Wait(ctx)
		})
	}
	return g.Wait()
}

// Animate Прокручивает барабан через extra случайных символов к финальной тройке.
// Переход стартует синхронно, ожидание и остановка идут в фоне.
func (s *Sequencer) Animate(reel int, final model.Triple, pace model.Pace) *Future {
	strip := make([]model.Symbol, 0, pace.Extra+model.RowCount)
	strip = append(strip, s.gen.Strip(pace.Extra)...)
	strip = append(strip, final[:]...)

	// Размытие на время прокрутки
	s.setState(reel, model.ReelSpinning)
	s.view.SetReelState(reel, model.ReelSpinning)

	// Финальная тройка стоит в конце ленты, её и выводим в окно
	done := s.view.Transition(reel, strip, pace.Extra, pace.Duration)

	f := newFuture()
	go func() {
		err := s.await(done, pace.Duration)
		if err != nil {
			s.log.Warn("reel transition did not finish, settling anyway",
				zap.Int("reel", reel),
				zap.Duration("timeout", s.timing.AnimationTimeout),
			)
		}

		// Оставляем только финальную тройку, лента не растёт
		s.mtx.Lock()
		s.reels[reel].State = model.ReelSettling
		s.reels[reel].Cells = final
		s.mtx.Unlock()
		s.view.SetReelState(reel, model.ReelSettling)
		s.view.RenderCells(reel, final)

		if s.timing.SettleDelay > 0 {
			t := time.NewTimer(s.timing.SettleDelay)
			<-t.C
		}

		s.setState(reel, model.ReelIdle)
		s.view.SetReelState(reel, model.ReelIdle)
		f.resolve(err)
	}()

	return f
}

// await Ждёт сигнал завершения перехода. Без таймаута ждёт сколько угодно
func (s *Sequencer) await(done <-chan struct{}, duration time.Duration) error {
	if s.timing.AnimationTimeout <= 0 {
		<-done
		return nil
	}

	t := time.NewTimer(duration + s.timing.AnimationTimeout)
	defer t.Stop()
	select {
	case <-done:
		return nil
	case <-t.C:
		return model.ErrAnimationTimeout
	}
}

func (s *Sequencer) setState(reel int, state model.ReelState) {
	s.mtx.Lock()
	s.reels[reel].State = state
	s.mtx.Unlock()
}
