package slot_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"fruit_trio/internal/model"
	"fruit_trio/internal/presenter"
	"fruit_trio/internal/repository/stats_repo"
	"fruit_trio/internal/service"
	"fruit_trio/internal/service/slot"
	"fruit_trio/internal/service/symbol"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"pgregory.net/rapid"
)

type testConfig struct {
	rules  model.Rules
	timing model.Timing
}

func (c testConfig) Catalog() []model.WeightedSymbol { return model.DefaultCatalog() }
func (c testConfig) Rules() model.Rules              { return c.rules }
func (c testConfig) Timing() model.Timing            { return c.timing }
func (c testConfig) Assets() model.Assets            { return model.DefaultAssets() }

func newTestConfig() testConfig {
	return testConfig{
		rules: model.DefaultRules(),
		timing: model.Timing{
			Paces: [model.ReelCount]model.Pace{
				{Duration: time.Millisecond, Extra: 2},
				{Duration: 2 * time.Millisecond, Extra: 2},
				{Duration: 3 * time.Millisecond, Extra: 2},
			},
			SettleDelay:    time.Millisecond,
			HighlightDelay: time.Millisecond,
		},
	}
}

// fakeView Переходы завершаются сразу, если не включено удержание
type fakeView struct {
	presenter.Headless

	mtx        sync.Mutex
	hold       chan struct{}
	started    chan struct{}
	highlights [][2]int
	overlays   int
	closed     int
	overlayErr error
}

func newFakeView() *fakeView {
	return &fakeView{started: make(chan struct{}, 16)}
}

func (v *fakeView) Transition(int, []model.Symbol, int, time.Duration) <-chan struct{} {
	v.mtx.Lock()
	hold := v.hold
	v.mtx.Unlock()

	select {
	case v.started <- struct{}{}:
	default:
	}
	if hold != nil {
		return hold
	}
	done := make(chan struct{})
	close(done)
	return done
}

func (v *fakeView) SetHighlight(reel, row int, on bool) {
	v.mtx.Lock()
	defer v.mtx.Unlock()
	if on {
		v.highlights = append(v.highlights, [2]int{reel, row})
	}
}

func (v *fakeView) ClearHighlights() {
	v.mtx.Lock()
	defer v.mtx.Unlock()
	v.highlights = nil
}

func (v *fakeView) OpenOverlay(string) error {
	v.mtx.Lock()
	defer v.mtx.Unlock()
	v.overlays++
	return v.overlayErr
}

func (v *fakeView) CloseOverlay() {
	v.mtx.Lock()
	defer v.mtx.Unlock()
	v.closed++
}

func (v *fakeView) UpdateHUD(decimal.Decimal, decimal.Decimal) {}

func newSlot(cfg testConfig, view presenter.Presenter) service.SlotService {
	gen := symbol.NewGenerator(cfg.Catalog(), symbol.StdRNG{})
	return slot.NewSlotService(cfg, gen, view, stats_repo.NewStatsRepository(), zap.NewNop())
}

func dec(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}

func TestSpin_FirstSpinIsForcedWin(t *testing.T) {
	view := newFakeView()
	s := newSlot(newTestConfig(), view)

	out, err := s.Spin(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !out.ForcedWin {
		t.Fatal("first spin must be a win")
	}
	for i, triple := range out.Result {
		if triple[model.RowTop] != model.Banana || triple[model.RowMid] != model.Banana {
			t.Errorf("reel %d: expected bananas on top and middle, got %v", i, triple)
		}
		if !out.Highlighted[i][model.RowTop] || !out.Highlighted[i][model.RowMid] {
			t.Errorf("reel %d: top and middle must be highlighted", i)
		}
	}
	if !out.Balance.Equal(dec(1049)) {
		t.Errorf("expected balance 1049, got %s", out.Balance)
	}
	if !out.Payout.Equal(dec(50)) {
		t.Errorf("expected payout 50, got %s", out.Payout)
	}

	st := s.State()
	if !st.WinUsed || st.Spinning || !st.OverlayOpen {
		t.Errorf("unexpected state after win: %+v", st)
	}
	if view.overlays != 1 {
		t.Errorf("expected overlay to open once, got %d", view.overlays)
	}
	if len(view.highlights) < 6 {
		t.Errorf("expected at least 6 highlighted cells, got %d", len(view.highlights))
	}
}

func TestSpin_WinOnlyOnce(t *testing.T) {
	view := newFakeView()
	s := newSlot(newTestConfig(), view)

	if _, err := s.Spin(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := range 5 {
		out, err := s.Spin(context.Background())
		if err != nil {
			t.Fatalf("spin %d: unexpected error: %v", i, err)
		}
		if out.ForcedWin {
			t.Fatalf("spin %d: forced win repeated", i)
		}
		if !out.Payout.IsZero() {
			t.Errorf("spin %d: expected no payout, got %s", i, out.Payout)
		}
		if out.Highlighted != ([model.ReelCount][model.RowCount]bool{}) {
			t.Errorf("spin %d: nothing must be highlighted", i)
		}
	}

	// 1000 - 1 + 50 - 5
	if got := s.State().Balance; !got.Equal(dec(1044)) {
		t.Errorf("expected balance 1044, got %s", got)
	}
	if view.overlays != 1 {
		t.Errorf("expected one overlay, got %d", view.overlays)
	}
}

func TestSpin_InsufficientBalance(t *testing.T) {
	cfg := newTestConfig()
	cfg.rules.StartingBalance = dec(3)
	cfg.rules.DefaultBet = dec(5)
	s := newSlot(cfg, newFakeView())

	before := s.State()
	_, err := s.Spin(context.Background())
	if !errors.Is(err, model.ErrInsufficientBalance) {
		t.Fatalf("expected ErrInsufficientBalance, got %v", err)
	}
	after := s.State()
	if !after.Balance.Equal(before.Balance) || after.WinUsed || after.Spinning {
		t.Errorf("state must not change on rejected spin: %+v", after)
	}
}

func TestSpin_RejectedWhileSpinning(t *testing.T) {
	view := newFakeView()
	view.hold = make(chan struct{})
	s := newSlot(newTestConfig(), view)

	errCh := make(chan error, 1)
	go func() {
		_, err := s.Spin(context.Background())
		errCh <- err
	}()
	for range model.ReelCount {
		<-view.started
	}

	if !s.State().Spinning {
		t.Fatal("expected spinning state")
	}
	if _, err := s.Spin(context.Background()); !errors.Is(err, model.ErrSpinInProgress) {
		t.Errorf("expected ErrSpinInProgress, got %v", err)
	}
	if _, err := s.IncreaseBet(); !errors.Is(err, model.ErrBetLocked) {
		t.Errorf("expected ErrBetLocked, got %v", err)
	}
	if _, err := s.DecreaseBet(); !errors.Is(err, model.ErrBetLocked) {
		t.Errorf("expected ErrBetLocked, got %v", err)
	}

	close(view.hold)
	if err := <-errCh; err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.State().Spinning {
		t.Error("spinning flag must be cleared after reels stop")
	}
}

func TestBet_Clamped(t *testing.T) {
	s := newSlot(newTestConfig(), newFakeView())

	st, err := s.DecreaseBet()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !st.Bet.Equal(dec(1)) {
		t.Errorf("expected bet 1, got %s", st.Bet)
	}

	for range 60 {
		st, _ = s.IncreaseBet()
	}
	if !st.Bet.Equal(dec(50)) {
		t.Errorf("expected bet 50, got %s", st.Bet)
	}
}

func TestBet_StaysInRange(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s := newSlot(newTestConfig(), newFakeView())
		steps := rapid.SliceOf(rapid.Bool()).Draw(t, "steps")
		for _, up := range steps {
			var st model.SessionState
			if up {
				st, _ = s.IncreaseBet()
			} else {
				st, _ = s.DecreaseBet()
			}
			if st.Bet.LessThan(dec(1)) || st.Bet.GreaterThan(dec(50)) {
				t.Fatalf("bet out of range: %s", st.Bet)
			}
		}
	})
}

func TestSpin_BalanceNeverNegative(t *testing.T) {
	cfg := newTestConfig()
	cfg.rules.StartingBalance = dec(2)
	cfg.rules.ForcedWinBonus = decimal.Zero
	s := newSlot(cfg, newFakeView())

	for range 5 {
		_, _ = s.Spin(context.Background())
		if s.State().Balance.IsNegative() {
			t.Fatalf("balance went negative: %s", s.State().Balance)
		}
	}
	if got := s.State().Balance; !got.IsZero() {
		t.Errorf("expected balance 0, got %s", got)
	}
}

func TestVideoEnded_ClosesOverlay(t *testing.T) {
	view := newFakeView()
	s := newSlot(newTestConfig(), view)

	if _, err := s.Spin(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s.OnVideoEnded()
	if s.State().OverlayOpen {
		t.Error("overlay must be closed after the video ended")
	}
	// Повторное закрытие ничего не делает
	s.CloseOverlay()
	if view.closed != 1 {
		t.Errorf("expected one close, got %d", view.closed)
	}
}

func TestPlaybackFailure_KeepsCredit(t *testing.T) {
	view := newFakeView()
	view.overlayErr = errors.New("autoplay blocked")
	s := newSlot(newTestConfig(), view)

	out, err := s.Spin(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s.OnPlaybackFailed("autoplay blocked")
	if !out.Balance.Equal(dec(1049)) {
		t.Errorf("expected balance 1049, got %s", out.Balance)
	}
}

func TestReset_DuringSpinDropsWin(t *testing.T) {
	view := newFakeView()
	view.hold = make(chan struct{})
	s := newSlot(newTestConfig(), view)

	errCh := make(chan error, 1)
	go func() {
		_, err := s.Spin(context.Background())
		errCh <- err
	}()
	for range model.ReelCount {
		<-view.started
	}

	st := s.Reset()
	if !st.Balance.Equal(dec(1000)) || st.WinUsed {
		t.Errorf("unexpected state after reset: %+v", st)
	}
	if !st.Spinning {
		t.Error("reels are still moving, spinning must stay set")
	}

	close(view.hold)
	if err := <-errCh; err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	after := s.State()
	if !after.Balance.Equal(dec(1000)) {
		t.Errorf("win from the old spin must not be credited, got %s", after.Balance)
	}
	if after.OverlayOpen || view.overlays != 0 {
		t.Error("overlay from the old spin must not open")
	}
	if after.Spinning {
		t.Error("spinning flag must be cleared")
	}

	// Новая сессия снова получает выигрыш
	view.mtx.Lock()
	view.hold = nil
	view.mtx.Unlock()
	out, err := s.Spin(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !out.ForcedWin {
		t.Error("first spin after reset must be a win")
	}
}
