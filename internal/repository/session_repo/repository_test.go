package session_repo_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"fruit_trio/internal/model"
	"fruit_trio/internal/presenter/ws"
	"fruit_trio/internal/repository/session_repo"
	"fruit_trio/internal/service"

	"go.uber.org/zap"
)

// stubSlot Только состояние, остальное не нужно
type stubSlot struct {
	service.SlotService
	spinning bool
}

func (s stubSlot) State() model.SessionState {
	return model.SessionState{Spinning: s.spinning}
}

func newTable(spinning bool) *service.Table {
	return &service.Table{
		Slot: stubSlot{spinning: spinning},
		View: ws.NewHub(model.DefaultAssets(), zap.NewNop()),
	}
}

func TestGetOrCreate_CreatesOnce(t *testing.T) {
	r := session_repo.NewSessionRepository()
	ctx := context.Background()

	var (
		wg      sync.WaitGroup
		mtx     sync.Mutex
		created int
	)
	for range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.GetOrCreate(ctx, "s", func() *service.Table {
				mtx.Lock()
				created++
				mtx.Unlock()
				return newTable(false)
			})
		}()
	}
	wg.Wait()

	if created != 1 {
		t.Errorf("expected one table, created %d", created)
	}
	if r.Count() != 1 {
		t.Errorf("expected 1 session, got %d", r.Count())
	}
}

func TestGet_Missing(t *testing.T) {
	r := session_repo.NewSessionRepository()
	if _, ok := r.Get(context.Background(), "nope"); ok {
		t.Error("expected no table")
	}
}

func TestDeleteIdle_KeepsBusy(t *testing.T) {
	r := session_repo.NewSessionRepository()
	ctx := context.Background()

	r.GetOrCreate(ctx, "idle", func() *service.Table { return newTable(false) })
	r.GetOrCreate(ctx, "spinning", func() *service.Table { return newTable(true) })

	if n := r.DeleteIdle(ctx, time.Now().Add(time.Second)); n != 1 {
		t.Fatalf("expected 1 removed, got %d", n)
	}
	if _, ok := r.Get(ctx, "spinning"); !ok {
		t.Error("spinning session must be kept")
	}
	if _, ok := r.Get(ctx, "idle"); ok {
		t.Error("idle session must be removed")
	}
}

func TestDeleteIdle_KeepsRecent(t *testing.T) {
	r := session_repo.NewSessionRepository()
	ctx := context.Background()

	r.GetOrCreate(ctx, "a", func() *service.Table { return newTable(false) })
	if n := r.DeleteIdle(ctx, time.Now().Add(-time.Minute)); n != 0 {
		t.Errorf("expected nothing removed, got %d", n)
	}
}
