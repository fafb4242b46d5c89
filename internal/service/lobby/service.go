package lobby

import (
	"context"
	"time"

	"fruit_trio/internal/config"
	"fruit_trio/internal/metrics"
	"fruit_trio/internal/presenter/ws"
	"fruit_trio/internal/repository"
	"fruit_trio/internal/service"
	"fruit_trio/internal/service/slot"
	"fruit_trio/internal/service/symbol"

	"go.uber.org/zap"
)

type serv struct {
	gameCfg     config.GameConfig
	idleTTL     time.Duration
	gen         *symbol.Generator
	sessionRepo repository.SessionRepository
	statsRepo   repository.StatsRepository
	log         *zap.Logger
}

func NewLobbyService(
	gameCfg config.GameConfig,
	idleTTL time.Duration,
	gen *symbol.Generator,
	sessionRepo repository.SessionRepository,
	statsRepo repository.StatsRepository,
	log *zap.Logger,
) service.LobbyService {
	return &serv{
		gameCfg:     gameCfg,
		idleTTL:     idleTTL,
		gen:         gen,
		sessionRepo: sessionRepo,
		statsRepo:   statsRepo,
		log:         log,
	}
}

func (s *serv) Table(ctx context.Context, sessionID string) *service.Table {
	created := false
	table := s.sessionRepo.GetOrCreate(ctx, sessionID, func() *service.Table {
		created = true
		return s.newTable(sessionID)
	})
	if created {
		metrics.SetSessions(s.sessionRepo.Count())
		s.log.Info("session opened", zap.String("session_id", sessionID))
	}
	return table
}

func (s *serv) newTable(sessionID string) *service.Table {
	log := s.log.With(zap.String("session_id", sessionID))

	hub := ws.NewHub(s.gameCfg.Assets(), log)
	slotServ := slot.NewSlotService(s.gameCfg, s.gen, hub, s.statsRepo, log)
	hub.SetListener(slotServ)

	return &service.Table{
		Slot: slotServ,
		View: hub,
	}
}

func (s *serv) Sweep(ctx context.Context) int {
	deleted := s.sessionRepo.DeleteIdle(ctx, time.Now().Add(-s.idleTTL))
	metrics.SetSessions(s.sessionRepo.Count())
	if deleted > 0 {
		s.log.Info("idle sessions removed", zap.Int("count", deleted))
	}
	return deleted
}
