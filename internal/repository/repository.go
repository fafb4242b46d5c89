package repository

import (
	"context"
	"time"

	statsModel "fruit_trio/internal/repository/stats_repo/model"
	"fruit_trio/internal/service"
)

type StatsRepository interface {
	CasinoState() statsModel.CasinoState
	UpdateState(bet, payout float64, forced bool)
}

type SessionRepository interface {
	// Get Возвращает стол сессии и отмечает её активность
	Get(ctx context.Context, id string) (*service.Table, bool)
	// GetOrCreate Атомарно создаёт стол, если его ещё нет
	GetOrCreate(ctx context.Context, id string, create func() *service.Table) *service.Table
	// DeleteIdle Удаляет столы, к которым не обращались с before, кроме крутящихся
	DeleteIdle(ctx context.Context, before time.Time) int
	Count() int
}
