package session_repo

import (
	"context"
	"sync"
	"time"

	"fruit_trio/internal/repository"
	"fruit_trio/internal/service"
)

type entry struct {
	table    *service.Table
	lastSeen time.Time
}

// Сессии живут только в памяти процесса
type repo struct {
	mtx      sync.Mutex
	sessions map[string]*entry
	now      func() time.Time
}

func NewSessionRepository() repository.SessionRepository {
	return &repo{
		sessions: make(map[string]*entry),
		now:      time.Now,
	}
}

// Get - возвращает стол по ID сессии
func (r *repo) Get(_ context.Context, id string) (*service.Table, bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	e, ok := r.sessions[id]
	if !ok {
		return nil, false
	}
	e.lastSeen = r.now()
	return e.table, true
}

// GetOrCreate - возвращает стол, создавая его под блокировкой при первом обращении
func (r *repo) GetOrCreate(_ context.Context, id string, create func() *service.Table) *service.Table {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	if e, ok := r.sessions[id]; ok {
		e.lastSeen = r.now()
		return e.table
	}

	e := &entry{table: create(), lastSeen: r.now()}
	r.sessions[id] = e
	return e.table
}

// DeleteIdle - удаляет простаивающие сессии.
// Сессии с крутящимися барабанами или подключённым зрителем не трогаем
func (r *repo) DeleteIdle(_ context.Context, before time.Time) int {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	deleted := 0
	for id, e := range r.sessions {
		if !e.lastSeen.Before(before) {
			continue
		}
		if e.table.Busy() {
			continue
		}
		delete(r.sessions, id)
		deleted++
	}
	return deleted
}

func (r *repo) Count() int {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	return len(r.sessions)
}
