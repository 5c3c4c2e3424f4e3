// Package reportcache holds fetched reports in memory just long enough for
// the CSV download that follows a fetch. Nothing is persisted and entries
// expire on their own; this is not a cache of API data across queries.
package reportcache

import (
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"gscdash/internal/models"
)

// DefaultTTL bounds how long a report stays downloadable after a fetch.
const DefaultTTL = 15 * time.Minute

type entry struct {
	table   models.DisplayTable
	addedAt time.Time
}

// Store is a TTL-bounded in-memory report store keyed by a per-fetch handle.
type Store struct {
	mu      sync.Mutex
	entries map[uuid.UUID]entry
	ttl     time.Duration
	stop    chan struct{}
}

// New creates a store and starts its expiry sweep.
func New(ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	s := &Store{
		entries: make(map[uuid.UUID]entry),
		ttl:     ttl,
		stop:    make(chan struct{}),
	}
	go s.sweep()
	return s
}

// Put stores a table and returns the handle for the download route.
func (s *Store) Put(table models.DisplayTable) uuid.UUID {
	id := uuid.New()
	s.mu.Lock()
	s.entries[id] = entry{table: table, addedAt: time.Now()}
	s.mu.Unlock()
	return id
}

// Get returns the table for a handle, if it is still live.
func (s *Store) Get(id uuid.UUID) (models.DisplayTable, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entries[id]
	if !ok || time.Since(e.addedAt) > s.ttl {
		delete(s.entries, id)
		return models.DisplayTable{}, false
	}
	return e.table, true
}

// Close stops the expiry sweep.
func (s *Store) Close() {
	close(s.stop)
}

func (s *Store) sweep() {
	ticker := time.NewTicker(s.ttl)
	defer ticker.Stop()
	for {
		select {
		case <-s.stop:
			return
		case <-ticker.C:
			s.mu.Lock()
			var expired int
			for id, e := range s.entries {
				if time.Since(e.addedAt) > s.ttl {
					delete(s.entries, id)
					expired++
				}
			}
			s.mu.Unlock()
			if expired > 0 {
				slog.Debug("expired cached reports", "count", expired)
			}
		}
	}
}
