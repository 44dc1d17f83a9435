package database

import (
	"context"
	"sync/atomic"
	"time"

	"coursehub/logger"

	"gorm.io/gorm"
)

const pingTimeout = 3 * time.Second

// Monitor remembers whether the last ping against the store succeeded.
type Monitor struct {
	db        *gorm.DB
	connected atomic.Bool
	lastCheck atomic.Int64
}

func NewMonitor(db *gorm.DB) *Monitor {
	return &Monitor{db: db}
}

// Connected reports the result of the most recent check.
func (m *Monitor) Connected() bool {
	if m == nil {
		return false
	}
	return m.connected.Load()
}

// LastCheck returns when the store was last checked (zero if never).
func (m *Monitor) LastCheck() time.Time {
	if m == nil || m.lastCheck.Load() == 0 {
		return time.Time{}
	}
	return time.Unix(0, m.lastCheck.Load())
}

// Check pings the store and records the outcome.
func (m *Monitor) Check() bool {
	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()

	ok := m.ping(ctx) == nil
	was := m.connected.Swap(ok)
	m.lastCheck.Store(time.Now().UnixNano())

	if was != ok {
		if ok {
			logger.Info("database reachable")
		} else {
			logger.Error("database unreachable")
		}
	}
	return ok
}

func (m *Monitor) ping(ctx context.Context) error {
	if m.db == nil {
		return gorm.ErrInvalidDB
	}
	sqlDB, err := m.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// MarkDown records a failure seen outside the scheduled check.
func (m *Monitor) MarkDown() {
	if m == nil {
		return
	}
	if m.connected.Swap(false) {
		logger.Error("database unreachable")
	}
}
