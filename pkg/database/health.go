package database

import (
	"context"
	"database/sql"
	"time"
)

// HealthStatus is the database section of the /healthz payload. Ent
// writes (chat history, workflow logs) and the workflow's raw read-only
// queries share one pool, so these counters describe the total query
// pressure of the service.
type HealthStatus struct {
	Status       string `json:"status"`
	PingMillis   int64  `json:"response_time_ms"`
	Open         int    `json:"open_connections"`
	InUse        int    `json:"in_use"`
	Idle         int    `json:"idle"`
	WaitCount    int64  `json:"wait_count"`
	WaitMillis   int64  `json:"wait_duration_ms"`
	MaxOpenConns int    `json:"max_open_conns"`
}

// Health pings the database and snapshots the pool. The error is
// returned alongside the unhealthy status so the handler can both log
// it and degrade the response code.
func Health(ctx context.Context, db *sql.DB) (*HealthStatus, error) {
	start := time.Now()
	if err := db.PingContext(ctx); err != nil {
		return &HealthStatus{
			Status:     "unhealthy",
			PingMillis: time.Since(start).Milliseconds(),
		}, err
	}

	pool := db.Stats()
	return &HealthStatus{
		Status:       "healthy",
		PingMillis:   time.Since(start).Milliseconds(),
		Open:         pool.OpenConnections,
		InUse:        pool.InUse,
		Idle:         pool.Idle,
		WaitCount:    pool.WaitCount,
		WaitMillis:   pool.WaitDuration.Milliseconds(),
		MaxOpenConns: pool.MaxOpenConnections,
	}, nil
}
