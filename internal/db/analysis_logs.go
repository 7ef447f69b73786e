package db

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

// AnalysisLog is an audit record of one analysis call: what was asked, what
// was answered, and when.
type AnalysisLog struct {
	Kind      string
	UserID    string
	Payload   any
	Result    any
	CreatedAt time.Time
}

// InsertAnalysisLog stores an audit record. Payload and Result are stored as
// JSONB.
func (db *DB) InsertAnalysisLog(ctx context.Context, entry *AnalysisLog) error {
	payload, err := json.Marshal(entry.Payload)
	if err != nil {
		return fmt.Errorf("failed to marshal audit payload: %w", err)
	}
	result, err := json.Marshal(entry.Result)
	if err != nil {
		return fmt.Errorf("failed to marshal audit result: %w", err)
	}

	_, err = db.pool.Exec(ctx,
		`INSERT INTO analysis_logs (kind, user_id, payload, result, created_at)
		 VALUES ($1, NULLIF($2, ''), $3, $4, $5)`,
		entry.Kind, entry.UserID, payload, result, entry.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert analysis log: %w", err)
	}
	return nil
}

// CountAnalysisLogs returns the number of audit rows.
func (db *DB) CountAnalysisLogs(ctx context.Context) (int64, error) {
	var count int64
	if err := db.pool.QueryRow(ctx, `SELECT COUNT(*) FROM analysis_logs`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count analysis logs: %w", err)
	}
	return count, nil
}
