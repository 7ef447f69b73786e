package server

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/minji/glowup-backend/internal/db"
)

// analysisLogStore is the slice of the db layer the audit logger needs.
type analysisLogStore interface {
	InsertAnalysisLog(ctx context.Context, entry *db.AnalysisLog) error
}

// auditLogger records analysis requests and results in the background.
// Writes are fire-and-forget: failures are logged and swallowed, and must
// never affect the API response.
type auditLogger struct {
	store   analysisLogStore
	timeout time.Duration
	wg      sync.WaitGroup
}

func newAuditLogger(store analysisLogStore) *auditLogger {
	return &auditLogger{
		store:   store,
		timeout: 5 * time.Second,
	}
}

// Record queues one audit entry. Safe to call on a nil logger or with no
// store configured; both are no-ops.
func (a *auditLogger) Record(kind, userID string, payload, result any) {
	if a == nil || a.store == nil {
		return
	}

	entry := &db.AnalysisLog{
		Kind:      kind,
		UserID:    userID,
		Payload:   payload,
		Result:    result,
		CreatedAt: time.Now().UTC(),
	}

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		ctx, cancel := context.WithTimeout(context.Background(), a.timeout)
		defer cancel()

		if err := a.store.InsertAnalysisLog(ctx, entry); err != nil {
			log.Printf("[audit] failed to record %s analysis: %v", kind, err)
		}
	}()
}

// Wait blocks until all queued writes have finished.
func (a *auditLogger) Wait() {
	if a == nil {
		return
	}
	a.wg.Wait()
}
