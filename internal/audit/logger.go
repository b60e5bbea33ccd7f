package audit

import (
	"context"
	"encoding/json"
	"time"

	"github.com/VelvetStudioPL/salon-scheduler/internal/db"
)

type Logger struct {
	db db.QueryAdapter
}

func New(adapter db.QueryAdapter) *Logger {
	return &Logger{db: adapter}
}

func (l *Logger) Record(ev Event) error {
	var metaJSON string
	if ev.Metadata != nil {
		if b, err := json.Marshal(ev.Metadata); err == nil {
			metaJSON = string(b)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := l.db.Exec(ctx,
		"INSERT INTO audit_logs (admin_id, action, entity, entity_id, metadata) VALUES (?, ?, ?, ?, ?)",
		ev.AdminID, ev.Action, ev.Entity, ev.EntityID, metaJSON,
	)
	return err
}

var _ Sink = (*Logger)(nil)
