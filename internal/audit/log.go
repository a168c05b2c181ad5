// Package audit appends domain events to the shared DB: who issued which
// certificate, which artifacts were stored, when settings changed.
package audit

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"
)

// Event types written by the daemon.
const (
	TypeCertificateIssued = "certificate.issued"
	TypeArtifactStored    = "artifact.stored"
	TypeSettingsUpdated   = "settings.updated"
)

type Event struct {
	Seq       int64
	Type      string
	Key       string
	DataJSON  string
	CreatedAt int64
}

type Log struct{ db *sql.DB }

func NewLog(db *sql.DB) *Log { return &Log{db: db} }

// Append records one event. A payload that fails to marshal is recorded as
// null; the event itself is never dropped.
func (l *Log) Append(ctx context.Context, typ, key string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		data = []byte("null")
	}
	_, err = l.db.ExecContext(ctx,
		`INSERT INTO audit_log (typ, key, data, created_at)
		 VALUES ($1,$2,$3,$4)`,
		typ, key, string(data), time.Now().Unix())
	return err
}

// Since returns events with sequence number greater than seq, oldest
// first.
func (l *Log) Since(ctx context.Context, seq int64, limit int) ([]Event, error) {
	if limit <= 0 {
		limit = 100
	}
	rows, err := l.db.QueryContext(ctx,
		`SELECT seq, typ, key, data, created_at
		 FROM audit_log WHERE seq > $1 ORDER BY seq LIMIT $2`,
		seq, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Event
	for rows.Next() {
		var e Event
		if err := rows.Scan(&e.Seq, &e.Type, &e.Key, &e.DataJSON, &e.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
