package cert

import (
	"context"
	"database/sql"
	"errors"
	"time"
)

// ErrNotFound reports a certificate ID with no issue record.
var ErrNotFound = errors.New("certificate not found")

// Record is one row of the issue registry: the certificate plus the
// branding captured at issue time.
type Record struct {
	Certificate
	Instructor string `json:"instructor"`
	Company    string `json:"company,omitempty"`
}

// Store persists issued certificates on the shared DB handle so the ID
// printed on a document can be verified later.
type Store struct{ db *sql.DB }

func NewStore(db *sql.DB) *Store { return &Store{db: db} }

// Save records an issue. The ID is the primary key; a duplicate fails the
// insert, which callers treat as a (vanishingly rare) collision.
func (s *Store) Save(ctx context.Context, r Record) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO certificates (id, recipient, quiz_title, score, performance, instructor, company, issued_at)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8)`,
		r.ID, r.Recipient, r.QuizTitle, r.Score, r.Performance, r.Instructor, r.Company, r.IssuedAt.Unix())
	return err
}

// Verify looks up an issue record by certificate ID.
func (s *Store) Verify(ctx context.Context, id string) (Record, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, recipient, quiz_title, score, performance, instructor, company, issued_at
		 FROM certificates WHERE id=$1`, id)
	var r Record
	var issued int64
	if err := row.Scan(&r.ID, &r.Recipient, &r.QuizTitle, &r.Score, &r.Performance, &r.Instructor, &r.Company, &issued); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Record{}, ErrNotFound
		}
		return Record{}, err
	}
	r.IssuedAt = time.Unix(issued, 0).UTC()
	return r, nil
}

// Recent returns the latest issues, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Record, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, recipient, quiz_title, score, performance, instructor, company, issued_at
		 FROM certificates ORDER BY issued_at DESC, id LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		var r Record
		var issued int64
		if err := rows.Scan(&r.ID, &r.Recipient, &r.QuizTitle, &r.Score, &r.Performance, &r.Instructor, &r.Company, &issued); err != nil {
			return nil, err
		}
		r.IssuedAt = time.Unix(issued, 0).UTC()
		out = append(out, r)
	}
	return out, rows.Err()
}
