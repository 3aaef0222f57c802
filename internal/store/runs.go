// Package store records evaluation runs in a local libsql database so
// past accuracy is inspectable. Vocabularies themselves are never
// persisted; they live and die with the process.
package store

import (
	"crypto/sha256"
	"database/sql"
	"encoding/hex"

	"github.com/google/uuid"
)

type Run struct {
	ID         string
	Dataset    string
	AxiomRatio float64
	Total      int
	Correct    int
	Accuracy   float64
	// StartedAt is kept as the driver's text representation.
	StartedAt string
}

type RunStore struct {
	db *sql.DB
}

func NewRunStore(db *sql.DB) *RunStore {
	return &RunStore{db: db}
}

func hashSample(text string) string {
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])
}

// CreateRun registers a new evaluation run and returns its id.
func (s *RunStore) CreateRun(dataset string, axiomRatio float64) (string, error) {
	id := uuid.NewString()
	_, err := s.db.Exec(
		`INSERT INTO runs (id, dataset, axiom_ratio) VALUES (?, ?, ?)`,
		id, dataset, axiomRatio,
	)
	if err != nil {
		return "", err
	}
	return id, nil
}

// SaveSample records one held-out classification. Only a hash of the
// sample text is stored.
func (s *RunStore) SaveSample(runID, text, expected, predicted string, score float64, won bool) error {
	_, err := s.db.Exec(
		`INSERT INTO run_samples (run_id, hash, expected, predicted, score, won)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		runID, hashSample(text), expected, predicted, score, won,
	)
	return err
}

// FinishRun writes the final tallies for a run.
func (s *RunStore) FinishRun(runID string, total, correct int, accuracy float64) error {
	_, err := s.db.Exec(
		`UPDATE runs SET total = ?, correct = ?, accuracy = ? WHERE id = ?`,
		total, correct, accuracy, runID,
	)
	return err
}

// ListRuns returns the most recent runs, newest first.
func (s *RunStore) ListRuns(limit int) ([]Run, error) {
	rows, err := s.db.Query(
		`SELECT id, dataset, axiom_ratio, total, correct, accuracy, started_at
		 FROM runs ORDER BY started_at DESC LIMIT ?`, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		if err := rows.Scan(&r.ID, &r.Dataset, &r.AxiomRatio, &r.Total, &r.Correct, &r.Accuracy, &r.StartedAt); err != nil {
			return nil, err
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}
