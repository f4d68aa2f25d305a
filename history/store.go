// Package history provides SQLite-backed logging of compile and analysis
// runs. It records summaries and findings, not the user's grammar text.
package history

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/dslsketch/go-dslsketch/automaton"
	"github.com/dslsketch/go-dslsketch/semantic"
)

// Store handles database operations for run logging.
type Store struct {
	db *sql.DB
}

// Build summarizes one compile run.
type Build struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	Patterns  int       `json:"patterns"`
	States    int       `json:"states"`
	Symbols   int       `json:"symbols"`
	Accepting int       `json:"accepting"`
}

// Check summarizes one semantic analysis run. Findings holds the error
// records as JSON.
type Check struct {
	ID         string           `json:"id"`
	BuildID    string           `json:"build_id,omitempty"`
	CreatedAt  time.Time        `json:"created_at"`
	AssignKind string           `json:"assign_kind"`
	IdentKind  string           `json:"ident_kind"`
	Declared   int              `json:"declared"`
	Errors     int              `json:"errors"`
	Findings   []semantic.Error `json:"findings,omitempty"`
}

// Open creates a store backed by the database at path, creating the schema
// if needed.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("history: open database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("history: migrate: %w", err)
	}
	return store, nil
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS builds (
		id TEXT PRIMARY KEY,
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		patterns INTEGER NOT NULL,
		states INTEGER NOT NULL,
		symbols INTEGER NOT NULL,
		accepting INTEGER NOT NULL
	);

	CREATE TABLE IF NOT EXISTS checks (
		id TEXT PRIMARY KEY,
		build_id TEXT,
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		assign_kind TEXT NOT NULL,
		ident_kind TEXT NOT NULL,
		declared INTEGER NOT NULL,
		errors INTEGER NOT NULL,
		findings TEXT,
		FOREIGN KEY (build_id) REFERENCES builds(id)
	);

	CREATE INDEX IF NOT EXISTS idx_checks_build ON checks(build_id);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// RecordBuild logs a compile run and returns its ID.
func (s *Store) RecordBuild(a *automaton.Automaton, patterns int) (string, error) {
	id := uuid.New().String()
	_, err := s.db.Exec(
		`INSERT INTO builds (id, created_at, patterns, states, symbols, accepting) VALUES (?, ?, ?, ?, ?, ?)`,
		id, time.Now().UTC(), patterns, len(a.States), len(a.Alphabet), len(a.Accepting),
	)
	if err != nil {
		return "", fmt.Errorf("history: record build: %w", err)
	}
	return id, nil
}

// RecordCheck logs a semantic analysis run and returns its ID. buildID may
// be empty when the check ran against an automaton that was not recorded.
func (s *Store) RecordCheck(buildID, assignKind, identKind string, symbols *semantic.SymbolTable, findings []semantic.Error) (string, error) {
	id := uuid.New().String()

	var findingsJSON []byte
	if len(findings) > 0 {
		var err error
		findingsJSON, err = json.Marshal(findings)
		if err != nil {
			return "", fmt.Errorf("history: encode findings: %w", err)
		}
	}

	_, err := s.db.Exec(
		`INSERT INTO checks (id, build_id, created_at, assign_kind, ident_kind, declared, errors, findings) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		id, nullable(buildID), time.Now().UTC(), assignKind, identKind, symbols.Len(), len(findings), string(findingsJSON),
	)
	if err != nil {
		return "", fmt.Errorf("history: record check: %w", err)
	}
	return id, nil
}

// Builds returns recorded compile runs, most recent first.
func (s *Store) Builds(limit int) ([]Build, error) {
	rows, err := s.db.Query(
		`SELECT id, created_at, patterns, states, symbols, accepting FROM builds ORDER BY created_at DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("history: query builds: %w", err)
	}
	defer rows.Close()

	var builds []Build
	for rows.Next() {
		var b Build
		if err := rows.Scan(&b.ID, &b.CreatedAt, &b.Patterns, &b.States, &b.Symbols, &b.Accepting); err != nil {
			return nil, fmt.Errorf("history: scan build: %w", err)
		}
		builds = append(builds, b)
	}
	return builds, rows.Err()
}

// Checks returns recorded analysis runs, most recent first.
func (s *Store) Checks(limit int) ([]Check, error) {
	rows, err := s.db.Query(
		`SELECT id, build_id, created_at, assign_kind, ident_kind, declared, errors, findings FROM checks ORDER BY created_at DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("history: query checks: %w", err)
	}
	defer rows.Close()

	var checks []Check
	for rows.Next() {
		var c Check
		var buildID sql.NullString
		var findings sql.NullString
		if err := rows.Scan(&c.ID, &buildID, &c.CreatedAt, &c.AssignKind, &c.IdentKind, &c.Declared, &c.Errors, &findings); err != nil {
			return nil, fmt.Errorf("history: scan check: %w", err)
		}
		c.BuildID = buildID.String
		if findings.Valid && findings.String != "" {
			if err := json.Unmarshal([]byte(findings.String), &c.Findings); err != nil {
				return nil, fmt.Errorf("history: decode findings: %w", err)
			}
		}
		checks = append(checks, c)
	}
	return checks, rows.Err()
}

func nullable(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
