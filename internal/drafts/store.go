// Package drafts keeps essay drafts in a local sqlite database.
package drafts

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

var (
	ErrEmpty    = errors.New("draft body is empty")
	ErrNotFound = errors.New("draft not found")
)

type Store struct {
	db *sql.DB
}

type Draft struct {
	ID        string
	Topic     string
	Body      string
	Words     int
	CreatedAt time.Time
}

// Open opens or creates the database at path, creating its directory.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("create drafts directory: %w", err)
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL")
	if err != nil {
		return nil, err
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate drafts: %w", err)
	}

	return store, nil
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS drafts (
		id TEXT PRIMARY KEY,
		topic TEXT NOT NULL DEFAULT '',
		body TEXT NOT NULL,
		words INTEGER NOT NULL DEFAULT 0,
		created_at TIMESTAMP NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_drafts_created ON drafts(created_at);
	`
	_, err := s.db.Exec(schema)
	return err
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Save stores a new draft and returns it with its assigned ID.
func (s *Store) Save(body, topic string) (*Draft, error) {
	if strings.TrimSpace(body) == "" {
		return nil, ErrEmpty
	}

	d := &Draft{
		ID:        uuid.NewString(),
		Topic:     topic,
		Body:      body,
		Words:     len(strings.Fields(body)),
		CreatedAt: time.Now().UTC(),
	}
	_, err := s.db.Exec(
		`INSERT INTO drafts (id, topic, body, words, created_at) VALUES (?, ?, ?, ?, ?)`,
		d.ID, d.Topic, d.Body, d.Words, d.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return d, nil
}

// Get retrieves a draft by ID
func (s *Store) Get(id string) (*Draft, error) {
	row := s.db.QueryRow(
		`SELECT id, topic, body, words, created_at FROM drafts WHERE id = ?`, id,
	)

	var d Draft
	err := row.Scan(&d.ID, &d.Topic, &d.Body, &d.Words, &d.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// List returns drafts newest first
func (s *Store) List() ([]Draft, error) {
	rows, err := s.db.Query(
		`SELECT id, topic, body, words, created_at FROM drafts ORDER BY created_at DESC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var drafts []Draft
	for rows.Next() {
		var d Draft
		if err := rows.Scan(&d.ID, &d.Topic, &d.Body, &d.Words, &d.CreatedAt); err != nil {
			return nil, err
		}
		drafts = append(drafts, d)
	}
	return drafts, rows.Err()
}

// Delete removes a draft
func (s *Store) Delete(id string) error {
	res, err := s.db.Exec(`DELETE FROM drafts WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
