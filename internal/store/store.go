// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package store persists processed papers in a SQLite database and
// answers known-identifier lookups for deduplication.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/paper-discovery/pkg/types"
)

// lookupChunkSize bounds the number of placeholders per IN query; SQLite
// caps bound parameters at 999 by default.
const lookupChunkSize = 500

// Store manages the paper SQLite database.
type Store struct {
	db *sql.DB
	w  io.Writer
}

// Open opens or creates the paper database at cfg.DBPath, creating parent
// directories and the schema as needed. Diagnostics go to w.
func Open(cfg types.StorageConfig, w io.Writer) (*Store, error) {
	if w == nil {
		w = io.Discard
	}
	if cfg.DBPath == "" {
		return nil, fmt.Errorf("database path not configured")
	}

	if dir := filepath.Dir(cfg.DBPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", cfg.DBPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{db: db, w: w}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS papers (
			paper_id TEXT PRIMARY KEY,
			title TEXT NOT NULL,
			abstract TEXT,
			authors TEXT,
			published TEXT,
			categories TEXT,
			venue TEXT,
			arxiv_id TEXT,
			semantic_scholar_id TEXT,
			quality TEXT,
			word_count TEXT,
			author_count INTEGER,
			category_count INTEGER,
			relevance TEXT,
			content_analysis TEXT,
			created_at TEXT,
			processing_timestamp TEXT,
			processor_version TEXT,
			pipeline TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_papers_arxiv_id ON papers(arxiv_id)`,
		`CREATE INDEX IF NOT EXISTS idx_papers_published ON papers(published)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// StorePapers inserts processed papers in a single transaction and returns
// the number of rows actually inserted. Identifiers already present are
// left untouched, so re-running a batch never overwrites earlier results.
func (s *Store) StorePapers(ctx context.Context, papers []types.StoredPaper) (int, error) {
	if len(papers) == 0 {
		return 0, nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx,
		`INSERT OR IGNORE INTO papers (
			paper_id, title, abstract, authors, published, categories,
			venue, arxiv_id, semantic_scholar_id,
			quality, word_count, author_count, category_count,
			relevance, content_analysis,
			created_at, processing_timestamp, processor_version, pipeline
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return 0, fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	inserted := 0
	for _, p := range papers {
		authorsJSON, _ := json.Marshal(p.Authors)
		categoriesJSON, _ := json.Marshal(p.Categories)
		qualityJSON, _ := json.Marshal(p.Quality)
		wordCountJSON, _ := json.Marshal(p.WordCount)
		relevanceJSON, _ := json.Marshal(p.Relevance)
		analysisJSON, _ := json.Marshal(p.ContentAnalysis)

		res, err := stmt.ExecContext(ctx,
			p.PaperID, p.Title, p.Abstract, string(authorsJSON), p.PublicationDate,
			string(categoriesJSON), p.Venue, p.ArxivID, p.SemanticScholarID,
			string(qualityJSON), string(wordCountJSON), len(p.Authors), len(p.Categories),
			string(relevanceJSON), string(analysisJSON),
			p.CreatedAt.Format(time.RFC3339), p.ProcessingTimestamp,
			p.ProcessorVersion, p.Pipeline,
		)
		if err != nil {
			return 0, fmt.Errorf("inserting paper %s: %w", p.PaperID, err)
		}
		if n, err := res.RowsAffected(); err == nil {
			inserted += int(n)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing transaction: %w", err)
	}
	return inserted, nil
}

// LookupKnown returns the subset of candidateIDs already stored. A lookup
// failure degrades to an empty set with a warning, so a broken index never
// blocks processing; the worst case is re-processing a known paper.
func (s *Store) LookupKnown(ctx context.Context, candidateIDs []string) map[string]struct{} {
	known := make(map[string]struct{})
	if len(candidateIDs) == 0 {
		return known
	}

	for start := 0; start < len(candidateIDs); start += lookupChunkSize {
		end := start + lookupChunkSize
		if end > len(candidateIDs) {
			end = len(candidateIDs)
		}
		chunk := candidateIDs[start:end]

		placeholders := make([]byte, 0, 2*len(chunk))
		args := make([]any, 0, len(chunk))
		for i, id := range chunk {
			if i > 0 {
				placeholders = append(placeholders, ',')
			}
			placeholders = append(placeholders, '?')
			args = append(args, id)
		}

		rows, err := s.db.QueryContext(ctx,
			`SELECT paper_id FROM papers WHERE paper_id IN (`+string(placeholders)+`)`, args...)
		if err != nil {
			fmt.Fprintf(s.w, "warning: known-identifier lookup failed: %v\n", err)
			return make(map[string]struct{})
		}

		for rows.Next() {
			var id string
			if err := rows.Scan(&id); err != nil {
				rows.Close()
				fmt.Fprintf(s.w, "warning: known-identifier lookup failed: %v\n", err)
				return make(map[string]struct{})
			}
			known[id] = struct{}{}
		}
		if err := rows.Err(); err != nil {
			rows.Close()
			fmt.Fprintf(s.w, "warning: known-identifier lookup failed: %v\n", err)
			return make(map[string]struct{})
		}
		rows.Close()
	}

	return known
}

// Count returns the number of stored papers.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT count(*) FROM papers`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting papers: %w", err)
	}
	return n, nil
}
