// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package dataset writes the collection results to a SQLite file so the
// paper set and annual table can be queried with ordinary SQL tooling.
// The file is a write-once output artifact regenerated on each run, not a
// store the pipeline reads back.
package dataset

import (
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/pubtrends/pkg/types"
)

// DatabaseFile is the file name written under the output directory.
const DatabaseFile = "research_data.db"

// Store wraps the SQLite database holding one run's output.
type Store struct {
	db *sql.DB
}

const schema = `
CREATE TABLE IF NOT EXISTS papers (
	openalex_id     TEXT,
	title           TEXT NOT NULL,
	year            INTEGER,
	doi             TEXT,
	venue           TEXT,
	citation_count  INTEGER NOT NULL DEFAULT 0,
	open_access     INTEGER NOT NULL DEFAULT 0,
	authors         TEXT,
	search_term     TEXT,
	category        TEXT,
	source_strategy TEXT
);
CREATE INDEX IF NOT EXISTS idx_papers_year ON papers(year);
CREATE INDEX IF NOT EXISTS idx_papers_category ON papers(category);

CREATE TABLE IF NOT EXISTS annual_summary (
	year                  INTEGER PRIMARY KEY,
	core_papers           INTEGER NOT NULL,
	related_papers        INTEGER NOT NULL,
	total_papers          INTEGER NOT NULL,
	core_citations        INTEGER NOT NULL,
	related_citations     INTEGER NOT NULL,
	total_citations       INTEGER NOT NULL,
	core_avg_citations    REAL NOT NULL,
	related_avg_citations REAL NOT NULL,
	total_avg_citations   REAL NOT NULL,
	core_open_access      INTEGER NOT NULL,
	related_open_access   INTEGER NOT NULL,
	total_open_access     INTEGER NOT NULL,
	core_oa_percentage    REAL NOT NULL,
	related_oa_percentage REAL NOT NULL,
	total_oa_percentage   REAL NOT NULL,
	growth_percent        REAL NOT NULL
);
`

// Open opens or creates the SQLite database at path and ensures the
// schema exists. Existing rows from a previous run are cleared so the
// file always reflects exactly one run.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	if _, err := db.Exec("DELETE FROM papers; DELETE FROM annual_summary;"); err != nil {
		db.Close()
		return nil, fmt.Errorf("clearing previous run: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// WritePapers inserts the deduplicated paper set in one transaction.
func (s *Store) WritePapers(papers []types.Paper) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}

	stmt, err := tx.Prepare(`INSERT INTO papers
		(openalex_id, title, year, doi, venue, citation_count, open_access,
		 authors, search_term, category, source_strategy)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for _, p := range papers {
		names := make([]string, len(p.Authors))
		for i, a := range p.Authors {
			names[i] = a.Name
		}
		_, err := stmt.Exec(
			p.ID, p.Title, p.Year, p.DOI, p.Venue,
			p.CitationCount, p.OpenAccess,
			strings.Join(names, "; "),
			p.SearchTerm, string(p.Category), string(p.Strategy),
		)
		if err != nil {
			tx.Rollback()
			return fmt.Errorf("inserting paper %q: %w", p.ID, err)
		}
	}

	return tx.Commit()
}

// WriteSummary inserts the annual summary table in one transaction.
func (s *Store) WriteSummary(rows []types.AnnualSummary) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}

	stmt, err := tx.Prepare(`INSERT INTO annual_summary
		(year, core_papers, related_papers, total_papers,
		 core_citations, related_citations, total_citations,
		 core_avg_citations, related_avg_citations, total_avg_citations,
		 core_open_access, related_open_access, total_open_access,
		 core_oa_percentage, related_oa_percentage, total_oa_percentage,
		 growth_percent)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for _, r := range rows {
		_, err := stmt.Exec(
			r.Year, r.CorePapers, r.RelatedPapers, r.TotalPapers,
			r.CoreCitations, r.RelatedCitations, r.TotalCitations,
			r.CoreAvgCitations, r.RelatedAvgCitations, r.TotalAvgCitations,
			r.CoreOpenAccess, r.RelatedOpenAccess, r.TotalOpenAccess,
			r.CoreOAPercent, r.RelatedOAPercent, r.TotalOAPercent,
			r.GrowthPercent,
		)
		if err != nil {
			tx.Rollback()
			return fmt.Errorf("inserting summary year %d: %w", r.Year, err)
		}
	}

	return tx.Commit()
}

// Write opens the database at path, writes papers and summary, and closes
// it. An empty paper set writes nothing and creates no file.
func Write(path string, papers []types.Paper, rows []types.AnnualSummary) error {
	if len(papers) == 0 {
		return nil
	}
	s, err := Open(path)
	if err != nil {
		return err
	}
	defer s.Close()

	if err := s.WritePapers(papers); err != nil {
		return err
	}
	if err := s.WriteSummary(rows); err != nil {
		return err
	}
	return s.Close()
}
