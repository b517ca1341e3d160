// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package export

import (
	"database/sql"
	"errors"
	"fmt"
	"os"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/get-papers-list/pkg/types"
)

// WriteSQLite writes the table into a fresh SQLite database at path. Any
// existing file is removed first so the result holds only this run.
// Rows keep their export order in the position column.
func WriteSQLite(records []types.PaperRecord, path string) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return &IOError{Path: path, Err: err}
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return &IOError{Path: path, Err: err}
	}
	defer db.Close()

	if err := writeTable(db, records); err != nil {
		return &IOError{Path: path, Err: err}
	}
	return nil
}

func writeTable(db *sql.DB, records []types.PaperRecord) error {
	if _, err := db.Exec(`CREATE TABLE papers (
		position INTEGER PRIMARY KEY,
		pubmed_id TEXT NOT NULL,
		title TEXT,
		publication_date TEXT,
		non_academic_authors TEXT,
		company_affiliations TEXT,
		corresponding_email TEXT
	)`); err != nil {
		return fmt.Errorf("creating table: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`INSERT INTO papers (position, pubmed_id, title, publication_date,
		non_academic_authors, company_affiliations, corresponding_email)
		VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for i, r := range records {
		row := Row(r)
		if _, err := stmt.Exec(i+1, row[0], row[1], row[2], row[3], row[4], row[5]); err != nil {
			return fmt.Errorf("inserting %s: %w", r.PubmedID, err)
		}
	}
	return tx.Commit()
}
