// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package export writes filtered paper records as a fixed six-column table.
// CSV is the default encoding; xlsx, json, yaml, and sqlite carry the same
// columns. The destination file is always replaced.
package export

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/pdiddy/get-papers-list/pkg/types"
)

// Header is the column row of every exported table.
var Header = []string{
	"PubmedID",
	"Title",
	"Publication Date",
	"Non-academic Author(s)",
	"Company Affiliation(s)",
	"Corresponding Author Email",
}

// listSep joins multi-valued fields.
const listSep = ", "

// IOError reports a failure to create or write the output file.
type IOError struct {
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("writing %s: %v", e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// IsIOError returns true if err is or wraps an *IOError.
func IsIOError(err error) bool {
	var ioe *IOError
	return errors.As(err, &ioe)
}

// Row flattens a record into table cells in Header order.
func Row(r types.PaperRecord) []string {
	return []string{
		r.PubmedID,
		r.Title,
		r.PublicationDate,
		strings.Join(r.NonAcademicAuthors, listSep),
		strings.Join(r.CompanyAffiliations, listSep),
		r.CorrespondingEmail,
	}
}

// ResolveFormat returns the format to write: cfg.Format when set,
// otherwise the one implied by the file extension, otherwise CSV.
func ResolveFormat(cfg types.ExportConfig) (types.ExportFormat, error) {
	if cfg.Format != "" {
		switch f := types.ExportFormat(strings.ToLower(string(cfg.Format))); f {
		case types.FormatCSV, types.FormatXLSX, types.FormatJSON, types.FormatYAML, types.FormatSQLite:
			return f, nil
		default:
			return "", fmt.Errorf("unknown export format %q (want csv, xlsx, json, yaml, or sqlite)", cfg.Format)
		}
	}

	switch strings.ToLower(filepath.Ext(cfg.Path)) {
	case ".xlsx":
		return types.FormatXLSX, nil
	case ".json":
		return types.FormatJSON, nil
	case ".yaml", ".yml":
		return types.FormatYAML, nil
	case ".db", ".sqlite", ".sqlite3":
		return types.FormatSQLite, nil
	default:
		return types.FormatCSV, nil
	}
}

// Write encodes records to cfg.Path in the resolved format, replacing any
// existing file.
func Write(records []types.PaperRecord, cfg types.ExportConfig) error {
	if cfg.Path == "" {
		return errors.New("no output path")
	}
	format, err := ResolveFormat(cfg)
	if err != nil {
		return err
	}

	switch format {
	case types.FormatXLSX:
		return WriteXLSX(records, cfg.Path)
	case types.FormatJSON:
		return WriteJSON(records, cfg.Path)
	case types.FormatYAML:
		return WriteYAML(records, cfg.Path)
	case types.FormatSQLite:
		return WriteSQLite(records, cfg.Path)
	default:
		return WriteCSV(records, cfg.Path)
	}
}
