// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/pdiddy/get-papers-list/pkg/types"
)

// WriteCSV writes a UTF-8, comma-separated table with a header row and
// CRLF line endings.
func WriteCSV(records []types.PaperRecord, path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return &IOError{Path: path, Err: err}
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = &IOError{Path: path, Err: cerr}
		}
	}()

	if err := EncodeCSV(records, f); err != nil {
		return &IOError{Path: path, Err: err}
	}
	return nil
}

// EncodeCSV writes the CSV table to w.
func EncodeCSV(records []types.PaperRecord, w io.Writer) error {
	cw := csv.NewWriter(w)
	cw.UseCRLF = true

	if err := cw.Write(Header); err != nil {
		return err
	}
	for _, r := range records {
		if err := cw.Write(Row(r)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ReadCSV reads a table written by WriteCSV and returns its data rows.
// The header must match Header exactly.
func ReadCSV(r io.Reader) ([][]string, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(Header)

	header, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("missing header row")
	}
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}
	for i, col := range Header {
		if header[i] != col {
			return nil, fmt.Errorf("unexpected column %d: got %q, want %q", i+1, header[i], col)
		}
	}

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading rows: %w", err)
	}
	return rows, nil
}
