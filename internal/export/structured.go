// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package export

import (
	"encoding/json"
	"os"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/get-papers-list/pkg/types"
)

// WriteJSON writes records as an indented JSON array. Multi-valued fields
// stay lists rather than joined strings.
func WriteJSON(records []types.PaperRecord, path string) error {
	if records == nil {
		records = []types.PaperRecord{}
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return &IOError{Path: path, Err: err}
	}
	return nil
}

// WriteYAML writes records as a YAML list.
func WriteYAML(records []types.PaperRecord, path string) error {
	if records == nil {
		records = []types.PaperRecord{}
	}
	data, err := yaml.Marshal(records)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return &IOError{Path: path, Err: err}
	}
	return nil
}
