package types

import "time"

// HTTPConfig holds shared HTTP settings used by stages that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout. Zero means no timeout, the
	// net/http client default.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "get-papers-list/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// EutilsConfig holds settings for the NCBI E-utilities client.
type EutilsConfig struct {
	HTTPConfig `yaml:",inline"`

	// BaseURL is the E-utilities root; esearch.fcgi and efetch.fcgi are
	// resolved against it.
	BaseURL string `json:"base_url" yaml:"base_url"`

	// Tool and Email identify the caller to NCBI. Both are optional.
	Tool  string `json:"tool,omitempty" yaml:"tool,omitempty"`
	Email string `json:"email,omitempty" yaml:"email,omitempty"`

	// APIKey is an optional NCBI API key.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`
}

// ExportFormat selects the output table encoding.
type ExportFormat string

const (
	FormatCSV    ExportFormat = "csv"
	FormatXLSX   ExportFormat = "xlsx"
	FormatJSON   ExportFormat = "json"
	FormatYAML   ExportFormat = "yaml"
	FormatSQLite ExportFormat = "sqlite"
)

// ExportConfig holds settings for the export stage.
type ExportConfig struct {
	// Path is the output file; an existing file is overwritten.
	Path string `json:"path" yaml:"path"`

	// Format selects the encoding. Empty means infer from Path.
	Format ExportFormat `json:"format,omitempty" yaml:"format,omitempty"`
}

// Config groups all stage configurations.
type Config struct {
	Eutils EutilsConfig `json:"eutils" yaml:"eutils"`
	Export ExportConfig `json:"export" yaml:"export"`
	Debug  bool         `json:"debug" yaml:"debug"`
}
