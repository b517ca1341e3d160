// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"os"

	"github.com/spf13/viper"

	"github.com/pdiddy/get-papers-list/internal/eutils"
	"github.com/pdiddy/get-papers-list/internal/secrets"
	"github.com/pdiddy/get-papers-list/pkg/types"
)

// Config keys read through viper. Environment overrides use the
// GET_PAPERS_LIST_ prefix with dots replaced by underscores.
const (
	keyBaseURL   = "eutils.base_url"
	keyTool      = "eutils.tool"
	keyEmail     = "eutils.email"
	keyAPIKey    = "eutils.api_key"
	keyTimeout   = "http.timeout"
	keyUserAgent = "http.user_agent"
)

func setDefaults(v *viper.Viper) {
	v.SetDefault(keyBaseURL, eutils.DefaultBaseURL)
	v.SetDefault(keyTool, "get-papers-list")
	v.SetDefault(keyUserAgent, "get-papers-list/"+version)
	// Zero keeps the net/http default of no timeout.
	v.SetDefault(keyTimeout, 0)
}

// buildConfig assembles the run configuration. Credentials come from the
// config file or environment first, then .secrets/, then the NCBI_API_KEY
// and NCBI_EMAIL variables (which a .env file may supply).
func buildConfig(v *viper.Viper, s secrets.Secrets, file, format string, debug bool) types.Config {
	if file == "" {
		file = defaultOutput
	}

	apiKey := s.Or(secrets.NCBIAPIKey, v.GetString(keyAPIKey))
	if apiKey == "" {
		apiKey = os.Getenv("NCBI_API_KEY")
	}
	email := s.Or(secrets.NCBIEmail, v.GetString(keyEmail))
	if email == "" {
		email = os.Getenv("NCBI_EMAIL")
	}

	return types.Config{
		Eutils: types.EutilsConfig{
			HTTPConfig: types.HTTPConfig{
				Timeout:   v.GetDuration(keyTimeout),
				UserAgent: v.GetString(keyUserAgent),
			},
			BaseURL: v.GetString(keyBaseURL),
			Tool:    v.GetString(keyTool),
			Email:   email,
			APIKey:  apiKey,
		},
		Export: types.ExportConfig{
			Path:   file,
			Format: types.ExportFormat(format),
		},
		Debug: debug,
	}
}
