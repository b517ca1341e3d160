// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the get-papers-list CLI. It searches
// PubMed, keeps papers with at least one author at a commercial
// organization, and writes them to a table.
package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/get-papers-list/internal/eutils"
	"github.com/pdiddy/get-papers-list/internal/export"
	"github.com/pdiddy/get-papers-list/internal/pipeline"
	"github.com/pdiddy/get-papers-list/internal/secrets"
	"github.com/pdiddy/get-papers-list/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

const (
	defaultOutput = "results.csv"
	secretsDir    = ".secrets/"
)

// loadedSecrets holds credentials loaded from .secrets/ at startup.
var loadedSecrets secrets.Secrets

// rootCmd searches PubMed for the query given as its only argument.
var rootCmd = &cobra.Command{
	Use:   "get-papers-list <query>",
	Short: "Fetch PubMed papers with pharmaceutical or biotech affiliations",
	Long: `get-papers-list searches PubMed for a free-text query, fetches each of the
first 10 matching articles, and keeps those with at least one author whose
affiliation names a company (pharma, biotech, therapeutics, labs, inc, ltd).

Surviving papers are written to a table: CSV by default, or xlsx, json,
yaml, or sqlite by --format or the output file extension. The file is
written only after every request has succeeded.`,
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Load .env if present (NCBI_API_KEY, NCBI_EMAIL).
		_ = godotenv.Load()

		s, err := secrets.Load(secretsDir, os.Stderr)
		if err != nil {
			return err
		}
		loadedSecrets = s
		if len(s) > 0 {
			fmt.Fprintf(os.Stderr, "Loaded secrets: %v\n", s.Keys())
		}
		return nil
	},
	RunE: runRoot,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./get-papers-list.yaml or ~/.config/get-papers-list/config.yaml)")

	rootCmd.Flags().StringP("file", "f", defaultOutput, "output filename")
	rootCmd.Flags().BoolP("debug", "d", false, "print identifiers found and each accepted paper")
	rootCmd.Flags().String("format", "", "output format: csv, xlsx, json, yaml, sqlite (default: from file extension, else csv)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("get-papers-list")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "get-papers-list"))
		}
	}

	setDefaults(viper.GetViper())
	viper.SetEnvPrefix("GET_PAPERS_LIST")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func runRoot(cmd *cobra.Command, args []string) error {
	file, _ := cmd.Flags().GetString("file")
	format, _ := cmd.Flags().GetString("format")
	debug, _ := cmd.Flags().GetBool("debug")

	cfg := buildConfig(viper.GetViper(), loadedSecrets, file, format, debug)
	return run(cmd.Context(), cfg, args[0], cmd.OutOrStdout())
}

// run executes the pipeline and writes the table. Nothing is written when
// any request fails.
func run(ctx context.Context, cfg types.Config, query string, w io.Writer) error {
	if _, err := export.ResolveFormat(cfg.Export); err != nil {
		return err
	}

	httpClient := &http.Client{Timeout: cfg.Eutils.Timeout}
	client := eutils.NewClient(httpClient, cfg.Eutils)

	records, err := pipeline.Run(ctx, client, query, pipeline.Options{Debug: cfg.Debug}, w)
	if err != nil {
		return err
	}

	if err := export.Write(records, cfg.Export); err != nil {
		return err
	}
	fmt.Fprintf(w, "%d papers written to %s\n", len(records), cfg.Export.Path)
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
