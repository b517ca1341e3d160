// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/get-papers-list/internal/eutils"
	"github.com/pdiddy/get-papers-list/internal/export"
	"github.com/pdiddy/get-papers-list/internal/secrets"
	"github.com/pdiddy/get-papers-list/pkg/types"
)

func newTestViper() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	return v
}

func TestBuildConfigDefaults(t *testing.T) {
	t.Setenv("NCBI_API_KEY", "")
	t.Setenv("NCBI_EMAIL", "")

	cfg := buildConfig(newTestViper(), secrets.Secrets{}, "", "", false)

	assert.Equal(t, eutils.DefaultBaseURL, cfg.Eutils.BaseURL)
	assert.Equal(t, "get-papers-list", cfg.Eutils.Tool)
	assert.Equal(t, "get-papers-list/"+version, cfg.Eutils.UserAgent)
	assert.Zero(t, cfg.Eutils.Timeout)
	assert.Empty(t, cfg.Eutils.APIKey)
	assert.Equal(t, defaultOutput, cfg.Export.Path)
	assert.Empty(t, cfg.Export.Format)
	assert.False(t, cfg.Debug)
}

func TestBuildConfigCredentialPrecedence(t *testing.T) {
	t.Setenv("NCBI_API_KEY", "from-env")
	t.Setenv("NCBI_EMAIL", "env@example.org")

	v := newTestViper()
	s := secrets.Secrets{secrets.NCBIAPIKey: "from-secrets"}

	cfg := buildConfig(v, s, "out.xlsx", "xlsx", true)
	assert.Equal(t, "from-secrets", cfg.Eutils.APIKey)
	assert.Equal(t, "env@example.org", cfg.Eutils.Email)
	assert.Equal(t, "out.xlsx", cfg.Export.Path)
	assert.Equal(t, types.FormatXLSX, cfg.Export.Format)
	assert.True(t, cfg.Debug)

	v.Set(keyAPIKey, "from-config")
	v.Set(keyTimeout, "30s")
	cfg = buildConfig(v, s, "", "", false)
	assert.Equal(t, "from-config", cfg.Eutils.APIKey)
	assert.Equal(t, 30*time.Second, cfg.Eutils.Timeout)

	cfg = buildConfig(newTestViper(), secrets.Secrets{}, "", "", false)
	assert.Equal(t, "from-env", cfg.Eutils.APIKey)
}

func TestRootRequiresOneQuery(t *testing.T) {
	assert.Error(t, rootCmd.Args(rootCmd, nil))
	assert.Error(t, rootCmd.Args(rootCmd, []string{"a", "b"}))
	assert.NoError(t, rootCmd.Args(rootCmd, []string{"cancer immunotherapy"}))
}

func TestRootFlags(t *testing.T) {
	f := rootCmd.Flags().Lookup("file")
	require.NotNil(t, f)
	assert.Equal(t, "f", f.Shorthand)
	assert.Equal(t, defaultOutput, f.DefValue)

	d := rootCmd.Flags().Lookup("debug")
	require.NotNil(t, d)
	assert.Equal(t, "d", d.Shorthand)
	assert.Equal(t, "false", d.DefValue)
}

func TestVersionCmd(t *testing.T) {
	var buf bytes.Buffer
	versionCmd.SetOut(&buf)
	versionCmd.Run(versionCmd, nil)
	assert.Equal(t, "get-papers-list dev\n", buf.String())
}

// fakeEutils serves esearch with ids and efetch from docs keyed by id.
func fakeEutils(t *testing.T, searchStatus int, ids string, docs map[string]string) *httptest.Server {
	t.Helper()
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/esearch.fcgi":
			w.WriteHeader(searchStatus)
			fmt.Fprintf(w, `{"esearchresult": {"idlist": %s}}`, ids)
		case "/efetch.fcgi":
			fmt.Fprint(w, docs[r.URL.Query().Get("id")])
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(ts.Close)
	return ts
}

func testConfig(baseURL, path string) types.Config {
	return types.Config{
		Eutils: types.EutilsConfig{BaseURL: baseURL},
		Export: types.ExportConfig{Path: path},
	}
}

const companyDoc = `<PubmedArticleSet><PubmedArticle><MedlineCitation><Article>
	<ArticleTitle>Company paper</ArticleTitle>
	<AuthorList><Author><LastName>Doe</LastName>
		<AffiliationInfo><Affiliation>Genentech Inc, contact@genentech.com</Affiliation></AffiliationInfo>
	</Author></AuthorList>
</Article></MedlineCitation></PubmedArticle></PubmedArticleSet>`

const academicDoc = `<PubmedArticleSet><PubmedArticle><MedlineCitation><Article>
	<ArticleTitle>Academic paper</ArticleTitle>
	<AuthorList><Author><LastName>Ng</LastName>
		<AffiliationInfo><Affiliation>Dept. of Biology, State University</Affiliation></AffiliationInfo>
	</Author></AuthorList>
</Article></MedlineCitation></PubmedArticle></PubmedArticleSet>`

func TestRunWritesFilteredTable(t *testing.T) {
	ts := fakeEutils(t, http.StatusOK, `["1", "2"]`, map[string]string{"1": companyDoc, "2": academicDoc})
	path := filepath.Join(t.TempDir(), "results.csv")

	var out bytes.Buffer
	require.NoError(t, run(context.Background(), testConfig(ts.URL, path), "q", &out))
	assert.Equal(t, fmt.Sprintf("1 papers written to %s\n", path), out.String())

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := export.ReadCSV(f)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, []string{
		"1", "Company paper", types.NotAvailable, "Doe",
		"Genentech Inc, contact@genentech.com", "contact@genentech.com",
	}, rows[0])
}

func TestRunNoIdentifiersWritesHeaderOnly(t *testing.T) {
	ts := fakeEutils(t, http.StatusOK, `[]`, nil)
	path := filepath.Join(t.TempDir(), "results.csv")

	var out bytes.Buffer
	require.NoError(t, run(context.Background(), testConfig(ts.URL, path), "q", &out))
	assert.Contains(t, out.String(), "0 papers written to")

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := export.ReadCSV(f)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestRunSearchFailureWritesNothing(t *testing.T) {
	ts := fakeEutils(t, http.StatusInternalServerError, `[]`, nil)
	path := filepath.Join(t.TempDir(), "results.csv")

	err := run(context.Background(), testConfig(ts.URL, path), "q", &bytes.Buffer{})
	require.Error(t, err)
	assert.True(t, eutils.IsRequestError(err))

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr), "no output file on failure")
}

func TestRunRejectsUnknownFormatBeforeRequests(t *testing.T) {
	var calls int
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls++
	}))
	defer ts.Close()

	cfg := testConfig(ts.URL, filepath.Join(t.TempDir(), "out"))
	cfg.Export.Format = "parquet"

	err := run(context.Background(), cfg, "q", &bytes.Buffer{})
	require.Error(t, err)
	assert.Zero(t, calls)
}
