// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package eutils is a minimal client for the NCBI E-utilities PubMed
// endpoints: esearch for identifiers and efetch for article XML.
package eutils

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/pdiddy/get-papers-list/internal/httputil"
	"github.com/pdiddy/get-papers-list/pkg/types"
)

const (
	// DefaultBaseURL is the public E-utilities root.
	DefaultBaseURL = "https://eutils.ncbi.nlm.nih.gov/entrez/eutils"

	// MaxResults caps the number of identifiers requested from esearch.
	MaxResults = 10

	database = "pubmed"

	endpointSearch = "esearch"
	endpointFetch  = "efetch"
)

// Client issues E-utilities requests with an explicitly supplied HTTP
// client and configuration. It holds no other state.
type Client struct {
	httpClient *http.Client
	cfg        types.EutilsConfig
}

// NewClient returns a Client. A nil httpClient means http.DefaultClient;
// an empty BaseURL means DefaultBaseURL.
func NewClient(httpClient *http.Client, cfg types.EutilsConfig) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	return &Client{httpClient: httpClient, cfg: cfg}
}

// endpointURL builds the request URL for an E-utilities program, adding
// the caller identification parameters when configured.
func (c *Client) endpointURL(program string, params url.Values) string {
	if c.cfg.Tool != "" {
		params.Set("tool", c.cfg.Tool)
	}
	if c.cfg.Email != "" {
		params.Set("email", c.cfg.Email)
	}
	if c.cfg.APIKey != "" {
		params.Set("api_key", c.cfg.APIKey)
	}
	return strings.TrimRight(c.cfg.BaseURL, "/") + "/" + program + ".fcgi?" + params.Encode()
}

// get performs the request and maps failures to *RequestError.
func (c *Client) get(ctx context.Context, endpoint, reqURL string) ([]byte, error) {
	body, err := httputil.Get(ctx, c.httpClient, reqURL, c.cfg.UserAgent)
	if err != nil {
		re := &RequestError{Endpoint: endpoint, Err: err}
		var se *httputil.StatusError
		if errors.As(err, &se) {
			re.StatusCode = se.StatusCode
		}
		return nil, re
	}
	return body, nil
}
