// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package eutils

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strconv"
)

// esearch JSON structures. Only the identifier list is used; the service
// reports query problems in the ERROR field.
type esearchResponse struct {
	Result *esearchResult `json:"esearchresult"`
}

type esearchResult struct {
	Count  string   `json:"count"`
	IDList []string `json:"idlist"`
	Error  string   `json:"ERROR"`
}

// Search runs an esearch query against PubMed and returns up to MaxResults
// identifiers in the order the service returned them.
func (c *Client) Search(ctx context.Context, query string) ([]string, error) {
	params := url.Values{
		"db":      {database},
		"term":    {query},
		"retmode": {"json"},
		"retmax":  {strconv.Itoa(MaxResults)},
	}

	body, err := c.get(ctx, endpointSearch, c.endpointURL(endpointSearch, params))
	if err != nil {
		return nil, err
	}
	return parseSearch(body)
}

func parseSearch(body []byte) ([]string, error) {
	var resp esearchResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, &ParseError{Endpoint: endpointSearch, Err: err}
	}
	if resp.Result == nil {
		return nil, &ParseError{Endpoint: endpointSearch, Err: errors.New("missing esearchresult")}
	}
	if resp.Result.IDList == nil {
		if resp.Result.Error != "" {
			return nil, &ParseError{Endpoint: endpointSearch, Err: fmt.Errorf("missing idlist: %s", resp.Result.Error)}
		}
		return nil, &ParseError{Endpoint: endpointSearch, Err: errors.New("missing idlist")}
	}

	ids := resp.Result.IDList
	if len(ids) > MaxResults {
		ids = ids[:MaxResults]
	}
	return ids, nil
}
