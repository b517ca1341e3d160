// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package eutils

import (
	"context"
	"net/url"
	"strings"

	"github.com/pdiddy/get-papers-list/pkg/types"
)

// Fetch retrieves one PubMed record as XML and extracts its title,
// publication year, and author entries. Absent fields fall back to
// types.NotAvailable; only undecodable markup is an error.
func (c *Client) Fetch(ctx context.Context, pmid string) (types.Article, error) {
	params := url.Values{
		"db":      {database},
		"id":      {pmid},
		"retmode": {"xml"},
	}

	body, err := c.get(ctx, endpointFetch, c.endpointURL(endpointFetch, params))
	if err != nil {
		return types.Article{}, err
	}
	return parseArticle(pmid, body)
}

// parseArticle extracts the fields used for classification from an efetch
// document. Searches run over the root's descendants in document order.
func parseArticle(pmid string, body []byte) (types.Article, error) {
	root, err := parseTree(body)
	if err != nil {
		return types.Article{}, &ParseError{Endpoint: endpointFetch, Err: err}
	}

	a := types.Article{
		PMID:  pmid,
		Title: types.NotAvailable,
		Year:  types.NotAvailable,
	}

	if el := root.find("ArticleTitle"); el != nil {
		a.Title = el.trimmedText()
	}
	if el := root.findUnder("PubDate", "Year"); el != nil {
		a.Year = el.trimmedText()
	}

	for _, au := range root.findAll("Author") {
		var author types.Author
		if ln := au.child("LastName"); ln != nil {
			author.LastName = ln.trimmedText()
		}
		if aff := au.find("Affiliation"); aff != nil {
			author.Affiliation = aff.trimmedText()
		}
		a.Authors = append(a.Authors, author)
	}
	return a, nil
}

func (e *element) trimmedText() string {
	return strings.TrimSpace(e.text)
}
