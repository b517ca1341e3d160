// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pipeline runs the search, fetch-and-classify, and collect stages
// in order for one query.
package pipeline

import (
	"context"
	"fmt"
	"io"

	"github.com/pdiddy/get-papers-list/internal/affiliation"
	"github.com/pdiddy/get-papers-list/pkg/types"
)

// Source finds identifiers for a query and fetches one article per
// identifier. *eutils.Client implements it.
type Source interface {
	Search(ctx context.Context, query string) ([]string, error)
	Fetch(ctx context.Context, pmid string) (types.Article, error)
}

// Options controls diagnostic output.
type Options struct {
	// Debug prints the identifiers found and each accepted title to the
	// writer passed to Run.
	Debug bool
}

// Run searches for query, then fetches and classifies each identifier one
// at a time in search order. Articles with no non-academic author are
// dropped. The first error aborts the run and no records are returned.
func Run(ctx context.Context, src Source, query string, opts Options, w io.Writer) ([]types.PaperRecord, error) {
	ids, err := src.Search(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("searching %q: %w", query, err)
	}
	if opts.Debug {
		fmt.Fprintf(w, "Found PubMed IDs: %v\n", ids)
	}

	var records []types.PaperRecord
	for _, id := range ids {
		article, err := src.Fetch(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("fetching %s: %w", id, err)
		}

		rec, ok := affiliation.Classify(article)
		if !ok {
			continue
		}
		records = append(records, rec)
		if opts.Debug {
			fmt.Fprintf(w, "Added paper: %s\n", rec.Title)
		}
	}
	return records, nil
}
