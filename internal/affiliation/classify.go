// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package affiliation decides whether an author's affiliation names a
// commercial organization and builds the output record for an article.
//
// The test is a plain keyword heuristic. It misfires on academic names
// such as "Jackson Labs" and misses companies without a listed keyword;
// both are accepted behavior.
package affiliation

import (
	"strings"

	"github.com/pdiddy/get-papers-list/pkg/types"
)

// Keywords are the lowercase substrings that mark an affiliation as
// non-academic.
var Keywords = []string{"pharma", "biotech", "therapeutics", "labs", "inc", "ltd"}

// IsNonAcademic reports whether affiliation contains any keyword,
// ignoring case. An empty affiliation never matches.
func IsNonAcademic(affiliation string) bool {
	if affiliation == "" {
		return false
	}
	lower := strings.ToLower(affiliation)
	for _, kw := range Keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// Classify builds the PaperRecord for an article from its non-academic
// authors. It returns false when no author matched; such an article
// produces no record at all.
//
// Matched authors contribute their last name and full affiliation in
// author order. When a matched affiliation contains "@", its last
// whitespace-delimited token becomes the email, so the last such author wins.
func Classify(a types.Article) (types.PaperRecord, bool) {
	rec := types.PaperRecord{
		PubmedID:        a.PMID,
		Title:           a.Title,
		PublicationDate: a.Year,
	}

	for _, author := range a.Authors {
		if !IsNonAcademic(author.Affiliation) {
			continue
		}
		rec.NonAcademicAuthors = append(rec.NonAcademicAuthors, author.LastName)
		rec.CompanyAffiliations = append(rec.CompanyAffiliations, author.Affiliation)
		if strings.Contains(author.Affiliation, "@") {
			rec.CorrespondingEmail = lastToken(author.Affiliation)
		}
	}

	if len(rec.NonAcademicAuthors) == 0 {
		return types.PaperRecord{}, false
	}
	return rec, true
}

func lastToken(s string) string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return ""
	}
	return fields[len(fields)-1]
}
