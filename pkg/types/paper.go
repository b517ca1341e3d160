// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the get-papers-list pipeline:
// parsed PubMed articles, filtered paper records, and stage configuration.
package types

// NotAvailable is substituted for an absent title or publication year.
const NotAvailable = "N/A"

// Author is one author entry extracted from a fetched PubMed document.
type Author struct {
	// LastName is the author's family name; empty for collective authors.
	LastName string `json:"last_name" yaml:"last_name"`

	// Affiliation is the first affiliation text listed for the author, or
	// empty when the author has none.
	Affiliation string `json:"affiliation,omitempty" yaml:"affiliation,omitempty"`
}

// Article holds the fields extracted from one efetch document.
type Article struct {
	// PMID is the PubMed identifier used to fetch the document.
	PMID string `json:"pmid" yaml:"pmid"`

	// Title is the article title, or NotAvailable.
	Title string `json:"title" yaml:"title"`

	// Year is the publication year from the PubDate section, or NotAvailable.
	Year string `json:"year" yaml:"year"`

	// Authors lists every author entry in document order.
	Authors []Author `json:"authors" yaml:"authors"`
}

// PaperRecord is one row of output: an article with at least one author
// affiliated with a commercial organization.
type PaperRecord struct {
	PubmedID        string `json:"pubmed_id" yaml:"pubmed_id"`
	Title           string `json:"title" yaml:"title"`
	PublicationDate string `json:"publication_date" yaml:"publication_date"`

	// NonAcademicAuthors and CompanyAffiliations correspond positionally,
	// in the order the authors matched.
	NonAcademicAuthors  []string `json:"non_academic_authors" yaml:"non_academic_authors"`
	CompanyAffiliations []string `json:"company_affiliations" yaml:"company_affiliations"`

	// CorrespondingEmail is the last whitespace token of the last matched
	// affiliation containing "@", or empty.
	CorrespondingEmail string `json:"corresponding_email,omitempty" yaml:"corresponding_email,omitempty"`
}
