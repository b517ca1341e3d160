// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package eutils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/get-papers-list/pkg/types"
)

func TestParseArticleMissingFields(t *testing.T) {
	body := `<PubmedArticleSet><PubmedArticle><MedlineCitation><Article>
		<AuthorList><Author><ForeName>Solo</ForeName></Author></AuthorList>
	</Article></MedlineCitation></PubmedArticle></PubmedArticleSet>`

	a, err := parseArticle("7", []byte(body))
	require.NoError(t, err)

	assert.Equal(t, types.NotAvailable, a.Title)
	assert.Equal(t, types.NotAvailable, a.Year)
	require.Len(t, a.Authors, 1)
	assert.Empty(t, a.Authors[0].LastName)
	assert.Empty(t, a.Authors[0].Affiliation)
}

func TestParseArticleYearOnlyUnderPubDate(t *testing.T) {
	body := `<Set>
		<DateCompleted><Year>1999</Year></DateCompleted>
		<PubDate><MedlineDate>2001 Spring</MedlineDate></PubDate>
		<PubDate><Year>2002</Year></PubDate>
	</Set>`

	a, err := parseArticle("1", []byte(body))
	require.NoError(t, err)
	assert.Equal(t, "2002", a.Year)
}

func TestParseArticleFirstTitleWins(t *testing.T) {
	body := `<Set>
		<A><ArticleTitle>First</ArticleTitle></A>
		<ArticleTitle>Second</ArticleTitle>
	</Set>`

	a, err := parseArticle("1", []byte(body))
	require.NoError(t, err)
	assert.Equal(t, "First", a.Title)
}

func TestParseArticleLastNameIsDirectChild(t *testing.T) {
	body := `<Set><Author>
		<Identifier><LastName>Nested</LastName></Identifier>
		<AffiliationInfo><Affiliation>Acme Labs</Affiliation></AffiliationInfo>
	</Author></Set>`

	a, err := parseArticle("1", []byte(body))
	require.NoError(t, err)
	require.Len(t, a.Authors, 1)
	assert.Empty(t, a.Authors[0].LastName)
	assert.Equal(t, "Acme Labs", a.Authors[0].Affiliation)
}

func TestParseArticleEntities(t *testing.T) {
	body := `<Set><ArticleTitle>Smith &amp; Jones&#8217;s study&nbsp;</ArticleTitle></Set>`

	a, err := parseArticle("1", []byte(body))
	require.NoError(t, err)
	assert.Equal(t, "Smith & Jones’s study", a.Title)
}

func TestParseArticleErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"empty body", ""},
		{"plain text", "Service unavailable"},
		{"unclosed", "<Set><Author>"},
		{"mismatched", "<Set></Author>"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseArticle("1", []byte(tt.body))
			require.Error(t, err)
			assert.True(t, IsParseError(err))
		})
	}
}

func TestTreeFindOrder(t *testing.T) {
	root, err := parseTree([]byte(`<r><a><b>1</b></a><b>2</b><c><b>3</b></c></r>`))
	require.NoError(t, err)

	all := root.findAll("b")
	require.Len(t, all, 3)
	assert.Equal(t, "1", all[0].text)
	assert.Equal(t, "2", all[1].text)
	assert.Equal(t, "3", all[2].text)

	assert.Equal(t, "1", root.find("b").text)
	assert.Equal(t, "2", root.child("b").text)
	assert.Nil(t, root.find("r"), "root is not its own descendant")
	assert.Equal(t, "123", root.text)
}
