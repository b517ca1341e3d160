// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package eutils

// sampleEfetchXML is a trimmed efetch response with two authors, one of
// them at a company with a contact address.
const sampleEfetchXML = `<?xml version="1.0" ?>
<!DOCTYPE PubmedArticleSet PUBLIC "-//NLM//DTD PubMedArticle, 1st January 2025//EN" "https://dtd.nlm.nih.gov/ncbi/pubmed/out/pubmed_250101.dtd">
<PubmedArticleSet>
  <PubmedArticle>
    <MedlineCitation Status="MEDLINE" Owner="NLM">
      <PMID Version="1">38000001</PMID>
      <Article PubModel="Print">
        <Journal>
          <JournalIssue CitedMedium="Internet">
            <Volume>12</Volume>
            <PubDate>
              <Year>2023</Year>
              <Month>Nov</Month>
            </PubDate>
          </JournalIssue>
          <Title>Journal of Things</Title>
        </Journal>
        <ArticleTitle>Antibody engineering for <i>in vivo</i> delivery.</ArticleTitle>
        <AuthorList CompleteYN="Y">
          <Author ValidYN="Y">
            <LastName>Smith</LastName>
            <ForeName>Jane</ForeName>
            <AffiliationInfo>
              <Affiliation>Department of Biology, State University, Boston, MA, USA.</Affiliation>
            </AffiliationInfo>
          </Author>
          <Author ValidYN="Y">
            <LastName>Doe</LastName>
            <ForeName>John</ForeName>
            <AffiliationInfo>
              <Affiliation>Genentech Inc, South San Francisco, CA. doe@gene.com</Affiliation>
            </AffiliationInfo>
            <AffiliationInfo>
              <Affiliation>Second affiliation is ignored.</Affiliation>
            </AffiliationInfo>
          </Author>
        </AuthorList>
      </Article>
    </MedlineCitation>
  </PubmedArticle>
</PubmedArticleSet>`

const sampleEsearchJSON = `{
  "header": {"type": "esearch", "version": "0.3"},
  "esearchresult": {
    "count": "2",
    "retmax": "2",
    "retstart": "0",
    "idlist": ["38000001", "38000002"],
    "translationset": [],
    "querytranslation": "cancer"
  }
}`
