// Package page extracts scoring inputs from HTML documents. Parsing is
// strictly offline: callers hand in markup, nothing is fetched.
package page

import (
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/jeffaseo/backend/analyzer"
)

// Document holds the SEO-relevant parts of a parsed page.
type Document struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Canonical   string   `json:"canonical"`
	H1Count     int      `json:"h1Count"`
	H1Text      []string `json:"h1Text"`
	BodyText    string   `json:"bodyText"`
	WordCount   int      `json:"wordCount"`
}

// Parse reads HTML and pulls out the title, meta description, canonical
// link, H1 headings, and body text.
func Parse(r io.Reader) (*Document, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse html: %w", err)
	}

	d := &Document{}
	d.Title = strings.TrimSpace(doc.Find("title").First().Text())
	d.Description, _ = doc.Find("meta[name='description']").Attr("content")
	d.Description = strings.TrimSpace(d.Description)
	d.Canonical, _ = doc.Find("link[rel='canonical']").Attr("href")

	h1s := doc.Find("h1")
	d.H1Count = h1s.Length()
	h1s.Each(func(_ int, s *goquery.Selection) {
		d.H1Text = append(d.H1Text, strings.TrimSpace(s.Text()))
	})

	body := doc.Find("body")
	if body.Length() > 0 {
		d.BodyText = body.Text()
	} else {
		d.BodyText = doc.Text()
	}
	d.WordCount = analyzer.WordCount(d.BodyText)

	return d, nil
}

// ParseString is Parse over an in-memory string.
func ParseString(html string) (*Document, error) {
	return Parse(strings.NewReader(html))
}

// ScoreInput assembles scorer inputs for the given keyword, computing
// its density against the body text.
func (d *Document) ScoreInput(keyword string) analyzer.ScoreInput {
	density := analyzer.AnalyzeKeyword(d.BodyText, keyword)
	return analyzer.ScoreInput{
		Title:       d.Title,
		Description: d.Description,
		Keyword:     keyword,
		H1Count:     d.H1Count,
		DensityBps:  density.DensityBps,
		WordCount:   d.WordCount,
	}
}
