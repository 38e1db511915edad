// Package sitemap emits XML documents conforming to the sitemap
// protocol, splitting into an index once a set exceeds the per-file
// entry limit.
package sitemap

import (
	"encoding/xml"
	"fmt"
)

// Namespace is the sitemap protocol namespace.
const Namespace = "http://www.sitemaps.org/schemas/sitemap/0.9"

// MaxURLsPerFile is the protocol limit on entries per sitemap document.
const MaxURLsPerFile = 50000

// URL is a single sitemap entry.
type URL struct {
	Loc        string  `xml:"loc" json:"loc"`
	LastMod    string  `xml:"lastmod,omitempty" json:"lastmod,omitempty"`
	ChangeFreq string  `xml:"changefreq,omitempty" json:"changefreq,omitempty"`
	Priority   float64 `xml:"priority,omitempty" json:"priority,omitempty"`
}

type urlset struct {
	XMLName xml.Name `xml:"urlset"`
	Xmlns   string   `xml:"xmlns,attr"`
	URLs    []URL    `xml:"url"`
}

type indexEntry struct {
	Loc     string `xml:"loc"`
	LastMod string `xml:"lastmod,omitempty"`
}

type sitemapIndex struct {
	XMLName  xml.Name     `xml:"sitemapindex"`
	Xmlns    string       `xml:"xmlns,attr"`
	Sitemaps []indexEntry `xml:"sitemap"`
}

func validate(urls []URL) error {
	for i, u := range urls {
		if u.Loc == "" {
			return fmt.Errorf("url %d: loc is required", i)
		}
		if u.Priority < 0 || u.Priority > 1 {
			return fmt.Errorf("url %d: priority %v outside [0, 1]", i, u.Priority)
		}
	}
	return nil
}

// Marshal emits a single urlset document. Sets past the per-file limit
// are rejected; use MarshalAll to split instead.
func Marshal(urls []URL) ([]byte, error) {
	if len(urls) > MaxURLsPerFile {
		return nil, fmt.Errorf("sitemap has %d urls, limit is %d per file", len(urls), MaxURLsPerFile)
	}
	if err := validate(urls); err != nil {
		return nil, err
	}

	body, err := xml.MarshalIndent(urlset{Xmlns: Namespace, URLs: urls}, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal sitemap: %w", err)
	}
	return append([]byte(xml.Header), body...), nil
}

// Split chunks urls into per-file groups within the protocol limit.
func Split(urls []URL) [][]URL {
	if len(urls) == 0 {
		return nil
	}
	var chunks [][]URL
	for start := 0; start < len(urls); start += MaxURLsPerFile {
		end := start + MaxURLsPerFile
		if end > len(urls) {
			end = len(urls)
		}
		chunks = append(chunks, urls[start:end])
	}
	return chunks
}

// MarshalAll emits one document per chunk of urls.
func MarshalAll(urls []URL) ([][]byte, error) {
	if err := validate(urls); err != nil {
		return nil, err
	}

	chunks := Split(urls)
	docs := make([][]byte, 0, len(chunks))
	for _, chunk := range chunks {
		doc, err := Marshal(chunk)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

// MarshalIndex emits a sitemapindex document pointing at the given
// sitemap locations. lastmod applies to every entry and may be empty.
func MarshalIndex(locs []string, lastmod string) ([]byte, error) {
	entries := make([]indexEntry, 0, len(locs))
	for i, loc := range locs {
		if loc == "" {
			return nil, fmt.Errorf("sitemap %d: loc is required", i)
		}
		entries = append(entries, indexEntry{Loc: loc, LastMod: lastmod})
	}

	body, err := xml.MarshalIndent(sitemapIndex{Xmlns: Namespace, Sitemaps: entries}, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal sitemap index: %w", err)
	}
	return append([]byte(xml.Header), body...), nil
}
