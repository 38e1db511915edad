// Package meta builds meta-tag and SERP-snippet records from raw page
// strings, truncating against the analyzer's shared length constants.
package meta

import (
	"strings"

	"github.com/jeffaseo/backend/analyzer"
)

// Tags is the set of meta tags emitted for a page.
type Tags struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Keywords    string `json:"keywords"`
	Canonical   string `json:"canonical,omitempty"`
	Robots      string `json:"robots"`
}

// Snippet previews how a result renders on a search results page.
type Snippet struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	DisplayURL  string `json:"displayUrl"`
}

const ellipsis = "…"

// TruncateAtWord shortens s to at most max runes, cutting at the last
// word boundary that fits and appending an ellipsis. Strings already
// within the limit come back unchanged.
func TruncateAtWord(s string, max int) string {
	s = strings.TrimSpace(s)
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max <= 1 {
		return ellipsis
	}

	cut := string(runes[:max-1])
	// Keep the full cut when it already ends on a word boundary.
	if runes[max-1] != ' ' {
		if idx := strings.LastIndex(cut, " "); idx > 0 {
			cut = cut[:idx]
		}
	}
	return strings.TrimRight(cut, " ,.;:-") + ellipsis
}

// BuildTags assembles meta tags, truncating the title and description to
// the recommended limits. Robots defaults to "index, follow".
func BuildTags(title, description string, keywords []string, canonical string) Tags {
	return Tags{
		Title:       TruncateAtWord(title, analyzer.MaxTitleLen),
		Description: TruncateAtWord(description, analyzer.MaxDescriptionLen),
		Keywords:    strings.Join(keywords, ", "),
		Canonical:   strings.TrimSpace(canonical),
		Robots:      "index, follow",
	}
}

// BuildSnippet assembles a SERP snippet preview within search-result
// display limits.
func BuildSnippet(title, description, url string) Snippet {
	return Snippet{
		Title:       TruncateAtWord(title, analyzer.SnippetTitleLen),
		Description: TruncateAtWord(description, analyzer.SnippetDescLen),
		DisplayURL:  displayURL(url),
	}
}

// displayURL strips the scheme and trailing slash the way result pages
// render addresses.
func displayURL(url string) string {
	url = strings.TrimSpace(url)
	url = strings.TrimPrefix(url, "https://")
	url = strings.TrimPrefix(url, "http://")
	return strings.TrimSuffix(url, "/")
}
