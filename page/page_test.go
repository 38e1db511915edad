package page

import (
	"strings"
	"testing"
)

const sampleHTML = `<!DOCTYPE html>
<html>
<head>
	<title>Buy Red Shoes Online</title>
	<meta name="description" content="Shop the best red shoes online with free shipping.">
	<link rel="canonical" href="https://example.com/red-shoes">
</head>
<body>
	<h1>Red Shoes</h1>
	<p>Our red shoes collection has red shoes for every occasion.</p>
	<h2>Popular styles</h2>
</body>
</html>`

func TestParse(t *testing.T) {
	doc, err := ParseString(sampleHTML)
	if err != nil {
		t.Fatalf("ParseString: %v", err)
	}

	if doc.Title != "Buy Red Shoes Online" {
		t.Errorf("Title = %q", doc.Title)
	}
	if !strings.Contains(doc.Description, "red shoes online") {
		t.Errorf("Description = %q", doc.Description)
	}
	if doc.Canonical != "https://example.com/red-shoes" {
		t.Errorf("Canonical = %q", doc.Canonical)
	}
	if doc.H1Count != 1 {
		t.Errorf("H1Count = %d, want 1", doc.H1Count)
	}
	if len(doc.H1Text) != 1 || doc.H1Text[0] != "Red Shoes" {
		t.Errorf("H1Text = %v", doc.H1Text)
	}
	if doc.WordCount == 0 {
		t.Error("WordCount should be nonzero")
	}
	if !strings.Contains(doc.BodyText, "every occasion") {
		t.Errorf("BodyText missing paragraph text: %q", doc.BodyText)
	}
}

func TestParseMissingElements(t *testing.T) {
	doc, err := ParseString("<html><body><p>bare text only</p></body></html>")
	if err != nil {
		t.Fatalf("ParseString: %v", err)
	}

	if doc.Title != "" || doc.Description != "" {
		t.Errorf("expected empty title and description, got %q / %q", doc.Title, doc.Description)
	}
	if doc.H1Count != 0 {
		t.Errorf("H1Count = %d, want 0", doc.H1Count)
	}
	if doc.WordCount != 3 {
		t.Errorf("WordCount = %d, want 3", doc.WordCount)
	}
}

func TestScoreInput(t *testing.T) {
	doc, err := ParseString(sampleHTML)
	if err != nil {
		t.Fatalf("ParseString: %v", err)
	}

	in := doc.ScoreInput("red shoes")
	if in.Title != doc.Title || in.H1Count != 1 {
		t.Errorf("unexpected ScoreInput: %+v", in)
	}
	if in.DensityBps == 0 {
		t.Error("DensityBps should be nonzero for a present keyword")
	}
	if in.WordCount != doc.WordCount {
		t.Errorf("WordCount = %d, want %d", in.WordCount, doc.WordCount)
	}
}
