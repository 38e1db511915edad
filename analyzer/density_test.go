package analyzer

import "testing"

func TestAnalyzeKeywordSingleWord(t *testing.T) {
	res := AnalyzeKeyword("red shoes are red", "red")

	if res.Count != 2 {
		t.Errorf("Count = %d, want 2", res.Count)
	}
	if res.DensityBps != 5000 {
		t.Errorf("DensityBps = %d, want 5000", res.DensityBps)
	}
	if res.FirstPosition != 0 {
		t.Errorf("FirstPosition = %d, want 0", res.FirstPosition)
	}
	if res.LastPosition != 3 {
		t.Errorf("LastPosition = %d, want 3", res.LastPosition)
	}
}

func TestAnalyzeKeywordMultiWordPhrase(t *testing.T) {
	res := AnalyzeKeyword("the quick brown fox the quick brown fox", "quick brown")

	if res.Count != 2 {
		t.Errorf("Count = %d, want 2", res.Count)
	}
	if res.FirstPosition != 1 {
		t.Errorf("FirstPosition = %d, want 1", res.FirstPosition)
	}
	if res.LastPosition != 5 {
		t.Errorf("LastPosition = %d, want 5", res.LastPosition)
	}
}

func TestAnalyzeKeywordOverlappingRepeats(t *testing.T) {
	// Every window start is tested independently, so "aa aa" matches at
	// token 0 and token 1.
	res := AnalyzeKeyword("aa aa aa", "aa aa")

	if res.Count != 2 {
		t.Errorf("Count = %d, want 2", res.Count)
	}
	if res.DensityBps != 6666 {
		t.Errorf("DensityBps = %d, want 6666", res.DensityBps)
	}
}

func TestAnalyzeKeywordNoMatch(t *testing.T) {
	res := AnalyzeKeyword("the quick brown fox", "purple elephant")

	if res.Count != 0 {
		t.Errorf("Count = %d, want 0", res.Count)
	}
	if res.DensityBps != 0 {
		t.Errorf("DensityBps = %d, want 0", res.DensityBps)
	}
	if res.FirstPosition != -1 || res.LastPosition != -1 {
		t.Errorf("positions = (%d, %d), want (-1, -1)", res.FirstPosition, res.LastPosition)
	}
}

func TestAnalyzeKeywordDegenerateInputs(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		keyword string
	}{
		{"empty text", "", "red shoes"},
		{"empty keyword", "red shoes online", ""},
		{"both empty", "", ""},
		{"punctuation-only text", "!!! ???", "red"},
		{"keyword longer than document", "red", "red shoes online store"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := AnalyzeKeyword(tt.text, tt.keyword)
			if res.Count != 0 || res.DensityBps != 0 {
				t.Errorf("expected zero result, got count=%d density=%d", res.Count, res.DensityBps)
			}
			if res.Keyword != tt.keyword {
				t.Errorf("Keyword = %q, want %q", res.Keyword, tt.keyword)
			}
		})
	}
}

func TestAnalyzeKeywordNormalizationInvariance(t *testing.T) {
	text := "  Buy RED Shoes online, red shoes for everyone  "
	keyword := " Red SHOES "

	plain := AnalyzeKeyword(text, keyword)
	normalized := AnalyzeKeyword(Normalize(text), Normalize(keyword))

	if plain.Count != normalized.Count || plain.DensityBps != normalized.DensityBps ||
		plain.FirstPosition != normalized.FirstPosition || plain.LastPosition != normalized.LastPosition {
		t.Errorf("results differ under normalization: %+v vs %+v", plain, normalized)
	}
}

func TestAnalyzeKeywordDensityRange(t *testing.T) {
	texts := []string{
		"red",
		"red red red red",
		"red shoes red shoes",
		"a long sentence without the target at all",
	}
	for _, text := range texts {
		res := AnalyzeKeyword(text, "red")
		if res.DensityBps < 0 || res.DensityBps > ScaleBps {
			t.Errorf("density out of range for %q: %d", text, res.DensityBps)
		}
	}
}

func TestAnalyzeKeywordTierPassthrough(t *testing.T) {
	res := AnalyzeKeywordWithTier("red shoes", "red", TierLongTail)
	if res.Tier != TierLongTail {
		t.Errorf("Tier = %q, want %q", res.Tier, TierLongTail)
	}

	if def := AnalyzeKeyword("red shoes", "red"); def.Tier != TierCore {
		t.Errorf("default Tier = %q, want %q", def.Tier, TierCore)
	}
}

func TestDensityReport(t *testing.T) {
	results := DensityReport("red shoes online", []string{"red", "online", "boots"})

	if len(results) != 3 {
		t.Fatalf("len(results) = %d, want 3", len(results))
	}
	if results[0].Count != 1 || results[1].Count != 1 || results[2].Count != 0 {
		t.Errorf("unexpected counts: %+v", results)
	}
}
