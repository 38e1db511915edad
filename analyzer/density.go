package analyzer

// ScaleBps is the basis-point scale: density and scores are integers in
// [0, ScaleBps] so results are exact and platform-independent.
const ScaleBps = 10000

// AnalyzeKeyword computes how a keyword (possibly a multi-word phrase)
// stands within a document. It never fails: empty text or keyword yields
// a zero-valued result. The tier defaults to TierCore.
func AnalyzeKeyword(text, keyword string) KeywordResult {
	return AnalyzeKeywordWithTier(text, keyword, TierCore)
}

// AnalyzeKeywordWithTier is AnalyzeKeyword with a caller-assigned tier
// attached to the result.
func AnalyzeKeywordWithTier(text, keyword string, tier SerpTier) KeywordResult {
	result := KeywordResult{
		Keyword:       keyword,
		Normalized:    Normalize(keyword),
		FirstPosition: -1,
		LastPosition:  -1,
		Tier:          tier,
	}

	docTokens := Tokenize(text)
	kwTokens := Tokenize(keyword)
	if len(docTokens) == 0 || len(kwTokens) == 0 {
		return result
	}

	// Slide a window of len(kwTokens) across the document with stride 1.
	// Every start position is tested independently, so overlapping
	// repeats of a short phrase each count.
	for start := 0; start+len(kwTokens) <= len(docTokens); start++ {
		if !windowMatches(docTokens[start:start+len(kwTokens)], kwTokens) {
			continue
		}
		result.Count++
		if result.FirstPosition < 0 {
			result.FirstPosition = start
		}
		result.LastPosition = start
	}

	result.DensityBps = result.Count * ScaleBps / len(docTokens)
	return result
}

func windowMatches(window, kwTokens []string) bool {
	for i := range kwTokens {
		if window[i] != kwTokens[i] {
			return false
		}
	}
	return true
}

// DensityReport analyzes several keywords against the same document.
// Results are returned in keyword order; each keyword gets TierCore.
func DensityReport(text string, keywords []string) []KeywordResult {
	results := make([]KeywordResult, 0, len(keywords))
	for _, kw := range keywords {
		results = append(results, AnalyzeKeyword(text, kw))
	}
	return results
}
