package analyzer

import (
	"fmt"
	"sort"
	"strings"
)

// ValidationError reports a scorer input that is out of domain. Inputs
// are rejected before any computation, never silently clamped.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func validateInput(in ScoreInput) error {
	if in.H1Count < 0 {
		return &ValidationError{Field: "h1Count", Reason: "must not be negative"}
	}
	if in.DensityBps < 0 {
		return &ValidationError{Field: "densityBps", Reason: "must not be negative"}
	}
	if in.DensityBps > ScaleBps {
		return &ValidationError{Field: "densityBps", Reason: fmt.Sprintf("must not exceed %d", ScaleBps)}
	}
	if in.WordCount < 0 {
		return &ValidationError{Field: "wordCount", Reason: "must not be negative"}
	}
	return nil
}

// ScorePage scores a page with the default configuration.
func ScorePage(in ScoreInput) (*PageScore, error) {
	return ScorePageWithConfig(in, DefaultConfig())
}

// ScorePageWithConfig combines the five sub-scores into a bounded total,
// assigns a grade, and lists suggestions for the weakest factors.
func ScorePageWithConfig(in ScoreInput, cfg Config) (*PageScore, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}

	score := &PageScore{
		TitleBps:       scoreTitle(in.Title, in.Keyword, cfg),
		DescriptionBps: scoreDescription(in.Description, in.Keyword, cfg),
		HeadingBps:     scoreHeading(in.H1Count),
		KeywordBps:     scoreKeywordDensity(in.DensityBps, cfg),
		LengthBps:      scoreLength(in.WordCount, cfg),
	}

	total := score.TitleBps*cfg.WeightTitleBps +
		score.DescriptionBps*cfg.WeightDescriptionBps +
		score.HeadingBps*cfg.WeightHeadingBps +
		score.KeywordBps*cfg.WeightKeywordBps +
		score.LengthBps*cfg.WeightLengthBps
	score.TotalBps = clampBps(total / ScaleBps)

	score.Grade = GradeForScore(score.TotalBps, cfg)
	score.Suggestions = buildSuggestions(score, cfg)
	return score, nil
}

func clampBps(v int) int {
	if v < 0 {
		return 0
	}
	if v > ScaleBps {
		return ScaleBps
	}
	return v
}

// scoreTitle gives full credit for an in-range title that contains the
// keyword. Length is counted in runes after normalization.
func scoreTitle(title, keyword string, cfg Config) int {
	normalized := Normalize(title)
	length := len([]rune(normalized))
	if length == 0 {
		return 0
	}

	score := 3000
	if length <= cfg.TitleMaxLen {
		score = 6000
	}
	if kw := Normalize(keyword); kw != "" && strings.Contains(normalized, kw) {
		score += 4000
	}
	return clampBps(score)
}

// scoreDescription gives full credit inside the recommended length band
// with a linear penalty outside it and a small bonus for containing the
// keyword.
func scoreDescription(desc, keyword string, cfg Config) int {
	normalized := Normalize(desc)
	length := len([]rune(normalized))
	if length == 0 {
		return 0
	}

	var score int
	switch {
	case length < cfg.DescriptionMinLen:
		score = 7000 * length / cfg.DescriptionMinLen
	case length > cfg.DescriptionMaxLen:
		score = 7000 * cfg.DescriptionMaxLen / length
	default:
		score = ScaleBps
	}
	if kw := Normalize(keyword); kw != "" && strings.Contains(normalized, kw) {
		score += 1000
	}
	return clampBps(score)
}

// scoreHeading: exactly one H1 is the recommended structure.
func scoreHeading(h1Count int) int {
	switch {
	case h1Count == 1:
		return ScaleBps
	case h1Count > 1:
		return 5000
	default:
		return 0
	}
}

// scoreKeywordDensity is maximal inside the acceptable band and falls
// off monotonically with distance from it: under the floor the score
// rises linearly with density, over the ceiling it decays as ceil/d so
// heavier stuffing always scores lower.
func scoreKeywordDensity(densityBps int, cfg Config) int {
	switch {
	case densityBps < cfg.DensityFloorBps:
		return clampBps(ScaleBps * densityBps / cfg.DensityFloorBps)
	case densityBps > cfg.DensityCeilBps:
		return clampBps(ScaleBps * cfg.DensityCeilBps / densityBps)
	default:
		return ScaleBps
	}
}

// scoreLength: zero below the minimum, full at the ideal, scaled with
// word count in between.
func scoreLength(wordCount int, cfg Config) int {
	switch {
	case wordCount < cfg.MinWordCount:
		return 0
	case wordCount >= cfg.IdealWordCount:
		return ScaleBps
	default:
		return clampBps(ScaleBps * wordCount / cfg.IdealWordCount)
	}
}

type weakFactor struct {
	bps     int
	message string
}

// buildSuggestions emits one suggestion per sub-score under the
// improvement threshold, weakest factor first.
func buildSuggestions(score *PageScore, cfg Config) []string {
	factors := []weakFactor{
		{score.TitleBps, fmt.Sprintf("Improve the title: keep it under %d characters and include the target keyword", cfg.TitleMaxLen)},
		{score.DescriptionBps, fmt.Sprintf("Improve the meta description: aim for %d-%d characters and mention the target keyword", cfg.DescriptionMinLen, cfg.DescriptionMaxLen)},
		{score.HeadingBps, "Use exactly one H1 heading"},
		{score.KeywordBps, fmt.Sprintf("Adjust keyword density toward the %.1f%%-%.1f%% range", float64(cfg.DensityFloorBps)/100, float64(cfg.DensityCeilBps)/100)},
		{score.LengthBps, fmt.Sprintf("Add more content: aim for at least %d words", cfg.IdealWordCount)},
	}

	var weak []weakFactor
	for _, f := range factors {
		if f.bps < cfg.SuggestionThresholdBps {
			weak = append(weak, f)
		}
	}
	sort.SliceStable(weak, func(i, j int) bool {
		return weak[i].bps < weak[j].bps
	})

	suggestions := make([]string, 0, len(weak))
	for _, f := range weak {
		suggestions = append(suggestions, f.message)
	}
	return suggestions
}
