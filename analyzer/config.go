package analyzer

// Shared length constants. These are the authoritative values consumed
// by the meta-tag and SERP-snippet builders as well as the scorer.
const (
	MaxTitleLen       = 60
	MinDescriptionLen = 120
	MaxDescriptionLen = 160
	SnippetTitleLen   = 60
	SnippetDescLen    = 155
)

// Config holds every scoring threshold and weight. Weights are basis
// points and must sum to ScaleBps so the total stays in the same range
// as each sub-score.
type Config struct {
	TitleMaxLen int

	DescriptionMinLen int
	DescriptionMaxLen int

	// Acceptable keyword density band in basis points.
	DensityFloorBps int
	DensityCeilBps  int

	// Body word-count thresholds.
	MinWordCount   int
	IdealWordCount int

	WeightTitleBps       int
	WeightDescriptionBps int
	WeightHeadingBps     int
	WeightKeywordBps     int
	WeightLengthBps      int

	// Grade cutoffs, inclusive lower bounds.
	GradeABps int
	GradeBBps int
	GradeCBps int
	GradeDBps int

	// Sub-scores below this emit a suggestion.
	SuggestionThresholdBps int
}

// DefaultConfig returns the standard scoring policy. The density band is
// 0.5%-3% and grade cutoffs follow the usual 90/75/60/40 percentage
// boundaries expressed in basis points.
func DefaultConfig() Config {
	return Config{
		TitleMaxLen:       MaxTitleLen,
		DescriptionMinLen: MinDescriptionLen,
		DescriptionMaxLen: MaxDescriptionLen,

		DensityFloorBps: 50,
		DensityCeilBps:  300,

		MinWordCount:   300,
		IdealWordCount: 800,

		WeightTitleBps:       2500,
		WeightDescriptionBps: 2000,
		WeightHeadingBps:     1500,
		WeightKeywordBps:     2500,
		WeightLengthBps:      1500,

		GradeABps: 9000,
		GradeBBps: 7500,
		GradeCBps: 6000,
		GradeDBps: 4000,

		SuggestionThresholdBps: 7000,
	}
}
