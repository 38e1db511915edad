package analyzer

// SerpTier is the strategic category a keyword is assigned to. The
// assignment rule is caller policy; the analyzer carries the tag through
// without interpreting it.
type SerpTier string

const (
	TierCore     SerpTier = "core"
	TierLongTail SerpTier = "long_tail"
	TierBrand    SerpTier = "brand"
	TierLocal    SerpTier = "local"
	TierImage    SerpTier = "image"
)

// KeywordResult is an immutable snapshot of one keyword's standing
// within one document. Positions are token indexes of matching window
// starts, -1 when the keyword never matches.
type KeywordResult struct {
	Keyword       string   `json:"keyword"`
	Normalized    string   `json:"normalized"`
	Count         int      `json:"count"`
	DensityBps    int      `json:"densityBps"`
	FirstPosition int      `json:"firstPosition"`
	LastPosition  int      `json:"lastPosition"`
	Tier          SerpTier `json:"tier"`
}

// ScoreInput bundles everything the page scorer needs. DensityBps is
// normally produced by AnalyzeKeyword over the body text.
type ScoreInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Keyword     string `json:"keyword"`
	H1Count     int    `json:"h1Count"`
	DensityBps  int    `json:"densityBps"`
	WordCount   int    `json:"wordCount"`
}

// PageScore is the composite quality assessment of one page. All scores
// are basis points in [0, 10000].
type PageScore struct {
	TotalBps       int          `json:"totalBps"`
	TitleBps       int          `json:"titleBps"`
	DescriptionBps int          `json:"descriptionBps"`
	HeadingBps     int          `json:"headingBps"`
	KeywordBps     int          `json:"keywordBps"`
	LengthBps      int          `json:"lengthBps"`
	Grade          ContentGrade `json:"grade"`
	Suggestions    []string     `json:"suggestions"`
}
