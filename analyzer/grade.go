package analyzer

// ContentGrade is the discrete quality classification of a page. The
// five grades form a closed, totally ordered set; each corresponds to a
// fixed score threshold.
type ContentGrade string

const (
	GradeA ContentGrade = "A"
	GradeB ContentGrade = "B"
	GradeC ContentGrade = "C"
	GradeD ContentGrade = "D"
	GradeF ContentGrade = "F"
)

var gradeOrder = map[ContentGrade]int{
	GradeA: 4,
	GradeB: 3,
	GradeC: 2,
	GradeD: 1,
	GradeF: 0,
}

// AtLeast reports whether g is the same grade as other or a better one.
func (g ContentGrade) AtLeast(other ContentGrade) bool {
	return gradeOrder[g] >= gradeOrder[other]
}

// GradeForScore maps a total score to its grade. Cutoffs are inclusive,
// so a score sitting exactly on a boundary takes the higher grade.
func GradeForScore(totalBps int, cfg Config) ContentGrade {
	switch {
	case totalBps >= cfg.GradeABps:
		return GradeA
	case totalBps >= cfg.GradeBBps:
		return GradeB
	case totalBps >= cfg.GradeCBps:
		return GradeC
	case totalBps >= cfg.GradeDBps:
		return GradeD
	default:
		return GradeF
	}
}
