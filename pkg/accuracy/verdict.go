package accuracy

// Verdict is the qualitative classification of a whole run. Informational
// only: it never alters completion status or exit behavior.
type Verdict string

const (
	VerdictExcellent        Verdict = "EXCELLENT"
	VerdictGood             Verdict = "GOOD"
	VerdictNeedsImprovement Verdict = "NEEDS IMPROVEMENT"
)

// VerdictThresholds are the minimum overall percentages for each verdict
// band. A run that clears neither band is NEEDS IMPROVEMENT.
type VerdictThresholds struct {
	ExcellentScore  float64
	ExcellentStatus float64
	GoodScore       float64
	GoodStatus      float64
}

// DefaultVerdictThresholds returns the stock bands: 90/95 for EXCELLENT,
// 85/90 for GOOD.
func DefaultVerdictThresholds() VerdictThresholds {
	return VerdictThresholds{
		ExcellentScore:  90,
		ExcellentStatus: 95,
		GoodScore:       85,
		GoodStatus:      90,
	}
}

// Verdict classifies the overall aggregate into exactly one band.
func (e *Evaluator) Verdict(overall TierStats) Verdict {
	score := overall.ScoreAccuracy()
	status := overall.StatusAccuracy()
	switch {
	case score >= e.thresholds.ExcellentScore && status >= e.thresholds.ExcellentStatus:
		return VerdictExcellent
	case score >= e.thresholds.GoodScore && status >= e.thresholds.GoodStatus:
		return VerdictGood
	default:
		return VerdictNeedsImprovement
	}
}
