package corpus

// Tier is the ground-truth severity classification assigned to a sample at
// generation time. Every sample carries exactly one tier, fixed at creation.
type Tier string

const (
	TierCritical Tier = "CRITICAL"
	TierHigh     Tier = "HIGH"
	TierMedium   Tier = "MEDIUM"
	TierLow      Tier = "LOW"
	TierEdge     Tier = "EDGE"
)

// AllTiers is the canonical tier ordering. Every report and every iteration
// over tiers uses this order, independent of generation or arrival order.
var AllTiers = []Tier{TierCritical, TierHigh, TierMedium, TierLow, TierEdge}

// Valid reports whether t is one of the known tiers.
func (t Tier) Valid() bool {
	switch t {
	case TierCritical, TierHigh, TierMedium, TierLow, TierEdge:
		return true
	}
	return false
}

// Counts maps each tier to the number of samples requested for it.
type Counts map[Tier]int

// Total returns the corpus size across all tiers.
func (c Counts) Total() int {
	n := 0
	for _, v := range c {
		n += v
	}
	return n
}

// Smoke100 is the 100-sample preset: 20 samples per tier.
func Smoke100() Counts {
	return uniform(20)
}

// Stress500 is the 500-sample preset: 100 samples per tier.
func Stress500() Counts {
	return uniform(100)
}

func uniform(perTier int) Counts {
	c := make(Counts, len(AllTiers))
	for _, t := range AllTiers {
		c[t] = perTier
	}
	return c
}
