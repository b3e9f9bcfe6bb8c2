// Package corpus builds ordered, stratified samples of synthetic policy
// documents with known expected severity, drawn from a fixed per-tier
// template catalog.
package corpus

import (
	"fmt"
	"math/rand"
	"strings"
)

// Sample is one generated policy document tagged with its tier and the
// ground-truth expectation. Immutable once created; the ID doubles as the
// sample's unique filename within a run.
type Sample struct {
	ID            string
	Tier          Tier
	TemplateID    string
	Document      string
	ExpectedScore float64
	ExpectedPass  bool
}

// Generator draws samples from the template catalog. It owns an explicit
// seeded source so regression runs reproduce exactly; it never touches the
// global rand state.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator returns a generator over the given seed.
func NewGenerator(seed int64) *Generator {
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

// Generate returns exactly counts[tier] samples per tier, emitted in
// canonical tier order. Sampling is uniform with replacement: duplicate
// documents across samples are expected, not an error. Pure data
// construction with no failure modes.
func (g *Generator) Generate(counts Counts) []Sample {
	samples := make([]Sample, 0, counts.Total())
	for _, tier := range AllTiers {
		n := counts[tier]
		if n <= 0 {
			continue
		}
		if tier == TierEdge {
			samples = append(samples, g.edgeSamples(n)...)
			continue
		}
		pool := templatesByTier[tier]
		prefix := strings.ToLower(string(tier))
		for i := 0; i < n; i++ {
			t := pool[g.rng.Intn(len(pool))]
			samples = append(samples, newSample(fmt.Sprintf("%s_%d.json", prefix, i), t))
		}
	}
	return samples
}

// edgeSamples splits the EDGE allocation: the first half draws cross-account
// role-assumption variants, the second half complex-but-safe variants.
func (g *Generator) edgeSamples(n int) []Sample {
	out := make([]Sample, 0, n)
	for i := 0; i < n; i++ {
		if i < n/2 {
			t := edgeCrossAccount[g.rng.Intn(len(edgeCrossAccount))]
			out = append(out, newSample(fmt.Sprintf("edge_cross_account_%d.json", i), t))
		} else {
			t := edgeComplex[g.rng.Intn(len(edgeComplex))]
			out = append(out, newSample(fmt.Sprintf("edge_complex_%d.json", i), t))
		}
	}
	return out
}

func newSample(id string, t Template) Sample {
	return Sample{
		ID:            id,
		Tier:          t.Tier,
		TemplateID:    t.ID,
		Document:      t.Document,
		ExpectedScore: t.ExpectedScore,
		ExpectedPass:  t.ExpectedPass,
	}
}
