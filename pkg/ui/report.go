package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/policytester/policytester/pkg/accuracy"
	"github.com/policytester/policytester/pkg/corpus"
)

const ruleWidth = 58

// ProgressInterval returns how often progress markers print: every 20
// samples for smaller corpora, every 50 once the corpus reaches 300.
func ProgressInterval(total int) int {
	if total >= 300 {
		return 50
	}
	return 20
}

// Reporter renders run progress and the final accuracy report to a single
// output channel.
type Reporter struct {
	w io.Writer
}

// NewReporter returns a reporter writing to w.
func NewReporter(w io.Writer) *Reporter {
	return &Reporter{w: w}
}

// Header prints the run banner.
func (r *Reporter) Header(total int, analyzerBin string) {
	fmt.Fprintf(r.w, "%s %s\n",
		Icon("🚀", "[>]"),
		TitleStyle.Render(fmt.Sprintf("Policy analyzer stress run: %d samples via %s", total, analyzerBin)))
	fmt.Fprintln(r.w, strings.Repeat("=", ruleWidth))
}

// GeneratedCorpus reports that the corpus is built.
func (r *Reporter) GeneratedCorpus(n int) {
	if IsSilent() {
		return
	}
	fmt.Fprintf(r.w, "%s Generated %d test policies\n", Icon("📋", "[*]"), n)
}

// WroteCorpus reports where the ephemeral policy files landed.
func (r *Reporter) WroteCorpus(dir string) {
	if IsSilent() {
		return
	}
	fmt.Fprintf(r.w, "%s Wrote policies to %s\n", Icon("💾", "[*]"), StatLabelStyle.Render(dir))
}

// Progress prints a periodic progress marker.
func (r *Reporter) Progress(done, total int) {
	if IsSilent() {
		return
	}
	fmt.Fprintf(r.w, "%s Processed %d/%d policies...\n", Icon("📊", "[*]"), done, total)
}

// Report renders the full accuracy summary: overall stats, the fixed-order
// per-tier table, and the qualitative verdict.
func (r *Reporter) Report(sum *accuracy.Summary, verdict accuracy.Verdict) {
	fmt.Fprintln(r.w)
	fmt.Fprintln(r.w, strings.Repeat("=", ruleWidth))
	fmt.Fprintf(r.w, "%s %s\n", Icon("📊", "[*]"), SectionStyle.Render("ACCURACY RESULTS"))
	fmt.Fprintln(r.w, strings.Repeat("=", ruleWidth))

	o := sum.Overall
	fmt.Fprintf(r.w, "Total Policies: %s\n", StatValueStyle.Render(fmt.Sprintf("%d", o.Total)))
	fmt.Fprintf(r.w, "Score Accuracy: %s (%d/%d)\n",
		StatValueStyle.Render(fmt.Sprintf("%.1f%%", o.ScoreAccuracy())), o.ScoreCorrect, o.Total)
	fmt.Fprintf(r.w, "Status Accuracy: %s (%d/%d)\n",
		StatValueStyle.Render(fmt.Sprintf("%.1f%%", o.StatusAccuracy())), o.StatusCorrect, o.Total)

	fmt.Fprintf(r.w, "\n%s %s\n", Icon("📈", "[*]"), SectionStyle.Render("BREAKDOWN BY TIER"))
	fmt.Fprintln(r.w, strings.Repeat("-", ruleWidth))
	fmt.Fprintf(r.w, "%-10s %-7s %-11s %-11s %-9s %s\n",
		"TIER", "COUNT", "SCORE ACC", "STATUS ACC", "SCORE", "STATUS")
	fmt.Fprintln(r.w, strings.Repeat("-", ruleWidth))
	for _, tier := range corpus.AllTiers {
		stats := sum.PerTier[tier]
		if stats == nil {
			stats = &accuracy.TierStats{}
		}
		fmt.Fprintf(r.w, "%s %-7d %-11s %-11s %-9s %s\n",
			TierStyle(string(tier)).Render(fmt.Sprintf("%-10s", tier)),
			stats.Total,
			fmt.Sprintf("%.1f%%", stats.ScoreAccuracy()),
			fmt.Sprintf("%.1f%%", stats.StatusAccuracy()),
			fmt.Sprintf("%d/%d", stats.ScoreCorrect, stats.Total),
			fmt.Sprintf("%d/%d", stats.StatusCorrect, stats.Total))
	}

	fmt.Fprintf(r.w, "\n%s %s\n", Icon("🎯", "[*]"), SectionStyle.Render("OVERALL ASSESSMENT"))
	fmt.Fprintln(r.w, r.verdictLine(verdict))
}

func (r *Reporter) verdictLine(verdict accuracy.Verdict) string {
	switch verdict {
	case accuracy.VerdictExcellent:
		return fmt.Sprintf("%s %s", Icon("✅", "[+]"),
			ExcellentStyle.Render("EXCELLENT - accuracy targets met"))
	case accuracy.VerdictGood:
		return fmt.Sprintf("%s %s", Icon("✅", "[+]"),
			GoodStyle.Render("GOOD - minor improvements possible"))
	default:
		return fmt.Sprintf("%s %s", Icon("⚠️", "[!]"),
			ImproveStyle.Render("NEEDS IMPROVEMENT - review scoring algorithm"))
	}
}
