// Package report serializes the accumulated yearly statistics into the
// plain-text analysis report.
package report

import (
	"fmt"
	"os"
	"strings"

	"github.com/ivlev/urbanwatch/internal/analysis"
)

// Render produces the report body: one percentage line per processed year
// in input order, plus a signed total-growth line when at least two years
// are present.
func Render(stats []analysis.YearStat) string {
	var b strings.Builder

	b.WriteString("URBAN LULC CHANGE DETECTION REPORT\n")
	b.WriteString("==================================\n\n")
	b.WriteString("Methodology: Analysis of Google Dynamic World V1 Dataset\n")
	b.WriteString("Classes: Dynamic World Schema (9 classes)\n\n")
	b.WriteString("Yearly Urban Area Statistics:\n")
	b.WriteString("-----------------------------\n")

	for _, s := range stats {
		fmt.Fprintf(&b, "%d: %.2f%% Urban Coverage\n", s.Year, s.UrbanPercent)
	}

	if len(stats) >= 2 {
		fmt.Fprintf(&b, "\nTotal Urban Growth (%d-%d): %+.2f%%\n",
			stats[0].Year, stats[len(stats)-1].Year, analysis.Growth(stats))
	}
	return b.String()
}

// Write renders the report and writes it to path.
func Write(path string, stats []analysis.YearStat) error {
	return os.WriteFile(path, []byte(Render(stats)), 0644)
}
