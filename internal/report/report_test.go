package report

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ivlev/urbanwatch/internal/analysis"
)

func TestRenderYearLinesInOrder(t *testing.T) {
	stats := []analysis.YearStat{
		{Year: 2018, UrbanPercent: 6.25},
		{Year: 2021, UrbanPercent: 40.5},
		{Year: 2025, UrbanPercent: 100},
	}

	text := Render(stats)

	lines := []string{
		"2018: 6.25% Urban Coverage",
		"2021: 40.50% Urban Coverage",
		"2025: 100.00% Urban Coverage",
	}
	pos := -1
	for _, line := range lines {
		idx := strings.Index(text, line)
		if idx < 0 {
			t.Fatalf("Report missing line %q:\n%s", line, text)
		}
		if idx < pos {
			t.Fatalf("Line %q out of order:\n%s", line, text)
		}
		pos = idx
	}

	if !strings.Contains(text, "Total Urban Growth (2018-2025): +93.75%") {
		t.Errorf("Report missing growth line:\n%s", text)
	}
}

func TestRenderNegativeGrowthKeepsSign(t *testing.T) {
	stats := []analysis.YearStat{
		{Year: 2019, UrbanPercent: 5},
		{Year: 2020, UrbanPercent: 4},
	}

	text := Render(stats)
	if !strings.Contains(text, "Total Urban Growth (2019-2020): -1.00%") {
		t.Errorf("Expected signed negative growth line:\n%s", text)
	}
}

func TestRenderSingleYearHasNoGrowthLine(t *testing.T) {
	text := Render([]analysis.YearStat{{Year: 2022, UrbanPercent: 12.34}})

	if !strings.Contains(text, "2022: 12.34% Urban Coverage") {
		t.Errorf("Report missing year line:\n%s", text)
	}
	if strings.Contains(text, "Total Urban Growth") {
		t.Errorf("Single year must not produce a growth line:\n%s", text)
	}
}

func TestWrite(t *testing.T) {
	stats := []analysis.YearStat{
		{Year: 2018, UrbanPercent: 10},
		{Year: 2025, UrbanPercent: 13.42},
	}
	path := filepath.Join(t.TempDir(), "analysis_report.txt")

	if err := Write(path, stats); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if string(data) != Render(stats) {
		t.Errorf("Written report differs from rendered text")
	}
	if !strings.Contains(string(data), "Total Urban Growth (2018-2025): +3.42%") {
		t.Errorf("Expected +3.42%% growth line:\n%s", data)
	}
}
