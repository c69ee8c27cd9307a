package components

import (
	"strings"
	"testing"

	"github.com/hayati-app/hayati/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

func init() {
	// Force TrueColor output so ANSI codes are generated in tests
	lipgloss.SetColorProfile(termenv.TrueColor)
	theme.SetActive("flexoki-dark")
}

func TestLayoutRowSumsToTotal(t *testing.T) {
	for _, tc := range []struct {
		total, n int
	}{
		{100, 4},
		{101, 4},
		{103, 4},
		{97, 3},
		{10, 1},
	} {
		widths := LayoutRow(tc.total, tc.n)
		if len(widths) != tc.n {
			t.Fatalf("LayoutRow(%d, %d) returned %d widths", tc.total, tc.n, len(widths))
		}
		sum := 0
		for _, w := range widths {
			sum += w
		}
		if sum != tc.total {
			t.Errorf("LayoutRow(%d, %d) sums to %d", tc.total, tc.n, sum)
		}
	}

	if got := LayoutRow(100, 0); got != nil {
		t.Errorf("LayoutRow with n=0 = %v, want nil", got)
	}
}

func TestCardRowHeightMatchesTallest(t *testing.T) {
	shortCard := ContentCard("Short", "Content", 22)
	tallCard := ContentCard("Tall", "Line 1\nLine 2\nLine 3\nLine 4\nLine 5", 22)

	shortLines := len(strings.Split(shortCard, "\n"))
	tallLines := len(strings.Split(tallCard, "\n"))
	if shortLines >= tallLines {
		t.Fatal("Test setup error: short card should be shorter than tall card")
	}

	joined := CardRow([]string{tallCard, shortCard})
	lines := strings.Split(joined, "\n")
	if len(lines) != tallLines {
		t.Errorf("Joined height should match tallest card: got %d, want %d", len(lines), tallLines)
	}
}

func TestTabAtXMatchesTabWidths(t *testing.T) {
	for active := 0; active < len(Tabs); active++ {
		for i := range Tabs {
			row := 0
			if i >= tabsPerRow {
				row = 1
			}
			rowStart := row * tabsPerRow

			pos := 1 // leading space
			for j := rowStart; j < i; j++ {
				pos += TabVisualWidth(Tabs[j], j == active) + 2
			}
			x := pos + TabVisualWidth(Tabs[i], i == active)/2

			if got := TabAtX(x, row, active); got != i {
				t.Fatalf("active=%d x=%d y=%d -> tab=%d, want %d", active, x, row, got, i)
			}
		}
	}
}

func TestTabAtXMisses(t *testing.T) {
	if got := TabAtX(0, 0, 0); got != -1 {
		t.Errorf("click on leading space = %d, want -1", got)
	}
	if got := TabAtX(10, 2, 0); got != -1 {
		t.Errorf("click below tab bar = %d, want -1", got)
	}
	if got := TabAtX(500, 0, 0); got != -1 {
		t.Errorf("click past last tab = %d, want -1", got)
	}
}

func TestProgressBarClamps(t *testing.T) {
	over := ProgressBar(1.5, 10)
	if !strings.Contains(over, "150%") {
		t.Errorf("ProgressBar(1.5) should still report 150%%, got %q", over)
	}
	if strings.Count(over, "█") != 10 {
		t.Errorf("ProgressBar(1.5, 10) fill = %d blocks, want 10", strings.Count(over, "█"))
	}

	under := ProgressBar(-0.2, 10)
	if strings.Count(under, "█") != 0 {
		t.Errorf("ProgressBar(-0.2) should have no filled blocks, got %q", under)
	}
	if strings.Count(under, "░") != 10 {
		t.Errorf("ProgressBar(-0.2, 10) empty = %d blocks, want 10", strings.Count(under, "░"))
	}
}

func TestSparklineLength(t *testing.T) {
	values := []float64{1, 5, 3, 8, 2}
	out := Sparkline(values, lipgloss.Color("#ff0000"))

	runes := 0
	for _, r := range out {
		for _, b := range sparkBlocks {
			if r == b {
				runes++
				break
			}
		}
	}
	if runes != len(values) {
		t.Errorf("Sparkline rendered %d block runes, want %d", runes, len(values))
	}

	if got := Sparkline(nil, lipgloss.Color("#ff0000")); got != "" {
		t.Errorf("Sparkline(nil) = %q, want empty", got)
	}
}

func TestTrendLineUsesFullRange(t *testing.T) {
	// A narrow band around a high baseline should still span the full
	// block range.
	values := []float64{78.0, 78.5, 79.0, 78.2, 77.5}
	out := TrendLine(values, lipgloss.Color("#ff0000"))

	var lowest, highest bool
	for _, r := range out {
		if r == sparkBlocks[0] {
			lowest = true
		}
		if r == sparkBlocks[len(sparkBlocks)-1] {
			highest = true
		}
	}
	if !lowest || !highest {
		t.Errorf("TrendLine should span min..max blocks, got %q", out)
	}

	flat := TrendLine([]float64{80, 80, 80}, lipgloss.Color("#ff0000"))
	if flat == "" {
		t.Error("TrendLine on a flat series should still render")
	}
}

func TestBarChartFallsBackWhenCramped(t *testing.T) {
	values := []float64{1, 2, 3}
	narrow := BarChart(values, nil, lipgloss.Color("#ff0000"), 10, 5)
	spark := Sparkline(values, lipgloss.Color("#ff0000"))
	if narrow != spark {
		t.Error("BarChart below minimum width should fall back to Sparkline")
	}

	full := BarChart(values, []string{"a", "b", "c"}, lipgloss.Color("#ff0000"), 30, 4)
	if lines := strings.Split(full, "\n"); len(lines) != 6 {
		t.Errorf("BarChart height=4 with labels should render 6 lines, got %d", len(lines))
	}
}
