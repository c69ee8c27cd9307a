package cli

import (
	"strings"
	"testing"
)

func TestRenderProgressBar(t *testing.T) {
	out := RenderProgressBar(2, 5, 20)
	if !strings.Contains(out, "2/5") {
		t.Fatalf("missing count label: %q", out)
	}
	if got := strings.Count(out, "█"); got != 8 {
		t.Fatalf("filled = %d blocks, want 8", got)
	}
	if got := strings.Count(out, "░"); got != 12 {
		t.Fatalf("empty = %d blocks, want 12", got)
	}

	if out := RenderProgressBar(1, 0, 10); out != "" {
		t.Fatalf("zero total should render nothing, got %q", out)
	}

	over := RenderProgressBar(12, 10, 10)
	if got := strings.Count(over, "█"); got != 10 {
		t.Fatalf("overfull bar = %d blocks, want clamped 10", got)
	}
}
