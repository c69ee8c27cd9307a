package engine

import (
	"math"
	"testing"
	"time"

	"github.com/hayati-app/hayati/internal/model"
)

func TestCurrentWeight(t *testing.T) {
	info := model.HealthInfo{InitialWeight: 80}
	if w := CurrentWeight(info); w != 80 {
		t.Fatalf("empty history: weight = %.1f, want initial 80", w)
	}

	info.History = []model.WeightEntry{
		{Date: time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC), Weight: 79},
		{Date: time.Date(2025, 3, 5, 8, 0, 0, 0, time.UTC), Weight: 77.5},
		{Date: time.Date(2025, 3, 3, 8, 0, 0, 0, time.UTC), Weight: 78},
	}
	if w := CurrentWeight(info); w != 77.5 {
		t.Fatalf("weight = %.1f, want most recent 77.5", w)
	}
}

func TestBMI(t *testing.T) {
	v, cat := BMI(175, 70)
	if math.Abs(v-22.857) > 0.01 {
		t.Fatalf("BMI(175, 70) = %.3f, want ~22.857", v)
	}
	if cat != BMINormal {
		t.Fatalf("category = %s, want %s", cat, BMINormal)
	}

	if _, cat := BMI(0, 70); cat != BMIUnknown {
		t.Fatalf("zero height category = %s, want %s", cat, BMIUnknown)
	}
	if _, cat := BMI(175, 0); cat != BMIUnknown {
		t.Fatalf("zero weight category = %s, want %s", cat, BMIUnknown)
	}

	bands := []struct {
		weight float64
		want   BMICategory
	}{
		{50, BMIUnderweight}, // 16.3
		{60, BMINormal},      // 19.6
		{80, BMIOverweight},  // 26.1
		{95, BMIObese},       // 31.0
	}
	for _, b := range bands {
		if _, cat := BMI(175, b.weight); cat != b.want {
			t.Fatalf("BMI(175, %.0f) category = %s, want %s", b.weight, cat, b.want)
		}
	}
}

func TestProgress(t *testing.T) {
	tests := []struct {
		name                      string
		initial, target, current  float64
		want                      float64
	}{
		{"halfway loss", 80, 70, 75, 50},
		{"overshoot clamps", 80, 70, 65, 100},
		{"regression clamps", 80, 70, 85, 0},
		{"equal target reached", 70, 70, 70, 100},
		{"equal target missed", 70, 70, 72, 0},
		{"gain goal halfway", 60, 70, 65, 50},
		{"unset initial", 0, 70, 75, 0},
		{"unset target", 80, 0, 75, 0},
		{"unset current", 80, 70, 0, 0},
	}
	for _, tt := range tests {
		if got := Progress(tt.initial, tt.target, tt.current); math.Abs(got-tt.want) > 1e-9 {
			t.Fatalf("%s: Progress(%v, %v, %v) = %.2f, want %.2f",
				tt.name, tt.initial, tt.target, tt.current, got, tt.want)
		}
	}
}

func TestRecordWeightFirstEntrySetsInitial(t *testing.T) {
	info := model.HealthInfo{HeightCm: 175, TargetWeight: 70}
	entry := model.WeightEntry{Date: time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC), Weight: 82.5}

	info = RecordWeight(info, entry)
	if info.InitialWeight != 82.5 {
		t.Fatalf("InitialWeight = %.1f, want 82.5 from first entry", info.InitialWeight)
	}

	// A later entry must not move the initial weight.
	later := model.WeightEntry{Date: entry.Date.AddDate(0, 0, 1), Weight: 81}
	info = RecordWeight(info, later)
	if info.InitialWeight != 82.5 {
		t.Fatalf("InitialWeight changed to %.1f after second entry", info.InitialWeight)
	}
	if len(info.History) != 2 {
		t.Fatalf("history length = %d, want 2", len(info.History))
	}
}

func TestRecordWeightSameDayReplaces(t *testing.T) {
	day := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)
	info := model.HealthInfo{InitialWeight: 82}
	info = RecordWeight(info, model.WeightEntry{Date: day, Weight: 81})
	info = RecordWeight(info, model.WeightEntry{Date: day.Add(10 * time.Hour), Weight: 80.5})

	if len(info.History) != 1 {
		t.Fatalf("history length = %d, want 1 (same-day replace)", len(info.History))
	}
	if info.History[0].Weight != 80.5 {
		t.Fatalf("weight = %.1f, want the replacement 80.5", info.History[0].Weight)
	}
}

func TestRecordWeightKeepsAscendingOrder(t *testing.T) {
	info := model.HealthInfo{InitialWeight: 82}
	d := func(day int) time.Time { return time.Date(2025, 3, day, 8, 0, 0, 0, time.UTC) }

	info = RecordWeight(info, model.WeightEntry{Date: d(10), Weight: 80})
	info = RecordWeight(info, model.WeightEntry{Date: d(5), Weight: 81.5})
	info = RecordWeight(info, model.WeightEntry{Date: d(8), Weight: 81})

	for i := 1; i < len(info.History); i++ {
		if info.History[i].Date.Before(info.History[i-1].Date) {
			t.Fatalf("history not ascending at %d: %v", i, info.History)
		}
	}
}
