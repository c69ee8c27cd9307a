package engine

import (
	"sort"
	"time"

	"github.com/hayati-app/hayati/internal/model"
)

// BMICategory bands a body-mass index.
type BMICategory string

const (
	BMIUnknown     BMICategory = "N/A"
	BMIUnderweight BMICategory = "Underweight"
	BMINormal      BMICategory = "Normal"
	BMIOverweight  BMICategory = "Overweight"
	BMIObese       BMICategory = "Obese"
)

// CurrentWeight returns the weight of the most recent history entry,
// falling back to the initial weight when there is no history.
func CurrentWeight(info model.HealthInfo) float64 {
	if len(info.History) == 0 {
		return info.InitialWeight
	}
	latest := info.History[0]
	for _, e := range info.History[1:] {
		if e.Date.After(latest.Date) {
			latest = e
		}
	}
	return latest.Weight
}

// BMI computes body-mass index and its category band. Height or weight
// at or below zero yields the N/A sentinel rather than a division by
// zero.
func BMI(heightCm, weightKg float64) (float64, BMICategory) {
	if heightCm <= 0 || weightKg <= 0 {
		return 0, BMIUnknown
	}
	m := heightCm / 100
	v := weightKg / (m * m)
	switch {
	case v < 18.5:
		return v, BMIUnderweight
	case v < 25:
		return v, BMINormal
	case v < 30:
		return v, BMIOverweight
	default:
		return v, BMIObese
	}
}

// Progress reports how far current has traveled from initial toward
// target, as a percentage clamped to [0,100]. Numerator and denominator
// flip sign together, so the same formula covers loss and gain goals.
// Overshooting the target reports 100, not more.
func Progress(initial, target, current float64) float64 {
	if initial <= 0 || target <= 0 || current <= 0 {
		return 0
	}
	if initial == target {
		if current == target {
			return 100
		}
		return 0
	}
	p := (initial - current) / (initial - target) * 100
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}

// RecordWeight inserts a weight entry under the history policy: an
// existing entry on the same calendar day is replaced, history stays
// sorted ascending, and the very first entry ever recorded also becomes
// the initial weight. Later insertions never touch the initial weight;
// it is only editable through the info-edit path.
func RecordWeight(info model.HealthInfo, entry model.WeightEntry) model.HealthInfo {
	first := info.InitialWeight == 0 && len(info.History) == 0

	loc := entry.Date.Location()
	day := CalendarDay(entry.Date, loc)
	kept := make([]model.WeightEntry, 0, len(info.History)+1)
	for _, e := range info.History {
		if CalendarDay(e.Date, loc).Equal(day) {
			continue
		}
		kept = append(kept, e)
	}
	kept = append(kept, entry)
	sort.Slice(kept, func(i, j int) bool { return kept[i].Date.Before(kept[j].Date) })

	info.History = kept
	if first {
		info.InitialWeight = entry.Weight
	}
	return info
}

// WeightSeries returns the history weights in chronological order,
// for charting.
func WeightSeries(info model.HealthInfo) ([]float64, []time.Time) {
	vals := make([]float64, len(info.History))
	dates := make([]time.Time, len(info.History))
	for i, e := range info.History {
		vals[i] = e.Weight
		dates[i] = e.Date
	}
	return vals, dates
}
