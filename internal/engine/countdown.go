// Package engine holds the pure derivation logic behind the dashboard
// widgets: countdowns, habit streaks, and health metrics. Everything in
// this package is a function of its inputs and a caller-supplied "now";
// nothing here reads the clock or touches storage.
package engine

import "time"

// Countdown is a clock decomposition of the time remaining until a
// target instant: whole days, then 0-23 hours, 0-59 minutes and 0-59
// seconds of remainder. A past (or exactly-now) target is the terminal
// all-zero state with IsPast set.
type Countdown struct {
	Days    int
	Hours   int
	Minutes int
	Seconds int
	IsPast  bool
}

// Remaining computes the countdown from now to target. It is always
// derived fresh from both instants rather than decremented, so repeated
// calls cannot drift and clock changes are picked up on the next call.
func Remaining(target, now time.Time) Countdown {
	if !target.After(now) {
		return Countdown{IsPast: true}
	}
	secs := int64(target.Sub(now) / time.Second)
	return Countdown{
		Days:    int(secs / 86400),
		Hours:   int(secs % 86400 / 3600),
		Minutes: int(secs % 3600 / 60),
		Seconds: int(secs % 60),
	}
}

// Urgency bands a deadline for display.
type Urgency int

const (
	UrgencyPast Urgency = iota
	UrgencyCritical
	UrgencySoon
	UrgencyComfortable
)

// UrgencyOf bands the remaining time: past, under 3 days, under 7 days,
// or comfortable.
func UrgencyOf(target, now time.Time) Urgency {
	left := target.Sub(now)
	switch {
	case left <= 0:
		return UrgencyPast
	case left < 3*24*time.Hour:
		return UrgencyCritical
	case left < 7*24*time.Hour:
		return UrgencySoon
	default:
		return UrgencyComfortable
	}
}
