// Package calendar resolves the report mode and market holiday state for a
// briefing run from a reference date.
package calendar

import (
	"fmt"
	"strings"
	"time"
)

// Mode is the report structure variant for a run.
type Mode string

const (
	Weekday  Mode = "weekday"
	Saturday Mode = "saturday"
	Sunday   Mode = "sunday"
)

// ParseMode validates a mode string from CLI or environment input.
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case Weekday:
		return Weekday, nil
	case Saturday:
		return Saturday, nil
	case Sunday:
		return Sunday, nil
	default:
		return "", fmt.Errorf("invalid mode %q (use weekday/saturday/sunday)", s)
	}
}

// Context is the calendar state for a run. Immutable once resolved.
type Context struct {
	ReferenceDate      time.Time
	Mode               Mode
	KRHoliday          bool
	USHolidayPrevClose bool
	KRHolidayName      string
	USHolidayName      string
}

// Resolve derives the calendar context for a reference date. An empty
// modeOverride picks the mode from the weekday of the date.
func Resolve(ref time.Time, modeOverride Mode) Context {
	mode := modeOverride
	if mode == "" {
		switch ref.Weekday() {
		case time.Saturday:
			mode = Saturday
		case time.Sunday:
			mode = Sunday
		default:
			mode = Weekday
		}
	}

	ctx := Context{
		ReferenceDate: ref,
		Mode:          mode,
	}

	if name, ok := krHolidays[dateKey(ref)]; ok {
		ctx.KRHoliday = true
		ctx.KRHolidayName = name
	}

	// The morning briefing narrates the prior US session's close, so the
	// holiday test runs against the previous weekday, not the reference
	// date itself.
	prev := PrevTradingDay(ref)
	if name, ok := usHolidays[dateKey(prev)]; ok {
		ctx.USHolidayPrevClose = true
		ctx.USHolidayName = name
	}

	return ctx
}

// PrevTradingDay walks backward from ref one day at a time, skipping
// Saturday and Sunday, and returns the first weekday strictly before ref.
func PrevTradingDay(ref time.Time) time.Time {
	d := ref.AddDate(0, 0, -1)
	for d.Weekday() == time.Saturday || d.Weekday() == time.Sunday {
		d = d.AddDate(0, 0, -1)
	}
	return d
}

func dateKey(t time.Time) string {
	return t.Format("2006-01-02")
}
