package calendar

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 7, 0, 0, 0, time.Local)
}

func TestModeFromWeekday(t *testing.T) {
	cases := []struct {
		ref  time.Time
		want Mode
	}{
		{date(2026, time.August, 24), Weekday}, // Monday
		{date(2026, time.August, 28), Weekday}, // Friday
		{date(2026, time.August, 29), Saturday},
		{date(2026, time.August, 30), Sunday},
	}

	for _, tc := range cases {
		got := Resolve(tc.ref, "")
		if got.Mode != tc.want {
			t.Errorf("Resolve(%s) mode = %s, want %s", tc.ref.Format("2006-01-02"), got.Mode, tc.want)
		}
	}
}

func TestModeOverride(t *testing.T) {
	// A Sunday forced into weekday mode still resolves holiday flags.
	got := Resolve(date(2026, time.August, 30), Weekday)
	if got.Mode != Weekday {
		t.Fatalf("override not applied, mode = %s", got.Mode)
	}
}

func TestPrevTradingDaySkipsWeekend(t *testing.T) {
	// Monday walks back to Friday, never Saturday or Sunday.
	monday := date(2026, time.August, 24)
	prev := PrevTradingDay(monday)
	if prev.Weekday() != time.Friday {
		t.Fatalf("previous trading day of Monday = %s, want Friday", prev.Weekday())
	}
	if prev.Format("2006-01-02") != "2026-08-21" {
		t.Fatalf("previous trading day = %s, want 2026-08-21", prev.Format("2006-01-02"))
	}

	tuesday := date(2026, time.August, 25)
	if PrevTradingDay(tuesday).Weekday() != time.Monday {
		t.Fatalf("previous trading day of Tuesday should be Monday")
	}
}

func TestUSHolidayPrevClose(t *testing.T) {
	// 2026-09-07 is Labor Day (Monday). The Tuesday morning briefing must
	// flag the prior US session as closed.
	tuesday := date(2026, time.September, 8)
	ctx := Resolve(tuesday, "")
	if !ctx.USHolidayPrevClose {
		t.Fatal("expected US holiday flag for day after Labor Day")
	}
	if ctx.USHolidayName != "Labor Day" {
		t.Errorf("US holiday name = %q", ctx.USHolidayName)
	}

	// The Monday itself: previous close is Friday 09-04, a trading day.
	monday := date(2026, time.September, 7)
	if Resolve(monday, "").USHolidayPrevClose {
		t.Error("Friday before Labor Day was a trading session")
	}
}

func TestKRHoliday(t *testing.T) {
	ctx := Resolve(date(2026, time.February, 17), "")
	if !ctx.KRHoliday {
		t.Fatal("expected KR holiday flag for 설날")
	}
	if ctx.KRHolidayName != "설날" {
		t.Errorf("KR holiday name = %q", ctx.KRHolidayName)
	}

	if Resolve(date(2026, time.February, 19), "").KRHoliday {
		t.Error("2026-02-19 is a trading day")
	}
}

func TestMondayAfterUSFridayHoliday(t *testing.T) {
	// Good Friday 2026-04-03: the Monday 04-06 briefing walks back past the
	// weekend and lands on the Friday holiday.
	monday := date(2026, time.April, 6)
	ctx := Resolve(monday, "")
	if !ctx.USHolidayPrevClose {
		t.Fatal("expected US holiday flag for Monday after Good Friday")
	}
	if ctx.USHolidayName != "Good Friday" {
		t.Errorf("US holiday name = %q", ctx.USHolidayName)
	}
}
