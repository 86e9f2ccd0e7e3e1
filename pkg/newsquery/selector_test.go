package newsquery

import (
	"testing"
	"time"

	"github.com/dyike/BriefingGo/pkg/calendar"
)

func ctx(mode calendar.Mode, kr, us bool) calendar.Context {
	return calendar.Context{
		ReferenceDate:      time.Date(2026, 8, 24, 7, 0, 0, 0, time.Local),
		Mode:               mode,
		KRHoliday:          kr,
		USHolidayPrevClose: us,
	}
}

func TestSelectCoversAllStates(t *testing.T) {
	cases := []struct {
		name  string
		ctx   calendar.Context
		count int
		first string
	}{
		{"saturday", ctx(calendar.Saturday, false, false), 3, "미국 증시 마감"},
		{"sunday", ctx(calendar.Sunday, false, false), 4, "주간 증시 정리"},
		{"weekday both closed", ctx(calendar.Weekday, true, true), 3, "글로벌 경제뉴스"},
		{"weekday kr closed", ctx(calendar.Weekday, true, false), 3, "미국 증시 마감"},
		{"weekday us closed", ctx(calendar.Weekday, false, true), 3, "미국 경제 뉴스"},
		{"weekday default", ctx(calendar.Weekday, false, false), 3, "미국 증시 마감"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			queries := Select(tc.ctx)
			if len(queries) != tc.count {
				t.Fatalf("got %d queries, want %d: %v", len(queries), tc.count, queries)
			}
			if queries[0] != tc.first {
				t.Errorf("first query = %q, want %q", queries[0], tc.first)
			}
		})
	}
}

func TestWeekendIgnoresHolidayFlags(t *testing.T) {
	plain := Select(ctx(calendar.Saturday, false, false))
	flagged := Select(ctx(calendar.Saturday, true, true))
	if len(plain) != len(flagged) {
		t.Fatal("saturday query set must not branch on holiday flags")
	}
	for i := range plain {
		if plain[i] != flagged[i] {
			t.Fatalf("saturday queries differ at %d: %q vs %q", i, plain[i], flagged[i])
		}
	}
}

func TestSelectReturnsCopy(t *testing.T) {
	a := Select(ctx(calendar.Weekday, false, false))
	a[0] = "mutated"
	b := Select(ctx(calendar.Weekday, false, false))
	if b[0] == "mutated" {
		t.Fatal("Select must not expose the underlying table")
	}
}
