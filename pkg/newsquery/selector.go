// Package newsquery maps the calendar state of a run to the ordered Google
// News search queries for that run.
package newsquery

import "github.com/dyike/BriefingGo/pkg/calendar"

// Query lists are ordered by thematic priority; the aggregator fetches them
// in this order and keeps first-seen articles.
var (
	saturdayQueries = []string{
		"미국 증시 마감",
		"주간 해외 증시",
		"글로벌 경제뉴스",
	}

	sundayQueries = []string{
		"주간 증시 정리",
		"다음주 증시 일정",
		"다음주 경제 캘린더",
		"주간 증시 전망",
	}

	// Weekday variants keyed by (KR holiday, US holiday prev close).
	weekdayBothClosed = []string{
		"글로벌 경제뉴스",
		"세계 증시 동향",
		"국제 경제 이슈",
	}

	weekdayKRClosed = []string{
		"미국 증시 마감",
		"글로벌 경제뉴스",
		"해외 증시 특징주",
	}

	weekdayUSClosed = []string{
		"미국 경제 뉴스",
		"국내 증시 전망",
		"특징주",
	}

	weekdayDefault = []string{
		"미국 증시 마감",
		"특징주",
		"국내 증시 전망",
	}
)

// Select returns the search queries for a calendar context. The result is a
// copy; callers may not mutate the tables.
func Select(ctx calendar.Context) []string {
	var queries []string

	switch ctx.Mode {
	case calendar.Saturday:
		queries = saturdayQueries
	case calendar.Sunday:
		queries = sundayQueries
	default:
		switch {
		case ctx.KRHoliday && ctx.USHolidayPrevClose:
			queries = weekdayBothClosed
		case ctx.KRHoliday:
			queries = weekdayKRClosed
		case ctx.USHolidayPrevClose:
			queries = weekdayUSClosed
		default:
			queries = weekdayDefault
		}
	}

	out := make([]string, len(queries))
	copy(out, queries)
	return out
}
