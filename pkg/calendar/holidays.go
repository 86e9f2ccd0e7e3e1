package calendar

// KRX market closure days. Weekend-only closures are not listed; the mode
// already covers them.
var krHolidays = map[string]string{
	// 2025
	"2025-01-01": "신정",
	"2025-01-27": "설날 연휴 (임시공휴일)",
	"2025-01-28": "설날 연휴",
	"2025-01-29": "설날",
	"2025-01-30": "설날 연휴",
	"2025-03-03": "삼일절 대체공휴일",
	"2025-05-01": "근로자의 날",
	"2025-05-05": "어린이날",
	"2025-05-06": "부처님오신날 대체공휴일",
	"2025-06-03": "대통령선거일",
	"2025-06-06": "현충일",
	"2025-08-15": "광복절",
	"2025-10-03": "개천절",
	"2025-10-06": "추석 연휴",
	"2025-10-07": "추석",
	"2025-10-08": "추석 연휴",
	"2025-10-09": "한글날",
	"2025-12-25": "성탄절",
	"2025-12-31": "연말 휴장일",

	// 2026
	"2026-01-01": "신정",
	"2026-02-16": "설날 연휴",
	"2026-02-17": "설날",
	"2026-02-18": "설날 연휴",
	"2026-03-02": "삼일절 대체공휴일",
	"2026-05-01": "근로자의 날",
	"2026-05-05": "어린이날",
	"2026-05-25": "부처님오신날 대체공휴일",
	"2026-06-03": "지방선거일",
	"2026-08-17": "광복절 대체공휴일",
	"2026-09-24": "추석 연휴",
	"2026-09-25": "추석",
	"2026-10-05": "개천절 대체공휴일",
	"2026-10-09": "한글날",
	"2026-12-25": "성탄절",
	"2026-12-31": "연말 휴장일",
}

// NYSE full-day closures.
var usHolidays = map[string]string{
	// 2025
	"2025-01-01": "New Year's Day",
	"2025-01-09": "National Day of Mourning",
	"2025-01-20": "Martin Luther King Jr. Day",
	"2025-02-17": "Washington's Birthday",
	"2025-04-18": "Good Friday",
	"2025-05-26": "Memorial Day",
	"2025-06-19": "Juneteenth",
	"2025-07-04": "Independence Day",
	"2025-09-01": "Labor Day",
	"2025-11-27": "Thanksgiving Day",
	"2025-12-25": "Christmas Day",

	// 2026
	"2026-01-01": "New Year's Day",
	"2026-01-19": "Martin Luther King Jr. Day",
	"2026-02-16": "Washington's Birthday",
	"2026-04-03": "Good Friday",
	"2026-05-25": "Memorial Day",
	"2026-06-19": "Juneteenth",
	"2026-07-03": "Independence Day (observed)",
	"2026-09-07": "Labor Day",
	"2026-11-26": "Thanksgiving Day",
	"2026-12-25": "Christmas Day",
}

// IsKRHoliday reports whether the KRX market is closed on the given date.
func IsKRHoliday(dateKeyStr string) (string, bool) {
	name, ok := krHolidays[dateKeyStr]
	return name, ok
}

// IsUSHoliday reports whether the NYSE is closed on the given date.
func IsUSHoliday(dateKeyStr string) (string, bool) {
	name, ok := usHolidays[dateKeyStr]
	return name, ok
}
