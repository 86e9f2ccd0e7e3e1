package prompt

import (
	"fmt"
	"strings"

	"github.com/dyike/BriefingGo/pkg/calendar"
)

// Weekday report structure is assembled from independently resolved slots so
// every (mode, holiday) combination stays testable on its own.
type slotID int

const (
	slotHeadline slotID = iota
	slotGlobalMarket
	slotDomesticOutlook
	slotConclusion
)

var weekdaySlots = []slotID{slotHeadline, slotGlobalMarket, slotDomesticOutlook, slotConclusion}

var slotResolvers = map[slotID]func(ctx calendar.Context, dateStr string) string{
	slotHeadline:        resolveHeadline,
	slotGlobalMarket:    resolveGlobalMarket,
	slotDomesticOutlook: resolveDomesticOutlook,
	slotConclusion:      resolveConclusion,
}

// SelectTemplate returns the report template for a calendar context.
// Saturday and Sunday carry fixed weekly templates; weekdays are assembled
// slot by slot.
func SelectTemplate(ctx calendar.Context, dateStr string) string {
	switch ctx.Mode {
	case calendar.Saturday:
		return fmt.Sprintf(saturdayTemplate, dateStr)
	case calendar.Sunday:
		return fmt.Sprintf(sundayTemplate, dateStr)
	default:
		parts := make([]string, 0, len(weekdaySlots))
		for _, id := range weekdaySlots {
			parts = append(parts, slotResolvers[id](ctx, dateStr))
		}
		return strings.Join(parts, "\n\n---\n\n")
	}
}

func resolveHeadline(ctx calendar.Context, dateStr string) string {
	if ctx.KRHoliday {
		return fmt.Sprintf("<b>📊 %s 한국 증시 전망 보고서 (%s 휴장)</b>", dateStr, ctx.KRHolidayName)
	}
	return fmt.Sprintf("<b>📊 %s 한국 증시 종합 전망 보고서</b>", dateStr)
}

func resolveGlobalMarket(ctx calendar.Context, _ string) string {
	if ctx.USHolidayPrevClose {
		return fmt.Sprintf(globalMarketClosedSlot, ctx.USHolidayName)
	}
	return globalMarketSlot
}

func resolveDomesticOutlook(ctx calendar.Context, _ string) string {
	if ctx.KRHoliday {
		return fmt.Sprintf(domesticClosedSlot, ctx.KRHolidayName)
	}
	return domesticOutlookSlot
}

func resolveConclusion(_ calendar.Context, _ string) string {
	return conclusionSlot
}

const globalMarketSlot = `<b>🌍 글로벌 시장 상황 (미 증시)</b>
<b>지수</b>
- (List major US indices: Dow, Nasdaq, S&P500, Russell 2000, Philly Semi with % change)
- (Add a one-line comment on the overall vibe)

<b>핵심 특징</b>
- (Summarize 2-3 key drivers. Use bolding for keywords.)

---

<b>🔥 미 증시 핵심 모멘텀 (국내 영향)</b>
(Identify 3-4 key themes/events)

<b>1️⃣ (Theme Title)</b>
- <b>(Key Point)</b>: (Detail)
- <b>(Key Point)</b>: (Detail)
<b>결과:</b>
- (List related US stocks with specific % rise/fall)

<b>2️⃣ (Theme Title)</b>
...`

const globalMarketClosedSlot = `<b>🌍 글로벌 시장 상황</b>
<b>⛔ 미국 증시 휴장 안내</b>
- 직전 거래일은 <b>%s</b>(으)로 미국 증시가 휴장했습니다.
- (Do NOT list or invent US index figures for the closed session.)
- (Instead, summarize non-US global market news from the articles: Europe, Asia, FX, commodities.)`

const domesticOutlookSlot = `<b>🇰🇷 한국 증시 오늘 전망</b>
<b>예상 범위</b>
<b>코스피: (Estimate a range)</b>

---

<b>🚀 오늘의 최강 테마 (우선순위)</b>

<b>🥇 1순위: (Sector Name)</b>
<b>(Catchy Slogan)</b>
<b>관련주:</b>
- (List stocks)
<b>호재:</b>
- (Why this sector?)

<b>🥈 2순위: (Sector Name)</b>
...

---

<b>🎯 매매 전략 (종합)</b>
<b>🟢 공격적 매수</b>
- (Sectors/Stocks)

<b>🟡 관망/보유</b>
- (Sectors)

<b>🔴 주의/매도</b>
- (Sectors)`

const domesticClosedSlot = `<b>🇰🇷 국내 증시 휴장 안내</b>
- 오늘은 <b>%s</b>(으)로 국내 증시가 휴장합니다.
- (Do NOT provide a KOSPI forecast range today.)
- (Do NOT provide any buy/hold/sell strategy today.)

---

<b>👀 휴일 체크 포인트</b>
- (List 2-3 global developments from the articles worth watching while the domestic market is closed)
- (Note anything likely to move the market on the next trading day)`

const conclusionSlot = `<b>🎬 결론</b>
(One sentence summary)`

const saturdayTemplate = `<b>📊 %s 글로벌 증시 주간 요약 보고서</b>

<b>🌍 글로벌 시장 상황 (이번 주 마감)</b>
<b>지수</b>
- (List major US indices: Dow, Nasdaq, S&P500, Russell 2000, Philly Semi with %% change)
- (Add a one-line comment on the weekly/daily trend)

<b>핵심 특징</b>
- (Summarize 2-3 key drivers of the US market this week. Use bolding for keywords.)

---

<b>🔥 이번 주 글로벌 핫 이슈</b>
(Identify 3 key themes/events from the US/Global market)

<b>1️⃣ (Theme Title)</b>
- <b>(Key Point)</b>: (Detail)
<b>결과 및 영향:</b>
- (Related stocks or sectors)

<b>2️⃣ (Theme Title)</b>
...

---

<b>💡 다음 주 글로벌 체크 포인트 (미리보기)</b>
- (Briefly mention 1-2 key events expected next week based on news)`

const sundayTemplate = `<b>📅 %s 이번 주 증시 정리 및 다음 주 전망</b>

<b>📉 이번 주 시장 요약 (Review)</b>
<b>시장 동향</b>
- (Summarize how the Korean and US markets performed this past week)
- (Mention key indices changes if available in context)

<b>주요 이슈 점검</b>
- (List 2-3 major economic events or news from the past week)

---

<b>🗓️ 다음 주 증시 일정 (Preview)</b>
(Based on news articles about "Next Week Schedule")

<b>주요 경제 지표 발표</b>
- (List expected events/announcements with dates if possible)

<b>주요 기업 실적 발표</b>
- (List expected earnings releases)

---

<b>👀 다음 주 관전 포인트</b>
<b>1. (Point 1)</b>
- (Explanation)

<b>2. (Point 2)</b>
- (Explanation)

---

<b>🎯 다음 주 대응 전략</b>
- (General investment strategy advice for the upcoming week)`
