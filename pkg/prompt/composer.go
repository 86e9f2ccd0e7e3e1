// Package prompt composes the full generation request for a briefing run:
// analyst persona, calendar-selected template, market summary, news context
// and the fixed formatting constraints.
package prompt

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/dyike/BriefingGo/pkg/calendar"
	"github.com/dyike/BriefingGo/pkg/dataflows"
)

// Spec is the fully composed generation request, passed by value.
type Spec struct {
	Persona       string
	Template      string
	MarketSummary string
	NewsContext   string
	Constraints   string
}

// Compose builds the generation request for a run.
func Compose(ctx calendar.Context, snapshot *dataflows.MarketSnapshot, newsBlob string) Spec {
	dateStr := ctx.ReferenceDate.Format("01/02(Mon)")

	return Spec{
		Persona:       persona,
		Template:      SelectTemplate(ctx, dateStr),
		MarketSummary: MarketSummary(snapshot),
		NewsContext:   newsBlob,
		Constraints:   constraints,
	}
}

// Text renders the request as the single prompt string sent to the
// generation service.
func (s Spec) Text() string {
	var b strings.Builder

	b.WriteString(s.Persona)
	b.WriteString("\n\n**Format Requirements (Strictly Follow This Structure)**:\n")
	b.WriteString(s.Template)
	b.WriteString("\n\n**Input Data:**\n")
	b.WriteString(s.MarketSummary)
	b.WriteString("\n")
	b.WriteString(s.NewsContext)
	b.WriteString("\n\n")
	b.WriteString(s.Constraints)

	return b.String()
}

// MarketSummary renders the snapshot in its fixed order. Every instrument
// appears exactly once; unavailable entries get an explicit line instead of
// being dropped.
func MarketSummary(snapshot *dataflows.MarketSnapshot) string {
	var b strings.Builder
	b.WriteString("## Market Data Indices\n")

	if snapshot == nil || len(snapshot.Entries) == 0 {
		b.WriteString("Data Unavailable\n")
		return b.String()
	}

	for _, entry := range snapshot.Entries {
		if !entry.Available() {
			fmt.Fprintf(&b, "- %s: Data Unavailable\n", entry.Instrument.Label)
			continue
		}

		q := entry.Quote
		price, _ := q.Price.Float64()
		pct, _ := q.PctChange.Float64()

		fmt.Fprintf(&b, "- %s: %s (%s %.2f%%)\n",
			entry.Instrument.Label,
			humanize.FormatFloat("#,###.##", price),
			directionGlyph(q.Change.Sign()),
			pct,
		)
	}

	return b.String()
}

// directionGlyph maps a change sign to the report glyph. Color markup is
// forbidden downstream, so direction is always carried by glyphs.
func directionGlyph(sign int) string {
	switch {
	case sign > 0:
		return "🔺"
	case sign < 0:
		return "🔻"
	default:
		return "➖"
	}
}

const persona = `You are a top-tier Financial Analyst.
Based on the provided Market Data and News Articles, write a Report.`

const constraints = `**Instructions:**
- **Language**: Korean.
- **Formatting**:
    - Use ONLY these Telegram-supported HTML tags: <b>, <i>, <u>, <s>, <code>, <pre>, <a href="...">.
    - **FORBIDDEN TAGS**: <p>, <ul>, <ol>, <li>, <div>, <span>, <font>, <br>, <h1>..<h6>. DO NOT USE THESE.
    - **Lists**: Use hyphens (-) or emojis for lists. Do NOT use <ul>/<li>.
    - **Newlines**: Use actual newlines instead of <br> or <p>.
    - **Colors**: Do NOT use <font color="...">. Use emojis like 🔴 (Red/Up/Hot) or 🔵 (Blue/Cool/Down) or 🔻/🔺 to represent direction/sentiment.
- **Specifics**: Use ACTUAL numbers from the articles. Never invent figures that are not in the supplied market data or news context.`
