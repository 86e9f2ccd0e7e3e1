package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/dyike/BriefingGo/pkg/briefing"
)

// UI styles
var (
	titleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#7C3AED")).
		Align(lipgloss.Center).
		Width(72).
		MarginBottom(1)

	headerStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#3B82F6")).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#3B82F6")).
		Padding(0, 2).
		Width(72)

	marketStyle = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#10B981")).
		Padding(1, 2).
		Width(72)

	briefingStyle = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#F59E0B")).
		Padding(1, 2).
		Width(72)

	deliveredStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#10B981")).
		Bold(true)

	warnStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#F59E0B")).
		Bold(true)

	errorStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#EF4444")).
		Bold(true)

	unavailableStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#6B7280"))
)

// DisplayWelcomeBanner shows the welcome banner
func DisplayWelcomeBanner() {
	fmt.Println(titleStyle.Render("📰 BriefingGo - Daily Economic Briefing Service"))
	fmt.Println()
}

// DisplayRunResult renders the outcome of one briefing run
func DisplayRunResult(result *briefing.Result) {
	cal := result.Calendar

	header := fmt.Sprintf("📅 %s | Mode: %s",
		cal.ReferenceDate.Format("2006-01-02"), cal.Mode)
	if cal.KRHoliday {
		header += fmt.Sprintf(" | KR holiday: %s", cal.KRHolidayName)
	}
	if cal.USHolidayPrevClose {
		header += fmt.Sprintf(" | US holiday: %s", cal.USHolidayName)
	}
	fmt.Println(headerStyle.Render(header))

	fmt.Println(marketStyle.Render(renderMarketTable(result)))
	fmt.Println(briefingStyle.Render(result.Briefing))
	fmt.Println(renderDeliveryStatus(result))
	fmt.Println()
}

func renderMarketTable(result *briefing.Result) string {
	var content strings.Builder

	content.WriteString("📊 Market Snapshot\n\n")
	for _, entry := range result.Snapshot.Entries {
		label := entry.Instrument.Label
		if !entry.Available() {
			content.WriteString(unavailableStyle.Render(fmt.Sprintf("  %-14s data unavailable", label)))
			content.WriteString("\n")
			continue
		}

		q := entry.Quote
		price, _ := q.Price.Float64()
		pct, _ := q.PctChange.Float64()
		glyph := "➖"
		switch q.Change.Sign() {
		case 1:
			glyph = "🔺"
		case -1:
			glyph = "🔻"
		}
		content.WriteString(fmt.Sprintf("  %-14s %12s  %s %+.2f%%\n",
			label, humanize.FormatFloat("#,###.##", price), glyph, pct))
	}

	content.WriteString(fmt.Sprintf("\n🔍 Queries: %s", strings.Join(result.Queries, " · ")))
	content.WriteString(fmt.Sprintf("\n📄 Articles: %d", len(result.Articles)))

	return content.String()
}

func renderDeliveryStatus(result *briefing.Result) string {
	switch {
	case result.DeliverySkipped:
		return warnStyle.Render("⏭️  Delivery skipped (dry run)")
	case result.Delivery.Delivered && result.Delivery.UsedPlainTextFallback:
		return warnStyle.Render("⚠️  Delivered as plain text (HTML formatting rejected)")
	case result.Delivery.Delivered:
		return deliveredStyle.Render("✅ Delivered to Telegram")
	default:
		return errorStyle.Render("❌ Delivery failed (see run log)")
	}
}
