package dataflows

import (
	"time"

	"github.com/dyike/BriefingGo/config"
	"github.com/shopspring/decimal"
)

// Config is an alias for the main application config
type Config = config.Config

// Instrument is one labeled entry of the market snapshot.
type Instrument struct {
	Label  string `json:"label"`
	Symbol string `json:"symbol"`
}

// DefaultInstruments is the fixed watchlist for the briefing, in report
// order.
var DefaultInstruments = []Instrument{
	{Label: "KOSPI", Symbol: "^KS11"},
	{Label: "KOSDAQ", Symbol: "^KQ11"},
	{Label: "S&P 500", Symbol: "^GSPC"},
	{Label: "NASDAQ", Symbol: "^IXIC"},
	{Label: "DOW JONES", Symbol: "^DJI"},
	{Label: "RUSSELL 2000", Symbol: "^RUT"},
	{Label: "PHILLY SEMI", Symbol: "^SOX"},
	{Label: "USD/KRW", Symbol: "KRW=X"},
	{Label: "BTC/USD", Symbol: "BTC-USD"},
}

// Quote is the day-over-day move of one instrument.
type Quote struct {
	Symbol    string          `json:"symbol"`
	Price     decimal.Decimal `json:"price"`
	Change    decimal.Decimal `json:"change"`
	PctChange decimal.Decimal `json:"pct_change"`
	Timestamp time.Time       `json:"timestamp"`
}

// SnapshotEntry pairs an instrument with its quote, or marks it unavailable
// when the fetch failed. Entries keep the watchlist order.
type SnapshotEntry struct {
	Instrument Instrument `json:"instrument"`
	Quote      *Quote     `json:"quote,omitempty"`
}

// Available reports whether the entry carries quote data.
func (e SnapshotEntry) Available() bool { return e.Quote != nil }

// MarketSnapshot is the ordered per-instrument quote set for one run. Built
// once, never mutated afterwards.
type MarketSnapshot struct {
	Entries   []SnapshotEntry `json:"entries"`
	FetchedAt time.Time       `json:"fetched_at"`
}

// QuoteSource fetches quotes for single instruments. YahooFinanceClient and
// LongportClient both satisfy it.
type QuoteSource interface {
	GetQuote(symbol string) (*Quote, error)
}

// FeedEntry is one candidate item from a news feed, before extraction.
type FeedEntry struct {
	Title       string    `json:"title"`
	Link        string    `json:"link"`
	Source      string    `json:"source"`
	PublishedAt time.Time `json:"published_at"`
	Published   string    `json:"published"`
}

// NewsFeed searches a news source and returns ordered candidate entries.
type NewsFeed interface {
	Search(query string, maxResults int) ([]FeedEntry, error)
}

// ContentExtractor fetches an article URL and returns bounded cleaned text.
type ContentExtractor interface {
	GetArticleContent(articleURL string, maxChars int) (string, error)
}
