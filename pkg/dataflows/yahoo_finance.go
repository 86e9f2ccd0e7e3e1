package dataflows

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/piquette/finance-go/chart"
	"github.com/piquette/finance-go/datetime"
	"github.com/shopspring/decimal"
)

// YahooFinanceClient fetches index and FX quotes from Yahoo Finance
type YahooFinanceClient struct {
	cache *CacheManager
}

// NewYahooFinanceClient creates a new Yahoo Finance client
func NewYahooFinanceClient(config *Config) *YahooFinanceClient {
	cacheDir := filepath.Join(config.DataCacheDir, "yahoo_finance")
	cache := NewCacheManager(cacheDir, 30*time.Minute, config.CacheEnabled)

	return &YahooFinanceClient{
		cache: cache,
	}
}

// GetQuote returns the latest close, day-over-day change and percent change
// for a symbol, computed from the last five daily bars.
func (yf *YahooFinanceClient) GetQuote(symbol string) (*Quote, error) {
	if symbol == "" {
		return nil, fmt.Errorf("symbol cannot be empty")
	}

	var cached Quote
	if yf.cache.Get("yahoo", "quote", symbol, &cached) {
		return &cached, nil
	}

	var result *Quote
	err := WithRetry(DefaultRetryConfig(), func() error {
		end := time.Now()
		start := end.AddDate(0, 0, -5)
		params := &chart.Params{
			Symbol:   symbol,
			Start:    datetime.New(&start),
			End:      datetime.New(&end),
			Interval: datetime.OneDay,
		}

		iter := chart.Get(params)

		var closes []decimal.Decimal
		for iter.Next() {
			closes = append(closes, iter.Bar().Close)
		}
		if err := iter.Err(); err != nil {
			return fmt.Errorf("failed to get chart data for %s: %w", symbol, err)
		}
		if len(closes) == 0 {
			return fmt.Errorf("no price history for %s", symbol)
		}

		price := closes[len(closes)-1]
		prevClose := price
		if len(closes) > 1 {
			prevClose = closes[len(closes)-2]
		}

		change := price.Sub(prevClose)
		pctChange := decimal.Zero
		if !prevClose.IsZero() {
			pctChange = change.Div(prevClose).Mul(decimal.NewFromInt(100))
		}

		result = &Quote{
			Symbol:    symbol,
			Price:     price,
			Change:    change,
			PctChange: pctChange,
			Timestamp: time.Now(),
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	yf.cache.Set("yahoo", "quote", symbol, result)

	return result, nil
}
