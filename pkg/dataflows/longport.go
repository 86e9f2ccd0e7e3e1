package dataflows

import (
	"context"
	"errors"
	"fmt"
	"time"

	lpconfig "github.com/longportapp/openapi-go/config"
	"github.com/longportapp/openapi-go/quote"
	"github.com/shopspring/decimal"
)

// LongportClient is the alternate quote source for KR/HK listed symbols,
// selected with MARKET_SOURCE=longport.
type LongportClient struct {
	quoteCtx *quote.QuoteContext
}

func NewLongportClient(cfg *Config) (*LongportClient, error) {
	if cfg.LongportAppKey == "" || cfg.LongportAppSecret == "" || cfg.LongportAccessToken == "" {
		return nil, errors.New("longport API credentials not configured")
	}

	conf, err := lpconfig.New(lpconfig.WithConfigKey(cfg.LongportAppKey, cfg.LongportAppSecret, cfg.LongportAccessToken))
	if err != nil {
		return nil, err
	}

	quoteContext, err := quote.NewFromCfg(conf)
	if err != nil {
		return nil, err
	}

	return &LongportClient{
		quoteCtx: quoteContext,
	}, nil
}

// GetQuote computes price/change/percent change from the last two daily
// candlesticks of a symbol.
func (lpc *LongportClient) GetQuote(symbol string) (*Quote, error) {
	if lpc.quoteCtx == nil {
		return nil, errors.New("quote context is nil")
	}

	ctx := context.Background()
	sticks, err := lpc.quoteCtx.Candlesticks(ctx, symbol, quote.PeriodDay, 5, quote.AdjustTypeNo)
	if err != nil {
		return nil, fmt.Errorf("longport candlesticks for %s: %w", symbol, err)
	}
	if len(sticks) == 0 || sticks[len(sticks)-1].Close == nil {
		return nil, fmt.Errorf("no candlestick data for %s", symbol)
	}

	price := *sticks[len(sticks)-1].Close
	prevClose := price
	if len(sticks) > 1 && sticks[len(sticks)-2].Close != nil {
		prevClose = *sticks[len(sticks)-2].Close
	}

	change := price.Sub(prevClose)
	pctChange := decimal.Zero
	if !prevClose.IsZero() {
		pctChange = change.Div(prevClose).Mul(decimal.NewFromInt(100))
	}

	return &Quote{
		Symbol:    symbol,
		Price:     price,
		Change:    change,
		PctChange: pctChange,
		Timestamp: time.Now(),
	}, nil
}
