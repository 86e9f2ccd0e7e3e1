package dataflows

import "github.com/ternarybob/arbor"

// fallbackSource tries the primary source first and falls back to the
// secondary per instrument. Longport only serves its own exchanges, so the
// Yahoo client stays behind it for the US indices and FX pairs.
type fallbackSource struct {
	primary   QuoteSource
	secondary QuoteSource
}

func (f *fallbackSource) GetQuote(symbol string) (*Quote, error) {
	q, err := f.primary.GetQuote(symbol)
	if err == nil {
		return q, nil
	}
	return f.secondary.GetQuote(symbol)
}

// NewQuoteSource builds the quote source for a run from configuration.
// MARKET_SOURCE=longport layers Longport over Yahoo; anything else (and a
// failed Longport init) is plain Yahoo.
func NewQuoteSource(cfg *Config, logger arbor.ILogger) QuoteSource {
	yahoo := NewYahooFinanceClient(cfg)

	if cfg.MarketSource == "longport" {
		lp, err := NewLongportClient(cfg)
		if err != nil {
			logger.Warn().Err(err).Msg("longport source unavailable, using yahoo only")
			return yahoo
		}
		return &fallbackSource{primary: lp, secondary: yahoo}
	}

	return yahoo
}
