package dataflows

import (
	"time"

	"github.com/ternarybob/arbor"
)

// BuildSnapshot fetches every instrument in order from the quote source.
// Per-instrument failures mark the entry unavailable; the snapshot always
// lists the full watchlist.
func BuildSnapshot(source QuoteSource, instruments []Instrument, logger arbor.ILogger) *MarketSnapshot {
	snapshot := &MarketSnapshot{
		Entries:   make([]SnapshotEntry, 0, len(instruments)),
		FetchedAt: time.Now(),
	}

	for _, inst := range instruments {
		quote, err := source.GetQuote(inst.Symbol)
		if err != nil {
			logger.Warn().Err(err).Str("instrument", inst.Label).Msg("market fetch failed, marking unavailable")
			snapshot.Entries = append(snapshot.Entries, SnapshotEntry{Instrument: inst})
			continue
		}
		snapshot.Entries = append(snapshot.Entries, SnapshotEntry{Instrument: inst, Quote: quote})
	}

	return snapshot
}
