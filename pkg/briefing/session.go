// Package briefing runs one end-to-end briefing: calendar resolution, news
// aggregation, prompt composition, generation and delivery.
package briefing

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dyike/BriefingGo/config"
	"github.com/dyike/BriefingGo/internal/logging"
	"github.com/dyike/BriefingGo/pkg/aggregator"
	"github.com/dyike/BriefingGo/pkg/calendar"
	"github.com/dyike/BriefingGo/pkg/dataflows"
	"github.com/dyike/BriefingGo/pkg/delivery"
	"github.com/dyike/BriefingGo/pkg/generator"
	"github.com/dyike/BriefingGo/pkg/newsquery"
	"github.com/dyike/BriefingGo/pkg/prompt"
	"github.com/ternarybob/arbor"
)

// Session is one briefing run. Everything it builds is discarded at the end
// of the run; only the log file and the delivered message remain.
type Session struct {
	config       *config.Config
	modeOverride calendar.Mode
	date         string
	dryRun       bool
}

// Result is the terminal outcome of a run. Briefing always carries text,
// possibly the generation failure sentinel.
type Result struct {
	Calendar        calendar.Context
	Queries         []string
	Snapshot        *dataflows.MarketSnapshot
	Articles        []aggregator.Article
	Briefing        string
	Delivery        delivery.Outcome
	DeliverySkipped bool
}

// NewSession creates a briefing session. mode and date may be empty to use
// the current date's defaults; dryRun suppresses delivery.
func NewSession(cfg *config.Config, mode calendar.Mode, date string, dryRun bool) *Session {
	return &Session{
		config:       cfg,
		modeOverride: mode,
		date:         date,
		dryRun:       dryRun,
	}
}

// Execute runs the pipeline to a terminal outcome. Stage failures degrade
// to explicit text or unavailable markers; only setup problems (bad date,
// missing directories) return an error.
func (s *Session) Execute(ctx context.Context) (*Result, error) {
	logger := logging.NewRunLogger(s.config)

	ref := time.Now()
	if s.date != "" {
		parsed, err := time.ParseInLocation("2006-01-02", s.date, time.Local)
		if err != nil {
			return nil, fmt.Errorf("invalid date format, use YYYY-MM-DD: %w", err)
		}
		ref = parsed
	}

	calCtx := calendar.Resolve(ref, s.modeOverride)
	event := logger.Info().
		Str("date", ref.Format("2006-01-02")).
		Str("mode", string(calCtx.Mode))
	if calCtx.KRHoliday {
		event = event.Str("kr_holiday", calCtx.KRHolidayName)
	}
	if calCtx.USHolidayPrevClose {
		event = event.Str("us_holiday_prev_close", calCtx.USHolidayName)
	}
	event.Msg("--- Daily Economic Briefing Service ---")

	logger.Info().Msg("1. Fetching market data...")
	source := dataflows.NewQuoteSource(s.config, logger)
	snapshot := dataflows.BuildSnapshot(source, dataflows.DefaultInstruments, logger)

	logger.Info().Msg("2. Fetching and scraping news...")
	queries := newsquery.Select(calCtx)
	newsClient := dataflows.NewGoogleNewsClient(s.config)
	agg := aggregator.New(newsClient, newsClient, s.config.ArticlesPerQuery, s.config.ArticleMaxChars, logger)
	news := agg.Collect(queries)

	logger.Info().Msg("3. Generating briefing...")
	spec := prompt.Compose(calCtx, snapshot, news.Blob)
	text := s.generate(ctx, spec, logger)

	// The briefing goes to the run log in full, delivered or not.
	logger.Info().Msg(strings.Repeat("=", 50))
	logger.Info().Msg(text)
	logger.Info().Msg(strings.Repeat("=", 50))

	result := &Result{
		Calendar: calCtx,
		Queries:  queries,
		Snapshot: snapshot,
		Articles: news.Articles,
		Briefing: text,
	}

	if s.dryRun {
		logger.Info().Msg("4. Sending to telegram... [SKIPPED] (dry run)")
		result.DeliverySkipped = true
		return result, nil
	}

	logger.Info().Msg("4. Sending to telegram...")
	result.Delivery = s.deliver(text, logger)
	return result, nil
}

func (s *Session) generate(ctx context.Context, spec prompt.Spec, logger arbor.ILogger) string {
	models, err := generator.BuildModels(ctx, s.config, logger)
	if err != nil {
		logger.Error().Err(err).Msg("no generation backend available")
		return generator.MissingKeyText
	}

	policy := generator.RetryPolicy{
		MaxAttempts: s.config.MaxGenAttempts,
		BaseDelay:   time.Duration(s.config.BackoffSeconds) * time.Second,
	}

	return generator.NewOrchestrator(models, policy, logger).Generate(ctx, spec.Text())
}

func (s *Session) deliver(text string, logger arbor.ILogger) delivery.Outcome {
	notifier, err := delivery.NewNotifier(s.config.TelegramBotToken, s.config.TelegramChannelID, logger)
	if err != nil {
		// Delivery failure is terminal for the send only; the briefing is
		// already produced and logged.
		logger.Error().Err(err).Msg("skipping telegram send")
		return delivery.Outcome{}
	}

	return notifier.SendBriefing(text)
}
