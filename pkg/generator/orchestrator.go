package generator

import (
	"context"
	"time"

	"github.com/dyike/BriefingGo/config"
	"github.com/ternarybob/arbor"
)

// RetryPolicy bounds the per-model retry loop. Only rate-limit failures are
// retried; anything else advances to the next model immediately.
type RetryPolicy struct {
	MaxAttempts int
	BaseDelay   time.Duration
}

// DefaultRetryPolicy matches the service's Gemini quota window.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxAttempts: 3,
		BaseDelay:   30 * time.Second,
	}
}

// Delay returns the backoff before the retry following the given attempt.
// The delay starts at BaseDelay and grows by BaseDelay per rate-limited
// attempt.
func (p RetryPolicy) Delay(attempt int) time.Duration {
	return p.BaseDelay * time.Duration(attempt+1)
}

// Orchestrator walks the model priority list until one generation succeeds.
type Orchestrator struct {
	models []Model
	policy RetryPolicy
	logger arbor.ILogger

	sleep func(time.Duration) // swapped out in tests
}

func NewOrchestrator(models []Model, policy RetryPolicy, logger arbor.ILogger) *Orchestrator {
	if policy.MaxAttempts <= 0 {
		policy = DefaultRetryPolicy()
	}
	return &Orchestrator{
		models: models,
		policy: policy,
		logger: logger,
		sleep:  time.Sleep,
	}
}

// Generate tries each model in priority order. The result is always a
// deliverable string: the first successful generation, or the sentinel
// failure text once the list is exhausted.
func (o *Orchestrator) Generate(ctx context.Context, prompt string) string {
	for _, m := range o.models {
		o.logger.Info().Str("model", m.Name()).Msg("using model")

		for attempt := 0; attempt < o.policy.MaxAttempts; attempt++ {
			text, err := m.Generate(ctx, prompt)
			if err == nil {
				return text
			}

			if IsRateLimitError(err) {
				delay := o.policy.Delay(attempt)
				o.logger.Warn().
					Str("model", m.Name()).
					Int("attempt", attempt+1).
					Str("delay", delay.String()).
					Msg("rate limit hit, backing off")
				o.sleep(delay)
				continue
			}

			o.logger.Error().Err(err).Str("model", m.Name()).Msg("generation failed")
			break
		}

		o.logger.Warn().Str("model", m.Name()).Msg("model exhausted, attempting fallback")
	}

	return SentinelFailureText
}

// BuildModels assembles the priority list from configuration: the
// configured Gemini models in order, then DeepSeek as a last resort when
// its key is present. Returns an error only when no backend can be built.
func BuildModels(ctx context.Context, cfg *config.Config, logger arbor.ILogger) ([]Model, error) {
	var models []Model

	if cfg.GeminiAPIKey != "" {
		client, err := NewGeminiClient(ctx, cfg.GeminiAPIKey)
		if err != nil {
			logger.Warn().Err(err).Msg("gemini client init failed")
		} else {
			for _, name := range cfg.GeminiModels {
				models = append(models, client.Model(name))
			}
		}
	}

	if cfg.DeepSeekAPIKey != "" {
		ds, err := NewDeepSeekModel(ctx, cfg.DeepSeekAPIKey)
		if err != nil {
			logger.Warn().Err(err).Msg("deepseek fallback init failed")
		} else {
			models = append(models, ds)
		}
	}

	if len(models) == 0 {
		return nil, ErrNoModels
	}

	return models, nil
}
