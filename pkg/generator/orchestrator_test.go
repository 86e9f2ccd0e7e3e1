package generator

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ternarybob/arbor"
)

type scriptedModel struct {
	name    string
	results []error // one per attempt; nil means success
	text    string
	calls   int
}

func (m *scriptedModel) Name() string { return m.name }

func (m *scriptedModel) Generate(ctx context.Context, prompt string) (string, error) {
	idx := m.calls
	m.calls++
	if idx >= len(m.results) {
		idx = len(m.results) - 1
	}
	if err := m.results[idx]; err != nil {
		return "", err
	}
	return m.text, nil
}

var errRateLimit = errors.New("Error 429: quota exceeded, Status: RESOURCE_EXHAUSTED")

func newTestOrchestrator(models ...Model) (*Orchestrator, *[]time.Duration) {
	o := NewOrchestrator(models, RetryPolicy{MaxAttempts: 3, BaseDelay: 30 * time.Second}, arbor.NewLogger())
	var slept []time.Duration
	o.sleep = func(d time.Duration) { slept = append(slept, d) }
	return o, &slept
}

func TestRateLimitedModelFallsBack(t *testing.T) {
	a := &scriptedModel{name: "A", results: []error{errRateLimit, errRateLimit, errRateLimit}}
	b := &scriptedModel{name: "B", results: []error{nil}, text: "briefing from B"}
	c := &scriptedModel{name: "C", results: []error{nil}, text: "briefing from C"}

	o, slept := newTestOrchestrator(a, b, c)
	got := o.Generate(context.Background(), "prompt")

	if got != "briefing from B" {
		t.Fatalf("got %q, want B's output", got)
	}
	if a.calls != 3 {
		t.Errorf("A attempted %d times, want 3", a.calls)
	}
	if c.calls != 0 {
		t.Error("C must never be invoked once B succeeds")
	}
	// Backoff escalates linearly from the base delay.
	want := []time.Duration{30 * time.Second, 60 * time.Second, 90 * time.Second}
	if len(*slept) != len(want) {
		t.Fatalf("slept %d times, want %d", len(*slept), len(want))
	}
	for i := range want {
		if (*slept)[i] != want[i] {
			t.Errorf("backoff %d = %v, want %v", i, (*slept)[i], want[i])
		}
	}
}

func TestNonRateLimitErrorAbandonsModelImmediately(t *testing.T) {
	a := &scriptedModel{name: "A", results: []error{errors.New("invalid request")}}
	b := &scriptedModel{name: "B", results: []error{nil}, text: "ok"}

	o, slept := newTestOrchestrator(a, b)
	got := o.Generate(context.Background(), "prompt")

	if got != "ok" {
		t.Fatalf("got %q", got)
	}
	if a.calls != 1 {
		t.Errorf("A attempted %d times, want 1 (no retries on hard failure)", a.calls)
	}
	if len(*slept) != 0 {
		t.Errorf("no backoff expected, slept %v", *slept)
	}
}

func TestAllModelsExhaustedReturnsSentinel(t *testing.T) {
	a := &scriptedModel{name: "A", results: []error{errors.New("boom")}}
	b := &scriptedModel{name: "B", results: []error{errRateLimit, errRateLimit, errRateLimit}}

	o, _ := newTestOrchestrator(a, b)
	got := o.Generate(context.Background(), "prompt")

	if got != SentinelFailureText {
		t.Fatalf("got %q, want sentinel failure text", got)
	}
}

func TestIsRateLimitError(t *testing.T) {
	cases := []struct {
		err  error
		want bool
	}{
		{nil, false},
		{errRateLimit, true},
		{errors.New("RESOURCE_EXHAUSTED"), true},
		{errors.New("per-day quota reached"), true},
		{errors.New("connection reset"), false},
	}
	for _, tc := range cases {
		if got := IsRateLimitError(tc.err); got != tc.want {
			t.Errorf("IsRateLimitError(%v) = %v, want %v", tc.err, got, tc.want)
		}
	}
}

func TestRetryPolicyDelay(t *testing.T) {
	p := RetryPolicy{MaxAttempts: 3, BaseDelay: 10 * time.Second}
	if p.Delay(0) != 10*time.Second || p.Delay(2) != 30*time.Second {
		t.Errorf("unexpected delays: %v %v", p.Delay(0), p.Delay(2))
	}
}
