package llm

import (
	"context"
	"sync"
	"time"
)

// UsageRecord captures one Generate call for the session-scoped usage view.
type UsageRecord struct {
	At           time.Time
	Purpose      string
	Model        string
	InputTokens  int
	OutputTokens int
	Latency      time.Duration
	Success      bool
	ErrorMessage string
}

// UsageSummary aggregates all recorded calls.
type UsageSummary struct {
	Requests     int
	Failures     int
	InputTokens  int
	OutputTokens int

	// CostUSD is the estimated spend across records whose model has a known
	// price. CostKnown is false when at least one record had no price entry.
	CostUSD   float64
	CostKnown bool
}

// UsageRecorder accumulates per-request usage in memory. Records live for
// the process lifetime only; nothing is persisted.
type UsageRecorder struct {
	mu      sync.Mutex
	records []UsageRecord
}

// NewUsageRecorder creates an empty recorder.
func NewUsageRecorder() *UsageRecorder {
	return &UsageRecorder{}
}

// Record appends one usage record.
func (u *UsageRecorder) Record(rec UsageRecord) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.records = append(u.records, rec)
}

// Records returns a copy of all records in arrival order.
func (u *UsageRecorder) Records() []UsageRecord {
	u.mu.Lock()
	defer u.mu.Unlock()
	out := make([]UsageRecord, len(u.records))
	copy(out, u.records)
	return out
}

// Summary aggregates the recorded calls, pricing each against the embedded
// cost table.
func (u *UsageRecorder) Summary() UsageSummary {
	u.mu.Lock()
	defer u.mu.Unlock()

	s := UsageSummary{CostKnown: true}
	for _, rec := range u.records {
		s.Requests++
		if !rec.Success {
			s.Failures++
		}
		s.InputTokens += rec.InputTokens
		s.OutputTokens += rec.OutputTokens

		cost := LookupCost(rec.Model)
		if cost == nil {
			s.CostKnown = false
			continue
		}
		s.CostUSD += cost.Cost(rec.InputTokens, rec.OutputTokens)
	}
	return s
}

// RecordingProvider is a decorator that records every request's usage.
type RecordingProvider struct {
	inner    Provider
	recorder *UsageRecorder
}

// WithUsageRecording wraps a Provider so that every call lands in the
// recorder. A nil recorder returns the provider unwrapped.
func WithUsageRecording(p Provider, rec *UsageRecorder) Provider {
	if rec == nil {
		return p
	}
	return &RecordingProvider{inner: p, recorder: rec}
}

func (r *RecordingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()

	resp, err := r.inner.Generate(ctx, req)

	rec := UsageRecord{
		At:      start,
		Purpose: PurposeFrom(ctx),
		Model:   r.inner.ModelID(),
		Latency: time.Since(start),
		Success: err == nil,
	}
	if resp != nil {
		rec.Model = resp.Model
		rec.InputTokens = resp.Usage.InputTokens
		rec.OutputTokens = resp.Usage.OutputTokens
	}
	if err != nil {
		rec.ErrorMessage = err.Error()
	}
	r.recorder.Record(rec)

	return resp, err
}

func (r *RecordingProvider) ModelID() string {
	return r.inner.ModelID()
}
