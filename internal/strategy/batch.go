package strategy

import (
	"context"
	"time"

	"github.com/ducminhle1904/crypto-signal-engine/internal/errors"
	"github.com/ducminhle1904/crypto-signal-engine/pkg/config"
	"github.com/ducminhle1904/crypto-signal-engine/pkg/types"
)

// ModeConfluence and ModeTraditional name the two aggregation modes in
// batch results and reports.
const (
	ModeConfluence  = "confluence"
	ModeTraditional = "traditional"
)

// BatchRecord pairs one evaluated snapshot with its resolution.
type BatchRecord struct {
	Snapshot   *types.IndicatorSnapshot
	Resolution *Resolution
}

// BatchFailure records a snapshot the batch could not evaluate.
type BatchFailure struct {
	Index  int
	Symbol string
	Err    error
}

// BatchResults aggregates resolutions across a snapshot batch for
// reporting.
type BatchResults struct {
	Mode    string
	Records []BatchRecord
	Failed  []BatchFailure

	LongSignals     int
	ShortSignals    int
	NoSignals       int
	VetoedSignals   int
	EvaluatorFaults int

	StartedAt time.Time
	Elapsed   time.Duration
}

// NewBatchResults creates an empty result set for the policy's mode.
func NewBatchResults(policy *config.ConfluencePolicy) *BatchResults {
	mode := ModeTraditional
	if policy != nil && policy.EnableConfluenceMode {
		mode = ModeConfluence
	}
	return &BatchResults{
		Mode:      mode,
		StartedAt: time.Now(),
	}
}

// Add appends a resolution and updates the tallies.
func (b *BatchResults) Add(snap *types.IndicatorSnapshot, res *Resolution) {
	b.Records = append(b.Records, BatchRecord{Snapshot: snap, Resolution: res})

	switch res.Decision.Direction() {
	case types.DirectionLong:
		b.LongSignals++
	case types.DirectionShort:
		b.ShortSignals++
	default:
		b.NoSignals++
	}

	if len(res.Vetoes) > 0 {
		b.VetoedSignals++
	}
	b.EvaluatorFaults += len(res.Faults)
}

// AddFailure records a snapshot that could not be evaluated.
func (b *BatchResults) AddFailure(index int, symbol string, err error) {
	b.Failed = append(b.Failed, BatchFailure{Index: index, Symbol: symbol, Err: err})
}

// Total returns the number of evaluated snapshots.
func (b *BatchResults) Total() int {
	return len(b.Records)
}

// SignalCount returns the number of directional decisions.
func (b *BatchResults) SignalCount() int {
	return b.LongSignals + b.ShortSignals
}

// SignalRate returns the share of evaluated snapshots that produced a
// directional decision, in percent.
func (b *BatchResults) SignalRate() float64 {
	if len(b.Records) == 0 {
		return 0
	}
	return float64(b.SignalCount()) / float64(len(b.Records)) * 100
}

// EvidenceResolver is the resolver surface a batch needs. Satisfied by
// Resolver and by wrappers that add logging or metrics around it.
type EvidenceResolver interface {
	ResolveWithEvidence(snap *types.IndicatorSnapshot, policy *config.ConfluencePolicy) (*Resolution, error)
}

// RunBatch resolves every snapshot in order under one policy. A policy
// problem aborts the whole batch since it would fail every row the same
// way; a row-level problem is recorded as a failure and the batch moves
// on. The context is checked between rows so long batches can be
// cancelled.
func RunBatch(ctx context.Context, resolver EvidenceResolver, policy *config.ConfluencePolicy, snaps []*types.IndicatorSnapshot) (*BatchResults, error) {
	results := NewBatchResults(policy)

	for i, snap := range snaps {
		select {
		case <-ctx.Done():
			return results, ctx.Err()
		default:
		}

		res, err := resolver.ResolveWithEvidence(snap, policy)
		if err != nil {
			if errors.IsConfigurationError(err) {
				return nil, err
			}
			symbol := ""
			if snap != nil {
				symbol = snap.Symbol
			}
			results.AddFailure(i, symbol, err)
			continue
		}

		results.Add(snap, res)
	}

	results.Elapsed = time.Since(results.StartedAt)
	return results, nil
}
