package monitoring

import (
	stderrors "errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/ducminhle1904/crypto-signal-engine/internal/errors"
	"github.com/ducminhle1904/crypto-signal-engine/internal/logger"
	"github.com/ducminhle1904/crypto-signal-engine/internal/strategy"
	"github.com/ducminhle1904/crypto-signal-engine/pkg/config"
	"github.com/ducminhle1904/crypto-signal-engine/pkg/types"
)

// InstrumentedResolver wraps the pure resolver with metrics, structured
// logging, the optional decision journal, and the optional health
// checker. The decision itself is untouched.
type InstrumentedResolver struct {
	resolver *strategy.Resolver
	log      zerolog.Logger
	journal  *logger.DecisionJournal
	health   *HealthChecker
}

// NewInstrumentedResolver creates an instrumented resolver. journal and
// health may be nil.
func NewInstrumentedResolver(log zerolog.Logger, journal *logger.DecisionJournal, health *HealthChecker) *InstrumentedResolver {
	return &InstrumentedResolver{
		resolver: strategy.NewResolver(),
		log:      log,
		journal:  journal,
		health:   health,
	}
}

// Resolve runs the pipeline and returns only the decision.
func (ir *InstrumentedResolver) Resolve(snap *types.IndicatorSnapshot, policy *config.ConfluencePolicy) (*types.SignalDecision, error) {
	res, err := ir.ResolveWithEvidence(snap, policy)
	if err != nil {
		return nil, err
	}
	return &res.Decision, nil
}

// ResolveWithEvidence runs the pipeline and reports everything it saw.
// It satisfies strategy.EvidenceResolver so batches can be metered.
func (ir *InstrumentedResolver) ResolveWithEvidence(snap *types.IndicatorSnapshot, policy *config.ConfluencePolicy) (*strategy.Resolution, error) {
	start := time.Now()

	res, err := ir.resolver.ResolveWithEvidence(snap, policy)
	if err != nil {
		RecordError(errorLabel(err))
		ir.log.Error().Err(err).Str("symbol", symbolOf(snap)).Msg("signal resolution failed")
		if ir.health != nil {
			ir.health.RecordHealthError(err.Error())
		}
		return nil, err
	}

	elapsed := time.Since(start)
	decision := &res.Decision

	mode := "traditional"
	if decision.Confluence != nil {
		mode = "confluence"
	}
	direction := decision.Direction().String()

	ObserveResolveDuration(snap.Symbol, elapsed.Seconds())
	RecordDecision(snap.Symbol, mode, direction)
	UpdatePrice(snap.Symbol, snap.Price())
	for _, verdict := range res.Verdicts {
		RecordVerdict(verdict.EvaluatorName, verdict.Direction.String())
	}
	for _, veto := range res.Vetoes {
		RecordVeto(veto.Filter, veto.Direction.String())
	}
	for _, name := range res.Faults {
		RecordEvaluatorFault(name)
	}
	if decision.Confluence != nil {
		UpdateConfluence(snap.Symbol, decision.Confluence.Count)
	}

	ir.log.Info().
		Str("symbol", snap.Symbol).
		Str("mode", mode).
		Bool("has_signal", decision.HasSignal).
		Str("direction", direction).
		Str("signal_type", decision.SignalType).
		Int("vetoes", len(res.Vetoes)).
		Dur("elapsed", elapsed).
		Msg("signal resolved")

	if ir.journal != nil {
		ir.journal.LogDecision(snap, decision)
	}
	if ir.health != nil {
		ir.health.RecordDecision(snap.Price())
	}

	return res, nil
}

func errorLabel(err error) string {
	var engineErr *errors.EngineError
	if stderrors.As(err, &engineErr) {
		return string(engineErr.Category)
	}
	return "UNKNOWN"
}

func symbolOf(snap *types.IndicatorSnapshot) string {
	if snap == nil {
		return ""
	}
	return snap.Symbol
}
