package recommend

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/plan4you/plan-advisor/internal/llm"
	"github.com/plan4you/plan-advisor/internal/types"
)

// Orchestrator composes the three generator calls into one recommendation.
type Orchestrator struct {
	client      llm.Client
	logger      *zap.Logger
	callTimeout time.Duration
}

// NewOrchestrator creates an Orchestrator. A zero callTimeout disables the
// per-call deadline; a nil logger defaults to a no-op logger.
func NewOrchestrator(client llm.Client, logger *zap.Logger, callTimeout time.Duration) *Orchestrator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Orchestrator{client: client, logger: logger, callTimeout: callTimeout}
}

// Result is the orchestrator's outcome. Recommendation is always populated
// and well-formed; when the generator path failed, Fallback is true and
// AnalysisErr carries the stage failure (a SchemaError keeps the raw
// generator text for diagnostics).
type Result struct {
	Recommendation   types.RankedRecommendation
	CoverageAdvisory string
	CostAdvisory     string
	Fallback         bool
	AnalysisErr      error
}

// PolicyBlocked reports whether the analysis failed on a generator safety
// block, which callers surface distinctly from parse failures.
func (r *Result) PolicyBlocked() bool {
	return r.AnalysisErr != nil && llm.IsBlocked(r.AnalysisErr)
}

// Recommend runs the coverage-advisory, cost-advisory, and
// decision-synthesis calls in sequence. The calls are sequential by design:
// each later prompt embeds the previous outputs, so no parallel fan-out is
// applicable. Any stage failure degrades to the deterministic fallback
// ranking; only an empty plan list is a hard error.
func (o *Orchestrator) Recommend(ctx context.Context, profile types.UserProfile, plans []types.Plan) (*Result, error) {
	if len(plans) == 0 {
		return nil, ErrNoPlans
	}

	plansJSON, err := serializePlans(plans)
	if err != nil {
		return nil, err
	}

	coverage, err := o.generate(ctx, BuildCoverageAdvisoryPrompt(profile, plansJSON), llm.TierAdvisory)
	if err != nil {
		return o.degrade(profile, plans, &StageError{Stage: StageCoverageAdvisory, Err: err}), nil
	}

	cost, err := o.generate(ctx, BuildCostAdvisoryPrompt(profile, plansJSON), llm.TierAdvisory)
	if err != nil {
		return o.degrade(profile, plans, &StageError{Stage: StageCostAdvisory, Err: err}), nil
	}

	raw, err := o.generateJSON(ctx, BuildSynthesisPrompt(profile, plansJSON, coverage, cost), llm.TierSynthesis)
	if err != nil {
		result := o.degrade(profile, plans, &StageError{Stage: StageSynthesis, Err: err})
		result.CoverageAdvisory = coverage
		result.CostAdvisory = cost
		return result, nil
	}

	recommendation, err := ParseSynthesis(raw)
	if err != nil {
		result := o.degrade(profile, plans, err)
		result.CoverageAdvisory = coverage
		result.CostAdvisory = cost
		return result, nil
	}

	return &Result{
		Recommendation:   recommendation,
		CoverageAdvisory: coverage,
		CostAdvisory:     cost,
	}, nil
}

func (o *Orchestrator) degrade(profile types.UserProfile, plans []types.Plan, cause error) *Result {
	fields := []zap.Field{zap.Error(cause)}
	if schemaErr, ok := AsSchemaError(cause); ok {
		fields = append(fields, zap.String("raw_output", schemaErr.RawOutput))
	}
	o.logger.Warn("generator analysis failed, using fallback recommendation", fields...)

	return &Result{
		Recommendation: Fallback(profile, plans),
		Fallback:       true,
		AnalysisErr:    cause,
	}
}

func (o *Orchestrator) generate(ctx context.Context, prompt string, tier llm.ModelTier) (string, error) {
	ctx, cancel := o.withTimeout(ctx)
	defer cancel()
	return o.client.GenerateContent(ctx, prompt, tier)
}

func (o *Orchestrator) generateJSON(ctx context.Context, prompt string, tier llm.ModelTier) (string, error) {
	ctx, cancel := o.withTimeout(ctx)
	defer cancel()
	return o.client.GenerateJSON(ctx, prompt, tier)
}

func (o *Orchestrator) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if o.callTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, o.callTimeout)
}
