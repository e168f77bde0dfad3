// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package scorer orchestrates one scoring run: it validates the input
// bundle, resolves the configuration through the injected provider, runs
// the evidence, sentiment, and trend engines, and assembles (and
// re-validates) the combined result.
package scorer

import (
	"errors"
	"fmt"
	"time"

	"github.com/pdiddy/relation-scorer/internal/config"
	"github.com/pdiddy/relation-scorer/internal/diag"
	"github.com/pdiddy/relation-scorer/internal/evidence"
	"github.com/pdiddy/relation-scorer/internal/sentiment"
	"github.com/pdiddy/relation-scorer/internal/trend"
	"github.com/pdiddy/relation-scorer/internal/validate"
	"github.com/pdiddy/relation-scorer/pkg/types"
)

// Scorer holds one validated input bundle plus the resolved
// configuration. It is read-only for its lifetime; each scoring
// invocation is independent of every other.
type Scorer struct {
	mentions []types.Mention
	entityA  types.EntityMetadata
	entityB  types.EntityMetadata

	cfg  types.ScoringConfig
	sink diag.Sink
	now  func() time.Time
}

// Option customizes a Scorer at construction time.
type Option func(*options)

type options struct {
	provider config.Provider
	sink     diag.Sink
	now      func() time.Time
}

// WithProvider swaps the configuration provider. The default is the
// process-wide file provider.
func WithProvider(p config.Provider) Option {
	return func(o *options) { o.provider = p }
}

// WithConfig uses a fixed configuration instead of a provider.
func WithConfig(cfg types.ScoringConfig) Option {
	return func(o *options) { o.provider = config.Static(cfg) }
}

// WithSink swaps the diagnostic sink. The default logs through slog.
func WithSink(s diag.Sink) Option {
	return func(o *options) { o.sink = s }
}

// WithNow pins the clock the trend engine anchors its current year to.
func WithNow(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

// New validates the input bundle, resolves the configuration, and
// returns a ready Scorer. Contract breaches surface as a wrapped
// *types.ValidationError; configuration resolution failures as a wrapped
// provider error.
func New(input types.ScoringInput, opts ...Option) (*Scorer, error) {
	o := &options{
		provider: config.Default(),
		sink:     diag.Default(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(o)
	}

	o.sink.Info("initializing scorer",
		"entity_a", input.EntityAMetadata.ID,
		"entity_b", input.EntityBMetadata.ID,
		"mentions", len(input.RelationshipMentions))

	if err := validate.CheckInput(input); err != nil {
		o.sink.Error("input validation failed", "error", err)
		return nil, fmt.Errorf("initializing scorer: %w", err)
	}

	cfg, err := o.provider.Scoring()
	if err != nil {
		o.sink.Error("configuration resolution failed", "error", err)
		return nil, fmt.Errorf("initializing scorer: %w", err)
	}

	return &Scorer{
		mentions: input.RelationshipMentions,
		entityA:  input.EntityAMetadata,
		entityB:  input.EntityBMetadata,
		cfg:      cfg,
		sink:     o.sink,
		now:      o.now,
	}, nil
}

// EvidenceStrength computes the normalized evidence strength score.
func (s *Scorer) EvidenceStrength() (float64, error) {
	score, err := evidence.Calculate(s.mentions, s.entityA.OverallProminence, s.entityB.OverallProminence, s.cfg, s.sink)
	if err != nil {
		return 0, stageError("evidence", err)
	}
	s.sink.Debug("evidence strength calculated", "score", score)
	return score, nil
}

// SentimentScores computes the detailed sentiment breakdown.
func (s *Scorer) SentimentScores() (types.SentimentScores, error) {
	scores, err := sentiment.Calculate(s.mentions, s.cfg, s.sink)
	if err != nil {
		return types.SentimentScores{}, stageError("sentiment", err)
	}
	s.sink.Debug("sentiment scores calculated",
		"net", scores.NetScore, "dominant", string(scores.DominantSentiment))
	return scores, nil
}

// TrendScore computes the three trend sub-scores and the combined
// scalar.
func (s *Scorer) TrendScore() (float64, types.TrendBreakdown, error) {
	breakdown, err := trend.CalculateAt(s.mentions, s.cfg, s.now().Year(), s.sink)
	if err != nil {
		return 0, types.TrendBreakdown{}, stageError("trend", err)
	}
	combined := trend.Combine(breakdown, s.cfg.Trend.CombineWeights)
	s.sink.Debug("trend score calculated", "combined", combined)
	return combined, breakdown, nil
}

// AllScores runs all three engines, assembles the combined result, and
// re-validates it against the output contract before returning.
func (s *Scorer) AllScores() (types.ScoringResult, error) {
	evidenceScore, err := s.EvidenceStrength()
	if err != nil {
		return types.ScoringResult{}, err
	}
	sentimentScores, err := s.SentimentScores()
	if err != nil {
		return types.ScoringResult{}, err
	}
	trendScore, breakdown, err := s.TrendScore()
	if err != nil {
		return types.ScoringResult{}, err
	}

	result := types.ScoringResult{
		EvidenceStrength: evidenceScore,
		SentimentScores:  sentimentScores,
		TrendScore:       trendScore,
		TrendComponents:  breakdown,
	}

	if err := validate.CheckResult(result); err != nil {
		s.sink.Error("output validation failed", "error", err)
		return types.ScoringResult{}, &types.CalcError{Stage: "assembly", Err: err}
	}

	s.sink.Info("all scores calculated",
		"entity_a", s.entityA.ID, "entity_b", s.entityB.ID,
		"evidence_strength", result.EvidenceStrength,
		"trend_score", result.TrendScore,
		"dominant_sentiment", string(result.SentimentScores.DominantSentiment))
	return result, nil
}

// stageError propagates configuration errors unwrapped and wraps
// everything else in a CalcError for the named stage.
func stageError(stage string, err error) error {
	var cfgErr *types.ConfigError
	if errors.As(err, &cfgErr) {
		return err
	}
	return &types.CalcError{Stage: stage, Err: err}
}
