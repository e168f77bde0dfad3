// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package evidence computes the evidence strength score: a raw weighted
// mention frequency followed by a normalization that offsets the bias
// that prominent entities accumulate more co-mentions regardless of true
// relationship strength.
package evidence

import (
	"math"

	"github.com/pdiddy/relation-scorer/internal/diag"
	"github.com/pdiddy/relation-scorer/pkg/types"
)

// pmiScale stands in for the corpus size N in the PMI formula
// ln((count(A,B) * N) / (count(A) * count(B))). The prominence inputs are
// proportional to counts, not probabilities, so the scale keeps the
// ratio's magnitude in a useful range.
const pmiScale = 1e6

type aggregator func(mentions []types.Mention, weights map[types.SourceType]float64, sink diag.Sink) float64

type normalizer func(raw, promA, promB float64, sink diag.Sink) float64

var aggregators = map[types.AggregationMethod]aggregator{
	types.AggregationSimpleSum:   simpleSum,
	types.AggregationLogarithmic: logarithmic,
}

var normalizers = map[types.NormalizationMethod]normalizer{
	types.NormalizationNone:              passthrough,
	types.NormalizationRelativeFrequency: relativeFrequency,
	types.NormalizationPMI:               pmiLike,
}

// Calculate returns the evidence strength score for the relationship.
// An empty mention collection scores 0. A missing source_weights section,
// a missing method selector, or an unrecognized method name is a
// *types.ConfigError.
func Calculate(mentions []types.Mention, promA, promB float64, cfg types.ScoringConfig, sink diag.Sink) (float64, error) {
	if len(mentions) == 0 {
		sink.Debug("evidence: no mentions, returning zero")
		return 0.0, nil
	}

	if len(cfg.SourceWeights) == 0 {
		return 0, types.NewConfigError("source_weights", "section is missing")
	}
	aggName := cfg.EvidenceStrength.FrequencyAggregation
	normName := cfg.EvidenceStrength.NormalizationMethod
	if aggName == "" {
		return 0, types.NewConfigError("evidence_strength.frequency_aggregation", "key is missing")
	}
	if normName == "" {
		return 0, types.NewConfigError("evidence_strength.normalization_method", "key is missing")
	}

	aggregate, ok := aggregators[aggName]
	if !ok {
		return 0, types.NewConfigError("evidence_strength.frequency_aggregation", "unrecognized method %q", aggName)
	}
	normalize, ok := normalizers[normName]
	if !ok {
		return 0, types.NewConfigError("evidence_strength.normalization_method", "unrecognized method %q", normName)
	}

	raw := aggregate(mentions, cfg.SourceWeights, sink)

	// Normalization needs positive prominence on both sides; degrade to
	// the raw score rather than fail when the metadata cannot support it.
	if normName != types.NormalizationNone && (promA <= 0 || promB <= 0) {
		sink.Warn("evidence: non-positive entity prominence, skipping normalization",
			"method", string(normName), "prominence_a", promA, "prominence_b", promB)
		normalize = passthrough
	}

	return normalize(raw, promA, promB, sink), nil
}

// simpleSum adds each mention's source-type weight. Mentions with an
// unconfigured source type contribute nothing.
func simpleSum(mentions []types.Mention, weights map[types.SourceType]float64, sink diag.Sink) float64 {
	var raw float64
	for _, m := range mentions {
		w, ok := weights[m.SourceType]
		if !ok {
			sink.Warn("evidence: source type has no configured weight, mention skipped",
				"source_type", string(m.SourceType))
			continue
		}
		raw += w
	}
	return raw
}

// logarithmic groups mentions by source type and accumulates
// weight * ln(1 + count), so repeated mentions from the same source
// category have diminishing marginal value.
func logarithmic(mentions []types.Mention, weights map[types.SourceType]float64, sink diag.Sink) float64 {
	counts := make(map[types.SourceType]int)
	for _, m := range mentions {
		if _, ok := weights[m.SourceType]; !ok {
			sink.Warn("evidence: source type has no configured weight, mention skipped",
				"source_type", string(m.SourceType))
			continue
		}
		counts[m.SourceType]++
	}

	var raw float64
	for st, n := range counts {
		raw += weights[st] * math.Log1p(float64(n))
	}
	return raw
}

func passthrough(raw, _, _ float64, _ diag.Sink) float64 {
	return raw
}

// relativeFrequency divides the raw score by the mean prominence of the
// two entities. A zero mean falls back to the raw score.
func relativeFrequency(raw, promA, promB float64, sink diag.Sink) float64 {
	mean := (promA + promB) / 2.0
	if mean == 0 {
		sink.Warn("evidence: zero mean prominence, falling back to raw score")
		return raw
	}
	return raw / mean
}

// pmiLike computes max(0, ln((raw * scale) / (promA * promB))). PMI is
// undefined for non-positive inputs, so those score 0 instead of
// propagating NaN or -Inf.
func pmiLike(raw, promA, promB float64, _ diag.Sink) float64 {
	if raw <= 0 || promA <= 0 || promB <= 0 {
		return 0.0
	}
	return math.Max(0.0, math.Log((raw*pmiScale)/(promA*promB)))
}
