// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package trend computes the three temporal trend signals: a
// recency-weighted decay sum, a rate of change between adjacent time
// windows, and an evidence-hierarchy progression score. Unlike the other
// engines, all three sub-scores are computed on every run; there is no
// method selector.
package trend

import (
	"math"
	"time"

	"github.com/pdiddy/relation-scorer/internal/diag"
	"github.com/pdiddy/relation-scorer/pkg/types"
)

// Calculate returns the trend breakdown for the relationship, anchored
// at the invocation-time calendar year. An empty mention collection
// returns an all-zero breakdown. A missing trend or source_weights
// section is a *types.ConfigError.
//
// The documented fallback parameters (decay rate 0.15, window 5 years,
// 3-year recent period) are applied by the configuration provider, not
// here: a hand-built configuration runs with exactly the values it
// carries, so a zero decay rate means no decay and a zero window
// disables the rate-of-change signal.
func Calculate(mentions []types.Mention, cfg types.ScoringConfig, sink diag.Sink) (types.TrendBreakdown, error) {
	return CalculateAt(mentions, cfg, time.Now().Year(), sink)
}

// CalculateAt is Calculate anchored at an explicit current year.
func CalculateAt(mentions []types.Mention, cfg types.ScoringConfig, currentYear int, sink diag.Sink) (types.TrendBreakdown, error) {
	if len(mentions) == 0 {
		sink.Debug("trend: no mentions, returning zero breakdown")
		return types.TrendBreakdown{}, nil
	}

	if cfg.Trend.IsZero() {
		return types.TrendBreakdown{}, types.NewConfigError("trend", "section is missing")
	}
	if len(cfg.SourceWeights) == 0 {
		return types.TrendBreakdown{}, types.NewConfigError("source_weights", "section is missing")
	}

	weights := cfg.SourceWeights
	return types.TrendBreakdown{
		RecencyWeighted:     recencyWeighted(mentions, weights, cfg.Trend.RecencyWeighted.DecayRate, currentYear, sink),
		RateOfChange:        rateOfChange(mentions, weights, cfg.Trend.RateOfChange.WindowYears, currentYear, sink),
		EvidenceProgression: evidenceProgression(mentions, weights, cfg.Trend.EvidenceProgression, currentYear, sink),
	}, nil
}

// Combine collapses a breakdown into the single trend_score scalar using
// the configured combination weights.
func Combine(b types.TrendBreakdown, w types.TrendCombineWeights) float64 {
	return b.RecencyWeighted*w.RecencyWeighted +
		b.RateOfChange*w.RateOfChange +
		b.EvidenceProgression*w.EvidenceProgression
}

// recencyWeighted accumulates weight * e^(-decayRate * age) over all
// mentions with a configured source type. Future-dated mentions count as
// age zero. A mention whose decay factor is not finite is skipped.
func recencyWeighted(mentions []types.Mention, weights map[types.SourceType]float64, decayRate float64, currentYear int, sink diag.Sink) float64 {
	if decayRate < 0 {
		sink.Warn("trend: negative decay rate amplifies old mentions", "decay_rate", decayRate)
	}

	var score float64
	for _, m := range mentions {
		w, ok := weights[m.SourceType]
		if !ok {
			sink.Warn("trend: source type has no configured weight, mention skipped",
				"source_type", string(m.SourceType))
			continue
		}

		age := max(0, currentYear-m.Year)
		factor := math.Exp(-decayRate * float64(age))
		if math.IsInf(factor, 0) || math.IsNaN(factor) {
			sink.Error("trend: decay factor is not finite, mention skipped",
				"year", m.Year, "age", age, "decay_rate", decayRate)
			continue
		}
		score += w * factor
	}
	return score
}

// rateOfChange buckets mentions into two adjacent half-open year windows,
// current (cy-w, cy] and previous (cy-2w, cy-w], sums each window's
// source-type weights, and returns current minus previous. Mentions
// outside both windows are ignored; a non-positive window span disables
// the signal.
func rateOfChange(mentions []types.Mention, weights map[types.SourceType]float64, windowYears float64, currentYear int, sink diag.Sink) float64 {
	if windowYears <= 0 {
		sink.Debug("trend: rate-of-change disabled", "window_years", windowYears)
		return 0.0
	}
	window := max(1, int(math.Floor(windowYears)))

	var current, previous float64
	for _, m := range mentions {
		w, ok := weights[m.SourceType]
		if !ok {
			sink.Warn("trend: source type has no configured weight, weight zero",
				"source_type", string(m.SourceType))
			w = 0
		}

		switch {
		case m.Year > currentYear-window && m.Year <= currentYear:
			current += w
		case m.Year > currentYear-2*window && m.Year <= currentYear-window:
			previous += w
		}
	}
	return current - previous
}

// evidenceProgression rewards source types that first appear in the
// recent period at a weight above everything seen historically. Each
// qualifying type earns its configured progression points exactly once,
// no matter how often it recurs.
func evidenceProgression(mentions []types.Mention, weights map[types.SourceType]float64, cfg types.EvidenceProgressionConfig, currentYear int, sink diag.Sink) float64 {
	if cfg.RecentYearsThreshold <= 0 || len(cfg.ProgressionPoints) == 0 {
		sink.Debug("trend: evidence progression disabled",
			"recent_years_threshold", cfg.RecentYearsThreshold,
			"progression_points", len(cfg.ProgressionPoints))
		return 0.0
	}

	recentStart := currentYear - int(cfg.RecentYearsThreshold) + 1

	var maxHistorical float64
	recentTypes := make(map[types.SourceType]struct{})
	for _, m := range mentions {
		w, ok := weights[m.SourceType]
		if !ok {
			sink.Warn("trend: source type has no configured weight, mention skipped",
				"source_type", string(m.SourceType))
			continue
		}
		if m.Year < recentStart {
			maxHistorical = math.Max(maxHistorical, w)
			continue
		}
		recentTypes[m.SourceType] = struct{}{}
	}

	var score float64
	for st := range recentTypes {
		w := weights[st]
		if w <= 0 || w <= maxHistorical {
			continue
		}
		pts, ok := cfg.ProgressionPoints[st]
		if !ok {
			sink.Warn("trend: no progression points configured for source type, skipped",
				"source_type", string(st))
			continue
		}
		score += pts
	}
	return score
}
