// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package sentiment aggregates mention polarity into weighted
// positive/negative/neutral sums, a net score, and a categorical
// dominant-sentiment label.
package sentiment

import (
	"github.com/pdiddy/relation-scorer/internal/diag"
	"github.com/pdiddy/relation-scorer/pkg/types"
)

// Mixed-override band: when neither polarity takes more than 70% of the
// non-neutral mass, the evidence is considered balanced rather than
// dominated.
const (
	mixedLowerRatio = 0.3
	mixedUpperRatio = 0.7
)

// Calculate returns the detailed sentiment scores for the relationship.
// An empty mention collection returns all-zero scores labeled Neutral.
// A missing source_weights section is a *types.ConfigError.
//
// NetScoreDetailed is the only implemented aggregation; any other
// configured name is accepted with a warning and NetScoreDetailed is
// applied, so existing configuration files keep working.
func Calculate(mentions []types.Mention, cfg types.ScoringConfig, sink diag.Sink) (types.SentimentScores, error) {
	if len(mentions) == 0 {
		sink.Debug("sentiment: no mentions, returning neutral zero scores")
		return types.SentimentScores{DominantSentiment: types.DominantNeutral}, nil
	}

	if len(cfg.SourceWeights) == 0 {
		return types.SentimentScores{}, types.NewConfigError("source_weights", "section is missing")
	}

	method := cfg.Sentiment.AggregationMethod
	if method != "" && method != types.SentimentNetScoreDetailed {
		sink.Warn("sentiment: unimplemented aggregation method, proceeding with NetScoreDetailed",
			"configured", string(method))
	}

	var positive, negative, neutral float64
	for _, m := range mentions {
		w, ok := cfg.SourceWeights[m.SourceType]
		if !ok {
			sink.Warn("sentiment: source type has no configured weight, mention skipped",
				"source_type", string(m.SourceType))
			continue
		}
		switch m.Sentiment {
		case types.SentimentPositive:
			positive += w
		case types.SentimentNegative:
			negative += w
		case types.SentimentNeutral:
			neutral += w
		}
	}

	return types.SentimentScores{
		PositiveScore:     positive,
		NegativeScore:     negative,
		NeutralScore:      neutral,
		NetScore:          positive - negative,
		DominantSentiment: classify(positive, negative, neutral),
	}, nil
}

// classify picks the categorical polarity summary:
//
//  1. positive is the unique strict maximum -> Positive
//  2. else negative is the unique strict maximum -> Negative
//  3. else neutral at least ties both -> Neutral
//  4. override: balanced non-neutral mass outweighing neutral -> Mixed
//  5. all zero -> Neutral
func classify(positive, negative, neutral float64) types.DominantSentiment {
	dominant := types.DominantNeutral
	switch {
	case positive > negative && positive > neutral:
		dominant = types.DominantPositive
	case negative > positive && negative > neutral:
		dominant = types.DominantNegative
	}

	nonNeutral := positive + negative
	if nonNeutral > 0 {
		ratio := positive / nonNeutral
		if ratio > mixedLowerRatio && ratio < mixedUpperRatio && nonNeutral > neutral {
			dominant = types.DominantMixed
		}
	}

	if positive == 0 && negative == 0 && neutral == 0 {
		dominant = types.DominantNeutral
	}
	return dominant
}
