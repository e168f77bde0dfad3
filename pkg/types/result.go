// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// DominantSentiment is the single categorical summary of polarity across
// all mentions. It extends Sentiment with a Mixed state for balanced
// conflicting evidence.
type DominantSentiment string

const (
	DominantPositive DominantSentiment = "Positive"
	DominantNegative DominantSentiment = "Negative"
	DominantNeutral  DominantSentiment = "Neutral"
	DominantMixed    DominantSentiment = "Mixed"
)

// Valid reports whether d is one of the four dominant-sentiment labels.
func (d DominantSentiment) Valid() bool {
	switch d {
	case DominantPositive, DominantNegative, DominantNeutral, DominantMixed:
		return true
	}
	return false
}

// SentimentScores is the detailed output of the sentiment engine.
type SentimentScores struct {
	// PositiveScore is the weighted score sum over positive mentions.
	PositiveScore float64 `json:"positive_score" yaml:"positive_score"`

	// NegativeScore is the weighted score sum over negative mentions.
	NegativeScore float64 `json:"negative_score" yaml:"negative_score"`

	// NeutralScore is the weighted score sum over neutral mentions.
	NeutralScore float64 `json:"neutral_score" yaml:"neutral_score"`

	// NetScore is PositiveScore - NegativeScore.
	NetScore float64 `json:"net_score" yaml:"net_score"`

	// DominantSentiment is the categorical polarity summary.
	DominantSentiment DominantSentiment `json:"dominant_sentiment" yaml:"dominant_sentiment"`
}

// TrendBreakdown carries the three independent trend sub-scores. All
// three are computed on every run; each has its own configuration
// section with documented fallback defaults.
type TrendBreakdown struct {
	// RecencyWeighted is the exponentially decayed weight sum favoring
	// recent mentions.
	RecencyWeighted float64 `json:"recency_weighted" yaml:"recency_weighted"`

	// RateOfChange is the current-window weight sum minus the previous
	// adjacent window's weight sum.
	RateOfChange float64 `json:"rate_of_change" yaml:"rate_of_change"`

	// EvidenceProgression is the points total awarded for recent source
	// types outranking everything seen historically.
	EvidenceProgression float64 `json:"evidence_progression" yaml:"evidence_progression"`
}

// ScoringResult is the assembled output of one scoring run. TrendScore is
// the combined scalar (the weighted sum of the TrendComponents
// sub-scores); TrendComponents preserves the breakdown for consumers
// that want the individual signals.
type ScoringResult struct {
	// EvidenceStrength is the normalized, weighted evidence score.
	EvidenceStrength float64 `json:"evidence_strength" yaml:"evidence_strength"`

	// SentimentScores is the detailed sentiment breakdown.
	SentimentScores SentimentScores `json:"sentiment_scores" yaml:"sentiment_scores"`

	// TrendScore is the combined scalar trend signal.
	TrendScore float64 `json:"trend_score" yaml:"trend_score"`

	// TrendComponents carries the three underlying trend sub-scores.
	TrendComponents TrendBreakdown `json:"trend_components" yaml:"trend_components"`
}
