// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// AggregationMethod selects how raw weighted mention frequency is
// accumulated by the evidence engine.
type AggregationMethod string

const (
	// AggregationSimpleSum sums each mention's source-type weight.
	AggregationSimpleSum AggregationMethod = "SimpleSum"

	// AggregationLogarithmic groups mentions by source type and
	// accumulates weight * ln(1 + count), giving repeated mentions from
	// the same source category diminishing marginal value.
	AggregationLogarithmic AggregationMethod = "Logarithmic"
)

// NormalizationMethod selects how the raw evidence score is adjusted for
// entity prominence bias.
type NormalizationMethod string

const (
	// NormalizationNone passes the raw score through unchanged.
	NormalizationNone NormalizationMethod = "None"

	// NormalizationRelativeFrequency divides the raw score by the mean of
	// the two entities' prominence scores.
	NormalizationRelativeFrequency NormalizationMethod = "RelativeFrequency"

	// NormalizationPMI computes a pointwise-mutual-information-like
	// score, clipped at zero.
	NormalizationPMI NormalizationMethod = "PMI-like"
)

// SentimentAggregation selects the sentiment aggregation formula.
// NetScoreDetailed is the only implemented method; other configured
// names are accepted with a warning for configuration compatibility.
type SentimentAggregation string

// SentimentNetScoreDetailed is the detailed net-score aggregation:
// weighted positive/negative/neutral sums, a net score, and a
// categorical dominant-sentiment label.
const SentimentNetScoreDetailed SentimentAggregation = "NetScoreDetailed"

// EvidenceStrengthConfig holds the evidence engine's method selectors.
type EvidenceStrengthConfig struct {
	// FrequencyAggregation selects the raw frequency formula.
	FrequencyAggregation AggregationMethod `json:"frequency_aggregation" yaml:"frequency_aggregation" mapstructure:"frequency_aggregation"`

	// NormalizationMethod selects the prominence-bias adjustment.
	NormalizationMethod NormalizationMethod `json:"normalization_method" yaml:"normalization_method" mapstructure:"normalization_method"`
}

// SentimentConfig holds the sentiment engine's settings.
type SentimentConfig struct {
	// AggregationMethod names the sentiment aggregation formula.
	// Defaults to NetScoreDetailed when empty.
	AggregationMethod SentimentAggregation `json:"aggregation_method" yaml:"aggregation_method" mapstructure:"aggregation_method"`
}

// RecencyWeightedConfig parameterizes the exponential-decay trend signal.
type RecencyWeightedConfig struct {
	// DecayRate is the per-year exponential decay constant (default 0.15).
	// A rate of 0 reduces the signal to an undecayed weight sum.
	DecayRate float64 `json:"decay_rate" yaml:"decay_rate" mapstructure:"decay_rate"`
}

// RateOfChangeConfig parameterizes the windowed rate-of-change signal.
type RateOfChangeConfig struct {
	// WindowYears is the comparison window length in years (default 5.0).
	// The effective window is max(1, floor(WindowYears)); a value <= 0
	// disables the signal.
	WindowYears float64 `json:"window_years" yaml:"window_years" mapstructure:"window_years"`
}

// EvidenceProgressionConfig parameterizes the hierarchy-progression signal.
type EvidenceProgressionConfig struct {
	// RecentYearsThreshold is how many years, counted back from the
	// current year inclusive, make up the "recent" period.
	RecentYearsThreshold float64 `json:"recent_years_threshold" yaml:"recent_years_threshold" mapstructure:"recent_years_threshold"`

	// ProgressionPoints awards points when a source type first outranks
	// everything seen before the recent period. Source types without an
	// entry are skipped.
	ProgressionPoints map[SourceType]float64 `json:"progression_points" yaml:"progression_points" mapstructure:"progression_points"`
}

// TrendCombineWeights weights the three trend sub-scores when they are
// collapsed into the single trend_score scalar.
type TrendCombineWeights struct {
	RecencyWeighted     float64 `json:"recency_weighted" yaml:"recency_weighted" mapstructure:"recency_weighted"`
	RateOfChange        float64 `json:"rate_of_change" yaml:"rate_of_change" mapstructure:"rate_of_change"`
	EvidenceProgression float64 `json:"evidence_progression" yaml:"evidence_progression" mapstructure:"evidence_progression"`
}

// TrendConfig holds the trend engine's settings. All three sub-signals
// are always computed; each section carries its own parameters.
type TrendConfig struct {
	RecencyWeighted     RecencyWeightedConfig     `json:"recency_weighted" yaml:"recency_weighted" mapstructure:"recency_weighted"`
	RateOfChange        RateOfChangeConfig        `json:"rate_of_change" yaml:"rate_of_change" mapstructure:"rate_of_change"`
	EvidenceProgression EvidenceProgressionConfig `json:"evidence_progression" yaml:"evidence_progression" mapstructure:"evidence_progression"`
	CombineWeights      TrendCombineWeights       `json:"combine_weights" yaml:"combine_weights" mapstructure:"combine_weights"`
}

// IsZero reports whether the trend section carries no settings at all.
// An all-zero trend section is indistinguishable from an absent one and
// is treated as absent by the trend engine. A configuration that
// intentionally zeroes every trend parameter must keep at least one
// field set (combine weights, say) to stay recognizable as present.
func (t TrendConfig) IsZero() bool {
	return t.RecencyWeighted == (RecencyWeightedConfig{}) &&
		t.RateOfChange == (RateOfChangeConfig{}) &&
		t.EvidenceProgression.RecentYearsThreshold == 0 &&
		len(t.EvidenceProgression.ProgressionPoints) == 0 &&
		t.CombineWeights == (TrendCombineWeights{})
}

// ScoringConfig is the resolved configuration mapping every engine reads.
// It is populated once per process by the configuration provider and
// treated as read-only afterwards.
type ScoringConfig struct {
	// SourceWeights maps each source type to its evidentiary-importance
	// weight. A mention whose source type has no entry contributes zero
	// weight and is skipped with a diagnostic.
	SourceWeights map[SourceType]float64 `json:"source_weights" yaml:"source_weights" mapstructure:"source_weights"`

	EvidenceStrength EvidenceStrengthConfig `json:"evidence_strength" yaml:"evidence_strength" mapstructure:"evidence_strength"`
	Sentiment        SentimentConfig        `json:"sentiment" yaml:"sentiment" mapstructure:"sentiment"`
	Trend            TrendConfig            `json:"trend" yaml:"trend" mapstructure:"trend"`
}

// DefaultScoringConfig returns the built-in configuration: the reference
// source-weight table ordered by evidence tier, logarithmic aggregation
// with PMI-like normalization, detailed net-score sentiment, and the
// documented trend defaults (decay 0.15, window 5 years, 3-year recent
// period).
func DefaultScoringConfig() ScoringConfig {
	return ScoringConfig{
		SourceWeights: map[SourceType]float64{
			SourceGuideline:          5.0,
			SourceLabel:              4.5,
			SourcePhase4CT:           4.0,
			SourcePhase3CT:           3.5,
			SourcePhase2CT:           2.5,
			SourcePhase1CT:           2.0,
			SourceReview:             1.5,
			SourcePubMed:             1.0,
			SourcePreclinical:        0.5,
			SourceConferenceAbstract: 0.5,
			SourceOther:              0.25,
		},
		EvidenceStrength: EvidenceStrengthConfig{
			FrequencyAggregation: AggregationLogarithmic,
			NormalizationMethod:  NormalizationPMI,
		},
		Sentiment: SentimentConfig{
			AggregationMethod: SentimentNetScoreDetailed,
		},
		Trend: TrendConfig{
			RecencyWeighted: RecencyWeightedConfig{DecayRate: 0.15},
			RateOfChange:    RateOfChangeConfig{WindowYears: 5.0},
			EvidenceProgression: EvidenceProgressionConfig{
				RecentYearsThreshold: 3.0,
				// Lower tiers carry no progression points: reaching them
				// is not an advance up the hierarchy worth signaling.
				ProgressionPoints: map[SourceType]float64{
					SourceGuideline: 5.0,
					SourceLabel:     4.0,
					SourcePhase4CT:  3.5,
					SourcePhase3CT:  3.0,
					SourcePhase2CT:  2.0,
					SourcePhase1CT:  1.5,
					SourceReview:    1.0,
				},
			},
			CombineWeights: TrendCombineWeights{
				RecencyWeighted:     1.0,
				RateOfChange:        1.0,
				EvidenceProgression: 1.0,
			},
		},
	}
}
