// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package evidence

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/relation-scorer/internal/diag"
	"github.com/pdiddy/relation-scorer/pkg/types"
)

func testCfg(agg types.AggregationMethod, norm types.NormalizationMethod) types.ScoringConfig {
	return types.ScoringConfig{
		SourceWeights: map[types.SourceType]float64{
			types.SourceGuideline: 5.0,
			types.SourcePhase3CT:  3.5,
			types.SourcePubMed:    1.0,
		},
		EvidenceStrength: types.EvidenceStrengthConfig{
			FrequencyAggregation: agg,
			NormalizationMethod:  norm,
		},
	}
}

func mention(st types.SourceType) types.Mention {
	return types.Mention{SourceType: st, Year: 2023, Sentiment: types.SentimentNeutral}
}

func TestCalculateEmptyMentions(t *testing.T) {
	score, err := Calculate(nil, 10, 10, testCfg(types.AggregationSimpleSum, types.NormalizationNone), diag.Nop{})
	require.NoError(t, err)
	assert.Zero(t, score)
}

func TestCalculateConfigErrors(t *testing.T) {
	mentions := []types.Mention{mention(types.SourcePubMed)}

	tests := []struct {
		name string
		cfg  types.ScoringConfig
		key  string
	}{
		{
			name: "missing source weights",
			cfg: types.ScoringConfig{
				EvidenceStrength: types.EvidenceStrengthConfig{
					FrequencyAggregation: types.AggregationSimpleSum,
					NormalizationMethod:  types.NormalizationNone,
				},
			},
			key: "source_weights",
		},
		{
			name: "missing aggregation method",
			cfg:  testCfg("", types.NormalizationNone),
			key:  "evidence_strength.frequency_aggregation",
		},
		{
			name: "missing normalization method",
			cfg:  testCfg(types.AggregationSimpleSum, ""),
			key:  "evidence_strength.normalization_method",
		},
		{
			name: "unrecognized aggregation method",
			cfg:  testCfg("Quadratic", types.NormalizationNone),
			key:  "evidence_strength.frequency_aggregation",
		},
		{
			name: "unrecognized normalization method",
			cfg:  testCfg(types.AggregationSimpleSum, "ZScore"),
			key:  "evidence_strength.normalization_method",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Calculate(mentions, 10, 10, tt.cfg, diag.Nop{})
			var cfgErr *types.ConfigError
			require.ErrorAs(t, err, &cfgErr)
			assert.Equal(t, tt.key, cfgErr.Key)
		})
	}
}

func TestSimpleSum(t *testing.T) {
	cfg := testCfg(types.AggregationSimpleSum, types.NormalizationNone)
	mentions := []types.Mention{
		mention(types.SourceGuideline),
		mention(types.SourcePubMed),
		mention(types.SourcePubMed),
	}

	score, err := Calculate(mentions, 10, 10, cfg, diag.Nop{})
	require.NoError(t, err)
	assert.InDelta(t, 7.0, score, 1e-12)
}

func TestSimpleSumOrderIndependent(t *testing.T) {
	cfg := testCfg(types.AggregationSimpleSum, types.NormalizationNone)
	forward := []types.Mention{
		mention(types.SourceGuideline),
		mention(types.SourcePhase3CT),
		mention(types.SourcePubMed),
	}
	reversed := []types.Mention{forward[2], forward[1], forward[0]}

	a, err := Calculate(forward, 10, 10, cfg, diag.Nop{})
	require.NoError(t, err)
	b, err := Calculate(reversed, 10, 10, cfg, diag.Nop{})
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestSimpleSumSkipsUnknownSourceType(t *testing.T) {
	cfg := testCfg(types.AggregationSimpleSum, types.NormalizationNone)
	mentions := []types.Mention{
		mention(types.SourceGuideline),
		mention(types.SourcePreclinical), // no weight configured
	}

	rec := &diag.Recorder{}
	score, err := Calculate(mentions, 10, 10, cfg, rec)
	require.NoError(t, err)
	assert.InDelta(t, 5.0, score, 1e-12)
	assert.NotEmpty(t, rec.Records, "expected a skip diagnostic")
}

func TestLogarithmic(t *testing.T) {
	cfg := testCfg(types.AggregationLogarithmic, types.NormalizationNone)
	mentions := []types.Mention{
		mention(types.SourcePubMed),
		mention(types.SourcePubMed),
		mention(types.SourcePubMed),
		mention(types.SourceGuideline),
	}

	score, err := Calculate(mentions, 10, 10, cfg, diag.Nop{})
	require.NoError(t, err)

	want := 1.0*math.Log1p(3) + 5.0*math.Log1p(1)
	assert.InDelta(t, want, score, 1e-12)
}

func TestRelativeFrequency(t *testing.T) {
	cfg := testCfg(types.AggregationSimpleSum, types.NormalizationRelativeFrequency)
	mentions := []types.Mention{mention(types.SourceGuideline)} // raw 5.0

	score, err := Calculate(mentions, 100, 50, cfg, diag.Nop{})
	require.NoError(t, err)
	assert.InDelta(t, 5.0/75.0, score, 1e-12)
}

func TestNormalizationDegradesOnNonPositiveProminence(t *testing.T) {
	mentions := []types.Mention{mention(types.SourceGuideline)} // raw 5.0

	for _, norm := range []types.NormalizationMethod{
		types.NormalizationRelativeFrequency,
		types.NormalizationPMI,
	} {
		t.Run(string(norm), func(t *testing.T) {
			cfg := testCfg(types.AggregationSimpleSum, norm)
			rec := &diag.Recorder{}
			score, err := Calculate(mentions, 0, 80, cfg, rec)
			require.NoError(t, err)
			assert.InDelta(t, 5.0, score, 1e-12, "should fall back to the raw score")
			assert.NotEmpty(t, rec.Records)
		})
	}
}

func TestPMI(t *testing.T) {
	cfg := testCfg(types.AggregationSimpleSum, types.NormalizationPMI)
	mentions := []types.Mention{mention(types.SourceGuideline)} // raw 5.0

	score, err := Calculate(mentions, 150, 80, cfg, diag.Nop{})
	require.NoError(t, err)

	want := math.Log((5.0 * pmiScale) / (150.0 * 80.0))
	assert.InDelta(t, want, score, 1e-12)
}

func TestPMILikeProperties(t *testing.T) {
	tests := []struct {
		name             string
		raw, promA, promB float64
		want             float64
	}{
		{"zero raw score", 0, 100, 100, 0},
		{"negative raw score", -1, 100, 100, 0},
		{"zero prominence a", 5, 0, 100, 0},
		{"zero prominence b", 5, 100, 0, 0},
		{"negative pmi clipped", 1e-9, 1e6, 1e6, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := pmiLike(tt.raw, tt.promA, tt.promB, diag.Nop{})
			if got != tt.want {
				t.Errorf("pmiLike(%v, %v, %v) = %v, want %v", tt.raw, tt.promA, tt.promB, got, tt.want)
			}
		})
	}
}

func TestPMINeverNegative(t *testing.T) {
	for _, raw := range []float64{1e-12, 0.5, 1, 100, 1e9} {
		for _, prom := range []float64{1e-6, 1, 1e3, 1e9} {
			if got := pmiLike(raw, prom, prom, diag.Nop{}); got < 0 {
				t.Fatalf("pmiLike(%v, %v, %v) = %v, want >= 0", raw, prom, prom, got)
			}
		}
	}
}
