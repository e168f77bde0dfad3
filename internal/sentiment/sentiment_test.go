// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package sentiment

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/relation-scorer/internal/diag"
	"github.com/pdiddy/relation-scorer/pkg/types"
)

func testCfg() types.ScoringConfig {
	return types.ScoringConfig{
		SourceWeights: map[types.SourceType]float64{
			types.SourceGuideline: 5.0,
			types.SourcePhase3CT:  3.5,
			types.SourcePubMed:    1.0,
		},
		Sentiment: types.SentimentConfig{
			AggregationMethod: types.SentimentNetScoreDetailed,
		},
	}
}

func mention(st types.SourceType, sentiment types.Sentiment) types.Mention {
	return types.Mention{SourceType: st, Year: 2023, Sentiment: sentiment}
}

func TestCalculateEmptyMentions(t *testing.T) {
	scores, err := Calculate(nil, testCfg(), diag.Nop{})
	require.NoError(t, err)
	assert.Equal(t, types.SentimentScores{DominantSentiment: types.DominantNeutral}, scores)
}

func TestCalculateMissingWeights(t *testing.T) {
	mentions := []types.Mention{mention(types.SourcePubMed, types.SentimentNeutral)}
	_, err := Calculate(mentions, types.ScoringConfig{}, diag.Nop{})
	var cfgErr *types.ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "source_weights", cfgErr.Key)
}

func TestCalculateWeightedSums(t *testing.T) {
	mentions := []types.Mention{
		mention(types.SourceGuideline, types.SentimentPositive), // w=5
		mention(types.SourcePubMed, types.SentimentNegative),    // w=1
	}

	scores, err := Calculate(mentions, testCfg(), diag.Nop{})
	require.NoError(t, err)

	assert.InDelta(t, 5.0, scores.PositiveScore, 1e-12)
	assert.InDelta(t, 1.0, scores.NegativeScore, 1e-12)
	assert.Zero(t, scores.NeutralScore)
	assert.InDelta(t, 4.0, scores.NetScore, 1e-12)
	assert.Equal(t, types.DominantPositive, scores.DominantSentiment)
}

func TestNetScoreInvariant(t *testing.T) {
	tests := []struct {
		name     string
		mentions []types.Mention
	}{
		{"positive heavy", []types.Mention{
			mention(types.SourceGuideline, types.SentimentPositive),
			mention(types.SourcePhase3CT, types.SentimentPositive),
			mention(types.SourcePubMed, types.SentimentNegative),
		}},
		{"negative heavy", []types.Mention{
			mention(types.SourceGuideline, types.SentimentNegative),
			mention(types.SourcePubMed, types.SentimentPositive),
		}},
		{"neutral only", []types.Mention{
			mention(types.SourcePubMed, types.SentimentNeutral),
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scores, err := Calculate(tt.mentions, testCfg(), diag.Nop{})
			require.NoError(t, err)
			assert.Equal(t, scores.PositiveScore-scores.NegativeScore, scores.NetScore)
		})
	}
}

func TestDominantSentiment(t *testing.T) {
	tests := []struct {
		name                        string
		positive, negative, neutral float64
		want                        types.DominantSentiment
	}{
		{"positive strict max", 5, 1, 0, types.DominantPositive},
		{"negative strict max", 1, 5, 0, types.DominantNegative},
		{"neutral max", 1, 1, 5, types.DominantNeutral},
		{"all zero", 0, 0, 0, types.DominantNeutral},
		{"balanced conflict outweighing neutral", 3, 3, 1, types.DominantMixed},
		{"balanced conflict under neutral", 2, 2, 5, types.DominantNeutral},
		{"near balanced ratio", 4, 5, 0, types.DominantMixed}, // ratio 4/9 within (0.3, 0.7)
		{"strong dominance escapes mixed", 8, 1, 0, types.DominantPositive},
		{"ratio exactly at lower bound stays put", 3, 7, 0, types.DominantNegative},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := classify(tt.positive, tt.negative, tt.neutral); got != tt.want {
				t.Errorf("classify(%v, %v, %v) = %v, want %v", tt.positive, tt.negative, tt.neutral, got, tt.want)
			}
		})
	}
}

func TestUnknownSourceTypeSkipped(t *testing.T) {
	mentions := []types.Mention{
		mention(types.SourceGuideline, types.SentimentPositive),
		mention(types.SourceOther, types.SentimentNegative), // no weight configured
	}

	rec := &diag.Recorder{}
	scores, err := Calculate(mentions, testCfg(), rec)
	require.NoError(t, err)
	assert.Zero(t, scores.NegativeScore)
	assert.NotEmpty(t, rec.MessagesAt(slog.LevelWarn))
}

func TestUnimplementedAggregationWarnsAndProceeds(t *testing.T) {
	cfg := testCfg()
	cfg.Sentiment.AggregationMethod = "MajorityVote"
	mentions := []types.Mention{mention(types.SourceGuideline, types.SentimentPositive)}

	rec := &diag.Recorder{}
	scores, err := Calculate(mentions, cfg, rec)
	require.NoError(t, err)
	assert.InDelta(t, 5.0, scores.PositiveScore, 1e-12)
	assert.NotEmpty(t, rec.MessagesAt(slog.LevelWarn))
}
