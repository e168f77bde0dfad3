// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/relation-scorer/pkg/types"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "relation-scorer.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestScoringDefaultsWithoutFile(t *testing.T) {
	p := NewFileProvider("")

	cfg, err := p.Scoring()
	require.NoError(t, err)
	assert.Equal(t, types.DefaultScoringConfig(), cfg)
}

func TestScoringMergesFileOverDefaults(t *testing.T) {
	path := writeConfig(t, `
source_weights:
  PubMed: 2.0
trend:
  recency_weighted:
    decay_rate: 0.3
`)
	p := NewFileProvider(path)

	cfg, err := p.Scoring()
	require.NoError(t, err)

	assert.Equal(t, 2.0, cfg.SourceWeights[types.SourcePubMed])
	// Untouched keys keep their defaults.
	assert.Equal(t, 5.0, cfg.SourceWeights[types.SourceGuideline])
	assert.Equal(t, 0.3, cfg.Trend.RecencyWeighted.DecayRate)
	assert.Equal(t, 5.0, cfg.Trend.RateOfChange.WindowYears)
}

func TestScoringCanonicalizesSourceTypeKeys(t *testing.T) {
	path := writeConfig(t, `
source_weights:
  phase 3 ct: 7.0
  guideline: 9.0
`)
	p := NewFileProvider(path)

	cfg, err := p.Scoring()
	require.NoError(t, err)
	assert.Equal(t, 7.0, cfg.SourceWeights[types.SourcePhase3CT])
	assert.Equal(t, 9.0, cfg.SourceWeights[types.SourceGuideline])
}

func TestScoringMissingExplicitFile(t *testing.T) {
	p := NewFileProvider(filepath.Join(t.TempDir(), "nope.yaml"))
	_, err := p.Scoring()
	require.Error(t, err)
}

func TestScoringMalformedFile(t *testing.T) {
	path := writeConfig(t, "source_weights: [not, a, mapping\n")
	p := NewFileProvider(path)
	_, err := p.Scoring()
	require.Error(t, err)
}

func TestGetDottedPath(t *testing.T) {
	path := writeConfig(t, `
trend:
  rate_of_change:
    window_years: 7
`)
	p := NewFileProvider(path)

	assert.EqualValues(t, 7, p.Get("trend.rate_of_change.window_years", nil))
	assert.Equal(t, "fallback", p.Get("no.such.key", "fallback"))
}

func TestReloadPicksUpChanges(t *testing.T) {
	path := writeConfig(t, "trend:\n  recency_weighted:\n    decay_rate: 0.1\n")
	p := NewFileProvider(path)

	cfg, err := p.Scoring()
	require.NoError(t, err)
	assert.Equal(t, 0.1, cfg.Trend.RecencyWeighted.DecayRate)

	require.NoError(t, os.WriteFile(path, []byte("trend:\n  recency_weighted:\n    decay_rate: 0.9\n"), 0o644))

	// Cached until explicitly reloaded.
	cfg, err = p.Scoring()
	require.NoError(t, err)
	assert.Equal(t, 0.1, cfg.Trend.RecencyWeighted.DecayRate)

	require.NoError(t, p.Reload())
	cfg, err = p.Scoring()
	require.NoError(t, err)
	assert.Equal(t, 0.9, cfg.Trend.RecencyWeighted.DecayRate)
}

func TestStaticProvider(t *testing.T) {
	cfg := types.DefaultScoringConfig()
	cfg.Trend.RecencyWeighted.DecayRate = 0.42
	p := Static(cfg)

	got, err := p.Scoring()
	require.NoError(t, err)
	assert.Equal(t, cfg, got)

	assert.EqualValues(t, 0.42, p.Get("trend.recency_weighted.decay_rate", nil))
	assert.Equal(t, "fallback", p.Get("trend.missing", "fallback"))
}

func TestReferenceConfigMatchesDefaults(t *testing.T) {
	// The shipped reference file documents the defaults; keep them in sync.
	p := NewFileProvider(filepath.Join("..", "..", "relation-scorer.yaml"))

	cfg, err := p.Scoring()
	require.NoError(t, err)
	assert.Equal(t, types.DefaultScoringConfig(), cfg)
}

func TestDefaultProviderReset(t *testing.T) {
	t.Cleanup(Reset)

	path := writeConfig(t, "trend:\n  recency_weighted:\n    decay_rate: 0.7\n")
	SetConfigFile(path)

	cfg, err := Default().Scoring()
	require.NoError(t, err)
	assert.Equal(t, 0.7, cfg.Trend.RecencyWeighted.DecayRate)

	Reset()
	cfg, err = Default().Scoring()
	require.NoError(t, err)
	assert.Equal(t, types.DefaultScoringConfig().Trend.RecencyWeighted.DecayRate, cfg.Trend.RecencyWeighted.DecayRate)
}
