// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package config resolves the scoring configuration. A process-wide
// provider loads the configuration lazily, at most once, and serves it
// read-only to every engine afterwards; tests and the CLI can point it
// at a specific file or reload it explicitly.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/viper"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/relation-scorer/pkg/types"
)

const (
	configName = "relation-scorer"
	envPrefix  = "RELATION_SCORER"
)

// Provider resolves the scoring configuration and serves point reads.
type Provider interface {
	// Scoring returns the resolved configuration tree. The first call
	// populates the cache; later calls are cheap reads.
	Scoring() (types.ScoringConfig, error)

	// Get returns the value at a dotted key path
	// (e.g. "trend.recency_weighted.decay_rate"), or fallback if the key
	// is not present.
	Get(key string, fallback any) any
}

// FileProvider is a viper-backed Provider. It reads relation-scorer.yaml
// from the working directory or ~/.config/relation-scorer (or an explicit
// file), layers RELATION_SCORER_* environment variables on top, and falls
// back to the built-in defaults for anything unset. A missing config file
// is not an error; the defaults stand alone.
type FileProvider struct {
	mu     sync.Mutex
	path   string
	v      *viper.Viper
	loaded bool
	cfg    types.ScoringConfig
	err    error
}

// NewFileProvider returns a provider reading from path. An empty path
// uses the standard search locations.
func NewFileProvider(path string) *FileProvider {
	return &FileProvider{path: path}
}

// Scoring implements Provider.
func (p *FileProvider) Scoring() (types.ScoringConfig, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.load()
	return p.cfg, p.err
}

// Get implements Provider.
func (p *FileProvider) Get(key string, fallback any) any {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.load()
	if p.v == nil || !p.v.IsSet(key) {
		return fallback
	}
	return p.v.Get(key)
}

// Reload discards the cached configuration and reads it again. This is
// the only way to invalidate the cache.
func (p *FileProvider) Reload() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.loaded = false
	p.load()
	return p.err
}

// load populates the cache if it has not been populated yet.
// Callers must hold p.mu.
func (p *FileProvider) load() {
	if p.loaded {
		return
	}
	p.loaded = true
	p.v, p.cfg, p.err = read(p.path)
}

func read(path string) (*viper.Viper, types.ScoringConfig, error) {
	v := viper.New()
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(configName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", configName))
		}
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, types.ScoringConfig{}, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg types.ScoringConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, types.ScoringConfig{}, fmt.Errorf("unmarshaling config: %w", err)
	}

	// Viper lowercases nested map keys; restore the canonical source-type
	// spellings so weight lookups by mention source type succeed.
	cfg.SourceWeights = canonicalKeys(cfg.SourceWeights)
	cfg.Trend.EvidenceProgression.ProgressionPoints = canonicalKeys(cfg.Trend.EvidenceProgression.ProgressionPoints)

	return v, cfg, nil
}

// setDefaults registers the built-in configuration as viper defaults so
// partial files and bare environments degrade gracefully.
func setDefaults(v *viper.Viper) {
	def := types.DefaultScoringConfig()

	weights := make(map[string]float64, len(def.SourceWeights))
	for st, w := range def.SourceWeights {
		weights[string(st)] = w
	}
	v.SetDefault("source_weights", weights)

	v.SetDefault("evidence_strength.frequency_aggregation", string(def.EvidenceStrength.FrequencyAggregation))
	v.SetDefault("evidence_strength.normalization_method", string(def.EvidenceStrength.NormalizationMethod))
	v.SetDefault("sentiment.aggregation_method", string(def.Sentiment.AggregationMethod))

	v.SetDefault("trend.recency_weighted.decay_rate", def.Trend.RecencyWeighted.DecayRate)
	v.SetDefault("trend.rate_of_change.window_years", def.Trend.RateOfChange.WindowYears)
	v.SetDefault("trend.evidence_progression.recent_years_threshold", def.Trend.EvidenceProgression.RecentYearsThreshold)

	points := make(map[string]float64, len(def.Trend.EvidenceProgression.ProgressionPoints))
	for st, pts := range def.Trend.EvidenceProgression.ProgressionPoints {
		points[string(st)] = pts
	}
	v.SetDefault("trend.evidence_progression.progression_points", points)

	v.SetDefault("trend.combine_weights.recency_weighted", def.Trend.CombineWeights.RecencyWeighted)
	v.SetDefault("trend.combine_weights.rate_of_change", def.Trend.CombineWeights.RateOfChange)
	v.SetDefault("trend.combine_weights.evidence_progression", def.Trend.CombineWeights.EvidenceProgression)
}

// canonicalKeys rewrites map keys to the canonical SourceType spelling,
// matching case-insensitively. Keys that match no known source type are
// kept verbatim; the engines will skip them with a diagnostic.
func canonicalKeys(in map[types.SourceType]float64) map[types.SourceType]float64 {
	if in == nil {
		return nil
	}
	canonical := make(map[string]types.SourceType, len(types.AllSourceTypes))
	for _, st := range types.AllSourceTypes {
		canonical[strings.ToLower(string(st))] = st
	}
	out := make(map[types.SourceType]float64, len(in))
	for k, w := range in {
		if st, ok := canonical[strings.ToLower(string(k))]; ok {
			out[st] = w
			continue
		}
		out[k] = w
	}
	return out
}

// Static returns a Provider serving a fixed configuration. Dotted Get
// reads traverse a YAML projection of the struct.
func Static(cfg types.ScoringConfig) Provider {
	return &staticProvider{cfg: cfg}
}

type staticProvider struct {
	cfg types.ScoringConfig

	once sync.Once
	tree map[string]any
}

func (p *staticProvider) Scoring() (types.ScoringConfig, error) {
	return p.cfg, nil
}

func (p *staticProvider) Get(key string, fallback any) any {
	p.once.Do(func() {
		raw, err := yaml.Marshal(p.cfg)
		if err != nil {
			return
		}
		var tree map[string]any
		if err := yaml.Unmarshal(raw, &tree); err != nil {
			return
		}
		p.tree = tree
	})

	var node any = p.tree
	for _, part := range strings.Split(key, ".") {
		m, ok := node.(map[string]any)
		if !ok {
			return fallback
		}
		node, ok = m[part]
		if !ok {
			return fallback
		}
	}
	return node
}

// --- process-wide default provider ---

var (
	defaultMu       sync.Mutex
	defaultProvider *FileProvider
	defaultPath     string
)

// Default returns the process-wide provider, creating it on first use.
func Default() Provider {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	if defaultProvider == nil {
		defaultProvider = NewFileProvider(defaultPath)
	}
	return defaultProvider
}

// SetConfigFile points the process-wide provider at an explicit file.
// It must be called before the first Default() read takes effect; a
// later call resets the provider so the next read reloads.
func SetConfigFile(path string) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultPath = path
	defaultProvider = nil
}

// Reset discards the process-wide provider. Intended for tests.
func Reset() {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultPath = ""
	defaultProvider = nil
}
