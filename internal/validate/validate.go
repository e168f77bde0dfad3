// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package validate enforces the input and output data contracts. Input
// bundles are decoded strictly (unknown fields rejected) and checked
// field by field; assembled results are re-checked before they are
// handed back to the caller. Checks report every violation found, not
// just the first.
package validate

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/pdiddy/relation-scorer/pkg/types"
)

// Year bounds for a mention, exclusive on both ends.
const (
	minYear = 1900
	maxYear = 2100
)

// DecodeInput reads a JSON input bundle from r, rejecting unknown fields,
// and validates it. The returned error is a *types.ValidationError when
// the bundle decodes but breaks the contract.
func DecodeInput(r io.Reader) (types.ScoringInput, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()

	var in types.ScoringInput
	if err := dec.Decode(&in); err != nil {
		return types.ScoringInput{}, fmt.Errorf("decoding input bundle: %w", err)
	}
	if err := CheckInput(in); err != nil {
		return types.ScoringInput{}, err
	}
	return in, nil
}

// CheckInput validates an input bundle against the contract. It returns
// nil or a *types.ValidationError listing every field-level violation.
func CheckInput(in types.ScoringInput) error {
	var vs []types.Violation

	if len(in.RelationshipMentions) == 0 {
		vs = append(vs, types.Violation{
			Field:  "relationship_mentions",
			Reason: "at least one mention is required",
		})
	}
	for i, m := range in.RelationshipMentions {
		field := func(name string) string {
			return fmt.Sprintf("relationship_mentions[%d].%s", i, name)
		}
		if !m.SourceType.Valid() {
			vs = append(vs, types.Violation{
				Field:  field("source_type"),
				Reason: fmt.Sprintf("unknown source type %q", m.SourceType),
			})
		}
		if m.Year <= minYear || m.Year >= maxYear {
			vs = append(vs, types.Violation{
				Field:  field("year"),
				Reason: fmt.Sprintf("year %d outside (%d, %d)", m.Year, minYear, maxYear),
			})
		}
		if !m.Sentiment.Valid() {
			vs = append(vs, types.Violation{
				Field:  field("sentiment"),
				Reason: fmt.Sprintf("unknown sentiment %q", m.Sentiment),
			})
		}
	}

	vs = append(vs, checkEntity("entity_a_metadata", in.EntityAMetadata)...)
	vs = append(vs, checkEntity("entity_b_metadata", in.EntityBMetadata)...)

	if len(vs) > 0 {
		return &types.ValidationError{Subject: "input", Violations: vs}
	}
	return nil
}

func checkEntity(field string, e types.EntityMetadata) []types.Violation {
	var vs []types.Violation
	if e.ID == "" {
		vs = append(vs, types.Violation{
			Field:  field + ".id",
			Reason: "must be non-empty",
		})
	}
	if e.OverallProminence < 0 {
		vs = append(vs, types.Violation{
			Field:  field + ".overall_prominence",
			Reason: fmt.Sprintf("must be >= 0, got %v", e.OverallProminence),
		})
	}
	return vs
}

// CheckResult validates an assembled scoring result before it leaves the
// orchestrator. It returns nil or a *types.ValidationError.
func CheckResult(res types.ScoringResult) error {
	var vs []types.Violation

	scores := []struct {
		field string
		value float64
	}{
		{"sentiment_scores.positive_score", res.SentimentScores.PositiveScore},
		{"sentiment_scores.negative_score", res.SentimentScores.NegativeScore},
		{"sentiment_scores.neutral_score", res.SentimentScores.NeutralScore},
	}
	for _, s := range scores {
		field, v := s.field, s.value
		if v < 0 {
			vs = append(vs, types.Violation{
				Field:  field,
				Reason: fmt.Sprintf("must be >= 0, got %v", v),
			})
		}
	}

	if !res.SentimentScores.DominantSentiment.Valid() {
		vs = append(vs, types.Violation{
			Field:  "sentiment_scores.dominant_sentiment",
			Reason: fmt.Sprintf("unknown label %q", res.SentimentScores.DominantSentiment),
		})
	}

	if len(vs) > 0 {
		return &types.ValidationError{Subject: "output", Violations: vs}
	}
	return nil
}
