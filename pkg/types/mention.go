// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines the shared data contracts for relation-scorer:
// the mention and entity input records, the scoring configuration tree,
// the result structures, and the error taxonomy the engines report with.
package types

// SourceType categorizes the document a mention was observed in. The set
// is closed; it is the evidence-hierarchy vocabulary that source weights
// and progression points are keyed by.
type SourceType string

const (
	SourceGuideline          SourceType = "Guideline"
	SourceLabel              SourceType = "Label"
	SourcePhase4CT           SourceType = "Phase 4 CT"
	SourcePhase3CT           SourceType = "Phase 3 CT"
	SourcePhase2CT           SourceType = "Phase 2 CT"
	SourcePhase1CT           SourceType = "Phase 1 CT"
	SourcePubMed             SourceType = "PubMed"
	SourcePreclinical        SourceType = "Preclinical"
	SourceReview             SourceType = "Review"
	SourceConferenceAbstract SourceType = "Conference Abstract"
	SourceOther              SourceType = "Other"
)

// AllSourceTypes lists every member of the closed SourceType set, ordered
// from strongest to weakest evidence tier.
var AllSourceTypes = []SourceType{
	SourceGuideline,
	SourceLabel,
	SourcePhase4CT,
	SourcePhase3CT,
	SourcePhase2CT,
	SourcePhase1CT,
	SourcePubMed,
	SourcePreclinical,
	SourceReview,
	SourceConferenceAbstract,
	SourceOther,
}

// Valid reports whether s is a member of the closed SourceType set.
func (s SourceType) Valid() bool {
	for _, t := range AllSourceTypes {
		if s == t {
			return true
		}
	}
	return false
}

// Sentiment is the pre-computed polarity label attached to a mention.
type Sentiment string

const (
	SentimentPositive Sentiment = "Positive"
	SentimentNegative Sentiment = "Negative"
	SentimentNeutral  Sentiment = "Neutral"
)

// Valid reports whether s is one of the three mention polarity labels.
func (s Sentiment) Valid() bool {
	return s == SentimentPositive || s == SentimentNegative || s == SentimentNeutral
}

// Mention is one recorded observation of the relationship in a source
// document. Mentions are value records: constructed once from validated
// input and never mutated by the engines.
type Mention struct {
	// SourceType is the category of the source document.
	SourceType SourceType `json:"source_type" yaml:"source_type"`

	// Year is the year the mention was recorded or published.
	// Valid years are strictly between 1900 and 2100.
	Year int `json:"year" yaml:"year"`

	// Sentiment is the pre-calculated polarity of the mention.
	Sentiment Sentiment `json:"sentiment" yaml:"sentiment"`

	// MentionID is an optional source-specific identifier for traceability
	// (e.g. "pmid:12345678", "NCT00001234").
	MentionID string `json:"mention_id,omitempty" yaml:"mention_id,omitempty"`
}
