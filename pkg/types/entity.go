// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// EntityMetadata holds the static prominence metadata for one side of the
// scored relationship. Exactly two instances participate in a scoring
// run, supplied once and never mutated.
type EntityMetadata struct {
	// ID uniquely identifies the entity. Must be non-empty.
	ID string `json:"id" yaml:"id"`

	// OverallProminence is a pre-calculated popularity/frequency score for
	// the entity, used to normalize away the bias that prominent entities
	// accumulate more co-mentions regardless of true relationship
	// strength. Must be >= 0.
	OverallProminence float64 `json:"overall_prominence" yaml:"overall_prominence"`
}

// ScoringInput is the validated bundle a scoring run consumes: the full
// mention collection for one relationship plus metadata for both
// entities. Unknown extra fields are rejected at decode time.
type ScoringInput struct {
	// RelationshipMentions lists every mention of the relationship.
	// At least one mention is required; ordering is irrelevant.
	RelationshipMentions []Mention `json:"relationship_mentions" yaml:"relationship_mentions"`

	// EntityAMetadata describes entity A.
	EntityAMetadata EntityMetadata `json:"entity_a_metadata" yaml:"entity_a_metadata"`

	// EntityBMetadata describes entity B.
	EntityBMetadata EntityMetadata `json:"entity_b_metadata" yaml:"entity_b_metadata"`
}
