// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// DedupStats counts records dropped by each deduplication check.
type DedupStats struct {
	// KnownID counts records whose identifier was already persisted.
	KnownID int `json:"known_id" yaml:"known_id"`

	// BatchID counts records whose identifier appeared earlier in the batch.
	BatchID int `json:"batch_id" yaml:"batch_id"`

	// ContentHash counts records with an exact content-fingerprint collision.
	ContentHash int `json:"content_hash" yaml:"content_hash"`

	// NearTitle counts records dropped for near-duplicate titles.
	NearTitle int `json:"near_title" yaml:"near_title"`
}

// Total returns the number of records removed by deduplication.
func (d DedupStats) Total() int {
	return d.KnownID + d.BatchID + d.ContentHash + d.NearTitle
}

// ProcessingStats is the batch-level aggregate for one pipeline run.
// Computed once per batch, never mutated after construction.
type ProcessingStats struct {
	InputPapers           int     `json:"input_papers" yaml:"input_papers"`
	ValidatedPapers       int     `json:"validated_papers" yaml:"validated_papers"`
	DeduplicatedPapers    int     `json:"deduplicated_papers" yaml:"deduplicated_papers"`
	QualityFilteredPapers int     `json:"quality_filtered_papers" yaml:"quality_filtered_papers"`
	FinalPapers           int     `json:"final_papers" yaml:"final_papers"`
	DuplicatesRemoved     int     `json:"duplicates_removed" yaml:"duplicates_removed"`
	QualityFilteredOut    int     `json:"quality_filtered_out" yaml:"quality_filtered_out"`
	EnrichedCount         int     `json:"enrichment_applied" yaml:"enrichment_applied"`
	ProcessingSeconds     float64 `json:"processing_time_seconds" yaml:"processing_time_seconds"`
	Timestamp             string  `json:"processing_timestamp" yaml:"processing_timestamp"`

	Dedup DedupStats `json:"dedup" yaml:"dedup"`
}

// ScoreStats holds mean/min/max over a set of scores or counts.
type ScoreStats struct {
	Mean float64 `json:"mean" yaml:"mean"`
	Min  float64 `json:"min" yaml:"min"`
	Max  float64 `json:"max" yaml:"max"`
}

// BatchSummary holds aggregate statistics over a final batch.
// All fields are computed over the surviving records, not the input.
type BatchSummary struct {
	TotalPapers          int            `json:"total_papers" yaml:"total_papers"`
	CategoryDistribution map[string]int `json:"category_distribution" yaml:"category_distribution"`
	QualityScoreStats    ScoreStats     `json:"quality_score_stats" yaml:"quality_score_stats"`
	AuthorCountStats     ScoreStats     `json:"author_count_stats" yaml:"author_count_stats"`
	HighlyRelevantPapers int            `json:"highly_relevant_papers" yaml:"highly_relevant_papers"`
	RelevancePercentage  float64        `json:"relevance_percentage" yaml:"relevance_percentage"`
}
