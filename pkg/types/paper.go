// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the paper-discovery pipeline.
package types

import "time"

// RawPaper is a paper record as returned by a search backend, before any
// cleaning. The pipeline treats it as immutable input; venue, cross-reference
// IDs, and full text pass through untouched.
type RawPaper struct {
	// PaperID is the source identifier, globally unique per source
	// (for arXiv, the entry URL).
	PaperID string `json:"paper_id" yaml:"paper_id"`

	// Title is the paper title as received.
	Title string `json:"title" yaml:"title"`

	// Abstract is the paper abstract or summary, possibly empty.
	Abstract string `json:"abstract,omitempty" yaml:"abstract,omitempty"`

	// Authors lists the author names in source order.
	Authors []string `json:"authors,omitempty" yaml:"authors,omitempty"`

	// Published is the publication date string as received (RFC 3339 or
	// YYYY-MM-DD). Kept as a string so malformed values degrade at
	// validation instead of failing the fetch.
	Published string `json:"published,omitempty" yaml:"published,omitempty"`

	// Categories lists subject classification codes (e.g. "cs.LG").
	Categories []string `json:"categories,omitempty" yaml:"categories,omitempty"`

	// Venue is the publication venue, if the source provides one.
	Venue string `json:"venue,omitempty" yaml:"venue,omitempty"`

	// ArxivID is the short arXiv identifier (e.g. "2301.07041").
	ArxivID string `json:"arxiv_id,omitempty" yaml:"arxiv_id,omitempty"`

	// SemanticScholarID is a cross-reference ID from Semantic Scholar.
	SemanticScholarID string `json:"semantic_scholar_id,omitempty" yaml:"semantic_scholar_id,omitempty"`

	// FullText is the paper body, if available. Opaque to the pipeline.
	FullText string `json:"full_text,omitempty" yaml:"full_text,omitempty"`
}

// Paper is a RawPaper that passed validation: text fields are
// whitespace-normalized and HTML-stripped, categories are canonicalized,
// and PaperID and Title are non-empty. A publication date that failed to
// parse is the zero time.
type Paper struct {
	PaperID           string    `json:"paper_id" yaml:"paper_id"`
	Title             string    `json:"title" yaml:"title"`
	Abstract          string    `json:"abstract,omitempty" yaml:"abstract,omitempty"`
	Authors           []string  `json:"authors,omitempty" yaml:"authors,omitempty"`
	PublicationDate   time.Time `json:"publication_date,omitempty" yaml:"publication_date,omitempty"`
	Categories        []string  `json:"categories,omitempty" yaml:"categories,omitempty"`
	Venue             string    `json:"venue,omitempty" yaml:"venue,omitempty"`
	ArxivID           string    `json:"arxiv_id,omitempty" yaml:"arxiv_id,omitempty"`
	SemanticScholarID string    `json:"semantic_scholar_id,omitempty" yaml:"semantic_scholar_id,omitempty"`
	FullText          string    `json:"full_text,omitempty" yaml:"full_text,omitempty"`
}

// QualityScore holds the five sub-scores and their weighted combination.
// Every field lies in [0, 1].
type QualityScore struct {
	TitleScore    float64 `json:"title_score" yaml:"title_score"`
	AbstractScore float64 `json:"abstract_score" yaml:"abstract_score"`
	AuthorScore   float64 `json:"author_score" yaml:"author_score"`
	CategoryScore float64 `json:"category_score" yaml:"category_score"`
	RecencyScore  float64 `json:"recency_score" yaml:"recency_score"`
	OverallScore  float64 `json:"overall_score" yaml:"overall_score"`
}

// WordCount holds per-section word counts derived during enrichment.
type WordCount struct {
	TitleWords    int `json:"title_words" yaml:"title_words"`
	AbstractWords int `json:"abstract_words" yaml:"abstract_words"`
	TotalWords    int `json:"total_words" yaml:"total_words"`
}

// Relevance holds topical keyword-hit counts per bucket and the derived
// overall relevance signal.
type Relevance struct {
	// Buckets maps bucket name to keyword hit count in title+abstract.
	Buckets map[string]int `json:"buckets" yaml:"buckets"`

	// TotalScore is the sum of all bucket counts.
	TotalScore int `json:"total_relevance_score" yaml:"total_relevance_score"`

	// HighlyRelevant is true when TotalScore >= 3.
	HighlyRelevant bool `json:"is_highly_relevant" yaml:"is_highly_relevant"`
}

// ContentAnalysis holds structural signals derived from the title and
// abstract text.
type ContentAnalysis struct {
	HasMethodology  bool `json:"has_methodology" yaml:"has_methodology"`
	HasEvaluation   bool `json:"has_evaluation" yaml:"has_evaluation"`
	HasComparison   bool `json:"has_comparison" yaml:"has_comparison"`
	MentionsDataset bool `json:"mentions_dataset" yaml:"mentions_dataset"`
	IsSurvey        bool `json:"is_survey" yaml:"is_survey"`
	IsTutorial      bool `json:"is_tutorial" yaml:"is_tutorial"`

	// TechnicalDepthScore is the fraction of the first four signals that
	// are true.
	TechnicalDepthScore float64 `json:"technical_depth_score" yaml:"technical_depth_score"`
}

// EnrichedPaper is a scored Paper plus the derived enrichment fields.
// All derived fields are pure functions of the paper's own text.
type EnrichedPaper struct {
	Paper `yaml:",inline"`

	Quality         QualityScore    `json:"quality_score" yaml:"quality_score"`
	WordCount       WordCount       `json:"word_count" yaml:"word_count"`
	AuthorCount     int             `json:"author_count" yaml:"author_count"`
	CategoryCount   int             `json:"category_count" yaml:"category_count"`
	Relevance       Relevance       `json:"relevance_indicators" yaml:"relevance_indicators"`
	ContentAnalysis ContentAnalysis `json:"content_analysis" yaml:"content_analysis"`
}

// StoredPaper is the final persisted projection of an enriched paper.
// Optional fields carry explicit empty values rather than being omitted
// so downstream consumers can rely on key presence.
type StoredPaper struct {
	PaperID           string   `json:"paper_id" yaml:"paper_id"`
	Title             string   `json:"title" yaml:"title"`
	Abstract          string   `json:"abstract" yaml:"abstract"`
	Authors           []string `json:"authors" yaml:"authors"`
	PublicationDate   string   `json:"publication_date" yaml:"publication_date"`
	Venue             string   `json:"venue" yaml:"venue"`
	ArxivID           string   `json:"arxiv_id" yaml:"arxiv_id"`
	SemanticScholarID string   `json:"semantic_scholar_id" yaml:"semantic_scholar_id"`
	Categories        []string `json:"categories" yaml:"categories"`
	FullText          string   `json:"full_text" yaml:"full_text"`

	Quality         QualityScore    `json:"quality_score" yaml:"quality_score"`
	WordCount       WordCount       `json:"word_count" yaml:"word_count"`
	Relevance       Relevance       `json:"relevance_indicators" yaml:"relevance_indicators"`
	ContentAnalysis ContentAnalysis `json:"content_analysis" yaml:"content_analysis"`

	CreatedAt           time.Time `json:"created_at" yaml:"created_at"`
	ProcessingTimestamp string    `json:"processing_timestamp" yaml:"processing_timestamp"`
	ProcessorVersion    string    `json:"processor_version" yaml:"processor_version"`
	Pipeline            string    `json:"processing_pipeline" yaml:"processing_pipeline"`
}
