package types

import "time"

// HTTPConfig holds shared HTTP settings for stages that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout" mapstructure:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "paper-discovery/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent" mapstructure:"user_agent"`
}

// SearchConfig holds settings for the search collaborator.
type SearchConfig struct {
	HTTPConfig `yaml:",inline" mapstructure:",squash"`

	// MaxPerQuery is the maximum number of results fetched per query
	// (default 50).
	MaxPerQuery int `json:"max_per_query" yaml:"max_per_query" mapstructure:"max_per_query"`

	// RatePeriod is the minimum spacing between API requests across all
	// concurrent queries (default 3s, the arXiv politeness window).
	RatePeriod time.Duration `json:"rate_period" yaml:"rate_period" mapstructure:"rate_period"`

	// MaxRetries is the number of retry attempts on throttled responses
	// (default 3).
	MaxRetries int `json:"max_retries" yaml:"max_retries" mapstructure:"max_retries"`
}

// ScoreWeights holds the convex combination used for the overall quality
// score. The five weights must sum to 1.0.
type ScoreWeights struct {
	Title      float64 `json:"title" yaml:"title" mapstructure:"title"`
	Abstract   float64 `json:"abstract" yaml:"abstract" mapstructure:"abstract"`
	Authors    float64 `json:"authors" yaml:"authors" mapstructure:"authors"`
	Categories float64 `json:"categories" yaml:"categories" mapstructure:"categories"`
	Recency    float64 `json:"recency" yaml:"recency" mapstructure:"recency"`
}

// PipelineConfig holds the tunable thresholds for the processing pipeline.
// Deployments adjust these without code changes; the pipeline applies the
// defaults below for zero values.
type PipelineConfig struct {
	// MinQualityScore is the minimum overall score a paper must reach to
	// survive quality filtering (default 0.4).
	MinQualityScore float64 `json:"min_quality_score" yaml:"min_quality_score" mapstructure:"min_quality_score"`

	// RelevantCategories is the set of category codes considered relevant
	// when scoring.
	RelevantCategories []string `json:"relevant_categories" yaml:"relevant_categories" mapstructure:"relevant_categories"`

	// MinTitleLength and MaxTitleLength bound acceptable title lengths
	// (defaults 10 and 500).
	MinTitleLength int `json:"min_title_length" yaml:"min_title_length" mapstructure:"min_title_length"`
	MaxTitleLength int `json:"max_title_length" yaml:"max_title_length" mapstructure:"max_title_length"`

	// MinAbstractLength and MaxAbstractLength bound acceptable abstract
	// lengths (defaults 100 and 10000).
	MinAbstractLength int `json:"min_abstract_length" yaml:"min_abstract_length" mapstructure:"min_abstract_length"`
	MaxAbstractLength int `json:"max_abstract_length" yaml:"max_abstract_length" mapstructure:"max_abstract_length"`

	// Weights combines the five sub-scores into the overall score.
	Weights ScoreWeights `json:"weights" yaml:"weights" mapstructure:"weights"`
}

// StorageConfig holds settings for the local dataset.
type StorageConfig struct {
	// DBPath is the SQLite database file (default "data/papers.db").
	DBPath string `json:"db_path" yaml:"db_path" mapstructure:"db_path"`
}

// Config groups all component configurations.
type Config struct {
	Search   SearchConfig   `json:"search" yaml:"search" mapstructure:"search"`
	Pipeline PipelineConfig `json:"pipeline" yaml:"pipeline" mapstructure:"pipeline"`
	Storage  StorageConfig  `json:"storage" yaml:"storage" mapstructure:"storage"`
}

// DefaultPipelineConfig returns the pipeline thresholds used when a
// deployment does not override them.
func DefaultPipelineConfig() PipelineConfig {
	return PipelineConfig{
		MinQualityScore: 0.4,
		RelevantCategories: []string{
			"cs.AI", "cs.LG", "cs.IR", "cs.CV", "cs.CL",
			"stat.ML", "cs.HC", "cs.DB",
		},
		MinTitleLength:    10,
		MaxTitleLength:    500,
		MinAbstractLength: 100,
		MaxAbstractLength: 10000,
		Weights: ScoreWeights{
			Title:      0.25,
			Abstract:   0.30,
			Authors:    0.15,
			Categories: 0.20,
			Recency:    0.10,
		},
	}
}
