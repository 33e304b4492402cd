// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pipeline turns raw paper records into a deduplicated,
// quality-scored, enriched dataset ready for storage.
//
// A batch flows through five stages in order: validation, deduplication,
// quality scoring, enrichment, and standardization. Each stage consumes the
// previous stage's full output; batch boundaries are synchronization points
// for the deduplicator's within-batch state and the final statistics.
package pipeline

import (
	"fmt"
	"io"
	"time"

	"github.com/pdiddy/paper-discovery/pkg/types"
)

const (
	processorVersion = "0.1"
	pipelineTag      = "paper-discovery/v1"
)

// Processor runs the paper processing pipeline with injected thresholds.
type Processor struct {
	cfg      types.PipelineConfig
	relevant map[string]struct{}
	w        io.Writer

	// now is the clock used for recency scoring and timestamps. Tests
	// substitute a fixed time.
	now func() time.Time
}

// NewProcessor returns a Processor using cfg, with progress written to w.
// Zero-valued thresholds fall back to the defaults in
// types.DefaultPipelineConfig.
func NewProcessor(cfg types.PipelineConfig, w io.Writer) *Processor {
	if w == nil {
		w = io.Discard
	}
	applyDefaults(&cfg)

	relevant := make(map[string]struct{}, len(cfg.RelevantCategories))
	for _, cat := range cfg.RelevantCategories {
		relevant[cat] = struct{}{}
	}

	return &Processor{
		cfg:      cfg,
		relevant: relevant,
		w:        w,
		now:      time.Now,
	}
}

func applyDefaults(cfg *types.PipelineConfig) {
	def := types.DefaultPipelineConfig()
	if cfg.MinQualityScore <= 0 {
		cfg.MinQualityScore = def.MinQualityScore
	}
	if len(cfg.RelevantCategories) == 0 {
		cfg.RelevantCategories = def.RelevantCategories
	}
	if cfg.MinTitleLength <= 0 {
		cfg.MinTitleLength = def.MinTitleLength
	}
	if cfg.MaxTitleLength <= 0 {
		cfg.MaxTitleLength = def.MaxTitleLength
	}
	if cfg.MinAbstractLength <= 0 {
		cfg.MinAbstractLength = def.MinAbstractLength
	}
	if cfg.MaxAbstractLength <= 0 {
		cfg.MaxAbstractLength = def.MaxAbstractLength
	}
	w := cfg.Weights
	if w.Title+w.Abstract+w.Authors+w.Categories+w.Recency == 0 {
		cfg.Weights = def.Weights
	}
}

// Process runs the full pipeline over one batch. knownIDs is the set of
// identifiers already persisted; the caller's set is never mutated.
//
// Malformed individual records are dropped with a log line, never an error;
// an empty input yields an empty output and zeroed stats. The batch always
// completes with a (possibly smaller) result and a stats object.
func (p *Processor) Process(raws []types.RawPaper, knownIDs map[string]struct{}) ([]types.StoredPaper, types.ProcessingStats) {
	start := p.now()
	fmt.Fprintf(p.w, "processing batch of %d papers\n", len(raws))

	validated := p.validate(raws)
	deduped, dedupStats := p.deduplicate(validated, knownIDs)
	scored := p.scoreAndFilter(deduped)
	enriched := p.enrich(scored)
	final := p.standardize(enriched)

	end := p.now()
	stats := types.ProcessingStats{
		InputPapers:           len(raws),
		ValidatedPapers:       len(validated),
		DeduplicatedPapers:    len(deduped),
		QualityFilteredPapers: len(scored),
		FinalPapers:           len(final),
		DuplicatesRemoved:     len(validated) - len(deduped),
		QualityFilteredOut:    len(deduped) - len(scored),
		EnrichedCount:         len(enriched),
		ProcessingSeconds:     end.Sub(start).Seconds(),
		Timestamp:             end.UTC().Format(time.RFC3339),
		Dedup:                 dedupStats,
	}

	fmt.Fprintf(p.w, "batch complete: %d in, %d validated, %d duplicates removed, %d quality-filtered, %d final\n",
		stats.InputPapers, stats.ValidatedPapers, stats.DuplicatesRemoved,
		stats.QualityFilteredOut, stats.FinalPapers)

	return final, stats
}
