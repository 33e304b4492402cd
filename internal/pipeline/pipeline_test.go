// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pipeline

import (
	"reflect"
	"testing"

	"github.com/pdiddy/paper-discovery/pkg/types"
)

// goodAbstract is long enough for the length bonus and carries all three
// indicator classes.
const goodAbstract = "We present an algorithm for neural recommendation and evaluate it " +
	"on public data. The method scales to millions of interactions; each result we report " +
	"is averaged over five runs, and we demonstrate consistent gains over prior systems."

func goodRaw(id, title string) types.RawPaper {
	return types.RawPaper{
		PaperID:    id,
		Title:      title,
		Abstract:   goodAbstract,
		Authors:    []string{"Ada Lovelace", "Alan Turing"},
		Published:  "2026-08-19",
		Categories: []string{"cs.AI", "cs.LG"},
	}
}

func TestProcessEmptyBatch(t *testing.T) {
	p := newTestProcessor(types.PipelineConfig{})

	final, stats := p.Process(nil, nil)
	if len(final) != 0 {
		t.Errorf("final = %d papers, want 0", len(final))
	}
	if stats.InputPapers != 0 || stats.FinalPapers != 0 || stats.DuplicatesRemoved != 0 {
		t.Errorf("stats = %+v, want zero counts", stats)
	}
	if stats.Timestamp == "" {
		t.Error("stats timestamp missing")
	}
}

func TestProcessIdenticalContentFirstWins(t *testing.T) {
	p := newTestProcessor(types.PipelineConfig{})

	// Identical titles and abstracts, different identifiers.
	a := goodRaw("id-1", "Neural Collaborative Filtering Models for Retail")
	b := goodRaw("id-2", "Neural Collaborative Filtering Models for Retail")

	final, stats := p.Process([]types.RawPaper{a, b}, nil)
	if len(final) != 1 {
		t.Fatalf("final = %d papers, want 1", len(final))
	}
	if final[0].PaperID != "id-1" {
		t.Errorf("survivor = %s, want id-1 (first by input order)", final[0].PaperID)
	}
	if stats.DuplicatesRemoved != 1 || stats.Dedup.ContentHash != 1 {
		t.Errorf("dedup stats = %+v, want one content-hash drop", stats.Dedup)
	}
}

func TestProcessLowQualityFiltered(t *testing.T) {
	p := newTestProcessor(types.PipelineConfig{})

	stub := types.RawPaper{PaperID: "stub", Title: "ML"}
	final, stats := p.Process([]types.RawPaper{stub}, nil)

	if len(final) != 0 {
		t.Fatalf("final = %d papers, want 0: a two-character title with no abstract scores well below 0.4", len(final))
	}
	if stats.ValidatedPapers != 1 || stats.QualityFilteredOut != 1 {
		t.Errorf("stats = %+v, want 1 validated and 1 quality-filtered", stats)
	}
}

func TestProcessKnownIdentifiersExcluded(t *testing.T) {
	p := newTestProcessor(types.PipelineConfig{})

	known := map[string]struct{}{"id-1": {}}
	raws := []types.RawPaper{
		goodRaw("id-1", "Neural Collaborative Filtering Models for Retail"),
		goodRaw("id-2", "Clustering Algorithms for Sparse Interaction Graphs"),
	}

	final, _ := p.Process(raws, known)
	for _, paper := range final {
		if _, ok := known[paper.PaperID]; ok {
			t.Errorf("output contains already-known identifier %s", paper.PaperID)
		}
	}
	if len(final) != 1 {
		t.Errorf("final = %d papers, want 1", len(final))
	}
}

func TestProcessIdempotent(t *testing.T) {
	p := newTestProcessor(types.PipelineConfig{})

	raws := []types.RawPaper{
		goodRaw("id-1", "Neural Collaborative Filtering Models for Retail"),
		goodRaw("id-2", "Clustering Algorithms for Sparse Interaction Graphs"),
		{PaperID: "bad", Title: ""},
	}

	first, _ := p.Process(raws, nil)
	second, _ := p.Process(raws, nil)

	if !reflect.DeepEqual(first, second) {
		t.Error("two runs over the same batch produced different output")
	}
}

func TestProcessStandardizedShape(t *testing.T) {
	p := newTestProcessor(types.PipelineConfig{})

	raw := goodRaw("id-1", "Neural Collaborative Filtering Models for Retail")
	raw.Authors = nil

	final, _ := p.Process([]types.RawPaper{raw}, nil)
	if len(final) != 1 {
		t.Fatalf("final = %d papers, want 1", len(final))
	}

	sp := final[0]
	if sp.Authors == nil {
		t.Error("Authors must be an explicit empty list, not nil")
	}
	if sp.PublicationDate != "2026-08-19" {
		t.Errorf("PublicationDate = %q, want 2026-08-19", sp.PublicationDate)
	}
	if sp.ProcessorVersion == "" || sp.Pipeline == "" {
		t.Error("provenance tags missing")
	}
	if sp.ProcessingTimestamp == "" || sp.CreatedAt.IsZero() {
		t.Error("processing timestamps missing")
	}
	if sp.Relevance.Buckets == nil {
		t.Error("relevance buckets missing from stored shape")
	}
}

func TestProcessCategoryCanonicalization(t *testing.T) {
	p := newTestProcessor(types.PipelineConfig{})

	raw := goodRaw("id-1", "Neural Collaborative Filtering Models for Retail")
	raw.Categories = []string{"cs.ai", "CS.LG"}

	final, _ := p.Process([]types.RawPaper{raw}, nil)
	if len(final) != 1 {
		t.Fatalf("final = %d papers, want 1", len(final))
	}
	if want := []string{"cs.AI", "cs.LG"}; !reflect.DeepEqual(final[0].Categories, want) {
		t.Errorf("Categories = %v, want %v", final[0].Categories, want)
	}
}

func TestProcessStatsAddUp(t *testing.T) {
	p := newTestProcessor(types.PipelineConfig{})

	raws := []types.RawPaper{
		goodRaw("id-1", "Neural Collaborative Filtering Models for Retail"),
		goodRaw("id-1", "Neural Collaborative Filtering Models for Retail"), // batch id dup
		goodRaw("id-2", "Clustering Algorithms for Sparse Interaction Graphs"),
		{PaperID: "", Title: "No Identifier Here"}, // fails validation
		{PaperID: "weak", Title: "ML"},             // fails quality
	}

	final, stats := p.Process(raws, nil)

	if stats.InputPapers != 5 {
		t.Errorf("InputPapers = %d, want 5", stats.InputPapers)
	}
	if stats.ValidatedPapers != 4 {
		t.Errorf("ValidatedPapers = %d, want 4", stats.ValidatedPapers)
	}
	if stats.DuplicatesRemoved != 1 {
		t.Errorf("DuplicatesRemoved = %d, want 1", stats.DuplicatesRemoved)
	}
	if stats.QualityFilteredOut != 1 {
		t.Errorf("QualityFilteredOut = %d, want 1", stats.QualityFilteredOut)
	}
	if stats.FinalPapers != len(final) || stats.FinalPapers != 2 {
		t.Errorf("FinalPapers = %d, want 2", stats.FinalPapers)
	}
	if stats.EnrichedCount != stats.FinalPapers {
		t.Errorf("EnrichedCount = %d, want %d", stats.EnrichedCount, stats.FinalPapers)
	}
	if stats.DuplicatesRemoved != stats.Dedup.Total() {
		t.Errorf("DuplicatesRemoved = %d, Dedup.Total() = %d", stats.DuplicatesRemoved, stats.Dedup.Total())
	}
}
