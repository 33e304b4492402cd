// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/pdiddy/paper-discovery/pkg/types"
)

// reportBatch prints processing stats and the batch summary, as text or
// JSON.
func reportBatch(stats types.ProcessingStats, summary types.BatchSummary, jsonOutput bool) error {
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(struct {
			Stats   types.ProcessingStats `json:"stats"`
			Summary types.BatchSummary    `json:"summary"`
		}{stats, summary})
	}

	fmt.Fprintf(os.Stdout, "Pipeline:\n")
	fmt.Fprintf(os.Stdout, "  input:             %d\n", stats.InputPapers)
	fmt.Fprintf(os.Stdout, "  validated:         %d\n", stats.ValidatedPapers)
	fmt.Fprintf(os.Stdout, "  duplicates removed: %d (known %d, batch id %d, content %d, near-title %d)\n",
		stats.DuplicatesRemoved, stats.Dedup.KnownID, stats.Dedup.BatchID,
		stats.Dedup.ContentHash, stats.Dedup.NearTitle)
	fmt.Fprintf(os.Stdout, "  quality filtered:  %d\n", stats.QualityFilteredOut)
	fmt.Fprintf(os.Stdout, "  final:             %d\n", stats.FinalPapers)
	fmt.Fprintf(os.Stdout, "  elapsed:           %.2fs\n", stats.ProcessingSeconds)

	if summary.TotalPapers == 0 {
		return nil
	}

	fmt.Fprintf(os.Stdout, "\nBatch summary:\n")
	fmt.Fprintf(os.Stdout, "  quality: mean %.3f, min %.3f, max %.3f\n",
		summary.QualityScoreStats.Mean, summary.QualityScoreStats.Min, summary.QualityScoreStats.Max)
	fmt.Fprintf(os.Stdout, "  authors: mean %.1f, min %.0f, max %.0f\n",
		summary.AuthorCountStats.Mean, summary.AuthorCountStats.Min, summary.AuthorCountStats.Max)
	fmt.Fprintf(os.Stdout, "  highly relevant: %d (%.1f%%)\n",
		summary.HighlyRelevantPapers, summary.RelevancePercentage)

	if len(summary.CategoryDistribution) > 0 {
		names := make([]string, 0, len(summary.CategoryDistribution))
		for name := range summary.CategoryDistribution {
			names = append(names, name)
		}
		sort.Slice(names, func(i, k int) bool {
			ci, ck := summary.CategoryDistribution[names[i]], summary.CategoryDistribution[names[k]]
			if ci != ck {
				return ci > ck
			}
			return names[i] < names[k]
		})
		fmt.Fprintf(os.Stdout, "  top categories:\n")
		for _, name := range names {
			fmt.Fprintf(os.Stdout, "    %-12s %d\n", name, summary.CategoryDistribution[name])
		}
	}
	return nil
}
