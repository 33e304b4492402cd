// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pipeline

import (
	"sort"

	"github.com/pdiddy/paper-discovery/pkg/types"
)

// topCategories bounds the category frequency distribution in a summary.
const topCategories = 10

// Summarize computes aggregate statistics over a final batch: the top-10
// category distribution, mean/min/max of overall quality score and author
// count, and the highly-relevant count and percentage. All statistics cover
// the surviving batch, not the original input; an empty batch yields zeroed
// structures, never an error.
func Summarize(papers []types.StoredPaper) types.BatchSummary {
	summary := types.BatchSummary{
		TotalPapers:          len(papers),
		CategoryDistribution: map[string]int{},
	}
	if len(papers) == 0 {
		return summary
	}

	counts := make(map[string]int)
	qualityScores := make([]float64, 0, len(papers))
	authorCounts := make([]float64, 0, len(papers))
	highlyRelevant := 0

	for _, paper := range papers {
		for _, cat := range paper.Categories {
			counts[cat]++
		}
		qualityScores = append(qualityScores, paper.Quality.OverallScore)
		authorCounts = append(authorCounts, float64(len(paper.Authors)))
		if paper.Relevance.HighlyRelevant {
			highlyRelevant++
		}
	}

	summary.CategoryDistribution = topN(counts, topCategories)
	summary.QualityScoreStats = scoreStats(qualityScores)
	summary.AuthorCountStats = scoreStats(authorCounts)
	summary.HighlyRelevantPapers = highlyRelevant
	summary.RelevancePercentage = float64(highlyRelevant) / float64(len(papers)) * 100

	return summary
}

// topN returns the n most frequent entries. Ties break on name so the
// selection is deterministic.
func topN(counts map[string]int, n int) map[string]int {
	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if counts[names[i]] != counts[names[j]] {
			return counts[names[i]] > counts[names[j]]
		}
		return names[i] < names[j]
	})

	if len(names) > n {
		names = names[:n]
	}

	top := make(map[string]int, len(names))
	for _, name := range names {
		top[name] = counts[name]
	}
	return top
}

func scoreStats(values []float64) types.ScoreStats {
	if len(values) == 0 {
		return types.ScoreStats{}
	}

	sum := 0.0
	min := values[0]
	max := values[0]
	for _, v := range values {
		sum += v
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}

	return types.ScoreStats{
		Mean: sum / float64(len(values)),
		Min:  min,
		Max:  max,
	}
}
