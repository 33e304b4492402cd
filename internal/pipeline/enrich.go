// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pipeline

import (
	"regexp"
	"strings"

	"github.com/pdiddy/paper-discovery/pkg/types"
)

// relevanceBuckets maps topical buckets to keyword substrings. Each keyword
// present in the combined title+abstract text counts one hit for its
// bucket.
var relevanceBuckets = []struct {
	name     string
	keywords []string
}{
	{"recommendation", []string{"recommend", "recommendation", "recommender", "suggest"}},
	{"ecommerce", []string{"ecommerce", "e-commerce", "retail", "shopping", "purchase", "buy"}},
	{"personalization", []string{"personaliz", "individual", "custom", "tailor"}},
	{"collaborative_filtering", []string{"collaborative", "filtering", "matrix factorization"}},
	{"content_based", []string{"content-based", "content based", "item-based"}},
	{"deep_learning", []string{"deep learning", "neural network", "transformer", "embedding"}},
	{"machine_learning", []string{"machine learning", "classification", "clustering", "regression"}},
}

// highRelevanceThreshold is the total keyword-hit count at which a paper
// is flagged highly relevant.
const highRelevanceThreshold = 3

var (
	methodologyRe = regexp.MustCompile(`\b(method|approach|algorithm|technique)\b`)
	evaluationRe  = regexp.MustCompile(`\b(evaluat|experiment|result|performance)\b`)
	comparisonRe  = regexp.MustCompile(`\b(compar|baseline|state.of.the.art)\b`)
	datasetRe     = regexp.MustCompile(`\b(dataset|data set|benchmark|corpus)\b`)
	surveyRe      = regexp.MustCompile(`\b(survey|review|overview)\b`)
	tutorialRe    = regexp.MustCompile(`\b(tutorial|introduction|primer)\b`)
)

// enrich derives the computed fields for each surviving paper. Every
// derivation is a pure function of the paper's own text; no field depends
// on other records in the batch.
func (p *Processor) enrich(scored []scoredPaper) []types.EnrichedPaper {
	var enriched []types.EnrichedPaper
	for _, sp := range scored {
		enriched = append(enriched, types.EnrichedPaper{
			Paper:           sp.paper,
			Quality:         sp.score,
			WordCount:       countWords(sp.paper),
			AuthorCount:     len(sp.paper.Authors),
			CategoryCount:   len(sp.paper.Categories),
			Relevance:       relevanceIndicators(sp.paper),
			ContentAnalysis: analyzeContent(sp.paper),
		})
	}
	return enriched
}

// countWords tallies whitespace-separated words per section.
func countWords(paper types.Paper) types.WordCount {
	titleWords := len(strings.Fields(paper.Title))
	abstractWords := len(strings.Fields(paper.Abstract))
	return types.WordCount{
		TitleWords:    titleWords,
		AbstractWords: abstractWords,
		TotalWords:    titleWords + abstractWords,
	}
}

// relevanceIndicators counts keyword hits per topical bucket over the
// case-folded title and abstract, sums them into a total, and flags papers
// at or above the high-relevance threshold.
func relevanceIndicators(paper types.Paper) types.Relevance {
	text := strings.ToLower(paper.Title + " " + paper.Abstract)

	buckets := make(map[string]int, len(relevanceBuckets))
	total := 0
	for _, bucket := range relevanceBuckets {
		hits := 0
		for _, kw := range bucket.keywords {
			if strings.Contains(text, kw) {
				hits++
			}
		}
		buckets[bucket.name] = hits
		total += hits
	}

	return types.Relevance{
		Buckets:        buckets,
		TotalScore:     total,
		HighlyRelevant: total >= highRelevanceThreshold,
	}
}

// analyzeContent derives the six structural signals and the technical-depth
// score (the fraction of the first four signals present).
func analyzeContent(paper types.Paper) types.ContentAnalysis {
	title := strings.ToLower(paper.Title)
	abstract := strings.ToLower(paper.Abstract)

	a := types.ContentAnalysis{
		HasMethodology:  methodologyRe.MatchString(abstract),
		HasEvaluation:   evaluationRe.MatchString(abstract),
		HasComparison:   comparisonRe.MatchString(abstract),
		MentionsDataset: datasetRe.MatchString(abstract),
		IsSurvey:        surveyRe.MatchString(title),
		IsTutorial:      tutorialRe.MatchString(title),
	}

	depth := 0
	for _, signal := range []bool{a.HasMethodology, a.HasEvaluation, a.HasComparison, a.MentionsDataset} {
		if signal {
			depth++
		}
	}
	a.TechnicalDepthScore = float64(depth) / 4.0

	return a
}
