// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pipeline

import (
	"fmt"
	"math"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/pdiddy/paper-discovery/pkg/types"
)

// genericTitleRes match formulaic title openers that suggest a generic
// paper. Applied to the lowercased title.
var genericTitleRes = []*regexp.Regexp{
	regexp.MustCompile(`^(a|an|the)\s+(study|analysis|review|survey|approach|method)\s+of`),
	regexp.MustCompile(`^(towards?|on)\s+`),
	regexp.MustCompile(`^(improving|enhancing|optimizing)\s+`),
}

// technicalTerms reward titles naming a concrete technique.
var technicalTerms = []string{
	"algorithm", "model", "neural", "deep", "machine learning",
	"optimization", "classification", "regression", "clustering",
}

// abstractIndicatorRes detect the three key sections of a substantive
// abstract: methodology, results, conclusions.
var abstractIndicatorRes = []*regexp.Regexp{
	regexp.MustCompile(`\b(method|approach|algorithm|technique)\b`),
	regexp.MustCompile(`\b(result|finding|performance|accuracy)\b`),
	regexp.MustCompile(`\b(conclusion|demonstrate|show|achieve)\b`),
}

type scoredPaper struct {
	paper types.Paper
	score types.QualityScore
}

// scoreAndFilter attaches a QualityScore to every paper and keeps those at
// or above the configured minimum overall score. Scoring never fails; any
// missing field degrades to its neutral sub-score.
func (p *Processor) scoreAndFilter(papers []types.Paper) []scoredPaper {
	var kept []scoredPaper
	for _, paper := range papers {
		score := p.Score(paper)
		if score.OverallScore < p.cfg.MinQualityScore {
			fmt.Fprintf(p.w, "filtered %s: overall score %.2f below %.2f\n",
				paper.PaperID, score.OverallScore, p.cfg.MinQualityScore)
			continue
		}
		kept = append(kept, scoredPaper{paper: paper, score: score})
	}
	return kept
}

// Score computes the five sub-scores and their weighted combination for
// one paper. Every score lies in [0, 1].
func (p *Processor) Score(paper types.Paper) types.QualityScore {
	s := types.QualityScore{
		TitleScore:    p.scoreTitle(paper.Title),
		AbstractScore: p.scoreAbstract(paper.Abstract),
		AuthorScore:   scoreAuthors(paper.Authors),
		CategoryScore: p.scoreCategories(paper.Categories),
		RecencyScore:  p.scoreRecency(paper.PublicationDate),
	}

	w := p.cfg.Weights
	s.OverallScore = w.Title*s.TitleScore +
		w.Abstract*s.AbstractScore +
		w.Authors*s.AuthorScore +
		w.Categories*s.CategoryScore +
		w.Recency*s.RecencyScore

	// Float accumulation can push five maximal sub-scores past 1.0.
	s.OverallScore = math.Min(s.OverallScore, 1.0)

	return s
}

// scoreTitle: 0.4 for in-bounds length, 0.3 for avoiding generic openers,
// 0.3 for naming a technical term. Capped at 1.0.
func (p *Processor) scoreTitle(title string) float64 {
	if title == "" {
		return 0
	}

	score := 0.0
	if n := utf8.RuneCountInString(title); n >= p.cfg.MinTitleLength && n <= p.cfg.MaxTitleLength {
		score += 0.4
	}

	lower := strings.ToLower(title)

	generic := false
	for _, re := range genericTitleRes {
		if re.MatchString(lower) {
			generic = true
			break
		}
	}
	if !generic {
		score += 0.3
	}

	for _, term := range technicalTerms {
		if strings.Contains(lower, term) {
			score += 0.3
			break
		}
	}

	return math.Min(score, 1.0)
}

// scoreAbstract: 0.4 for in-bounds length plus up to 0.6 proportional to
// how many of the three key-indicator classes are present.
func (p *Processor) scoreAbstract(abstract string) float64 {
	if abstract == "" {
		return 0
	}

	score := 0.0
	if n := utf8.RuneCountInString(abstract); n >= p.cfg.MinAbstractLength && n <= p.cfg.MaxAbstractLength {
		score += 0.4
	}

	lower := strings.ToLower(abstract)
	found := 0
	for _, re := range abstractIndicatorRes {
		if re.MatchString(lower) {
			found++
		}
	}
	score += float64(found) / float64(len(abstractIndicatorRes)) * 0.6

	return math.Min(score, 1.0)
}

// scoreAuthors: neutral 0.3 when unknown; otherwise 0.5 base, +0.2 for
// collaboration, +0.3 for a reasonable author count.
func scoreAuthors(authors []string) float64 {
	if len(authors) == 0 {
		return 0.3
	}

	score := 0.5
	if len(authors) > 1 {
		score += 0.2
	}
	if len(authors) >= 2 && len(authors) <= 8 {
		score += 0.3
	}

	return math.Min(score, 1.0)
}

// scoreCategories: 0 when absent, a flat 0.2 when no category is relevant,
// otherwise the relevant fraction capped at 1.0.
func (p *Processor) scoreCategories(categories []string) float64 {
	if len(categories) == 0 {
		return 0
	}

	relevant := 0
	for _, cat := range categories {
		if _, ok := p.relevant[cat]; ok {
			relevant++
		}
	}
	if relevant == 0 {
		return 0.2
	}

	return math.Min(float64(relevant)/float64(len(categories)), 1.0)
}

// scoreRecency is a step function of age in days. A missing date is
// neutral (0.5).
func (p *Processor) scoreRecency(date time.Time) float64 {
	if date.IsZero() {
		return 0.5
	}

	days := int(p.now().Sub(date).Hours() / 24)
	switch {
	case days <= 30:
		return 1.0
	case days <= 90:
		return 0.8
	case days <= 180:
		return 0.6
	case days <= 365:
		return 0.4
	default:
		return 0.2
	}
}
