// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pipeline

import (
	"time"

	"github.com/pdiddy/paper-discovery/pkg/types"
)

const publicationDateLayout = "2006-01-02"

// standardize projects enriched papers into the persisted shape. Absent
// optional fields become explicit empty values so downstream consumers can
// rely on key presence.
func (p *Processor) standardize(enriched []types.EnrichedPaper) []types.StoredPaper {
	now := p.now().UTC()
	timestamp := now.Format(time.RFC3339)

	out := make([]types.StoredPaper, 0, len(enriched))
	for _, e := range enriched {
		sp := types.StoredPaper{
			PaperID:           e.PaperID,
			Title:             e.Title,
			Abstract:          e.Abstract,
			Authors:           e.Authors,
			Venue:             e.Venue,
			ArxivID:           e.ArxivID,
			SemanticScholarID: e.SemanticScholarID,
			Categories:        e.Categories,
			FullText:          e.FullText,

			Quality:         e.Quality,
			WordCount:       e.WordCount,
			Relevance:       e.Relevance,
			ContentAnalysis: e.ContentAnalysis,

			CreatedAt:           now,
			ProcessingTimestamp: timestamp,
			ProcessorVersion:    processorVersion,
			Pipeline:            pipelineTag,
		}

		if !e.PublicationDate.IsZero() {
			sp.PublicationDate = e.PublicationDate.Format(publicationDateLayout)
		}
		if sp.Authors == nil {
			sp.Authors = []string{}
		}
		if sp.Categories == nil {
			sp.Categories = []string{}
		}

		out = append(out, sp)
	}
	return out
}
