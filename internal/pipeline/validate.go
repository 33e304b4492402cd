// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pipeline

import (
	"fmt"
	"strings"
	"time"

	"github.com/pdiddy/paper-discovery/internal/normalize"
	"github.com/pdiddy/paper-discovery/pkg/types"
)

// dateLayouts are accepted publication date formats, tried in order.
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
}

// validate cleans each raw record and drops those missing an identifier or
// title after normalization. A single malformed record never aborts the
// batch; cleaning failures on other fields degrade to neutral values.
func (p *Processor) validate(raws []types.RawPaper) []types.Paper {
	var validated []types.Paper

	for _, raw := range raws {
		id := strings.TrimSpace(raw.PaperID)
		title := normalize.Title(raw.Title)
		if id == "" || title == "" {
			fmt.Fprintf(p.w, "skipped %s: missing required fields\n", idOrUnknown(id))
			continue
		}

		var authors []string
		for _, a := range raw.Authors {
			if cleaned := normalize.Author(a); cleaned != "" {
				authors = append(authors, cleaned)
			}
		}

		validated = append(validated, types.Paper{
			PaperID:           id,
			Title:             title,
			Abstract:          normalize.Text(raw.Abstract),
			Authors:           authors,
			PublicationDate:   parseDate(raw.Published),
			Categories:        normalize.Categories(raw.Categories),
			Venue:             raw.Venue,
			ArxivID:           raw.ArxivID,
			SemanticScholarID: raw.SemanticScholarID,
			FullText:          raw.FullText,
		})
	}

	return validated
}

// parseDate parses a publication date string. An empty or unparseable value
// yields the zero time, which downstream scoring treats as neutral.
func parseDate(s string) time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

func idOrUnknown(id string) string {
	if id == "" {
		return "unknown"
	}
	return id
}
