// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package normalize cleans free-text paper fields into canonical form.
// All functions are pure transformations with no I/O.
package normalize

import (
	"regexp"
	"strings"
)

var (
	whitespaceRe  = regexp.MustCompile(`\s+`)
	htmlEntityRe  = regexp.MustCompile(`&[a-zA-Z]+;`)
	htmlTagRe     = regexp.MustCompile(`<[^>]+>`)
	arxivPrefixRe = regexp.MustCompile(`(?i)^arxiv:\s*`)
)

// Text collapses whitespace runs (including newlines and tabs) to single
// spaces, strips HTML entity references and tag-like substrings, and trims
// leading and trailing whitespace.
func Text(s string) string {
	if s == "" {
		return ""
	}
	s = whitespaceRe.ReplaceAllString(strings.TrimSpace(s), " ")
	s = htmlEntityRe.ReplaceAllString(s, "")
	s = htmlTagRe.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}

// Title cleans a paper title: Text plus removal of a leading "arXiv:"
// source prefix, case-insensitively.
func Title(s string) string {
	s = Text(s)
	return strings.TrimSpace(arxivPrefixRe.ReplaceAllString(s, ""))
}

// Author standardizes an author name. Names in "Last, First" form (exactly
// one comma, two parts) are reordered to "First Last"; anything else passes
// through whitespace-normalized only.
func Author(s string) string {
	s = whitespaceRe.ReplaceAllString(strings.TrimSpace(s), " ")
	if s == "" {
		return ""
	}
	if strings.Contains(s, ",") {
		parts := strings.Split(s, ",")
		if len(parts) == 2 {
			last := strings.TrimSpace(parts[0])
			first := strings.TrimSpace(parts[1])
			return first + " " + last
		}
	}
	return s
}

// categoryCase maps known lowercase category codes to their canonical
// mixed-case form.
var categoryCase = map[string]string{
	"cs.ai":   "cs.AI",
	"cs.lg":   "cs.LG",
	"cs.ir":   "cs.IR",
	"cs.cv":   "cs.CV",
	"cs.cl":   "cs.CL",
	"stat.ml": "stat.ML",
}

// Categories canonicalizes a category code list. Codes are lowercased and
// trimmed, mapped through the fixed case-correction table for known codes
// and uppercased otherwise. Duplicates are dropped, first occurrence wins,
// order preserved.
func Categories(cats []string) []string {
	var out []string
	seen := make(map[string]struct{})

	for _, cat := range cats {
		cat = strings.ToLower(strings.TrimSpace(cat))
		if cat == "" {
			continue
		}

		canonical, ok := categoryCase[cat]
		if !ok {
			canonical = strings.ToUpper(cat)
		}

		if _, dup := seen[canonical]; dup {
			continue
		}
		seen[canonical] = struct{}{}
		out = append(out, canonical)
	}
	return out
}
