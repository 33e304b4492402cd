// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pipeline

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/pdiddy/paper-discovery/pkg/types"
)

// fingerprintAbstractChars bounds how much of the abstract feeds the
// content fingerprint.
const fingerprintAbstractChars = 500

// nearDuplicateThreshold is the Jaccard similarity above which two titles
// are considered the same paper (strict greater-than).
const nearDuplicateThreshold = 0.8

// minNearDuplicateTitleLen exempts very short titles from the similarity
// check; they are too short to judge reliably.
const minNearDuplicateTitleLen = 10

// Fingerprint returns the deterministic content digest used for
// exact-duplicate detection: an MD5 hex digest over the lowercased title,
// the first 500 characters of the lowercased abstract, and the sorted
// author list joined by "|". A collision means same content, not same
// identifier. MD5 is used as a content key, not for security.
func Fingerprint(p types.Paper) string {
	parts := []string{
		strings.ToLower(p.Title),
		firstRunes(strings.ToLower(p.Abstract), fingerprintAbstractChars),
	}
	if len(p.Authors) > 0 {
		authors := make([]string, len(p.Authors))
		copy(authors, p.Authors)
		sort.Strings(authors)
		parts = append(parts, strings.Join(authors, "|"))
	}

	var nonEmpty []string
	for _, part := range parts {
		if part != "" {
			nonEmpty = append(nonEmpty, part)
		}
	}

	sum := md5.Sum([]byte(strings.Join(nonEmpty, "|")))
	return hex.EncodeToString(sum[:])
}

// deduplicate removes duplicates from the validated batch, preserving input
// order. Three independent checks apply per record: identifier collision
// (against knownIDs or an earlier record in this batch), exact content
// fingerprint collision, and near-duplicate title similarity against every
// record already accepted.
//
// Records are processed strictly in input order; the first occurrence of a
// duplicate cluster survives. The near-duplicate scan keeps an explicit
// accumulator of accepted title word-sets and is O(n²) over the surviving
// set. Fine at tens to low hundreds of records per batch, a scaling
// boundary beyond that.
func (p *Processor) deduplicate(papers []types.Paper, knownIDs map[string]struct{}) ([]types.Paper, types.DedupStats) {
	var stats types.DedupStats
	var out []types.Paper

	batchIDs := make(map[string]struct{})
	seenHashes := make(map[string]struct{})
	var acceptedTitles []map[string]struct{}

	for _, paper := range papers {
		if _, ok := knownIDs[paper.PaperID]; ok {
			stats.KnownID++
			fmt.Fprintf(p.w, "duplicate %s: already persisted\n", paper.PaperID)
			continue
		}
		if _, ok := batchIDs[paper.PaperID]; ok {
			stats.BatchID++
			fmt.Fprintf(p.w, "duplicate %s: identifier repeated in batch\n", paper.PaperID)
			continue
		}

		hash := Fingerprint(paper)
		if _, ok := seenHashes[hash]; ok {
			stats.ContentHash++
			fmt.Fprintf(p.w, "duplicate %s: content hash %s\n", paper.PaperID, hash[:8])
			continue
		}

		words := titleWords(paper.Title)
		if isNearDuplicate(paper.Title, words, acceptedTitles) {
			stats.NearTitle++
			fmt.Fprintf(p.w, "duplicate %s: near-duplicate title\n", paper.PaperID)
			continue
		}

		batchIDs[paper.PaperID] = struct{}{}
		seenHashes[hash] = struct{}{}
		acceptedTitles = append(acceptedTitles, words)
		out = append(out, paper)
	}

	return out, stats
}

// isNearDuplicate reports whether title exceeds the Jaccard similarity
// threshold against any accepted title word-set. Titles shorter than
// minNearDuplicateTitleLen characters are exempt.
func isNearDuplicate(title string, words map[string]struct{}, accepted []map[string]struct{}) bool {
	if utf8.RuneCountInString(title) < minNearDuplicateTitleLen {
		return false
	}
	for _, other := range accepted {
		if jaccard(words, other) > nearDuplicateThreshold {
			return true
		}
	}
	return false
}

// titleWords returns the lowercased word set of a title.
func titleWords(title string) map[string]struct{} {
	words := make(map[string]struct{})
	for _, w := range strings.Fields(strings.ToLower(title)) {
		words[w] = struct{}{}
	}
	return words
}

// jaccard returns |a∩b| / |a∪b| for two word sets, 0 when both are empty.
func jaccard(a, b map[string]struct{}) float64 {
	intersection := 0
	for w := range a {
		if _, ok := b[w]; ok {
			intersection++
		}
	}
	union := len(a) + len(b) - intersection
	if union == 0 {
		return 0
	}
	return float64(intersection) / float64(union)
}

// firstRunes returns the first n runes of s.
func firstRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
