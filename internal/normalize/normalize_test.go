// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package normalize

import (
	"reflect"
	"testing"
)

func TestText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"plain", "Deep Learning", "Deep Learning"},
		{"collapses whitespace", "a  b\tc\nd", "a b c d"},
		{"trims", "  spaced out  ", "spaced out"},
		{"strips entities", "Q&amp;A systems", "QA systems"},
		// Entities are removed after whitespace collapsing; one flanked
		// by spaces leaves a double space.
		{"space-flanked entity", "cats &amp; dogs", "cats  dogs"},
		{"strips tags", "a <b>bold</b> claim", "a bold claim"},
		{"newline runs", "line one\n\n\nline two", "line one line two"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Text(tt.in); got != tt.want {
				t.Errorf("Text(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestTitle(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"no prefix", "Attention Is All You Need", "Attention Is All You Need"},
		{"lowercase prefix", "arxiv: A Paper", "A Paper"},
		{"mixed case prefix", "arXiv:A Paper", "A Paper"},
		{"prefix mid-title kept", "On arXiv: A Paper", "On arXiv: A Paper"},
		{"whitespace and prefix", "  arXiv:  Tidy  Title ", "Tidy Title"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Title(tt.in); got != tt.want {
				t.Errorf("Title(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestAuthor(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"plain", "Ada Lovelace", "Ada Lovelace"},
		{"last comma first", "Lovelace, Ada", "Ada Lovelace"},
		{"extra whitespace", "  Lovelace ,  Ada ", "Ada Lovelace"},
		{"two commas pass through", "Lovelace, Ada, Jr.", "Lovelace, Ada, Jr."},
		{"single token", "Aristotle", "Aristotle"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Author(tt.in); got != tt.want {
				t.Errorf("Author(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestCategories(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{"nil", nil, nil},
		{"known codes case-corrected", []string{"cs.ai", "CS.LG"}, []string{"cs.AI", "cs.LG"}},
		{"unknown code uppercased", []string{"q-bio.nc"}, []string{"Q-BIO.NC"}},
		{"duplicates dropped first wins", []string{"cs.AI", "cs.ai", "stat.ml"}, []string{"cs.AI", "stat.ML"}},
		{"empty entries skipped", []string{"", "  ", "cs.cv"}, []string{"cs.CV"}},
		{"order preserved", []string{"stat.ml", "cs.cl", "cs.ai"}, []string{"stat.ML", "cs.CL", "cs.AI"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Categories(tt.in); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Categories(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
