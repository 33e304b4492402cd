// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"fmt"
	"os"
	"strings"

	"go.yaml.in/yaml/v3"
)

// QueryFile is the on-disk representation of a saved discovery query set.
// The researcher can keep a standing list of queries in a file and rerun
// discovery without retyping them.
type QueryFile struct {
	Queries     []string `yaml:"queries"`
	MaxPerQuery int      `yaml:"max_per_query,omitempty"`
}

// ReadQueryFile loads a query file from disk. Blank entries are dropped;
// a file with no usable queries is an error.
func ReadQueryFile(path string) (*QueryFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading query file: %w", err)
	}

	var qf QueryFile
	if err := yaml.Unmarshal(data, &qf); err != nil {
		return nil, fmt.Errorf("parsing query file: %w", err)
	}

	cleaned := qf.Queries[:0]
	for _, q := range qf.Queries {
		q = strings.TrimSpace(q)
		if q != "" {
			cleaned = append(cleaned, q)
		}
	}
	qf.Queries = cleaned

	if len(qf.Queries) == 0 {
		return nil, fmt.Errorf("query file %s contains no queries", path)
	}
	return &qf, nil
}
