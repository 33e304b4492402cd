// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/paper-discovery/internal/pipeline"
	"github.com/pdiddy/paper-discovery/internal/store"
	"github.com/pdiddy/paper-discovery/pkg/types"
)

var processCmd = &cobra.Command{
	Use:   "process [batch-file]",
	Short: "Run the pipeline over a local batch file of raw papers",
	Long: `Process reads raw paper records from a YAML (or JSON) batch file, runs
them through the same pipeline as discover, and stores the survivors.
Useful for replaying saved batches or processing records fetched by other
tools. With --out the processed papers are also written to a YAML file.`,
	Args: cobra.ExactArgs(1),
	RunE: runProcess,
}

func init() {
	processCmd.Flags().Bool("dry-run", false, "process but do not store")
	processCmd.Flags().Bool("json", false, "output stats and summary as JSON")
	processCmd.Flags().String("out", "", "write processed papers to a YAML file")

	rootCmd.AddCommand(processCmd)
}

func runProcess(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	raws, err := readBatchFile(args[0])
	if err != nil {
		return err
	}

	dryRun, _ := cmd.Flags().GetBool("dry-run")
	jsonOutput, _ := cmd.Flags().GetBool("json")
	outPath, _ := cmd.Flags().GetString("out")
	ctx := context.Background()

	var db *store.Store
	known := make(map[string]struct{})
	if !dryRun {
		db, err = store.Open(cfg.Storage, os.Stderr)
		if err != nil {
			return err
		}
		defer db.Close()

		candidates := make([]string, 0, len(raws))
		for _, r := range raws {
			candidates = append(candidates, r.PaperID)
		}
		known = db.LookupKnown(ctx, candidates)
	}

	processor := pipeline.NewProcessor(cfg.Pipeline, os.Stderr)
	stored, stats := processor.Process(raws, known)

	if !dryRun {
		inserted, err := db.StorePapers(ctx, stored)
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "stored %d new papers\n", inserted)
	}

	if outPath != "" {
		if err := writeBatchFile(outPath, stored); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "wrote %d papers to %s\n", len(stored), outPath)
	}

	return reportBatch(stats, pipeline.Summarize(stored), jsonOutput)
}

// readBatchFile loads raw paper records from a YAML or JSON file. Both
// parse with the YAML decoder.
func readBatchFile(path string) ([]types.RawPaper, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading batch file: %w", err)
	}
	var raws []types.RawPaper
	if err := yaml.Unmarshal(data, &raws); err != nil {
		return nil, fmt.Errorf("parsing batch file: %w", err)
	}
	return raws, nil
}

func writeBatchFile(path string, papers []types.StoredPaper) error {
	data, err := yaml.Marshal(papers)
	if err != nil {
		return fmt.Errorf("marshaling processed papers: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}
