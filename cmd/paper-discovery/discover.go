// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/paper-discovery/internal/jobs"
	"github.com/pdiddy/paper-discovery/internal/pipeline"
	"github.com/pdiddy/paper-discovery/internal/search"
	"github.com/pdiddy/paper-discovery/internal/store"
	"github.com/pdiddy/paper-discovery/pkg/types"
)

var discoverCmd = &cobra.Command{
	Use:   "discover",
	Short: "Fetch papers from arXiv and run them through the pipeline",
	Long: `Discover queries arXiv for each --query (or the queries in --query-file),
runs the fetched papers through validation, deduplication, quality scoring,
and enrichment, and stores the survivors in the database. Papers already
stored are skipped. With --dry-run the database is left untouched and the
processed batch is only reported.`,
	RunE: runDiscover,
}

func init() {
	discoverCmd.Flags().StringArray("query", nil, "search query (repeatable)")
	discoverCmd.Flags().String("query-file", "", "YAML file with a queries list")
	discoverCmd.Flags().Int("max-results", 0, "maximum results per query (default from config)")
	discoverCmd.Flags().Bool("dry-run", false, "process but do not store")
	discoverCmd.Flags().Bool("json", false, "output stats and summary as JSON")

	rootCmd.AddCommand(discoverCmd)
}

func runDiscover(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	queries, _ := cmd.Flags().GetStringArray("query")
	maxResults, _ := cmd.Flags().GetInt("max-results")
	if maxResults <= 0 {
		maxResults = cfg.Search.MaxPerQuery
	}

	if queryFile, _ := cmd.Flags().GetString("query-file"); queryFile != "" {
		qf, err := search.ReadQueryFile(queryFile)
		if err != nil {
			return err
		}
		queries = append(queries, qf.Queries...)
		if qf.MaxPerQuery > 0 {
			maxResults = qf.MaxPerQuery
		}
	}
	if len(queries) == 0 {
		return fmt.Errorf("provide at least one --query or a --query-file")
	}

	dryRun, _ := cmd.Flags().GetBool("dry-run")
	jsonOutput, _ := cmd.Flags().GetBool("json")
	ctx := context.Background()

	tracker := jobs.NewTracker()
	jobID := tracker.Create(queries)
	if err := tracker.Start(jobID); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "discovery job %s started\n", jobID)

	stored, stats, err := discover(ctx, cfg, queries, maxResults, dryRun)
	if err != nil {
		if failErr := tracker.Fail(jobID, err); failErr != nil {
			fmt.Fprintf(os.Stderr, "warning: %v\n", failErr)
		}
		return err
	}

	if err := tracker.Complete(jobID, stats); err != nil {
		fmt.Fprintf(os.Stderr, "warning: %v\n", err)
	}
	job, _ := tracker.Get(jobID)
	fmt.Fprintf(os.Stderr, "discovery job %s %s in %.2fs\n",
		job.ID, job.Status, stats.ProcessingSeconds)

	return reportBatch(stats, pipeline.Summarize(stored), jsonOutput)
}

func discover(ctx context.Context, cfg types.Config, queries []string, maxResults int, dryRun bool) ([]types.StoredPaper, types.ProcessingStats, error) {
	client := search.NewClient(cfg.Search, os.Stderr)
	raws, err := client.Fetch(ctx, queries, maxResults)
	if err != nil {
		return nil, types.ProcessingStats{}, err
	}

	var db *store.Store
	known := make(map[string]struct{})
	if !dryRun {
		db, err = store.Open(cfg.Storage, os.Stderr)
		if err != nil {
			return nil, types.ProcessingStats{}, err
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

	if dryRun {
		fmt.Fprintf(os.Stderr, "dry run: %d papers processed, nothing stored\n", len(stored))
		return stored, stats, nil
	}

	inserted, err := db.StorePapers(ctx, stored)
	if err != nil {
		return nil, stats, err
	}
	total, err := db.Count(ctx)
	if err != nil {
		return nil, stats, err
	}
	fmt.Fprintf(os.Stderr, "stored %d new papers (database holds %d)\n", inserted, total)

	return stored, stats, nil
}
