package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"figimap/internal/config"
	"figimap/internal/logger"
	"figimap/internal/mapping"
	"figimap/internal/validator"
)

// options holds the persistent flags shared by every subcommand.
type options struct {
	batchSize int
	strict    bool
	pretty    bool
	verbose   bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "figimap",
		Short: "Build OpenFIGI mapping jobs from security descriptors",
		Long: `figimap turns free-text security descriptors such as "MSFT US Equity"
into OpenFIGI mapping jobs, or builds jobs from explicit fields.

Jobs are written to stdout as JSON arrays, one array per request-sized batch.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			env := os.Getenv("ENV")
			if env == "" {
				env = "production"
			}
			logger.Init(env)
			if opts.verbose {
				if err := logger.SetLevel("debug"); err != nil {
					return err
				}
			}

			if opts.batchSize < 0 {
				return fmt.Errorf("--batch-size must not be negative, got %d", opts.batchSize)
			}
			if opts.batchSize == 0 {
				cfg, err := config.Load()
				if err != nil {
					return err
				}
				opts.batchSize = cfg.JobsPerRequest
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			logger.Sync()
		},
	}

	root.PersistentFlags().IntVar(&opts.batchSize, "batch-size", 0,
		"jobs per output array (default: OpenFIGI limit for the configured API key)")
	root.PersistentFlags().BoolVar(&opts.strict, "strict", false,
		"reject jobs with unknown id types, codes or malformed identifiers")
	root.PersistentFlags().BoolVar(&opts.pretty, "pretty", false, "indent JSON output")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log debug output to stderr")

	root.AddCommand(
		newClassifyCmd(opts),
		newBuildCmd(opts),
		newReferenceCmd(opts),
	)
	return root
}

// emitJobs runs the optional strict checks and writes jobs as batches.
func emitJobs(w io.Writer, opts *options, jobs []mapping.MappingJob) error {
	if opts.strict {
		for i, job := range jobs {
			if err := validator.ValidateJob(job); err != nil {
				return fmt.Errorf("job %d: %s", i, validator.Describe(err))
			}
		}
	}

	batches := mapping.Batch(jobs, opts.batchSize)
	logger.Get().Debugw("writing jobs",
		"jobs", len(jobs),
		"batches", len(batches),
		"batch_size", opts.batchSize,
	)
	for _, batch := range batches {
		if err := writeJSON(w, opts.pretty, batch); err != nil {
			return err
		}
	}
	return nil
}

func writeJSON(w io.Writer, pretty bool, v any) error {
	enc := json.NewEncoder(w)
	if pretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(v)
}
