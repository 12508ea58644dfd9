package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"figimap/internal/mapping"
)

func newClassifyCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "classify [descriptor...]",
		Short: "Classify free-text descriptors into mapping jobs",
		Long: `Classifies each argument as one descriptor. With no arguments,
reads one descriptor per line from stdin; blank lines and lines starting
with '#' are skipped.

Examples:
  figimap classify "MSFT US Equity" US4592001014 BBG000BLNNH6
  figimap classify < descriptors.txt`,
		RunE: func(cmd *cobra.Command, args []string) error {
			queries := args
			if len(queries) == 0 {
				var err error
				queries, err = readLines(cmd.InOrStdin())
				if err != nil {
					return err
				}
			}

			jobs := make([]mapping.MappingJob, len(queries))
			for i, q := range queries {
				jobs[i] = mapping.Classify(q)
			}
			return emitJobs(cmd.OutOrStdout(), opts, jobs)
		},
	}
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read descriptors: %w", err)
	}
	return lines, nil
}
