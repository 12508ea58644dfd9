package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"figimap/internal/mapping"
)

// jobFile is the YAML layout read by the build command.
type jobFile struct {
	Jobs []mapping.Spec `yaml:"jobs"`
}

func newBuildCmd(opts *options) *cobra.Command {
	var path string

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build mapping jobs from a YAML job file",
		Long: `Builds one job per entry of a YAML job file. An entry either sets
"query" to a free-text descriptor or sets "idType" and "idValue"; the
optional exchCode, micCode, currency and marketSecDes fields are applied
on top in both cases.

Example jobs.yaml:
  jobs:
    - query: MSFT US Equity
    - idType: ID_ISIN
      idValue: US4592001014
      currency: USD`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var r io.Reader = cmd.InOrStdin()
			if path != "-" {
				f, err := os.Open(path)
				if err != nil {
					return fmt.Errorf("failed to open job file: %w", err)
				}
				defer f.Close()
				r = f
			}

			specs, err := loadJobFile(r)
			if err != nil {
				return err
			}

			jobs := make([]mapping.MappingJob, len(specs))
			for i, s := range specs {
				jobs[i] = s.Build()
			}
			return emitJobs(cmd.OutOrStdout(), opts, jobs)
		},
	}

	cmd.Flags().StringVarP(&path, "file", "f", "", `YAML job file ("-" reads stdin)`)
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func loadJobFile(r io.Reader) ([]mapping.Spec, error) {
	var file jobFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("job file is empty")
		}
		return nil, fmt.Errorf("failed to parse job file: %w", err)
	}
	if len(file.Jobs) == 0 {
		return nil, fmt.Errorf("job file has no jobs")
	}

	for i, s := range file.Jobs {
		if err := checkSpec(s); err != nil {
			return nil, fmt.Errorf("job %d: %w", i, err)
		}
	}
	return file.Jobs, nil
}

func checkSpec(s mapping.Spec) error {
	switch {
	case s.Query != "" && (s.IDType != "" || s.IDValue != ""):
		return fmt.Errorf("query cannot be combined with idType or idValue")
	case s.Query == "" && (s.IDType == "" || s.IDValue == ""):
		return fmt.Errorf("either query or both idType and idValue are required")
	case s.ExchCode != "" && s.MicCode != "":
		return fmt.Errorf("exchCode and micCode are mutually exclusive")
	}
	return nil
}
