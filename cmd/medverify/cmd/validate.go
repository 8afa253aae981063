package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/medverify/pkg/logger"
	"github.com/dmitrymomot/medverify/pkg/record"
	"github.com/dmitrymomot/medverify/pkg/scoring"
	"github.com/dmitrymomot/medverify/pkg/scoring/metrics"
)

func newValidateCmd(s *session) *cobra.Command {
	var (
		file        string
		dumpMetrics bool
	)

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Score one provider record",
		Long: `Reads one JSON object from --file or stdin and prints the result:

  {"confidence": 60, "issues": ["Invalid phone format"], "executionTimeMs": 0.04}

A low score is not a failure: the command exits 0 whenever the record was scored.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return s.runValidate(cmd, file, dumpMetrics)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "JSON record file (default: stdin)")
	cmd.Flags().BoolVar(&dumpMetrics, "metrics", false, "Write scoring metrics to stderr in Prometheus text format")
	return cmd
}

func (s *session) runValidate(cmd *cobra.Command, file string, dumpMetrics bool) error {
	ctx := cmd.Context()

	in := cmd.InOrStdin()
	if file != "" {
		f, err := os.Open(file)
		if err != nil {
			return fmt.Errorf("open record: %w", err)
		}
		defer f.Close()
		in = f
	}

	rec, err := readRecord(in)
	if err != nil {
		s.log.ErrorContext(ctx, "failed to read record", logger.Error(err))
		return err
	}

	tables, err := s.tables(cmd)
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	engine := scoring.New(tables,
		scoring.WithLogger(s.log),
		scoring.WithMetrics(metrics.New(reg)),
	)

	res := engine.ValidateContext(ctx, rec)
	s.log.InfoContext(ctx, "record scored",
		logger.RecordID(rec.ID()),
		logger.Confidence(res.Confidence),
	)

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	if err := enc.Encode(res); err != nil {
		return err
	}

	if dumpMetrics {
		return writeMetrics(cmd.ErrOrStderr(), reg)
	}
	return nil
}

func writeMetrics(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
	}
	return nil
}

func readRecord(r io.Reader) (record.Record, error) {
	rec, err := record.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("read record: %w", err)
	}
	return rec, nil
}
