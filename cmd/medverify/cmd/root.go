package cmd

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/medverify/pkg/config"
	"github.com/dmitrymomot/medverify/pkg/logger"
	"github.com/dmitrymomot/medverify/pkg/reference"
	"github.com/dmitrymomot/medverify/pkg/runid"
)

// session is the state shared by subcommands of one invocation.
type session struct {
	tablesPath string

	cfg config.App
	log *slog.Logger
}

// NewRootCmd builds the medverify command tree.
func NewRootCmd() *cobra.Command {
	s := &session{}

	root := &cobra.Command{
		Use:   "medverify",
		Short: "Score healthcare provider records",
		Long: `medverify scores a single provider record against the reference tables
and reports a 0-100 confidence score with the list of failed checks.

Checks:
  required_fields - every required field present and non-blank (gate)
  phone           - Indian mobile or landline number
  pincode         - 6-digit postal code without leading zero
  specialty       - approved specialty, case-insensitive
  registration    - 2-4 letter council prefix followed by 5-11 digits`,
		SilenceUsage:      true,
		PersistentPreRunE: s.setup,
	}

	root.PersistentFlags().StringVar(&s.tablesPath, "tables", "", "Reference tables YAML (default: $MEDVERIFY_TABLES_PATH or built-in)")

	root.AddCommand(
		newValidateCmd(s),
		newTablesCmd(s),
		newCityCmd(s),
	)
	return root
}

// Execute runs the command tree against os.Args.
func Execute() error {
	return NewRootCmd().Execute()
}

// setup loads configuration and the logger, and tags the run with an ID.
func (s *session) setup(cmd *cobra.Command, _ []string) error {
	if err := config.Load(&s.cfg); err != nil {
		return err
	}

	opts, err := s.cfg.LoggerOptions()
	if err != nil {
		return err
	}
	opts = append(opts,
		logger.WithOutput(cmd.ErrOrStderr()),
		logger.WithContextExtractors(runid.LoggerExtractor()),
	)
	s.log = logger.New(opts...)

	cmd.SetContext(runid.WithContext(cmd.Context(), runid.New()))
	return nil
}

// tables resolves the reference tables: flag, then environment, then built-in.
func (s *session) tables(cmd *cobra.Command) (*reference.Tables, error) {
	path := s.tablesPath
	if path == "" {
		path = s.cfg.TablesPath
	}
	if path == "" {
		return reference.Default(), nil
	}

	tables, err := reference.LoadFile(path)
	if err != nil {
		s.log.ErrorContext(cmd.Context(), "failed to load reference tables", logger.Path(path), logger.Error(err))
		return nil, err
	}
	s.log.DebugContext(cmd.Context(), "reference tables loaded", logger.Path(path))
	return tables, nil
}
