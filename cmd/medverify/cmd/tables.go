package cmd

import (
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newTablesCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "tables",
		Short: "Print the reference tables in effect",
		Long: `Prints the reference tables as YAML. The output can be edited and passed
back with --tables or MEDVERIFY_TABLES_PATH.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tables, err := s.tables(cmd)
			if err != nil {
				return err
			}

			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err := enc.Encode(tables.Document()); err != nil {
				return err
			}
			return enc.Close()
		},
	}
}
