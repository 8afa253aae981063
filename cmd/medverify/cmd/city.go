package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/medverify/pkg/sanitizer"
)

// ErrCityNotFound is returned when neither lookup table knows the input.
var ErrCityNotFound = errors.New("city not found")

func newCityCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "city <name-or-pincode>",
		Short: "Resolve a city from a misspelling or a pincode",
		Long: `Looks the argument up in the sample reference tables. Digits are treated
as a pincode, anything else as a city name that may be misspelled.`,
		Example: `  medverify city Banglore
  medverify city 560001`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tables, err := s.tables(cmd)
			if err != nil {
				return err
			}

			query := args[0]
			var (
				city string
				ok   bool
			)
			if isPincode(query) {
				city, ok = tables.CityForPincode(query)
			} else {
				city, ok = tables.CanonicalCity(query)
			}
			if !ok {
				return fmt.Errorf("%w: %q", ErrCityNotFound, query)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), city)
			return err
		},
	}
}

func isPincode(s string) bool {
	s = sanitizer.NormalizePostalCode(s)
	return s != "" && strings.Trim(s, "0123456789") == ""
}
