package main

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"craftly/internal/config"
	"craftly/internal/locale"
)

func newLangsCmd() *cobra.Command {
	langs := &cobra.Command{
		Use:   "langs",
		Short: "Inspect locale dictionaries",
	}

	langs.AddCommand(&cobra.Command{
		Use:   "compare <code>",
		Short: "Report missing and extra translation keys for a locale",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newComponents(config.Load())
			if err != nil {
				return err
			}
			dicts, err := a.locales.Dictionaries(cmd.Context())
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(locale.Compare(args[0], dicts))
		},
	})
	return langs
}
