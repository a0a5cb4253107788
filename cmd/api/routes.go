package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"craftly/internal/config"
)

func newRoutesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "routes",
		Short: "Print the page routes built from the route registry",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newComponents(config.Load())
			if err != nil {
				return err
			}
			table, err := a.routeTable(cmd.Context())
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "METHOD\tPATH\tLOCALE\tPAGE\tSTATUS")
			for _, rt := range table {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", rt.Method, rt.Path, rt.Locale, rt.Entry.Page, rt.Entry.Status)
			}
			return w.Flush()
		},
	}
}
