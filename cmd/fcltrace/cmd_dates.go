package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/fcltrace/fixture"
)

func newDatesCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "dates FIXTURE",
		Short: "Show explicit and propagated delivery date ranges",
		Long: `Print, for every delivery, the date ranges read from the fixture
(exp_out, exp_in), the ranges narrowed along station connections
(comp_out, comp_in) and whether an explicit date was found implausible.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, _, err := opts.loadSnapshot(args[0])
			if err != nil {
				return err
			}
			ranges := opts.engine().DateRanges(cmd.Context(), s)

			return fixture.Encode(cmd.OutOrStdout(), fixture.NewDatesReport(ranges))
		},
	}
}
