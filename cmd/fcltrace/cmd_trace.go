package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/fcltrace/fixture"
)

func newTraceCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "trace FIXTURE",
		Short: "Mark what lies downstream/upstream of observed elements",
		Long: `Starting from every station or delivery whose observed type is FORWARD,
BACKWARD or FULL, mark the stations and deliveries reachable in that direction.

Examples:
  fcltrace trace outbreak.yaml
  fcltrace trace outbreak.yaml --trace-type USE_EXPLICIT_DELIVERY_DATES`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, settings, err := opts.loadSnapshot(args[0])
			if err != nil {
				return err
			}

			tr, err := opts.engine().UpdateTrace(cmd.Context(), s, settings)
			if err != nil {
				return err
			}
			opts.logger.Info("trace computed",
				slog.Int("forward_stations", len(tr.ForwardStations())),
				slog.Int("backward_stations", len(tr.BackwardStations())),
			)

			return fixture.Encode(cmd.OutOrStdout(), fixture.NewReport(settings, nil, tr))
		},
	}
}
