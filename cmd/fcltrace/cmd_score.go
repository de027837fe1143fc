package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/fcltrace/fixture"
)

func newScoreCmd(opts *rootOptions) *cobra.Command {
	var withTrace bool

	cmd := &cobra.Command{
		Use:   "score FIXTURE",
		Short: "Compute outbreak scores and common links",
		Long: `Compute, for every station and delivery, the fraction of outbreak
stations from which it is reachable backward. Stations reached from every
outbreak are reported as common links.

Examples:
  fcltrace score outbreak.yaml
  fcltrace score outbreak.yaml --with-trace`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, settings, err := opts.loadSnapshot(args[0])
			if err != nil {
				return err
			}

			eng := opts.engine()
			scores, err := eng.UpdateScores(cmd.Context(), s, settings)
			if err != nil {
				return err
			}
			opts.logger.Info("scores computed",
				slog.Int("outbreaks", scores.Outbreaks),
				slog.Int("common_links", len(scores.CommonLinks())),
			)

			if !withTrace {
				return fixture.Encode(cmd.OutOrStdout(), fixture.NewReport(settings, scores, nil))
			}
			tr, err := eng.UpdateTrace(cmd.Context(), s, settings)
			if err != nil {
				return err
			}

			return fixture.Encode(cmd.OutOrStdout(), fixture.NewReport(settings, scores, tr))
		},
	}

	cmd.Flags().BoolVar(&withTrace, "with-trace", false,
		"Also compute forward/backward trace marks")

	return cmd
}
