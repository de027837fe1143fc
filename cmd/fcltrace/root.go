package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/fcltrace/config"
	"github.com/katalvlaran/fcltrace/core"
	"github.com/katalvlaran/fcltrace/fixture"
	"github.com/katalvlaran/fcltrace/tracing"
)

// rootOptions holds the persistent flags and what PersistentPreRunE resolves
// from them.
type rootOptions struct {
	configPath string
	traceType  string
	logLevel   string
	logFormat  string

	cfg          *config.Config
	logger       *slog.Logger
	traceTypeSet bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "fcltrace",
		Short: "Score and trace food-supply-chain snapshots",
		Long: `fcltrace reads a supply-chain snapshot (stations, deliveries and the
connections routing lots through stations) from a YAML fixture and computes
outbreak scores, forward/backward trace marks or delivery date ranges.

Configuration precedence: flags > fixture settings > config file > defaults.

Examples:
  fcltrace score outbreak.yaml
  fcltrace trace outbreak.yaml --trace-type DO_NOT_CONSIDER_DELIVERY_DATES
  fcltrace generate --topology random --stations 50 --p 0.1 --seed 7 --outbreaks 3`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return opts.load(cmd)
		},
	}

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "",
		"Path to a YAML config file")
	cmd.PersistentFlags().StringVar(&opts.traceType, "trace-type", "",
		"Cross-contamination trace type (USE_EXPLICIT_DELIVERY_DATES, USE_INFERED_DELIVERY_DATES_LIMITS, DO_NOT_CONSIDER_DELIVERY_DATES)")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "",
		"Log level: debug, info, warn, error")
	cmd.PersistentFlags().StringVar(&opts.logFormat, "log-format", "",
		"Log format: text, json")

	cmd.AddCommand(newScoreCmd(opts))
	cmd.AddCommand(newTraceCmd(opts))
	cmd.AddCommand(newDatesCmd(opts))
	cmd.AddCommand(newGenerateCmd(opts))

	return cmd
}

// load resolves config file, flag overrides and the logger.
func (o *rootOptions) load(cmd *cobra.Command) error {
	cfg := config.Default()
	if o.configPath != "" {
		loaded, err := config.Load(o.configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("trace-type") {
		cfg.CrossContTraceType = o.traceType
		o.traceTypeSet = true
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = o.logLevel
	}
	if flags.Changed("log-format") {
		cfg.LogFormat = o.logFormat
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	o.cfg = cfg
	o.logger = cfg.NewLogger(cmd.ErrOrStderr())

	return nil
}

// engine returns a tracing engine logging through the resolved logger.
func (o *rootOptions) engine() *tracing.Engine {
	return tracing.NewEngine(tracing.WithLogger(o.logger))
}

// loadSnapshot reads the fixture at path and resolves the settings for it.
func (o *rootOptions) loadSnapshot(path string) (*core.Snapshot, tracing.Settings, error) {
	doc, err := fixture.Load(path)
	if err != nil {
		return nil, tracing.Settings{}, err
	}
	s, err := doc.Snapshot()
	if err != nil {
		return nil, tracing.Settings{}, fmt.Errorf("%s: %w", path, err)
	}

	settings, err := o.cfg.Settings()
	if err != nil {
		return nil, tracing.Settings{}, err
	}
	if !o.traceTypeSet {
		if settings, err = doc.TraceSettings(settings); err != nil {
			return nil, tracing.Settings{}, fmt.Errorf("%s: %w", path, err)
		}
	}

	st := s.Stats()
	o.logger.Info("fixture loaded",
		slog.String("path", path),
		slog.Int("stations", st.StationCount),
		slog.Int("deliveries", st.DeliveryCount),
		slog.Int("outbreaks", st.OutbreakCount),
		slog.String("trace_type", settings.CrossContTraceType.String()),
	)

	return s, settings, nil
}
