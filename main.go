package main

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/percona-lab/nodelist/config"
	"github.com/percona-lab/nodelist/errors"
	"github.com/percona-lab/nodelist/list"
	"github.com/percona-lab/nodelist/log"
	"github.com/percona-lab/nodelist/metrics"
	"github.com/percona-lab/nodelist/script"
)

func main() {
	err := newRootCmd().Execute()
	if err != nil {
		lg := zerolog.DefaultContextLogger
		if lg == nil {
			lg = log.New(zerolog.InfoLevel, false, false)
		}

		lg.Fatal().Err(err).Msg("")
	}
}

func newRootCmd() *cobra.Command {
	var (
		logLevelFlag string
		logJSON      bool
		logNoColor   bool

		metricsFile string
	)

	reg := prometheus.NewRegistry()
	metrics.Init(reg)

	rootCmd := &cobra.Command{
		Use:   "nodelist",
		Short: "Build and reshape linked lists from scripts",
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			logLevel, err := zerolog.ParseLevel(logLevelFlag)
			if err != nil {
				return errors.Wrap(err, "log level")
			}

			lg := log.InitGlobals(logLevel, logJSON, logNoColor)
			cmd.SetContext(lg.WithContext(cmd.Context()))

			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			if metricsFile == "" {
				return nil
			}

			err := metrics.WriteTextfile(metricsFile, reg)
			if err != nil {
				return errors.Wrap(err, "write metrics")
			}

			log.Debug(cmd.Context(), "Metrics written to "+metricsFile)

			return nil
		},
	}

	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true

	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "info", "Log level")
	rootCmd.PersistentFlags().BoolVar(&logJSON, "log-json", false, "Output log in JSON format")
	rootCmd.PersistentFlags().BoolVar(&logNoColor, "no-color", false, "Disable log color")
	rootCmd.PersistentFlags().StringVar(&metricsFile, "metrics-file", config.MetricsTextfile(),
		"Write Prometheus metrics to this file on exit")

	rootCmd.AddCommand(newRunCmd(), newEvalCmd(), newRenderCmd())

	return rootCmd
}

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run FILE...",
		Short: "Evaluate script files, each on its own set of lists",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, timeout, err := parseRunFlags(cmd.Flags())
			if err != nil {
				return err
			}

			return ctxWithTimeout(cmd.Context(), timeout, func(ctx context.Context) error {
				results, err := script.RunFiles(ctx, args, opts)
				if err != nil {
					return err //nolint:wrapcheck
				}

				err = writeResults(cmd.OutOrStdout(), results)
				if err != nil {
					return err
				}

				log.Infof(ctx, "Evaluated %d scripts", len(results))

				return nil
			})
		},
	}

	cmd.Flags().Int("jobs", config.Jobs(), "Number of scripts evaluated at once")
	cmd.Flags().Duration("timeout", config.DefaultTimeout, "Abort the run after this duration (0 for no limit)")
	cmd.Flags().String("max-line-size", humanize.IBytes(config.DefaultMaxLineSize), "Longest accepted script line")

	return cmd
}

func newEvalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "eval [LINE...]",
		Short: "Evaluate script lines given as arguments, or read from stdin",
		RunE: func(cmd *cobra.Command, args []string) error {
			in := script.New(cmd.OutOrStdout())

			if len(args) == 0 {
				return in.Run(cmd.Context(), "stdin", cmd.InOrStdin()) //nolint:wrapcheck
			}

			return in.Run(cmd.Context(), "args", strings.NewReader(strings.Join(args, "\n"))) //nolint:wrapcheck
		},
	}
}

func newRenderCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "render [VALUE...]",
		Short: "Render the list built from the given values",
		RunE: func(cmd *cobra.Command, args []string) error {
			l := list.FromSlice(args)

			_, err := fmt.Fprintf(cmd.OutOrStdout(), "%s\ndepth: %s\n", l, humanize.Comma(int64(l.Depth())))

			return errors.Wrap(err, "write output")
		},
	}
}

var errInvalidJobs = errors.New("jobs must be at least 1")

func parseRunFlags(flags *pflag.FlagSet) (script.RunOptions, time.Duration, error) {
	var opts script.RunOptions

	jobs, err := flags.GetInt("jobs")
	if err != nil {
		return opts, 0, err //nolint:wrapcheck
	}

	if jobs < 1 {
		return opts, 0, errInvalidJobs
	}

	timeout, err := flags.GetDuration("timeout")
	if err != nil {
		return opts, 0, err //nolint:wrapcheck
	}

	sizeFlag, err := flags.GetString("max-line-size")
	if err != nil {
		return opts, 0, err //nolint:wrapcheck
	}

	size, err := humanize.ParseBytes(sizeFlag)
	if err != nil {
		return opts, 0, errors.Wrap(err, "invalid max-line-size value")
	}

	opts.Jobs = jobs
	opts.MaxLineSize = int(max(size, 1)) //nolint:gosec

	return opts, timeout, nil
}

// writeResults prints the outputs in order. With more than one script each
// output gets a header naming its file.
func writeResults(w io.Writer, results []script.Result) error {
	for i, res := range results {
		if len(results) > 1 {
			sep := "\n"
			if i == 0 {
				sep = ""
			}

			if _, err := fmt.Fprintf(w, "%s==> %s <==\n", sep, res.Path); err != nil {
				return errors.Wrap(err, "write output")
			}
		}

		if _, err := w.Write(res.Output); err != nil {
			return errors.Wrap(err, "write output")
		}
	}

	return nil
}

// ctxWithTimeout invokes fn with ctx bounded by dur. A zero dur leaves ctx
// unbounded.
func ctxWithTimeout(ctx context.Context, dur time.Duration, fn func(context.Context) error) error {
	if ctx == nil {
		ctx = context.Background()
	}

	if dur <= 0 {
		return fn(ctx)
	}

	timeoutCtx, cancelTimeout := context.WithTimeout(ctx, dur)
	defer cancelTimeout()

	return fn(timeoutCtx)
}
