package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"cleancore/internal/config"
	"cleancore/internal/core"
	"cleancore/internal/logging"
	"cleancore/plugins/aviary"
)

// errSilent signals a failure whose output has already been written.
var errSilent = errors.New("silent failure")

type metricsDumper interface {
	WriteTo(w io.Writer) (int64, error)
}

type app struct {
	getenv      func(string) string
	verbose     bool
	dumpMetrics bool
	metricsFlag string

	logger  *logging.Logger
	service *core.Service
	metrics metricsDumper
}

func newRootCmd(getenv func(string) string) (*cobra.Command, *app) {
	a := &app{getenv: getenv}
	root := &cobra.Command{
		Use:           "cleancore",
		Short:         "Validate catalogue records and classify bird capabilities",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd.ErrOrStderr())
		},
	}
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable debug logging")
	root.PersistentFlags().BoolVar(&a.dumpMetrics, "metrics", false, "Print collected metrics on exit")
	root.PersistentFlags().StringVar(&a.metricsFlag, "metrics-driver", "", "Metrics backend: none|expvar|prometheus (overrides CLEANCORE_METRICS)")

	root.AddCommand(
		newValidateCmd(a),
		newDescribeCmd(a),
		newBirdsCmd(a),
		newPayCmd(a),
	)
	return root, a
}

// execute runs the command tree and always tears down, so metrics are dumped
// and logs flushed on the failure path too.
func (a *app) execute(root *cobra.Command) error {
	err := root.Execute()
	if terr := a.teardown(root.OutOrStdout()); terr != nil && err == nil {
		err = terr
	}
	return err
}

func (a *app) setup(stderr io.Writer) error {
	cfg, err := config.LoadFrom(a.getenv)
	if err != nil {
		return err
	}
	if a.verbose {
		cfg.LogLevel = "debug"
	}
	if a.metricsFlag != "" {
		driver, err := config.ParseMetricsDriver(a.metricsFlag)
		if err != nil {
			return err
		}
		cfg.Metrics = driver
	}
	if a.dumpMetrics && cfg.Metrics == config.MetricsNone {
		cfg.Metrics = config.MetricsPrometheus
	}

	logger, err := logging.NewProduction(cfg.LogLevel)
	if err != nil {
		return err
	}
	a.logger = logger

	opts := []core.Option{core.WithLogger(logger)}
	switch cfg.Metrics {
	case config.MetricsExpvar:
		rec := core.NewExpvarMetricsRecorder("")
		a.metrics = rec
		opts = append(opts, core.WithMetrics(rec))
	case config.MetricsPrometheus:
		rec, err := core.NewPrometheusMetricsRecorder(nil)
		if err != nil {
			return err
		}
		a.metrics = rec
		opts = append(opts, core.WithMetrics(rec))
	}
	if cfg.Trace {
		if stderr == nil {
			stderr = os.Stderr
		}
		opts = append(opts, core.WithTracer(core.NewJSONTracer(stderr)))
	}

	a.service = core.NewService(core.NewDefaultRulesEngine(), opts...)
	if _, err := a.service.InstallPlugin(aviary.New()); err != nil {
		return fmt.Errorf("install aviary plugin: %w", err)
	}
	return nil
}

func (a *app) teardown(stdout io.Writer) error {
	if a.dumpMetrics && a.metrics != nil {
		if _, err := a.metrics.WriteTo(stdout); err != nil {
			return err
		}
	}
	if a.logger != nil {
		// stderr sync fails on some terminals; nothing useful to report.
		_ = a.logger.Sync()
	}
	return nil
}
