package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/dshills/pbt/pkg/collect"
	"github.com/dshills/pbt/pkg/quantifier"
	"github.com/dshills/pbt/pkg/report"
	"github.com/dshills/pbt/pkg/runner"
)

var (
	seedFlag        uint64
	formatFlag      string
	metricsAddrFlag string
	configFlag      string
	verboseFlag     bool
)

var validFormats = map[string]bool{"text": true, "json": true, "svg": true}

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check <path>...",
		Short: "Collect every registered property under the given paths and run it",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runCheck,
	}
	cmd.Flags().Uint64Var(&seedFlag, "seed", 0, "override the run seed (0 = derive from time)")
	cmd.Flags().StringVar(&formatFlag, "format", "text", "summary format: text, json, or svg")
	cmd.Flags().StringVar(&metricsAddrFlag, "metrics-addr", "", "serve Prometheus /metrics on this address while running")
	cmd.Flags().StringVar(&configFlag, "config", "", "optional YAML config file (seed, metrics_addr defaults)")
	cmd.Flags().BoolVarP(&verboseFlag, "verbose", "v", false, "log every sample as it completes")
	return cmd
}

func runCheck(cmd *cobra.Command, args []string) error {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).With().Timestamp().Logger()

	seed := seedFlag
	metricsAddr := metricsAddrFlag
	if configFlag != "" {
		cfg, err := loadFileConfig(configFlag)
		if err != nil {
			return err
		}
		if seed == 0 {
			seed = cfg.Seed
		}
		if metricsAddr == "" {
			metricsAddr = cfg.MetricsAddr
		}
	}

	if !validFormats[formatFlag] {
		return fmt.Errorf("invalid format %q, must be one of: text, json, svg", formatFlag)
	}

	ctx := cmd.Context()

	if metricsAddr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())
		srv := &http.Server{Addr: metricsAddr, Handler: mux}
		go func() {
			logger.Info().Str("addr", metricsAddr).Msg("serving /metrics")
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				logger.Error().Err(err).Msg("metrics server stopped")
			}
		}()
		defer srv.Close()
	}

	props, err := collect.Collect(ctx, args)
	if err != nil {
		return fmt.Errorf("failed to collect properties: %w", err)
	}
	if len(props) == 0 {
		logger.Warn().Strs("paths", args).Msg("no registered properties found under the given paths")
	}

	var r *runner.Runner
	if verboseFlag {
		r = runner.NewRunnerWithEventSink(seed, func(e runner.Event) {
			logger.Debug().
				Str("property", e.Property).
				Int("sample", e.Index).
				Str("outcome", e.Outcome.Kind.String()).
				Msg("sample")
		})
	} else {
		r = runner.NewRunner(seed)
	}

	logger.Info().Uint64("seed", r.Seed()).Int("properties", len(props)).Msg("running")

	summary, err := r.Run(ctx, props)
	if err != nil {
		return fmt.Errorf("run aborted: %w", err)
	}
	recordMetrics(summary)

	if err := emit(summary); err != nil {
		return err
	}

	if !summary.AllPassed() {
		os.Exit(1)
	}
	return nil
}

func emit(summary *runner.Summary) error {
	switch formatFlag {
	case "json":
		data, err := report.JSON(summary)
		if err != nil {
			return err
		}
		fmt.Println(string(data))
	case "svg":
		data, err := report.SVG(summary, report.DefaultSVGOptions())
		if err != nil {
			return err
		}
		os.Stdout.Write(data)
	default:
		printText(summary)
	}
	return nil
}

func printText(summary *runner.Summary) {
	fmt.Printf("seed=%d\n\n", summary.Seed)
	for _, r := range summary.Results {
		switch r.Status {
		case runner.StatusPassed:
			fmt.Printf("%-30s PASSED  (%d samples)\n", r.Name, r.SamplesRun)
		case runner.StatusFailed:
			fmt.Printf("%-30s FAILED  (%d samples) - %s\n", r.Name, r.SamplesRun, r.Failing)
		case runner.StatusErrored:
			fmt.Printf("%-30s ERRORED (%d samples) - %v\n", r.Name, r.SamplesRun, r.Err)
		}
	}
	samples, counterexamples, predicateErrors := 0, 0, 0
	for _, r := range summary.Results {
		samples += r.SamplesRun
		if r.Failing == nil {
			continue
		}
		switch r.Failing.Kind {
		case quantifier.CounterExample:
			counterexamples++
		case quantifier.PredicateErrorKind:
			predicateErrors++
		}
	}
	fmt.Printf("\n%d properties, %d samples, %d counterexamples, %d predicate errors\n",
		len(summary.Results), samples, counterexamples, predicateErrors)
	fmt.Printf("%d passed, %d failed, seed=%d\n", summary.Passed(), summary.Failed(), summary.Seed)
}
