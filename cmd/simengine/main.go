// Command simengine is the cobra-based CLI front end for the simulator:
// a headless batch runner and an HTTP/WebSocket server, both built on
// the same engine.Engine the core package tests exercise directly.
package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/metalogic/simcore/config"
	"github.com/metalogic/simcore/engine"
	"github.com/metalogic/simcore/netlist"
	"github.com/metalogic/simcore/simhost"
	"github.com/metalogic/simcore/telemetry"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "simengine",
		Short: "Discrete-event digital logic simulator",
	}
	root.AddCommand(newRunCmd(), newServeCmd())
	return root
}

func newRunCmd() *cobra.Command {
	var netlistPath string
	var steps int
	var configPath string
	var logLevel string

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run a netlist headless for a fixed number of ticks and print the final snapshot",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			log := telemetry.NewLogger("simengine-run", logLevel)

			data, err := os.ReadFile(netlistPath)
			if err != nil {
				return fmt.Errorf("read netlist file %s: %w", netlistPath, err)
			}
			n, err := netlist.DecodeNetlist(data)
			if err != nil {
				return err
			}

			reg := prometheus.NewRegistry()
			metrics := telemetry.NewMetrics(reg)

			eng := engine.New(cfg)
			eng.Initialize(n)
			var totalProcessed uint64
			for i := 0; i < steps; i++ {
				totalProcessed += eng.Step()
			}
			metrics.EventsProcessed.Add(float64(totalProcessed))
			metrics.StepsTotal.Add(float64(steps))

			snap := eng.Snapshot()
			metrics.CurrentTime.Set(float64(snap.Time))
			log.Info().
				Uint64("time", snap.Time).
				Int("gates", len(snap.Gates)).
				Uint64("events_processed", totalProcessed).
				Msg("run complete")

			out, err := netlist.EncodeSnapshot(snap)
			if err != nil {
				return err
			}
			fmt.Println(string(out))
			return nil
		},
	}

	cmd.Flags().StringVar(&netlistPath, "netlist", "", "path to a netlist JSON file (required)")
	cmd.Flags().IntVar(&steps, "steps", 1, "number of simulation ticks to run")
	cmd.Flags().StringVar(&configPath, "config", "", "optional path to a TOML config file")
	cmd.Flags().StringVar(&logLevel, "log-level", "info", "zerolog level (debug, info, warn, error)")
	_ = cmd.MarkFlagRequired("netlist")

	return cmd
}

func newServeCmd() *cobra.Command {
	var addr string
	var configPath string
	var logLevel string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the simulator over HTTP and WebSocket",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			log := telemetry.NewLogger("simengine-serve", logLevel)

			reg := prometheus.NewRegistry()
			metrics := telemetry.NewMetrics(reg)
			host := simhost.New(cfg, log, metrics)

			mux := http.NewServeMux()
			mux.Handle("/", host.Handler())
			mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

			log.Info().Str("addr", addr).Msg("listening")
			return http.ListenAndServe(addr, mux)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "address to listen on")
	cmd.Flags().StringVar(&configPath, "config", "", "optional path to a TOML config file")
	cmd.Flags().StringVar(&logLevel, "log-level", "info", "zerolog level (debug, info, warn, error)")

	return cmd
}

func loadConfig(path string) (config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.LoadFile(path)
}
