// Package cli wires the lvxtal commands: configuration, logging, metrics
// and the reflectors, spacegroup, batch and watch subcommands.
package cli

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvxtal/batch"
	"github.com/katalvlaran/lvxtal/internal/config"
	"github.com/katalvlaran/lvxtal/internal/logging"
)

// Version is injected at build time via -ldflags.
var Version = "dev"

// app carries what PersistentPreRunE builds to the subcommands.
type app struct {
	configPath string

	cfg     *config.Config
	log     logging.Logger
	reg     *prometheus.Registry
	metrics *batch.Metrics
	server  *http.Server
}

// NewRootCommand builds the command tree. Each call returns an independent
// tree, so tests can run commands side by side.
func NewRootCommand() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "lvxtal",
		Short:         "Symmetry-aware diffraction reflector generation",
		Long:          "lvxtal computes the allowed, symmetry-reduced diffraction reflectors of a crystal phase\nfrom its space group, unit cell and atom sites.",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			return a.teardown()
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "config file (default .lvxtal.yaml in . or $HOME)")
	pf.String("log-level", "info", "log level (debug, info, warn, error)")
	pf.String("log-format", "console", "log format (console, json)")
	pf.String("metrics-addr", "", "serve Prometheus metrics on this address, e.g. :9100")

	root.AddCommand(
		newReflectorsCommand(a),
		newSpaceGroupCommand(a),
		newBatchCommand(a),
		newWatchCommand(a),
	)

	return root
}

// Execute runs the command tree under ctx.
func Execute(ctx context.Context, args []string) error {
	root := NewRootCommand()
	root.SetArgs(args)

	return root.ExecuteContext(ctx)
}

// setup loads the configuration, builds the logger and starts the metrics
// endpoint when one is configured.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath, cmd.Flags())
	if err != nil {
		return err
	}
	a.cfg = cfg

	log, err := logging.NewLogger(cfg.Log)
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	a.log = log.Named("lvxtal")
	if cfg.File != "" {
		a.log.Debug("config loaded", logging.String("file", cfg.File))
	}

	a.reg = prometheus.NewRegistry()
	a.reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	if a.metrics, err = batch.NewMetrics(a.reg); err != nil {
		return err
	}

	if cfg.Metrics.Addr != "" {
		return a.serveMetrics(cfg.Metrics.Addr)
	}

	return nil
}

func (a *app) serveMetrics(addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("metrics: %w", err)
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(a.reg, promhttp.HandlerOpts{EnableOpenMetrics: true}))
	a.server = &http.Server{Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		if err := a.server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.log.Error("metrics server stopped", logging.Err(err))
		}
	}()
	a.log.Info("serving metrics", logging.String("addr", ln.Addr().String()))

	return nil
}

func (a *app) teardown() error {
	if a.server == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return a.server.Shutdown(ctx)
}

// addComputeFlags registers the ComputeReflectors flags that config.Load binds.
func addComputeFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.Int("max-index", 3, "largest |h|, |k|, |l| enumerated")
	f.Float64("min-intensity", 0.01, "drop reflectors weaker than this fraction of the strongest")
	f.String("model", "xray", "scattering model (xray, electron, constant)")
	f.String("range-policy", "strict", "beyond the fitted s range: strict or extrapolate")
}
