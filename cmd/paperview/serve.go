package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"paperview/internal/config"
	"paperview/internal/log"
	"paperview/internal/model"
	"paperview/internal/server"
	"paperview/internal/site"
)

// NewServeCmd creates the serve command.
func NewServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve a live preview of the showcase page",
		Long: `Serve builds the site in memory and serves it over HTTP without writing
anything to disk.

With --watch, the server rebuilds when the configuration file or a
theme content path changes, and keeps serving the last good build if a
rebuild fails.

The preview always serves both exports, so /paper.md and /paper.json
are available regardless of the output settings.

Examples:
  # Preview on the default port
  paperview serve

  # Rebuild on config changes
  paperview serve --watch

  # Bind to a different address and port
  paperview serve --listen 0.0.0.0 --port 8080

  # Use a custom configuration file
  paperview serve -c myconfig.yaml --watch`,
		RunE: runServeCmd,
	}

	// Server flags
	cmd.Flags().String("listen", config.DefaultListenAddress,
		"Bind address for the preview server")
	cmd.Flags().IntP("port", "p", config.DefaultPort,
		"TCP port for the preview server")

	// Watch flags
	cmd.Flags().BoolP("watch", "w", false,
		"Rebuild when the config file or a theme content path changes")

	// Configuration file
	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .paperview in current or home directory)")

	return cmd
}

// runServeCmd executes the serve command.
func runServeCmd(cmd *cobra.Command, _ []string) error {
	// Build config from the config file and flags
	cfg, err := serveConfig(cmd)
	if err != nil {
		return err
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	// Set up structured logging
	verbose := getVerboseFlag(cmd)
	logger := log.NewLogger(os.Stderr, verbose)
	slog.SetDefault(logger)

	// Set up context with signal handling for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle interrupt signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		logger.Info("received shutdown signal, cancelling...")
		cancel()
	}()

	// Watch-triggered rebuilds re-read the configuration so a config
	// file edit takes effect without restarting the server.
	reload := func() (*config.Config, error) {
		return serveConfig(cmd)
	}

	return runServe(ctx, cfg, reload, logger)
}

// serveConfig creates a Config from the config file and serve command flags.
// Precedence: defaults, then the config file, then explicitly set flags.
func serveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.NewConfig()

	var err error

	cfg.ConfigFilePath, err = cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}

	if err := applyConfigFile(cfg); err != nil {
		return nil, err
	}

	// Flags override the config file only when the user actually set
	// them; reading them unconditionally would clobber file values
	// with flag defaults.
	if cmd.Flags().Changed("listen") {
		cfg.Listen, err = cmd.Flags().GetString("listen")
		if err != nil {
			return nil, err
		}
	}

	if cmd.Flags().Changed("port") {
		cfg.Port, err = cmd.Flags().GetInt("port")
		if err != nil {
			return nil, err
		}
	}

	watch, err := cmd.Flags().GetBool("watch")
	if err != nil {
		return nil, err
	}
	if watch {
		cfg.Watch = true
	}

	return cfg, nil
}

// runServe builds the site in memory and serves it until ctx is done.
func runServe(ctx context.Context, cfg *config.Config, reload func() (*config.Config, error), logger *slog.Logger) error {
	build, err := buildSite(ctx, cfg, logger)
	if err != nil {
		return err
	}

	srv := server.New(cfg.Addr(), build, server.WithLogger(logger))

	fmt.Printf("Preview server listening on http://%s\n", cfg.Addr())
	fmt.Println("Press Ctrl+C to stop.")

	if !cfg.Watch {
		return srv.Start(ctx)
	}

	// A rebuild replaces the served build only when the whole pipeline
	// succeeds; the watcher keeps the last good build on failure.
	rebuild := func(ctx context.Context) error {
		fresh, err := reload()
		if err != nil {
			return err
		}
		next, err := buildSite(ctx, fresh, logger)
		if err != nil {
			return err
		}
		srv.Swap(next)
		return nil
	}

	targets := watchTargets(cfg)
	watcher, err := server.NewWatcher(targets, rebuild,
		server.WithWatchDebounce(cfg.WatchDebounce),
		server.WithWatchLogger(logger),
	)
	if err != nil {
		if errors.Is(err, server.ErrNoWatchTargets) {
			fmt.Fprintln(os.Stderr, "Warning: no config file or theme content paths to watch; running without watch.")
			return srv.Start(ctx)
		}
		return fmt.Errorf("failed to start watcher: %w", err)
	}
	defer watcher.Close()

	fmt.Printf("Watching %d paths for changes\n", len(targets))

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return srv.Start(ctx) })
	g.Go(func() error { return watcher.Run(ctx) })
	return g.Wait()
}

// buildSite runs the build pipeline without the write step and keeps
// the artifacts in memory for the server to serve.
func buildSite(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*site.Build, error) {
	builder := site.DefaultBuilder(cfg,
		[]site.Option{site.WithLogger(logger)},
		site.WithBuildMaterialize(false),
		site.WithBuildMarkdown(true),
		site.WithBuildJSON(true),
	)

	build := site.NewBuild(model.Showcase(), cfg.Theme)
	if err := builder.Execute(ctx, build); err != nil {
		return nil, fmt.Errorf("failed to build site: %w", err)
	}

	return build, nil
}

// watchTargets collects the paths whose changes trigger a rebuild:
// the config file, when one exists, and the theme content paths.
func watchTargets(cfg *config.Config) []string {
	var targets []string

	if path := config.FindConfigFile(cfg.ConfigFilePath); path != "" {
		targets = append(targets, path)
	}
	targets = append(targets, cfg.Theme.Content...)

	return targets
}
