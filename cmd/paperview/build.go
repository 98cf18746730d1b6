package main

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"paperview/internal/config"
	"paperview/internal/inspect"
	"paperview/internal/log"
	"paperview/internal/model"
	"paperview/internal/site"
)

// NewBuildCmd creates the build command.
func NewBuildCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build the showcase site into the output directory",
		Long: `Build renders the showcase page and writes it to the output directory
together with its fingerprinted stylesheet and reveal script.

The page content is fixed. Styling tokens (colors, the font stack,
shadow presets) come from the configuration file and can be tuned
without touching the renderer.

Examples:
  # Build into dist/
  paperview build

  # Build into a different directory and wipe it first
  paperview build -o public --clean

  # Include the Markdown and JSON exports
  paperview build --markdown --json

  # Inline the stylesheet and script into a single index.html
  paperview build --standalone

  # Use a custom configuration file
  paperview build -c myconfig.yaml`,
		RunE: runBuildCmd,
	}

	// Output flags
	cmd.Flags().StringP("output", "o", config.DefaultOutputDir,
		"Output directory for the built site")
	cmd.Flags().Bool("clean", false,
		"Remove the output directory before building")
	cmd.Flags().Bool("standalone", false,
		"Inline the stylesheet and script into index.html")

	// Export flags
	cmd.Flags().BoolP("markdown", "m", false,
		"Write the Markdown export (paper.md) alongside the page")
	cmd.Flags().BoolP("json", "j", false,
		"Write the JSON export (paper.json) alongside the page")

	// Configuration file
	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .paperview in current or home directory)")

	return cmd
}

// runBuildCmd executes the build command.
func runBuildCmd(cmd *cobra.Command, _ []string) error {
	// Build config from the config file and flags
	cfg, err := buildConfig(cmd)
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

	standalone, err := cmd.Flags().GetBool("standalone")
	if err != nil {
		return err
	}

	return runBuild(ctx, cfg, standalone, logger)
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// buildConfig creates a Config from the config file and build command flags.
// Precedence: defaults, then the config file, then explicitly set flags.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
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
	if cmd.Flags().Changed("output") {
		cfg.OutputDir, err = cmd.Flags().GetString("output")
		if err != nil {
			return nil, err
		}
	}

	markdown, err := cmd.Flags().GetBool("markdown")
	if err != nil {
		return nil, err
	}
	if markdown {
		cfg.Markdown = true
	}

	jsonExport, err := cmd.Flags().GetBool("json")
	if err != nil {
		return nil, err
	}
	if jsonExport {
		cfg.JSON = true
	}

	cfg.Clean, err = cmd.Flags().GetBool("clean")
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyConfigFile locates the configuration file and overlays it onto cfg.
// If the user explicitly specified a config file path, a missing file is
// an error. If no path was specified, a missing file silently keeps the
// defaults.
func applyConfigFile(cfg *config.Config) error {
	explicitConfigPath := cfg.ConfigFilePath != ""
	configPath := config.FindConfigFile(cfg.ConfigFilePath)

	if configPath == "" {
		if explicitConfigPath {
			// User explicitly specified a config file that doesn't exist
			return fmt.Errorf("configuration file not found: %s", cfg.ConfigFilePath)
		}
		return nil
	}

	file, err := config.LoadConfigFile(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config file %s: %w", configPath, err)
	}
	cfg.ApplyFile(file)

	return nil
}

// runBuild executes the site build.
func runBuild(ctx context.Context, cfg *config.Config, standalone bool, logger *slog.Logger) error {
	logger.Info("starting build",
		"outputDir", cfg.OutputDir,
		"markdown", cfg.Markdown,
		"json", cfg.JSON,
		"standalone", standalone,
	)

	builder := site.DefaultBuilder(cfg,
		[]site.Option{site.WithLogger(logger)},
		site.WithBuildStandalone(standalone),
	)
	build := site.NewBuild(model.Showcase(), cfg.Theme)

	fmt.Printf("Building site into %s...\n", cfg.OutputDir)
	startTime := time.Now()

	// Execute the build pipeline
	if err := builder.Execute(ctx, build); err != nil {
		return fmt.Errorf("build failed: %w", err)
	}

	elapsed := time.Since(startTime)
	fmt.Printf("Build completed in %s\n\n", elapsed.Round(time.Millisecond))

	printArtifacts(build)

	if err := printPageSummary(build); err != nil {
		logger.Error("page summary failed", "error", err)
	}

	return nil
}

// printArtifacts lists the built files with their sizes.
func printArtifacts(build *site.Build) {
	paths := build.Paths()

	fmt.Printf("Artifacts (%d files, %d bytes):\n", len(paths), build.TotalBytes())
	for _, p := range paths {
		if data, ok := build.Artifact(p); ok {
			fmt.Printf("  %-28s %8d bytes\n", p, len(data))
		}
	}
}

// printPageSummary parses the rendered page back and reports its
// structure, confirming the layout came out as expected.
func printPageSummary(build *site.Build) error {
	page, ok := build.Artifact(build.PagePath)
	if !ok {
		return fmt.Errorf("page artifact missing: %s", build.PagePath)
	}

	outline, err := inspect.Parse(bytes.NewReader(page))
	if err != nil {
		return fmt.Errorf("failed to parse page: %w", err)
	}

	cards := len(outline.ElementsWithClass("finding-card"))
	rows := 0
	if table := outline.TableWithClass("results-table"); table != nil {
		rows = len(table.Rows)
	}
	refs := len(outline.ElementsWithClass("ref-label"))

	fmt.Printf("\nPage %q:\n", outline.Title)
	fmt.Printf("  %d finding cards, %d result rows, %d references\n", cards, rows, refs)

	if broken := outline.UnresolvedFragments(); len(broken) > 0 {
		fmt.Printf("  Warning: %d unresolved fragment links: %v\n", len(broken), broken)
	}

	return nil
}
