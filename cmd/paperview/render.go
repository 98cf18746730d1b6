package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"paperview/internal/config"
	"paperview/internal/model"
	"paperview/internal/render"
)

// NewRenderCmd creates the render command.
func NewRenderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the paper in a single format",
		Long: `Render writes the paper in one format without running a full site build.

The html format produces the standalone page with the stylesheet and
reveal script inlined, so the output is a single self-contained file.
The markdown and json formats produce the same exports a site build
writes, except that json output carries the tool version that produced
it.

Examples:
  # Print the standalone page
  paperview render

  # Write the Markdown export to a file
  paperview render -f markdown -o paper.md

  # Print compact JSON
  paperview render -f json

  # Print indented JSON
  paperview render -f json --pretty`,
		RunE: runRenderCmd,
	}

	cmd.Flags().StringP("format", "f", string(config.FormatHTML),
		"Output format: html, markdown, or json")
	cmd.Flags().StringP("output", "o", "",
		"Write output to specified file path (creates directories if needed)")
	cmd.Flags().Bool("pretty", false,
		"Indent JSON output (ignored for other formats)")
	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .paperview in current or home directory)")

	return cmd
}

// runRenderCmd executes the render command.
func runRenderCmd(cmd *cobra.Command, _ []string) error {
	formatFlag, err := cmd.Flags().GetString("format")
	if err != nil {
		return err
	}
	format, err := config.ParseFormat(formatFlag)
	if err != nil {
		return err
	}

	outputPath, err := cmd.Flags().GetString("output")
	if err != nil {
		return err
	}

	pretty, err := cmd.Flags().GetBool("pretty")
	if err != nil {
		return err
	}

	// The page needs styling tokens, so the config file applies here
	// the same way it does for a full build.
	cfg := config.NewConfig()
	cfg.ConfigFilePath, err = cmd.Flags().GetString("config")
	if err != nil {
		return err
	}
	if err := applyConfigFile(cfg); err != nil {
		return err
	}
	if err := cfg.Theme.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	return renderPaper(cfg, format, outputPath, pretty)
}

// renderPaper writes the paper in the requested format.
func renderPaper(cfg *config.Config, format config.Format, outputPath string, pretty bool) error {
	// Determine output destination
	var output *os.File
	if outputPath != "" {
		// Create directories if they don't exist
		dir := filepath.Dir(outputPath)
		if dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0750); err != nil {
				return fmt.Errorf("failed to create output directory: %w", err)
			}
		}

		f, err := os.OpenFile(outputPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		output = f
	} else {
		output = os.Stdout
	}

	paper := model.Showcase()

	switch format {
	case config.FormatMarkdown:
		_, err := render.NewMarkdownWriter(output).Write(paper)
		return err

	case config.FormatJSON:
		opts := []render.JSONWriterOption{render.WithVersion(getVersion())}
		if pretty {
			opts = append(opts, render.WithPrettyPrint())
		}
		_, err := render.NewJSONWriter(output, opts...).Write(paper)
		return err

	default:
		// ParseFormat admits exactly three formats; this is html.
		_, err := render.NewHTMLWriter(output, render.WithTheme(cfg.Theme)).Write(paper)
		return err
	}
}
