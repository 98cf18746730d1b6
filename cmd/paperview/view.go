package main

import (
	"bytes"
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"paperview/internal/model"
	"paperview/internal/render"
)

// NewViewCmd creates the view command.
func NewViewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view",
		Short: "Read the paper in the terminal",
		Long: `View renders the Markdown export straight to the terminal with inline
styling, for reading the paper without a browser.

Examples:
  # Read the paper
  paperview view

  # Wrap at a narrower width
  paperview view --width 72

  # Plain Markdown without terminal styling
  paperview view --plain`,
		RunE: runViewCmd,
	}

	cmd.Flags().Int("width", 80, "Wrap width for terminal rendering")
	cmd.Flags().Bool("plain", false, "Print raw Markdown without terminal styling")

	return cmd
}

// runViewCmd executes the view command.
func runViewCmd(cmd *cobra.Command, _ []string) error {
	width, err := cmd.Flags().GetInt("width")
	if err != nil {
		return err
	}

	plain, err := cmd.Flags().GetBool("plain")
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if _, err := render.NewMarkdownWriter(&buf).Write(model.Showcase()); err != nil {
		return fmt.Errorf("failed to render paper: %w", err)
	}

	if plain {
		_, err := buf.WriteTo(cmd.OutOrStdout())
		return err
	}

	// Terminal styling can fail on exotic terminals; the paper is still
	// readable as plain Markdown, so fall back instead of failing.
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		_, err := buf.WriteTo(cmd.OutOrStdout())
		return err
	}

	out, err := renderer.Render(buf.String())
	if err != nil {
		_, err := buf.WriteTo(cmd.OutOrStdout())
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), out)

	hint := lipgloss.NewStyle().
		Foreground(lipgloss.Color("240")).
		Italic(true)
	fmt.Fprintln(cmd.OutOrStdout(), hint.Render("paperview serve previews the fully styled page in a browser."))

	return nil
}
