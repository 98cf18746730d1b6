package main

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"paperview/internal/config"
)

// TestNewBuildCmd tests the build command creation.
func TestNewBuildCmd(t *testing.T) {
	t.Parallel()

	cmd := NewBuildCmd()

	t.Run("has correct use", func(t *testing.T) {
		t.Parallel()
		if cmd.Use != "build" {
			t.Errorf("expected use 'build', got %q", cmd.Use)
		}
	})

	t.Run("has short description", func(t *testing.T) {
		t.Parallel()
		if cmd.Short == "" {
			t.Error("expected non-empty short description")
		}
	})

	t.Run("has long description", func(t *testing.T) {
		t.Parallel()
		if cmd.Long == "" {
			t.Error("expected non-empty long description")
		}
	})

	t.Run("has output flag", func(t *testing.T) {
		t.Parallel()
		flag := cmd.Flags().Lookup("output")
		if flag == nil {
			t.Fatal("expected output flag")
		}
		if flag.Shorthand != "o" {
			t.Errorf("expected shorthand 'o', got %q", flag.Shorthand)
		}
		if flag.DefValue != config.DefaultOutputDir {
			t.Errorf("expected default %q, got %q", config.DefaultOutputDir, flag.DefValue)
		}
	})

	t.Run("has clean flag", func(t *testing.T) {
		t.Parallel()
		flag := cmd.Flags().Lookup("clean")
		if flag == nil {
			t.Fatal("expected clean flag")
		}
		if flag.DefValue != "false" {
			t.Errorf("expected default 'false', got %q", flag.DefValue)
		}
	})

	t.Run("has standalone flag", func(t *testing.T) {
		t.Parallel()
		flag := cmd.Flags().Lookup("standalone")
		if flag == nil {
			t.Fatal("expected standalone flag")
		}
		if flag.DefValue != "false" {
			t.Errorf("expected default 'false', got %q", flag.DefValue)
		}
	})

	t.Run("has markdown flag", func(t *testing.T) {
		t.Parallel()
		flag := cmd.Flags().Lookup("markdown")
		if flag == nil {
			t.Fatal("expected markdown flag")
		}
		if flag.Shorthand != "m" {
			t.Errorf("expected shorthand 'm', got %q", flag.Shorthand)
		}
	})

	t.Run("has json flag", func(t *testing.T) {
		t.Parallel()
		flag := cmd.Flags().Lookup("json")
		if flag == nil {
			t.Fatal("expected json flag")
		}
		if flag.Shorthand != "j" {
			t.Errorf("expected shorthand 'j', got %q", flag.Shorthand)
		}
	})

	t.Run("has config flag", func(t *testing.T) {
		t.Parallel()
		flag := cmd.Flags().Lookup("config")
		if flag == nil {
			t.Fatal("expected config flag")
		}
		if flag.Shorthand != "c" {
			t.Errorf("expected shorthand 'c', got %q", flag.Shorthand)
		}
	})
}

// TestGetVerboseFlag tests the verbose flag retrieval.
func TestGetVerboseFlag(t *testing.T) {
	t.Run("returns false when flag not set", func(t *testing.T) {
		cmd := NewBuildCmd()
		result := getVerboseFlag(cmd)
		if result {
			t.Error("expected false when flag not set")
		}
	})

	t.Run("returns value from parent verbose flag", func(t *testing.T) {
		root := NewRootCmd()
		// Set verbose flag to true
		_ = root.PersistentFlags().Set("verbose", "true")

		// Get build subcommand
		buildCmd, _, err := root.Find([]string{"build"})
		if err != nil {
			t.Fatalf("failed to find build command: %v", err)
		}

		result := getVerboseFlag(buildCmd)
		if !result {
			t.Error("expected true from parent verbose flag")
		}
	})
}

// TestBuildConfig tests configuration building from flags.
func TestBuildConfig(t *testing.T) {
	t.Run("builds config with default values", func(t *testing.T) {
		cmd := NewBuildCmd()
		cfg, err := buildConfig(cmd)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if cfg == nil {
			t.Fatal("expected non-nil config")
		}
		if cfg.Markdown {
			t.Error("expected Markdown to be false")
		}
		if cfg.JSON {
			t.Error("expected JSON to be false")
		}
		if cfg.Clean {
			t.Error("expected Clean to be false")
		}
	})

	t.Run("builds config with custom output dir", func(t *testing.T) {
		cmd := NewBuildCmd()
		_ = cmd.Flags().Set("output", "public")
		cfg, err := buildConfig(cmd)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if cfg.OutputDir != "public" {
			t.Errorf("expected OutputDir 'public', got %q", cfg.OutputDir)
		}
	})

	t.Run("builds config with exports enabled", func(t *testing.T) {
		cmd := NewBuildCmd()
		_ = cmd.Flags().Set("markdown", "true")
		_ = cmd.Flags().Set("json", "true")
		cfg, err := buildConfig(cmd)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !cfg.Markdown {
			t.Error("expected Markdown to be true")
		}
		if !cfg.JSON {
			t.Error("expected JSON to be true")
		}
	})

	t.Run("builds config with clean flag", func(t *testing.T) {
		cmd := NewBuildCmd()
		_ = cmd.Flags().Set("clean", "true")
		cfg, err := buildConfig(cmd)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !cfg.Clean {
			t.Error("expected Clean to be true")
		}
	})

	t.Run("loads settings from config file", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "paperview.yaml")

		content := []byte(`
output:
  dir: fromfile
  markdown: true
theme:
  colors:
    accent: "#0f172a"
`)
		if err := os.WriteFile(configPath, content, 0o600); err != nil {
			t.Fatalf("failed to write config: %v", err)
		}

		cmd := NewBuildCmd()
		_ = cmd.Flags().Set("config", configPath)
		cfg, err := buildConfig(cmd)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if cfg.OutputDir != "fromfile" {
			t.Errorf("expected OutputDir 'fromfile', got %q", cfg.OutputDir)
		}
		if !cfg.Markdown {
			t.Error("expected Markdown to be true from config file")
		}
		if cfg.JSON {
			t.Error("expected JSON to stay false")
		}
		if cfg.Theme.Colors["accent"] != "#0f172a" {
			t.Errorf("expected accent '#0f172a', got %q", cfg.Theme.Colors["accent"])
		}
		if cfg.Theme.Colors["ink"] != "#1f2933" {
			t.Errorf("expected default ink to survive, got %q", cfg.Theme.Colors["ink"])
		}
	})

	t.Run("flags win over config file", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "paperview.yaml")

		content := []byte("output:\n  dir: fromfile\n")
		if err := os.WriteFile(configPath, content, 0o600); err != nil {
			t.Fatalf("failed to write config: %v", err)
		}

		cmd := NewBuildCmd()
		_ = cmd.Flags().Set("config", configPath)
		_ = cmd.Flags().Set("output", "fromflag")
		cfg, err := buildConfig(cmd)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if cfg.OutputDir != "fromflag" {
			t.Errorf("expected OutputDir 'fromflag', got %q", cfg.OutputDir)
		}
	})

	t.Run("returns error for missing explicit config file", func(t *testing.T) {
		cmd := NewBuildCmd()
		_ = cmd.Flags().Set("config", filepath.Join(t.TempDir(), "absent.yaml"))
		_, err := buildConfig(cmd)
		if err == nil {
			t.Fatal("expected error for missing explicit config file")
		}
		if !strings.Contains(err.Error(), "not found") {
			t.Errorf("expected 'not found' error, got %v", err)
		}
	})

	t.Run("returns error for invalid config file", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "invalid.yaml")

		content := []byte(`{invalid yaml`)
		if err := os.WriteFile(configPath, content, 0o600); err != nil {
			t.Fatalf("failed to write config: %v", err)
		}

		cmd := NewBuildCmd()
		_ = cmd.Flags().Set("config", configPath)
		_, err := buildConfig(cmd)
		if err == nil {
			t.Fatal("expected error for invalid config file")
		}
	})
}

// TestRunBuildCmd tests the build command execution.
func TestRunBuildCmd(t *testing.T) {
	t.Run("builds site into output directory", func(t *testing.T) {
		outDir := filepath.Join(t.TempDir(), "dist")

		root := NewRootCmd()
		root.SetArgs([]string{"build", "-o", outDir, "--markdown", "--json"})

		if err := root.Execute(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		page, err := os.ReadFile(filepath.Join(outDir, "index.html"))
		if err != nil {
			t.Fatalf("failed to read page: %v", err)
		}
		if !bytes.Contains(page, []byte("Adaptive Batch Scheduling")) {
			t.Error("expected page to contain the paper title")
		}

		md, err := os.ReadFile(filepath.Join(outDir, "paper.md"))
		if err != nil {
			t.Fatalf("failed to read Markdown export: %v", err)
		}
		if !bytes.Contains(md, []byte("# Adaptive Batch Scheduling")) {
			t.Error("expected Markdown export to contain the title heading")
		}

		if _, err := os.Stat(filepath.Join(outDir, "paper.json")); os.IsNotExist(err) {
			t.Error("expected JSON export to be written")
		}

		stylesheets, err := filepath.Glob(filepath.Join(outDir, "assets", "paper.*.css"))
		if err != nil {
			t.Fatalf("failed to glob stylesheets: %v", err)
		}
		if len(stylesheets) != 1 {
			t.Errorf("expected one fingerprinted stylesheet, got %v", stylesheets)
		}

		scripts, err := filepath.Glob(filepath.Join(outDir, "assets", "reveal.*.js"))
		if err != nil {
			t.Fatalf("failed to glob scripts: %v", err)
		}
		if len(scripts) != 1 {
			t.Errorf("expected one fingerprinted script, got %v", scripts)
		}
	})

	t.Run("standalone build writes a single page", func(t *testing.T) {
		outDir := filepath.Join(t.TempDir(), "dist")

		root := NewRootCmd()
		root.SetArgs([]string{"build", "-o", outDir, "--standalone"})

		if err := root.Execute(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		page, err := os.ReadFile(filepath.Join(outDir, "index.html"))
		if err != nil {
			t.Fatalf("failed to read page: %v", err)
		}
		if !bytes.Contains(page, []byte("<style>")) {
			t.Error("expected inline stylesheet in standalone page")
		}

		if _, err := os.Stat(filepath.Join(outDir, "assets")); !os.IsNotExist(err) {
			t.Error("expected no assets directory in standalone build")
		}
	})

	t.Run("rebuild produces identical page", func(t *testing.T) {
		outDir := filepath.Join(t.TempDir(), "dist")

		root := NewRootCmd()
		root.SetArgs([]string{"build", "-o", outDir})
		if err := root.Execute(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		first, err := os.ReadFile(filepath.Join(outDir, "index.html"))
		if err != nil {
			t.Fatalf("failed to read page: %v", err)
		}

		root = NewRootCmd()
		root.SetArgs([]string{"build", "-o", outDir})
		if err := root.Execute(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		second, err := os.ReadFile(filepath.Join(outDir, "index.html"))
		if err != nil {
			t.Fatalf("failed to read page: %v", err)
		}

		if !bytes.Equal(first, second) {
			t.Error("expected rebuild to produce a byte-identical page")
		}
	})
}

// TestPrintPageSummary tests the page summary printed after a build.
func TestPrintPageSummary(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))

	build, err := buildSite(context.Background(), config.NewConfig(), logger)
	if err != nil {
		t.Fatalf("failed to build site: %v", err)
	}

	// Capture stdout
	oldStdout := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	err = printPageSummary(build)

	w.Close()
	os.Stdout = oldStdout

	if err != nil {
		t.Fatalf("printPageSummary() error = %v", err)
	}

	var buf bytes.Buffer
	_, _ = buf.ReadFrom(r)
	r.Close()
	output := buf.String()

	if !strings.Contains(output, "3 finding cards, 4 result rows, 8 references") {
		t.Errorf("expected page summary counts, got %q", output)
	}
	if strings.Contains(output, "unresolved fragment links") {
		t.Errorf("expected no unresolved fragment warning, got %q", output)
	}
}

// TestPrintArtifacts tests the artifact listing printed after a build.
func TestPrintArtifacts(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))

	build, err := buildSite(context.Background(), config.NewConfig(), logger)
	if err != nil {
		t.Fatalf("failed to build site: %v", err)
	}

	// Capture stdout
	oldStdout := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	printArtifacts(build)

	w.Close()
	os.Stdout = oldStdout

	var buf bytes.Buffer
	_, _ = buf.ReadFrom(r)
	r.Close()
	output := buf.String()

	if !strings.Contains(output, "index.html") {
		t.Errorf("expected artifact listing to include index.html, got %q", output)
	}
	if !strings.Contains(output, "paper.md") {
		t.Errorf("expected artifact listing to include paper.md, got %q", output)
	}
}
