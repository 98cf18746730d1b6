package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"testing"
	"time"

	"paperview/internal/config"
	"paperview/internal/inspect"
)

// skipIfShort skips the test if -short flag is set.
// Integration tests bind real sockets and poll over HTTP.
func skipIfShort(t *testing.T) {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
}

// freePort reserves an ephemeral TCP port and returns it.
// The listener is closed before returning so the port can be handed to
// the preview server. Another process could grab it in between, which
// is acceptable for tests.
func freePort(t *testing.T) int {
	t.Helper()

	l, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("failed to reserve port: %v", err)
	}
	port := l.Addr().(*net.TCPAddr).Port
	_ = l.Close() //nolint:errcheck // Listener only reserved the port
	return port
}

// waitForServer polls the given URL until it responds or the deadline
// passes.
func waitForServer(t *testing.T, url string) *http.Response {
	t.Helper()

	var resp *http.Response
	var err error

	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		resp, err = http.Get(url) //nolint:noctx // Test polling loop
		if err == nil {
			return resp
		}
		time.Sleep(50 * time.Millisecond)
	}

	t.Fatalf("server did not come up at %s: %v", url, err)
	return nil
}

// TestIntegrationServe boots the preview server through the serve
// command path and fetches the page and exports over real HTTP.
func TestIntegrationServe(t *testing.T) {
	skipIfShort(t)

	port := freePort(t)

	cfg := config.NewConfig()
	cfg.Port = port
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reload := func() (*config.Config, error) { return cfg, nil }

	done := make(chan error, 1)
	go func() {
		done <- runServe(ctx, cfg, reload, logger)
	}()

	baseURL := fmt.Sprintf("http://%s", cfg.Addr())

	resp := waitForServer(t, baseURL+"/")
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("expected status 200, got %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("failed to read body: %v", err)
	}

	outline, err := inspect.Parse(bytes.NewReader(body))
	if err != nil {
		t.Fatalf("failed to parse served page: %v", err)
	}
	if cards := len(outline.ElementsWithClass("finding-card")); cards != 3 {
		t.Errorf("expected 3 finding cards, got %d", cards)
	}
	if table := outline.TableWithClass("results-table"); table == nil || len(table.Rows) != 4 {
		t.Error("expected results table with 4 rows")
	}

	// Exports are always served in preview mode
	mdResp, err := http.Get(baseURL + "/paper.md") //nolint:noctx // Test request
	if err != nil {
		t.Fatalf("failed to fetch Markdown export: %v", err)
	}
	defer mdResp.Body.Close()
	if mdResp.StatusCode != http.StatusOK {
		t.Errorf("expected status 200 for paper.md, got %d", mdResp.StatusCode)
	}

	jsonResp, err := http.Get(baseURL + "/paper.json") //nolint:noctx // Test request
	if err != nil {
		t.Fatalf("failed to fetch JSON export: %v", err)
	}
	defer jsonResp.Body.Close()
	if jsonResp.StatusCode != http.StatusOK {
		t.Errorf("expected status 200 for paper.json, got %d", jsonResp.StatusCode)
	}

	// Shut down and wait for a clean exit
	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("runServe() error = %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Error("server did not shut down in time")
	}
}

// TestIntegrationServeWatch edits the config file under a running
// watch-mode server and waits for the rebuilt page to be served.
func TestIntegrationServeWatch(t *testing.T) {
	skipIfShort(t)

	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "paperview.yaml")
	if err := os.WriteFile(configPath, []byte("theme: {}\n"), 0o600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	port := freePort(t)

	// A short debounce keeps the test fast; the default half second is
	// tuned for human editing bursts.
	reload := func() (*config.Config, error) {
		cfg := config.NewConfig()
		cfg.Port = port
		cfg.Watch = true
		cfg.WatchDebounce = 50 * time.Millisecond
		cfg.ConfigFilePath = configPath

		file, err := config.LoadConfigFile(configPath)
		if err != nil {
			return nil, err
		}
		cfg.ApplyFile(file)
		return cfg, nil
	}

	cfg, err := reload()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- runServe(ctx, cfg, reload, logger)
	}()

	baseURL := fmt.Sprintf("http://%s", cfg.Addr())

	resp := waitForServer(t, baseURL+"/")
	original, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		t.Fatalf("failed to read body: %v", err)
	}

	// Change the accent color. The stylesheet fingerprint changes with
	// it, so the rebuilt page links a different asset path.
	edit := []byte("theme:\n  colors:\n    accent: \"#123456\"\n")
	if err := os.WriteFile(configPath, edit, 0o600); err != nil {
		t.Fatalf("failed to edit config: %v", err)
	}

	deadline := time.Now().Add(5 * time.Second)
	rebuilt := false
	for time.Now().Before(deadline) {
		resp, err := http.Get(baseURL + "/") //nolint:noctx // Test polling loop
		if err != nil {
			t.Fatalf("failed to fetch page: %v", err)
		}
		body, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			t.Fatalf("failed to read body: %v", err)
		}
		if !bytes.Equal(body, original) {
			rebuilt = true
			break
		}
		time.Sleep(50 * time.Millisecond)
	}
	if !rebuilt {
		t.Error("expected the served page to change after a config edit")
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("runServe() error = %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Error("server did not shut down in time")
	}
}
