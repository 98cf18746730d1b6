package config

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"

	"paperview/internal/theme"
)

// Default configuration values.
const (
	// DefaultOutputDir is where the site build writes its artifacts.
	// A short relative path keeps build output next to the config file,
	// which is where static-site tooling conventionally puts it.
	DefaultOutputDir = "dist"

	// DefaultListenAddress binds the preview server to loopback only.
	// The preview is a development aid, not a deployment target, so it
	// should not be reachable from other hosts unless asked for.
	DefaultListenAddress = "127.0.0.1"

	// DefaultPort is the preview server port. A high, uncommon port
	// avoids colliding with the 3000/8000/8080 neighborhood most other
	// development servers claim.
	DefaultPort = 8517

	// DefaultWatchDebounce is how long the watcher waits after a file
	// event before rebuilding. Editors emit bursts of events per save;
	// half a second collapses a burst into one rebuild.
	DefaultWatchDebounce = 500 * time.Millisecond

	// AppName is the application name used for XDG directory paths.
	AppName = "paperview"
)

// Format identifies a single-artifact output format for the render
// command.
type Format string

// Output formats accepted by --format.
const (
	// FormatHTML renders the standalone showcase page.
	FormatHTML Format = "html"

	// FormatMarkdown renders the Markdown export.
	FormatMarkdown Format = "markdown"

	// FormatJSON renders the JSON export.
	FormatJSON Format = "json"
)

// ParseFormat parses a --format flag value.
// It returns ErrUnknownFormat for anything but the three known formats.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatHTML, FormatMarkdown, FormatJSON:
		return Format(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// Config holds all configuration options for paperview.
// This struct is designed to be populated from defaults, the config
// file, and CLI flags, then passed through the application via
// dependency injection rather than global state.
//
// Design decision: We use a single flat struct instead of nested
// structs for simplicity. The number of options is manageable, and
// nesting would add complexity without significant benefit.
type Config struct {
	// OutputDir is the directory the site build writes into.
	OutputDir string

	// Markdown enables the Markdown export alongside the page in the
	// site build.
	Markdown bool

	// JSON enables the JSON export alongside the page in the site
	// build.
	JSON bool

	// Clean removes the output directory before building.
	Clean bool

	// Listen is the preview server bind address without the port.
	Listen string

	// Port is the preview server TCP port.
	Port int

	// Watch enables watch mode: the preview server rebuilds when the
	// config file or a theme content path changes.
	Watch bool

	// WatchDebounce is the quiet period between a file event and the
	// rebuild it triggers.
	WatchDebounce time.Duration

	// Verbose enables detailed log output using slog.LevelDebug.
	// When false, only warnings and errors are logged.
	Verbose bool

	// ConfigFilePath is the path to the configuration file.
	// If empty, the tool searches for .paperview in the current
	// directory, the home directory, and the XDG config directory.
	ConfigFilePath string

	// Theme is the styling token set, defaults overlaid with whatever
	// the config file declares.
	Theme theme.Theme
}

// NewConfig creates a new Config with default values.
// All fields are set to safe, sensible defaults that work for most use
// cases. Users can override specific values after creation.
//
// Design decision: We use a constructor function instead of relying on
// zero values because many defaults are non-zero (e.g., the port and
// the debounce interval). This also serves as documentation of what
// the defaults are.
func NewConfig() *Config {
	return &Config{
		OutputDir:     DefaultOutputDir,
		Listen:        DefaultListenAddress,
		Port:          DefaultPort,
		WatchDebounce: DefaultWatchDebounce,
		Theme:         theme.Default(),
	}
}

// ApplyFile overlays settings from a loaded configuration file.
// Only fields the file actually sets override the current values, so
// defaults survive a sparse file and CLI flags applied afterwards win
// over both.
func (c *Config) ApplyFile(f *File) {
	if f == nil {
		return
	}

	if f.Output.Dir != "" {
		c.OutputDir = f.Output.Dir
	}
	if f.Output.Markdown {
		c.Markdown = true
	}
	if f.Output.JSON {
		c.JSON = true
	}

	if f.Serve.Listen != "" {
		c.Listen = f.Serve.Listen
	}
	if f.Serve.Port != 0 {
		c.Port = f.Serve.Port
	}
	if f.Serve.Watch {
		c.Watch = true
	}

	c.Theme = c.Theme.Merge(f.Theme)
}

// Addr returns the preview server bind address in "host:port" form.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Listen, c.Port)
}

// XDGConfigDir returns the XDG config directory for paperview.
// This follows the XDG Base Directory Specification.
// On Linux: ~/.config/paperview
// On macOS: ~/Library/Application Support/paperview
// On Windows: %APPDATA%\paperview
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// Validate checks if the configuration is valid.
// It returns a specific error describing what is invalid.
//
// Design decision: We validate at the config level rather than at each
// point of use to fail fast and provide clear error messages upfront.
// This is called once after flag parsing, before any building begins.
//
// We chose to return the first error found rather than collecting all
// errors because fixing one error often makes others irrelevant.
func (c *Config) Validate() error {
	// The build needs somewhere to write
	if c.OutputDir == "" {
		return ErrNoOutputDir
	}

	// Port must be a usable TCP port
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("%w: %d", ErrInvalidPort, c.Port)
	}

	// The server needs an address to bind
	if c.Listen == "" {
		return ErrNoListenAddress
	}

	// A negative debounce is invalid; zero means rebuild immediately
	if c.WatchDebounce < 0 {
		return ErrInvalidDebounce
	}

	// Token set must be renderable before any artifact is produced
	if err := c.Theme.Validate(); err != nil {
		return err
	}

	return nil
}
