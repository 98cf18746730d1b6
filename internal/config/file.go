package config

import "paperview/internal/theme"

// OutputSettings configures the site build section of the config file.
type OutputSettings struct {
	// Dir is the build output directory.
	Dir string `yaml:"dir,omitempty"`

	// Markdown enables the Markdown export in every build.
	Markdown bool `yaml:"markdown,omitempty"`

	// JSON enables the JSON export in every build.
	JSON bool `yaml:"json,omitempty"`
}

// ServeSettings configures the preview server section of the config file.
type ServeSettings struct {
	// Listen is the bind address without the port.
	Listen string `yaml:"listen,omitempty"`

	// Port is the preview server TCP port.
	Port int `yaml:"port,omitempty"`

	// Watch enables watch mode by default.
	Watch bool `yaml:"watch,omitempty"`
}

// File represents the structure of the .paperview configuration file.
type File struct {
	// Output configures the site build.
	Output OutputSettings `yaml:"output,omitempty"`

	// Serve configures the preview server.
	Serve ServeSettings `yaml:"serve,omitempty"`

	// Theme overlays the styling token set: content paths, colors,
	// the font stack, and shadow presets. Omitted tokens keep their
	// defaults.
	Theme theme.Theme `yaml:"theme,omitempty"`
}
