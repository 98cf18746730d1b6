// Package config handles all configuration options for paperview.
//
// Configuration flows from three layers, lowest precedence first:
// built-in defaults (NewConfig), the .paperview YAML file (LoadConfigFile,
// applied via ApplyFile), and CLI flags. The cmd package wires the
// layers together; this package defines the shapes and the precedence
// helpers.
//
// Design decision: We keep configuration in a plain struct passed by
// dependency injection rather than global state. Commands construct a
// Config, apply the file and their flags, validate once, and hand it to
// the packages that need it.
package config
