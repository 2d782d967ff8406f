// Package config defines the format-agnostic model of a build description,
// the Loader interface implemented by each file format, and Apply, which
// replays a model into a graph through the Declarer boundary.
//
// The `config.Model` is the single source of truth for graph construction.
// Concrete loaders live in separate packages (makefile, hcl_adapter,
// yaml_adapter).
package config
