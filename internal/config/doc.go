// Package config defines the format-agnostic model of an analysis setup
// (parameters, benchmarks and systematics) together with the Loader
// interface implemented by the HCL and YAML front ends.
//
// The `config.Setup` is the single source of truth for the `cards` package.
// Concrete loaders live in separate packages.
package config
