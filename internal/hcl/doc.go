// Package hcl provides the HCL implementation of config.Loader. It parses
// `parameter`, `benchmark` and `systematic` blocks and translates them into
// the format-agnostic setup model.
package hcl
