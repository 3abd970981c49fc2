package config

import "context"

// Loader is the interface for a format-specific setup loader.
type Loader interface {
	// Load reads setup files from the given paths (files or directories) and
	// translates them into the format-agnostic model.
	Load(ctx context.Context, paths ...string) (*Setup, error)
}
