package config

import "context"

// Loader is the interface for a format-specific league file loader.
type Loader interface {
	// Load reads the league file at path and translates it into the
	// format-agnostic model. Anything the file leaves out keeps its default.
	Load(ctx context.Context, path string) (*League, error)
}
