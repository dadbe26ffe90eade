package probe

import (
	"context"

	"folio/internal/domain"
)

// StaticProber implements domain.ImageProber over a fixed set of paths.
// Useful for testing or for running without an asset source.
type StaticProber struct {
	paths map[string]bool
}

// NewStaticProber creates a prober that reports paths as existing.
func NewStaticProber(paths ...string) domain.ImageProber {
	m := make(map[string]bool, len(paths))
	for _, p := range paths {
		m[p] = true
	}
	return &StaticProber{paths: m}
}

// Exists reports whether path was registered.
func (s *StaticProber) Exists(ctx context.Context, path string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	return s.paths[path], nil
}
