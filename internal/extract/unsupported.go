package extract

import (
	"context"

	"github.com/pitchforge/pitchforge/internal/types"
)

// Unsupported is a placeholder for platforms the dispatcher recognizes but
// nobody has written an extractor for yet. It fails immediately, before
// any network I/O.
type Unsupported struct {
	platform string
}

// NewUnsupported creates a failing extractor for the named platform.
func NewUnsupported(platform string) *Unsupported {
	return &Unsupported{platform: platform}
}

// Extract always fails with an UnsupportedPlatformError.
func (u *Unsupported) Extract(ctx context.Context, rawURL string) (*types.Product, error) {
	return nil, &types.UnsupportedPlatformError{Platform: u.platform}
}

// Platform returns the platform name.
func (u *Unsupported) Platform() string {
	return u.platform
}
