//go:build !linux && !windows

package temps

import (
	"context"
	"fmt"
)

// UnsupportedReader is a fallback for unsupported platforms
type UnsupportedReader struct{}

// newPlatformReader creates a fallback temperature reader for unsupported platforms
func newPlatformReader() Reader {
	return &UnsupportedReader{}
}

// GetReadings returns an error for unsupported platforms
func (r *UnsupportedReader) GetReadings(ctx context.Context) ([]Reading, error) {
	return nil, fmt.Errorf("temperature sampling not supported on this platform")
}
