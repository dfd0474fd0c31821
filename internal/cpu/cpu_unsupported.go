//go:build !linux && !windows

package cpu

import (
	"context"
	"fmt"
)

// UnsupportedReader is a fallback for unsupported platforms
type UnsupportedReader struct{}

// newPlatformReader creates a fallback CPU reader for unsupported platforms
func newPlatformReader() Reader {
	return &UnsupportedReader{}
}

// GetCounters returns an error for unsupported platforms
func (r *UnsupportedReader) GetCounters(ctx context.Context) (*Raw, error) {
	return nil, fmt.Errorf("CPU sampling not supported on this platform")
}

// GetInfo returns an error for unsupported platforms
func (r *UnsupportedReader) GetInfo(ctx context.Context) (*Info, error) {
	return nil, fmt.Errorf("CPU sampling not supported on this platform")
}
