// Package temps reads CPU temperature sensors for the status report.
package temps

import (
	"context"
	"strings"
)

// Reading is a single labeled temperature in whole degrees Celsius,
// truncated toward zero.
type Reading struct {
	Chip    string `json:"chip"`
	Label   string `json:"label"`
	Celsius int    `json:"celsius"`
}

// Reader interface for temperature sampling.
type Reader interface {
	GetReadings(ctx context.Context) ([]Reading, error)
}

// NewReader creates a new temperature reader for the current platform.
func NewReader() Reader {
	return newPlatformReader()
}

// cpuChipPrefixes lists the sensor chip families treated as CPU
// temperature sources. Extend here when a new family shows up.
var cpuChipPrefixes = []string{
	"coretemp",
	"k10temp",
	"zenpower",
}

func isCPUChip(chip string) bool {
	lower := strings.ToLower(chip)
	for _, prefix := range cpuChipPrefixes {
		if strings.HasPrefix(lower, prefix) {
			return true
		}
	}
	return false
}

// Select picks the headline temperature: the reading whose label matches
// preferred when one exists, otherwise the first reading in subsystem
// order. The second result is false when no readings are available.
func Select(readings []Reading, preferred string) (int, bool) {
	if len(readings) == 0 {
		return 0, false
	}
	if preferred != "" {
		for _, r := range readings {
			if r.Label == preferred {
				return r.Celsius, true
			}
		}
	}
	return readings[0].Celsius, true
}
