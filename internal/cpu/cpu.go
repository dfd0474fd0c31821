// Package cpu samples the kernel's aggregate CPU time counters and
// static processor facts for the status report.
package cpu

import (
	"context"
	"math"
)

// Raw is one sample of the aggregate CPU time counters, in jiffies.
// Busy sums the non-idle accounting categories; Idle is the idle column.
type Raw struct {
	Busy uint64
	Idle uint64
}

// Info bundles static processor facts with the current clock speeds.
type Info struct {
	Model  string
	MaxMHz int
	AvgMHz float64 // mean current frequency across logical cores
	HasAvg bool
}

// Reader interface for CPU sampling.
type Reader interface {
	GetCounters(ctx context.Context) (*Raw, error)
	GetInfo(ctx context.Context) (*Info, error)
}

// NewReader creates a new CPU reader for the current platform.
func NewReader() Reader {
	return newPlatformReader()
}

// Utilization computes the busy percentage between two counter samples,
// rounded to one decimal place. A first run passes zero previous counters
// and yields the since-boot percentage. Counter regression (reset or
// rollover) and an empty interval both report 0.0.
func Utilization(prevBusy, prevIdle, busy, idle uint64) float64 {
	if busy < prevBusy || idle < prevIdle {
		return 0.0
	}
	diffBusy := busy - prevBusy
	diffIdle := idle - prevIdle
	total := diffBusy + diffIdle
	if total == 0 {
		return 0.0
	}
	pct := 100 * float64(diffBusy) / float64(total)
	return math.Round(pct*10) / 10
}
