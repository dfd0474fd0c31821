//go:build windows

package cpu

import (
	"context"
	"fmt"

	"github.com/shirou/gopsutil/v3/cpu"
)

// WindowsReader implements CPU sampling for Windows
type WindowsReader struct{}

// newPlatformReader creates a new Windows CPU reader
func newPlatformReader() Reader {
	return &WindowsReader{}
}

// GetCounters synthesizes jiffy-style counters from the cumulative CPU
// times, scaled to hundredths of a second so the delta math matches the
// Linux path.
func (r *WindowsReader) GetCounters(ctx context.Context) (*Raw, error) {
	times, err := cpu.TimesWithContext(ctx, false)
	if err != nil {
		return nil, err
	}
	if len(times) == 0 {
		return nil, fmt.Errorf("no CPU times reported")
	}

	t := times[0]
	busy := t.User + t.Nice + t.System + t.Iowait + t.Irq + t.Softirq
	return &Raw{
		Busy: uint64(busy * 100),
		Idle: uint64(t.Idle * 100),
	}, nil
}

// GetInfo returns the model name and clock speeds.
func (r *WindowsReader) GetInfo(ctx context.Context) (*Info, error) {
	cpuInfo, err := cpu.InfoWithContext(ctx)
	if err != nil {
		return nil, err
	}
	if len(cpuInfo) == 0 {
		return nil, fmt.Errorf("no CPU entries reported")
	}

	// Windows reports the rated clock only, so it stands in for both
	// the maximum and the current average.
	return &Info{
		Model:  cpuInfo[0].ModelName,
		MaxMHz: int(cpuInfo[0].Mhz),
		AvgMHz: cpuInfo[0].Mhz,
		HasAvg: cpuInfo[0].Mhz > 0,
	}, nil
}
