//go:build linux

package cpu

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/shirou/gopsutil/v3/cpu"
)

const maxFreqPath = "/sys/devices/system/cpu/cpu0/cpufreq/cpuinfo_max_freq"

// LinuxReader implements CPU sampling for Linux
type LinuxReader struct{}

// newPlatformReader creates a new Linux CPU reader
func newPlatformReader() Reader {
	return &LinuxReader{}
}

// GetCounters reads the aggregate counter line from /proc/stat.
func (r *LinuxReader) GetCounters(ctx context.Context) (*Raw, error) {
	f, err := os.Open("/proc/stat")
	if err != nil {
		return nil, fmt.Errorf("open /proc/stat: %w", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	if !scanner.Scan() {
		return nil, fmt.Errorf("read /proc/stat: %w", scanner.Err())
	}
	return parseStatLine(scanner.Text())
}

// GetInfo returns the model name, max frequency and the mean current
// frequency across logical cores.
func (r *LinuxReader) GetInfo(ctx context.Context) (*Info, error) {
	cpuInfo, err := cpu.InfoWithContext(ctx)
	if err != nil {
		return nil, err
	}
	if len(cpuInfo) == 0 {
		return nil, fmt.Errorf("no CPU entries reported")
	}

	info := &Info{Model: cpuInfo[0].ModelName}

	var sum float64
	var reporting int
	for _, c := range cpuInfo {
		if c.Mhz > 0 {
			sum += c.Mhz
			reporting++
		}
	}
	if reporting > 0 {
		info.AvgMHz = sum / float64(reporting)
		info.HasAvg = true
	}

	if mhz := readMaxFreqMHz(); mhz > 0 {
		info.MaxMHz = mhz
	} else {
		info.MaxMHz = int(cpuInfo[0].Mhz)
	}

	return info, nil
}

// readMaxFreqMHz reads the cpufreq maximum for cpu0, reported in kHz.
func readMaxFreqMHz() int {
	data, err := os.ReadFile(maxFreqPath)
	if err != nil {
		return 0
	}
	khz, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil {
		return 0
	}
	return khz / 1000
}
