//go:build linux

package temps

import (
	"context"
	"os/exec"

	"github.com/shirou/gopsutil/v3/host"
)

// LinuxReader implements temperature sampling for Linux
type LinuxReader struct{}

// newPlatformReader creates a new Linux temperature reader
func newPlatformReader() Reader {
	return &LinuxReader{}
}

// GetReadings queries lm-sensors for CPU chip temperatures, falling back
// to the hwmon view exposed by gopsutil when the sensors binary is
// missing or its output cannot be parsed.
func (r *LinuxReader) GetReadings(ctx context.Context) ([]Reading, error) {
	out, err := exec.CommandContext(ctx, "sensors", "-j").Output()
	if err == nil {
		if readings, perr := parseSensorsJSON(out); perr == nil {
			return readings, nil
		}
	}
	return r.hwmonReadings(ctx)
}

func (r *LinuxReader) hwmonReadings(ctx context.Context) ([]Reading, error) {
	temps, err := host.SensorsTemperaturesWithContext(ctx)
	if err != nil {
		return nil, err
	}

	var readings []Reading
	for _, t := range temps {
		if !isCPUChip(t.SensorKey) {
			continue
		}
		readings = append(readings, Reading{
			Chip:    t.SensorKey,
			Label:   t.SensorKey,
			Celsius: int(t.Temperature),
		})
	}
	return readings, nil
}
