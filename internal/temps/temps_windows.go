//go:build windows

package temps

import (
	"context"
	"fmt"

	"github.com/StackExchange/wmi"
)

// WindowsReader implements temperature sampling for Windows
type WindowsReader struct{}

// newPlatformReader creates a new Windows temperature reader
func newPlatformReader() Reader {
	return &WindowsReader{}
}

// Win32_PerfRawData_Counters_ThermalZoneInformation represents thermal zone data
type Win32_PerfRawData_Counters_ThermalZoneInformation struct {
	Name        string
	Temperature uint64
}

// GetReadings reads ACPI thermal zones via WMI. Zone temperatures are
// reported in tenths of Kelvin.
func (r *WindowsReader) GetReadings(ctx context.Context) ([]Reading, error) {
	var zones []Win32_PerfRawData_Counters_ThermalZoneInformation
	if err := wmi.Query("SELECT * FROM Win32_PerfRawData_Counters_ThermalZoneInformation", &zones); err != nil {
		return nil, err
	}

	var readings []Reading
	for _, zone := range zones {
		celsius := float64(zone.Temperature)/10.0 - 273.15
		if celsius < -50 || celsius > 150 {
			continue
		}
		readings = append(readings, Reading{
			Chip:    "acpitz",
			Label:   fmt.Sprintf("Thermal Zone %s", zone.Name),
			Celsius: int(celsius),
		})
	}
	return readings, nil
}
