// Package status runs the sampling pipeline: load persisted counters,
// read the kernel and sensor sources, map metrics to glyphs and colors,
// and assemble the bar report.
package status

import (
	"context"
	"fmt"

	"github.com/TomLaclavere/HyDE/internal/config"
	"github.com/TomLaclavere/HyDE/internal/cpu"
	"github.com/TomLaclavere/HyDE/internal/report"
	"github.com/TomLaclavere/HyDE/internal/state"
	"github.com/TomLaclavere/HyDE/internal/temps"
	"github.com/TomLaclavere/HyDE/internal/thresholds"
)

// Collector drives one sampling pass per call.
type Collector struct {
	cfg         config.Config
	cpuReader   cpu.Reader
	tempsReader temps.Reader
}

// NewCollector creates a collector backed by the platform readers.
func NewCollector(cfg config.Config) *Collector {
	return New(cfg, cpu.NewReader(), temps.NewReader())
}

// New creates a collector with explicit readers.
func New(cfg config.Config, cpuReader cpu.Reader, tempsReader temps.Reader) *Collector {
	return &Collector{cfg: cfg, cpuReader: cpuReader, tempsReader: tempsReader}
}

// Collect performs one sampling pass. Only a missing CPU counter source
// is an error; every other failure degrades to an absent metric and the
// report is still produced.
func (c *Collector) Collect(ctx context.Context) (report.Report, error) {
	raw, err := c.cpuReader.GetCounters(ctx)
	if err != nil {
		return report.Report{}, fmt.Errorf("cpu counters: %w", err)
	}

	st := state.Load(c.cfg.StatePath)

	in := report.Input{}
	if info, err := c.cpuReader.GetInfo(ctx); err == nil {
		st.SetStatic(info.Model, info.MaxMHz)
		in.AvgMHz = info.AvgMHz
		in.HasAvg = info.HasAvg
	}
	in.Model = st.Model
	in.MaxMHz = st.MaxMHz

	var prevBusy, prevIdle uint64
	if st.HasPrev {
		prevBusy, prevIdle = st.PrevBusy, st.PrevIdle
	}
	util := cpu.Utilization(prevBusy, prevIdle, raw.Busy, raw.Idle)

	// Persistence failure costs only the next delta, never this report.
	_ = st.SaveDelta(raw.Busy, raw.Idle)

	in.Utilization = util
	in.SpeedoGlyph = thresholds.Utilization.Lookup(util)
	in.UtilizationColor = thresholds.UtilizationColor.Lookup(util)

	readings, err := c.tempsReader.GetReadings(ctx)
	if err != nil {
		readings = nil
	}
	if temp, ok := temps.Select(readings, c.cfg.SensorLabel); ok {
		weather := thresholds.WeatherPlain
		if c.cfg.EmojiWeather {
			weather = thresholds.WeatherEmoji
		}
		in.Temperature = temp
		in.HasTemperature = true
		in.ThermoGlyph = thresholds.Temperature.Lookup(float64(temp))
		in.WeatherGlyph = weather.Lookup(float64(temp))
		in.TemperatureColor = thresholds.TemperatureColor.Lookup(float64(temp))
		in.Readings = readings
	}

	return report.Build(in), nil
}
