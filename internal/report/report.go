// Package report renders the sampled metrics into the single JSON record
// consumed by the bar widget.
package report

import (
	"fmt"
	"strings"

	"github.com/TomLaclavere/HyDE/internal/temps"
)

// Report is the one-line JSON payload written to stdout.
type Report struct {
	Text    string `json:"text"`
	Tooltip string `json:"tooltip"`
}

// Input carries everything the report needs. Optional metrics are guarded
// by Has* flags; an absent metric drops its text segment and tooltip line
// instead of failing the report.
type Input struct {
	SpeedoGlyph  string
	ThermoGlyph  string
	WeatherGlyph string

	Utilization      float64
	UtilizationColor string

	Temperature      int
	HasTemperature   bool
	TemperatureColor string

	Model  string
	MaxMHz int
	AvgMHz float64
	HasAvg bool

	Readings []temps.Reading
}

// Build assembles the bar text and the multi-line tooltip.
func Build(in Input) Report {
	var text strings.Builder
	fmt.Fprintf(&text, "%s %.1f%%", in.SpeedoGlyph, in.Utilization)
	if in.HasTemperature {
		fmt.Fprintf(&text, " %s %d°C %s", in.ThermoGlyph, in.Temperature, in.WeatherGlyph)
	}

	var lines []string
	if in.Model != "" {
		lines = append(lines, fmt.Sprintf("<b>%s</b>", in.Model))
	}
	lines = append(lines, fmt.Sprintf("%s Utilization: <span color=\"%s\">%.1f%%</span>",
		in.SpeedoGlyph, in.UtilizationColor, in.Utilization))
	if in.HasTemperature {
		lines = append(lines, fmt.Sprintf("%s Temperature: <span color=\"%s\">%d°C</span>",
			in.ThermoGlyph, in.TemperatureColor, in.Temperature))
	}
	if clock := clockLine(in); clock != "" {
		lines = append(lines, clock)
	}
	if len(in.Readings) > 0 {
		lines = append(lines, "Sensors:")
		for _, r := range in.Readings {
			lines = append(lines, fmt.Sprintf("  %s: %d°C", r.Label, r.Celsius))
		}
	}

	return Report{
		Text:    text.String(),
		Tooltip: strings.Join(lines, "\n"),
	}
}

// clockLine formats "current / max" MHz. A missing average shows the N/A
// sentinel; with no clock data at all the line is omitted.
func clockLine(in Input) string {
	if !in.HasAvg && in.MaxMHz == 0 {
		return ""
	}
	avg := "N/A"
	if in.HasAvg {
		avg = fmt.Sprintf("%.1f", in.AvgMHz)
	}
	if in.MaxMHz == 0 {
		return fmt.Sprintf("Clock: %s MHz", avg)
	}
	return fmt.Sprintf("Clock: %s MHz / %d MHz", avg, in.MaxMHz)
}
