package report

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/TomLaclavere/HyDE/internal/temps"
)

func fullInput() Input {
	return Input{
		SpeedoGlyph:      "S",
		ThermoGlyph:      "T",
		WeatherGlyph:     "W",
		Utilization:      90.9,
		UtilizationColor: "#f53c3c",
		Temperature:      56,
		HasTemperature:   true,
		TemperatureColor: "#e4dd99",
		Model:            "AMD Ryzen 7 5800X 8-Core Processor",
		MaxMHz:           4850,
		AvgMHz:           3401.24,
		HasAvg:           true,
		Readings: []temps.Reading{
			{Chip: "k10temp-pci-00c3", Label: "Tctl", Celsius: 56},
			{Chip: "k10temp-pci-00c3", Label: "Tccd1", Celsius: 52},
		},
	}
}

func TestBuildFullReport(t *testing.T) {
	r := Build(fullInput())

	if want := "S 90.9% T 56°C W"; r.Text != want {
		t.Errorf("text: got %q, want %q", r.Text, want)
	}

	for _, want := range []string{
		"<b>AMD Ryzen 7 5800X 8-Core Processor</b>",
		`S Utilization: <span color="#f53c3c">90.9%</span>`,
		`T Temperature: <span color="#e4dd99">56°C</span>`,
		"Clock: 3401.2 MHz / 4850 MHz",
		"Sensors:",
		"  Tctl: 56°C",
		"  Tccd1: 52°C",
	} {
		if !strings.Contains(r.Tooltip, want) {
			t.Errorf("tooltip missing %q:\n%s", want, r.Tooltip)
		}
	}
}

func TestBuildWithoutTemperature(t *testing.T) {
	in := fullInput()
	in.HasTemperature = false
	in.Readings = nil

	r := Build(in)

	if strings.Contains(r.Text, "°C") {
		t.Errorf("text should omit the temperature segment: %q", r.Text)
	}
	if strings.Contains(r.Text, "W") {
		t.Errorf("text should omit the ambient glyph without a temperature: %q", r.Text)
	}
	if strings.Contains(r.Tooltip, "Temperature:") {
		t.Errorf("tooltip should omit the temperature line:\n%s", r.Tooltip)
	}
	if strings.Contains(r.Tooltip, "Sensors:") {
		t.Errorf("tooltip should omit the sensors block:\n%s", r.Tooltip)
	}
}

func TestBuildClockSentinel(t *testing.T) {
	in := fullInput()
	in.HasAvg = false

	r := Build(in)
	if !strings.Contains(r.Tooltip, "Clock: N/A MHz / 4850 MHz") {
		t.Errorf("missing N/A clock sentinel:\n%s", r.Tooltip)
	}

	in.MaxMHz = 0
	r = Build(in)
	if strings.Contains(r.Tooltip, "Clock:") {
		t.Errorf("clock line should be omitted with no data:\n%s", r.Tooltip)
	}
}

func TestBuildWithoutModel(t *testing.T) {
	in := fullInput()
	in.Model = ""

	r := Build(in)
	if strings.Contains(r.Tooltip, "<b>") {
		t.Errorf("tooltip should omit the model line:\n%s", r.Tooltip)
	}
}

func TestReportMarshalsToBarPayload(t *testing.T) {
	data, err := json.Marshal(Build(fullInput()))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var decoded map[string]string
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if _, ok := decoded["text"]; !ok {
		t.Error("payload missing text field")
	}
	if _, ok := decoded["tooltip"]; !ok {
		t.Error("payload missing tooltip field")
	}
	if len(decoded) != 2 {
		t.Errorf("payload has extra fields: %v", decoded)
	}
}
