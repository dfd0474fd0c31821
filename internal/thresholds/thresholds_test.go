package thresholds

import "testing"

func TestLookupBands(t *testing.T) {
	table := New("low",
		Entry{Threshold: 60, Value: "mid"},
		Entry{Threshold: 90, Value: "high"},
		Entry{Threshold: 80, Value: "raised"},
		Entry{Threshold: 85, Value: "warm"},
	)

	tests := []struct {
		value float64
		want  string
	}{
		{100, "high"},
		{90.9, "high"},
		{90, "high"},
		{89.9, "warm"},
		{85, "warm"}, // exact boundary belongs to its band
		{80, "raised"},
		{60, "mid"},
		{59.9, "low"},
		{0, "low"},
		{-5, "low"},
	}
	for _, tt := range tests {
		if got := table.Lookup(tt.value); got != tt.want {
			t.Errorf("Lookup(%v) = %q, want %q", tt.value, got, tt.want)
		}
	}
}

func TestLookupRepeatable(t *testing.T) {
	table := New("low",
		Entry{Threshold: 90, Value: "high"},
		Entry{Threshold: 60, Value: "mid"},
	)

	first := table.Lookup(72)
	for i := 0; i < 5; i++ {
		if got := table.Lookup(72); got != first {
			t.Fatalf("lookup %d changed: got %q, want %q", i, got, first)
		}
	}
}

func TestLookupDefaultBelowAll(t *testing.T) {
	table := New("fallback",
		Entry{Threshold: 50, Value: "a"},
		Entry{Threshold: 30, Value: "b"},
		Entry{Threshold: 10, Value: "c"},
	)
	if got := table.Lookup(9.9); got != "fallback" {
		t.Errorf("Lookup(9.9) = %q, want fallback", got)
	}
}

func TestStaticTablesHaveBands(t *testing.T) {
	for name, table := range map[string]Table{
		"Utilization":      Utilization,
		"Temperature":      Temperature,
		"WeatherEmoji":     WeatherEmoji,
		"WeatherPlain":     WeatherPlain,
		"UtilizationColor": UtilizationColor,
		"TemperatureColor": TemperatureColor,
	} {
		if len(table.entries) == 0 {
			t.Errorf("%s: no entries", name)
		}
		if table.fallback == "" {
			t.Errorf("%s: empty default", name)
		}
		for i := 1; i < len(table.entries); i++ {
			if table.entries[i].Threshold > table.entries[i-1].Threshold {
				t.Errorf("%s: entries not descending at %d", name, i)
			}
		}
	}
}
