package temps

import "testing"

const sensorsFixture = `{
   "iwlwifi_1-virtual-0":{
      "Adapter": "Virtual device",
      "temp1":{ "temp1_input": 35.000 }
   },
   "nvme-pci-0300":{
      "Adapter": "PCI adapter",
      "Composite":{ "temp1_input": 36.850, "temp1_max": 81.850, "temp1_crit": 84.850 }
   },
   "coretemp-isa-0000":{
      "Adapter": "ISA adapter",
      "Package id 0":{ "temp1_input": 56.900, "temp1_max": 101.000, "temp1_crit": 115.000 },
      "Core 0":{ "temp2_input": 54.000, "temp2_max": 101.000, "temp2_crit": 115.000 },
      "Core 1":{ "temp3_input": 52.500, "temp3_max": 101.000, "temp3_crit": 115.000 }
   }
}`

func TestParseSensorsJSON(t *testing.T) {
	readings, err := parseSensorsJSON([]byte(sensorsFixture))
	if err != nil {
		t.Fatalf("parseSensorsJSON: %v", err)
	}

	if len(readings) != 3 {
		t.Fatalf("expected 3 CPU readings, got %d: %+v", len(readings), readings)
	}
	for _, r := range readings {
		if r.Chip != "coretemp-isa-0000" {
			t.Errorf("non-CPU chip %q leaked through", r.Chip)
		}
	}

	// Labels come out sorted; temperatures are truncated toward zero.
	want := []Reading{
		{Chip: "coretemp-isa-0000", Label: "Core 0", Celsius: 54},
		{Chip: "coretemp-isa-0000", Label: "Core 1", Celsius: 52},
		{Chip: "coretemp-isa-0000", Label: "Package id 0", Celsius: 56},
	}
	for i, w := range want {
		if readings[i] != w {
			t.Errorf("reading %d: got %+v, want %+v", i, readings[i], w)
		}
	}
}

func TestParseSensorsJSONNoCPUChips(t *testing.T) {
	doc := `{
	   "nvme-pci-0300":{
	      "Adapter": "PCI adapter",
	      "Composite":{ "temp1_input": 36.850 }
	   }
	}`
	readings, err := parseSensorsJSON([]byte(doc))
	if err != nil {
		t.Fatalf("parseSensorsJSON: %v", err)
	}
	if len(readings) != 0 {
		t.Errorf("expected no readings, got %+v", readings)
	}
}

func TestParseSensorsJSONAMDChip(t *testing.T) {
	doc := `{
	   "k10temp-pci-00c3":{
	      "Adapter": "PCI adapter",
	      "Tctl":{ "temp1_input": 48.125 },
	      "Tccd1":{ "temp3_input": 45.750 }
	   }
	}`
	readings, err := parseSensorsJSON([]byte(doc))
	if err != nil {
		t.Fatalf("parseSensorsJSON: %v", err)
	}
	if len(readings) != 2 {
		t.Fatalf("expected 2 readings, got %+v", readings)
	}
	if readings[0].Label != "Tccd1" || readings[0].Celsius != 45 {
		t.Errorf("first reading: got %+v", readings[0])
	}
	if readings[1].Label != "Tctl" || readings[1].Celsius != 48 {
		t.Errorf("second reading: got %+v", readings[1])
	}
}

func TestParseSensorsJSONMalformed(t *testing.T) {
	if _, err := parseSensorsJSON([]byte("not json")); err == nil {
		t.Error("expected error for malformed input")
	}
}

func TestSelect(t *testing.T) {
	readings := []Reading{
		{Chip: "coretemp-isa-0000", Label: "Core 0", Celsius: 54},
		{Chip: "coretemp-isa-0000", Label: "Package id 0", Celsius: 56},
	}

	if got, ok := Select(readings, "Package id 0"); !ok || got != 56 {
		t.Errorf("preferred label: got %d/%v, want 56/true", got, ok)
	}
	if got, ok := Select(readings, "No Such Label"); !ok || got != 54 {
		t.Errorf("unknown label falls back to first: got %d/%v, want 54/true", got, ok)
	}
	if got, ok := Select(readings, ""); !ok || got != 54 {
		t.Errorf("no preference: got %d/%v, want 54/true", got, ok)
	}
	if _, ok := Select(nil, "Package id 0"); ok {
		t.Error("empty readings should select nothing")
	}
}
