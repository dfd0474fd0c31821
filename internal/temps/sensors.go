package temps

import (
	"encoding/json"
	"sort"
	"strings"
)

// parseSensorsJSON extracts CPU temperature readings from `sensors -j`
// output. The document is keyed by chip name; each chip maps sensor
// labels to objects carrying tempN_input fields in Celsius. Chips and
// labels are walked in sorted order so repeated runs list sensors
// consistently.
func parseSensorsJSON(data []byte) ([]Reading, error) {
	var chips map[string]json.RawMessage
	if err := json.Unmarshal(data, &chips); err != nil {
		return nil, err
	}

	chipNames := make([]string, 0, len(chips))
	for name := range chips {
		if isCPUChip(name) {
			chipNames = append(chipNames, name)
		}
	}
	sort.Strings(chipNames)

	var readings []Reading
	for _, chipName := range chipNames {
		var sensors map[string]json.RawMessage
		if err := json.Unmarshal(chips[chipName], &sensors); err != nil {
			continue
		}

		labels := make([]string, 0, len(sensors))
		for label := range sensors {
			if label != "Adapter" {
				labels = append(labels, label)
			}
		}
		sort.Strings(labels)

		for _, label := range labels {
			var fields map[string]float64
			if err := json.Unmarshal(sensors[label], &fields); err != nil {
				continue
			}
			if temp, ok := tempInput(fields); ok {
				readings = append(readings, Reading{
					Chip:    chipName,
					Label:   label,
					Celsius: int(temp), // truncate toward zero
				})
			}
		}
	}

	return readings, nil
}

func tempInput(fields map[string]float64) (float64, bool) {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		if strings.HasPrefix(k, "temp") && strings.HasSuffix(k, "_input") {
			return fields[k], true
		}
	}
	return 0, false
}
