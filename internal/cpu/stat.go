package cpu

import (
	"fmt"
	"strconv"
	"strings"
)

// parseStatLine extracts the aggregate counters from the first line of
// /proc/stat: "cpu  user nice system idle iowait irq softirq steal ...".
// Busy sums user, nice, system, iowait, irq and softirq; idle is its own
// column.
func parseStatLine(line string) (*Raw, error) {
	fields := strings.Fields(line)
	if len(fields) < 8 || fields[0] != "cpu" {
		return nil, fmt.Errorf("unexpected stat line %q", line)
	}

	vals := make([]uint64, 7)
	for i := range vals {
		v, err := strconv.ParseUint(fields[i+1], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("stat field %d: %w", i+2, err)
		}
		vals[i] = v
	}

	user, nice, system, idle, iowait, irq, softirq := vals[0], vals[1], vals[2], vals[3], vals[4], vals[5], vals[6]
	return &Raw{
		Busy: user + nice + system + iowait + irq + softirq,
		Idle: idle,
	}, nil
}
