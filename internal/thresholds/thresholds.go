// Package thresholds implements ordered threshold-to-value lookup tables,
// used to pick status glyphs and display colors from a metric value.
package thresholds

import "sort"

// Entry pairs a lower bound with the value displayed for it.
type Entry struct {
	Threshold float64
	Value     string
}

// Table is an ordered set of threshold bands with a catch-all default.
// Entries are sorted descending once at construction; a lookup returns
// the value of the highest band whose threshold the probe reaches.
type Table struct {
	entries  []Entry
	fallback string
}

// New builds a table from entries in any order plus a default value
// returned when the probe is below every threshold.
func New(fallback string, entries ...Entry) Table {
	sorted := make([]Entry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Threshold > sorted[j].Threshold
	})
	return Table{entries: sorted, fallback: fallback}
}

// Lookup returns the value of the first band where v >= threshold.
// A probe exactly at a boundary belongs to that boundary's band.
func (t Table) Lookup(v float64) string {
	for _, e := range t.entries {
		if v >= e.Threshold {
			return e.Value
		}
	}
	return t.fallback
}
