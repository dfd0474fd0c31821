// Package state persists the previous CPU counter sample and static
// machine facts between invocations. The file lives in the shared temp
// directory, one key="value" pair per line, and is cleared on reboot.
package state

import (
	"bufio"
	"fmt"
	"os"
	"os/user"
	"path/filepath"
	"strconv"
	"strings"
)

const (
	keyModel    = "CPUINFO_MODEL"
	keyMaxFreq  = "CPUINFO_MAX_FREQ"
	keyPrevBusy = "CPUINFO_PREV_BUSY"
	keyPrevIdle = "CPUINFO_PREV_IDLE"
)

// State mirrors the persisted file. PrevBusy/PrevIdle are only meaningful
// when HasPrev is set; Model and MaxMHz are fetched once and never
// overwritten by later runs.
type State struct {
	Model    string
	MaxMHz   int
	PrevBusy uint64
	PrevIdle uint64
	HasPrev  bool

	path string
}

// DefaultPath returns the per-user state file location in the temp dir.
func DefaultPath() string {
	return filepath.Join(os.TempDir(), "hyde-cpuinfo-"+userName()+".state")
}

func userName() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		// Strip the domain on Windows usernames.
		name := u.Username
		if i := strings.LastIndexByte(name, '\\'); i >= 0 {
			name = name[i+1:]
		}
		return name
	}
	if name := os.Getenv("USER"); name != "" {
		return name
	}
	return "unknown"
}

// Load reads the state file at path. A missing or unreadable file yields
// an empty state rather than an error; individual missing keys are simply
// absent.
func Load(path string) *State {
	s := &State{path: path}

	f, err := os.Open(path)
	if err != nil {
		return s
	}
	defer f.Close()

	var hasBusy, hasIdle bool
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		key, value, ok := parseLine(scanner.Text())
		if !ok {
			continue
		}
		switch key {
		case keyModel:
			s.Model = value
		case keyMaxFreq:
			if v, err := strconv.Atoi(value); err == nil {
				s.MaxMHz = v
			}
		case keyPrevBusy:
			if v, err := strconv.ParseUint(value, 10, 64); err == nil {
				s.PrevBusy = v
				hasBusy = true
			}
		case keyPrevIdle:
			if v, err := strconv.ParseUint(value, 10, 64); err == nil {
				s.PrevIdle = v
				hasIdle = true
			}
		}
	}

	// Both counters must be present for a usable previous sample.
	s.HasPrev = hasBusy && hasIdle
	return s
}

func parseLine(line string) (key, value string, ok bool) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return "", "", false
	}
	key, value, ok = strings.Cut(line, "=")
	if !ok {
		return "", "", false
	}
	return strings.TrimSpace(key), strings.Trim(strings.TrimSpace(value), `"`), true
}

// SetStatic records the machine facts if they are not already present.
// Existing values win so the facts stay stable for the lifetime of the
// state file.
func (s *State) SetStatic(model string, maxMHz int) {
	if s.Model == "" {
		s.Model = model
	}
	if s.MaxMHz == 0 {
		s.MaxMHz = maxMHz
	}
}

// SaveDelta stores busy/idle as the new previous sample and writes the
// whole state back to disk. A write failure leaves the in-memory state
// updated; the caller proceeds without persistence.
func (s *State) SaveDelta(busy, idle uint64) error {
	s.PrevBusy = busy
	s.PrevIdle = idle
	s.HasPrev = true
	return s.write()
}

// write replaces known keys in the existing file, preserving any foreign
// lines, then swaps the file into place atomically.
func (s *State) write() error {
	if s.path == "" {
		return fmt.Errorf("state: no file path configured")
	}

	var lines []string
	seen := map[string]bool{}

	if f, err := os.Open(s.path); err == nil {
		scanner := bufio.NewScanner(f)
		for scanner.Scan() {
			line := scanner.Text()
			key, _, ok := parseLine(line)
			if ok && s.valueFor(key) != "" {
				line = key + `="` + s.valueFor(key) + `"`
				seen[key] = true
			}
			lines = append(lines, line)
		}
		f.Close()
	}

	for _, key := range []string{keyModel, keyMaxFreq, keyPrevBusy, keyPrevIdle} {
		if !seen[key] && s.valueFor(key) != "" {
			lines = append(lines, key+`="`+s.valueFor(key)+`"`)
		}
	}

	tmp := s.path + ".tmp"
	content := strings.Join(lines, "\n") + "\n"
	if err := os.WriteFile(tmp, []byte(content), 0600); err != nil {
		return fmt.Errorf("state: write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("state: replace %s: %w", s.path, err)
	}
	return nil
}

func (s *State) valueFor(key string) string {
	switch key {
	case keyModel:
		return s.Model
	case keyMaxFreq:
		if s.MaxMHz == 0 {
			return ""
		}
		return strconv.Itoa(s.MaxMHz)
	case keyPrevBusy:
		if !s.HasPrev {
			return ""
		}
		return strconv.FormatUint(s.PrevBusy, 10)
	case keyPrevIdle:
		if !s.HasPrev {
			return ""
		}
		return strconv.FormatUint(s.PrevIdle, 10)
	}
	return ""
}
