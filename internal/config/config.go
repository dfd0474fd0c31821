// Package config resolves runtime options from the HyDE state files and
// the environment. Values in ~/.local/state/hyde/{staterc,config} act as
// defaults; real environment variables override them.
package config

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"

	"github.com/TomLaclavere/HyDE/internal/state"
)

// Environment keys understood by the reporter.
const (
	envEmoji     = "CPUINFO_EMOJI_TEMPERATURE"
	envSensor    = "CPUINFO_TEMPERATURE_SENSOR"
	envStateFile = "CPUINFO_STATE_FILE"
)

// Config holds the resolved runtime options.
type Config struct {
	EmojiWeather bool   // emoji vs plain glyphs for the ambient indicator
	SensorLabel  string // preferred temperature sensor label, may be empty
	StatePath    string // persisted counter file location
}

// Load reads the HyDE state files and the environment.
func Load() Config {
	values := map[string]string{}

	home, err := os.UserHomeDir()
	if err == nil {
		stateDir := filepath.Join(home, ".local", "state", "hyde")
		loadEnvFile(filepath.Join(stateDir, "staterc"), values)
		loadEnvFile(filepath.Join(stateDir, "config"), values)
	}

	get := func(key string) string {
		if v, ok := os.LookupEnv(key); ok {
			return v
		}
		return values[key]
	}

	cfg := Config{
		EmojiWeather: isTruthy(get(envEmoji)),
		SensorLabel:  get(envSensor),
		StatePath:    get(envStateFile),
	}
	if cfg.StatePath == "" {
		cfg.StatePath = state.DefaultPath()
	}
	return cfg
}

// loadEnvFile reads key="value" lines into values, tolerating comments,
// blank lines and an "export " prefix. A missing file is not an error.
func loadEnvFile(path string, values map[string]string) {
	f, err := os.Open(path)
	if err != nil {
		return
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		line = strings.TrimPrefix(line, "export ")
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		values[strings.TrimSpace(key)] = strings.Trim(strings.TrimSpace(value), `"`)
	}
}

func isTruthy(v string) bool {
	switch strings.ToLower(v) {
	case "true", "1", "t", "y", "yes":
		return true
	}
	return false
}
