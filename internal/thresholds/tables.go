package thresholds

// Static tables used by the status report. Each metric gets its own glyph
// table and a banded color palette; the ambient weather-style glyph comes
// in an emoji and a plain variant selected by configuration.

// Utilization picks the speedometer glyph for a busy percentage.
var Utilization = New("\U000F0F86", // 󰾆
	Entry{Threshold: 90, Value: "\U000F04C5"}, // 󰓅
	Entry{Threshold: 60, Value: "\U000F0F85"}, // 󰾅
	Entry{Threshold: 30, Value: "\U000F0F86"}, // 󰾆
)

// Temperature picks the thermometer glyph for a temperature in Celsius.
var Temperature = New("", // empty
	Entry{Threshold: 85, Value: ""}, // full
	Entry{Threshold: 65, Value: ""}, // three quarters
	Entry{Threshold: 45, Value: ""}, // half
	Entry{Threshold: 25, Value: ""}, // quarter
)

// WeatherEmoji picks the ambient emoji indicator for a temperature.
var WeatherEmoji = New("🧊",
	Entry{Threshold: 90, Value: "🌋"},
	Entry{Threshold: 75, Value: "🔥"},
	Entry{Threshold: 65, Value: "☀️"},
	Entry{Threshold: 50, Value: "☁️"},
	Entry{Threshold: 35, Value: "❄️"},
)

// WeatherPlain is the nerd-font fallback for bars without emoji fonts.
var WeatherPlain = New("\U000F0E6E", // 󰹮
	Entry{Threshold: 90, Value: "\U000F0238"}, // 󰈸
	Entry{Threshold: 75, Value: "\U000F0599"}, // 󰖙
	Entry{Threshold: 65, Value: "\U000F0595"}, // 󰖕
	Entry{Threshold: 50, Value: "\U000F0590"}, // 󰖐
	Entry{Threshold: 35, Value: "\U000F0592"}, // 󰖒
)

// UtilizationColor maps a busy percentage onto the HyDE load palette.
var UtilizationColor = New("#a6e3a1",
	Entry{Threshold: 90, Value: "#f53c3c"},
	Entry{Threshold: 84, Value: "#f5504a"},
	Entry{Threshold: 78, Value: "#f56358"},
	Entry{Threshold: 72, Value: "#f67766"},
	Entry{Threshold: 66, Value: "#f68a74"},
	Entry{Threshold: 60, Value: "#f69e82"},
	Entry{Threshold: 54, Value: "#f7b190"},
	Entry{Threshold: 48, Value: "#f7c59e"},
	Entry{Threshold: 42, Value: "#f4d5a2"},
	Entry{Threshold: 36, Value: "#eadda4"},
	Entry{Threshold: 30, Value: "#dce0a5"},
	Entry{Threshold: 24, Value: "#cce1a5"},
	Entry{Threshold: 18, Value: "#bde2a4"},
	Entry{Threshold: 12, Value: "#b1e3a3"},
	Entry{Threshold: 6, Value: "#aae3a2"},
)

// TemperatureColor maps a temperature in Celsius onto the thermal palette.
var TemperatureColor = New("#89dceb",
	Entry{Threshold: 94, Value: "#f53c3c"},
	Entry{Threshold: 90, Value: "#f55050"},
	Entry{Threshold: 85, Value: "#f56a5c"},
	Entry{Threshold: 80, Value: "#f68468"},
	Entry{Threshold: 75, Value: "#f79d74"},
	Entry{Threshold: 70, Value: "#f8b780"},
	Entry{Threshold: 65, Value: "#f9d18c"},
	Entry{Threshold: 60, Value: "#f3da93"},
	Entry{Threshold: 55, Value: "#e4dd99"},
	Entry{Threshold: 50, Value: "#d2e09e"},
	Entry{Threshold: 45, Value: "#bfe2a1"},
	Entry{Threshold: 40, Value: "#a6e3a1"},
	Entry{Threshold: 35, Value: "#9ce3b0"},
	Entry{Threshold: 30, Value: "#93e0c4"},
	Entry{Threshold: 25, Value: "#8ddfd8"},
)
