// User preferences: wallpaper, sliders, toggles and display name.
package main

import (
	"log"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// SettingDef describes a boolean toggle in the settings panel.
type SettingDef struct {
	Name  string // Field name (e.g., "WiFi")
	Key   string // Shortcut key (e.g., "w")
	Label string // Display label (e.g., "Wi-Fi")
}

var settingDefs = []SettingDef{
	{Name: "WiFi", Key: "w", Label: "Wi-Fi"},
	{Name: "Bluetooth", Key: "b", Label: "Bluetooth"},
	{Name: "DarkMode", Key: "d", Label: "Dark mode"},
}

// Settings holds user preferences. Fields are independent and survive reinstall.
type Settings struct {
	WallpaperID int
	Brightness  int
	Volume      int
	WiFi        bool
	Bluetooth   bool
	DarkMode    bool
	DisplayName string
}

// defaultSettings returns the preferences of a fresh install
func defaultSettings() Settings {
	return Settings{
		WallpaperID: 1,
		Brightness:  80,
		Volume:      50,
		WiFi:        true,
		Bluetooth:   true,
		DarkMode:    false,
		DisplayName: "Guest",
	}
}

// IsEnabled returns whether the toggle at index is on
func (s *Settings) IsEnabled(index int) bool {
	switch index {
	case 0:
		return s.WiFi
	case 1:
		return s.Bluetooth
	case 2:
		return s.DarkMode
	}
	return false
}

// Toggle flips the toggle at index and reports whether index was valid
func (s *Settings) Toggle(index int) bool {
	switch index {
	case 0:
		s.WiFi = !s.WiFi
	case 1:
		s.Bluetooth = !s.Bluetooth
	case 2:
		s.DarkMode = !s.DarkMode
	default:
		return false
	}
	return true
}

// Summary returns the labels of enabled toggles
func (s *Settings) Summary() string {
	var parts []string
	for i, def := range settingDefs {
		if s.IsEnabled(i) {
			parts = append(parts, def.Label)
		}
	}
	if len(parts) == 0 {
		return "all off"
	}
	return strings.Join(parts, " ")
}

func (s *Settings) SetBrightness(v int) {
	s.Brightness = clampPercent(v)
}

func (s *Settings) SetVolume(v int) {
	s.Volume = clampPercent(v)
}

func clampPercent(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// loadSettings reads initial preferences from a KEY=VALUE file.
// A missing file or bad value keeps the default for that field.
func loadSettings(path string) Settings {
	s := defaultSettings()

	env, err := godotenv.Read(path)
	if err != nil {
		return s
	}

	for key, val := range env {
		val = strings.TrimSpace(val)
		boolVal := val == "1" || strings.ToLower(val) == "true"

		switch key {
		case "PREF_WALLPAPER":
			if n, err := strconv.Atoi(val); err == nil {
				s.WallpaperID = n
			}
		case "PREF_BRIGHTNESS":
			if n, err := strconv.Atoi(val); err == nil {
				s.SetBrightness(n)
			}
		case "PREF_VOLUME":
			if n, err := strconv.Atoi(val); err == nil {
				s.SetVolume(n)
			}
		case "PREF_WIFI":
			s.WiFi = boolVal
		case "PREF_BLUETOOTH":
			s.Bluetooth = boolVal
		case "PREF_DARK_MODE":
			s.DarkMode = boolVal
		case "PREF_DISPLAY_NAME":
			if name := strings.TrimSpace(val); name != "" && len(name) <= MaxDisplayNameLength {
				s.DisplayName = name
			}
		default:
			log.Printf("Config: ignoring unknown key %s in %s", key, path)
		}
	}

	return s
}
