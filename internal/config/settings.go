package config

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/ellery/tabdock/internal/util"
	"github.com/micro-editor/json5"
)

const (
	// SettingsFileName is the name of the settings file
	SettingsFileName = "settings.json"

	// Default values. Sizes are in terminal cells.
	DefaultTitleBarHeight   = 2
	DefaultWindowWidth      = 50
	DefaultWindowHeight     = 16
	DefaultPickerMaxResults = 10
)

// LayoutSettings controls the geometry of new windows
type LayoutSettings struct {
	TitleBarHeight int `json:"title_bar_height"`
	WindowWidth    int `json:"window_width"`
	WindowHeight   int `json:"window_height"`
}

// PickerSettings controls the jump-to-widget prompt
type PickerSettings struct {
	MaxResults int `json:"max_results"`
}

// Settings holds all tabdock configuration
type Settings struct {
	Layout LayoutSettings `json:"layout"`
	Picker PickerSettings `json:"picker"`
}

// DefaultSettings returns the default settings
func DefaultSettings() *Settings {
	return &Settings{
		Layout: LayoutSettings{
			TitleBarHeight: DefaultTitleBarHeight,
			WindowWidth:    DefaultWindowWidth,
			WindowHeight:   DefaultWindowHeight,
		},
		Picker: PickerSettings{
			MaxResults: DefaultPickerMaxResults,
		},
	}
}

// applyDefaults fills zero values left by a partial settings file
func (s *Settings) applyDefaults() {
	if s.Layout.TitleBarHeight == 0 {
		s.Layout.TitleBarHeight = DefaultTitleBarHeight
	}
	if s.Layout.WindowWidth == 0 {
		s.Layout.WindowWidth = DefaultWindowWidth
	}
	if s.Layout.WindowHeight == 0 {
		s.Layout.WindowHeight = DefaultWindowHeight
	}
	if s.Picker.MaxResults == 0 {
		s.Picker.MaxResults = DefaultPickerMaxResults
	}
}

// ValidationError represents a settings validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ParseSettings parses settings.json content. Comments and trailing commas
// are accepted. On validation errors the parsed settings are returned with
// the errors; callers decide whether to keep them.
func ParseSettings(data []byte) (*Settings, []ValidationError) {
	settings := &Settings{}
	if err := json5.Unmarshal(data, settings); err != nil {
		return nil, []ValidationError{{
			Field:   "json",
			Message: "Invalid JSON: " + err.Error(),
		}}
	}

	errs := validateSettings(settings)
	settings.applyDefaults()
	if len(errs) > 0 {
		return settings, errs
	}
	return settings, nil
}

// validateSettings checks ranges; zero means "use the default"
func validateSettings(s *Settings) []ValidationError {
	var errs []ValidationError

	if s.Layout.TitleBarHeight < 0 || s.Layout.TitleBarHeight > 3 {
		errs = append(errs, ValidationError{
			Field:   "layout.title_bar_height",
			Message: "must be between 1 and 3",
		})
	}
	if s.Layout.WindowWidth < 0 || (s.Layout.WindowWidth > 0 && s.Layout.WindowWidth < 10) {
		errs = append(errs, ValidationError{
			Field:   "layout.window_width",
			Message: "must be at least 10",
		})
	}
	if s.Layout.WindowHeight < 0 || (s.Layout.WindowHeight > 0 && s.Layout.WindowHeight < 4) {
		errs = append(errs, ValidationError{
			Field:   "layout.window_height",
			Message: "must be at least 4",
		})
	}
	if s.Picker.MaxResults < 0 || s.Picker.MaxResults > 100 {
		errs = append(errs, ValidationError{
			Field:   "picker.max_results",
			Message: "must be between 1 and 100",
		})
	}

	return errs
}

// LoadSettings reads settings.json from the config directory. A missing file
// gives the defaults; an invalid one gives the defaults plus the errors.
func LoadSettings() (*Settings, []ValidationError) {
	data, err := os.ReadFile(SettingsFilePath())
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultSettings(), nil
		}
		log.Printf("TABDOCK Settings: Failed to read settings.json: %v", err)
		return DefaultSettings(), []ValidationError{{
			Field:   "file",
			Message: "Failed to read settings file: " + err.Error(),
		}}
	}

	settings, errs := ParseSettings(data)
	if len(errs) > 0 {
		for _, e := range errs {
			log.Printf("TABDOCK Settings: %v", e)
		}
		return DefaultSettings(), errs
	}
	return settings, nil
}

// EnsureSettingsFile writes the defaults if no settings file exists yet
func EnsureSettingsFile() error {
	path := SettingsFilePath()
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		return err
	}

	data, err := json.MarshalIndent(DefaultSettings(), "", "    ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, util.FileMode); err != nil {
		log.Printf("TABDOCK Settings: Failed to write settings.json: %v", err)
		return err
	}
	return nil
}
