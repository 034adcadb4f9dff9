package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"pomotick/internal/core/model"
)

// OptionsFileName is the name of the options document inside the config directory.
const OptionsFileName = "options.yaml"

// Geometry is the last known window placement. Nil fields are unknown.
type Geometry struct {
	Width  *int
	Height *int
	X      *int
	Y      *int
}

// HasSize reports whether both width and height are known.
func (geometry Geometry) HasSize() bool {
	return geometry.Width != nil && geometry.Height != nil
}

// HasPosition reports whether both x and y are known.
func (geometry Geometry) HasPosition() bool {
	return geometry.X != nil && geometry.Y != nil
}

// Options are the persisted user preferences.
type Options struct {
	VoiceEnabled    bool
	Geometry        Geometry
	Durations       model.Durations
	Prompts         model.PromptSet
	Inactivity      model.InactivityConfig
	SystemIdleProbe bool
}

// DefaultOptions returns the options used when nothing is persisted.
func DefaultOptions() Options {
	return Options{
		VoiceEnabled: true,
		Durations:    model.DefaultDurations(),
		Prompts:      model.DefaultPrompts(),
		Inactivity:   model.DefaultInactivity(),
	}
}

type yamlDurations struct {
	ReadySeconds    *int `yaml:"ready_seconds,omitempty"`
	WorkingSeconds  *int `yaml:"working_seconds,omitempty"`
	RestSeconds     *int `yaml:"rest_seconds,omitempty"`
	LongRestSeconds *int `yaml:"long_rest_seconds,omitempty"`
}

type yamlPrompts struct {
	ShortBreak string `yaml:"short_break,omitempty"`
	LongBreak  string `yaml:"long_break,omitempty"`
	BackToWork string `yaml:"back_to_work,omitempty"`
	StillThere string `yaml:"still_there,omitempty"`
}

type yamlInactivity struct {
	ThresholdSeconds *int `yaml:"threshold_seconds,omitempty"`
	WorkdayStart     *int `yaml:"workday_start,omitempty"`
	WorkdayEnd       *int `yaml:"workday_end,omitempty"`
}

type yamlOptions struct {
	VoiceEnabled    *bool           `yaml:"voice_enabled"`
	WindowWidth     *int            `yaml:"window_width,omitempty"`
	WindowHeight    *int            `yaml:"window_height,omitempty"`
	WindowX         *int            `yaml:"window_x,omitempty"`
	WindowY         *int            `yaml:"window_y,omitempty"`
	Durations       *yamlDurations  `yaml:"durations,omitempty"`
	Prompts         *yamlPrompts    `yaml:"prompts,omitempty"`
	Inactivity      *yamlInactivity `yaml:"inactivity,omitempty"`
	SystemIdleProbe *bool           `yaml:"system_idle_probe,omitempty"`
}

// OptionsStore reads and writes the options document.
type OptionsStore struct {
	path   string
	logger zerolog.Logger
}

// NewOptionsStore creates a store backed by path.
func NewOptionsStore(path string, logger zerolog.Logger) *OptionsStore {
	return &OptionsStore{path: path, logger: logger}
}

// DefaultOptionsPath returns <user config dir>/<appName>/options.yaml.
func DefaultOptionsPath(appName string) (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(configDir, appName, OptionsFileName), nil
}

// Path returns the location of the options document.
func (store *OptionsStore) Path() string {
	return store.path
}

// Load reads the options document. It never fails: a missing file is created with
// defaults, a malformed one is replaced by defaults and missing keys take default values.
func (store *OptionsStore) Load() Options {
	options := DefaultOptions()

	rawData, err := os.ReadFile(store.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			store.logger.Info().Str("path", store.path).Msg("options file missing, creating defaults")
		} else {
			store.logger.Warn().Err(err).Str("path", store.path).Msg("read options file")
		}
		store.resave(options)
		return options
	}

	var fileData yamlOptions
	if err := yaml.Unmarshal(rawData, &fileData); err != nil {
		store.logger.Warn().Err(err).Str("path", store.path).Msg("malformed options file, restoring defaults")
		store.resave(options)
		return options
	}

	applyYamlOptions(&options, fileData, store.logger)
	return options
}

// Save writes options to disk.
func (store *OptionsStore) Save(options Options) error {
	if err := os.MkdirAll(filepath.Dir(store.path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	serialized, err := yaml.Marshal(toYamlOptions(options))
	if err != nil {
		return fmt.Errorf("marshal options yaml: %w", err)
	}

	if err := os.WriteFile(store.path, serialized, 0o644); err != nil {
		return fmt.Errorf("write options file: %w", err)
	}
	return nil
}

func (store *OptionsStore) resave(options Options) {
	if err := store.Save(options); err != nil {
		store.logger.Error().Err(err).Str("path", store.path).Msg("save default options")
	}
}

func toYamlOptions(options Options) yamlOptions {
	voice := options.VoiceEnabled
	probe := options.SystemIdleProbe
	return yamlOptions{
		VoiceEnabled: &voice,
		WindowWidth:  options.Geometry.Width,
		WindowHeight: options.Geometry.Height,
		WindowX:      options.Geometry.X,
		WindowY:      options.Geometry.Y,
		Durations: &yamlDurations{
			ReadySeconds:    seconds(options.Durations.Ready),
			WorkingSeconds:  seconds(options.Durations.Working),
			RestSeconds:     seconds(options.Durations.Rest),
			LongRestSeconds: seconds(options.Durations.LongRest),
		},
		Prompts: &yamlPrompts{
			ShortBreak: options.Prompts.ShortBreak,
			LongBreak:  options.Prompts.LongBreak,
			BackToWork: options.Prompts.BackToWork,
			StillThere: options.Prompts.StillThere,
		},
		Inactivity: &yamlInactivity{
			ThresholdSeconds: seconds(options.Inactivity.Threshold),
			WorkdayStart:     intPtr(options.Inactivity.WorkdayStart),
			WorkdayEnd:       intPtr(options.Inactivity.WorkdayEnd),
		},
		SystemIdleProbe: &probe,
	}
}

func applyYamlOptions(options *Options, fileData yamlOptions, logger zerolog.Logger) {
	if fileData.VoiceEnabled != nil {
		options.VoiceEnabled = *fileData.VoiceEnabled
	}
	if fileData.SystemIdleProbe != nil {
		options.SystemIdleProbe = *fileData.SystemIdleProbe
	}

	options.Geometry = Geometry{
		Width:  positive(fileData.WindowWidth),
		Height: positive(fileData.WindowHeight),
		X:      fileData.WindowX,
		Y:      fileData.WindowY,
	}

	if durations := fileData.Durations; durations != nil {
		candidate := options.Durations
		setDuration(&candidate.Ready, durations.ReadySeconds)
		setDuration(&candidate.Working, durations.WorkingSeconds)
		setDuration(&candidate.Rest, durations.RestSeconds)
		setDuration(&candidate.LongRest, durations.LongRestSeconds)
		if err := candidate.Validate(); err != nil {
			logger.Warn().Err(err).Msg("ignoring invalid durations")
		} else {
			options.Durations = candidate
		}
	}

	if prompts := fileData.Prompts; prompts != nil {
		setString(&options.Prompts.ShortBreak, prompts.ShortBreak)
		setString(&options.Prompts.LongBreak, prompts.LongBreak)
		setString(&options.Prompts.BackToWork, prompts.BackToWork)
		setString(&options.Prompts.StillThere, prompts.StillThere)
	}

	if inactivity := fileData.Inactivity; inactivity != nil {
		setDuration(&options.Inactivity.Threshold, inactivity.ThresholdSeconds)
		candidate := options.Inactivity
		if inactivity.WorkdayStart != nil {
			candidate.WorkdayStart = *inactivity.WorkdayStart
		}
		if inactivity.WorkdayEnd != nil {
			candidate.WorkdayEnd = *inactivity.WorkdayEnd
		}
		if validHour(candidate.WorkdayStart) && validHour(candidate.WorkdayEnd) && candidate.WorkdayStart <= candidate.WorkdayEnd {
			options.Inactivity = candidate
		} else {
			logger.Warn().
				Int("start", candidate.WorkdayStart).
				Int("end", candidate.WorkdayEnd).
				Msg("ignoring invalid workday window")
		}
	}
}

func setDuration(target *time.Duration, value *int) {
	if value != nil && *value > 0 {
		*target = time.Duration(*value) * time.Second
	}
}

func setString(target *string, value string) {
	if value != "" {
		*target = value
	}
}

func seconds(value time.Duration) *int {
	return intPtr(int(value / time.Second))
}

func intPtr(value int) *int {
	return &value
}

func positive(value *int) *int {
	if value == nil || *value <= 0 {
		return nil
	}
	return value
}

func validHour(hour int) bool {
	return hour >= 0 && hour <= 24
}

// Settings holds the live options shared between the UI and the collaborators
// that read them while the application runs.
type Settings struct {
	mu      sync.RWMutex
	options Options
}

// NewSettings wraps options.
func NewSettings(options Options) *Settings {
	return &Settings{options: options}
}

// VoiceEnabled reports whether voice prompts should play.
func (settings *Settings) VoiceEnabled() bool {
	settings.mu.RLock()
	defer settings.mu.RUnlock()
	return settings.options.VoiceEnabled
}

// SetVoiceEnabled toggles voice prompts.
func (settings *Settings) SetVoiceEnabled(enabled bool) {
	settings.mu.Lock()
	defer settings.mu.Unlock()
	settings.options.VoiceEnabled = enabled
}

// SetGeometry records the window placement.
func (settings *Settings) SetGeometry(geometry Geometry) {
	settings.mu.Lock()
	defer settings.mu.Unlock()
	settings.options.Geometry = geometry
}

// Update applies fn to the options under the lock.
func (settings *Settings) Update(fn func(options *Options)) {
	settings.mu.Lock()
	defer settings.mu.Unlock()
	fn(&settings.options)
}

// Snapshot returns a copy of the current options.
func (settings *Settings) Snapshot() Options {
	settings.mu.RLock()
	defer settings.mu.RUnlock()
	return settings.options
}
