package config

import "time"

// Default timing values in milliseconds. These are product-tuned
// constants; override them in config.yaml rather than editing here.
const (
	DefaultOverlayDelayMs  = 200
	DefaultStandardDelayMs = 550
	DefaultPiPHysteresisMs = 750

	DefaultAlertDialogClass = "AlertDialog"
)

// Timing holds the debounce and hysteresis intervals of the interpreter.
type Timing struct {
	// OverlayDelayMs is the short settling delay applied while a fresh
	// overlay window is present.
	OverlayDelayMs int `yaml:"overlay_delay_ms"`
	// StandardDelayMs is the settling delay applied to full window
	// transitions (app launches, split-screen changes).
	StandardDelayMs int `yaml:"standard_delay_ms"`
	// PiPHysteresisMs is the window within which a picture-in-picture
	// disappear/reappear pair is treated as no change.
	PiPHysteresisMs int `yaml:"pip_hysteresis_ms"`
}

// OverlayDelay returns the overlay settling delay as a duration.
func (t Timing) OverlayDelay() time.Duration {
	return time.Duration(t.OverlayDelayMs) * time.Millisecond
}

// StandardDelay returns the window-transition settling delay as a duration.
func (t Timing) StandardDelay() time.Duration {
	return time.Duration(t.StandardDelayMs) * time.Millisecond
}

// PiPHysteresis returns the picture-in-picture hysteresis window as a duration.
func (t Timing) PiPHysteresis() time.Duration {
	return time.Duration(t.PiPHysteresisMs) * time.Millisecond
}

// Config is the effective winroles configuration.
type Config struct {
	Timing Timing `yaml:"timing"`

	// AlertDialogClass is the exact window class name that marks a
	// window as an alert dialog. Alert dialogs are trusted immediately
	// and never deferred.
	AlertDialogClass string `yaml:"alert_dialog_class"`

	// RightToLeft inverts the horizontal tie-break used when ordering
	// windows by screen position.
	RightToLeft bool `yaml:"right_to_left"`
}

// Default returns a config populated with the built-in defaults.
func Default() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

// applyDefaults fills zero-valued fields with the built-in defaults.
func (c *Config) applyDefaults() {
	if c.Timing.OverlayDelayMs <= 0 {
		c.Timing.OverlayDelayMs = DefaultOverlayDelayMs
	}
	if c.Timing.StandardDelayMs <= 0 {
		c.Timing.StandardDelayMs = DefaultStandardDelayMs
	}
	if c.Timing.PiPHysteresisMs <= 0 {
		c.Timing.PiPHysteresisMs = DefaultPiPHysteresisMs
	}
	if c.AlertDialogClass == "" {
		c.AlertDialogClass = DefaultAlertDialogClass
	}
}
