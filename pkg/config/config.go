// Package config resolves tooltip timing and hit-test tolerance.
//
// Values come from platform defaults, an optional hovertip.yaml file, and
// explicit overrides, in increasing order of precedence. The tooltip state
// machine never reads ambient state itself; it is handed a [Delays] value.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"
)

// FileName is the configuration file looked up by LoadOptional.
const FileName = "hovertip.yaml"

// CurrentVersion is the configuration schema version written by this module.
const CurrentVersion = "v1.0.0"

// DefaultTolerance is the hit-test tolerance in logical pixels.
const DefaultTolerance = 4.0

// ErrUnsupportedVersion is returned for a config whose major version is not v1.
var ErrUnsupportedVersion = errors.New("unsupported config version")

// Disabled turns a delay off: Initial shows at once, Show never hides on
// its own, Between opens no fast re-show window. Zero in a Delays value means
// unset, so Override skips it; use Disabled to turn a delay off from code.
// An explicit 0s in YAML decodes to Disabled.
const Disabled time.Duration = -1

// Delays holds the tooltip timing configuration.
type Delays struct {
	// Initial is how long the pointer must rest on a target before the
	// tooltip appears.
	Initial time.Duration `yaml:"initial,omitempty"`
	// Show is how long a tooltip stays visible.
	Show time.Duration `yaml:"show,omitempty"`
	// Between is the window after a hide during which a new target shows
	// its tooltip without the initial delay.
	Between time.Duration `yaml:"between,omitempty"`
}

// DefaultDelays returns the platform-style tooltip defaults.
func DefaultDelays() Delays {
	return Delays{
		Initial: 400 * time.Millisecond,
		Show:    5 * time.Second,
		Between: 100 * time.Millisecond,
	}
}

// IsZero reports whether no field is set.
func (d Delays) IsZero() bool {
	return d == Delays{}
}

// Override returns d with every non-zero field of o applied on top.
func (d Delays) Override(o Delays) Delays {
	if o.Initial != 0 {
		d.Initial = o.Initial
	}
	if o.Show != 0 {
		d.Show = o.Show
	}
	if o.Between != 0 {
		d.Between = o.Between
	}
	return d
}

// Validate rejects negative delays other than Disabled.
func (d Delays) Validate() error {
	switch {
	case d.Initial < 0 && d.Initial != Disabled:
		return fmt.Errorf("delays.initial must not be negative (got %s)", d.Initial)
	case d.Show < 0 && d.Show != Disabled:
		return fmt.Errorf("delays.show must not be negative (got %s)", d.Show)
	case d.Between < 0 && d.Between != Disabled:
		return fmt.Errorf("delays.between must not be negative (got %s)", d.Between)
	}
	return nil
}

// UnmarshalYAML decodes durations such as "800ms". A key that is present
// with a zero duration decodes to Disabled; an absent key stays unset.
func (d *Delays) UnmarshalYAML(value *yaml.Node) error {
	var raw struct {
		Initial *time.Duration `yaml:"initial"`
		Show    *time.Duration `yaml:"show"`
		Between *time.Duration `yaml:"between"`
	}
	if err := value.Decode(&raw); err != nil {
		return err
	}
	got := Delays{Initial: deref(raw.Initial), Show: deref(raw.Show), Between: deref(raw.Between)}
	if err := got.Validate(); err != nil {
		return err
	}
	*d = Delays{Initial: explicit(raw.Initial), Show: explicit(raw.Show), Between: explicit(raw.Between)}
	return nil
}

// FormatDelay renders a single delay, with Disabled shown as "off".
func FormatDelay(v time.Duration) string {
	if v == Disabled {
		return "off"
	}
	return v.String()
}

func deref(v *time.Duration) time.Duration {
	if v == nil {
		return 0
	}
	return *v
}

func explicit(v *time.Duration) time.Duration {
	if v != nil && *v == 0 {
		return Disabled
	}
	return deref(v)
}

// Config represents the optional hovertip.yaml configuration.
type Config struct {
	Version   string  `yaml:"version,omitempty"`
	Delays    Delays  `yaml:"delays"`
	Tolerance float64 `yaml:"tolerance,omitempty"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Version:   CurrentVersion,
		Delays:    DefaultDelays(),
		Tolerance: DefaultTolerance,
	}
}

// Load reads and validates the configuration at path. Unset fields fall
// back to the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", filepath.Base(path), err)
	}
	return Parse(data)
}

// LoadOptional reads hovertip.yaml from dir if present.
func LoadOptional(dir string) (*Config, error) {
	cfg, err := Load(filepath.Join(dir, FileName))
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// Parse decodes YAML configuration data.
func Parse(data []byte) (*Config, error) {
	var raw Config
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", FileName, err)
	}

	if err := validateVersion(raw.Version); err != nil {
		return nil, err
	}
	if err := raw.Delays.Validate(); err != nil {
		return nil, err
	}
	if raw.Tolerance < 0 || math.IsNaN(raw.Tolerance) || math.IsInf(raw.Tolerance, 0) {
		return nil, fmt.Errorf("tolerance must be a finite non-negative number (got %v)", raw.Tolerance)
	}

	cfg := Default()
	if v := strings.TrimSpace(raw.Version); v != "" {
		cfg.Version = v
	}
	cfg.Delays = cfg.Delays.Override(raw.Delays)
	if raw.Tolerance != 0 {
		cfg.Tolerance = raw.Tolerance
	}
	return cfg, nil
}

func validateVersion(v string) error {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil
	}
	if !semver.IsValid(v) {
		return fmt.Errorf("version %q is not a semantic version", v)
	}
	if semver.Major(v) != semver.Major(CurrentVersion) {
		return fmt.Errorf("%w: %s", ErrUnsupportedVersion, v)
	}
	return nil
}
