// Package settings carries the system-wide defaults numeric controls consult
// when field definitions leave a knob unset. Defaults are passed explicitly
// into constructors instead of read from ambient global state.
package settings

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Defaults holds raw registry values. Numeric settings stay strings on
// purpose: coercion happens at the use site so a missing or malformed value
// degrades to the caller's "not configured" signal instead of a silent zero.
type Defaults struct {
	// FloatPrecision is the decimal-digit count for Float and Percent
	// fields without an explicit precision.
	FloatPrecision string `yaml:"float_precision"`
	// CurrencyPrecision overrides FloatPrecision for Currency fields.
	CurrencyPrecision string `yaml:"currency_precision"`
	// NumberFormat is the fallback number-format pattern.
	NumberFormat string `yaml:"number_format"`
	// Currency is the default ISO 4217 code when no field or document
	// context resolves one.
	Currency string `yaml:"currency"`
}

// Option mutates Defaults during construction.
type Option func(*Defaults)

// New builds Defaults from the supplied options. Nil options are skipped.
func New(opts ...Option) Defaults {
	var defaults Defaults
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(&defaults)
	}
	return defaults
}

// WithFloatPrecision sets the default float precision registry value.
func WithFloatPrecision(value string) Option {
	return func(d *Defaults) { d.FloatPrecision = value }
}

// WithCurrencyPrecision sets the default currency precision registry value.
func WithCurrencyPrecision(value string) Option {
	return func(d *Defaults) { d.CurrencyPrecision = value }
}

// WithNumberFormat sets the fallback number-format pattern.
func WithNumberFormat(pattern string) Option {
	return func(d *Defaults) { d.NumberFormat = pattern }
}

// WithCurrency sets the default currency code.
func WithCurrency(code string) Option {
	return func(d *Defaults) { d.Currency = code }
}

// Load reads Defaults from a YAML file.
func Load(path string) (Defaults, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Defaults{}, fmt.Errorf("settings: read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes Defaults from YAML bytes.
func Parse(data []byte) (Defaults, error) {
	var defaults Defaults
	if err := yaml.Unmarshal(data, &defaults); err != nil {
		return Defaults{}, fmt.Errorf("settings: decode defaults: %w", err)
	}
	return defaults, nil
}
