package sheetdef

import (
	"fmt"

	"github.com/go-props/props/pkg/errors"
)

// Definition describes one settings panel.
type Definition struct {
	Title      string        `yaml:"title,omitempty" toml:"title,omitempty"`
	Properties []PropertyDef `yaml:"properties" toml:"properties"`
}

// PropertyDef describes one entry of a panel.
//
// Widget selects the kind: "button", "checkbox", "switch", "slider",
// "spinbox", "combobox", "select", "textbox", or "separator". Numeric
// kinds additionally take Type ("f32", "f64", "i32", "i64"); sliders
// default to f64 and choice kinds to i32.
type PropertyDef struct {
	Name    string   `yaml:"name,omitempty" toml:"name,omitempty"`
	Widget  string   `yaml:"widget" toml:"widget"`
	Type    string   `yaml:"type,omitempty" toml:"type,omitempty"`
	Text    string   `yaml:"text,omitempty" toml:"text,omitempty"`
	Options []string `yaml:"options,omitempty" toml:"options,omitempty"`

	Min     float64 `yaml:"min,omitempty" toml:"min,omitempty"`
	Max     float64 `yaml:"max,omitempty" toml:"max,omitempty"`
	Step    float64 `yaml:"step,omitempty" toml:"step,omitempty"`
	Default float64 `yaml:"default,omitempty" toml:"default,omitempty"`

	// On is the initial state for switch and checkbox entries.
	On bool `yaml:"on,omitempty" toml:"on,omitempty"`

	// Value and MaxLength configure textbox entries.
	Value     string `yaml:"value,omitempty" toml:"value,omitempty"`
	MaxLength int    `yaml:"max_length,omitempty" toml:"max_length,omitempty"`

	// Action names the callback bound at build time. Defaults to Name.
	Action string `yaml:"action,omitempty" toml:"action,omitempty"`

	Hidden bool `yaml:"hidden,omitempty" toml:"hidden,omitempty"`
}

const (
	widgetButton    = "button"
	widgetCheckBox  = "checkbox"
	widgetSwitch    = "switch"
	widgetSlider    = "slider"
	widgetSpinBox   = "spinbox"
	widgetComboBox  = "combobox"
	widgetSelect    = "select"
	widgetTextBox   = "textbox"
	widgetSeparator = "separator"
)

// Validate checks the definition for mistakes a decode cannot catch:
// unknown widget or scalar kinds, choice entries without options, empty
// ranges, and non-positive steps. It reports the first problem found as a
// *errors.Error with KindDefinition.
func (d *Definition) Validate() error {
	const op = "sheetdef.Validate"
	for i, p := range d.Properties {
		at := func(format string, args ...any) error {
			return errors.E(op, errors.KindDefinition,
				fmt.Errorf("property %d (%q): %s", i, p.Name, fmt.Sprintf(format, args...)))
		}
		switch p.Widget {
		case widgetButton, widgetCheckBox, widgetSwitch, widgetTextBox, widgetSeparator:
		case widgetSlider, widgetSpinBox:
			if !validScalar(p.Type) {
				return at("unknown scalar type %q", p.Type)
			}
			if p.Min > p.Max {
				return at("min %v exceeds max %v", p.Min, p.Max)
			}
			if p.Step <= 0 {
				return at("step %v is not positive", p.Step)
			}
		case widgetComboBox, widgetSelect:
			if !choiceScalar(p.Type) {
				return at("choice entries take type i32 or i64, got %q", p.Type)
			}
			if len(p.Options) == 0 {
				return at("choice entries require at least one option")
			}
		default:
			return at("unknown widget kind %q", p.Widget)
		}
		if p.Widget != widgetSeparator && p.Name == "" {
			return at("missing name")
		}
	}
	return nil
}

func validScalar(t string) bool {
	switch t {
	case "", "f32", "f64", "i32", "i64":
		return true
	}
	return false
}

func choiceScalar(t string) bool {
	switch t {
	case "", "i32", "i64":
		return true
	}
	return false
}
