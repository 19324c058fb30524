package sheetdef

import (
	"fmt"

	"github.com/go-props/props/pkg/errors"
	"github.com/go-props/props/pkg/property"
)

// BuildOptions configure sheet construction.
type BuildOptions struct {
	// Actions binds action names (a PropertyDef's Action field, falling
	// back to its Name) to callbacks. An unbound action gets a
	// pass-through callback that accepts every requested transition.
	Actions map[string]property.Callback
}

// Build constructs a property sheet from the definition. The definition
// should already have passed Validate; Build revalidates and reports the
// same errors so that a hand-assembled Definition cannot bypass checking.
func (d *Definition) Build(opts BuildOptions) (*property.Sheet, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}

	s := property.NewSheet()
	for _, p := range d.Properties {
		item, err := buildOne(p, opts)
		if err != nil {
			return nil, err
		}
		if p.Hidden {
			item.Hide()
		}
		s.Append(item)
	}
	return s, nil
}

func buildOne(p PropertyDef, opts BuildOptions) (property.Property, error) {
	switch p.Widget {
	case widgetSeparator:
		return property.NewSeparator(), nil
	case widgetButton:
		text := p.Text
		if text == "" {
			text = p.Name
		}
		return property.NewButton(p.Name, text, opts.callback(p)), nil
	case widgetCheckBox:
		return property.NewCheckBox(p.Name, p.On, opts.callback(p)), nil
	case widgetSwitch:
		return property.NewSwitch(p.Name, p.On), nil
	case widgetTextBox:
		maxLen := p.MaxLength
		if maxLen == 0 {
			maxLen = 256
		}
		return property.NewTextBox(p.Name, maxLen, p.Value), nil
	case widgetSlider, widgetSpinBox:
		return buildNumber(p)
	case widgetComboBox:
		if p.Type == "i64" {
			return property.NewComboBoxI64(p.Name, p.Options, int64(p.Default)), nil
		}
		return property.NewComboBoxI32(p.Name, p.Options, int32(p.Default)), nil
	case widgetSelect:
		if p.Type == "i64" {
			return property.NewSelectI64(p.Name, p.Options, int64(p.Default)), nil
		}
		return property.NewSelectI32(p.Name, p.Options, int32(p.Default)), nil
	}
	return nil, errors.E("sheetdef.Build", errors.KindDefinition,
		fmt.Errorf("unknown widget kind %q", p.Widget))
}

func buildNumber(p PropertyDef) (property.Property, error) {
	spin := p.Widget == widgetSpinBox
	switch p.Type {
	case "f32":
		rng := property.Range[float32]{Min: float32(p.Min), Max: float32(p.Max)}
		if spin {
			return property.NewSpinBoxF32(p.Name, rng, float32(p.Step), float32(p.Default)), nil
		}
		return property.NewSliderF32(p.Name, rng, float32(p.Step), float32(p.Default)), nil
	case "i32":
		rng := property.Range[int32]{Min: int32(p.Min), Max: int32(p.Max)}
		if spin {
			return property.NewSpinBoxI32(p.Name, rng, int32(p.Step), int32(p.Default)), nil
		}
		return property.NewSliderI32(p.Name, rng, int32(p.Step), int32(p.Default)), nil
	case "i64":
		rng := property.Range[int64]{Min: int64(p.Min), Max: int64(p.Max)}
		if spin {
			return property.NewSpinBoxI64(p.Name, rng, int64(p.Step), int64(p.Default)), nil
		}
		return property.NewSliderI64(p.Name, rng, int64(p.Step), int64(p.Default)), nil
	case "", "f64":
		rng := property.Range[float64]{Min: p.Min, Max: p.Max}
		if spin {
			return property.NewSpinBoxF64(p.Name, rng, p.Step, p.Default), nil
		}
		return property.NewSliderF64(p.Name, rng, p.Step, p.Default), nil
	}
	return nil, errors.E("sheetdef.Build", errors.KindDefinition,
		fmt.Errorf("unknown scalar type %q", p.Type))
}

func (o BuildOptions) callback(p PropertyDef) property.Callback {
	key := p.Action
	if key == "" {
		key = p.Name
	}
	if fn, ok := o.Actions[key]; ok {
		return fn
	}
	return nil
}
