package property

// ValueType identifies the kind of value a property stores. It is the
// discriminant callers should switch on before reaching for a typed
// accessor.
type ValueType int

const (
	// ValueTypeUnknown indicates a property of unknown kind.
	ValueTypeUnknown ValueType = iota
	// ValueTypeAction indicates a triggerable action (button, check box).
	ValueTypeAction
	// ValueTypeBool indicates an on/off switch value.
	ValueTypeBool
	// ValueTypeDummy indicates a valueless layout marker (separator).
	ValueTypeDummy
	// ValueTypeF32 indicates a float32 value.
	ValueTypeF32
	// ValueTypeF64 indicates a float64 value.
	ValueTypeF64
	// ValueTypeI32 indicates an int32 value.
	ValueTypeI32
	// ValueTypeI64 indicates an int64 value.
	ValueTypeI64
	// ValueTypeString indicates a text value.
	ValueTypeString
)

func (t ValueType) String() string {
	switch t {
	case ValueTypeAction:
		return "action"
	case ValueTypeBool:
		return "bool"
	case ValueTypeDummy:
		return "dummy"
	case ValueTypeF32:
		return "f32"
	case ValueTypeF64:
		return "f64"
	case ValueTypeI32:
		return "i32"
	case ValueTypeI64:
		return "i64"
	case ValueTypeString:
		return "string"
	default:
		return "unknown"
	}
}

// WidgetType hints how a presenter should render a property. The registry
// never interprets it beyond one rule: a property whose widget type is
// [WidgetTypeSeparator] is not selectable.
type WidgetType int

const (
	// WidgetTypeUnknown indicates an unspecified widget.
	WidgetTypeUnknown WidgetType = iota
	// WidgetTypeButton renders as a push button.
	WidgetTypeButton
	// WidgetTypeCheckBox renders as a check box.
	WidgetTypeCheckBox
	// WidgetTypeComboBox renders as a drop-down choice list.
	WidgetTypeComboBox
	// WidgetTypeSelect renders as an inline choice list.
	WidgetTypeSelect
	// WidgetTypeSeparator renders as a non-interactive divider.
	WidgetTypeSeparator
	// WidgetTypeSlider renders as a draggable slider.
	WidgetTypeSlider
	// WidgetTypeSpinBox renders as a numeric field with step arrows.
	WidgetTypeSpinBox
	// WidgetTypeSwitch renders as an on/off toggle.
	WidgetTypeSwitch
	// WidgetTypeTextBox renders as an editable text field.
	WidgetTypeTextBox
)

func (t WidgetType) String() string {
	switch t {
	case WidgetTypeButton:
		return "button"
	case WidgetTypeCheckBox:
		return "checkbox"
	case WidgetTypeComboBox:
		return "combobox"
	case WidgetTypeSelect:
		return "select"
	case WidgetTypeSeparator:
		return "separator"
	case WidgetTypeSlider:
		return "slider"
	case WidgetTypeSpinBox:
		return "spinbox"
	case WidgetTypeSwitch:
		return "switch"
	case WidgetTypeTextBox:
		return "textbox"
	default:
		return "unknown"
	}
}
