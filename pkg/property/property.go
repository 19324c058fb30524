package property

// Property is the uniform surface every registry entry implements. It
// exposes metadata and shared state only; values live on the concrete
// kinds, reached through the As* helpers or the typed accessors below.
type Property interface {
	// ID returns the position-derived identity within the owning sheet.
	ID() int
	// SetID changes the identity. Called by sheets during structural
	// mutation.
	SetID(id int)
	// Name returns the immutable display name.
	Name() string
	// Options returns the ordered option labels for choice/action kinds.
	Options() []string
	// ValueType returns the value-kind discriminant.
	ValueType() ValueType
	// WidgetType returns the rendering hint.
	WidgetType() WidgetType
	// Selectable reports whether the entry may receive navigation focus.
	Selectable() bool
	// Selected reports the selection marker.
	Selected() bool
	// SetSelected changes the selection marker.
	SetSelected(selected bool)
	// Visible reports whether the entry should be drawn.
	Visible() bool
	// SetVisible changes visibility.
	SetVisible(visible bool)
	// Show marks the entry visible.
	Show()
	// Hide marks the entry invisible.
	Hide()
}

// AsAction reports whether p is an [Action], returning it if so.
func AsAction(p Property) (*Action, bool) {
	a, ok := p.(*Action)
	return a, ok
}

// AsBool reports whether p is a [Bool], returning it if so.
func AsBool(p Property) (*Bool, bool) {
	b, ok := p.(*Bool)
	return b, ok
}

// AsFloat32 reports whether p is a float32 [Number], returning it if so.
func AsFloat32(p Property) (*Number[float32], bool) {
	n, ok := p.(*Number[float32])
	return n, ok
}

// AsFloat64 reports whether p is a float64 [Number], returning it if so.
func AsFloat64(p Property) (*Number[float64], bool) {
	n, ok := p.(*Number[float64])
	return n, ok
}

// AsInt32 reports whether p is an int32 [Number], returning it if so.
func AsInt32(p Property) (*Number[int32], bool) {
	n, ok := p.(*Number[int32])
	return n, ok
}

// AsInt64 reports whether p is an int64 [Number], returning it if so.
func AsInt64(p Property) (*Number[int64], bool) {
	n, ok := p.(*Number[int64])
	return n, ok
}

// AsString reports whether p is a [String], returning it if so.
func AsString(p Property) (*String, bool) {
	s, ok := p.(*String)
	return s, ok
}

// AsSeparator reports whether p is a [Separator], returning it if so.
func AsSeparator(p Property) (*Separator, bool) {
	s, ok := p.(*Separator)
	return s, ok
}

// ActionChecked returns the checked state of an [Action] property. The
// second result is false when p is any other kind.
func ActionChecked(p Property) (bool, bool) {
	if a, ok := AsAction(p); ok {
		return a.Checked(), true
	}
	return false, false
}

// TriggerAction triggers an [Action] property and returns the resulting
// checked state. The second result is false when p is any other kind.
func TriggerAction(p Property, requested bool) (bool, bool) {
	if a, ok := AsAction(p); ok {
		return a.Trigger(requested), true
	}
	return false, false
}

// BoolValue returns the value of a [Bool] property.
func BoolValue(p Property) (bool, bool) {
	if b, ok := AsBool(p); ok {
		return b.Value(), true
	}
	return false, false
}

// SetBoolValue sets the value of a [Bool] property and returns the stored
// value.
func SetBoolValue(p Property, v bool) (bool, bool) {
	if b, ok := AsBool(p); ok {
		return b.SetValue(v), true
	}
	return false, false
}

// Float32Value returns the value of a float32 [Number] property.
func Float32Value(p Property) (float32, bool) {
	if n, ok := AsFloat32(p); ok {
		return n.Value(), true
	}
	return 0, false
}

// SetFloat32Value sets the value of a float32 [Number] property and
// returns the stored, possibly clamped, value.
func SetFloat32Value(p Property, v float32) (float32, bool) {
	if n, ok := AsFloat32(p); ok {
		return n.SetValue(v), true
	}
	return 0, false
}

// Float64Value returns the value of a float64 [Number] property.
func Float64Value(p Property) (float64, bool) {
	if n, ok := AsFloat64(p); ok {
		return n.Value(), true
	}
	return 0, false
}

// SetFloat64Value sets the value of a float64 [Number] property and
// returns the stored, possibly clamped, value.
func SetFloat64Value(p Property, v float64) (float64, bool) {
	if n, ok := AsFloat64(p); ok {
		return n.SetValue(v), true
	}
	return 0, false
}

// Int32Value returns the value of an int32 [Number] property.
func Int32Value(p Property) (int32, bool) {
	if n, ok := AsInt32(p); ok {
		return n.Value(), true
	}
	return 0, false
}

// SetInt32Value sets the value of an int32 [Number] property and returns
// the stored, possibly clamped, value.
func SetInt32Value(p Property, v int32) (int32, bool) {
	if n, ok := AsInt32(p); ok {
		return n.SetValue(v), true
	}
	return 0, false
}

// Int64Value returns the value of an int64 [Number] property.
func Int64Value(p Property) (int64, bool) {
	if n, ok := AsInt64(p); ok {
		return n.Value(), true
	}
	return 0, false
}

// SetInt64Value sets the value of an int64 [Number] property and returns
// the stored, possibly clamped, value.
func SetInt64Value(p Property, v int64) (int64, bool) {
	if n, ok := AsInt64(p); ok {
		return n.SetValue(v), true
	}
	return 0, false
}

// StringValue returns the value of a [String] property.
func StringValue(p Property) (string, bool) {
	if s, ok := AsString(p); ok {
		return s.Value(), true
	}
	return "", false
}

// SetStringValue replaces the value of a [String] property and returns the
// new content.
func SetStringValue(p Property, v string) (string, bool) {
	if s, ok := AsString(p); ok {
		return s.SetValue(v), true
	}
	return "", false
}
