package property

import "sync/atomic"

// Bool is an on/off property rendered as a switch.
type Bool struct {
	Base
	defVal bool
	value  atomic.Bool
}

// NewSwitch creates a Bool property with the given default value.
func NewSwitch(name string, defVal bool) *Bool {
	b := &Bool{defVal: defVal}
	initBase(&b.Base, name, nil, ValueTypeBool, WidgetTypeSwitch)
	b.value.Store(defVal)
	return b
}

// Default returns the value the property was constructed with.
func (b *Bool) Default() bool {
	return b.defVal
}

// Value returns the current value.
func (b *Bool) Value() bool {
	return b.value.Load()
}

// SetValue stores v unconditionally and returns it.
func (b *Bool) SetValue(v bool) bool {
	b.value.Store(v)
	return v
}

// Toggle negates the current value and returns the new one.
func (b *Bool) Toggle() bool {
	for {
		cur := b.value.Load()
		if b.value.CompareAndSwap(cur, !cur) {
			return !cur
		}
	}
}
