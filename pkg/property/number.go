package property

import (
	"math"
	"sync/atomic"
)

// Scalar enumerates the value types a [Number] property can store.
type Scalar interface {
	float32 | float64 | int32 | int64
}

// Range bounds a numeric property's value.
type Range[T Scalar] struct {
	Min, Max T
}

// Number is a numeric property: a slider, spin box, combo box, or select.
// The value is stored bit-encoded in a single atomic word, so concurrent
// readers and writers through a shared reference are race-free without any
// sheet-level lock.
//
// Mutation through [Number.SetValue], [Number.StepForward], and
// [Number.StepBackward] always clamps into the configured range. The
// default value is stored as-is at construction and is NOT clamped; a
// caller that wants a guaranteed in-range default should pass one.
type Number[T Scalar] struct {
	Base
	rng    Range[T]
	step   T
	defVal T
	value  atomic.Uint64
}

func newNumber[T Scalar](name string, options []string, vt ValueType, wt WidgetType, rng Range[T], step, defVal T) *Number[T] {
	p := &Number[T]{rng: rng, step: step, defVal: defVal}
	initBase(&p.Base, name, options, vt, wt)
	p.value.Store(scalarBits(defVal))
	return p
}

// Range returns the property's min/max bounds.
func (p *Number[T]) Range() Range[T] {
	return p.rng
}

// Step returns the increment applied by StepForward and StepBackward.
func (p *Number[T]) Step() T {
	return p.step
}

// Default returns the value the property was constructed with.
func (p *Number[T]) Default() T {
	return p.defVal
}

// Value returns the current value.
func (p *Number[T]) Value() T {
	return scalarFromBits[T](p.value.Load())
}

// SetValue stores v clamped into the property's range and returns the
// stored value.
func (p *Number[T]) SetValue(v T) T {
	clamped := clampScalar(v, p.rng)
	p.value.Store(scalarBits(clamped))
	return clamped
}

// StepForward increases the value by one step, clamps it into range, and
// returns the new value.
func (p *Number[T]) StepForward() T {
	return p.SetValue(p.Value() + p.step)
}

// StepBackward decreases the value by one step, clamps it into range, and
// returns the new value.
func (p *Number[T]) StepBackward() T {
	return p.SetValue(p.Value() - p.step)
}

// clampScalar constrains v to the range by taking the min against the
// upper bound and then the max against the lower bound, which stays
// correct even when the bounds are given out of order.
func clampScalar[T Scalar](v T, r Range[T]) T {
	if v > r.Max {
		v = r.Max
	}
	if v < r.Min {
		v = r.Min
	}
	return v
}

func scalarBits[T Scalar](v T) uint64 {
	switch v := any(v).(type) {
	case float32:
		return uint64(math.Float32bits(v))
	case float64:
		return math.Float64bits(v)
	case int32:
		return uint64(uint32(v))
	case int64:
		return uint64(v)
	}
	panic("property: unreachable scalar kind")
}

func scalarFromBits[T Scalar](bits uint64) T {
	var zero T
	switch any(zero).(type) {
	case float32:
		return any(math.Float32frombits(uint32(bits))).(T)
	case float64:
		return any(math.Float64frombits(bits)).(T)
	case int32:
		return any(int32(uint32(bits))).(T)
	case int64:
		return any(int64(bits)).(T)
	}
	panic("property: unreachable scalar kind")
}

// NewSliderF32 creates a float32 property rendered as a slider.
func NewSliderF32(name string, rng Range[float32], step, defVal float32) *Number[float32] {
	return newNumber(name, nil, ValueTypeF32, WidgetTypeSlider, rng, step, defVal)
}

// NewSliderF64 creates a float64 property rendered as a slider.
func NewSliderF64(name string, rng Range[float64], step, defVal float64) *Number[float64] {
	return newNumber(name, nil, ValueTypeF64, WidgetTypeSlider, rng, step, defVal)
}

// NewSliderI32 creates an int32 property rendered as a slider.
func NewSliderI32(name string, rng Range[int32], step, defVal int32) *Number[int32] {
	return newNumber(name, nil, ValueTypeI32, WidgetTypeSlider, rng, step, defVal)
}

// NewSliderI64 creates an int64 property rendered as a slider.
func NewSliderI64(name string, rng Range[int64], step, defVal int64) *Number[int64] {
	return newNumber(name, nil, ValueTypeI64, WidgetTypeSlider, rng, step, defVal)
}

// NewSpinBoxI32 creates an int32 property rendered as a spin box.
func NewSpinBoxI32(name string, rng Range[int32], step, defVal int32) *Number[int32] {
	return newNumber(name, nil, ValueTypeI32, WidgetTypeSpinBox, rng, step, defVal)
}

// NewSpinBoxI64 creates an int64 property rendered as a spin box.
func NewSpinBoxI64(name string, rng Range[int64], step, defVal int64) *Number[int64] {
	return newNumber(name, nil, ValueTypeI64, WidgetTypeSpinBox, rng, step, defVal)
}

// NewSpinBoxF32 creates a float32 property rendered as a spin box.
func NewSpinBoxF32(name string, rng Range[float32], step, defVal float32) *Number[float32] {
	return newNumber(name, nil, ValueTypeF32, WidgetTypeSpinBox, rng, step, defVal)
}

// NewSpinBoxF64 creates a float64 property rendered as a spin box.
func NewSpinBoxF64(name string, rng Range[float64], step, defVal float64) *Number[float64] {
	return newNumber(name, nil, ValueTypeF64, WidgetTypeSpinBox, rng, step, defVal)
}

// NewComboBoxI32 creates an int32 choice property rendered as a drop-down.
// The value indexes into options; the range is fixed to
// [0, len(options)-1] with step 1. Panics if options is empty.
func NewComboBoxI32(name string, options []string, defVal int32) *Number[int32] {
	mustOptions("NewComboBoxI32", options)
	rng := Range[int32]{Min: 0, Max: int32(len(options) - 1)}
	return newNumber(name, options, ValueTypeI32, WidgetTypeComboBox, rng, 1, defVal)
}

// NewComboBoxI64 creates an int64 choice property rendered as a drop-down.
// Panics if options is empty.
func NewComboBoxI64(name string, options []string, defVal int64) *Number[int64] {
	mustOptions("NewComboBoxI64", options)
	rng := Range[int64]{Min: 0, Max: int64(len(options) - 1)}
	return newNumber(name, options, ValueTypeI64, WidgetTypeComboBox, rng, 1, defVal)
}

// NewSelectI32 creates an int32 choice property rendered as an inline
// select list. Panics if options is empty.
func NewSelectI32(name string, options []string, defVal int32) *Number[int32] {
	mustOptions("NewSelectI32", options)
	rng := Range[int32]{Min: 0, Max: int32(len(options) - 1)}
	return newNumber(name, options, ValueTypeI32, WidgetTypeSelect, rng, 1, defVal)
}

// NewSelectI64 creates an int64 choice property rendered as an inline
// select list. Panics if options is empty.
func NewSelectI64(name string, options []string, defVal int64) *Number[int64] {
	mustOptions("NewSelectI64", options)
	rng := Range[int64]{Min: 0, Max: int64(len(options) - 1)}
	return newNumber(name, options, ValueTypeI64, WidgetTypeSelect, rng, 1, defVal)
}

func mustOptions(op string, options []string) {
	if len(options) == 0 {
		panic("property: " + op + " requires at least one option")
	}
}
