package property

import (
	"sync"
	"sync/atomic"
)

// Callback decides the checked state that results from triggering an
// [Action]. It receives the property being triggered and the requested
// state; its return value becomes the new checked state, so a callback may
// veto or alter the requested transition.
type Callback func(p Property, requested bool) bool

// Action is a triggerable property: a push button or a check box. The
// stored callback runs exclusively — a trigger in flight blocks any other
// trigger on the same property, and the callback must not re-trigger the
// property it is handling.
type Action struct {
	Base
	checked atomic.Bool
	mu      sync.Mutex
	fn      Callback
}

// NewButton creates an Action rendered as a push button labeled text. A
// nil callback accepts every requested transition.
func NewButton(name, text string, fn Callback) *Action {
	a := &Action{fn: fn}
	initBase(&a.Base, name, []string{text}, ValueTypeAction, WidgetTypeButton)
	return a
}

// NewCheckBox creates an Action rendered as a check box with an initial
// checked state. A nil callback accepts every requested transition.
func NewCheckBox(name string, checked bool, fn Callback) *Action {
	a := &Action{fn: fn}
	initBase(&a.Base, name, nil, ValueTypeAction, WidgetTypeCheckBox)
	a.checked.Store(checked)
	return a
}

// Checked returns the current checked state.
func (a *Action) Checked() bool {
	return a.checked.Load()
}

// Trigger invokes the callback with the requested state, stores its
// verdict as the new checked state, and returns it.
func (a *Action) Trigger(requested bool) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	result := requested
	if a.fn != nil {
		result = a.fn(a, requested)
	}
	a.checked.Store(result)
	return result
}
