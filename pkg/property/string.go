package property

import "sync"

// String is a text property rendered as a text box. The buffer is guarded
// by a read-write mutex, so concurrent readers and writers through a
// shared reference are race-free.
//
// MaxLength is advisory capacity metadata for presenters and editors; the
// registry itself never truncates or rejects overlong content.
type String struct {
	Base
	maxLength int
	defVal    string

	mu    sync.RWMutex
	value string
}

// NewTextBox creates a String property. maxLength documents the intended
// editing capacity and is not enforced.
func NewTextBox(name string, maxLength int, defVal string) *String {
	s := &String{maxLength: maxLength, defVal: defVal, value: defVal}
	initBase(&s.Base, name, nil, ValueTypeString, WidgetTypeTextBox)
	return s
}

// MaxLength returns the advisory capacity.
func (s *String) MaxLength() int {
	return s.maxLength
}

// Default returns the value the property was constructed with.
func (s *String) Default() string {
	return s.defVal
}

// Value returns the current content.
func (s *String) Value() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.value
}

// SetValue replaces the content wholesale and returns the new content.
func (s *String) SetValue(v string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.value = v
	return s.value
}

// Append extends the content in place and returns the new content. It is
// the editing counterpart to SetValue for incremental input.
func (s *String) Append(tail string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.value += tail
	return s.value
}

// Update applies fn to the current content under the write lock and
// stores, then returns, the result.
func (s *String) Update(fn func(string) string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.value = fn(s.value)
	return s.value
}
