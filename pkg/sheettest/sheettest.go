// Package sheettest provides fixtures and finder helpers for testing code
// that consumes property sheets.
//
// A typical test builds the standard fixture and asserts against it:
//
//	s := sheettest.Fixture()
//	gain := sheettest.RequireFloat32(t, s, "Gain")
//	gain.SetValue(2)
package sheettest

import (
	"testing"

	"github.com/go-props/props/pkg/property"
)

// Fixture returns a representative sheet covering every property kind:
// two buttons, a separator, sliders of each scalar kind, a combo box, a
// switch, and a text box.
func Fixture() *property.Sheet {
	s := property.NewSheet()
	s.ActionButton("Foo", "Click Me", nil)
	s.ActionButton("Bar", "Click Me", nil)
	s.Separator()
	s.SliderF32("Gain", property.Range[float32]{Min: -1, Max: 1}, 0.01, 0)
	s.SliderF64("Wide", property.Range[float64]{Min: -1000, Max: 1000}, 10, 0)
	s.SliderI32("Count", property.Range[int32]{Min: 0, Max: 100}, 1, 50)
	s.SliderI64("Big", property.Range[int64]{Min: 0, Max: 1 << 40}, 1<<10, 0)
	s.ComboBoxI32("Mode", []string{"A", "B", "C"}, 0)
	s.Switch("Enabled", false)
	s.TextBox("Label", 128, "Okay")
	return s
}

// Names returns the property names in storage order.
func Names(s *property.Sheet) []string {
	names := make([]string, 0, s.Len())
	for _, p := range s.Items() {
		names = append(names, p.Name())
	}
	return names
}

// SelectedNames returns the names of all selected properties in storage
// order.
func SelectedNames(s *property.Sheet) []string {
	var names []string
	for _, p := range s.Items() {
		if p.Selected() {
			names = append(names, p.Name())
		}
	}
	return names
}

// RequireFind returns the first property named name, failing the test if
// it is absent.
func RequireFind(t *testing.T, s *property.Sheet, name string) property.Property {
	t.Helper()
	p, ok := s.Find(name)
	if !ok {
		t.Fatalf("sheet has no property named %q", name)
	}
	return p
}

// RequireAction returns the named property as an Action, failing the test
// on a miss or kind mismatch.
func RequireAction(t *testing.T, s *property.Sheet, name string) *property.Action {
	t.Helper()
	a, ok := property.AsAction(RequireFind(t, s, name))
	if !ok {
		t.Fatalf("property %q is not an action", name)
	}
	return a
}

// RequireBool returns the named property as a Bool, failing the test on a
// miss or kind mismatch.
func RequireBool(t *testing.T, s *property.Sheet, name string) *property.Bool {
	t.Helper()
	b, ok := property.AsBool(RequireFind(t, s, name))
	if !ok {
		t.Fatalf("property %q is not a bool", name)
	}
	return b
}

// RequireFloat32 returns the named property as a float32 Number, failing
// the test on a miss or kind mismatch.
func RequireFloat32(t *testing.T, s *property.Sheet, name string) *property.Number[float32] {
	t.Helper()
	n, ok := property.AsFloat32(RequireFind(t, s, name))
	if !ok {
		t.Fatalf("property %q is not a float32 number", name)
	}
	return n
}

// RequireInt32 returns the named property as an int32 Number, failing the
// test on a miss or kind mismatch.
func RequireInt32(t *testing.T, s *property.Sheet, name string) *property.Number[int32] {
	t.Helper()
	n, ok := property.AsInt32(RequireFind(t, s, name))
	if !ok {
		t.Fatalf("property %q is not an int32 number", name)
	}
	return n
}

// RequireString returns the named property as a String, failing the test
// on a miss or kind mismatch.
func RequireString(t *testing.T, s *property.Sheet, name string) *property.String {
	t.Helper()
	str, ok := property.AsString(RequireFind(t, s, name))
	if !ok {
		t.Fatalf("property %q is not a string", name)
	}
	return str
}
