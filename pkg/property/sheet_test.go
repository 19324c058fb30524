package property

import (
	"sync"
	"testing"
)

func checkIdentity(t *testing.T, s *Sheet) {
	t.Helper()
	for k := 0; k < s.Len(); k++ {
		p, ok := s.Get(k)
		if !ok {
			t.Fatalf("Get(%d) missing with Len() = %d", k, s.Len())
		}
		if p.ID() != k {
			t.Errorf("item at position %d has id %d", k, p.ID())
		}
	}
}

func TestAppendAssignsSequentialIDs(t *testing.T) {
	s := NewSheet()
	s.ActionButton("Foo", "Click Me", nil)
	s.ComboBoxI32("Mode", []string{"A", "B", "C"}, 0)
	s.SliderF32("Gain", Range[float32]{Min: -1, Max: 1}, 0.01, 0)
	s.Switch("Enabled", false)
	s.TextBox("Label", 128, "Okay")

	if s.Len() != 5 || s.IsEmpty() {
		t.Fatalf("Len() = %d, IsEmpty() = %v", s.Len(), s.IsEmpty())
	}
	checkIdentity(t, s)
}

func TestInsertRenumbers(t *testing.T) {
	s := NewSheet()
	s.Switch("A", false)
	s.Switch("B", false)
	s.Switch("C", false)

	s.Insert(1, NewSwitch("Inserted", true))
	checkIdentity(t, s)
	if p, _ := s.Get(1); p.Name() != "Inserted" {
		t.Errorf("item at 1 is %q, want Inserted", p.Name())
	}
	if p, _ := s.Get(3); p.Name() != "C" {
		t.Errorf("item at 3 is %q, want C", p.Name())
	}

	s.Insert(0, NewSwitch("First", true))
	s.Insert(s.Len(), NewSwitch("Last", true))
	checkIdentity(t, s)
}

func TestRemoveRenumbers(t *testing.T) {
	s := NewSheet()
	s.Switch("A", false)
	s.Switch("B", false)
	s.Switch("C", false)
	s.Switch("D", false)

	removed := s.Remove(1)
	if removed.Name() != "B" {
		t.Fatalf("Remove(1) returned %q, want B", removed.Name())
	}
	// The detached property keeps its last id; survivors renumber.
	if removed.ID() != 1 {
		t.Errorf("removed item id = %d, want 1", removed.ID())
	}
	checkIdentity(t, s)

	// Removing the first item must not disturb the invariant either.
	s.Remove(0)
	checkIdentity(t, s)
}

func TestStructuralPreconditionsPanic(t *testing.T) {
	s := NewSheet()
	s.Switch("A", false)

	tests := []struct {
		name string
		fn   func()
	}{
		{"insert negative", func() { s.Insert(-1, NewSwitch("X", false)) }},
		{"insert past end", func() { s.Insert(2, NewSwitch("X", false)) }},
		{"remove negative", func() { s.Remove(-1) }},
		{"remove at len", func() { s.Remove(1) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("expected panic")
				}
			}()
			tt.fn()
		})
	}
}

func TestFindReturnsFirstMatch(t *testing.T) {
	s := NewSheet()
	first := s.Switch("Dup", false)
	s.Switch("Other", false)
	s.Switch("Dup", true)

	p, ok := s.Find("Dup")
	if !ok {
		t.Fatal("Find(Dup) missed")
	}
	if p.ID() != first.ID() {
		t.Errorf("Find(Dup) id = %d, want %d", p.ID(), first.ID())
	}
	if _, ok := s.Find("Absent"); ok {
		t.Error("Find(Absent) reported a match")
	}
}

func TestNewSheetWithRenumbers(t *testing.T) {
	items := []Property{
		NewSwitch("A", false),
		NewSeparator(),
		NewTextBox("B", 16, ""),
	}
	s := NewSheetWith(items)
	checkIdentity(t, s)
}

func TestSelectIDsIsExclusive(t *testing.T) {
	s := NewSheet()
	s.Switch("A", false)
	s.Switch("B", false)
	s.Switch("C", false)

	s.SelectIDs(0, 2)
	if got := s.SelectedIDs(); len(got) != 2 || got[0] != 0 || got[1] != 2 {
		t.Fatalf("SelectedIDs() = %v, want [0 2]", got)
	}

	s.SelectIDs(1)
	if got := s.SelectedIDs(); len(got) != 1 || got[0] != 1 {
		t.Fatalf("SelectedIDs() after reselect = %v, want [1]", got)
	}

	cur, ok := s.CurrentSelected()
	if !ok || cur.Name() != "B" {
		t.Errorf("CurrentSelected() = %v, %v; want B", cur, ok)
	}

	s.SelectIDs()
	if got := s.SelectedIDs(); len(got) != 0 {
		t.Errorf("SelectedIDs() after clearing = %v, want empty", got)
	}
	if _, ok := s.CurrentSelected(); ok {
		t.Error("CurrentSelected() reported a selection on a cleared sheet")
	}
}

func navSheet() *Sheet {
	s := NewSheet()
	s.ActionButton("Foo", "Click Me", nil)
	s.ActionButton("Bar", "Click Me", nil)
	s.Separator()
	s.SliderF32("F1", Range[float32]{Min: 0, Max: 1}, 0.1, 0)
	return s
}

func TestSelectNextSkipsSeparator(t *testing.T) {
	s := navSheet()
	s.SelectIDs(1)

	s.SelectNext()
	if got := s.SelectedIDs(); len(got) != 1 || got[0] != 3 {
		t.Errorf("SelectedIDs() = %v, want [3]", got)
	}
}

func TestSelectPrevSkipsSeparator(t *testing.T) {
	s := navSheet()
	s.SelectIDs(3)

	s.SelectPrev()
	if got := s.SelectedIDs(); len(got) != 1 || got[0] != 1 {
		t.Errorf("SelectedIDs() = %v, want [1]", got)
	}
}

func TestSelectNextStopsAtEnd(t *testing.T) {
	s := NewSheet()
	s.Switch("A", false)
	s.Switch("B", false)
	s.Switch("C", false)
	s.Switch("D", false)
	s.SelectIDs(3)

	s.SelectNext()
	if got := s.SelectedIDs(); len(got) != 1 || got[0] != 3 {
		t.Errorf("SelectedIDs() after SelectNext at end = %v, want [3]", got)
	}

	s.SelectNextWrapped()
	if got := s.SelectedIDs(); len(got) != 1 || got[0] != 0 {
		t.Errorf("SelectedIDs() after SelectNextWrapped at end = %v, want [0]", got)
	}
}

func TestSelectPrevStopsAtStart(t *testing.T) {
	s := NewSheet()
	s.Switch("A", false)
	s.Switch("B", false)
	s.SelectIDs(0)

	s.SelectPrev()
	if got := s.SelectedIDs(); len(got) != 1 || got[0] != 0 {
		t.Errorf("SelectedIDs() after SelectPrev at start = %v, want [0]", got)
	}

	s.SelectPrevWrapped()
	if got := s.SelectedIDs(); len(got) != 1 || got[0] != 1 {
		t.Errorf("SelectedIDs() after SelectPrevWrapped at start = %v, want [1]", got)
	}
}

func TestNavigationWithoutSelection(t *testing.T) {
	s := navSheet()

	s.SelectNext()
	if got := s.SelectedIDs(); len(got) != 1 || got[0] != 0 {
		t.Errorf("SelectNext on unselected sheet = %v, want [0]", got)
	}

	s.SelectIDs()
	s.SelectPrev()
	if got := s.SelectedIDs(); len(got) != 1 || got[0] != 3 {
		t.Errorf("SelectPrev on unselected sheet = %v, want [3]", got)
	}
}

func TestNavigationOnEmptySheet(t *testing.T) {
	s := NewSheet()
	s.SelectNext()
	s.SelectPrev()
	s.SelectNextWrapped()
	s.SelectPrevWrapped()
	if got := s.SelectedIDs(); len(got) != 0 {
		t.Errorf("SelectedIDs() on empty sheet = %v", got)
	}
}

func TestNavigationPivotIsFirstSelected(t *testing.T) {
	s := NewSheet()
	s.Switch("A", false)
	s.Switch("B", false)
	s.Switch("C", false)
	s.Switch("D", false)
	s.SelectIDs(1, 3)

	s.SelectNext()
	if got := s.SelectedIDs(); len(got) != 1 || got[0] != 2 {
		t.Errorf("SelectedIDs() = %v, want [2]", got)
	}
}

func TestTypedLookupComposition(t *testing.T) {
	s := NewSheet()
	s.SliderF32("Gain", Range[float32]{Min: -1, Max: 1}, 0.01, 0.5)
	s.Switch("Enabled", true)
	s.TextBox("Label", 64, "hello")
	s.ComboBoxI32("Mode", []string{"A", "B"}, 1)
	s.SliderI64("Big", Range[int64]{Min: 0, Max: 100}, 1, 42)
	s.SliderF64("Wide", Range[float64]{Min: 0, Max: 10}, 0.5, 2.5)

	if got, ok := s.Float32ValueAt(0); !ok || got != 0.5 {
		t.Errorf("Float32ValueAt(0) = (%v, %v), want (0.5, true)", got, ok)
	}
	if got, ok := s.BoolValueOf("Enabled"); !ok || !got {
		t.Errorf("BoolValueOf(Enabled) = (%v, %v), want (true, true)", got, ok)
	}
	if got, ok := s.StringValueOf("Label"); !ok || got != "hello" {
		t.Errorf("StringValueOf(Label) = (%q, %v)", got, ok)
	}
	if got, ok := s.Int32ValueAt(3); !ok || got != 1 {
		t.Errorf("Int32ValueAt(3) = (%v, %v), want (1, true)", got, ok)
	}
	if got, ok := s.Int64ValueOf("Big"); !ok || got != 42 {
		t.Errorf("Int64ValueOf(Big) = (%v, %v), want (42, true)", got, ok)
	}
	if got, ok := s.Float64ValueAt(5); !ok || got != 2.5 {
		t.Errorf("Float64ValueAt(5) = (%v, %v), want (2.5, true)", got, ok)
	}

	// Index miss, name miss, and kind mismatch all collapse to false.
	if _, ok := s.Float32ValueAt(99); ok {
		t.Error("Float32ValueAt(99) reported a match")
	}
	if _, ok := s.Int32ValueOf("Absent"); ok {
		t.Error("Int32ValueOf(Absent) reported a match")
	}
	if _, ok := s.BoolValueAt(0); ok {
		t.Error("BoolValueAt(0) on a float slider reported a match")
	}
}

func TestConcurrentValueMutation(t *testing.T) {
	s := NewSheet()
	s.ActionButton("Foo", "Click Me", func(p Property, requested bool) bool {
		return requested
	})
	s.SliderF32("Gain", Range[float32]{Min: -10, Max: 10}, 0.1, 0)
	s.Switch("Enabled", false)
	s.TextBox("Label", 128, "Okay")

	gain, _ := s.Get(1)
	enabled, _ := s.Get(2)
	label, _ := s.Get(3)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				SetFloat32Value(gain, float32(i))
				SetBoolValue(enabled, j%2 == 0)
				SetStringValue(label, "busy")
				if p, ok := s.Get(0); ok {
					TriggerAction(p, true)
				}
			}
		}(i)
	}
	wg.Wait()

	if v, ok := s.Float32ValueOf("Gain"); !ok || v < 0 || v > 7 {
		t.Errorf("Gain = (%v, %v), want a value one goroutine wrote", v, ok)
	}
	if v, ok := s.StringValueOf("Label"); !ok || v != "busy" {
		t.Errorf("Label = (%q, %v), want busy", v, ok)
	}
	if checked, ok := ActionChecked(mustFind(t, s, "Foo")); !ok || !checked {
		t.Errorf("Foo checked = (%v, %v), want (true, true)", checked, ok)
	}
}

func mustFind(t *testing.T, s *Sheet, name string) Property {
	t.Helper()
	p, ok := s.Find(name)
	if !ok {
		t.Fatalf("Find(%q) missed", name)
	}
	return p
}
