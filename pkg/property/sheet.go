package property

import "fmt"

// Sheet is the ordered property registry backing one settings panel. It
// owns structural mutation with identity renumbering, name and index
// lookup, bulk selection, and the keyboard navigation algorithm.
//
// The invariant maintained by Append, Insert, and Remove is positional
// identity: the item at position k always reports ID() == k.
//
// Structural mutation must be serialized by the caller against all other
// access to the same sheet. Value mutation on individual properties,
// selection flips, and visibility flips are safe through shared references
// without a sheet-level lock.
type Sheet struct {
	items []Property
}

// NewSheet creates an empty sheet.
func NewSheet() *Sheet {
	return &Sheet{}
}

// NewSheetWith creates a sheet from items, renumbering them to their
// positions.
func NewSheetWith(items []Property) *Sheet {
	for i, p := range items {
		p.SetID(i)
	}
	return &Sheet{items: items}
}

// Len returns the number of properties in the sheet.
func (s *Sheet) Len() int {
	return len(s.items)
}

// IsEmpty reports whether the sheet contains no properties.
func (s *Sheet) IsEmpty() bool {
	return len(s.items) == 0
}

// Append adds p at the end of the sheet and assigns it the next id.
func (s *Sheet) Append(p Property) {
	p.SetID(len(s.items))
	s.items = append(s.items, p)
}

// Insert places p at position index, shifting every property at or after
// index one place to the right and incrementing its id. index must be
// within [0, Len()]; anything else is a caller bug and panics.
func (s *Sheet) Insert(index int, p Property) {
	if index < 0 || index > len(s.items) {
		panic(fmt.Sprintf("property: Insert index %d out of range [0, %d]", index, len(s.items)))
	}
	for _, q := range s.items[index:] {
		q.SetID(q.ID() + 1)
	}
	p.SetID(index)
	s.items = append(s.items, nil)
	copy(s.items[index+1:], s.items[index:])
	s.items[index] = p
}

// Remove deletes and returns the property at position index, shifting
// every later property one place to the left and decrementing its id. The
// removed property keeps its last id; a collaborator may still hold its
// reference briefly. index must be within [0, Len()); anything else is a
// caller bug and panics.
func (s *Sheet) Remove(index int) Property {
	if index < 0 || index >= len(s.items) {
		panic(fmt.Sprintf("property: Remove index %d out of range [0, %d)", index, len(s.items)))
	}
	removed := s.items[index]
	for _, q := range s.items[index+1:] {
		q.SetID(q.ID() - 1)
	}
	copy(s.items[index:], s.items[index+1:])
	s.items[len(s.items)-1] = nil
	s.items = s.items[:len(s.items)-1]
	return removed
}

// Get returns the property at index, or false when index is out of range.
func (s *Sheet) Get(index int) (Property, bool) {
	if index < 0 || index >= len(s.items) {
		return nil, false
	}
	return s.items[index], true
}

// Find returns the first property named name in storage order, or false
// when no property matches. Names need not be unique; the smallest index
// wins.
func (s *Sheet) Find(name string) (Property, bool) {
	for _, p := range s.items {
		if p.Name() == name {
			return p, true
		}
	}
	return nil, false
}

// Items returns the backing slice in storage order. Callers must not
// mutate it structurally; it is exposed for iteration by presenters.
func (s *Sheet) Items() []Property {
	return s.items
}

// SelectIDs marks exactly the listed ids as selected: every listed
// property becomes selected and every other property becomes deselected,
// regardless of prior state.
func (s *Sheet) SelectIDs(ids ...int) {
	for _, p := range s.items {
		p.SetSelected(containsID(ids, p.ID()))
	}
}

// SelectedIDs returns the ids of all selected properties in storage order.
func (s *Sheet) SelectedIDs() []int {
	var sels []int
	for _, p := range s.items {
		if p.Selected() {
			sels = append(sels, p.ID())
		}
	}
	return sels
}

// CurrentSelected returns the property at the first selected id, or false
// when nothing is selected.
func (s *Sheet) CurrentSelected() (Property, bool) {
	sels := s.SelectedIDs()
	if len(sels) == 0 {
		return nil, false
	}
	return s.Get(sels[0])
}

// SelectPrev moves the selection one entry backward, skipping over a
// single non-selectable neighbor when the position before it is still in
// range. At the first entry it does nothing. With no selection it selects
// the last entry.
func (s *Sheet) SelectPrev() {
	s.navigate(-1, false)
}

// SelectPrevWrapped behaves like SelectPrev but wraps to the last entry
// when the selection is already at the first.
func (s *Sheet) SelectPrevWrapped() {
	s.navigate(-1, true)
}

// SelectNext moves the selection one entry forward, skipping over a single
// non-selectable neighbor when the position after it is still in range. At
// the last entry it does nothing. With no selection it selects the first
// entry.
func (s *Sheet) SelectNext() {
	s.navigate(+1, false)
}

// SelectNextWrapped behaves like SelectNext but wraps to the first entry
// when the selection is already at the last.
func (s *Sheet) SelectNextWrapped() {
	s.navigate(+1, true)
}

// navigate implements the shared movement algorithm. Only the first
// selected id acts as the navigation pivot; any further selected ids are
// replaced by the move.
//
// The separator skip is a one-level lookahead: it steps over exactly one
// non-selectable neighbor when doing so stays in range. Runs of two or
// more non-selectable entries, and a non-selectable entry at a boundary,
// leave the selection on the non-selectable entry; panels are expected to
// keep at most one separator between interactive entries.
func (s *Sheet) navigate(dir int, wrapped bool) {
	n := len(s.items)
	if n == 0 {
		return
	}
	sels := s.SelectedIDs()
	if len(sels) == 0 {
		if dir < 0 {
			s.SelectIDs(n - 1)
		} else {
			s.SelectIDs(0)
		}
		return
	}
	i := sels[0]
	atBoundary := (dir < 0 && i <= 0) || (dir > 0 && i >= n-1)
	if atBoundary {
		if wrapped {
			if dir < 0 {
				s.SelectIDs(n - 1)
			} else {
				s.SelectIDs(0)
			}
		}
		return
	}
	target := i + dir
	if neighbor := s.items[target]; !neighbor.Selectable() {
		if skip := i + 2*dir; skip >= 0 && skip < n {
			target = skip
		}
	}
	s.SelectIDs(target)
}

func containsID(ids []int, id int) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

// ActionButton appends a push-button Action property.
func (s *Sheet) ActionButton(name, text string, fn Callback) *Action {
	p := NewButton(name, text, fn)
	s.Append(p)
	return p
}

// ActionCheckBox appends a check-box Action property.
func (s *Sheet) ActionCheckBox(name string, checked bool, fn Callback) *Action {
	p := NewCheckBox(name, checked, fn)
	s.Append(p)
	return p
}

// SliderF32 appends a float32 slider property.
func (s *Sheet) SliderF32(name string, rng Range[float32], step, defVal float32) *Number[float32] {
	p := NewSliderF32(name, rng, step, defVal)
	s.Append(p)
	return p
}

// SliderF64 appends a float64 slider property.
func (s *Sheet) SliderF64(name string, rng Range[float64], step, defVal float64) *Number[float64] {
	p := NewSliderF64(name, rng, step, defVal)
	s.Append(p)
	return p
}

// SliderI32 appends an int32 slider property.
func (s *Sheet) SliderI32(name string, rng Range[int32], step, defVal int32) *Number[int32] {
	p := NewSliderI32(name, rng, step, defVal)
	s.Append(p)
	return p
}

// SliderI64 appends an int64 slider property.
func (s *Sheet) SliderI64(name string, rng Range[int64], step, defVal int64) *Number[int64] {
	p := NewSliderI64(name, rng, step, defVal)
	s.Append(p)
	return p
}

// SpinBoxI32 appends an int32 spin-box property.
func (s *Sheet) SpinBoxI32(name string, rng Range[int32], step, defVal int32) *Number[int32] {
	p := NewSpinBoxI32(name, rng, step, defVal)
	s.Append(p)
	return p
}

// SpinBoxI64 appends an int64 spin-box property.
func (s *Sheet) SpinBoxI64(name string, rng Range[int64], step, defVal int64) *Number[int64] {
	p := NewSpinBoxI64(name, rng, step, defVal)
	s.Append(p)
	return p
}

// ComboBoxI32 appends an int32 drop-down choice property. Panics if
// options is empty.
func (s *Sheet) ComboBoxI32(name string, options []string, defVal int32) *Number[int32] {
	p := NewComboBoxI32(name, options, defVal)
	s.Append(p)
	return p
}

// ComboBoxI64 appends an int64 drop-down choice property. Panics if
// options is empty.
func (s *Sheet) ComboBoxI64(name string, options []string, defVal int64) *Number[int64] {
	p := NewComboBoxI64(name, options, defVal)
	s.Append(p)
	return p
}

// SelectI32 appends an int32 inline choice property. Panics if options is
// empty.
func (s *Sheet) SelectI32(name string, options []string, defVal int32) *Number[int32] {
	p := NewSelectI32(name, options, defVal)
	s.Append(p)
	return p
}

// SelectI64 appends an int64 inline choice property. Panics if options is
// empty.
func (s *Sheet) SelectI64(name string, options []string, defVal int64) *Number[int64] {
	p := NewSelectI64(name, options, defVal)
	s.Append(p)
	return p
}

// Switch appends a Bool switch property.
func (s *Sheet) Switch(name string, defVal bool) *Bool {
	p := NewSwitch(name, defVal)
	s.Append(p)
	return p
}

// TextBox appends a String text-box property.
func (s *Sheet) TextBox(name string, maxLength int, defVal string) *String {
	p := NewTextBox(name, maxLength, defVal)
	s.Append(p)
	return p
}

// Separator appends a separator.
func (s *Sheet) Separator() *Separator {
	p := NewSeparator()
	s.Append(p)
	return p
}
