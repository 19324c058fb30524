package property

import "sync/atomic"

// Base carries the metadata shared by every property kind: identity,
// naming, type discriminants, and the selection/visibility flags. Concrete
// kinds embed Base and inherit its [Property] implementation.
//
// The id, selected, and visible fields are atomics so that collaborators
// holding a shared reference may flip them without any sheet-level lock.
// Name, options, and the two type discriminants are fixed at construction.
type Base struct {
	id         atomic.Int64
	name       string
	options    []string
	valueType  ValueType
	widgetType WidgetType
	selected   atomic.Bool
	visible    atomic.Bool
}

func initBase(b *Base, name string, options []string, vt ValueType, wt WidgetType) {
	b.name = name
	b.options = options
	b.valueType = vt
	b.widgetType = wt
	b.visible.Store(true)
}

// ID returns the property's position-derived identity within its sheet.
func (b *Base) ID() int {
	return int(b.id.Load())
}

// SetID changes the property's identity. Sheets call this during
// structural mutation; applications normally never do.
func (b *Base) SetID(id int) {
	b.id.Store(int64(id))
}

// Name returns the property's display name. Names are immutable and need
// not be unique within a sheet.
func (b *Base) Name() string {
	return b.name
}

// Options returns the ordered option labels used by choice and action
// kinds. Empty for every other kind.
func (b *Base) Options() []string {
	return b.options
}

// ValueType returns the kind discriminant of the property's value.
func (b *Base) ValueType() ValueType {
	return b.valueType
}

// WidgetType returns the rendering hint for the property.
func (b *Base) WidgetType() WidgetType {
	return b.widgetType
}

// Selectable reports whether the property may receive navigation focus.
// False only for separators.
func (b *Base) Selectable() bool {
	return b.widgetType != WidgetTypeSeparator
}

// Selected reports whether the property currently holds the selection
// marker.
func (b *Base) Selected() bool {
	return b.selected.Load()
}

// SetSelected changes the selection marker.
func (b *Base) SetSelected(selected bool) {
	b.selected.Store(selected)
}

// Visible reports whether a presenter should draw the property.
func (b *Base) Visible() bool {
	return b.visible.Load()
}

// SetVisible changes the property's visibility.
func (b *Base) SetVisible(visible bool) {
	b.visible.Store(visible)
}

// Show marks the property visible.
func (b *Base) Show() {
	b.visible.Store(true)
}

// Hide marks the property invisible.
func (b *Base) Hide() {
	b.visible.Store(false)
}
