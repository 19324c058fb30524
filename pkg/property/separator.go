package property

// Separator is a non-interactive layout marker between groups of
// properties. It carries only the shared metadata: it is never selectable
// and holds no value.
type Separator struct {
	Base
}

// NewSeparator creates an unnamed separator.
func NewSeparator() *Separator {
	s := &Separator{}
	initBase(&s.Base, "", nil, ValueTypeDummy, WidgetTypeSeparator)
	return s
}
