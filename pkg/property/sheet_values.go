package property

// Typed lookup composition: each accessor composes Get or Find with the
// matching typed value accessor. A false result uniformly covers an
// out-of-range index, an absent name, and a kind mismatch.

// BoolValueAt returns the bool value of the property at index.
func (s *Sheet) BoolValueAt(index int) (bool, bool) {
	if p, ok := s.Get(index); ok {
		return BoolValue(p)
	}
	return false, false
}

// BoolValueOf returns the bool value of the first property named name.
func (s *Sheet) BoolValueOf(name string) (bool, bool) {
	if p, ok := s.Find(name); ok {
		return BoolValue(p)
	}
	return false, false
}

// Float32ValueAt returns the float32 value of the property at index.
func (s *Sheet) Float32ValueAt(index int) (float32, bool) {
	if p, ok := s.Get(index); ok {
		return Float32Value(p)
	}
	return 0, false
}

// Float32ValueOf returns the float32 value of the first property named
// name.
func (s *Sheet) Float32ValueOf(name string) (float32, bool) {
	if p, ok := s.Find(name); ok {
		return Float32Value(p)
	}
	return 0, false
}

// Float64ValueAt returns the float64 value of the property at index.
func (s *Sheet) Float64ValueAt(index int) (float64, bool) {
	if p, ok := s.Get(index); ok {
		return Float64Value(p)
	}
	return 0, false
}

// Float64ValueOf returns the float64 value of the first property named
// name.
func (s *Sheet) Float64ValueOf(name string) (float64, bool) {
	if p, ok := s.Find(name); ok {
		return Float64Value(p)
	}
	return 0, false
}

// Int32ValueAt returns the int32 value of the property at index.
func (s *Sheet) Int32ValueAt(index int) (int32, bool) {
	if p, ok := s.Get(index); ok {
		return Int32Value(p)
	}
	return 0, false
}

// Int32ValueOf returns the int32 value of the first property named name.
func (s *Sheet) Int32ValueOf(name string) (int32, bool) {
	if p, ok := s.Find(name); ok {
		return Int32Value(p)
	}
	return 0, false
}

// Int64ValueAt returns the int64 value of the property at index.
func (s *Sheet) Int64ValueAt(index int) (int64, bool) {
	if p, ok := s.Get(index); ok {
		return Int64Value(p)
	}
	return 0, false
}

// Int64ValueOf returns the int64 value of the first property named name.
func (s *Sheet) Int64ValueOf(name string) (int64, bool) {
	if p, ok := s.Find(name); ok {
		return Int64Value(p)
	}
	return 0, false
}

// StringValueAt returns the string value of the property at index.
func (s *Sheet) StringValueAt(index int) (string, bool) {
	if p, ok := s.Get(index); ok {
		return StringValue(p)
	}
	return "", false
}

// StringValueOf returns the string value of the first property named name.
func (s *Sheet) StringValueOf(name string) (string, bool) {
	if p, ok := s.Find(name); ok {
		return StringValue(p)
	}
	return "", false
}
