// Package property implements the registry that backs a settings or
// inspector panel: an ordered collection of named, independently-valued
// entries (sliders, spin boxes, switches, action buttons, text boxes,
// choice lists, and separators) together with the selection and keyboard
// navigation state a panel needs.
//
// The package owns data and state only. How an entry is painted, and how
// raw input events are translated into calls on a [Sheet], are the jobs of
// external collaborators: a presenter iterates the sheet and reads each
// entry's metadata and value, while an input controller calls the sheet's
// navigation and activation methods.
//
// # Property Kinds
//
// Every entry implements [Property], the uniform metadata surface. The
// concrete kinds form a closed set, discriminated by [ValueType]:
//
//   - [Action] — push buttons and check boxes driven by a [Callback]
//   - [Bool] — on/off switches
//   - [Number] — generic numeric entries (float32, float64, int32, int64)
//     rendered as sliders, spin boxes, combo boxes, or selects
//   - [String] — text boxes
//   - [Separator] — non-interactive layout markers
//
// Callers recover the concrete kind with the As* helpers ([AsAction],
// [AsFloat32], ...) or use the typed convenience accessors ([BoolValue],
// [SetFloat32Value], ...), all of which report a mismatch with a false
// second result instead of panicking.
//
// # Concurrency
//
// Structural mutation of a Sheet (Append, Insert, Remove) must be
// serialized by the caller, typically under one exclusive lock. Value
// mutation is different: every property stores its mutable fields in
// atomics (or a mutex for the string buffer), so any number of goroutines
// holding references into the same sheet may set values, toggle switches,
// and trigger actions on entries without a sheet-level lock.
package property
