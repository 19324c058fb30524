package property

import "testing"

func TestSetValueClamps(t *testing.T) {
	p := NewSliderF32("Gain", Range[float32]{Min: -1, Max: 1}, 0.1, 0)

	tests := []struct {
		in   float32
		want float32
	}{
		{0.5, 0.5},
		{-0.25, -0.25},
		{1.5, 1},
		{-3, -1},
		{1, 1},
		{-1, -1},
	}
	for _, tt := range tests {
		if got := p.SetValue(tt.in); got != tt.want {
			t.Errorf("SetValue(%v) = %v, want %v", tt.in, got, tt.want)
		}
		if got := p.Value(); got != tt.want {
			t.Errorf("Value() after SetValue(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestSetValueClampsWithInvertedBounds(t *testing.T) {
	// Min-then-max clamping must stay deterministic even when the caller
	// supplies the bounds out of order.
	p := NewSliderI32("Odd", Range[int32]{Min: 10, Max: 0}, 1, 5)
	if got := p.SetValue(7); got != 10 {
		t.Errorf("SetValue(7) = %d, want 10", got)
	}
}

func TestStepStaysInRange(t *testing.T) {
	p := NewSliderI32("Count", Range[int32]{Min: 0, Max: 10}, 3, 9)

	if got := p.StepForward(); got != 10 {
		t.Errorf("StepForward() = %d, want 10", got)
	}
	if got := p.StepForward(); got != 10 {
		t.Errorf("StepForward() at max = %d, want 10", got)
	}
	for i := 0; i < 20; i++ {
		got := p.StepBackward()
		if got < 0 || got > 10 {
			t.Fatalf("StepBackward() = %d, out of range [0, 10]", got)
		}
	}
	if got := p.Value(); got != 0 {
		t.Errorf("Value() after repeated StepBackward = %d, want 0", got)
	}
}

func TestStepForwardFloat(t *testing.T) {
	p := NewSliderF64("Volume", Range[float64]{Min: 0, Max: 1}, 0.25, 0.5)
	if got := p.StepForward(); got != 0.75 {
		t.Errorf("StepForward() = %v, want 0.75", got)
	}
	if got := p.StepBackward(); got != 0.5 {
		t.Errorf("StepBackward() = %v, want 0.5", got)
	}
}

func TestComboBoxRangeFromOptions(t *testing.T) {
	p := NewComboBoxI32("Mode", []string{"A", "B", "C"}, 5)

	if got := p.Range(); got != (Range[int32]{Min: 0, Max: 2}) {
		t.Errorf("Range() = %+v, want {0 2}", got)
	}
	if got := p.Step(); got != 1 {
		t.Errorf("Step() = %d, want 1", got)
	}
	// Construction stores the default as-is; only mutation clamps.
	if got := p.Value(); got != 5 {
		t.Errorf("Value() after construction = %d, want 5", got)
	}
	if got := p.SetValue(5); got != 2 {
		t.Errorf("SetValue(5) = %d, want 2", got)
	}
}

func TestChoiceConstructorsPanicOnEmptyOptions(t *testing.T) {
	tests := []struct {
		name string
		fn   func()
	}{
		{"NewComboBoxI32", func() { NewComboBoxI32("X", nil, 0) }},
		{"NewComboBoxI64", func() { NewComboBoxI64("X", nil, 0) }},
		{"NewSelectI32", func() { NewSelectI32("X", nil, 0) }},
		{"NewSelectI64", func() { NewSelectI64("X", nil, 0) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("%s with empty options did not panic", tt.name)
				}
			}()
			tt.fn()
		})
	}
}

func TestNumberMetadata(t *testing.T) {
	p := NewSpinBoxI64("Limit", Range[int64]{Min: 0, Max: 100}, 5, 25)

	if got := p.ValueType(); got != ValueTypeI64 {
		t.Errorf("ValueType() = %v, want %v", got, ValueTypeI64)
	}
	if got := p.WidgetType(); got != WidgetTypeSpinBox {
		t.Errorf("WidgetType() = %v, want %v", got, WidgetTypeSpinBox)
	}
	if got := p.Default(); got != 25 {
		t.Errorf("Default() = %d, want 25", got)
	}
	if !p.Selectable() {
		t.Error("Selectable() = false, want true")
	}
}
