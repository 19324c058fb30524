package sheettest

import "testing"

func TestFixtureCoversEveryKind(t *testing.T) {
	s := Fixture()
	if s.Len() != 10 {
		t.Fatalf("Len() = %d, want 10", s.Len())
	}

	RequireAction(t, s, "Foo")
	RequireFloat32(t, s, "Gain")
	RequireInt32(t, s, "Mode")
	RequireBool(t, s, "Enabled")
	RequireString(t, s, "Label")

	names := Names(s)
	if names[0] != "Foo" || names[2] != "" {
		t.Errorf("Names() = %v", names)
	}
}

func TestSelectedNames(t *testing.T) {
	s := Fixture()
	if got := SelectedNames(s); len(got) != 0 {
		t.Fatalf("SelectedNames() on fresh fixture = %v", got)
	}
	s.SelectIDs(0, 3)
	got := SelectedNames(s)
	if len(got) != 2 || got[0] != "Foo" || got[1] != "Gain" {
		t.Errorf("SelectedNames() = %v, want [Foo Gain]", got)
	}
}
