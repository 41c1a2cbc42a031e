package confgraph

import "testing"

func TestAngleState_String(t *testing.T) {
	cases := map[AngleState]string{
		Valley:        "valley",
		Flat:          "flat",
		Mountain:      "mountain",
		AngleState(9): "unknown",
	}
	for state, want := range cases {
		if got := state.String(); got != want {
			t.Errorf("%v.String() = %q, want %q", state, got, want)
		}
	}
}

func TestColor_String(t *testing.T) {
	if Red.String() != "red" {
		t.Errorf("Red.String() = %q, want red", Red.String())
	}
	if Blue.String() != "blue" {
		t.Errorf("Blue.String() = %q, want blue", Blue.String())
	}
}
