package id

import "testing"

func TestUUIDGenerator_NewID(t *testing.T) {
	t.Parallel()

	gen := NewUUIDGenerator()
	first, err := gen.NewID()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := gen.NewID()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first == second {
		t.Fatalf("expected unique ids, got %q twice", first)
	}
	if !Valid(first) {
		t.Fatalf("generated id %q should be valid", first)
	}
}

func TestValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want bool
	}{
		{in: "player-1", want: true},
		{in: "5f0c7b8e-3f55-4c1e-9e59-0c1a4c0f2d11", want: true},
		{in: "team_a", want: true},
		{in: "", want: false},
		{in: "-leading", want: false},
		{in: "has space", want: false},
		{in: "semi;colon", want: false},
		{in: "x" + string(make([]byte, 64)), want: false},
	}

	for _, tt := range tests {
		if got := Valid(tt.in); got != tt.want {
			t.Fatalf("Valid(%q)=%v want=%v", tt.in, got, tt.want)
		}
	}
}
