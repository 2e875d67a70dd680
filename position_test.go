package overlay

import "testing"

func TestRem(t *testing.T) {
	type tc struct {
		px   float64
		want string
	}

	tests := map[string]tc{
		"zero":     {px: 0, want: "0rem"},
		"whole":    {px: 32, want: "2rem"},
		"fraction": {px: 110, want: "6.875rem"},
		"negative": {px: -8, want: "-0.5rem"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := Rem(tt.px); got != tt.want {
				t.Errorf("Rem(%v) = %q, want %q", tt.px, got, tt.want)
			}
		})
	}
}

func TestIsPositioned(t *testing.T) {
	parent := NewNode("div")
	n := NewNode("div")

	if IsPositioned(n) || IsPositioned(nil) {
		t.Error("detached node reported positioned")
	}
	n.SetStyle("top", "1rem")
	if IsPositioned(n) {
		t.Error("node without parent reported positioned")
	}
	parent.AppendChild(n)
	if !IsPositioned(n) {
		t.Error("attached node with top not positioned")
	}
}
