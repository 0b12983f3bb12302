package colormap

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/image/colornames"
)

func TestNewMap(t *testing.T) {
	m, err := NewMap(Black, White)
	if err != nil {
		t.Fatalf("NewMap: %v", err)
	}
	if m.Len() != 2 {
		t.Errorf("Len() = %d, want 2", m.Len())
	}

	if _, err := NewMap(); !errors.Is(err, ErrEmptyMap) {
		t.Errorf("NewMap() error = %v, want ErrEmptyMap", err)
	}
	if _, err := NewMap(Black, RGB(0, 1.5, 0)); !errors.Is(err, ErrInvalidColor) {
		t.Errorf("NewMap(out of range) error = %v, want ErrInvalidColor", err)
	}
}

func TestNewMap_Copies(t *testing.T) {
	colors := []RGBA{Black, White}
	m, err := NewMap(colors...)
	if err != nil {
		t.Fatalf("NewMap: %v", err)
	}
	colors[0] = Red
	if m[0] != Black {
		t.Error("NewMap shares storage with its argument")
	}
}

func TestRamp(t *testing.T) {
	tests := []struct {
		name string
		n    int
		want Map
	}{
		{"three", 3, Map{Black, RGB(0.5, 0, 0.25), RGB(1, 0, 0.5)}},
		{"one", 1, Map{Black}},
		{"zero", 0, nil},
		{"negative", -4, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Ramp(Black, RGB(1, 0, 0.5), tt.n)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Ramp() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRamp_ExactEnds(t *testing.T) {
	from, to := RGB(0.1, 0.2, 0.3), RGB(0.7, 0.9, 0.4)
	m := Ramp(from, to, 256)
	if m[0] != from || m[255] != to {
		t.Errorf("Ramp ends = %v, %v; want %v, %v", m[0], m[255], from, to)
	}
}

func TestNamedRamp(t *testing.T) {
	for _, name := range []string{"darkgreen", "DarkGreen", "Dark Green", "  dark green "} {
		m, err := NamedRamp(name, 8)
		if err != nil {
			t.Errorf("NamedRamp(%q): %v", name, err)
			continue
		}
		if want := FromColor(colornames.Darkgreen); m[7] != want {
			t.Errorf("NamedRamp(%q) ends at %v, want %v", name, m[7], want)
		}
		if m[0] != Black {
			t.Errorf("NamedRamp(%q) starts at %v, want black", name, m[0])
		}
	}

	if _, err := NamedRamp("not a colour", 8); !errors.Is(err, ErrUnknownColorName) {
		t.Errorf("NamedRamp(unknown) error = %v, want ErrUnknownColorName", err)
	}
	if _, err := NamedRamp("red", 0); !errors.Is(err, ErrEmptyMap) {
		t.Errorf("NamedRamp(n=0) error = %v, want ErrEmptyMap", err)
	}
}

func TestMap_Reverse(t *testing.T) {
	m := Map{Red, Green, Blue}
	r := m.Reverse()
	if diff := cmp.Diff(Map{Blue, Green, Red}, r); diff != "" {
		t.Errorf("Reverse() mismatch (-want +got):\n%s", diff)
	}
	if m[0] != Red {
		t.Error("Reverse modified the receiver")
	}
}
