package quad

import (
	"errors"
	"testing"

	"github.com/Faultbox/voxmesh/pkg/voxel"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	tests := []Quad{
		{X: 0, Y: 0, Z: 0, W: 1, H: 1, Dir: voxel.Up},
		{X: 61, Y: 61, Z: 61, W: 62, H: 62, Dir: voxel.North, Material: 0xFFFF, Texture: MaxTexture},
		{X: 63, Y: 1, Z: 32, W: 63, H: 5, Dir: voxel.East, Material: 12, Texture: 300},
		{X: 7, Y: 40, Z: 2, W: 3, H: 63, Dir: voxel.South, Material: 1},
	}

	for _, q := range tests {
		p, err := Encode(q)
		if err != nil {
			t.Fatalf("Encode(%v) failed: %v", q, err)
		}
		if got := p.Decode(); got != q {
			t.Errorf("Decode(Encode(%v)) = %v", q, got)
		}
	}
}

func TestRoundTripAllPositions(t *testing.T) {
	for v := 0; v <= MaxPosition; v++ {
		for _, dir := range voxel.Directions {
			q := Quad{X: uint8(v), Y: uint8(MaxPosition - v), Z: uint8(v / 2), W: uint8(max(v, 1)), H: uint8(max(MaxExtent-v, 1)), Dir: dir}
			p := MustEncode(q)
			if p.X() != q.X || p.Y() != q.Y || p.Z() != q.Z || p.W() != q.W || p.H() != q.H || p.Dir() != dir {
				t.Fatalf("round trip mismatch for %v: got %v", q, p.Decode())
			}
		}
	}
}

func TestEncodeRejectsOverflow(t *testing.T) {
	tests := []struct {
		name  string
		quad  Quad
		field string
	}{
		{"x", Quad{X: 64, W: 1, H: 1}, "x"},
		{"y", Quad{Y: 200, W: 1, H: 1}, "y"},
		{"z", Quad{Z: 64, W: 1, H: 1}, "z"},
		{"width", Quad{W: 64, H: 1}, "width"},
		{"height", Quad{W: 1, H: 64}, "height"},
		{"zero width", Quad{W: 0, H: 1}, "width"},
		{"zero height", Quad{W: 1, H: 0}, "height"},
		{"texture", Quad{W: 1, H: 1, Texture: MaxTexture + 1}, "texture"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Encode(tt.quad)
			var fe *FieldError
			if !errors.As(err, &fe) {
				t.Fatalf("expected FieldError, got %v", err)
			}
			if fe.Field != tt.field {
				t.Errorf("field = %s, want %s", fe.Field, tt.field)
			}
		})
	}
}

func TestEncodeRejectsDirection(t *testing.T) {
	_, err := Encode(Quad{W: 1, H: 1, Dir: voxel.Direction(6)})
	if !errors.Is(err, ErrInvalidDirection) {
		t.Errorf("expected ErrInvalidDirection, got %v", err)
	}
}

func TestMustEncodePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	MustEncode(Quad{X: 64, W: 1, H: 1})
}

func TestBitLayout(t *testing.T) {
	p := MustEncode(Quad{X: 1, Y: 2, Z: 3, W: 4, H: 5, Dir: voxel.West, Material: 6, Texture: 7})
	want := uint64(1) | 2<<6 | 3<<12 | 4<<18 | 5<<24 | 3<<30 | 6<<33 | 7<<49
	if uint64(p) != want {
		t.Errorf("packed = %#x, want %#x", uint64(p), want)
	}
}

func TestCells(t *testing.T) {
	tests := []struct {
		quad  Quad
		cells [][3]int
	}{
		{Quad{X: 1, Y: 2, Z: 3, W: 2, H: 1, Dir: voxel.Up}, [][3]int{{1, 2, 3}, {1, 2, 4}}},
		{Quad{X: 1, Y: 2, Z: 3, W: 1, H: 2, Dir: voxel.Down}, [][3]int{{1, 2, 3}, {2, 2, 3}}},
		{Quad{X: 1, Y: 2, Z: 3, W: 1, H: 2, Dir: voxel.East}, [][3]int{{1, 2, 3}, {1, 3, 3}}},
		{Quad{X: 1, Y: 2, Z: 3, W: 2, H: 1, Dir: voxel.North}, [][3]int{{1, 2, 3}, {2, 2, 3}}},
	}

	for _, tt := range tests {
		var got [][3]int
		tt.quad.Cells(func(x, y, z int) { got = append(got, [3]int{x, y, z}) })
		if len(got) != len(tt.cells) || len(got) != tt.quad.Area() {
			t.Fatalf("%v: got %d cells, want %d", tt.quad, len(got), len(tt.cells))
		}
		for i := range got {
			if got[i] != tt.cells[i] {
				t.Errorf("%v: cell %d = %v, want %v", tt.quad, i, got[i], tt.cells[i])
			}
		}
	}
}
