package voxel

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDirectionProperties(t *testing.T) {
	tests := []struct {
		dir      Direction
		name     string
		axis     int
		positive bool
		normal   [3]int
	}{
		{Up, "+Y", AxisY, true, [3]int{0, 1, 0}},
		{Down, "-Y", AxisY, false, [3]int{0, -1, 0}},
		{East, "+X", AxisX, true, [3]int{1, 0, 0}},
		{West, "-X", AxisX, false, [3]int{-1, 0, 0}},
		{South, "+Z", AxisZ, true, [3]int{0, 0, 1}},
		{North, "-Z", AxisZ, false, [3]int{0, 0, -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.dir.String(); got != tt.name {
				t.Errorf("String() = %q, want %q", got, tt.name)
			}
			if got := tt.dir.Axis(); got != tt.axis {
				t.Errorf("Axis() = %d, want %d", got, tt.axis)
			}
			if got := tt.dir.Positive(); got != tt.positive {
				t.Errorf("Positive() = %v, want %v", got, tt.positive)
			}
			if got := tt.dir.Normal(); got != tt.normal {
				t.Errorf("Normal() = %v, want %v", got, tt.normal)
			}
			if tt.dir.Opposite().Opposite() != tt.dir || tt.dir.Opposite().Axis() != tt.axis {
				t.Errorf("Opposite() broken for %s", tt.dir)
			}
		})
	}

	if Direction(6).Valid() {
		t.Error("Direction(6) should be invalid")
	}
	if got := Direction(9).String(); got != "Direction(9)" {
		t.Errorf("unexpected name for invalid direction: %s", got)
	}
}

func TestVolumeLocalAndPadded(t *testing.T) {
	v := NewVolume()
	v.SetLocal(0, 0, 0, 5)
	if got := v.Get(1, 1, 1); got != 5 {
		t.Errorf("Get(1,1,1) = %d, want 5", got)
	}
	if got := v.GetLocal(0, 0, 0); got != 5 {
		t.Errorf("GetLocal(0,0,0) = %d, want 5", got)
	}
	if got := v.Get(-1, 0, 0); got != Air {
		t.Errorf("out of bounds Get = %d, want air", got)
	}
	if v.Count() != 1 {
		t.Errorf("Count() = %d, want 1", v.Count())
	}

	// Halo voxels are not counted.
	v.Set(0, 5, 5, 3)
	if v.Count() != 1 {
		t.Errorf("Count() after halo write = %d, want 1", v.Count())
	}

	v.Clear()
	if v.Get(0, 5, 5) != Air || v.Count() != 0 {
		t.Error("Clear() left voxels behind")
	}
}

func TestVolumeSetLocalPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for local coordinate outside the chunk")
		}
	}()
	NewVolume().SetLocal(Size, 0, 0, 1)
}

func TestVolumeColumnIsZContiguous(t *testing.T) {
	v := NewVolume()
	v.Set(3, 4, 10, 7)
	col := v.Column(3, 4)
	if len(col) != PaddedSize {
		t.Fatalf("column length = %d, want %d", len(col), PaddedSize)
	}
	if col[10] != 7 {
		t.Errorf("column[10] = %d, want 7", col[10])
	}
}

func TestCopyHalo(t *testing.T) {
	tests := []struct {
		dir       Direction
		neighbor  [3]int // local coordinate set in the neighbour
		haloCheck [3]int // padded coordinate expected in this volume
	}{
		{East, [3]int{0, 4, 5}, [3]int{PaddedSize - 1, 5, 6}},
		{West, [3]int{Size - 1, 4, 5}, [3]int{0, 5, 6}},
		{Up, [3]int{4, 0, 5}, [3]int{5, PaddedSize - 1, 6}},
		{Down, [3]int{4, Size - 1, 5}, [3]int{5, 0, 6}},
		{South, [3]int{4, 5, 0}, [3]int{5, 6, PaddedSize - 1}},
		{North, [3]int{4, 5, Size - 1}, [3]int{5, 6, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.dir.String(), func(t *testing.T) {
			n := NewVolume()
			n.SetLocal(tt.neighbor[0], tt.neighbor[1], tt.neighbor[2], 9)

			v := NewVolume()
			v.CopyHalo(n, tt.dir)

			if got := v.Get(tt.haloCheck[0], tt.haloCheck[1], tt.haloCheck[2]); got != 9 {
				t.Errorf("halo voxel = %d, want 9", got)
			}
			if v.Count() != 0 {
				t.Error("CopyHalo wrote into the chunk interior")
			}
		})
	}
}

func TestRegistry(t *testing.T) {
	r, err := NewMapRegistry(
		Block{ID: 1, Name: "stone", Opaque: true, Textures: [6]TextureRef{3, 3, 3, 3, 3, 3}},
		Block{ID: 2, Name: "water", Transparent: true},
	)
	if err != nil {
		t.Fatalf("NewMapRegistry failed: %v", err)
	}

	if !r.IsOpaque(1) || r.IsTransparent(1) {
		t.Error("stone flags wrong")
	}
	if r.IsOpaque(2) || !r.IsTransparent(2) {
		t.Error("water flags wrong")
	}
	if r.IsOpaque(42) || r.IsTransparent(42) || r.IsDirectional(42) {
		t.Error("unknown ids must report false")
	}
	if _, ok := r.Block(42); ok {
		t.Error("unknown id should not resolve")
	}

	if err := r.Register(Block{ID: 1}); !errors.Is(err, ErrDuplicateBlock) {
		t.Errorf("expected ErrDuplicateBlock, got %v", err)
	}
	if err := r.Register(Block{ID: Air}); !errors.Is(err, ErrAirBlock) {
		t.Errorf("expected ErrAirBlock, got %v", err)
	}
	if err := r.Register(Block{ID: 5, Opaque: true, Transparent: true}); !errors.Is(err, ErrBlockFlags) {
		t.Errorf("expected ErrBlockFlags, got %v", err)
	}
}

func TestBlockTexture(t *testing.T) {
	grass := Block{ID: 4, Directional: true, Textures: [6]TextureRef{0, 2, 1, 1, 1, 1}}
	if grass.Texture(Up) != 0 || grass.Texture(Down) != 2 || grass.Texture(East) != 1 {
		t.Errorf("directional textures wrong: %v", grass.Textures)
	}
	if grass.SurfaceDirection(West) != West {
		t.Error("directional block should group by face direction")
	}

	stone := Block{ID: 1, Textures: [6]TextureRef{3, 9, 9, 9, 9, 9}}
	if stone.Texture(Down) != 3 {
		t.Errorf("non-directional block should use the Up texture, got %d", stone.Texture(Down))
	}
	if stone.SurfaceDirection(West) != Up {
		t.Error("non-directional block should group under Up")
	}
}

func TestParseRegistry(t *testing.T) {
	data := []byte(`
blocks:
  - id: 1
    name: stone
    opaque: true
    texture: 3
  - id: 2
    name: grass
    opaque: true
    directional: true
    textures: {up: 0, down: 2, east: 1, west: 1, south: 1, north: 1}
  - id: 9
    name: water
    transparent: true
    texture: 7
`)

	r, err := ParseRegistry(data)
	if err != nil {
		t.Fatalf("ParseRegistry failed: %v", err)
	}
	if r.Len() != 3 {
		t.Fatalf("expected 3 blocks, got %d", r.Len())
	}

	stone, _ := r.Block(1)
	if stone.Name != "stone" || !stone.Opaque || stone.Texture(North) != 3 {
		t.Errorf("stone parsed wrong: %+v", stone)
	}
	if r.Texture(2, Up) != 0 || r.Texture(2, Down) != 2 || r.Texture(2, South) != 1 {
		t.Errorf("grass textures parsed wrong")
	}
	if !r.IsTransparent(9) || r.Texture(9, Up) != 7 {
		t.Error("water parsed wrong")
	}

	all := r.All()
	if all[0].ID != 1 || all[1].ID != 2 || all[2].ID != 9 {
		t.Errorf("All() not sorted: %v", all)
	}
}

func TestLoadRegistryErrors(t *testing.T) {
	if _, err := LoadRegistry(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("blocks: [ {id: 0} ]"), 0644); err != nil {
		t.Fatalf("failed to write registry: %v", err)
	}
	if _, err := LoadRegistry(path); !errors.Is(err, ErrAirBlock) {
		t.Errorf("expected ErrAirBlock, got %v", err)
	}
}
