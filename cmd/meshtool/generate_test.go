package main

import (
	"path/filepath"
	"testing"

	"github.com/Faultbox/voxmesh/internal/mesher"
	"github.com/Faultbox/voxmesh/pkg/chunkfile"
	"github.com/Faultbox/voxmesh/pkg/voxel"
)

func TestBuiltinRegistry(t *testing.T) {
	reg, err := loadRegistry("")
	if err != nil {
		t.Fatalf("built-in registry does not parse: %v", err)
	}

	tests := []struct {
		id          voxel.MaterialID
		name        string
		opaque      bool
		transparent bool
		directional bool
	}{
		{blockStone, "stone", true, false, false},
		{blockDirt, "dirt", true, false, false},
		{blockGrass, "grass", true, false, true},
		{blockSand, "sand", true, false, false},
		{blockWater, "water", false, true, false},
		{blockGlass, "glass", false, true, false},
		{blockLog, "log", true, false, true},
	}
	if reg.Len() != len(tests) {
		t.Errorf("expected %d blocks, got %d", len(tests), reg.Len())
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, ok := reg.Block(tt.id)
			if !ok {
				t.Fatalf("block %d missing", tt.id)
			}
			if b.Name != tt.name || b.Opaque != tt.opaque || b.Transparent != tt.transparent || b.Directional != tt.directional {
				t.Errorf("block %d = %+v", tt.id, b)
			}
		})
	}

	if reg.Texture(blockGrass, voxel.Up) == reg.Texture(blockGrass, voxel.East) {
		t.Error("grass top and side should use different textures")
	}
}

func TestGenerateUnknownPattern(t *testing.T) {
	if _, err := generate("mountains", 1, false); err == nil {
		t.Error("expected error for unknown pattern")
	}
}

func TestGeneratePatterns(t *testing.T) {
	reg, err := loadRegistry("")
	if err != nil {
		t.Fatalf("loadRegistry failed: %v", err)
	}
	m, err := mesher.New(reg, mesher.DefaultOptions())
	if err != nil {
		t.Fatalf("mesher.New failed: %v", err)
	}

	for _, name := range generatorNames() {
		t.Run(name, func(t *testing.T) {
			vol, err := generate(name, 7, false)
			if err != nil {
				t.Fatalf("generate failed: %v", err)
			}
			if vol.Count() == 0 {
				t.Fatal("pattern produced an empty chunk")
			}
			if vol.Get(0, 10, 10) != voxel.Air || vol.Get(voxel.PaddedSize-1, 10, 10) != voxel.Air {
				t.Error("halo should stay empty without -halo")
			}

			res, err := m.Mesh(vol)
			if err != nil {
				t.Fatalf("Mesh failed: %v", err)
			}
			if res.Empty() {
				t.Error("expected visible faces")
			}
			if res.Stats.Anomalies != 0 {
				t.Errorf("pattern uses unregistered blocks: %d anomalies", res.Stats.Anomalies)
			}
		})
	}
}

func TestGenerateHalo(t *testing.T) {
	vol, err := generate("flat", 1, true)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	// Local y=0 is stone, so the halo column beside it is too.
	if got := vol.Get(0, 1, 10); got != blockStone {
		t.Errorf("expected stone in the -X halo, got %d", got)
	}
	if got := vol.Get(voxel.PaddedSize-1, 1, 10); got != blockStone {
		t.Errorf("expected stone in the +X halo, got %d", got)
	}
	// Interior count ignores the halo.
	flat, _ := generate("flat", 1, false)
	if vol.Count() != flat.Count() {
		t.Errorf("halo changed interior count: %d vs %d", vol.Count(), flat.Count())
	}
}

func TestNoiseIsSeeded(t *testing.T) {
	a, _ := generate("noise", 42, true)
	b, _ := generate("noise", 42, true)
	c, _ := generate("noise", 43, true)

	same := func(x, y *voxel.Volume) bool {
		rx, ry := x.Raw(), y.Raw()
		for i := range rx {
			if rx[i] != ry[i] {
				return false
			}
		}
		return true
	}
	if !same(a, b) {
		t.Error("same seed produced different chunks")
	}
	if same(a, c) {
		t.Error("different seeds produced the same chunk")
	}
}

func TestGeneratedFixtureRoundTrip(t *testing.T) {
	vol, err := generate("sphere", 1, false)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	path := filepath.Join(t.TempDir(), "sphere"+chunkfile.Ext)
	if err := chunkfile.WriteFile(path, vol); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	got, err := chunkfile.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if got.Count() != vol.Count() {
		t.Errorf("expected %d voxels, got %d", vol.Count(), got.Count())
	}
}
