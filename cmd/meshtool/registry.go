package main

import (
	_ "embed"

	"github.com/Faultbox/voxmesh/pkg/voxel"
)

//go:embed blocks.yaml
var builtinBlocks []byte

// Built-in block IDs used by the generators.
const (
	blockStone voxel.MaterialID = 1
	blockDirt  voxel.MaterialID = 2
	blockGrass voxel.MaterialID = 3
	blockSand  voxel.MaterialID = 4
	blockWater voxel.MaterialID = 5
	blockGlass voxel.MaterialID = 6
	blockLog   voxel.MaterialID = 7
)

// loadRegistry reads the registry at path, or the built-in set when path is
// empty.
func loadRegistry(path string) (*voxel.MapRegistry, error) {
	if path == "" {
		return voxel.ParseRegistry(builtinBlocks)
	}
	return voxel.LoadRegistry(path)
}
