package main

import (
	"fmt"
	"math/rand/v2"
	"sort"

	"github.com/Faultbox/voxmesh/pkg/voxel"
)

// generator returns the material at local coordinate (x, y, z). It is also
// evaluated one voxel outside the chunk to fill the halo.
type generator func(x, y, z int) voxel.MaterialID

var generators = map[string]func(seed uint64) generator{
	"flat":    flatTerrain,
	"sphere":  sphere,
	"checker": checker,
	"stairs":  stairs,
	"pillars": pillars,
	"noise":   noise,
}

func generatorNames() []string {
	names := make([]string, 0, len(generators))
	for name := range generators {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// generate fills a volume from the named pattern. With halo set the pattern is
// continued into the halo as if the neighbours held the same terrain.
func generate(name string, seed uint64, halo bool) (*voxel.Volume, error) {
	mk, ok := generators[name]
	if !ok {
		return nil, fmt.Errorf("unknown pattern %q (have %v)", name, generatorNames())
	}
	gen := mk(seed)

	lo, hi := 0, voxel.Size-1
	if halo {
		lo, hi = -1, voxel.Size
	}
	vol := voxel.NewVolume()
	for y := lo; y <= hi; y++ {
		for x := lo; x <= hi; x++ {
			for z := lo; z <= hi; z++ {
				if id := gen(x, y, z); id != voxel.Air {
					vol.Set(x+1, y+1, z+1, id)
				}
			}
		}
	}
	return vol, nil
}

// flatTerrain is stone, then dirt, then a grass layer with a shallow pond.
func flatTerrain(uint64) generator {
	return func(x, y, z int) voxel.MaterialID {
		switch {
		case y < 8:
			return blockStone
		case y < 11:
			return blockDirt
		case y == 11:
			if x >= 20 && x < 30 && z >= 20 && z < 30 {
				return blockWater
			}
			return blockGrass
		}
		return voxel.Air
	}
}

func sphere(uint64) generator {
	const c, r = voxel.Size / 2, 26
	return func(x, y, z int) voxel.MaterialID {
		dx, dy, dz := x-c, y-c, z-c
		d := dx*dx + dy*dy + dz*dz
		switch {
		case d <= (r-3)*(r-3):
			return blockStone
		case d <= r*r:
			return blockDirt
		}
		return voxel.Air
	}
}

// checker alternates two blocks in 3D; no two neighbouring faces can merge.
func checker(uint64) generator {
	return func(x, y, z int) voxel.MaterialID {
		if (x+y+z)&1 == 0 {
			return blockStone
		}
		return blockGlass
	}
}

func stairs(uint64) generator {
	return func(x, y, z int) voxel.MaterialID {
		if y <= x {
			return blockSand
		}
		return voxel.Air
	}
}

func pillars(uint64) generator {
	return func(x, y, z int) voxel.MaterialID {
		if x%6 < 2 && z%6 < 2 && y < 40 {
			return blockLog
		}
		return voxel.Air
	}
}

// noise scatters blocks at random; the seed makes the output reproducible.
// Each coordinate is hashed on its own so halo cells stay deterministic.
func noise(seed uint64) generator {
	return func(x, y, z int) voxel.MaterialID {
		cell := uint64(x+1) | uint64(y+1)<<8 | uint64(z+1)<<16
		r := rand.New(rand.NewPCG(seed, cell))
		if r.Float64() >= 0.35 {
			return voxel.Air
		}
		return voxel.MaterialID(1 + r.IntN(int(blockGlass)))
	}
}
