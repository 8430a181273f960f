// Package batch meshes many chunk volumes concurrently.
//
// Each worker calls Mesher.Mesh, which takes its own scratch buffers from the
// mesher's pool, so one Mesher is shared by all workers.
package batch

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Faultbox/voxmesh/internal/mesher"
	"github.com/Faultbox/voxmesh/pkg/voxel"
)

// ErrNilMesher is returned when MeshAll is called without a mesher.
var ErrNilMesher = errors.New("batch: nil mesher")

// Summary aggregates the statistics of a batch.
type Summary struct {
	Chunks    int
	Empty     int
	Quads     int
	Faces     int
	Anomalies int
	Elapsed   time.Duration
}

// MergeRatio returns visible faces per emitted quad.
func (s Summary) MergeRatio() float64 {
	if s.Quads == 0 {
		return 0
	}
	return float64(s.Faces) / float64(s.Quads)
}

// Options controls MeshAll.
type Options struct {
	// Workers caps concurrent meshing. Zero or less means runtime.NumCPU().
	Workers int
	Logger  *zap.Logger
}

// MeshAll meshes every volume and returns results in input order. The first
// error cancels the remaining work.
func MeshAll(ctx context.Context, m *mesher.Mesher, volumes []*voxel.Volume, opts Options) ([]*mesher.MeshResult, Summary, error) {
	if m == nil {
		return nil, Summary{}, ErrNilMesher
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	start := time.Now()
	results := make([]*mesher.MeshResult, len(volumes))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, vol := range volumes {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res, err := m.Mesh(vol)
			if err != nil {
				return fmt.Errorf("chunk %d: %w", i, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, Summary{}, err
	}
	// A cancelled parent context may stop the loop before any goroutine fails.
	if err := ctx.Err(); err != nil {
		return nil, Summary{}, err
	}

	sum := Summarize(results)
	sum.Elapsed = time.Since(start)
	log.Debug("batch meshed",
		zap.Int("chunks", sum.Chunks),
		zap.Int("workers", workers),
		zap.Int("quads", sum.Quads),
		zap.Duration("elapsed", sum.Elapsed),
	)
	if sum.Anomalies > 0 {
		log.Warn("batch has faces without blocks", zap.Int("cells", sum.Anomalies))
	}
	return results, sum, nil
}

// Summarize totals the statistics of results. Nil entries are skipped.
func Summarize(results []*mesher.MeshResult) Summary {
	var s Summary
	for _, r := range results {
		if r == nil {
			continue
		}
		s.Chunks++
		if r.Empty() {
			s.Empty++
		}
		s.Quads += r.Stats.Quads
		s.Faces += r.Stats.Faces
		s.Anomalies += r.Stats.Anomalies
	}
	return s
}
