package stribog

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sys/cpu"

	"github.com/zeebo/stribog/internal/consts"
)

// slot holds one result of SumAll. Each slot is written by a single worker.
type slot struct {
	digest [consts.Size512]byte
	_      cpu.CacheLinePad
}

// SumAll hashes every message in msgs independently using up to workers
// goroutines, or GOMAXPROCS goroutines if workers is not positive. The digests
// are returned in the order of msgs. If ctx is cancelled or w is invalid, an
// error is returned and no digests are.
func SumAll(ctx context.Context, msgs [][]byte, w Width, workers int) ([][]byte, error) {
	if !w.Valid() {
		return nil, ErrInvalidWidth
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	slots := make([]slot, len(msgs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i := range msgs {
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return hashInto(ctx, msgs[i], w, slots[i].digest[:w.Size()])
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	size := w.Size()
	out := make([][]byte, len(msgs))
	buf := make([]byte, size*len(msgs))
	for i := range slots {
		out[i] = buf[i*size : (i+1)*size : (i+1)*size]
		copy(out[i], slots[i].digest[:size])
	}
	return out, nil
}
