package textpdf

import (
	"context"
	"errors"
	"runtime"
	"sync"
)

// Pool sizing.
const (
	MinPoolSize = 1

	// MaxPoolSize caps browsers in memory (~200MB each with the chrome engine).
	MaxPoolSize = 8

	// cpuDivisor leaves headroom for Chrome child processes.
	cpuDivisor = 2
)

// RendererPool hands out Renderers for parallel batch rendering. Each
// Renderer owns its engine, so with the chrome engine every worker drives
// its own browser. Renderers are created lazily on Acquire.
type RendererPool struct {
	size  int
	opts  []Option
	sem   chan *Renderer
	mu    sync.Mutex
	all   []*Renderer
	made  int
	close bool
}

// NewRendererPool creates a pool of up to n Renderers built with opts.
func NewRendererPool(n int, opts ...Option) *RendererPool {
	if n < MinPoolSize {
		n = MinPoolSize
	}
	return &RendererPool{
		size: n,
		opts: opts,
		sem:  make(chan *Renderer, n),
		all:  make([]*Renderer, 0, n),
	}
}

// Acquire returns an idle Renderer, creating one while below capacity,
// or waits for a Release. A failed creation gives its slot back.
func (p *RendererPool) Acquire(ctx context.Context) (*Renderer, error) {
	select {
	case r, ok := <-p.sem:
		if !ok {
			return nil, ErrPoolClosed
		}
		return r, nil
	default:
	}

	p.mu.Lock()
	if p.close {
		p.mu.Unlock()
		return nil, ErrPoolClosed
	}
	if p.made < p.size {
		p.made++
		p.mu.Unlock()

		r, err := NewRenderer(p.opts...)

		p.mu.Lock()
		defer p.mu.Unlock()
		if err != nil {
			p.made--
			return nil, err
		}
		if p.close {
			_ = r.Close()
			return nil, ErrPoolClosed
		}
		p.all = append(p.all, r)
		return r, nil
	}
	p.mu.Unlock()

	select {
	case r, ok := <-p.sem:
		if !ok {
			return nil, ErrPoolClosed
		}
		return r, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Release returns r to the pool. Releasing after Close is a no-op.
// The send holds the lock so it cannot race with Close; it never blocks
// because the channel holds as many slots as the pool has Renderers.
func (p *RendererPool) Release(r *Renderer) {
	if r == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.close {
		return
	}
	p.sem <- r
}

// Close closes every Renderer the pool created and joins their errors.
func (p *RendererPool) Close() error {
	p.mu.Lock()
	if p.close {
		p.mu.Unlock()
		return nil
	}
	p.close = true
	close(p.sem)
	all := p.all
	p.mu.Unlock()

	var errs []error
	for _, r := range all {
		if err := r.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Size returns the pool capacity.
func (p *RendererPool) Size() int {
	return p.size
}

// ResolvePoolSize returns workers when positive, otherwise half of
// GOMAXPROCS clamped to [MinPoolSize, MaxPoolSize]. GOMAXPROCS already
// reflects container CPU quotas once automaxprocs has run.
func ResolvePoolSize(workers int) int {
	if workers > 0 {
		return workers
	}
	n := runtime.GOMAXPROCS(0) / cpuDivisor
	return min(max(n, MinPoolSize), MaxPoolSize)
}
