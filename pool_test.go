package textpdf

// Notes:
// - Pools are built with the fpdf engine, so Renderers are cheap and no
//   browser is started.
// - Timing-based tests only assert the absence of deadlock, with generous
//   timers.

import (
	"context"
	"errors"
	"path/filepath"
	"runtime"
	"sync"
	"testing"
	"time"
)

// Compile-time interface check.
var _ interface {
	Acquire(context.Context) (*Renderer, error)
	Release(*Renderer)
	Size() int
	Close() error
} = (*RendererPool)(nil)

func mustAcquire(t *testing.T, pool *RendererPool) *Renderer {
	t.Helper()
	r, err := pool.Acquire(context.Background())
	if err != nil {
		t.Fatalf("Acquire() error = %v", err)
	}
	return r
}

func waitOrFail(t *testing.T, wg *sync.WaitGroup, d time.Duration, msg string) {
	t.Helper()
	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-done:
	case <-timer.C:
		t.Fatal(msg)
	}
}

// ---------------------------------------------------------------------------
// TestResolvePoolSize - Worker count
// ---------------------------------------------------------------------------

func TestResolvePoolSize(t *testing.T) {
	t.Parallel()

	auto := min(max(runtime.GOMAXPROCS(0)/cpuDivisor, MinPoolSize), MaxPoolSize)

	tests := []struct {
		name    string
		workers int
		want    int
	}{
		{"explicit takes priority", 4, 4},
		{"explicit=1 for sequential", 1, 1},
		{"explicit can exceed max", 16, 16},
		{"zero uses auto calculation", 0, auto},
		{"negative uses auto calculation", -5, auto},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := ResolvePoolSize(tt.workers); got != tt.want {
				t.Errorf("ResolvePoolSize(%d) = %d, want %d", tt.workers, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestRendererPool - Acquire, release and close
// ---------------------------------------------------------------------------

func TestRendererPool_Size(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		size int
		want int
	}{
		{"size 1", 1, 1},
		{"size 4", 4, 4},
		{"size 0 becomes 1", 0, 1},
		{"negative becomes 1", -1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			pool := NewRendererPool(tt.size)
			defer pool.Close()
			if got := pool.Size(); got != tt.want {
				t.Errorf("Size() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestRendererPool_AcquireRelease(t *testing.T) {
	t.Parallel()

	pool := NewRendererPool(2)
	defer pool.Close()

	r1 := mustAcquire(t, pool)
	r2 := mustAcquire(t, pool)
	if r1 == r2 {
		t.Error("expected different renderer instances")
	}

	pool.Release(r1)
	if r3 := mustAcquire(t, pool); r3 != r1 {
		t.Error("expected to get back the released renderer")
	}
}

func TestRendererPool_WaitsWhenExhausted(t *testing.T) {
	t.Parallel()

	pool := NewRendererPool(1)
	defer pool.Close()
	r := mustAcquire(t, pool)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	if _, err := pool.Acquire(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("Acquire() on exhausted pool error = %v, want DeadlineExceeded", err)
	}

	got := make(chan *Renderer, 1)
	go func() {
		r2, _ := pool.Acquire(context.Background())
		got <- r2
	}()
	pool.Release(r)

	select {
	case r2 := <-got:
		if r2 != r {
			t.Error("waiter did not receive the released renderer")
		}
	case <-time.After(5 * time.Second):
		t.Fatal("waiter never woke up")
	}
}

func TestRendererPool_CreationErrorFreesSlot(t *testing.T) {
	t.Parallel()

	pool := NewRendererPool(1, WithEngine("latex"))
	defer pool.Close()

	for range 2 {
		if _, err := pool.Acquire(context.Background()); !errors.Is(err, ErrUnknownEngine) {
			t.Fatalf("Acquire() error = %v, want ErrUnknownEngine", err)
		}
	}
}

func TestRendererPool_AcquireAfterClose(t *testing.T) {
	t.Parallel()

	pool := NewRendererPool(2)
	r := mustAcquire(t, pool)
	if err := pool.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	// Release after close is a no-op.
	pool.Release(r)

	if _, err := pool.Acquire(context.Background()); !errors.Is(err, ErrPoolClosed) {
		t.Errorf("Acquire() after Close error = %v, want ErrPoolClosed", err)
	}
}

func TestRendererPool_DoubleClose(t *testing.T) {
	t.Parallel()

	pool := NewRendererPool(1)
	mustAcquire(t, pool)
	if err := pool.Close(); err != nil {
		t.Errorf("first Close() error = %v", err)
	}
	if err := pool.Close(); err != nil {
		t.Errorf("second Close() error = %v", err)
	}
}

func TestRendererPool_ReleaseNil(t *testing.T) {
	t.Parallel()

	pool := NewRendererPool(1)
	defer pool.Close()
	pool.Release(nil)

	if r := mustAcquire(t, pool); r == nil {
		t.Error("Acquire() returned nil")
	}
}

// TestRendererPool_HighContention keeps a small pool under many goroutines
// that render real documents in parallel.
func TestRendererPool_HighContention(t *testing.T) {
	t.Parallel()

	pool := NewRendererPool(2, WithCompression(false))
	defer pool.Close()
	dir := t.TempDir()

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		errs []error
	)
	for i := range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r, err := pool.Acquire(context.Background())
			if err != nil {
				mu.Lock()
				errs = append(errs, err)
				mu.Unlock()
				return
			}
			defer pool.Release(r)

			path := filepath.Join(dir, "doc"+string(rune('a'+i))+".pdf")
			if _, err := r.Render(context.Background(), Input{Text: longText(5), OutputPath: path}); err != nil {
				mu.Lock()
				errs = append(errs, err)
				mu.Unlock()
			}
		}()
	}

	waitOrFail(t, &wg, 30*time.Second, "high contention test timed out - possible deadlock")
	if err := errors.Join(errs...); err != nil {
		t.Errorf("render errors: %v", err)
	}
}
