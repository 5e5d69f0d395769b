//go:build integration

package textpdf

// Notes:
// - Integration tests drive a real headless Chrome through the chrome
//   engine. They share one RendererPool created in TestMain.
// - Pool size is capped at 4 for CI environments to avoid resource
//   exhaustion.

import (
	"context"
	"os"
	"testing"
	"time"
)

// ---------------------------------------------------------------------------
// Test Configuration
// ---------------------------------------------------------------------------

// testTimeout is the standard timeout for integration test operations.
const testTimeout = 30 * time.Second

// testPool is shared by all integration tests. Tests only Acquire and
// Release; TestMain closes it.
var testPool *RendererPool

// ---------------------------------------------------------------------------
// TestMain - Integration Test Setup and Teardown
// ---------------------------------------------------------------------------

func TestMain(m *testing.M) {
	poolSize := min(ResolvePoolSize(0), 4)
	testPool = NewRendererPool(poolSize, WithEngine(EngineChrome), WithTimeout(testTimeout))

	code := m.Run()

	// Cleanup all browser instances
	_ = testPool.Close()
	os.Exit(code)
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

// acquireRenderer gets a chrome renderer from the shared pool and releases
// it when the test ends.
func acquireRenderer(t *testing.T) *Renderer {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), testTimeout)
	defer cancel()
	r, err := testPool.Acquire(ctx)
	if err != nil {
		t.Fatalf("acquiring renderer: %v", err)
	}
	t.Cleanup(func() { testPool.Release(r) })
	return r
}
