package textpdf

import (
	"context"
	"fmt"
	"strings"
)

// engine turns a laid-out document into PDF bytes and reports its page count.
type engine interface {
	render(ctx context.Context, doc *document) ([]byte, int, error)
	Close() error
}

var (
	_ engine = (*fpdfEngine)(nil)
	_ engine = (*chromeEngine)(nil)
)

func newEngine(cfg rendererConfig) (engine, error) {
	switch cfg.engine {
	case EngineFPDF, "":
		return &fpdfEngine{}, nil
	case EngineChrome:
		return newChromeEngine(cfg.timeout), nil
	default:
		return nil, fmt.Errorf("%w: %q (available: %s)", ErrUnknownEngine, cfg.engine, strings.Join(Engines(), ", "))
	}
}
