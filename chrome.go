package textpdf

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"

	"github.com/alnah/go-textpdf/internal/fileutil"
	"github.com/alnah/go-textpdf/internal/process"
)

// US Letter in inches, as Chrome's print options expect.
const (
	paperWidthInches  = pageWidth / pointsPerInch
	paperHeightInches = pageHeight / pointsPerInch
)

// chromeEngine prints HTML with headless Chrome. The browser is started on
// first use and shared by concurrent renders; each render opens its own tab.
type chromeEngine struct {
	timeout time.Duration

	mu       sync.Mutex
	launcher *launcher.Launcher
	browser  *rod.Browser
}

func newChromeEngine(timeout time.Duration) *chromeEngine {
	return &chromeEngine{timeout: timeout}
}

// connect starts the browser once. Callers hold e.mu.
func (e *chromeEngine) connect() (*rod.Browser, error) {
	if e.browser != nil {
		return e.browser, nil
	}

	l := launcher.New()
	// Pre-installed browser for Docker and CI images.
	if bin := os.Getenv("ROD_BROWSER_BIN"); bin != "" {
		l = l.Bin(bin)
	}
	if os.Getenv("CI") == "true" || os.Getenv("ROD_NO_SANDBOX") == "1" || os.Getenv("ROD_BROWSER_BIN") != "" {
		l = l.NoSandbox(true)
	}

	u, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBrowserConnect, err)
	}

	b := rod.New().ControlURL(u)
	if err := b.Connect(); err != nil {
		l.Kill()
		return nil, fmt.Errorf("%w: %v", ErrBrowserConnect, err)
	}
	e.launcher, e.browser = l, b
	return b, nil
}

func (e *chromeEngine) render(ctx context.Context, doc *document) ([]byte, int, error) {
	if err := ctx.Err(); err != nil {
		return nil, 0, err
	}

	content, err := buildHTML(doc)
	if err != nil {
		return nil, 0, err
	}
	path, cleanup, err := fileutil.WriteTempFile(content, "html")
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %v", ErrPDFGeneration, err)
	}
	defer cleanup()

	e.mu.Lock()
	browser, err := e.connect()
	e.mu.Unlock()
	if err != nil {
		return nil, 0, err
	}

	page, err := browser.Page(proto.TargetCreateTarget{URL: "file://" + path})
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %v", ErrPageCreate, err)
	}
	defer func() { _ = page.Close() }()

	timeout := e.timeout
	if deadline, ok := ctx.Deadline(); ok {
		timeout = time.Until(deadline)
		if timeout <= 0 {
			return nil, 0, context.DeadlineExceeded
		}
	}
	if err := page.Context(ctx).Timeout(timeout).WaitLoad(); err != nil {
		return nil, 0, fmt.Errorf("%w: %v", ErrPageLoad, err)
	}

	reader, err := page.Context(ctx).PDF(printOptions(doc.layout))
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %v", ErrPDFGeneration, err)
	}
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: reading PDF stream: %v", ErrPDFGeneration, err)
	}

	pages, err := CountPages(data)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %v", ErrPDFGeneration, err)
	}
	return data, pages, nil
}

// printOptions puts the text area at the same inset as the fpdf engine.
func printOptions(l pageLayout) *proto.PagePrintToPDF {
	m := l.inset() / pointsPerInch
	return &proto.PagePrintToPDF{
		PaperWidth:      floatPtr(paperWidthInches),
		PaperHeight:     floatPtr(paperHeightInches),
		MarginTop:       floatPtr(m),
		MarginBottom:    floatPtr(m),
		MarginLeft:      floatPtr(m),
		MarginRight:     floatPtr(m),
		PrintBackground: true,
	}
}

func floatPtr(v float64) *float64 {
	return &v
}

// Close stops the browser and any helper processes it left behind.
func (e *chromeEngine) Close() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.browser == nil {
		return nil
	}
	err := e.browser.Close()
	pid := e.launcher.PID()
	e.launcher.Kill()
	process.KillProcessGroup(pid)
	e.browser, e.launcher = nil, nil
	return err
}
