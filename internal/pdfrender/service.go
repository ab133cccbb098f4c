package pdfrender

import (
	"context"
	"net/url"
	"os"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/cdproto/runtime"
	"github.com/chromedp/chromedp"

	"github.com/vanari-rv/caravan-configurator/pkg/config"
	pkgerrors "github.com/vanari-rv/caravan-configurator/pkg/errors"
	"github.com/vanari-rv/caravan-configurator/pkg/logger"
)

// Service renders the order-summary page to a downloadable PDF using a
// headless Chrome instance.
type Service interface {
	RenderPage(ctx context.Context, pageURL string) ([]byte, error)
}

type service struct {
	cfg config.PDFConfig
	log *logger.Logger

	// render is swapped out in tests; driving a real browser there is
	// not practical.
	render func(ctx context.Context, chromePath, pageURL string) ([]byte, error)
}

func NewService(cfg config.PDFConfig, log *logger.Logger) Service {
	return &service{cfg: cfg, log: log, render: renderWithChrome}
}

func (s *service) RenderPage(ctx context.Context, pageURL string) ([]byte, error) {
	parsed, err := url.Parse(pageURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "page url must be absolute")
	}

	chromePath := s.cfg.ChromePath
	if chromePath == "" {
		chromePath = detectChromePath()
	}
	if chromePath == "" {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "no chrome or chromium executable found")
	}

	timeout := s.cfg.RenderTimeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	renderCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	started := time.Now()
	pdf, err := s.render(renderCtx, chromePath, pageURL)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "rendering pdf")
	}
	if s.log != nil {
		fields := map[string]any{"url": pageURL, "bytes": len(pdf), "duration_ms": time.Since(started).Milliseconds()}
		s.log.Info(s.log.WithFields(ctx, fields), "pdfrender.rendered")
	}
	return pdf, nil
}

// chromeCandidates are checked in order when no explicit path is configured.
var chromeCandidates = []string{
	"/usr/bin/chromium",
	"/usr/bin/chromium-browser",
	"/usr/bin/google-chrome",
	"/usr/bin/google-chrome-stable",
	"/snap/bin/chromium",
}

func detectChromePath() string {
	for _, candidate := range chromeCandidates {
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}
	return ""
}

// waitForAssets resolves once fonts and every <img> have finished
// loading, with a per-image timeout so a broken asset cannot stall the
// print.
const waitForAssets = `
(function() {
	return Promise.all([
		document.fonts.ready,
		Promise.all(Array.from(document.querySelectorAll('img')).map(img => {
			return new Promise((resolve) => {
				if (img.complete) { resolve(); return; }
				const timer = setTimeout(resolve, 5000);
				img.onload = () => { clearTimeout(timer); resolve(); };
				img.onerror = () => { clearTimeout(timer); resolve(); };
			});
		}))
	]);
})();
`

func renderWithChrome(ctx context.Context, chromePath, pageURL string) ([]byte, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.ExecPath(chromePath),
		chromedp.NoSandbox,
	)
	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	defer cancelAlloc()

	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	var pdf []byte
	err := chromedp.Run(browserCtx,
		chromedp.EmulateViewport(794, 1123),
		chromedp.Navigate(pageURL),
		chromedp.WaitReady("body"),
		chromedp.Evaluate(waitForAssets, nil, func(p *runtime.EvaluateParams) *runtime.EvaluateParams {
			return p.WithAwaitPromise(true)
		}),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			// A4 portrait, margins handled by the page's own CSS.
			pdf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(8.27).
				WithPaperHeight(11.69).
				WithMarginTop(0).
				WithMarginBottom(0).
				WithMarginLeft(0).
				WithMarginRight(0).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, err
	}
	return pdf, nil
}
