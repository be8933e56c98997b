package utils

import (
	"context"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/chromedp/chromedp"

	"coursera-extractor/internal/types"
)

// cardBaseSelector is the first element that proves the catalog
// actually rendered; navigation blocks until it is visible.
const cardBaseSelector = ".cds-ProductCard-base"

// BrowserClient drives a headless browser session. The session is the
// single shared external resource of a run and is released on every
// exit path, success or failure.
type BrowserClient struct {
	config *types.Config
	logger types.Logger
}

// NewBrowserClient creates a new browser client
func NewBrowserClient(config *types.Config, logger types.Logger) *BrowserClient {
	// Suppress chromedp debug logging
	log.SetOutput(io.Discard)

	return &BrowserClient{
		config: config,
		logger: logger,
	}
}

// pageSession is the slice of a rendered page the convergence loop
// needs: trigger a scroll and measure the current extent.
type pageSession interface {
	scrollToBottom(ctx context.Context) error
	pageHeight(ctx context.Context) (int64, error)
}

type chromedpSession struct{}

func (chromedpSession) scrollToBottom(ctx context.Context) error {
	return chromedp.Evaluate(`window.scrollTo(0, document.body.scrollHeight)`, nil).Do(ctx)
}

func (chromedpSession) pageHeight(ctx context.Context) (int64, error) {
	var height int64
	err := chromedp.Evaluate(`document.body.scrollHeight`, &height).Do(ctx)
	return height, err
}

// waitForStableHeight scrolls to the bottom of the page until its
// extent stops changing: two equal consecutive measurements mean the
// infinite-scroll feed has no more content to load. The loop is
// bounded by maxScrolls so a page that never stabilizes yields an
// incomplete-load outcome instead of hanging.
func waitForStableHeight(ctx context.Context, page pageSession, maxScrolls int, settle time.Duration) (types.LoadOutcome, error) {
	lastHeight, err := page.pageHeight(ctx)
	if err != nil {
		return types.LoadIncomplete, err
	}

	for i := 0; i < maxScrolls; i++ {
		if err := page.scrollToBottom(ctx); err != nil {
			return types.LoadIncomplete, err
		}

		select {
		case <-time.After(settle):
		case <-ctx.Done():
			return types.LoadIncomplete, ctx.Err()
		}

		height, err := page.pageHeight(ctx)
		if err != nil {
			return types.LoadIncomplete, err
		}
		if height == lastHeight {
			return types.LoadComplete, nil
		}
		lastHeight = height
	}

	return types.LoadIncomplete, nil
}

// LoadCatalog navigates to the catalog URL, waits for the first card to
// render, scrolls until the page height converges (or the scroll bound
// is hit) and returns the fully rendered markup. An incomplete load is
// not an error: the captured markup is still returned for extraction.
func (b *BrowserClient) LoadCatalog(ctx context.Context, url string) (string, types.LoadOutcome, error) {
	browserCtx, cancel := chromedp.NewContext(ctx)
	defer cancel()

	browserCtx, cancel = context.WithTimeout(browserCtx, b.config.Timeout)
	defer cancel()

	b.logger.Infof("Loading catalog page %s", url)

	var html string
	outcome := types.LoadIncomplete

	err := chromedp.Run(browserCtx,
		chromedp.Navigate(url),
		chromedp.WaitVisible(cardBaseSelector, chromedp.ByQuery),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			outcome, err = waitForStableHeight(ctx, chromedpSession{}, b.config.MaxScrolls, b.config.SettleInterval)
			return err
		}),
		chromedp.OuterHTML("html", &html),
	)
	if err != nil {
		return "", types.LoadIncomplete, fmt.Errorf("failed to load catalog page: %w", err)
	}

	if outcome == types.LoadIncomplete {
		b.logger.Warnf("Page height did not stabilize within %d scrolls, continuing with partial content", b.config.MaxScrolls)
	}
	b.logger.Debugf("Captured %d bytes of rendered markup from %s", len(html), url)

	return html, outcome, nil
}
