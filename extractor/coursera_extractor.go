package extractor

import (
	"context"
	"fmt"

	"coursera-extractor/adapters"
	"coursera-extractor/internal/types"
	"coursera-extractor/utils"
)

// CourseraExtractor runs the full pipeline for one catalog URL: load
// the rendered page, walk its cards into records, and hand them back
// in display order.
type CourseraExtractor struct {
	adapter    *adapters.CourseraAdapter
	browser    *utils.BrowserClient
	httpClient *utils.HTTPClient
	config     *types.Config
	logger     types.Logger
}

// NewCourseraExtractor creates a new Coursera extractor
func NewCourseraExtractor(config *types.Config, logger types.Logger) *CourseraExtractor {
	return &CourseraExtractor{
		adapter:    adapters.NewCourseraAdapter(logger),
		browser:    utils.NewBrowserClient(config, logger),
		httpClient: utils.NewHTTPClient(config, logger),
		config:     config,
		logger:     logger,
	}
}

// ExtractAll loads the catalog page and extracts every course record.
// The load outcome tells the caller whether the infinite scroll
// converged; an incomplete load still yields whatever records were
// captured.
func (e *CourseraExtractor) ExtractAll(ctx context.Context, url string) ([]types.CourseRecord, types.LoadOutcome, error) {
	html, outcome, err := e.loadPage(ctx, url)
	if err != nil {
		return nil, outcome, err
	}

	doc, err := e.adapter.ParseHTML(html)
	if err != nil {
		return nil, outcome, fmt.Errorf("failed to parse catalog markup: %w", err)
	}

	courses := e.adapter.ExtractCourses(doc)
	e.logger.Infof("Extracted %d course records (load %s)", len(courses), outcome)

	return courses, outcome, nil
}

func (e *CourseraExtractor) loadPage(ctx context.Context, url string) (string, types.LoadOutcome, error) {
	if e.config.UseHeadlessBrowser {
		return e.browser.LoadCatalog(ctx, url)
	}

	// Static fetch cannot scroll, so the catalog beyond the first
	// screenful is never loaded.
	e.logger.Warn("Headless browser disabled, fetching static page only")
	html, err := e.httpClient.FetchPage(ctx, url)
	return html, types.LoadIncomplete, err
}

// Close cleans up resources
func (e *CourseraExtractor) Close() {
	if e.httpClient != nil {
		e.httpClient.Close()
	}
}
