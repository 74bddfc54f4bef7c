package sens

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/shanehull/sensscraper/internal/types"
)

const (
	sharedataNewsURL   = "https://www.sharedata.co.za/v2/Scripts/News.aspx?c=%s&group=SENS"
	newsTableSelector  = "#NewsListTable"
	newsRowsSelector   = "#NewsListTable tbody tr"
	DefaultWaitTimeout = 5000 * time.Millisecond

	// DefaultNavigateTimeout bounds the page load itself, before the row wait.
	DefaultNavigateTimeout = 30 * time.Second
)

var (
	// ErrLoadTimeout means the page or its news rows did not load in time.
	ErrLoadTimeout = errors.New("timed out waiting for news rows")
	// ErrPageLoad means navigation itself failed.
	ErrPageLoad = errors.New("failed to load news page")
	// ErrNoRows means the page loaded but the news table is empty.
	ErrNoRows = errors.New("no news rows found")
)

// Browser opens isolated pages. Each page owns its browser resources until
// Close is called.
type Browser interface {
	Open(ctx context.Context) (Page, error)
}

// Page is a single loaded tab.
type Page interface {
	Navigate(ctx context.Context, url string) error
	// WaitVisible blocks until selector matches at least one element or ctx ends.
	WaitVisible(ctx context.Context, selector string) error
	OuterHTML(ctx context.Context, selector string) (string, error)
	Close() error
}

// RowFetcher returns the raw text of every news row for a ticker.
type RowFetcher interface {
	FetchRows(ctx context.Context, ticker types.Ticker) ([]string, error)
}

// NewsURL returns the SENS news page for ticker.
func NewsURL(ticker types.Ticker) string {
	return fmt.Sprintf(sharedataNewsURL, ticker)
}

// Fetcher loads the sharedata news page in a browser and extracts its rows.
type Fetcher struct {
	browser         Browser
	waitTimeout     time.Duration
	navigateTimeout time.Duration
	logger          zerolog.Logger
}

func NewFetcher(browser Browser, waitTimeout time.Duration, logger zerolog.Logger) *Fetcher {
	if waitTimeout <= 0 {
		waitTimeout = DefaultWaitTimeout
	}
	return &Fetcher{
		browser:         browser,
		waitTimeout:     waitTimeout,
		navigateTimeout: DefaultNavigateTimeout,
		logger:          logger,
	}
}

// WithNavigateTimeout sets how long navigation may take. Values <= 0 keep
// DefaultNavigateTimeout.
func (f *Fetcher) WithNavigateTimeout(d time.Duration) *Fetcher {
	if d > 0 {
		f.navigateTimeout = d
	}
	return f
}

func (f *Fetcher) FetchRows(ctx context.Context, ticker types.Ticker) (rows []string, err error) {
	url := NewsURL(ticker)
	log := f.logger.With().Str("ticker", ticker.String()).Str("url", url).Logger()

	page, err := f.browser.Open(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w for %s: %w", ErrPageLoad, ticker, err)
	}
	defer func() {
		if cerr := page.Close(); cerr != nil {
			log.Warn().Err(cerr).Msg("Failed to close browser page")
		}
	}()

	log.Debug().Msg("Navigating to news page")
	navCtx, cancelNav := context.WithTimeout(ctx, f.navigateTimeout)
	defer cancelNav()
	if err := page.Navigate(navCtx, url); err != nil {
		if timedOut(navCtx, err) {
			return nil, fmt.Errorf("%w for %s: page did not load within %s", ErrLoadTimeout, ticker, f.navigateTimeout)
		}
		return nil, fmt.Errorf("%w for %s: %w", ErrPageLoad, ticker, err)
	}

	waitCtx, cancel := context.WithTimeout(ctx, f.waitTimeout)
	defer cancel()
	if err := page.WaitVisible(waitCtx, newsRowsSelector); err != nil {
		if timedOut(waitCtx, err) {
			return nil, fmt.Errorf("%w for %s after %s", ErrLoadTimeout, ticker, f.waitTimeout)
		}
		return nil, fmt.Errorf("%w for %s: %w", ErrPageLoad, ticker, err)
	}

	tableHTML, err := page.OuterHTML(ctx, newsTableSelector)
	if err != nil {
		return nil, fmt.Errorf("%w for %s: reading table: %w", ErrPageLoad, ticker, err)
	}

	rows, err = extractRows(tableHTML)
	if err != nil {
		return nil, fmt.Errorf("failed to parse news table for %s: %w", ticker, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w for %s", ErrNoRows, ticker)
	}

	log.Debug().Int("rows", len(rows)).Msg("Fetched news rows")
	return rows, nil
}

func timedOut(ctx context.Context, err error) bool {
	return errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded)
}
