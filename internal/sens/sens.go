/*
Package sens scrapes SENS announcement headlines for JSE tickers from
sharedata.co.za and normalizes them into display lines.
*/
package sens

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/shanehull/sensscraper/internal/session"
	"github.com/shanehull/sensscraper/internal/types"
)

// ErrTickerNotFound is returned by Submit when the validity check finds no rows.
var ErrTickerNotFound = errors.New("error loading stock symbol")

// ProgressFunc is called with the current stride index and the total row count.
type ProgressFunc func(current, total int)

type Scraper struct {
	fetcher RowFetcher
	now     func() time.Time
	logger  zerolog.Logger
}

func NewScraper(fetcher RowFetcher, logger zerolog.Logger) *Scraper {
	return &Scraper{
		fetcher: fetcher,
		now:     time.Now,
		logger:  logger,
	}
}

// IsValidTicker loads the news page and reports whether it has any rows.
// Row content is discarded.
func (s *Scraper) IsValidTicker(ctx context.Context, ticker types.Ticker) bool {
	rows, err := s.fetcher.FetchRows(ctx, ticker)
	if err != nil {
		s.logger.Warn().Err(err).Str("ticker", ticker.String()).Msg("Stock symbol failed validity check")
		return false
	}
	return len(rows) > 0
}

// Headlines fetches the ticker's news rows and returns the accepted records
// in row order. The year window is taken from the clock on every call.
func (s *Scraper) Headlines(ctx context.Context, ticker types.Ticker, progress ProgressFunc) ([]types.HeadlineRecord, Stats, error) {
	rows, err := s.fetcher.FetchRows(ctx, ticker)
	if err != nil {
		return nil, Stats{}, err
	}
	records, stats := s.extract(ticker, rows, progress)
	return records, stats, nil
}

func (s *Scraper) extract(ticker types.Ticker, rows []string, progress ProgressFunc) ([]types.HeadlineRecord, Stats) {
	stats := Stats{Rows: len(rows)}
	currentYear := s.now().Year()
	var records []types.HeadlineRecord

	i := 1
	for pair := range Pairs(rows) {
		if progress != nil {
			progress(i, len(rows))
		}
		i += 2
		stats.Pairs++

		var date *types.ParsedDate
		if TitleLongEnough(pair.Title) {
			if d, ok := ParseDate(pair.DateText); ok {
				date = &d
			}
		}

		reason := evaluate(pair, date, currentYear)
		stats.record(reason)
		if reason != accepted {
			continue
		}
		records = append(records, FormatLine(pair, *date))
	}

	s.logger.Debug().
		Str("ticker", ticker.String()).
		Int("rows", stats.Rows).
		Int("pairs", stats.Pairs).
		Int("short_title", stats.ShortTitle).
		Int("malformed_date", stats.MalformedDate).
		Int("out_of_window", stats.OutOfWindow).
		Int("accepted", stats.Accepted).
		Msg("Filtered headlines")

	return records, stats
}

// Submission is the outcome of one ticker submission.
type Submission struct {
	Ticker  types.Ticker
	State   State
	Path    []State
	Records []types.HeadlineRecord
	Stats   Stats
}

func (sub *Submission) enter(state State) {
	sub.State = state
	sub.Path = append(sub.Path, state)
}

// Submit runs one ticker through validation, fetch and extraction, appending
// the result block to sess on success. An accepted ticker costs two page
// loads: one for the validity check and one for the fetch. Failures are
// terminal for the submission and never retried.
func (s *Scraper) Submit(ctx context.Context, input string, sess *session.Session, progress ProgressFunc) (Submission, error) {
	sub := Submission{Path: []State{StateIdle}}

	sub.enter(StateValidating)
	ticker, err := types.ParseTicker(input)
	if err != nil {
		sub.enter(StateInvalid)
		return sub, err
	}
	sub.Ticker = ticker

	if !s.IsValidTicker(ctx, ticker) {
		sub.enter(StateInvalid)
		return sub, fmt.Errorf("%w '%s'", ErrTickerNotFound, ticker)
	}

	sub.enter(StateFetching)
	s.logger.Info().Str("ticker", ticker.String()).Str("url", NewsURL(ticker)).Msg("Fetching SENS headlines")

	rows, err := s.fetcher.FetchRows(ctx, ticker)
	if err != nil {
		sub.enter(StateNoData)
		return sub, err
	}

	sub.enter(StateExtracting)
	sub.Records, sub.Stats = s.extract(ticker, rows, progress)
	sess.Append(ticker, sub.Records)

	sub.enter(StateDone)
	s.logger.Info().Str("ticker", ticker.String()).Int("accepted", len(sub.Records)).Msg("Finished fetching headlines")
	return sub, nil
}
