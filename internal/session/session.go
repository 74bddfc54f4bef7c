/*
Package session holds the headline results accumulated during one run of the
scraper. Nothing is persisted; Reset discards everything.
*/
package session

import (
	"strings"
	"sync"

	"github.com/shanehull/sensscraper/internal/types"
)

const separatorWidth = 50

// Block is the contiguous set of accepted headlines for one ticker submission.
type Block struct {
	Ticker  types.Ticker
	Records []types.HeadlineRecord
}

// Lines renders the block as it is displayed and exported.
func (b Block) Lines() []string {
	lines := make([]string, 0, len(b.Records)+3)
	lines = append(lines, "Results for: "+b.Ticker.String())
	if len(b.Records) == 0 {
		lines = append(lines, "No valid events found for stock symbol: "+b.Ticker.String())
	}
	for _, r := range b.Records {
		lines = append(lines, r.String())
	}
	lines = append(lines, strings.Repeat("-", separatorWidth))
	return lines
}

type Session struct {
	mu     sync.Mutex
	blocks []Block
}

func New() *Session {
	return &Session{}
}

// Append records the results of one ticker as a single block. The records
// slice is copied.
func (s *Session) Append(ticker types.Ticker, records []types.HeadlineRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.blocks = append(s.blocks, Block{
		Ticker:  ticker,
		Records: append([]types.HeadlineRecord(nil), records...),
	})
}

// Reset clears every ticker and record held by the session.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.blocks = nil
}

func (s *Session) Blocks() []Block {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Block(nil), s.blocks...)
}

func (s *Session) Tickers() []types.Ticker {
	s.mu.Lock()
	defer s.mu.Unlock()

	tickers := make([]types.Ticker, 0, len(s.blocks))
	for _, b := range s.blocks {
		tickers = append(tickers, b.Ticker)
	}
	return tickers
}

func (s *Session) Empty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.blocks) == 0
}

// Lines renders every block in submission order.
func (s *Session) Lines() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	var lines []string
	for _, b := range s.blocks {
		lines = append(lines, b.Lines()...)
	}
	return lines
}

// ExportLines is Lines with a blank line between entries, the layout the
// results view shows and the PDF reproduces.
func (s *Session) ExportLines() []string {
	lines := s.Lines()
	if len(lines) == 0 {
		return nil
	}
	out := make([]string, 0, 2*len(lines)-1)
	for i, l := range lines {
		if i > 0 {
			out = append(out, "")
		}
		out = append(out, l)
	}
	return out
}
