package session

import (
	"slices"
	"strings"
	"testing"

	"github.com/shanehull/sensscraper/internal/types"
)

func record(date, title string) types.HeadlineRecord {
	return types.HeadlineRecord{FormattedDate: date, Title: title}
}

func TestSessionLines(t *testing.T) {
	s := New()
	s.Append("NPN", []types.HeadlineRecord{
		record("Wed-22-Nov-2023 @16:45", "Trading statement"),
		record("Thu-1-Jan-2019 @09:00", "Dealing in securities"),
	})
	s.Append("SOL", nil)

	sep := strings.Repeat("-", 50)
	want := []string{
		"Results for: NPN",
		"Wed-22-Nov-2023 @16:45: Trading statement",
		"Thu-1-Jan-2019 @09:00: Dealing in securities",
		sep,
		"Results for: SOL",
		"No valid events found for stock symbol: SOL",
		sep,
	}
	if got := s.Lines(); !slices.Equal(got, want) {
		t.Errorf("Lines() =\n%q\nwant\n%q", got, want)
	}
	if got := s.Tickers(); !slices.Equal(got, []types.Ticker{"NPN", "SOL"}) {
		t.Errorf("Tickers() = %v", got)
	}
}

func TestSessionReset(t *testing.T) {
	s := New()
	if !s.Empty() {
		t.Fatal("new session should be empty")
	}

	s.Append("NPN", []types.HeadlineRecord{record("Wed-22-Nov-2023 @16:45", "Trading statement")})
	if s.Empty() {
		t.Fatal("session should not be empty after Append")
	}

	s.Reset()
	if !s.Empty() || len(s.Lines()) != 0 || len(s.Tickers()) != 0 {
		t.Error("Reset should clear all blocks")
	}
}

func TestAppendCopiesRecords(t *testing.T) {
	s := New()
	records := []types.HeadlineRecord{record("Wed-22-Nov-2023 @16:45", "Trading statement")}
	s.Append("NPN", records)

	records[0].Title = "changed"
	if got := s.Blocks()[0].Records[0].Title; got != "Trading statement" {
		t.Errorf("stored record changed to %q", got)
	}
}

func TestSessionExportLines(t *testing.T) {
	s := New()
	if got := s.ExportLines(); got != nil {
		t.Errorf("empty session ExportLines() = %q, want nil", got)
	}

	s.Append("NPN", []types.HeadlineRecord{record("Wed-22-Nov-2023 @16:45", "Trading statement")})

	want := []string{
		"Results for: NPN",
		"",
		"Wed-22-Nov-2023 @16:45: Trading statement",
		"",
		strings.Repeat("-", 50),
	}
	if got := s.ExportLines(); !slices.Equal(got, want) {
		t.Errorf("ExportLines() = %q, want %q", got, want)
	}
}
