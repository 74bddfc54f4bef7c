package types

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidSymbol is returned for ticker input that fails the format check.
var ErrInvalidSymbol = errors.New("invalid stock symbol")

// Ticker is an upper-cased alphanumeric JSE stock symbol.
type Ticker string

// ParseTicker upper-cases input and rejects anything that is empty or
// contains characters outside [A-Z0-9]. Surrounding whitespace is not trimmed.
func ParseTicker(input string) (Ticker, error) {
	if input == "" {
		return "", fmt.Errorf("%w: empty", ErrInvalidSymbol)
	}
	upper := strings.ToUpper(input)
	for _, r := range upper {
		if (r < 'A' || r > 'Z') && (r < '0' || r > '9') {
			return "", fmt.Errorf("%w: %q contains spaces or non-alphanumeric characters", ErrInvalidSymbol, input)
		}
	}
	return Ticker(upper), nil
}

func (t Ticker) String() string { return string(t) }

// RawPair is one headline as it appears in the news table: a title row
// followed by its date row.
type RawPair struct {
	Title    string
	DateText string
}

type ParsedDate struct {
	DayOfWeek  string
	DayOfMonth string
	Month      string
	Year       int
	Time       string
}

// HeadlineRecord is an accepted, formatted headline ready for display.
type HeadlineRecord struct {
	FormattedDate string
	Title         string
}

func (r HeadlineRecord) String() string {
	return r.FormattedDate + ": " + r.Title
}

// Format renders d as "Wed-22-Nov-2023 @16:45".
func (d ParsedDate) Format() string {
	return d.DayOfWeek + "-" + d.DayOfMonth + "-" + d.Month + "-" + strconv.Itoa(d.Year) + " @" + d.Time
}
