package sens

import (
	"iter"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/shanehull/sensscraper/internal/types"
)

const (
	minTitleLength = 10
	yearWindow     = 5
)

// dateRe matches e.g. "Wed 22 Nov 2023 16:45" anywhere in the row text.
var dateRe = regexp.MustCompile(`(\w{3}) (\d{1,2}) (\w{3}) (\d{4}) (\d{2}:\d{2})`)

var months = map[string]struct{}{
	"Jan": {}, "Feb": {}, "Mar": {}, "Apr": {}, "May": {}, "Jun": {},
	"Jul": {}, "Aug": {}, "Sep": {}, "Oct": {}, "Nov": {}, "Dec": {},
}

type rejectReason int

const (
	accepted rejectReason = iota
	rejectShortTitle
	rejectMalformedDate
	rejectOutOfWindow
)

// Stats counts what happened to each pair during one pipeline run.
type Stats struct {
	Rows          int
	Pairs         int
	ShortTitle    int
	MalformedDate int
	OutOfWindow   int
	Accepted      int
}

func (s *Stats) record(r rejectReason) {
	switch r {
	case accepted:
		s.Accepted++
	case rejectShortTitle:
		s.ShortTitle++
	case rejectMalformedDate:
		s.MalformedDate++
	case rejectOutOfWindow:
		s.OutOfWindow++
	}
}

// Pairs walks rows in strides of two starting at index 1, yielding
// (rows[i-1], rows[i]) as title and date. The table is assumed to strictly
// interleave title and date rows; a trailing unpaired row is dropped.
func Pairs(rows []string) iter.Seq[types.RawPair] {
	return func(yield func(types.RawPair) bool) {
		for i := 1; i < len(rows); i += 2 {
			if !yield(types.RawPair{Title: rows[i-1], DateText: rows[i]}) {
				return
			}
		}
	}
}

// ParseDate extracts the first "Ddd D Mmm YYYY HH:MM" occurrence from text.
// Day of month and time are kept as captured; calendar validity is not checked.
func ParseDate(text string) (types.ParsedDate, bool) {
	m := dateRe.FindStringSubmatch(text)
	if m == nil {
		return types.ParsedDate{}, false
	}
	if _, ok := months[m[3]]; !ok {
		return types.ParsedDate{}, false
	}
	year, err := strconv.Atoi(m[4])
	if err != nil {
		return types.ParsedDate{}, false
	}
	return types.ParsedDate{
		DayOfWeek:  m[1],
		DayOfMonth: m[2],
		Month:      m[3],
		Year:       year,
		Time:       m[5],
	}, true
}

// TitleLongEnough reports whether the trimmed title has at least ten characters.
func TitleLongEnough(title string) bool {
	return utf8.RuneCountInString(strings.TrimSpace(title)) >= minTitleLength
}

// InWindow reports whether year lies in [currentYear-5, currentYear].
func InWindow(year, currentYear int) bool {
	return year >= currentYear-yearWindow && year <= currentYear
}

// Accept applies the retention rules in order: title length, date parsed,
// year window. date is nil when parsing failed.
func Accept(pair types.RawPair, date *types.ParsedDate, currentYear int) bool {
	return evaluate(pair, date, currentYear) == accepted
}

func evaluate(pair types.RawPair, date *types.ParsedDate, currentYear int) rejectReason {
	if !TitleLongEnough(pair.Title) {
		return rejectShortTitle
	}
	if date == nil {
		return rejectMalformedDate
	}
	if !InWindow(date.Year, currentYear) {
		return rejectOutOfWindow
	}
	return accepted
}

// FormatLine renders an accepted pair. The result's String() is
// "Wed-22-Nov-2023 @16:45: Example Headline Text".
func FormatLine(pair types.RawPair, date types.ParsedDate) types.HeadlineRecord {
	return types.HeadlineRecord{
		FormattedDate: date.Format(),
		Title:         strings.TrimSpace(pair.Title),
	}
}
