package sens

import (
	"testing"

	"github.com/shanehull/sensscraper/internal/types"
)

func TestPairsEvenLength(t *testing.T) {
	rows := []string{"t0", "d0", "t1", "d1", "t2", "d2"}

	var got []types.RawPair
	for p := range Pairs(rows) {
		got = append(got, p)
	}

	if len(got) != len(rows)/2 {
		t.Fatalf("got %d pairs, want %d", len(got), len(rows)/2)
	}
	for k, p := range got {
		want := types.RawPair{Title: rows[2*k], DateText: rows[2*k+1]}
		if p != want {
			t.Errorf("pair %d = %+v, want %+v", k, p, want)
		}
	}
}

func TestPairsDropsTrailingRow(t *testing.T) {
	tests := []struct {
		rows []string
		want int
	}{
		{nil, 0},
		{[]string{"only"}, 0},
		{[]string{"a", "b", "c"}, 1},
		{[]string{"header", "Short", "Wed 22 Nov 2023 16:45", "A Sufficiently Long Title", "Thu 1 Jan 2019 09:00"}, 2},
	}

	for _, tt := range tests {
		n := 0
		for range Pairs(tt.rows) {
			n++
		}
		if n != tt.want {
			t.Errorf("Pairs(%q) yielded %d pairs, want %d", tt.rows, n, tt.want)
		}
	}
}

func TestPairsStopsEarly(t *testing.T) {
	rows := []string{"a", "b", "c", "d"}
	n := 0
	for range Pairs(rows) {
		n++
		break
	}
	if n != 1 {
		t.Errorf("expected iteration to stop after 1 pair, got %d", n)
	}
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  types.ParsedDate
		ok    bool
	}{
		{
			name:  "plain",
			input: "Wed 22 Nov 2023 16:45",
			want:  types.ParsedDate{DayOfWeek: "Wed", DayOfMonth: "22", Month: "Nov", Year: 2023, Time: "16:45"},
			ok:    true,
		},
		{
			name:  "single digit day",
			input: "Thu 1 Jan 2019 09:00",
			want:  types.ParsedDate{DayOfWeek: "Thu", DayOfMonth: "1", Month: "Jan", Year: 2019, Time: "09:00"},
			ok:    true,
		},
		{
			name:  "embedded in row text",
			input: "\n\t  Published: Mon 3 Jun 2024 08:15 (SENS)  ",
			want:  types.ParsedDate{DayOfWeek: "Mon", DayOfMonth: "3", Month: "Jun", Year: 2024, Time: "08:15"},
			ok:    true,
		},
		{
			name:  "calendar invalid is still accepted",
			input: "Wed 31 Feb 2024 99:99",
			want:  types.ParsedDate{DayOfWeek: "Wed", DayOfMonth: "31", Month: "Feb", Year: 2024, Time: "99:99"},
			ok:    true,
		},
		{name: "unknown month", input: "Wed 22 Foo 2023 16:45"},
		{name: "lowercase month", input: "Wed 22 nov 2023 16:45"},
		{name: "full month name", input: "Wed 22 November 2023 16:45"},
		{name: "two digit year", input: "Wed 22 Nov 23 16:45"},
		{name: "missing time", input: "Wed 22 Nov 2023"},
		{name: "iso date", input: "2023-11-22 16:45"},
		{name: "empty", input: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseDate(tt.input)
			if ok != tt.ok {
				t.Fatalf("ParseDate(%q) ok = %v, want %v", tt.input, ok, tt.ok)
			}
			if got != tt.want {
				t.Errorf("ParseDate(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestAcceptRejectsShortTitleRegardlessOfDate(t *testing.T) {
	date := &types.ParsedDate{DayOfWeek: "Wed", DayOfMonth: "22", Month: "Nov", Year: 2024, Time: "16:45"}

	for _, title := range []string{"", "Short", "123456789", "   Nine char   ", "\tabcdefghi\n"} {
		if Accept(types.RawPair{Title: title}, date, 2024) {
			t.Errorf("Accept(%q) with valid date = true, want false", title)
		}
		if Accept(types.RawPair{Title: title}, nil, 2024) {
			t.Errorf("Accept(%q) without date = true, want false", title)
		}
	}
}

func TestAcceptRejectsMissingDate(t *testing.T) {
	if Accept(types.RawPair{Title: "A Sufficiently Long Title"}, nil, 2024) {
		t.Error("expected rejection when the date failed to parse")
	}
}

func TestAcceptYearWindow(t *testing.T) {
	const current = 2024
	tests := []struct {
		year int
		want bool
	}{
		{current - 6, false},
		{current - 5, true},
		{current - 3, true},
		{current, true},
		{current + 1, false},
	}

	pair := types.RawPair{Title: "A Sufficiently Long Title"}
	for _, tt := range tests {
		date := &types.ParsedDate{DayOfWeek: "Mon", DayOfMonth: "1", Month: "Jan", Year: tt.year, Time: "10:00"}
		if got := Accept(pair, date, current); got != tt.want {
			t.Errorf("Accept(year=%d, current=%d) = %v, want %v", tt.year, current, got, tt.want)
		}
	}
}

func TestTitleLengthCountsCharacters(t *testing.T) {
	// Ten runes, more than ten bytes.
	if !TitleLongEnough("Résumé ünï") {
		t.Error("expected ten-rune title to pass")
	}
	if TitleLongEnough("Résumé ün") {
		t.Error("expected nine-rune title to fail")
	}
}

func TestFormatLine(t *testing.T) {
	pair := types.RawPair{Title: "  Example Headline Text \n", DateText: "ignored"}
	date := types.ParsedDate{DayOfWeek: "Wed", DayOfMonth: "22", Month: "Nov", Year: 2023, Time: "16:45"}

	got := FormatLine(pair, date).String()
	want := "Wed-22-Nov-2023 @16:45: Example Headline Text"
	if got != want {
		t.Errorf("FormatLine() = %q, want %q", got, want)
	}
}

func TestEvaluateOrder(t *testing.T) {
	stats := Stats{}
	old := &types.ParsedDate{Year: 2001}
	for _, c := range []struct {
		pair types.RawPair
		date *types.ParsedDate
	}{
		{types.RawPair{Title: "Short"}, old},
		{types.RawPair{Title: "A Sufficiently Long Title"}, nil},
		{types.RawPair{Title: "A Sufficiently Long Title"}, old},
	} {
		stats.record(evaluate(c.pair, c.date, 2024))
	}

	want := Stats{ShortTitle: 1, MalformedDate: 1, OutOfWindow: 1}
	if stats != want {
		t.Errorf("stats = %+v, want %+v", stats, want)
	}
}
