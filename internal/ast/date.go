package ast

import (
	"fmt"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

var dateLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Num", Pattern: `[0-9]+`},
	{Name: "Punct", Pattern: `[:\-+TZ]`},
	{Name: "Whitespace", Pattern: `\s+`},
})

// naiveDateTimeAST is the raw grammar for the "DD:MM:YYYY HH:MM"
// timestamp used by header date clauses and by xref/qualifier dates,
// grounded on fastobo's NaiveDateTime production.
type naiveDateTimeAST struct {
	Day    string `parser:"@Num \":\""`
	Month  string `parser:"@Num \":\""`
	Year   string `parser:"@Num"`
	Hour   string `parser:"@Num \":\""`
	Minute string `parser:"@Num"`
}

var naiveDateTimeParser = participle.MustBuild[naiveDateTimeAST](participle.Lexer(dateLexer), participle.Elide("Whitespace"))

// NaiveDateTime is the header date clause's timestamp: day, month and
// 4-digit year, then hour and minute, with no timezone.
type NaiveDateTime struct {
	Day, Month, Year, Hour, Minute int
}

func ParseNaiveDateTime(raw string) (NaiveDateTime, error) {
	tree, err := naiveDateTimeParser.ParseString("", raw)
	if err != nil {
		return NaiveDateTime{}, fmt.Errorf("ast: invalid naive date-time %q: %w", raw, err)
	}
	d := NaiveDateTime{
		Day:    atoi(tree.Day),
		Month:  atoi(tree.Month),
		Year:   atoi(tree.Year),
		Hour:   atoi(tree.Hour),
		Minute: atoi(tree.Minute),
	}
	if d.Month < 1 || d.Month > 12 || d.Day < 1 || d.Day > 31 || d.Hour > 23 || d.Minute > 59 {
		return NaiveDateTime{}, fmt.Errorf("ast: naive date-time %q out of range", raw)
	}
	return d, nil
}

func (d NaiveDateTime) String() string {
	return fmt.Sprintf("%02d:%02d:%04d %02d:%02d", d.Day, d.Month, d.Year, d.Hour, d.Minute)
}

// isoDateTimeAST is the raw grammar for an ISO-8601 date, optionally
// followed by a 'T'-separated time and timezone, used by
// creation_date clauses.
type isoDateTimeAST struct {
	Year  string `parser:"@Num \"-\""`
	Month string `parser:"@Num \"-\""`
	Day   string `parser:"@Num"`
	Time  *struct {
		Hour   string `parser:"\"T\" @Num \":\""`
		Minute string `parser:"@Num \":\""`
		Second string `parser:"@Num"`
		Tz     *tzAST `parser:"@@?"`
	} `parser:"@@?"`
}

// tzAST dispatches on literal 'Z' vs a signed HH:MM offset, following
// the teacher's nil-pointer-field alternation idiom.
type tzAST struct {
	Utc    bool `parser:"  @\"Z\""`
	Offset *struct {
		Sign string `parser:"@(\"+\"|\"-\")"`
		Hour string `parser:"@Num \":\""`
		Min  string `parser:"@Num"`
	} `parser:"| @@"`
}

var isoDateTimeParser = participle.MustBuild[isoDateTimeAST](participle.Lexer(dateLexer))

// IsoTimezone is the optional offset trailing an ISO-8601 time: either
// literal Z for UTC, or a signed HH:MM offset.
type IsoTimezone struct {
	UTC           bool
	Negative      bool
	Hour, Minute  int
}

func (tz IsoTimezone) String() string {
	if tz.UTC {
		return "Z"
	}
	sign := "+"
	if tz.Negative {
		sign = "-"
	}
	return fmt.Sprintf("%s%02d:%02d", sign, tz.Hour, tz.Minute)
}

// IsoDate is a bare ISO-8601 calendar date: YYYY-MM-DD.
type IsoDate struct {
	Year, Month, Day int
}

func (d IsoDate) String() string { return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day) }

// IsoDateTime is an ISO-8601 date, optionally with a time-of-day and
// timezone; this is the value stored by a creation_date clause, which
// the OBO guide allows to be either form.
type IsoDateTime struct {
	Date            IsoDate
	HasTime         bool
	Hour, Min, Sec  int
	HasTimezone     bool
	Timezone        IsoTimezone
}

// CreationDate is the union a creation_date clause accepts: a full
// IsoDateTime, or (legacy) a NaiveDateTime.
type CreationDate struct {
	IsNaive bool
	Naive   NaiveDateTime
	ISO     IsoDateTime
}

func (c CreationDate) String() string {
	if c.IsNaive {
		return c.Naive.String()
	}
	return c.ISO.String()
}

func (d IsoDateTime) String() string {
	s := d.Date.String()
	if !d.HasTime {
		return s
	}
	s += fmt.Sprintf("T%02d:%02d:%02d", d.Hour, d.Min, d.Sec)
	if d.HasTimezone {
		s += d.Timezone.String()
	}
	return s
}

func ParseIsoDateTime(raw string) (IsoDateTime, error) {
	tree, err := isoDateTimeParser.ParseString("", raw)
	if err != nil {
		return IsoDateTime{}, fmt.Errorf("ast: invalid ISO date-time %q: %w", raw, err)
	}
	out := IsoDateTime{Date: IsoDate{Year: atoi(tree.Year), Month: atoi(tree.Month), Day: atoi(tree.Day)}}
	if tree.Time != nil {
		out.HasTime = true
		out.Hour = atoi(tree.Time.Hour)
		out.Min = atoi(tree.Time.Minute)
		out.Sec = atoi(tree.Time.Second)
		if tree.Time.Tz != nil {
			out.HasTimezone = true
			if tree.Time.Tz.Utc {
				out.Timezone = IsoTimezone{UTC: true}
			} else if tree.Time.Tz.Offset != nil {
				out.Timezone = IsoTimezone{
					Negative: tree.Time.Tz.Offset.Sign == "-",
					Hour:     atoi(tree.Time.Tz.Offset.Hour),
					Minute:   atoi(tree.Time.Tz.Offset.Min),
				}
			}
		}
	}
	return out, nil
}

// ParseCreationDate tries IsoDateTime first (the OBO 1.4 default) and
// falls back to the legacy NaiveDateTime shape used by older OBO files.
func ParseCreationDate(raw string) (CreationDate, error) {
	if iso, err := ParseIsoDateTime(raw); err == nil {
		return CreationDate{ISO: iso}, nil
	}
	naive, err := ParseNaiveDateTime(raw)
	if err != nil {
		return CreationDate{}, fmt.Errorf("ast: invalid creation date %q", raw)
	}
	return CreationDate{IsNaive: true, Naive: naive}, nil
}

func atoi(s string) int {
	n := 0
	for _, r := range s {
		n = n*10 + int(r-'0')
	}
	return n
}
