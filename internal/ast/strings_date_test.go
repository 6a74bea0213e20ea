package ast

import "testing"

func TestQuotedStringRoundTrip(t *testing.T) {
	q, err := ParseQuotedString(`"a \"quoted\" value with a \\backslash"`)
	if err != nil {
		t.Fatalf("ParseQuotedString: %v", err)
	}
	want := `a "quoted" value with a \backslash`
	if q.Value != want {
		t.Errorf("Value = %q, want %q", q.Value, want)
	}
	if got := q.String(); got != `"a \"quoted\" value with a \\backslash"` {
		t.Errorf("String() = %q", got)
	}
}

func TestQuotedStringMissingDelimiters(t *testing.T) {
	if _, err := ParseQuotedString("no quotes"); err == nil {
		t.Error("expected an error for a string missing delimiters")
	}
}

func TestUnquotedStringRoundTrip(t *testing.T) {
	u, err := ParseUnquotedString(`cell death, apoptotic`)
	if err != nil {
		t.Fatalf("ParseUnquotedString: %v", err)
	}
	if got := u.String(); got != `cell death, apoptotic` {
		t.Errorf("String() = %q", got)
	}
}

func TestParseNaiveDateTime(t *testing.T) {
	d, err := ParseNaiveDateTime("01:02:2023 14:30")
	if err != nil {
		t.Fatalf("ParseNaiveDateTime: %v", err)
	}
	if d.Day != 1 || d.Month != 2 || d.Year != 2023 || d.Hour != 14 || d.Minute != 30 {
		t.Errorf("got %+v", d)
	}
	if got := d.String(); got != "01:02:2023 14:30" {
		t.Errorf("String() = %q", got)
	}
}

func TestParseNaiveDateTimeOutOfRange(t *testing.T) {
	if _, err := ParseNaiveDateTime("32:02:2023 14:30"); err == nil {
		t.Error("expected error for day 32")
	}
}

func TestParseIsoDateTimeDateOnly(t *testing.T) {
	d, err := ParseIsoDateTime("2023-02-01")
	if err != nil {
		t.Fatalf("ParseIsoDateTime: %v", err)
	}
	if d.HasTime {
		t.Error("date-only input should not set HasTime")
	}
	if got := d.String(); got != "2023-02-01" {
		t.Errorf("String() = %q", got)
	}
}

func TestParseIsoDateTimeWithUTC(t *testing.T) {
	d, err := ParseIsoDateTime("2023-02-01T14:30:00Z")
	if err != nil {
		t.Fatalf("ParseIsoDateTime: %v", err)
	}
	if !d.HasTime || !d.HasTimezone || !d.Timezone.UTC {
		t.Fatalf("got %+v", d)
	}
	if got := d.String(); got != "2023-02-01T14:30:00Z" {
		t.Errorf("String() = %q", got)
	}
}

func TestParseIsoDateTimeWithOffset(t *testing.T) {
	d, err := ParseIsoDateTime("2023-02-01T14:30:00-05:00")
	if err != nil {
		t.Fatalf("ParseIsoDateTime: %v", err)
	}
	if !d.Timezone.Negative || d.Timezone.Hour != 5 || d.Timezone.Minute != 0 {
		t.Fatalf("got %+v", d.Timezone)
	}
	if got := d.String(); got != "2023-02-01T14:30:00-05:00" {
		t.Errorf("String() = %q", got)
	}
}

func TestParseCreationDateFallsBackToNaive(t *testing.T) {
	cd, err := ParseCreationDate("01:02:2023 14:30")
	if err != nil {
		t.Fatalf("ParseCreationDate: %v", err)
	}
	if !cd.IsNaive {
		t.Error("expected a naive date-time fallback")
	}
	if got := cd.String(); got != "01:02:2023 14:30" {
		t.Errorf("String() = %q", got)
	}
}

func TestParseCreationDatePrefersISO(t *testing.T) {
	cd, err := ParseCreationDate("2023-02-01T14:30:00Z")
	if err != nil {
		t.Fatalf("ParseCreationDate: %v", err)
	}
	if cd.IsNaive {
		t.Error("expected the ISO branch, not the naive fallback")
	}
}
