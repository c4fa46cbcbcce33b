package extract

import (
	"testing"
	"time"
)

func TestExtractDate(t *testing.T) {
	tests := []struct {
		name string
		text string
		want time.Time
	}{
		{
			name: "slash separated month day year",
			text: "STORE #1\n01/15/2024\nTOTAL 9.97",
			want: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "dash separated short year",
			text: "receipt 3-7-24 thanks",
			want: time.Date(2024, 3, 7, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "iso style",
			text: "date of purchase 2024-01-15",
			want: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "day month name year",
			text: "purchased on 15 Jan 2024 at register 4",
			want: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "full month name",
			text: "purchased on 15 january 2024",
			want: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractDate(tt.text)
			if !got.Equal(tt.want) {
				t.Errorf("ExtractDate() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestExtractDateFallsBackToNow(t *testing.T) {
	before := time.Now()
	got := ExtractDate("no date anywhere in this text")
	after := time.Now()

	if got.Before(before) || got.After(after) {
		t.Errorf("ExtractDate() fallback = %v, want value between %v and %v", got, before, after)
	}
}

func TestParseHeaderDate(t *testing.T) {
	want := time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)
	got := ParseHeaderDate("Mon, 15 Jan 2024 10:30:00 +0000")

	if !got.Equal(want) {
		t.Errorf("ParseHeaderDate() = %v, want %v", got, want)
	}
}

func TestParseHeaderDateMalformed(t *testing.T) {
	for _, header := range []string{"", "not a date"} {
		before := time.Now()
		got := ParseHeaderDate(header)
		after := time.Now()

		if got.Before(before) || got.After(after) {
			t.Errorf("ParseHeaderDate(%q) = %v, want current time", header, got)
		}
	}
}
