package models

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Date
		wantErr bool
	}{
		{
			name:  "valid date",
			input: "2024-03-01",
			want:  NewDate(2024, time.March, 1),
		},
		{
			name:  "leap day",
			input: "2024-02-29",
			want:  NewDate(2024, time.February, 29),
		},
		{
			name:    "empty string",
			input:   "",
			wantErr: true,
		},
		{
			name:    "timestamp is not a plain date",
			input:   "2024-03-01T10:00:00Z",
			wantErr: true,
		},
		{
			name:    "wrong separator",
			input:   "2024/03/01",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDate(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseDate(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
				return
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseDate(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestDateCompare(t *testing.T) {
	tests := []struct {
		name string
		a, b Date
		want int
	}{
		{"equal", NewDate(2024, time.March, 1), NewDate(2024, time.March, 1), 0},
		{"earlier day", NewDate(2024, time.March, 1), NewDate(2024, time.March, 2), -1},
		{"earlier month", NewDate(2024, time.February, 28), NewDate(2024, time.March, 1), -1},
		{"earlier year", NewDate(2023, time.December, 31), NewDate(2024, time.January, 1), -1},
		{"later day", NewDate(2024, time.March, 5), NewDate(2024, time.March, 4), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Compare(tt.b); got != tt.want {
				t.Errorf("Compare() = %d, want %d", got, tt.want)
			}
			if got := tt.a.Before(tt.b); got != (tt.want < 0) {
				t.Errorf("Before() = %v, want %v", got, tt.want < 0)
			}
			if got := tt.a.After(tt.b); got != (tt.want > 0) {
				t.Errorf("After() = %v, want %v", got, tt.want > 0)
			}
		})
	}
}

func TestDateAddDays(t *testing.T) {
	tests := []struct {
		name string
		d    Date
		n    int
		want Date
	}{
		{"next day", NewDate(2024, time.March, 1), 1, NewDate(2024, time.March, 2)},
		{"previous day", NewDate(2024, time.March, 1), -1, NewDate(2024, time.February, 29)},
		{"month rollover", NewDate(2024, time.January, 31), 1, NewDate(2024, time.February, 1)},
		{"year rollover", NewDate(2023, time.December, 31), 1, NewDate(2024, time.January, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.d.AddDays(tt.n); got != tt.want {
				t.Errorf("AddDays(%d) = %v, want %v", tt.n, got, tt.want)
			}
		})
	}
}

func TestDateJSONRoundTrip(t *testing.T) {
	d := NewDate(2024, time.March, 1)
	data, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if string(data) != `"2024-03-01"` {
		t.Errorf("Marshal() = %s, want %q", data, "2024-03-01")
	}

	var got Date
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if got != d {
		t.Errorf("round trip = %v, want %v", got, d)
	}
}

func TestDateUnmarshalLegacyTimestamp(t *testing.T) {
	// Records persisted by older versions stored full timestamps. The date
	// must come from the timestamp's own wall clock, not a zone conversion.
	tests := []struct {
		name  string
		input string
		want  Date
	}{
		{"utc timestamp", `"2024-03-01T00:00:00Z"`, NewDate(2024, time.March, 1)},
		{"late evening with offset", `"2024-03-01T23:30:00-08:00"`, NewDate(2024, time.March, 1)},
		{"early morning with offset", `"2024-03-01T00:30:00+11:00"`, NewDate(2024, time.March, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got Date
			if err := json.Unmarshal([]byte(tt.input), &got); err != nil {
				t.Fatalf("Unmarshal(%s) error = %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("Unmarshal(%s) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestDateUnmarshalInvalid(t *testing.T) {
	var got Date
	if err := json.Unmarshal([]byte(`"not-a-date"`), &got); err == nil {
		t.Error("Unmarshal() expected error for invalid date")
	}
}
