package models

import (
	"encoding/json"
	"testing"
	"time"
)

func TestDateUnmarshalJSON(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Date
	}{
		{"bare date", `"2024-03-15"`, NewDate(2024, time.March, 15)},
		{"rfc3339 timestamp", `"2024-03-15T18:30:00.000Z"`, Date{Time: time.Date(2024, time.March, 15, 18, 30, 0, 0, time.UTC)}},
		{"null", `null`, Date{}},
		{"empty string", `""`, Date{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got Date
			if err := json.Unmarshal([]byte(tt.input), &got); err != nil {
				t.Fatalf("Unmarshal(%s): %v", tt.input, err)
			}
			if !got.Equal(tt.want.Time) {
				t.Errorf("Unmarshal(%s) = %v, want %v", tt.input, got.Time, tt.want.Time)
			}
		})
	}

	var d Date
	if err := json.Unmarshal([]byte(`"15/03/2024"`), &d); err == nil {
		t.Error("expected an error for a slash-formatted date")
	}
}

func TestDateMarshalJSON(t *testing.T) {
	b, err := json.Marshal(NewDate(2024, time.March, 5))
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(b) != `"2024-03-05"` {
		t.Errorf("Marshal = %s, want %q", b, `"2024-03-05"`)
	}

	b, err = json.Marshal(Date{})
	if err != nil {
		t.Fatalf("Marshal zero: %v", err)
	}
	if string(b) != "null" {
		t.Errorf("Marshal zero = %s, want null", b)
	}
}

func TestDateSameMonth(t *testing.T) {
	d := NewDate(2024, time.March, 31)
	if !d.SameMonth(2024, time.March) {
		t.Error("2024-03-31 should match March 2024")
	}
	if d.SameMonth(2024, time.April) {
		t.Error("2024-03-31 should not match April 2024")
	}
	if d.SameMonth(2023, time.March) {
		t.Error("2024-03-31 should not match March 2023")
	}
}

func TestDateOf(t *testing.T) {
	d := DateOf(time.Date(2024, time.July, 9, 23, 45, 1, 0, time.UTC))
	if d.String() != "2024-07-09" {
		t.Errorf("DateOf = %s, want 2024-07-09", d)
	}
}
