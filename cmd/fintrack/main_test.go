package main

import (
	"testing"
	"time"

	"fintrack/internal/aggregate"
	"fintrack/internal/models"
)

func TestParseMonth(t *testing.T) {
	tests := []struct {
		input   string
		want    time.Month
		wantErr bool
	}{
		{"all", aggregate.MonthAll, false},
		{"", aggregate.MonthAll, false},
		{"3", time.March, false},
		{"march", time.March, false},
		{"Mar", time.March, false},
		{"sept", time.September, false},
		{"13", 0, true},
		{"0", 0, true},
		{"ma", 0, true}, // too short to disambiguate
		{"notamonth", 0, true},
	}
	for _, tt := range tests {
		got, err := parseMonth(tt.input)
		if tt.wantErr != (err != nil) {
			t.Errorf("parseMonth(%q) err = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if err == nil && got != tt.want {
			t.Errorf("parseMonth(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestParseCategory(t *testing.T) {
	if got, err := parseCategory("all"); err != nil || got != aggregate.CategoryAll {
		t.Errorf("parseCategory(all) = %v, %v; want the sentinel", got, err)
	}
	if got, err := parseCategory("fod"); err != nil || got != models.CategoryFood {
		t.Errorf("parseCategory(fod) = %v, %v; want food", got, err)
	}
	if _, err := parseCategory("xyzzy"); err == nil {
		t.Error("parseCategory(xyzzy) should fail")
	}
}

func TestParseAmount(t *testing.T) {
	if _, err := parseAmount("12.50"); err != nil {
		t.Errorf("parseAmount(12.50): %v", err)
	}
	if _, err := parseAmount("0"); err == nil {
		t.Error("zero amounts should be rejected")
	}
	if _, err := parseAmount("-5"); err == nil {
		t.Error("negative amounts should be rejected")
	}
	if _, err := parseAmount("abc"); err == nil {
		t.Error("non-numeric amounts should be rejected")
	}
}

func TestParseDate(t *testing.T) {
	a := &app{now: time.Date(2024, time.March, 20, 15, 30, 0, 0, time.UTC)}

	got, err := a.parseDate("")
	if err != nil {
		t.Fatalf("parseDate(empty): %v", err)
	}
	if got.String() != "2024-03-20" {
		t.Errorf("empty date = %s, want today", got)
	}

	got, err = a.parseDate("2024-01-05")
	if err != nil {
		t.Fatalf("parseDate: %v", err)
	}
	if got.String() != "2024-01-05" {
		t.Errorf("parseDate = %s, want 2024-01-05", got)
	}

	if _, err := a.parseDate("05/01/2024"); err == nil {
		t.Error("slash-formatted dates should be rejected")
	}
}
