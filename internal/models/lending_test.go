package models

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestDeriveLendingStatus(t *testing.T) {
	tests := []struct {
		name     string
		amount   string
		returned string
		want     LendingStatus
	}{
		{"nothing returned", "1000", "0", LendingPending},
		{"partially returned", "1000", "400", LendingPartiallyReturned},
		{"fully returned", "1000", "1000", LendingFullyReturned},
		{"over-returned", "1000", "1200", LendingFullyReturned},
		{"negative returned", "1000", "-5", LendingPending},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			amount := decimal.RequireFromString(tt.amount)
			returned := decimal.RequireFromString(tt.returned)
			if got := DeriveLendingStatus(amount, returned); got != tt.want {
				t.Errorf("DeriveLendingStatus(%s, %s) = %q, want %q", tt.amount, tt.returned, got, tt.want)
			}
		})
	}
}

func TestCurrentStatusIgnoresStoredLabel(t *testing.T) {
	r := LendingRecord{
		Amount:         decimal.NewFromInt(1000),
		ReturnedAmount: decimal.NewFromInt(1000),
		Status:         LendingPending, // stale
	}
	if got := r.CurrentStatus(); got != LendingFullyReturned {
		t.Errorf("CurrentStatus = %q, want %q", got, LendingFullyReturned)
	}
}

func TestOutstanding(t *testing.T) {
	r := LendingRecord{
		Amount:         decimal.NewFromInt(1000),
		ReturnedAmount: decimal.NewFromInt(400),
	}
	if got := r.Outstanding(); !got.Equal(decimal.NewFromInt(600)) {
		t.Errorf("Outstanding = %s, want 600", got)
	}
}

func TestParseLendingStatus(t *testing.T) {
	tests := []struct {
		input   string
		want    LendingStatus
		wantErr bool
	}{
		{"pending", LendingPending, false},
		{"partially_returned", LendingPartiallyReturned, false},
		{"Partially Returned", LendingPartiallyReturned, false},
		{"done", "", true},
	}
	for _, tt := range tests {
		got, err := ParseLendingStatus(tt.input)
		if tt.wantErr != (err != nil) {
			t.Errorf("ParseLendingStatus(%q) err = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if err == nil && got != tt.want {
			t.Errorf("ParseLendingStatus(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
