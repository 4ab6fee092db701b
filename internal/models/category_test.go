package models

import "testing"

func TestParseCategory(t *testing.T) {
	tests := []struct {
		input   string
		want    Category
		wantErr bool
	}{
		{"food", CategoryFood, false},
		{"  Transport ", CategoryTransport, false},
		{"livingessentials", CategoryLivingEssentials, false},
		{"groceries", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		got, err := ParseCategory(tt.input)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseCategory(%q): expected error, got %q", tt.input, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseCategory(%q): %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseCategory(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestMatchCategory(t *testing.T) {
	tests := []struct {
		input string
		want  Category
		ok    bool
	}{
		{"food", CategoryFood, true},
		{"fod", CategoryFood, true},
		{"transprot", CategoryTransport, true},
		{"living essentials", CategoryLivingEssentials, true},
		{"Entertainment", CategoryEntertainment, true},
		{"xyzzy", "", false},
	}
	for _, tt := range tests {
		got, ok := MatchCategory(tt.input)
		if ok != tt.ok {
			t.Errorf("MatchCategory(%q) ok = %v, want %v", tt.input, ok, tt.ok)
			continue
		}
		if ok && got != tt.want {
			t.Errorf("MatchCategory(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestCategoryLabel(t *testing.T) {
	if got := CategoryLivingEssentials.Label(); got != "Living Essentials" {
		t.Errorf("Label = %q, want %q", got, "Living Essentials")
	}
	if got := CategoryFood.Label(); got != "Food" {
		t.Errorf("Label = %q, want %q", got, "Food")
	}
}

func TestParsePaymentMethod(t *testing.T) {
	tests := []struct {
		input   string
		want    PaymentMethod
		wantErr bool
	}{
		{"self", MethodSelf, false},
		{"credit-card", MethodCreditCard, false},
		{"Credit Card", MethodCreditCard, false},
		{"creditcard", MethodCreditCard, false},
		{"cash", "", true},
	}
	for _, tt := range tests {
		got, err := ParsePaymentMethod(tt.input)
		if tt.wantErr != (err != nil) {
			t.Errorf("ParsePaymentMethod(%q) err = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if err == nil && got != tt.want {
			t.Errorf("ParsePaymentMethod(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestPaymentMethodRepayable(t *testing.T) {
	if MethodSelf.Repayable() {
		t.Error("self-paid expenses have nothing to repay")
	}
	if !MethodLent.Repayable() || !MethodCreditCard.Repayable() {
		t.Error("lent and credit-card expenses should be repayable")
	}
}
