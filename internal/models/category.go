package models

import (
	"fmt"
	"strings"

	"github.com/agnivade/levenshtein"
)

// Category is the closed expense category enumeration shared by the
// aggregator, the API client and the views.
type Category string

const (
	CategoryFood             Category = "food"
	CategoryTransport        Category = "transport"
	CategoryUtilities        Category = "utilities"
	CategoryEntertainment    Category = "entertainment"
	CategoryLivingEssentials Category = "livingessentials"
	CategoryOther            Category = "other"
)

// Categories returns the six fixed categories in display order.
func Categories() []Category {
	return []Category{
		CategoryFood,
		CategoryTransport,
		CategoryUtilities,
		CategoryEntertainment,
		CategoryLivingEssentials,
		CategoryOther,
	}
}

// Valid reports whether c is one of the six fixed categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryFood, CategoryTransport, CategoryUtilities,
		CategoryEntertainment, CategoryLivingEssentials, CategoryOther:
		return true
	}
	return false
}

// Label returns the human-readable name.
func (c Category) Label() string {
	if c == CategoryLivingEssentials {
		return "Living Essentials"
	}
	return titleWords(string(c))
}

// ParseCategory resolves an exact category value.
func ParseCategory(s string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	if !c.Valid() {
		return "", fmt.Errorf("unknown category %q", s)
	}
	return c, nil
}

// MatchCategory resolves free-form user input onto the enumeration,
// tolerating typos and display-name spellings ("Living Essentials").
func MatchCategory(s string) (Category, bool) {
	if c, err := ParseCategory(s); err == nil {
		return c, true
	}
	best, dist := CategoryOther, matchThreshold+1
	for _, c := range Categories() {
		for _, cand := range []string{string(c), strings.ToLower(c.Label())} {
			if d := levenshtein.ComputeDistance(normalize(s), cand); d < dist {
				best, dist = c, d
			}
		}
	}
	return best, dist <= matchThreshold
}

// PaymentMethod describes who fronted the money for an expense.
type PaymentMethod string

const (
	MethodSelf       PaymentMethod = "self"
	MethodLent       PaymentMethod = "lent"
	MethodCreditCard PaymentMethod = "credit-card"
)

// PaymentMethods returns the closed payment-method set.
func PaymentMethods() []PaymentMethod {
	return []PaymentMethod{MethodSelf, MethodLent, MethodCreditCard}
}

func (m PaymentMethod) Valid() bool {
	switch m {
	case MethodSelf, MethodLent, MethodCreditCard:
		return true
	}
	return false
}

// Label returns the human-readable name ("credit-card" -> "Credit Card").
func (m PaymentMethod) Label() string {
	return titleWords(strings.ReplaceAll(string(m), "-", " "))
}

// Repayable reports whether repayment tracking is meaningful for the
// method. Expenses paid by oneself have nothing to repay.
func (m PaymentMethod) Repayable() bool {
	return m == MethodLent || m == MethodCreditCard
}

// ParsePaymentMethod resolves an exact payment-method value.
func ParsePaymentMethod(s string) (PaymentMethod, error) {
	m := PaymentMethod(strings.ToLower(strings.TrimSpace(s)))
	if m == "credit card" || m == "creditcard" {
		m = MethodCreditCard
	}
	if !m.Valid() {
		return "", fmt.Errorf("unknown payment method %q", s)
	}
	return m, nil
}

// MatchPaymentMethod resolves free-form user input onto the enumeration.
func MatchPaymentMethod(s string) (PaymentMethod, bool) {
	if m, err := ParsePaymentMethod(s); err == nil {
		return m, true
	}
	best, dist := MethodSelf, matchThreshold+1
	for _, m := range PaymentMethods() {
		if d := levenshtein.ComputeDistance(normalize(s), string(m)); d < dist {
			best, dist = m, d
		}
	}
	return best, dist <= matchThreshold
}

// matchThreshold is the largest edit distance still accepted as a match.
const matchThreshold = 2

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func titleWords(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
