// Package model defines domain types for budgettrack sessions and expenses.
package model

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Category is one of the fixed expense categories.
type Category string

// The closed set of expense categories, in display order.
const (
	Food          Category = "Food"
	Transport     Category = "Transport"
	Entertainment Category = "Entertainment"
	Utilities     Category = "Utilities"
	Others        Category = "Others"
)

var categories = []Category{Food, Transport, Entertainment, Utilities, Others}

// Categories returns every category in display order.
func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

// ParseCategory matches name case-insensitively against the known categories.
func ParseCategory(name string) (Category, bool) {
	name = strings.TrimSpace(name)
	for _, c := range categories {
		if strings.EqualFold(string(c), name) {
			return c, true
		}
	}
	return "", false
}

// Expense is one logged entry.
type Expense struct {
	Amount   decimal.Decimal
	Category Category
}
