package model

import "github.com/shopspring/decimal"

// Session is the state of one running instance: income, budget limit and the
// append-only expense log. Income and BudgetLimit are nil until set.
type Session struct {
	Income      *decimal.Decimal
	BudgetLimit *decimal.Decimal
	Log         []Expense
}

// HasIncome reports whether income has been set.
func (s Session) HasIncome() bool { return s.Income != nil }

// HasBudgetLimit reports whether the budget limit has been set.
func (s Session) HasBudgetLimit() bool { return s.BudgetLimit != nil }

// IncomeOrZero returns the income, or zero when unset.
func (s Session) IncomeOrZero() decimal.Decimal {
	if s.Income == nil {
		return decimal.Zero
	}
	return *s.Income
}

// LimitOrZero returns the budget limit, or zero when unset.
func (s Session) LimitOrZero() decimal.Decimal {
	if s.BudgetLimit == nil {
		return decimal.Zero
	}
	return *s.BudgetLimit
}

// Spent sums every logged amount.
func (s Session) Spent() decimal.Decimal {
	total := decimal.Zero
	for _, e := range s.Log {
		total = total.Add(e.Amount)
	}
	return total
}

// Remaining is the budget limit minus everything spent so far.
func (s Session) Remaining() decimal.Decimal {
	return s.LimitOrZero().Sub(s.Spent())
}
