package model

// BudgetStats holds the budget figures shown next to the form.
type BudgetStats struct {
	Income            float64
	BudgetLimit       float64
	CurrentSpend      float64
	Remaining         float64
	Entries           int
	BudgetUsedPercent float64 // 0-1, zero when no limit is set
}

// Stats computes BudgetStats for the session.
func (s Session) Stats() BudgetStats {
	limit := s.LimitOrZero().InexactFloat64()
	spent := s.Spent().InexactFloat64()

	st := BudgetStats{
		Income:       s.IncomeOrZero().InexactFloat64(),
		BudgetLimit:  limit,
		CurrentSpend: spent,
		Remaining:    s.Remaining().InexactFloat64(),
		Entries:      len(s.Log),
	}
	if limit > 0 {
		st.BudgetUsedPercent = spent / limit
	}
	return st
}
