package chart

import (
	"testing"

	"github.com/theirongolddev/budgettrack/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func expense(amount int64, c model.Category) model.Expense {
	return model.Expense{Amount: decimal.NewFromInt(amount), Category: c}
}

func session(income, limit int64, log ...model.Expense) model.Session {
	in := decimal.NewFromInt(income)
	l := decimal.NewFromInt(limit)
	return model.Session{Income: &in, BudgetLimit: &l, Log: log}
}

func TestRemainingBudget_ScenarioB(t *testing.T) {
	s := session(5000, 1000, expense(400, model.Food), expense(600, model.Transport))

	got := RemainingBudget(*s.BudgetLimit, s.Log)
	require.Len(t, got, 2)
	assert.True(t, got[0].Equal(decimal.NewFromInt(600)), "got %s", got[0])
	assert.True(t, got[1].IsZero(), "got %s", got[1])
}

func TestCategorySeries_FirstAppearanceOrder(t *testing.T) {
	log := []model.Expense{
		expense(10, model.Transport),
		expense(20, model.Food),
		expense(30, model.Transport),
		expense(40, model.Utilities),
		expense(50, model.Food),
	}

	series := CategorySeries(log)
	require.Len(t, series, 3)

	assert.Equal(t, "Transport", series[0].Name)
	assert.Equal(t, []Point{{1, 10}, {3, 30}}, series[0].Points)
	assert.Equal(t, "Food", series[1].Name)
	assert.Equal(t, []Point{{2, 20}, {5, 50}}, series[1].Points)
	assert.Equal(t, model.Utilities, series[2].Category)
	assert.Equal(t, []Point{{4, 40}}, series[2].Points)
	for _, s := range series {
		assert.True(t, s.Markers)
	}
}

func TestBuild(t *testing.T) {
	s := session(5000, 1000, expense(400, model.Food), expense(600, model.Transport))
	c := Build(s, Options{Currency: "Rs"})

	assert.Equal(t, "Historic Expense Tracking by Category", c.Title)
	assert.Equal(t, "Expense Entry", c.XLabel)
	assert.Equal(t, "Amount (Rs)", c.YLabel)
	assert.True(t, c.Grid)
	assert.Equal(t, 1, c.XMin)
	assert.Equal(t, 2, c.XMax)

	assert.Equal(t, HLine{Name: "Income", Y: 5000, Style: Dashed}, c.Income)
	assert.Equal(t, HLine{Name: "Budget Limit", Y: 1000, Style: Solid}, c.Budget)
	assert.Equal(t, "Remaining Budget", c.Remaining.Name)
	assert.Equal(t, []float64{600, 0}, c.Remaining.Values())
	assert.Len(t, c.Categories, 2)

	lo, hi := c.Bounds()
	assert.Equal(t, 0.0, lo)
	assert.Equal(t, 5000.0, hi)
}

func TestBuild_EmptyLog(t *testing.T) {
	c := Build(session(5000, 1000), Options{})

	assert.Empty(t, c.Categories)
	assert.Empty(t, c.Remaining.Points)
	assert.Equal(t, "Amount", c.YLabel)
	assert.Equal(t, 1, c.XMax, "index range never collapses")
	assert.Equal(t, 5000.0, c.Income.Y)
	assert.Equal(t, 1000.0, c.Budget.Y)
}

func TestBuild_UnsetSession(t *testing.T) {
	c := Build(model.Session{}, Options{})
	lo, hi := c.Bounds()
	assert.Equal(t, 0.0, lo)
	assert.Equal(t, 0.0, hi)
}
