// Package chart derives plot data from a session: per-category spending
// series, the income and budget reference lines, and the remaining-budget series.
package chart

import (
	"fmt"

	"github.com/theirongolddev/budgettrack/internal/model"

	"github.com/shopspring/decimal"
)

// Point is one plotted value at a 1-based entry index.
type Point struct {
	X int
	Y float64
}

// Series is a named polyline.
type Series struct {
	Name    string
	Points  []Point
	Markers bool
	// Category is empty for series that are not per-category.
	Category model.Category
}

// LineStyle distinguishes the reference lines.
type LineStyle int

const (
	Solid LineStyle = iota
	Dashed
)

// HLine is a constant reference line across the full index range.
type HLine struct {
	Name  string
	Y     float64
	Style LineStyle
}

// Chart is everything needed to draw the expense graph.
type Chart struct {
	Title  string
	XLabel string
	YLabel string
	Grid   bool

	Categories []Series // one per category, first-appearance order
	Income     HLine
	Budget     HLine
	Remaining  Series

	// XMin and XMax bound the index axis; XMax is at least XMin.
	XMin, XMax int
}

// Options customizes labels.
type Options struct {
	Currency string
}

// Build derives a Chart from the session. An empty log yields empty series.
func Build(s model.Session, opts Options) Chart {
	n := len(s.Log)
	xMax := n
	if xMax < 1 {
		xMax = 1
	}

	yLabel := "Amount"
	if opts.Currency != "" {
		yLabel = fmt.Sprintf("Amount (%s)", opts.Currency)
	}

	limit := s.LimitOrZero()

	return Chart{
		Title:      "Historic Expense Tracking by Category",
		XLabel:     "Expense Entry",
		YLabel:     yLabel,
		Grid:       true,
		Categories: CategorySeries(s.Log),
		Income:     HLine{Name: "Income", Y: s.IncomeOrZero().InexactFloat64(), Style: Dashed},
		Budget:     HLine{Name: "Budget Limit", Y: limit.InexactFloat64(), Style: Solid},
		Remaining: Series{
			Name:    "Remaining Budget",
			Points:  toPoints(RemainingBudget(limit, s.Log)),
			Markers: true,
		},
		XMin: 1,
		XMax: xMax,
	}
}

// CategorySeries groups entries by category, keeping the order in which each
// category first appears. Points keep their position in the full log.
func CategorySeries(log []model.Expense) []Series {
	var out []Series
	idx := make(map[model.Category]int)

	for i, e := range log {
		j, ok := idx[e.Category]
		if !ok {
			j = len(out)
			idx[e.Category] = j
			out = append(out, Series{Name: string(e.Category), Category: e.Category, Markers: true})
		}
		out[j].Points = append(out[j].Points, Point{X: i + 1, Y: e.Amount.InexactFloat64()})
	}
	return out
}

// RemainingBudget returns limit minus the running total after each entry.
func RemainingBudget(limit decimal.Decimal, log []model.Expense) []decimal.Decimal {
	out := make([]decimal.Decimal, len(log))
	running := decimal.Zero
	for i, e := range log {
		running = running.Add(e.Amount)
		out[i] = limit.Sub(running)
	}
	return out
}

// Values returns the Y values of a series.
func (s Series) Values() []float64 {
	out := make([]float64, len(s.Points))
	for i, p := range s.Points {
		out[i] = p.Y
	}
	return out
}

// Bounds returns the smallest and largest Y across every series and line.
func (c Chart) Bounds() (lo, hi float64) {
	lo, hi = c.Income.Y, c.Income.Y
	grow := func(v float64) {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	grow(c.Budget.Y)
	for _, s := range c.Categories {
		for _, p := range s.Points {
			grow(p.Y)
		}
	}
	for _, p := range c.Remaining.Points {
		grow(p.Y)
	}
	return lo, hi
}

func toPoints(vals []decimal.Decimal) []Point {
	out := make([]Point, len(vals))
	for i, v := range vals {
		out[i] = Point{X: i + 1, Y: v.InexactFloat64()}
	}
	return out
}
