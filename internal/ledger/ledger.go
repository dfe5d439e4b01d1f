// Package ledger applies expense submissions to a session, enforcing the budget limit.
package ledger

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/theirongolddev/budgettrack/internal/model"

	"github.com/shopspring/decimal"
)

// ErrInvalidNumber is returned when a numeric field cannot be parsed.
var ErrInvalidNumber = errors.New("invalid number")

// Field names a numeric form field.
type Field string

// Numeric form fields, in the order Submit reads them.
const (
	FieldAmount      Field = "expense amount"
	FieldIncome      Field = "income"
	FieldBudgetLimit Field = "budget limit"
)

// InputError reports which field failed to parse.
type InputError struct {
	Field Field
	Text  string
	Err   error
}

func (e *InputError) Error() string {
	return fmt.Sprintf("parsing %s %q: %v", e.Field, e.Text, e.Err)
}

func (e *InputError) Unwrap() error { return e.Err }

// Outcome classifies what a successful submission did to the log.
type Outcome int

const (
	// Accepted means the amount was logged unchanged.
	Accepted Outcome = iota
	// Adjusted means the amount was truncated to the remaining budget.
	Adjusted
	// LimitReached means nothing was logged.
	LimitReached
)

func (o Outcome) String() string {
	switch o {
	case Accepted:
		return "accepted"
	case Adjusted:
		return "adjusted"
	case LimitReached:
		return "limit reached"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// Input is the raw form state at submission time.
type Input struct {
	Income      string
	BudgetLimit string
	Amount      string
	Category    model.Category
}

// Result describes a successful submission.
type Result struct {
	Outcome   Outcome
	Requested decimal.Decimal // amount as typed
	Amount    decimal.Decimal // amount appended; zero for LimitReached
	Category  model.Category
	// ClearAmount is set on every non-error path, LimitReached included.
	ClearAmount bool
}

// maxExponent bounds the decimal exponent of parsed input. Arithmetic
// rescales operands to a common exponent, so an input like 1e99999999
// would allocate a coefficient with that many digits.
const maxExponent = 300

// ParseAmount parses a free-text number. Surrounding whitespace is ignored.
// Values outside the float64 range are rejected as invalid.
func ParseAmount(field Field, text string) (decimal.Decimal, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return decimal.Zero, &InputError{Field: field, Text: text, Err: ErrInvalidNumber}
	}
	d, err := decimal.NewFromString(trimmed)
	if err != nil {
		return decimal.Zero, &InputError{Field: field, Text: text, Err: fmt.Errorf("%w: %v", ErrInvalidNumber, err)}
	}
	if exp := d.Exponent(); exp > maxExponent || exp < -maxExponent {
		return decimal.Zero, &InputError{Field: field, Text: text, Err: fmt.Errorf("%w: exponent %d out of range", ErrInvalidNumber, exp)}
	}
	if f := d.InexactFloat64(); math.IsInf(f, 0) {
		return decimal.Zero, &InputError{Field: field, Text: text, Err: fmt.Errorf("%w: out of range", ErrInvalidNumber)}
	}
	return d, nil
}

// Submit parses in and applies it to s. On error s is left untouched.
//
// Income and budget limit are read only while unset, and only a non-zero
// value sets them, so the first non-zero submission sticks.
func Submit(s *model.Session, in Input) (Result, error) {
	amount, err := ParseAmount(FieldAmount, in.Amount)
	if err != nil {
		return Result{}, err
	}

	income := s.Income
	if income == nil {
		v, err := ParseAmount(FieldIncome, in.Income)
		if err != nil {
			return Result{}, err
		}
		if !v.IsZero() {
			income = &v
		}
	}

	limit := s.BudgetLimit
	if limit == nil {
		v, err := ParseAmount(FieldBudgetLimit, in.BudgetLimit)
		if err != nil {
			return Result{}, err
		}
		if !v.IsZero() {
			limit = &v
		}
	}

	s.Income = income
	s.BudgetLimit = limit

	res := Result{
		Requested:   amount,
		Category:    in.Category,
		ClearAmount: true,
	}

	ceiling := s.LimitOrZero()
	spent := s.Spent()

	if spent.Add(amount).LessThanOrEqual(ceiling) {
		res.Outcome = Accepted
		res.Amount = amount
	} else {
		adjusted := ceiling.Sub(spent)
		if !adjusted.IsPositive() {
			res.Outcome = LimitReached
			return res, nil
		}
		res.Outcome = Adjusted
		res.Amount = adjusted
	}

	s.Log = append(s.Log, model.Expense{Amount: res.Amount, Category: in.Category})
	return res, nil
}
