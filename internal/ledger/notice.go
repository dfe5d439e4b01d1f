package ledger

import (
	"errors"
	"fmt"
)

// Notice is a user-facing message that must be acknowledged.
type Notice struct {
	Title string
	Body  string
}

// Notice returns the message to show for r, if any. Accepted submissions are silent.
func (r Result) Notice(currency string) (Notice, bool) {
	switch r.Outcome {
	case Adjusted:
		return Notice{
			Title: "Expense Adjusted",
			Body: fmt.Sprintf("Your total expenses exceeded your budget limit.\n"+
				"The last expense was adjusted to %s%s to stay within your budget.",
				currency, r.Amount.StringFixed(2)),
		}, true
	case LimitReached:
		return Notice{
			Title: "Budget Limit Reached",
			Body:  "Your expenses have reached the budget limit. No more expenses can be added.",
		}, true
	}
	return Notice{}, false
}

// ErrorNotice maps a Submit error to a notice.
func ErrorNotice(err error) Notice {
	if errors.Is(err, ErrInvalidNumber) {
		return Notice{Title: "Input Error", Body: "Please enter a valid number."}
	}
	return Notice{Title: "Error", Body: err.Error()}
}
