package folio

import (
	"errors"
	"fmt"
	"strings"
)

// Kinds of errors returned by this package. Use errors.Is to test for them.
var (
	ErrValidation        = errors.New("invalid input")
	ErrDateFormat        = fmt.Errorf("%w: date must be D/M/YYYY", ErrValidation)
	ErrSellUnsupported   = fmt.Errorf("%w: sell transactions are not supported", ErrValidation)
	ErrPortfolioNotFound = errors.New("portfolio not found")
	ErrAssetNotFound     = errors.New("asset not found")
	ErrTickerNotFound    = errors.New("ticker not found")
	ErrProvider          = errors.New("quote provider failed")
	ErrPersistence       = errors.New("storage failed")
	ErrEmptyPortfolio    = errors.New("portfolio is empty")
)

// Error describes a failed operation: its kind, the entities involved and
// the underlying cause if any.
type Error struct {
	Kind      error  // Kind is one of the Err* values of this package.
	Portfolio string // Portfolio is the portfolio name involved, if any.
	Ticker    string // Ticker is the ticker symbol involved, if any.
	Err       error  // Err is the underlying cause, if any.
}

func newError(kind error, portfolio, ticker string, err error) *Error {
	return &Error{Kind: kind, Portfolio: portfolio, Ticker: ticker, Err: err}
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(e.Kind.Error())
	switch {
	case e.Portfolio != "" && e.Ticker != "":
		fmt.Fprintf(&b, " (%s/%s)", e.Portfolio, e.Ticker)
	case e.Portfolio != "":
		fmt.Fprintf(&b, " (%s)", e.Portfolio)
	case e.Ticker != "":
		fmt.Fprintf(&b, " (%s)", e.Ticker)
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

// Unwrap makes both the kind and the cause visible to errors.Is and errors.As.
func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}
