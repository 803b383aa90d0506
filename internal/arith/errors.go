package arith

import "errors"

var (
	// ErrInvalidArgument is the kind shared by every error caused by a bad caller input.
	ErrInvalidArgument = errors.New("arith: invalid argument")
	// ErrArithmetic is the kind shared by every error caused by an undefined result.
	ErrArithmetic = errors.New("arith: arithmetic error")
)

var (
	// ErrNegativeScale is returned when a scale below zero is requested.
	ErrNegativeScale error = &kindError{kind: ErrInvalidArgument, msg: "the scale must be a positive integer or zero"}
	// ErrNonFinite is returned when a NaN or infinite float enters the decimal domain.
	ErrNonFinite error = &kindError{kind: ErrInvalidArgument, msg: "value is not a finite number"}
	// ErrUnknownRoundingMode is returned for a RoundingMode outside the declared set.
	ErrUnknownRoundingMode error = &kindError{kind: ErrInvalidArgument, msg: "unknown rounding mode"}
	// ErrDivisionByZero is returned when the divisor is exactly zero.
	ErrDivisionByZero error = &kindError{kind: ErrArithmetic, msg: "division by zero"}
	// ErrNonTerminating is returned by exact division when the quotient has no finite decimal expansion.
	ErrNonTerminating error = &kindError{kind: ErrArithmetic, msg: "non-terminating decimal expansion; no exact representable decimal result"}
)

// kindError is a concrete failure that also matches its kind through errors.Is.
type kindError struct {
	kind error
	msg  string
}

// Error implements the error interface.
func (e *kindError) Error() string {
	return e.msg
}

// Unwrap exposes the kind so errors.Is(err, ErrArithmetic) holds for division failures.
func (e *kindError) Unwrap() error {
	return e.kind
}

func checkScale(scale int) error {
	if scale < 0 {
		return ErrNegativeScale
	}
	return nil
}
