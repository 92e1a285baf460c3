package fractions

import "strconv"

// Kind is the category of a failure to evaluate an expression. Kind is itself
// an error, so errors.Is can test any error from this package against the
// Kind constants.
type Kind int8

const (
	kindNone Kind = iota
	// InvalidFormat is malformed mixed-number syntax: too many _ or /
	// segments, or a signed fractional part following a whole part.
	InvalidFormat
	// InvalidNumeric is non-integer text where an integer was required.
	InvalidNumeric
	// InvalidArgument is a zero denominator.
	InvalidArgument
	// DivisionByZero is division by a zero-valued operand.
	DivisionByZero
	// OperatorOperandMismatch is a token sequence that does not alternate
	// operands and operators, or that ends with an operator.
	OperatorOperandMismatch
	// EmptyExpression is an expression with no operands.
	EmptyExpression
)

func (k Kind) Error() string {
	switch k {
	case InvalidFormat:
		return "invalid fractional format passed"
	case InvalidNumeric:
		return "non-integer values passed"
	case InvalidArgument:
		return "denominator cannot be zero"
	case DivisionByZero:
		// The message names the dividend even though the guard is on the
		// divisor. Scripts match on it.
		return "dividend must not be zero"
	case OperatorOperandMismatch:
		return "operator/operand mismatch"
	case EmptyExpression:
		return "must provide at least one value to evaluate"
	default:
		return "fractions: unknown error kind " + strconv.Itoa(int(k))
	}
}

// NumberError is an error parsing the text of one operand.
type NumberError struct {
	// Text is the operand text that failed to parse.
	Text string
	// Kind is the reason it failed.
	Kind Kind
}

func (err *NumberError) Error() string {
	return strconv.Quote(err.Text) + ": " + err.Kind.Error()
}

func (err *NumberError) Unwrap() error {
	return err.Kind
}

// TokenError is an error at a particular token of an expression. It
// implements InputError.
type TokenError struct {
	// Pos is the 1-based index of the token.
	Pos int
	// Token is the token text.
	Token string
	// Err is the underlying error, either a Kind or a *NumberError.
	Err error
}

func (err *TokenError) Error() string {
	if _, ok := err.Err.(*NumberError); ok {
		// The number error already quotes the token.
		return errpos(err.Pos, err.Err.Error())
	}
	return errpos(err.Pos, strconv.Quote(err.Token)+": "+err.Err.Error())
}

func (err *TokenError) Unwrap() error {
	return err.Err
}

func (err *TokenError) Position() int {
	return err.Pos
}

// errpos is a shortcut to create an error message with a token position.
func errpos(pos int, msg string) string {
	return "token " + strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error from Tokenize
// implements InputError.
type InputError interface {
	error
	// Position returns the 1-based index of the token that caused the error.
	Position() int
}

var (
	_ error      = Kind(0)
	_ error      = (*NumberError)(nil)
	_ InputError = (*TokenError)(nil)
)
