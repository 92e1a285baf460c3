package fractions

import "strconv"

// Op is a binary arithmetic operator.
type Op int8

const (
	opNone Op = iota
	// OpAdd is addition, written +.
	OpAdd
	// OpSub is subtraction, written -.
	OpSub
	// OpMul is multiplication, written *.
	OpMul
	// OpQuo is division, written /.
	OpQuo
)

// Operators contains the tokens which are considered to be operators, in the
// order of the Op constants.
var Operators = [...]string{OpAdd: "+", OpSub: "-", OpMul: "*", OpQuo: "/"}

func (op Op) String() string {
	if op <= opNone || int(op) >= len(Operators) {
		return "Op(" + strconv.Itoa(int(op)) + ")"
	}
	return Operators[op]
}

// ParseOp returns the operator written as s. The result is false if s is not
// exactly one of the operator symbols.
func ParseOp(s string) (Op, bool) {
	for op, sym := range Operators {
		if op != int(opNone) && s == sym {
			return Op(op), true
		}
	}
	return opNone, false
}

// multiplicative reports whether op binds tighter than addition.
func (op Op) multiplicative() bool {
	return op == OpMul || op == OpQuo
}

// apply computes x op y.
func (op Op) apply(x, y Rational) (Rational, error) {
	switch op {
	case OpAdd:
		return x.Add(y)
	case OpSub:
		return x.Sub(y)
	case OpMul:
		return x.Mul(y)
	case OpQuo:
		return x.Quo(y)
	default:
		panic("fractions: invalid operator " + op.String())
	}
}

// Tokenize classifies each token as an operator or an operand and parses the
// operands. Tokens must alternate, starting with an operand. Tokenize does not
// check for a trailing operator; Reduce rejects that.
//
// Errors are *TokenError values. A token out of turn wraps
// OperatorOperandMismatch; an operand that fails to parse wraps the
// *NumberError from ParseMixed.
func Tokenize(tokens []string) ([]Op, []Rational, error) {
	ops := make([]Op, 0, len(tokens)/2)
	vals := make([]Rational, 0, len(tokens)/2+1)
	operand := true
	for i, tok := range tokens {
		if op, ok := ParseOp(tok); ok {
			if operand {
				return nil, nil, &TokenError{Pos: i + 1, Token: tok, Err: OperatorOperandMismatch}
			}
			ops = append(ops, op)
		} else {
			if !operand {
				return nil, nil, &TokenError{Pos: i + 1, Token: tok, Err: OperatorOperandMismatch}
			}
			v, err := ParseMixed(tok)
			if err != nil {
				return nil, nil, &TokenError{Pos: i + 1, Token: tok, Err: err}
			}
			vals = append(vals, v)
		}
		operand = !operand
	}
	return ops, vals, nil
}
