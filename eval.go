package fractions

import "strings"

// Reduce evaluates the expression vals[0] ops[0] vals[1] ops[1] ... with the
// usual precedence: every * and / is applied left to right first, then every +
// and - left to right. Reduce does not modify its arguments.
//
// The error is EmptyExpression if there are no operands,
// OperatorOperandMismatch if there are not more operands than operators, or
// DivisionByZero. Operands beyond len(ops)+1 are ignored.
func Reduce(ops []Op, vals []Rational) (Rational, error) {
	if len(vals) == 0 {
		return Rational{}, EmptyExpression
	}
	if len(vals) <= len(ops) {
		return Rational{}, OperatorOperandMismatch
	}

	// First pass: collapse each run of multiplicative operators into the term
	// that starts it. What remains is terms[0] sums[0] terms[1] ...
	terms := make([]Rational, 1, len(ops)+1)
	terms[0] = vals[0]
	sums := make([]Op, 0, len(ops))
	for i, op := range ops {
		if !op.multiplicative() {
			sums = append(sums, op)
			terms = append(terms, vals[i+1])
			continue
		}
		last := &terms[len(terms)-1]
		r, err := op.apply(*last, vals[i+1])
		if err != nil {
			return Rational{}, err
		}
		*last = r
	}

	// Second pass: fold the sums left to right.
	r := terms[0]
	for i, op := range sums {
		var err error
		r, err = op.apply(r, terms[i+1])
		if err != nil {
			return Rational{}, err
		}
	}
	return r, nil
}

// Eval tokenizes and evaluates an expression given as separate tokens, e.g.
// the arguments of a command.
func Eval(tokens []string) (Rational, error) {
	ops, vals, err := Tokenize(tokens)
	if err != nil {
		return Rational{}, err
	}
	return Reduce(ops, vals)
}

// EvalString is a shortcut to split an expression on whitespace and evaluate
// the tokens.
func EvalString(src string) (Rational, error) {
	return Eval(strings.Fields(src))
}
