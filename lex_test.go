package fractions

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestParseOp(t *testing.T) {
	cases := []struct {
		s  string
		op Op
		ok bool
	}{
		{"+", OpAdd, true},
		{"-", OpSub, true},
		{"*", OpMul, true},
		{"/", OpQuo, true},
		{"", opNone, false},
		{"x", opNone, false},
		{"++", opNone, false},
		{"×", opNone, false},
		{"-1", opNone, false},
	}
	for _, c := range cases {
		op, ok := ParseOp(c.s)
		if op != c.op || ok != c.ok {
			t.Errorf("ParseOp(%q): want %v, %t; got %v, %t", c.s, c.op, c.ok, op, ok)
		}
		if ok && op.String() != c.s {
			t.Errorf("%q parsed to %v", c.s, op)
		}
	}
	if s := Op(9).String(); s != "Op(9)" {
		t.Errorf("invalid op formats as %q", s)
	}
}

func TestTokenize(t *testing.T) {
	cases := []struct {
		src  string
		ops  []Op
		vals []Rational
	}{
		{"", []Op{}, []Rational{}},
		{"1", []Op{}, []Rational{{num: 1, den: 1}}},
		{"-2_1/2", []Op{}, []Rational{{num: -5, den: 2}}},
		{"1/2 + 3/4", []Op{OpAdd}, []Rational{{num: 1, den: 2}, {num: 3, den: 4}}},
		{"1 - 2 * 3 / 4", []Op{OpSub, OpMul, OpQuo}, []Rational{{num: 1, den: 1}, {num: 2, den: 1}, {num: 3, den: 1}, {num: 4, den: 1}}},
		// A trailing operator is left for Reduce.
		{"1 +", []Op{OpAdd}, []Rational{{num: 1, den: 1}}},
	}
	for _, c := range cases {
		t.Run(c.src, func(t *testing.T) {
			ops, vals, err := Tokenize(strings.Fields(c.src))
			if err != nil {
				t.Fatalf("%q: %v", c.src, err)
			}
			if !reflect.DeepEqual(ops, c.ops) {
				t.Errorf("%q: want ops %v, got %v", c.src, c.ops, ops)
			}
			if !reflect.DeepEqual(vals, c.vals) {
				t.Errorf("%q: want operands %v, got %v", c.src, c.vals, vals)
			}
		})
	}
}

func TestTokenizeErrors(t *testing.T) {
	cases := []struct {
		name   string
		tokens []string
		pos    int
		kind   Kind
	}{
		{"adjacent-operands", []string{"2/3", "1/4"}, 2, OperatorOperandMismatch},
		{"leading-operator", []string{"+", "2/3", "-", "1/4"}, 1, OperatorOperandMismatch},
		{"adjacent-operators", []string{"1", "+", "*", "2"}, 3, OperatorOperandMismatch},
		{"extra-operand", []string{"2/3", "1/4", "*"}, 2, OperatorOperandMismatch},
		{"empty-token", []string{""}, 1, InvalidNumeric},
		{"bad-operand", []string{"1", "+", "1_2_3"}, 3, InvalidFormat},
		{"zero-den", []string{"1/0"}, 1, InvalidArgument},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, _, err := Tokenize(c.tokens)
			if !errors.Is(err, c.kind) {
				t.Fatalf("%q: want %v, got %v", c.tokens, c.kind, err)
			}
			var ie InputError
			if !errors.As(err, &ie) {
				t.Fatalf("%q: error %v has no position", c.tokens, err)
			}
			if ie.Position() != c.pos {
				t.Errorf("%q: want position %d, got %d", c.tokens, c.pos, ie.Position())
			}
			if !strings.Contains(err.Error(), c.kind.Error()) {
				t.Errorf("%q: message %q does not describe %q", c.tokens, err.Error(), c.kind.Error())
			}
		})
	}
}
