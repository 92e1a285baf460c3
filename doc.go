// Package fractions implements an exact calculator for rational numbers
// written in mixed-number notation.
//
// A number is an integer, a fraction, or a whole part and a fraction joined
// by an underscore: "3", "-1/2", "2_3/4". The sign of a mixed number applies
// to the whole thing, so "-3_3/4" is -15/4. An expression is a sequence of
// numbers separated by the operators + - * /, each its own token, and is
// evaluated with * and / before + and -. There are no parentheses.
//
// Results are reduced to lowest terms and formatted in the same notation.
//
package fractions
