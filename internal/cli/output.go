package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/zephyrtronium/fractions"
	"github.com/zephyrtronium/fractions/internal/config"
)

// jsonResult is the JSON form of one evaluated expression.
type jsonResult struct {
	Expression  string             `json:"expression"`
	Result      fractions.Rational `json:"result"`
	Numerator   int64              `json:"numerator"`
	Denominator int64              `json:"denominator"`
}

// writeResult prints the result of evaluating expr in the given format.
func writeResult(w io.Writer, format, expr string, r fractions.Rational) error {
	switch format {
	case config.OutputJSON:
		return json.NewEncoder(w).Encode(jsonResult{
			Expression:  expr,
			Result:      r,
			Numerator:   r.Num(),
			Denominator: r.Den(),
		})
	default:
		_, err := fmt.Fprintf(w, "= %v\n", r)
		return err
	}
}
