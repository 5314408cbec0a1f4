// Package tax computes the GST breakdown applied to every order. CGST and
// SGST are the two halves of the applicable Goods and Services Tax, each
// charged at the same rate.
package tax

import (
	"errors"
	"math"
)

// The split rate lives here and nowhere else; every call site shares it.
const (
	CGSTRate = 0.09
	SGSTRate = 0.09
)

var ErrInvalidAmount = errors.New("subtotal must not be negative")

// Breakdown is the result of applying GST to a subtotal.
type Breakdown struct {
	CGST  float64 `json:"cgst"`
	SGST  float64 `json:"sgst"`
	GST   float64 `json:"gst"`
	Total float64 `json:"total"`
}

// Round2 rounds a monetary value to 2 decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// CalculateGST turns a non-negative subtotal into its CGST/SGST/total
// breakdown. Each stored amount is rounded to the cent, not only the final
// total.
func CalculateGST(subtotal float64) (Breakdown, error) {
	if subtotal < 0 {
		return Breakdown{}, ErrInvalidAmount
	}

	cgst := Round2(subtotal * CGSTRate)
	sgst := Round2(subtotal * SGSTRate)
	gst := cgst + sgst

	return Breakdown{
		CGST:  cgst,
		SGST:  sgst,
		GST:   gst,
		Total: subtotal + gst,
	}, nil
}
