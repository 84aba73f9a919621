// Package pricing holds the cost-to-price math: 2-decimal money rounding,
// tier price derivation, gross-profit percentage, landed-cost aggregation and
// the VAT/markup configuration defaults.
package pricing

import "math"

// epsilon nudges values off binary-representation artifacts before rounding,
// so 1.005 rounds to 1.01 instead of 1.00.
const epsilon = 2.220446049250313e-16

func Round2(v float64) float64 {
	return math.Round((v+epsilon)*100) / 100
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// ComputePriceExVat derives a sell price from a landed cost and a fractional
// markup (0.30 = 30%). Returns NaN when landed is not finite; callers must
// check before persisting.
func ComputePriceExVat(landed, markup float64) float64 {
	if !finite(landed) {
		return math.NaN()
	}
	return Round2(landed * (1 + markup))
}

// GPPct is the gross-profit percentage of a price over its landed cost.
// Degenerate inputs (non-finite, or price <= 0) yield NaN rather than a
// division blowup.
func GPPct(priceExVat, landed float64) float64 {
	if !finite(priceExVat) || priceExVat <= 0 {
		return math.NaN()
	}
	if !finite(landed) {
		return math.NaN()
	}
	return Round2(((priceExVat - landed) / priceExVat) * 100)
}
