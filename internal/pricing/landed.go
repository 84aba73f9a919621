package pricing

import "math"

// ReconcileTolerance is the absolute difference allowed between a provided
// total and the independently summed components before a mismatch is flagged.
// Two cents absorbs rounding noise in the source workbooks. Fixed policy.
const ReconcileTolerance = 0.02

// Components are the raw per-unit cost inputs of one workbook row.
// TotalProvided is nil when the source carries no total for the row.
type Components struct {
	Unit          float64
	Bag           float64
	Loading       float64
	Transport     float64
	TotalProvided *float64
}

// LandedResult is the outcome of aggregating one row.
type LandedResult struct {
	// LandedExVat is the 2-decimal landed cost. A provided total is
	// authoritative; otherwise it is the component sum.
	LandedExVat      float64
	TotalWasProvided bool
	// ComponentSum is the rounded sum of the four components, computed
	// regardless of source, for reconciliation.
	ComponentSum float64
	// ReconciliationDelta is provided-total minus component sum, rounded;
	// nil when no total was provided.
	ReconciliationDelta *float64
	// Mismatch is set when the delta exceeds ReconcileTolerance.
	Mismatch bool
	// Missing is set when there is neither a total nor any component cost;
	// such a row contributes no cost version.
	Missing bool
}

// AggregateLanded computes the landed ex-VAT cost for one row and reconciles
// it against the optionally provided total. It never fails: numeric coercion
// problems are handled upstream by defaulting to zero.
func AggregateLanded(c Components) LandedResult {
	sum := Round2(c.Unit + c.Bag + c.Loading + c.Transport)

	res := LandedResult{ComponentSum: sum}
	if c.TotalProvided != nil {
		res.TotalWasProvided = true
		res.LandedExVat = Round2(*c.TotalProvided)
		delta := Round2(*c.TotalProvided - sum)
		res.ReconciliationDelta = &delta
		res.Mismatch = math.Abs(*c.TotalProvided-sum) > ReconcileTolerance
		return res
	}

	res.LandedExVat = sum
	res.Missing = sum == 0
	return res
}
