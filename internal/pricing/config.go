package pricing

import (
	"math"
	"os"
	"strconv"
	"strings"
)

const DefaultVATRate = 0.15

// Hard-coded markup fallbacks per tier code.
const (
	defaultMarkupRetail     = 0.40
	defaultMarkupContractor = 0.30
	defaultMarkupTender     = 0.15
	defaultMarkupInhouse    = 0.10
)

// envFloat parses a named override, falling back on empty, unparseable or
// non-finite values. It never fails: a bad override must not block a run.
func envFloat(name string, fallback float64) float64 {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return fallback
	}
	return v
}

func VATRate() float64 {
	return envFloat("VAT_RATE", DefaultVATRate)
}

// DefaultMarkups resolves the per-tier default markup fractions, each
// independently overridable via MARKUP_<CODE>.
func DefaultMarkups() map[string]float64 {
	return map[string]float64{
		"RETAIL":     envFloat("MARKUP_RETAIL", defaultMarkupRetail),
		"CONTRACTOR": envFloat("MARKUP_CONTRACTOR", defaultMarkupContractor),
		"TENDER":     envFloat("MARKUP_TENDER", defaultMarkupTender),
		"INHOUSE":    envFloat("MARKUP_INHOUSE", defaultMarkupInhouse),
	}
}
