package domain

import (
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

// UomCode is the quantity basis a cost or price is expressed against.
type UomCode string

const (
	UomEach       UomCode = "each"
	UomPer1000    UomCode = "per_1000"
	UomPerTon     UomCode = "per_ton"
	UomPer50kgBag UomCode = "per_50kg_bag"
	UomPer8Ton    UomCode = "per_8ton_load"
	UomPer26Ton   UomCode = "per_26ton_load"
)

type Uom struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Code        UomCode   `gorm:"uniqueIndex;type:varchar(20);not null"`
	Description string    `gorm:"size:140"`
	Base        bool      `gorm:"default:false"`
	CreatedAt   time.Time
}

// tonRe matches TON/TONNE as a standalone token, so "8TON" and "26TON" fall
// through to their own load rules and words like "STONE" stay "each".
var tonRe = regexp.MustCompile(`(?:PER\s+)?\b(?:TON|TONNE)\b`)

// InferUom derives a unit of measure from a free-text item description.
// Rules are ordered; the first match wins and "each" always matches last.
func InferUom(desc string) UomCode {
	s := strings.ToUpper(desc)
	switch {
	case strings.Contains(s, "PER 1000"):
		return UomPer1000
	case tonRe.MatchString(s):
		return UomPerTon
	case strings.Contains(s, "50KG"):
		return UomPer50kgBag
	case strings.Contains(s, "8TON"):
		return UomPer8Ton
	case strings.Contains(s, "26TON"):
		return UomPer26Ton
	default:
		return UomEach
	}
}
