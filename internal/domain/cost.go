package domain

import (
	"time"

	"github.com/google/uuid"
)

// RawCostRow is one data row lifted out of a supplier cost workbook, before
// any landed-cost math. Costs default to 0 when the column is absent or the
// cell is not numeric; TotalCostProvided is nil when the workbook carries no
// usable TOTAL COST cell for the row.
type RawCostRow struct {
	Sheet       string
	Supplier    string
	Category    string
	ItemCode    string
	Description string

	UnitCost          float64
	BagCost           float64
	LoadingFee        float64
	TransportPerUnit  float64
	TotalCostProvided *float64
}

// CostVersion is an append-only snapshot of a product's cost components.
// Imports always create a new version; history is never mutated or pruned.
type CostVersion struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProductID uuid.UUID `gorm:"type:uuid;index;not null"`

	EffectiveFrom      time.Time
	SourceWorkbook     string  `gorm:"size:255"`
	SourceWorkbookHash *string `gorm:"size:64"`

	UnitCost         float64 `gorm:"type:decimal(12,2);default:0"`
	BagCost          float64 `gorm:"type:decimal(12,2);default:0"`
	LoadingFee       float64 `gorm:"type:decimal(12,2);default:0"`
	TransportPerUnit float64 `gorm:"type:decimal(12,2);default:0"`
	OtherCost        float64 `gorm:"type:decimal(12,2);default:0"`
	AdminPerUnit     float64 `gorm:"type:decimal(12,2);default:0"`
	StoragePerUnit   float64 `gorm:"type:decimal(12,2);default:0"`

	TotalCostProvided *float64 `gorm:"type:decimal(12,2)"`
	LandedExVat       float64  `gorm:"type:decimal(12,2)"`

	Prices []PriceListEntry `gorm:"foreignKey:CostVersionID"`

	CreatedAt time.Time
}

type PriceTier struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	Code          string    `gorm:"uniqueIndex;size:40;not null"`
	Name          string    `gorm:"size:100"`
	Description   string    `gorm:"size:255"`
	DefaultMarkup float64   `gorm:"type:decimal(6,4);default:0"`
	Active        bool      `gorm:"default:true;index"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// PriceListEntry holds the derived sell price for one (cost version, tier)
// pair. PriceExVat is always landedExVat * (1 + markup) rounded to 2 decimals;
// it is never edited independently of its inputs.
type PriceListEntry struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	CostVersionID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_price_lists_cost_tier"`
	TierID        uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_price_lists_cost_tier"`

	Markup     float64 `gorm:"type:decimal(6,4)"`
	PriceExVat float64 `gorm:"type:decimal(12,2)"`
	GpPct      float64 `gorm:"type:decimal(6,2)"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
