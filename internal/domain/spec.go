package domain

import (
	"time"

	"github.com/google/uuid"
)

// ProductSpec holds optional structured attributes merged onto a product by
// the specs importer. All attribute columns are nullable; a nil value means
// "never imported", which is what the first-import-wins merge policy keys on.
type ProductSpec struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProductID uuid.UUID `gorm:"type:uuid;uniqueIndex;not null"`

	LengthMm       *float64 `gorm:"type:decimal(10,2)"`
	WidthMm        *float64 `gorm:"type:decimal(10,2)"`
	HeightMm       *float64 `gorm:"type:decimal(10,2)"`
	UnitWeightKg   *float64 `gorm:"type:decimal(10,3)"`
	DensityKgPerM3 *float64 `gorm:"type:decimal(10,2)"`
	PackQty        *float64 `gorm:"type:decimal(10,2)"`

	BricksPerPallet    *float64 `gorm:"type:decimal(10,2)"`
	PalletDimensionsMm *string  `gorm:"size:100"`

	TechSpecsLink    *string `gorm:"size:255"`
	MsdsLink         *string `gorm:"size:255"`
	ApplicationNotes *string `gorm:"type:text"`

	FactoryLeadTimeDays  *float64 `gorm:"type:decimal(6,1)"`
	AbcStockLeadTimeDays *float64 `gorm:"type:decimal(6,1)"`

	MinOrderQty  *float64 `gorm:"type:decimal(10,2)"`
	ReorderPoint *float64 `gorm:"type:decimal(10,2)"`
	SafetyStock  *float64 `gorm:"type:decimal(10,2)"`

	Notes *string `gorm:"type:text"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
