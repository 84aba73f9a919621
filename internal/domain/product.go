package domain

import (
	"time"

	"github.com/google/uuid"
)

type Product struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	ItemCode   string    `gorm:"uniqueIndex;size:60;not null"`
	Name       string    `gorm:"size:180"`
	SupplierID uuid.UUID `gorm:"type:uuid;index"`
	CategoryID uuid.UUID `gorm:"type:uuid;index"`
	BaseUom    UomCode   `gorm:"type:varchar(20);default:'each'"`

	CostVersions []CostVersion
	Spec         *ProductSpec

	CreatedAt time.Time
	UpdatedAt time.Time
}

type Supplier struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"uniqueIndex;size:140;not null"`
	CreatedAt time.Time
}

type Category struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"uniqueIndex;size:140;not null"`
	CreatedAt time.Time
}
