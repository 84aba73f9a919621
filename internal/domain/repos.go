package domain

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("not found")

type ProductRepo interface {
	// Upsert finds the product by item code and refreshes name, supplier and
	// category, or creates it (including base UOM) when absent.
	Upsert(ctx context.Context, p *Product) (*Product, error)
	FindByItemCode(ctx context.Context, itemCode string) (*Product, error)
	UpsertSupplier(ctx context.Context, name string) (*Supplier, error)
	UpsertCategory(ctx context.Context, name string) (*Category, error)
}

type TierRepo interface {
	FindActive(ctx context.Context) ([]PriceTier, error)
	// CreateIfAbsent seeds a tier keyed by code and leaves an existing
	// record untouched. Tiers are edited independently of imports; stored
	// values stay authoritative over seed defaults.
	CreateIfAbsent(ctx context.Context, t *PriceTier) error
}

type CostVersionRepo interface {
	// Create appends a new version; existing versions are never touched.
	Create(ctx context.Context, cv *CostVersion) error
}

type PriceListRepo interface {
	// Upsert writes the entry keyed by (cost version, tier), overwriting
	// markup, price and GP% when the pair already exists.
	Upsert(ctx context.Context, e *PriceListEntry) error
}

type SpecRepo interface {
	// FindValues returns the spec row as column name -> value, or ErrNotFound
	// when the product has no spec record yet.
	FindValues(ctx context.Context, productID uuid.UUID) (map[string]any, error)
	Create(ctx context.Context, productID uuid.UUID, patch map[string]any) error
	Update(ctx context.Context, productID uuid.UUID, patch map[string]any) error
}
