package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Klue7/abc-erp-clean/internal/domain"
)

type SpecRepo struct{ db *gorm.DB }

func NewSpecRepo(db *gorm.DB) *SpecRepo { return &SpecRepo{db: db} }

// FindValues scans the spec row into a column -> value map so the merge
// policy can check per-field nullness without caring about field types.
func (r *SpecRepo) FindValues(ctx context.Context, productID uuid.UUID) (map[string]any, error) {
	values := map[string]any{}
	err := r.db.WithContext(ctx).Model(&domain.ProductSpec{}).
		Where("product_id = ?", productID).Take(&values).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return values, nil
}

func (r *SpecRepo) Create(ctx context.Context, productID uuid.UUID, patch map[string]any) error {
	spec := domain.ProductSpec{ID: uuid.New(), ProductID: productID}
	if err := r.db.WithContext(ctx).Create(&spec).Error; err != nil {
		return err
	}
	if len(patch) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Model(&domain.ProductSpec{}).
		Where("product_id = ?", productID).Updates(patch).Error
}

func (r *SpecRepo) Update(ctx context.Context, productID uuid.UUID, patch map[string]any) error {
	if len(patch) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Model(&domain.ProductSpec{}).
		Where("product_id = ?", productID).Updates(patch).Error
}
