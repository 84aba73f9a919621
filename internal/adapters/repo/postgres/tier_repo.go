package postgres

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Klue7/abc-erp-clean/internal/domain"
)

type TierRepo struct{ db *gorm.DB }

func NewTierRepo(db *gorm.DB) *TierRepo { return &TierRepo{db: db} }

func (r *TierRepo) FindActive(ctx context.Context) ([]domain.PriceTier, error) {
	var tiers []domain.PriceTier
	if err := r.db.WithContext(ctx).Where("active = ?", true).Order("code asc").Find(&tiers).Error; err != nil {
		return nil, err
	}
	return tiers, nil
}

// CreateIfAbsent seeds a tier only when its code is new. An existing record
// is never written: tiers are edited independently of imports and stored
// markups/active flags must survive every run.
func (r *TierRepo) CreateIfAbsent(ctx context.Context, t *domain.PriceTier) error {
	code := strings.TrimSpace(t.Code)
	if code == "" {
		return errors.New("tier code empty")
	}
	var existing domain.PriceTier
	err := r.db.WithContext(ctx).First(&existing, "code = ?", code).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		if t.ID == uuid.Nil {
			t.ID = uuid.New()
		}
		return r.db.WithContext(ctx).Create(t).Error
	}
	return err
}
