package postgres

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Klue7/abc-erp-clean/internal/domain"
)

type PriceListRepo struct{ db *gorm.DB }

func NewPriceListRepo(db *gorm.DB) *PriceListRepo { return &PriceListRepo{db: db} }

// Upsert writes through the (cost_version_id, tier_id) unique key so that
// re-running fan-out overwrites instead of duplicating.
func (r *PriceListRepo) Upsert(ctx context.Context, e *domain.PriceListEntry) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "cost_version_id"}, {Name: "tier_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"markup", "price_ex_vat", "gp_pct", "updated_at"}),
	}).Create(e).Error
}
