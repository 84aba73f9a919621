package postgres

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Klue7/abc-erp-clean/internal/domain"
)

type CostVersionRepo struct{ db *gorm.DB }

func NewCostVersionRepo(db *gorm.DB) *CostVersionRepo { return &CostVersionRepo{db: db} }

func (r *CostVersionRepo) Create(ctx context.Context, cv *domain.CostVersion) error {
	if cv.ID == uuid.Nil {
		cv.ID = uuid.New()
	}
	return r.db.WithContext(ctx).Create(cv).Error
}
