package postgres

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Klue7/abc-erp-clean/internal/domain"
)

type ProductRepo struct{ db *gorm.DB }

func NewProductRepo(db *gorm.DB) *ProductRepo { return &ProductRepo{db: db} }

func (r *ProductRepo) FindByItemCode(ctx context.Context, itemCode string) (*domain.Product, error) {
	code := strings.TrimSpace(itemCode)
	if code == "" {
		return nil, errors.New("item code empty")
	}
	var p domain.Product
	if err := r.db.WithContext(ctx).First(&p, "item_code = ?", code).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

// Upsert keys on item code. On update only name, supplier and category are
// refreshed; the base UOM is set on create and left alone afterwards.
func (r *ProductRepo) Upsert(ctx context.Context, p *domain.Product) (*domain.Product, error) {
	if strings.TrimSpace(p.ItemCode) == "" {
		return nil, errors.New("item code empty")
	}
	var existing domain.Product
	err := r.db.WithContext(ctx).First(&existing, "item_code = ?", p.ItemCode).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		if p.ID == uuid.Nil {
			p.ID = uuid.New()
		}
		if err := r.db.WithContext(ctx).Create(p).Error; err != nil {
			return nil, err
		}
		return p, nil
	}
	if err != nil {
		return nil, err
	}
	existing.Name = p.Name
	existing.SupplierID = p.SupplierID
	existing.CategoryID = p.CategoryID
	if err := r.db.WithContext(ctx).Save(&existing).Error; err != nil {
		return nil, err
	}
	return &existing, nil
}

func (r *ProductRepo) UpsertSupplier(ctx context.Context, name string) (*domain.Supplier, error) {
	n := strings.TrimSpace(name)
	if n == "" {
		return nil, errors.New("supplier name empty")
	}
	var s domain.Supplier
	err := r.db.WithContext(ctx).First(&s, "name = ?", n).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		s = domain.Supplier{ID: uuid.New(), Name: n}
		if err := r.db.WithContext(ctx).Create(&s).Error; err != nil {
			return nil, err
		}
		return &s, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *ProductRepo) UpsertCategory(ctx context.Context, name string) (*domain.Category, error) {
	n := strings.TrimSpace(name)
	if n == "" {
		return nil, errors.New("category name empty")
	}
	var c domain.Category
	err := r.db.WithContext(ctx).First(&c, "name = ?", n).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c = domain.Category{ID: uuid.New(), Name: n}
		if err := r.db.WithContext(ctx).Create(&c).Error; err != nil {
			return nil, err
		}
		return &c, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}
