package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Klue7/abc-erp-clean/internal/adapters/repo/postgres"
	"github.com/Klue7/abc-erp-clean/internal/domain"
	"github.com/Klue7/abc-erp-clean/internal/pricing"
	"github.com/Klue7/abc-erp-clean/internal/usecase"
)

type App struct {
	DB       *gorm.DB
	ImportUC *usecase.ImportUC
	Tiers    domain.TierRepo
}

func NewApp(db *gorm.DB) (*App, error) {
	prodRepo := postgres.NewProductRepo(db)
	tierRepo := postgres.NewTierRepo(db)
	costRepo := postgres.NewCostVersionRepo(db)
	priceRepo := postgres.NewPriceListRepo(db)
	specRepo := postgres.NewSpecRepo(db)

	app := &App{
		DB:    db,
		Tiers: tierRepo,
		ImportUC: &usecase.ImportUC{
			Products: prodRepo,
			Tiers:    tierRepo,
			Costs:    costRepo,
			Prices:   priceRepo,
			Specs:    specRepo,
		},
	}
	return app, nil
}

func (a *App) MigrateAndSeed() error {
	if err := a.DB.AutoMigrate(
		&domain.Supplier{}, &domain.Category{}, &domain.Uom{}, &domain.Product{},
		&domain.CostVersion{}, &domain.PriceTier{}, &domain.PriceListEntry{}, &domain.ProductSpec{},
	); err != nil {
		return err
	}

	_ = a.DB.Exec("CREATE UNIQUE INDEX IF NOT EXISTS idx_price_lists_cost_tier ON price_list_entries (cost_version_id, tier_id)").Error
	_ = a.DB.Exec("CREATE INDEX IF NOT EXISTS idx_cost_versions_product_created ON cost_versions (product_id, created_at DESC)").Error

	if err := a.seedUoms(); err != nil {
		return err
	}
	return seedDefaultTiers(context.Background(), a.Tiers)
}

// CheckSchema verifies once, at startup, that the store carries every table
// the pipeline writes to. Replaces per-call existence probing.
func (a *App) CheckSchema() error {
	for _, model := range []any{
		&domain.Supplier{}, &domain.Category{}, &domain.Uom{}, &domain.Product{},
		&domain.CostVersion{}, &domain.PriceTier{}, &domain.PriceListEntry{}, &domain.ProductSpec{},
	} {
		if !a.DB.Migrator().HasTable(model) {
			return fmt.Errorf("store missing table for %T", model)
		}
	}
	return nil
}

func (a *App) seedUoms() error {
	uoms := []domain.Uom{
		{Code: domain.UomEach, Description: "Each (base unit)", Base: true},
		{Code: domain.UomPer1000, Description: "Per 1000 units"},
		{Code: domain.UomPerTon, Description: "Per ton"},
		{Code: domain.UomPer50kgBag, Description: "Per 50kg bag"},
		{Code: domain.UomPer8Ton, Description: "Per 8 ton load"},
		{Code: domain.UomPer26Ton, Description: "Per 26 ton load"},
	}
	for _, u := range uoms {
		var existing domain.Uom
		err := a.DB.First(&existing, "code = ?", u.Code).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			u.ID = uuid.New()
			if err := a.DB.Create(&u).Error; err != nil {
				return err
			}
			continue
		}
		if err != nil {
			return err
		}
		existing.Description = u.Description
		existing.Base = u.Base
		if err := a.DB.Save(&existing).Error; err != nil {
			return err
		}
	}
	return nil
}

// seedDefaultTiers creates the four stock tiers with the resolved default
// markups, skipping any code that already exists. Seeding runs before every
// import, so it must never write over a stored tier: admins edit markups and
// active flags between runs and those edits are authoritative.
func seedDefaultTiers(ctx context.Context, repo domain.TierRepo) error {
	markups := pricing.DefaultMarkups()
	tiers := []domain.PriceTier{
		{Code: "RETAIL", Name: "Retail", DefaultMarkup: markups["RETAIL"], Active: true, Description: "Retail price (ex-VAT)"},
		{Code: "CONTRACTOR", Name: "Contractor", DefaultMarkup: markups["CONTRACTOR"], Active: true, Description: "Contractor price (ex-VAT)"},
		{Code: "TENDER", Name: "Tender", DefaultMarkup: markups["TENDER"], Active: true, Description: "Tender price (ex-VAT)"},
		{Code: "INHOUSE", Name: "In-House", DefaultMarkup: markups["INHOUSE"], Active: true, Description: "Internal price (ex-VAT)"},
	}
	for i := range tiers {
		if err := repo.CreateIfAbsent(ctx, &tiers[i]); err != nil {
			return err
		}
	}
	return nil
}
