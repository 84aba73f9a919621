package usecase

import (
	"context"
	"math"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/Klue7/abc-erp-clean/internal/domain"
	"github.com/Klue7/abc-erp-clean/internal/pricing"
	"github.com/Klue7/abc-erp-clean/internal/qa"
)

// ImportUC runs the cost-to-price pipeline: raw workbook rows in, cost
// versions and per-tier price list entries out, QA flags collected along the
// way. Store errors abort the run; data anomalies never do.
type ImportUC struct {
	Products domain.ProductRepo
	Tiers    domain.TierRepo
	Costs    domain.CostVersionRepo
	Prices   domain.PriceListRepo
	Specs    domain.SpecRepo
}

// ImportMaterials processes rows sequentially. Each retained row produces one
// cost version plus one price list entry per active tier. Returns the number
// of rows that produced a cost version.
func (uc *ImportUC) ImportMaterials(ctx context.Context, rows []domain.RawCostRow, source string, qaLog *qa.Log) (int, error) {
	processed := 0
	for _, row := range rows {
		agg := pricing.AggregateLanded(pricing.Components{
			Unit:          row.UnitCost,
			Bag:           row.BagCost,
			Loading:       row.LoadingFee,
			Transport:     row.TransportPerUnit,
			TotalProvided: row.TotalCostProvided,
		})

		if agg.Missing {
			qaLog.Add(qa.Flag{
				Kind:     qa.KindMissingLanded,
				Sheet:    row.Sheet,
				Supplier: row.Supplier,
				ItemCode: row.ItemCode,
				Message:  "No total or components",
			})
			log.Debug().Str("item", row.ItemCode).Str("sheet", row.Sheet).Msg("row discarded: no landed cost")
			continue
		}
		if agg.Mismatch {
			qaLog.Add(qa.Flag{
				Kind:     qa.KindTotalMismatch,
				Sheet:    row.Sheet,
				Supplier: row.Supplier,
				ItemCode: row.ItemCode,
				Message:  "provided=" + fnum(*row.TotalCostProvided) + " sum=" + fnum(agg.ComponentSum),
			})
		}

		supplier, err := uc.Products.UpsertSupplier(ctx, row.Supplier)
		if err != nil {
			return processed, err
		}
		category, err := uc.Products.UpsertCategory(ctx, row.Category)
		if err != nil {
			return processed, err
		}

		name := row.Description
		if name == "" {
			name = row.ItemCode
		}
		product, err := uc.Products.Upsert(ctx, &domain.Product{
			ItemCode:   row.ItemCode,
			Name:       name,
			SupplierID: supplier.ID,
			CategoryID: category.ID,
			BaseUom:    domain.InferUom(row.Description),
		})
		if err != nil {
			return processed, err
		}

		cv := &domain.CostVersion{
			ProductID:         product.ID,
			EffectiveFrom:     time.Now(),
			SourceWorkbook:    source,
			UnitCost:          row.UnitCost,
			BagCost:           row.BagCost,
			LoadingFee:        row.LoadingFee,
			TransportPerUnit:  row.TransportPerUnit,
			TotalCostProvided: row.TotalCostProvided,
			LandedExVat:       agg.LandedExVat,
		}
		if err := uc.Costs.Create(ctx, cv); err != nil {
			return processed, err
		}
		processed++

		if err := uc.fanOutTiers(ctx, cv, row, qaLog); err != nil {
			return processed, err
		}
	}

	log.Info().Int("rows", processed).Int("qa_flags", qaLog.Count()).Str("workbook", source).Msg("materials import complete")
	return processed, nil
}

// fanOutTiers derives one price list entry per active tier for a cost
// version. Tiers are queried fresh each time: they can change between
// imports, and the upsert keying makes re-runs idempotent.
func (uc *ImportUC) fanOutTiers(ctx context.Context, cv *domain.CostVersion, row domain.RawCostRow, qaLog *qa.Log) error {
	tiers, err := uc.Tiers.FindActive(ctx)
	if err != nil {
		return err
	}
	for _, t := range tiers {
		price := pricing.ComputePriceExVat(cv.LandedExVat, t.DefaultMarkup)
		gp := pricing.GPPct(price, cv.LandedExVat)
		if math.IsNaN(price) {
			log.Debug().Str("item", row.ItemCode).Str("tier", t.Code).Msg("price not finite, entry skipped")
			continue
		}
		if err := uc.Prices.Upsert(ctx, &domain.PriceListEntry{
			CostVersionID: cv.ID,
			TierID:        t.ID,
			Markup:        t.DefaultMarkup,
			PriceExVat:    price,
			GpPct:         gp,
		}); err != nil {
			return err
		}
		if price < cv.LandedExVat {
			qaLog.Add(qa.Flag{
				Kind:     qa.KindPriceLtLanded,
				Sheet:    row.Sheet,
				Supplier: row.Supplier,
				ItemCode: row.ItemCode,
				Message:  "tier=" + t.Code + " price=" + fnum(price) + " landed=" + fnum(cv.LandedExVat),
			})
		}
	}
	return nil
}

func fnum(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
