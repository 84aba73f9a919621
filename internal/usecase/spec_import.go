package usecase

import (
	"context"
	"errors"
	"regexp"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/Klue7/abc-erp-clean/internal/domain"
)

const specKeyColumn = "itemCode"

// Recognized spec columns, workbook header -> store column.
var specFields = map[string]string{
	"lengthMm":             "length_mm",
	"widthMm":              "width_mm",
	"heightMm":             "height_mm",
	"unitWeightKg":         "unit_weight_kg",
	"densityKgPerM3":       "density_kg_per_m3",
	"packQty":              "pack_qty",
	"bricksPerPallet":      "bricks_per_pallet",
	"palletDimensionsMm":   "pallet_dimensions_mm",
	"techSpecsLink":        "tech_specs_link",
	"msdsLink":             "msds_link",
	"applicationNotes":     "application_notes",
	"factoryLeadTimeDays":  "factory_lead_time_days",
	"abcStockLeadTimeDays": "abc_stock_lead_time_days",
	"minOrderQty":          "min_order_qty",
	"reorderPoint":         "reorder_point",
	"safetyStock":          "safety_stock",
	"notes":                "notes",
}

// Size, weight, quantity and lead-time fields carry numbers.
var numericSpecField = regexp.MustCompile(`(?i)Mm|Kg|M3|Qty|Point|Stock|Days`)

// ErrMissingItemCode means the specs workbook lacks its key column; the run
// cannot proceed.
var ErrMissingItemCode = errors.New("missing required column: itemCode")

// ImportSpecs merges structured attributes onto existing products. Specs
// never create products; a row for an unknown item code is skipped. Unless
// force is set, fields already populated on an existing spec win over the
// incoming value (first-import-wins, per field).
func (uc *ImportUC) ImportSpecs(ctx context.Context, headers []string, rows [][]string, force bool) error {
	colOf := map[string]int{}
	for i, h := range headers {
		colOf[h] = i
	}
	keyCol, ok := colOf[specKeyColumn]
	if !ok {
		return ErrMissingItemCode
	}

	merged, skipped := 0, 0
	for _, row := range rows {
		itemCode := ""
		if keyCol < len(row) {
			itemCode = strings.TrimSpace(row[keyCol])
		}
		if itemCode == "" {
			continue
		}

		product, err := uc.Products.FindByItemCode(ctx, itemCode)
		if errors.Is(err, domain.ErrNotFound) {
			skipped++
			continue
		}
		if err != nil {
			return err
		}

		patch := map[string]any{}
		for header, column := range specFields {
			idx, ok := colOf[header]
			if !ok || idx >= len(row) {
				continue
			}
			raw := strings.TrimSpace(row[idx])
			if raw == "" {
				continue
			}
			if numericSpecField.MatchString(header) {
				if n, err := strconv.ParseFloat(raw, 64); err == nil {
					patch[column] = n
					continue
				}
			}
			patch[column] = raw
		}

		existing, err := uc.Specs.FindValues(ctx, product.ID)
		if errors.Is(err, domain.ErrNotFound) {
			if err := uc.Specs.Create(ctx, product.ID, patch); err != nil {
				return err
			}
			merged++
			continue
		}
		if err != nil {
			return err
		}

		if !force {
			for column := range patch {
				if v, ok := existing[column]; ok && v != nil {
					delete(patch, column)
				}
			}
		}
		if len(patch) > 0 {
			if err := uc.Specs.Update(ctx, product.ID, patch); err != nil {
				return err
			}
		}
		merged++
	}

	log.Info().Int("merged", merged).Int("unknown_products", skipped).Bool("force", force).Msg("specs import complete")
	return nil
}
