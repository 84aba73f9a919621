package usecase

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Klue7/abc-erp-clean/internal/domain"
)

func seedProduct(store *memStore, itemCode string) *domain.Product {
	p := &domain.Product{ID: uuid.New(), ItemCode: itemCode, Name: itemCode}
	store.products[itemCode] = p
	return p
}

func TestImportSpecs(t *testing.T) {
	headers := []string{"itemCode", "lengthMm", "unitWeightKg", "palletDimensionsMm", "notes"}

	t.Run("MissingItemCodeColumnIsFatal", func(t *testing.T) {
		store := newMemStore()
		err := store.uc().ImportSpecs(context.Background(), []string{"lengthMm"}, nil, false)
		assert.ErrorIs(t, err, ErrMissingItemCode)
	})

	t.Run("UnknownProductSkipped", func(t *testing.T) {
		store := newMemStore()
		rows := [][]string{{"NOPE-1", "222", "3.1", "", ""}}
		require.NoError(t, store.uc().ImportSpecs(context.Background(), headers, rows, false))
		assert.Empty(t, store.specs, "specs cannot create products")
	})

	t.Run("CreateWithCoercion", func(t *testing.T) {
		store := newMemStore()
		p := seedProduct(store, "BRK-001")
		rows := [][]string{{"BRK-001", "222", "3.1", "1000x500x80", "solid clay"}}
		require.NoError(t, store.uc().ImportSpecs(context.Background(), headers, rows, false))

		spec := store.specs[p.ID]
		require.NotNil(t, spec)
		assert.Equal(t, 222.0, spec["length_mm"], "size fields parse to numbers")
		assert.Equal(t, 3.1, spec["unit_weight_kg"])
		assert.Equal(t, "1000x500x80", spec["pallet_dimensions_mm"], "unparseable numerics fall back to the trimmed string")
		assert.Equal(t, "solid clay", spec["notes"])
	})

	t.Run("EmptyCellsLeftOut", func(t *testing.T) {
		store := newMemStore()
		p := seedProduct(store, "BRK-001")
		rows := [][]string{{"BRK-001", "222", "", "", ""}}
		require.NoError(t, store.uc().ImportSpecs(context.Background(), headers, rows, false))

		spec := store.specs[p.ID]
		assert.Contains(t, spec, "length_mm")
		assert.NotContains(t, spec, "unit_weight_kg")
		assert.NotContains(t, spec, "notes")
	})

	t.Run("FirstImportWinsPerField", func(t *testing.T) {
		store := newMemStore()
		p := seedProduct(store, "BRK-001")
		store.specs[p.ID] = map[string]any{"length_mm": 222.0, "notes": nil}

		rows := [][]string{{"BRK-001", "999", "3.1", "", "hollow"}}
		require.NoError(t, store.uc().ImportSpecs(context.Background(), headers, rows, false))

		spec := store.specs[p.ID]
		assert.Equal(t, 222.0, spec["length_mm"], "populated field is not overwritten")
		assert.Equal(t, 3.1, spec["unit_weight_kg"], "new field merges in")
		assert.Equal(t, "hollow", spec["notes"], "a null field counts as never imported")
	})

	t.Run("ForceOverwrites", func(t *testing.T) {
		store := newMemStore()
		p := seedProduct(store, "BRK-001")
		store.specs[p.ID] = map[string]any{"length_mm": 222.0}

		rows := [][]string{{"BRK-001", "999", "", "", ""}}
		require.NoError(t, store.uc().ImportSpecs(context.Background(), headers, rows, true))

		assert.Equal(t, 999.0, store.specs[p.ID]["length_mm"])
	})

	t.Run("BlankItemCodeRowSkipped", func(t *testing.T) {
		store := newMemStore()
		seedProduct(store, "BRK-001")
		rows := [][]string{{"", "222", "", "", ""}, {"   "}}
		require.NoError(t, store.uc().ImportSpecs(context.Background(), headers, rows, false))
		assert.Empty(t, store.specs)
	})

	t.Run("UnrecognizedColumnsIgnored", func(t *testing.T) {
		store := newMemStore()
		p := seedProduct(store, "BRK-001")
		h := []string{"itemCode", "lengthMm", "randomColumn"}
		rows := [][]string{{"BRK-001", "222", "junk"}}
		require.NoError(t, store.uc().ImportSpecs(context.Background(), h, rows, false))

		spec := store.specs[p.ID]
		assert.Contains(t, spec, "length_mm")
		assert.Len(t, spec, 1)
	})
}
