package app

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Klue7/abc-erp-clean/internal/domain"
)

type memTiers struct {
	tiers []domain.PriceTier
}

func (r *memTiers) FindActive(_ context.Context) ([]domain.PriceTier, error) {
	var out []domain.PriceTier
	for _, t := range r.tiers {
		if t.Active {
			out = append(out, t)
		}
	}
	return out, nil
}

func (r *memTiers) CreateIfAbsent(_ context.Context, t *domain.PriceTier) error {
	for i := range r.tiers {
		if r.tiers[i].Code == t.Code {
			return nil
		}
	}
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	r.tiers = append(r.tiers, *t)
	return nil
}

func (r *memTiers) byCode(code string) *domain.PriceTier {
	for i := range r.tiers {
		if r.tiers[i].Code == code {
			return &r.tiers[i]
		}
	}
	return nil
}

func TestSeedDefaultTiers(t *testing.T) {
	ctx := context.Background()

	t.Run("CreatesStockTiers", func(t *testing.T) {
		repo := &memTiers{}
		require.NoError(t, seedDefaultTiers(ctx, repo))
		require.Len(t, repo.tiers, 4)

		retail := repo.byCode("RETAIL")
		require.NotNil(t, retail)
		assert.Equal(t, 0.40, retail.DefaultMarkup)
		assert.True(t, retail.Active)

		inhouse := repo.byCode("INHOUSE")
		require.NotNil(t, inhouse)
		assert.Equal(t, 0.10, inhouse.DefaultMarkup)
	})

	t.Run("StoredEditsSurviveReseed", func(t *testing.T) {
		repo := &memTiers{}
		require.NoError(t, seedDefaultTiers(ctx, repo))

		// Admin edits between import runs: a repriced retail tier and a
		// deactivated contractor tier.
		repo.byCode("RETAIL").DefaultMarkup = 0.25
		repo.byCode("CONTRACTOR").Active = false

		require.NoError(t, seedDefaultTiers(ctx, repo))
		require.Len(t, repo.tiers, 4, "reseeding never duplicates a tier")
		assert.Equal(t, 0.25, repo.byCode("RETAIL").DefaultMarkup)
		assert.False(t, repo.byCode("CONTRACTOR").Active)
	})
}
