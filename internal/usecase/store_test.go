package usecase

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"github.com/Klue7/abc-erp-clean/internal/domain"
)

// memStore backs in-memory repo doubles so use case tests exercise the real
// upsert semantics without a database.
type memStore struct {
	suppliers  map[string]*domain.Supplier
	categories map[string]*domain.Category
	products   map[string]*domain.Product
	tiers      []domain.PriceTier
	costs      []*domain.CostVersion
	prices     map[string]*domain.PriceListEntry
	specs      map[uuid.UUID]map[string]any

	tierQueries int
}

func newMemStore() *memStore {
	return &memStore{
		suppliers:  map[string]*domain.Supplier{},
		categories: map[string]*domain.Category{},
		products:   map[string]*domain.Product{},
		prices:     map[string]*domain.PriceListEntry{},
		specs:      map[uuid.UUID]map[string]any{},
	}
}

func (m *memStore) uc() *ImportUC {
	return &ImportUC{
		Products: &memProducts{m},
		Tiers:    &memTiers{m},
		Costs:    &memCosts{m},
		Prices:   &memPrices{m},
		Specs:    &memSpecs{m},
	}
}

func (m *memStore) priceEntries() []domain.PriceListEntry {
	var out []domain.PriceListEntry
	for _, e := range m.prices {
		out = append(out, *e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Markup > out[j].Markup })
	return out
}

type memProducts struct{ s *memStore }

func (r *memProducts) UpsertSupplier(_ context.Context, name string) (*domain.Supplier, error) {
	if s, ok := r.s.suppliers[name]; ok {
		return s, nil
	}
	s := &domain.Supplier{ID: uuid.New(), Name: name}
	r.s.suppliers[name] = s
	return s, nil
}

func (r *memProducts) UpsertCategory(_ context.Context, name string) (*domain.Category, error) {
	if c, ok := r.s.categories[name]; ok {
		return c, nil
	}
	c := &domain.Category{ID: uuid.New(), Name: name}
	r.s.categories[name] = c
	return c, nil
}

func (r *memProducts) Upsert(_ context.Context, p *domain.Product) (*domain.Product, error) {
	if existing, ok := r.s.products[p.ItemCode]; ok {
		existing.Name = p.Name
		existing.SupplierID = p.SupplierID
		existing.CategoryID = p.CategoryID
		return existing, nil
	}
	p.ID = uuid.New()
	r.s.products[p.ItemCode] = p
	return p, nil
}

func (r *memProducts) FindByItemCode(_ context.Context, itemCode string) (*domain.Product, error) {
	if p, ok := r.s.products[itemCode]; ok {
		return p, nil
	}
	return nil, domain.ErrNotFound
}

type memTiers struct{ s *memStore }

func (r *memTiers) FindActive(_ context.Context) ([]domain.PriceTier, error) {
	r.s.tierQueries++
	var active []domain.PriceTier
	for _, t := range r.s.tiers {
		if t.Active {
			active = append(active, t)
		}
	}
	sort.Slice(active, func(i, j int) bool { return active[i].Code < active[j].Code })
	return active, nil
}

func (r *memTiers) CreateIfAbsent(_ context.Context, t *domain.PriceTier) error {
	for i := range r.s.tiers {
		if r.s.tiers[i].Code == t.Code {
			return nil
		}
	}
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	r.s.tiers = append(r.s.tiers, *t)
	return nil
}

type memCosts struct{ s *memStore }

func (r *memCosts) Create(_ context.Context, cv *domain.CostVersion) error {
	cv.ID = uuid.New()
	r.s.costs = append(r.s.costs, cv)
	return nil
}

type memPrices struct{ s *memStore }

func (r *memPrices) Upsert(_ context.Context, e *domain.PriceListEntry) error {
	key := e.CostVersionID.String() + "|" + e.TierID.String()
	if existing, ok := r.s.prices[key]; ok {
		existing.Markup = e.Markup
		existing.PriceExVat = e.PriceExVat
		existing.GpPct = e.GpPct
		return nil
	}
	e.ID = uuid.New()
	cp := *e
	r.s.prices[key] = &cp
	return nil
}

type memSpecs struct{ s *memStore }

func (r *memSpecs) FindValues(_ context.Context, productID uuid.UUID) (map[string]any, error) {
	if s, ok := r.s.specs[productID]; ok {
		return s, nil
	}
	return nil, domain.ErrNotFound
}

func (r *memSpecs) Create(_ context.Context, productID uuid.UUID, patch map[string]any) error {
	values := map[string]any{}
	for k, v := range patch {
		values[k] = v
	}
	r.s.specs[productID] = values
	return nil
}

func (r *memSpecs) Update(_ context.Context, productID uuid.UUID, patch map[string]any) error {
	values := r.s.specs[productID]
	for k, v := range patch {
		values[k] = v
	}
	return nil
}
