package inventory_test

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/techstore/inventario-api/internal/application/inventory"
	"github.com/techstore/inventario-api/internal/domain"
	"github.com/techstore/inventario-api/internal/domain/entity"
	"github.com/techstore/inventario-api/internal/domain/repository"
)

// fakeDB es el backend en memoria compartido por los repositorios falsos.
// Reproduce los contratos del gateway real (orden, soft delete, resolución
// de categoría) sin base de datos.
type fakeDB struct {
	products   []*entity.Product
	categories []*entity.Category
	movements  []*entity.Movement
	history    []*entity.PriceHistory
	nextID     int
}

func (db *fakeDB) genID(prefix string) string {
	db.nextID++
	return fmt.Sprintf("%s-%d", prefix, db.nextID)
}

func (db *fakeDB) categoryName(id string) string {
	for _, c := range db.categories {
		if c.ID == id {
			return c.Name
		}
	}
	return "Sin categoría"
}

// ── repositorios falsos ───────────────────────────────────────────────────────

type fakeProductRepo struct{ db *fakeDB }

var _ repository.ProductRepository = (*fakeProductRepo)(nil)

func (r *fakeProductRepo) Create(p *entity.Product) error {
	for _, existing := range r.db.products {
		if existing.Code == p.Code {
			return domain.ErrDuplicate
		}
	}
	cp := *p
	r.db.products = append(r.db.products, &cp)
	return nil
}

func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	for _, p := range r.db.products {
		if p.ID == id {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeProductRepo) GetByIDForUpdate(id string) (*entity.Product, error) {
	return r.GetByID(id)
}

func (r *fakeProductRepo) ListActive() ([]*entity.Product, error) {
	out := make([]*entity.Product, 0, len(r.db.products))
	for _, p := range r.db.products {
		cp := *p
		cp.Category = r.db.categoryName(p.CategoryID)
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *fakeProductRepo) ListActiveByCategory(categoryID string) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.db.products {
		if p.CategoryID == categoryID {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeProductRepo) Update(id string, fields repository.ProductUpdate) error {
	if fields.IsEmpty() {
		return domain.ErrEmptyUpdate
	}
	for _, p := range r.db.products {
		if p.ID != id {
			continue
		}
		if fields.Code != nil {
			p.Code = *fields.Code
		}
		if fields.Name != nil {
			p.Name = *fields.Name
		}
		if fields.CategoryID != nil {
			p.CategoryID = *fields.CategoryID
		}
		if fields.Quantity != nil {
			p.Quantity = *fields.Quantity
		}
		if fields.MinStock != nil {
			p.MinStock = *fields.MinStock
		}
		if fields.Cost != nil {
			p.Cost = *fields.Cost
		}
		if fields.Price != nil {
			p.Price = *fields.Price
		}
		if fields.Description != nil {
			p.Description = *fields.Description
		}
		return nil
	}
	return domain.ErrNotFound
}

func (r *fakeProductRepo) UpdateQuantity(id string, quantity int) error {
	for _, p := range r.db.products {
		if p.ID == id {
			p.Quantity = quantity
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *fakeProductRepo) UpdatePrice(id string, price decimal.Decimal) error {
	for _, p := range r.db.products {
		if p.ID == id {
			p.Price = price
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *fakeProductRepo) SoftDelete(id string) (string, error) {
	for i, p := range r.db.products {
		if p.ID == id {
			name := p.Name
			r.db.products = append(r.db.products[:i], r.db.products[i+1:]...)
			return name, nil
		}
	}
	return "", domain.ErrNotFound
}

type fakeCategoryRepo struct{ db *fakeDB }

var _ repository.CategoryRepository = (*fakeCategoryRepo)(nil)

func (r *fakeCategoryRepo) GetOrCreate(name string) (*entity.Category, error) {
	for _, c := range r.db.categories {
		if c.Name == name {
			return c, nil
		}
	}
	c := &entity.Category{ID: r.db.genID("cat"), Name: name}
	r.db.categories = append(r.db.categories, c)
	return c, nil
}

func (r *fakeCategoryRepo) GetByName(name string) (*entity.Category, error) {
	for _, c := range r.db.categories {
		if c.Name == name {
			return c, nil
		}
	}
	return nil, nil
}

func (r *fakeCategoryRepo) List() ([]*entity.Category, error) {
	out := make([]*entity.Category, len(r.db.categories))
	copy(out, r.db.categories)
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

type fakeMovementRepo struct{ db *fakeDB }

var _ repository.MovementRepository = (*fakeMovementRepo)(nil)

func (r *fakeMovementRepo) Create(m *entity.Movement) error {
	if m.ID == "" {
		m.ID = r.db.genID("mov")
	}
	cp := *m
	r.db.movements = append(r.db.movements, &cp)
	return nil
}

func (r *fakeMovementRepo) ListAll() ([]*entity.Movement, error) {
	out := make([]*entity.Movement, len(r.db.movements))
	copy(out, r.db.movements)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out, nil
}

func (r *fakeMovementRepo) DeleteAll() error {
	r.db.movements = nil
	return nil
}

type fakeHistoryRepo struct{ db *fakeDB }

var _ repository.PriceHistoryRepository = (*fakeHistoryRepo)(nil)

func (r *fakeHistoryRepo) Create(h *entity.PriceHistory) error {
	if h.ID == "" {
		h.ID = r.db.genID("hist")
	}
	cp := *h
	r.db.history = append(r.db.history, &cp)
	return nil
}

func (r *fakeHistoryRepo) ListAll() ([]*entity.PriceHistory, error) {
	out := make([]*entity.PriceHistory, len(r.db.history))
	copy(out, r.db.history)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out, nil
}

// fakeTxRunner ejecuta el callback directamente contra los repos en memoria.
type fakeTxRunner struct{ db *fakeDB }

var _ inventory.TxRunner = (*fakeTxRunner)(nil)

func (r *fakeTxRunner) Run(_ context.Context, fn func(
	productRepo repository.ProductRepository,
	categoryRepo repository.CategoryRepository,
	movementRepo repository.MovementRepository,
	historyRepo repository.PriceHistoryRepository,
) error) error {
	return fn(&fakeProductRepo{r.db}, &fakeCategoryRepo{r.db}, &fakeMovementRepo{r.db}, &fakeHistoryRepo{r.db})
}

// fakeProber devuelve un resultado fijo.
type fakeProber struct{ result inventory.ProbeResult }

var _ inventory.Prober = (*fakeProber)(nil)

func (p *fakeProber) Probe(context.Context) inventory.ProbeResult { return p.result }

// ── helpers ───────────────────────────────────────────────────────────────────

func seedProduct(db *fakeDB, code, name, category string, price, cost int64, quantity, minStock int) *entity.Product {
	cat, _ := (&fakeCategoryRepo{db}).GetOrCreate(category)
	p := &entity.Product{
		ID:         db.genID("prod"),
		Code:       code,
		Name:       name,
		CategoryID: cat.ID,
		Category:   category,
		Price:      decimal.NewFromInt(price),
		Cost:       decimal.NewFromInt(cost),
		Quantity:   quantity,
		MinStock:   minStock,
	}
	db.products = append(db.products, p)
	return p
}

func countCategories(db *fakeDB, name string) int {
	n := 0
	for _, c := range db.categories {
		if strings.EqualFold(c.Name, name) {
			n++
		}
	}
	return n
}
