package usecase

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/Naveenravi07/ecommerce-backend/internal/model"
	"github.com/Naveenravi07/ecommerce-backend/internal/product"
	"github.com/Naveenravi07/ecommerce-backend/internal/product/dto"
	"github.com/shopspring/decimal"
)

var baseTime = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

// memStore is the committed state of fakeRepo.
type memStore struct {
	nextID     int64
	categories map[int64]string
	products   []model.Product
	colors     []model.Color
	images     []model.Image
	variants   []model.Variant
}

func (s *memStore) clone() *memStore {
	c := &memStore{
		nextID:     s.nextID,
		categories: make(map[int64]string, len(s.categories)),
		products:   append([]model.Product(nil), s.products...),
		colors:     append([]model.Color(nil), s.colors...),
		images:     append([]model.Image(nil), s.images...),
		variants:   append([]model.Variant(nil), s.variants...),
	}
	for k, v := range s.categories {
		c.categories[k] = v
	}
	return c
}

func (s *memStore) id() int64 {
	s.nextID++
	return s.nextID
}

// fakeRepo is an in-memory product.Repository. Writes made inside WithTx are
// staged on a copy and only become visible when fn returns nil.
type fakeRepo struct {
	mu    sync.Mutex
	store *memStore

	// noIdentity makes the named insert report no id.
	noIdentity string
}

var _ product.Repository = (*fakeRepo)(nil)

func newFakeRepo(categories map[int64]string) *fakeRepo {
	return &fakeRepo{store: &memStore{nextID: 100, categories: categories}}
}

func (r *fakeRepo) WithTx(ctx context.Context, fn func(ctx context.Context, tx product.TxRepository) error) error {
	r.mu.Lock()
	staged := r.store.clone()
	r.mu.Unlock()

	if err := fn(ctx, &fakeTx{s: staged, noIdentity: r.noIdentity}); err != nil {
		return err
	}

	r.mu.Lock()
	r.store = staged
	r.mu.Unlock()
	return nil
}

func (r *fakeRepo) snapshot() *memStore {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.store
}

func (r *fakeRepo) FindAll(ctx context.Context, f *dto.ProductFilters) ([]model.ProductSummaryRow, int, error) {
	s := r.snapshot()

	var matched []model.Product
	for _, p := range s.products {
		if p.Deleted {
			continue
		}
		if f.Search != nil && *f.Search != "" {
			q := strings.ToLower(*f.Search)
			if !strings.Contains(strings.ToLower(p.Title), q) && !strings.Contains(strings.ToLower(p.Description), q) {
				continue
			}
		}
		if len(f.Categories) > 0 && !containsID(f.Categories, p.CategoryID) {
			continue
		}
		if (f.PriceMin != nil || f.PriceMax != nil) && !s.hasVariantInRange(p.ID, f.PriceMin, f.PriceMax) {
			continue
		}
		matched = append(matched, p)
	}

	rows := make([]model.ProductSummaryRow, 0, len(matched))
	for _, p := range matched {
		rows = append(rows, s.summary(p))
	}

	effective := func(r model.ProductSummaryRow) (decimal.Decimal, bool) {
		if r.OfferPrice.Valid {
			return r.OfferPrice.Decimal, true
		}
		return r.Price.Decimal, r.Price.Valid
	}
	sort.SliceStable(rows, func(i, j int) bool {
		if f.SortBy != nil {
			pi, oki := effective(rows[i])
			pj, okj := effective(rows[j])
			if oki != okj {
				return oki
			}
			if !pi.Equal(pj) {
				if *f.SortBy == dto.SortPriceHigh {
					return pi.GreaterThan(pj)
				}
				return pi.LessThan(pj)
			}
			return rows[i].ID < rows[j].ID
		}
		if !rows[i].CreatedAt.Equal(rows[j].CreatedAt) {
			return rows[i].CreatedAt.After(rows[j].CreatedAt)
		}
		return rows[i].ID > rows[j].ID
	})

	total := len(rows)
	start := f.Offset()
	if start > total {
		start = total
	}
	end := start + f.Limit
	if end > total {
		end = total
	}
	return rows[start:end], total, nil
}

func (s *memStore) hasVariantInRange(productID int64, lo, hi *decimal.Decimal) bool {
	for _, v := range s.variants {
		if v.ProductID != productID {
			continue
		}
		price := v.EffectivePrice()
		if lo != nil && price.LessThan(*lo) {
			continue
		}
		if hi != nil && price.GreaterThan(*hi) {
			continue
		}
		return true
	}
	return false
}

func (s *memStore) summary(p model.Product) model.ProductSummaryRow {
	row := model.ProductSummaryRow{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		ShippingFee: p.ShippingFee,
		Featured:    p.Featured,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
	if name, ok := s.categories[p.CategoryID]; ok {
		id := p.CategoryID
		row.CategoryID, row.CategoryName = &id, &name
	}
	if p.PrimaryVariantID != nil {
		for _, v := range s.variants {
			if v.ID != *p.PrimaryVariantID {
				continue
			}
			stock := v.Stock
			row.Price = decimal.NewNullDecimal(v.Price)
			row.OfferPrice = v.OfferPrice
			row.Stock = &stock
			for _, c := range s.colors {
				if v.ColorID != nil && c.ID == *v.ColorID {
					row.PrimaryImageID = c.PrimaryImageID
				}
			}
		}
	}
	return row
}

func (r *fakeRepo) FindImagesByProductIDs(ctx context.Context, productIDs []int64) ([]model.ProductImage, error) {
	s := r.snapshot()
	out := []model.ProductImage{}
	for _, c := range s.colors {
		if !containsID(productIDs, c.ProductID) {
			continue
		}
		for _, img := range s.images {
			if img.ColorID == c.ID {
				out = append(out, model.ProductImage{ProductID: c.ProductID, ImageID: img.ID, URL: img.URL})
			}
		}
	}
	return out, nil
}

func (r *fakeRepo) FindByID(ctx context.Context, id int64) (*model.ProductDetailRow, error) {
	s := r.snapshot()
	for _, p := range s.products {
		if p.ID != id || p.Deleted {
			continue
		}
		row := &model.ProductDetailRow{Product: p}
		if name, ok := s.categories[p.CategoryID]; ok {
			cid := p.CategoryID
			row.JoinedCategoryID, row.CategoryName = &cid, &name
		}
		return row, nil
	}
	return nil, nil
}

func (r *fakeRepo) FindColorsByProductID(ctx context.Context, productID int64) ([]model.Color, error) {
	out := []model.Color{}
	for _, c := range r.snapshot().colors {
		if c.ProductID == productID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *fakeRepo) FindImagesByColorIDs(ctx context.Context, colorIDs []int64) ([]model.Image, error) {
	out := []model.Image{}
	for _, img := range r.snapshot().images {
		if containsID(colorIDs, img.ColorID) {
			out = append(out, img)
		}
	}
	return out, nil
}

func (r *fakeRepo) FindVariantsByColorIDs(ctx context.Context, colorIDs []int64) ([]model.Variant, error) {
	out := []model.Variant{}
	for _, v := range r.snapshot().variants {
		if v.ColorID != nil && containsID(colorIDs, *v.ColorID) {
			out = append(out, v)
		}
	}
	return out, nil
}

func (r *fakeRepo) SoftDelete(ctx context.Context, id int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.store.products {
		p := &r.store.products[i]
		if p.ID == id && !p.Deleted {
			p.Deleted = true
			return true, nil
		}
	}
	return false, nil
}

type fakeTx struct {
	s          *memStore
	noIdentity string
}

func (t *fakeTx) CategoryExists(ctx context.Context, categoryID int64) (bool, error) {
	_, ok := t.s.categories[categoryID]
	return ok, nil
}

func (t *fakeTx) InsertProduct(ctx context.Context, p *model.Product) (int64, error) {
	if t.noIdentity == "product" {
		return 0, nil
	}
	row := *p
	row.ID = t.s.id()
	row.CreatedAt = baseTime.Add(time.Duration(row.ID) * time.Second)
	row.UpdatedAt = row.CreatedAt
	t.s.products = append(t.s.products, row)
	return row.ID, nil
}

func (t *fakeTx) InsertColor(ctx context.Context, c *model.Color) (int64, error) {
	if t.noIdentity == "color" {
		return 0, nil
	}
	row := *c
	row.ID = t.s.id()
	t.s.colors = append(t.s.colors, row)
	return row.ID, nil
}

func (t *fakeTx) InsertImage(ctx context.Context, img *model.Image) (int64, error) {
	if t.noIdentity == "image" {
		return 0, nil
	}
	row := *img
	row.ID = t.s.id()
	t.s.images = append(t.s.images, row)
	return row.ID, nil
}

func (t *fakeTx) SetColorPrimaryImage(ctx context.Context, colorID, imageID int64) error {
	for i := range t.s.colors {
		if t.s.colors[i].ID == colorID {
			id := imageID
			t.s.colors[i].PrimaryImageID = &id
		}
	}
	return nil
}

func (t *fakeTx) InsertVariant(ctx context.Context, v *model.Variant) (int64, error) {
	if t.noIdentity == "variant" {
		return 0, nil
	}
	row := *v
	row.ID = t.s.id()
	t.s.variants = append(t.s.variants, row)
	return row.ID, nil
}

func (t *fakeTx) SetProductPrimaryVariant(ctx context.Context, productID, variantID int64) error {
	for i := range t.s.products {
		if t.s.products[i].ID == productID {
			id := variantID
			t.s.products[i].PrimaryVariantID = &id
		}
	}
	return nil
}

func containsID(ids []int64, id int64) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
