package usecase

import (
	"context"
	"fmt"
	"math"

	"github.com/Naveenravi07/ecommerce-backend/internal/apperr"
	"github.com/Naveenravi07/ecommerce-backend/internal/model"
	"github.com/Naveenravi07/ecommerce-backend/internal/product/dto"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

func (uc *productUseCase) ListProducts(ctx context.Context, filters *dto.ProductFilters) (*dto.ListProductsOutput, error) {
	f, err := normalizeFilters(filters)
	if err != nil {
		return nil, err
	}

	ctx, cancel := uc.withTimeout(ctx)
	defer cancel()

	rows, total, err := uc.repo.FindAll(ctx, f)
	if err != nil {
		uc.logger.Error("failed to list products", zap.Error(err))
		return nil, err
	}

	ids := make([]int64, 0, len(rows))
	for _, r := range rows {
		ids = append(ids, r.ID)
	}

	images, err := uc.repo.FindImagesByProductIDs(ctx, ids)
	if err != nil {
		uc.logger.Error("failed to load listing images", zap.Int("products", len(ids)), zap.Error(err))
		return nil, err
	}

	imagesByProduct := make(map[int64][]dto.ImageOutput, len(ids))
	for _, img := range images {
		imagesByProduct[img.ProductID] = append(imagesByProduct[img.ProductID], dto.ImageOutput{ID: img.ImageID, URL: img.URL})
	}

	items := make([]dto.ProductListItem, 0, len(rows))
	for i := range rows {
		items = append(items, toListItem(&rows[i], imagesByProduct[rows[i].ID]))
	}

	return &dto.ListProductsOutput{
		Items:      items,
		Pagination: paginate(f.Page, f.Limit, total),
		Filters:    echoFilters(f),
	}, nil
}

// normalizeFilters applies defaults to zero values and rejects out of range
// paging or unknown sort orders.
func normalizeFilters(in *dto.ProductFilters) (*dto.ProductFilters, error) {
	f := dto.ProductFilters{}
	if in != nil {
		f = *in
	}
	if f.Page == 0 {
		f.Page = dto.DefaultPage
	}
	if f.Limit == 0 {
		f.Limit = dto.DefaultLimit
	}

	if f.Page < 1 {
		return nil, apperr.ValidationFailed("page must be at least 1", nil)
	}
	if f.Limit < 1 || f.Limit > dto.MaxLimit {
		return nil, apperr.ValidationFailed(fmt.Sprintf("limit must be between 1 and %d", dto.MaxLimit), nil)
	}
	if f.Page > math.MaxInt/f.Limit {
		return nil, apperr.ValidationFailed("page is out of range", nil)
	}
	if f.SortBy != nil && *f.SortBy != dto.SortPriceLow && *f.SortBy != dto.SortPriceHigh {
		return nil, apperr.ValidationFailed(fmt.Sprintf("unknown sortBy %q", *f.SortBy), nil)
	}
	return &f, nil
}

func paginate(page, limit, total int) dto.Pagination {
	return dto.Pagination{
		CurrentPage:  page,
		TotalPages:   (total + limit - 1) / limit,
		TotalItems:   total,
		ItemsPerPage: limit,
		HasNextPage:  page*limit < total,
		HasPrevPage:  page > 1,
	}
}

func echoFilters(f *dto.ProductFilters) dto.EchoedFilters {
	return dto.EchoedFilters{
		Search:     f.Search,
		Categories: f.Categories,
		PriceMin:   decimalPtrToFloat(f.PriceMin),
		PriceMax:   decimalPtrToFloat(f.PriceMax),
		SortBy:     f.SortBy,
	}
}

func toListItem(r *model.ProductSummaryRow, images []dto.ImageOutput) dto.ProductListItem {
	if images == nil {
		images = []dto.ImageOutput{}
	}

	price := 0.0
	switch {
	case r.OfferPrice.Valid:
		price = r.OfferPrice.Decimal.InexactFloat64()
	case r.Price.Valid:
		price = r.Price.Decimal.InexactFloat64()
	}

	return dto.ProductListItem{
		ID:             r.ID,
		Title:          r.Title,
		Description:    truncate(r.Description, descriptionPreviewLen),
		Price:          price,
		ShippingFee:    r.ShippingFee,
		Category:       dto.CategoryRef{ID: r.CategoryID, Name: r.CategoryName},
		Featured:       r.Featured,
		Stock:          r.Stock,
		Images:         images,
		PrimaryImageID: r.PrimaryImageID,
		OfferPrice:     nullDecimalToFloat(r.OfferPrice),
		CreatedAt:      formatTime(r.CreatedAt),
		UpdatedAt:      formatTime(r.UpdatedAt),
	}
}

func nullDecimalToFloat(d decimal.NullDecimal) *float64 {
	if !d.Valid {
		return nil
	}
	f := d.Decimal.InexactFloat64()
	return &f
}

func decimalPtrToFloat(d *decimal.Decimal) *float64 {
	if d == nil {
		return nil
	}
	f := d.InexactFloat64()
	return &f
}
