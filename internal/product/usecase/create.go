package usecase

import (
	"context"
	"fmt"
	"sync"

	"github.com/Naveenravi07/ecommerce-backend/internal/apperr"
	"github.com/Naveenravi07/ecommerce-backend/internal/model"
	"github.com/Naveenravi07/ecommerce-backend/internal/product"
	"github.com/Naveenravi07/ecommerce-backend/internal/product/dto"
	"github.com/Naveenravi07/ecommerce-backend/internal/validation"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// primaryTracker records the single primary child of a parent row.
type primaryTracker struct {
	mu   sync.Mutex
	kind string
	id   int64
	set  bool
}

func (t *primaryTracker) mark(id int64) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.set {
		return apperr.InvalidAggregate("more than one primary " + t.kind)
	}
	t.id, t.set = id, true
	return nil
}

func (t *primaryTracker) primary() (int64, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.id, t.set
}

func (uc *productUseCase) CreateProduct(ctx context.Context, input *dto.CreateProductInput) (int64, error) {
	if err := validation.Struct(ctx, input); err != nil {
		return 0, err
	}
	if err := validatePrices(input); err != nil {
		return 0, err
	}

	ctx, cancel := uc.withTimeout(ctx)
	defer cancel()

	var productID int64
	err := uc.repo.WithTx(ctx, func(ctx context.Context, tx product.TxRepository) error {
		exists, err := tx.CategoryExists(ctx, input.CategoryID)
		if err != nil {
			return fmt.Errorf("check category: %w", err)
		}
		if !exists {
			return apperr.NotFound(apperr.EntityCategory)
		}

		id, err := tx.InsertProduct(ctx, &model.Product{
			Title:          input.Title,
			Description:    input.Description,
			CategoryID:     input.CategoryID,
			Featured:       input.Featured,
			ShippingFee:    input.ShippingFee,
			ProductDetails: model.Details(input.ProductDetails),
		})
		if err != nil {
			return fmt.Errorf("insert product: %w", err)
		}
		if id == 0 {
			return apperr.InvalidAggregate("product insert returned no id")
		}

		variants := &primaryTracker{kind: "variant"}
		for i := range input.Colors {
			if err := createColor(ctx, tx, id, &input.Colors[i], variants); err != nil {
				return err
			}
		}

		variantID, ok := variants.primary()
		if !ok {
			return apperr.InvalidAggregate("product has no primary variant")
		}
		if err := tx.SetProductPrimaryVariant(ctx, id, variantID); err != nil {
			return fmt.Errorf("set primary variant: %w", err)
		}

		productID = id
		return nil
	})
	if err != nil {
		if _, typed := apperr.As(err); typed {
			uc.logger.Warn("product rejected", zap.String("title", input.Title), zap.Error(err))
		} else {
			uc.logger.Error("failed to create product", zap.String("title", input.Title), zap.Error(err))
		}
		return 0, err
	}

	uc.logger.Info("product created", zap.Int64("product_id", productID), zap.Int("colors", len(input.Colors)))
	return productID, nil
}

func createColor(ctx context.Context, tx product.TxRepository, productID int64, in *dto.CreateColorInput, variants *primaryTracker) error {
	colorID, err := tx.InsertColor(ctx, &model.Color{
		ProductID: productID,
		Name:      in.Name,
		HexCode:   in.HexCode,
	})
	if err != nil {
		return fmt.Errorf("insert color %q: %w", in.Name, err)
	}
	if colorID == 0 {
		return apperr.InvalidAggregate(fmt.Sprintf("color %q insert returned no id", in.Name))
	}

	images := &primaryTracker{kind: fmt.Sprintf("image for color %q", in.Name)}
	for _, img := range in.Images {
		imageID, err := tx.InsertImage(ctx, &model.Image{ColorID: colorID, URL: img.URL})
		if err != nil {
			return fmt.Errorf("insert image: %w", err)
		}
		if imageID == 0 {
			return apperr.InvalidAggregate(fmt.Sprintf("image insert for color %q returned no id", in.Name))
		}
		if img.IsPrimary {
			if err := images.mark(imageID); err != nil {
				return err
			}
		}
	}

	imageID, ok := images.primary()
	if !ok {
		return apperr.InvalidAggregate(fmt.Sprintf("color %q has no primary image", in.Name))
	}
	if err := tx.SetColorPrimaryImage(ctx, colorID, imageID); err != nil {
		return fmt.Errorf("set primary image: %w", err)
	}

	for _, v := range in.Variants {
		// A missing offer price is stored as the base price.
		offer := v.OfferPrice
		if !offer.Valid {
			offer = v.Price
		}

		variantID, err := tx.InsertVariant(ctx, &model.Variant{
			ProductID:  productID,
			ColorID:    &colorID,
			Size:       v.Size,
			Price:      v.Price.Decimal,
			OfferPrice: offer,
			Stock:      v.Stock,
		})
		if err != nil {
			return fmt.Errorf("insert variant: %w", err)
		}
		if variantID == 0 {
			return apperr.InvalidAggregate(fmt.Sprintf("variant insert for color %q returned no id", in.Name))
		}
		if v.IsPrimary {
			if err := variants.mark(variantID); err != nil {
				return err
			}
		}
	}
	return nil
}

var maxPrice = decimal.New(1, 8)

// validatePrices enforces what numeric(10,2) can store without rounding.
func validatePrices(input *dto.CreateProductInput) error {
	for ci, c := range input.Colors {
		for vi, v := range c.Variants {
			field := fmt.Sprintf("colors[%d].variants[%d]", ci, vi)
			if !v.Price.Valid {
				return apperr.ValidationFailed("price is required", []validation.FieldError{
					{Field: field + ".price", Rule: "required"},
				})
			}
			if err := checkPrice(field+".price", v.Price.Decimal); err != nil {
				return err
			}
			if v.OfferPrice.Valid {
				if err := checkPrice(field+".offerPrice", v.OfferPrice.Decimal); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func checkPrice(field string, d decimal.Decimal) error {
	switch {
	case d.IsNegative():
		return apperr.ValidationFailed(field+" must not be negative", []validation.FieldError{
			{Field: field, Rule: "gte", Param: "0"},
		})
	case !d.Equal(d.Round(2)):
		return apperr.ValidationFailed(field+" must have at most 2 decimal places", []validation.FieldError{
			{Field: field, Rule: "scale", Param: "2"},
		})
	case d.GreaterThanOrEqual(maxPrice):
		return apperr.ValidationFailed(field+" is too large", []validation.FieldError{
			{Field: field, Rule: "lt", Param: maxPrice.String()},
		})
	}
	return nil
}
