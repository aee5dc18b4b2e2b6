package usecase

import (
	"context"

	"github.com/Naveenravi07/ecommerce-backend/internal/apperr"
	"github.com/Naveenravi07/ecommerce-backend/internal/model"
	"github.com/Naveenravi07/ecommerce-backend/internal/product/dto"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func (uc *productUseCase) GetProduct(ctx context.Context, id int64) (*dto.ProductDetail, error) {
	ctx, cancel := uc.withTimeout(ctx)
	defer cancel()

	row, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		uc.logger.Error("failed to get product", zap.Int64("product_id", id), zap.Error(err))
		return nil, err
	}
	if row == nil {
		return nil, apperr.NotFound(apperr.EntityProduct)
	}

	colors, err := uc.repo.FindColorsByProductID(ctx, id)
	if err != nil {
		uc.logger.Error("failed to get product colors", zap.Int64("product_id", id), zap.Error(err))
		return nil, err
	}

	var (
		images   []model.Image
		variants []model.Variant
	)
	if len(colors) > 0 {
		colorIDs := make([]int64, 0, len(colors))
		for _, c := range colors {
			colorIDs = append(colorIDs, c.ID)
		}

		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			var err error
			images, err = uc.repo.FindImagesByColorIDs(gctx, colorIDs)
			return err
		})
		g.Go(func() error {
			var err error
			variants, err = uc.repo.FindVariantsByColorIDs(gctx, colorIDs)
			return err
		})
		if err := g.Wait(); err != nil {
			uc.logger.Error("failed to get product children", zap.Int64("product_id", id), zap.Error(err))
			return nil, err
		}
	}

	return toDetail(row, colors, images, variants), nil
}

func toDetail(row *model.ProductDetailRow, colors []model.Color, images []model.Image, variants []model.Variant) *dto.ProductDetail {
	imagesByColor := make(map[int64][]dto.ImageOutput, len(colors))
	for _, img := range images {
		imagesByColor[img.ColorID] = append(imagesByColor[img.ColorID], dto.ImageOutput{ID: img.ID, URL: img.URL})
	}

	variantsByColor := make(map[int64][]dto.VariantOutput, len(colors))
	for i := range variants {
		v := &variants[i]
		if v.ColorID == nil {
			continue
		}
		var size *string
		if v.Size != nil {
			s := string(*v.Size)
			size = &s
		}
		variantsByColor[*v.ColorID] = append(variantsByColor[*v.ColorID], dto.VariantOutput{
			ID:         v.ID,
			Size:       size,
			Price:      v.Price.InexactFloat64(),
			OfferPrice: nullDecimalToFloat(v.OfferPrice),
			Stock:      v.Stock,
		})
	}

	out := make([]dto.ColorOutput, 0, len(colors))
	for _, c := range colors {
		imgs := imagesByColor[c.ID]
		if imgs == nil {
			imgs = []dto.ImageOutput{}
		}
		vars := variantsByColor[c.ID]
		if vars == nil {
			vars = []dto.VariantOutput{}
		}
		out = append(out, dto.ColorOutput{
			ID:             c.ID,
			Name:           c.Name,
			HexCode:        c.HexCode,
			PrimaryImageID: c.PrimaryImageID,
			Images:         imgs,
			Variants:       vars,
		})
	}

	details := map[string]string(row.ProductDetails)
	if details == nil {
		details = map[string]string{}
	}

	return &dto.ProductDetail{
		ID:               row.ID,
		Title:            row.Title,
		Description:      row.Description,
		ShippingFee:      row.ShippingFee,
		Featured:         row.Featured,
		ProductDetails:   details,
		Category:         dto.CategoryRef{ID: row.JoinedCategoryID, Name: row.CategoryName},
		PrimaryVariantID: row.PrimaryVariantID,
		Colors:           out,
		CreatedAt:        formatTime(row.CreatedAt),
		UpdatedAt:        formatTime(row.UpdatedAt),
	}
}
