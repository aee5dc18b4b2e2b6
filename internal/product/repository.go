package product

import (
	"context"

	"github.com/Naveenravi07/ecommerce-backend/internal/model"
	"github.com/Naveenravi07/ecommerce-backend/internal/product/dto"
)

type Repository interface {
	// WithTx runs fn inside one transaction. The transaction commits only when
	// fn returns nil; fn's error is returned unchanged.
	WithTx(ctx context.Context, fn func(ctx context.Context, tx TxRepository) error) error

	// Listing
	FindAll(ctx context.Context, filters *dto.ProductFilters) ([]model.ProductSummaryRow, int, error)
	FindImagesByProductIDs(ctx context.Context, productIDs []int64) ([]model.ProductImage, error)

	// Detail
	FindByID(ctx context.Context, id int64) (*model.ProductDetailRow, error)
	FindColorsByProductID(ctx context.Context, productID int64) ([]model.Color, error)
	FindImagesByColorIDs(ctx context.Context, colorIDs []int64) ([]model.Image, error)
	FindVariantsByColorIDs(ctx context.Context, colorIDs []int64) ([]model.Variant, error)

	SoftDelete(ctx context.Context, id int64) (bool, error)
}

// TxRepository holds the statements of the aggregate creation transaction.
// Insert methods return 0 when the store produced no identity.
type TxRepository interface {
	CategoryExists(ctx context.Context, categoryID int64) (bool, error)
	InsertProduct(ctx context.Context, p *model.Product) (int64, error)
	InsertColor(ctx context.Context, c *model.Color) (int64, error)
	InsertImage(ctx context.Context, img *model.Image) (int64, error)
	SetColorPrimaryImage(ctx context.Context, colorID, imageID int64) error
	InsertVariant(ctx context.Context, v *model.Variant) (int64, error)
	SetProductPrimaryVariant(ctx context.Context, productID, variantID int64) error
}
