package product

import (
	"context"

	"github.com/Naveenravi07/ecommerce-backend/internal/product/dto"
)

type UseCase interface {
	CreateProduct(ctx context.Context, input *dto.CreateProductInput) (int64, error)
	ListProducts(ctx context.Context, filters *dto.ProductFilters) (*dto.ListProductsOutput, error)
	GetProduct(ctx context.Context, id int64) (*dto.ProductDetail, error)
	DeleteProduct(ctx context.Context, id int64) error
}
