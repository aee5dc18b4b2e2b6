package category

import (
	"context"

	"github.com/Naveenravi07/ecommerce-backend/internal/category/dto"
	"github.com/Naveenravi07/ecommerce-backend/internal/model"
)

type UseCase interface {
	CreateCategory(ctx context.Context, input *dto.CreateCategoryInput) (*model.Category, error)
	GetCategory(ctx context.Context, id int64) (*model.Category, error)
	ListCategories(ctx context.Context, filters *dto.CategoryFilters) (*dto.CategoryPage, error)
}
