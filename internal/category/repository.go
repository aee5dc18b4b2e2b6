package category

import (
	"context"

	"github.com/Naveenravi07/ecommerce-backend/internal/category/dto"
	"github.com/Naveenravi07/ecommerce-backend/internal/model"
)

type Repository interface {
	Create(ctx context.Context, category *model.Category) error
	FindByID(ctx context.Context, id int64) (*model.Category, error)
	FindByName(ctx context.Context, name string) (*model.Category, error)
	FindAll(ctx context.Context, filters *dto.CategoryFilters) ([]model.Category, int, error)
}
