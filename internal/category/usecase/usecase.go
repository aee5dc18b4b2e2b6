package usecase

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/Naveenravi07/ecommerce-backend/internal/apperr"
	"github.com/Naveenravi07/ecommerce-backend/internal/category"
	"github.com/Naveenravi07/ecommerce-backend/internal/category/dto"
	"github.com/Naveenravi07/ecommerce-backend/internal/logger"
	"github.com/Naveenravi07/ecommerce-backend/internal/model"
	"github.com/Naveenravi07/ecommerce-backend/internal/validation"
	"go.uber.org/zap"
)

type categoryUseCase struct {
	repo   category.Repository
	logger logger.ZapLogger
}

func NewCategoryUseCase(repo category.Repository, log logger.ZapLogger) category.UseCase {
	return &categoryUseCase{
		repo:   repo,
		logger: log,
	}
}

// CreateCategory only accepts an existing parent, and categories are never
// re-parented, so the tree cannot contain cycles.
func (uc *categoryUseCase) CreateCategory(ctx context.Context, input *dto.CreateCategoryInput) (*model.Category, error) {
	input.Name = strings.TrimSpace(input.Name)
	if err := validation.Struct(ctx, input); err != nil {
		return nil, err
	}

	existing, err := uc.repo.FindByName(ctx, input.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperr.Conflict(fmt.Sprintf("category %q already exists", input.Name))
	}

	if input.ParentID != nil {
		parent, err := uc.repo.FindByID(ctx, *input.ParentID)
		if err != nil {
			return nil, err
		}
		if parent == nil {
			return nil, apperr.NotFound(apperr.EntityCategory)
		}
	}

	cat := &model.Category{
		Name:     input.Name,
		ParentID: input.ParentID,
	}
	if err := uc.repo.Create(ctx, cat); err != nil {
		if _, typed := apperr.As(err); !typed {
			uc.logger.Error("failed to create category", zap.String("name", input.Name), zap.Error(err))
		}
		return nil, err
	}

	uc.logger.Info("category created", zap.Int64("category_id", cat.ID), zap.String("name", cat.Name))
	return cat, nil
}

func (uc *categoryUseCase) GetCategory(ctx context.Context, id int64) (*model.Category, error) {
	cat, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if cat == nil {
		return nil, apperr.NotFound(apperr.EntityCategory)
	}
	return cat, nil
}

func (uc *categoryUseCase) ListCategories(ctx context.Context, filters *dto.CategoryFilters) (*dto.CategoryPage, error) {
	f := dto.CategoryFilters{}
	if filters != nil {
		f = *filters
	}
	if f.Page == 0 {
		f.Page = dto.DefaultPage
	}
	if f.PageSize == 0 {
		f.PageSize = dto.DefaultPageSize
	}
	if f.Page < 1 || f.PageSize < 1 || f.PageSize > dto.MaxPageSize {
		return nil, apperr.ValidationFailed(fmt.Sprintf("page must be at least 1 and pageSize between 1 and %d", dto.MaxPageSize), nil)
	}
	if f.Page > math.MaxInt/f.PageSize {
		return nil, apperr.ValidationFailed("page is out of range", nil)
	}

	items, total, err := uc.repo.FindAll(ctx, &f)
	if err != nil {
		return nil, err
	}
	return &dto.CategoryPage{
		Items:      items,
		TotalCount: total,
		Page:       f.Page,
		PageSize:   f.PageSize,
	}, nil
}
