package usecase

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/Naveenravi07/ecommerce-backend/internal/apperr"
	"github.com/Naveenravi07/ecommerce-backend/internal/category/dto"
	"github.com/Naveenravi07/ecommerce-backend/internal/logger"
	"github.com/Naveenravi07/ecommerce-backend/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockRepo struct {
	mock.Mock
}

func (m *mockRepo) Create(ctx context.Context, c *model.Category) error {
	args := m.Called(ctx, c)
	if args.Error(0) == nil {
		c.ID = 10
	}
	return args.Error(0)
}

func (m *mockRepo) FindByID(ctx context.Context, id int64) (*model.Category, error) {
	args := m.Called(ctx, id)
	if c := args.Get(0); c != nil {
		return c.(*model.Category), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRepo) FindByName(ctx context.Context, name string) (*model.Category, error) {
	args := m.Called(ctx, name)
	if c := args.Get(0); c != nil {
		return c.(*model.Category), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRepo) FindAll(ctx context.Context, f *dto.CategoryFilters) ([]model.Category, int, error) {
	args := m.Called(ctx, f)
	return args.Get(0).([]model.Category), args.Int(1), args.Error(2)
}

func int64Ptr(v int64) *int64 { return &v }

func TestCreateCategory(t *testing.T) {
	repo := new(mockRepo)
	uc := NewCategoryUseCase(repo, logger.NewNop())

	repo.On("FindByName", mock.Anything, "Shirts").Return(nil, nil)
	repo.On("FindByID", mock.Anything, int64(1)).Return(&model.Category{BaseModel: model.BaseModel{ID: 1}, Name: "Apparel"}, nil)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(c *model.Category) bool {
		return c.Name == "Shirts" && c.ParentID != nil && *c.ParentID == 1
	})).Return(nil)

	cat, err := uc.CreateCategory(context.Background(), &dto.CreateCategoryInput{Name: "  Shirts ", ParentID: int64Ptr(1)})
	require.NoError(t, err)
	assert.Equal(t, int64(10), cat.ID)
	assert.Equal(t, "Shirts", cat.Name)
	repo.AssertExpectations(t)
}

func TestCreateCategory_DuplicateName(t *testing.T) {
	repo := new(mockRepo)
	uc := NewCategoryUseCase(repo, logger.NewNop())
	repo.On("FindByName", mock.Anything, "Shirts").Return(&model.Category{Name: "Shirts"}, nil)

	_, err := uc.CreateCategory(context.Background(), &dto.CreateCategoryInput{Name: "Shirts"})
	assert.True(t, apperr.IsKind(err, apperr.KindConflict))
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateCategory_MissingParent(t *testing.T) {
	repo := new(mockRepo)
	uc := NewCategoryUseCase(repo, logger.NewNop())
	repo.On("FindByName", mock.Anything, "Shirts").Return(nil, nil)
	repo.On("FindByID", mock.Anything, int64(99)).Return(nil, nil)

	_, err := uc.CreateCategory(context.Background(), &dto.CreateCategoryInput{Name: "Shirts", ParentID: int64Ptr(99)})
	assert.True(t, apperr.IsNotFound(err, apperr.EntityCategory))
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateCategory_EmptyName(t *testing.T) {
	repo := new(mockRepo)
	uc := NewCategoryUseCase(repo, logger.NewNop())

	_, err := uc.CreateCategory(context.Background(), &dto.CreateCategoryInput{Name: "   "})
	assert.True(t, apperr.IsKind(err, apperr.KindValidationFailed))
}

func TestGetCategory(t *testing.T) {
	repo := new(mockRepo)
	uc := NewCategoryUseCase(repo, logger.NewNop())
	repo.On("FindByID", mock.Anything, int64(1)).Return(&model.Category{Name: "Shirts"}, nil)
	repo.On("FindByID", mock.Anything, int64(2)).Return(nil, nil)
	repo.On("FindByID", mock.Anything, int64(3)).Return(nil, errors.New("db down"))

	cat, err := uc.GetCategory(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Shirts", cat.Name)

	_, err = uc.GetCategory(context.Background(), 2)
	assert.True(t, apperr.IsNotFound(err, apperr.EntityCategory))

	_, err = uc.GetCategory(context.Background(), 3)
	assert.EqualError(t, err, "db down")
}

func TestListCategories_Defaults(t *testing.T) {
	repo := new(mockRepo)
	uc := NewCategoryUseCase(repo, logger.NewNop())
	repo.On("FindAll", mock.Anything, &dto.CategoryFilters{RootOnly: true, Page: 1, PageSize: dto.DefaultPageSize}).
		Return([]model.Category{{Name: "Apparel"}}, 1, nil)

	page, err := uc.ListCategories(context.Background(), &dto.CategoryFilters{RootOnly: true})
	require.NoError(t, err)
	assert.Len(t, page.Items, 1)
	assert.Equal(t, 1, page.TotalCount)
	assert.Equal(t, dto.DefaultPage, page.Page)
	assert.Equal(t, dto.DefaultPageSize, page.PageSize)

	_, err = uc.ListCategories(context.Background(), &dto.CategoryFilters{PageSize: dto.MaxPageSize + 1})
	assert.True(t, apperr.IsKind(err, apperr.KindValidationFailed))
}

func TestListCategories_RejectsUnaddressablePage(t *testing.T) {
	repo := new(mockRepo)
	uc := NewCategoryUseCase(repo, logger.NewNop())

	for _, f := range []*dto.CategoryFilters{
		{Page: 1 << 62, PageSize: 10},
		{Page: math.MaxInt/dto.DefaultPageSize + 1},
	} {
		_, err := uc.ListCategories(context.Background(), f)
		assert.True(t, apperr.IsKind(err, apperr.KindValidationFailed))
	}
	repo.AssertNotCalled(t, "FindAll", mock.Anything, mock.Anything)

	last := math.MaxInt / 10
	repo.On("FindAll", mock.Anything, &dto.CategoryFilters{Page: last, PageSize: 10}).
		Return([]model.Category{}, 3, nil)
	page, err := uc.ListCategories(context.Background(), &dto.CategoryFilters{Page: last, PageSize: 10})
	require.NoError(t, err)
	assert.Empty(t, page.Items)
	assert.Equal(t, last, page.Page)
}
