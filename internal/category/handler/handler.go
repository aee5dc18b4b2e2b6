package handler

import (
	"net/http"

	"github.com/Naveenravi07/ecommerce-backend/internal/apperr"
	"github.com/Naveenravi07/ecommerce-backend/internal/category"
	"github.com/Naveenravi07/ecommerce-backend/internal/category/dto"
	"github.com/Naveenravi07/ecommerce-backend/internal/logger"
	"github.com/Naveenravi07/ecommerce-backend/internal/response"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type CategoryHandler struct {
	uc     category.UseCase
	logger logger.ZapLogger
}

func NewCategoryHandler(uc category.UseCase, log logger.ZapLogger) *CategoryHandler {
	return &CategoryHandler{
		uc:     uc,
		logger: log,
	}
}

type categoryURI struct {
	ID int64 `uri:"id" binding:"required,gt=0"`
}

type listQuery struct {
	ParentID *int64 `form:"parentId"`
	RootOnly bool   `form:"rootOnly"`
	Page     int    `form:"page"`
	PageSize int    `form:"pageSize"`
}

// CreateCategory handles POST /admin/categories/new.
func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var input dto.CreateCategoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.badRequest(c, "malformed request body", err)
		return
	}

	cat, err := h.uc.CreateCategory(c.Request.Context(), &input)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.OK(c, http.StatusCreated, cat)
}

// GetCategory handles GET /categories/:id.
func (h *CategoryHandler) GetCategory(c *gin.Context) {
	var uri categoryURI
	if err := c.ShouldBindUri(&uri); err != nil {
		h.badRequest(c, "invalid category id", err)
		return
	}

	cat, err := h.uc.GetCategory(c.Request.Context(), uri.ID)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.OK(c, http.StatusOK, cat)
}

// ListCategories handles GET /categories.
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	var q listQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.badRequest(c, "malformed query string", err)
		return
	}

	filters := &dto.CategoryFilters{
		ParentID: q.ParentID,
		RootOnly: q.RootOnly,
		Page:     q.Page,
		PageSize: q.PageSize,
	}
	page, err := h.uc.ListCategories(c.Request.Context(), filters)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.OK(c, http.StatusOK, page)
}

func (h *CategoryHandler) fail(c *gin.Context, err error) {
	if _, ok := apperr.As(err); !ok {
		h.logger.Error("category request failed", zap.String("path", c.Request.URL.Path), zap.Error(err))
	}
	response.Error(c, err)
}

func (h *CategoryHandler) badRequest(c *gin.Context, message string, err error) {
	h.logger.Debug(message, zap.String("path", c.Request.URL.Path), zap.Error(err))
	response.Fail(c, http.StatusBadRequest, response.CodeBadRequest, message, nil)
}
