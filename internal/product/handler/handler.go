package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/Naveenravi07/ecommerce-backend/internal/apperr"
	"github.com/Naveenravi07/ecommerce-backend/internal/logger"
	"github.com/Naveenravi07/ecommerce-backend/internal/product"
	"github.com/Naveenravi07/ecommerce-backend/internal/product/dto"
	"github.com/Naveenravi07/ecommerce-backend/internal/response"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type ProductHandler struct {
	uc     product.UseCase
	logger logger.ZapLogger
}

func NewProductHandler(uc product.UseCase, log logger.ZapLogger) *ProductHandler {
	return &ProductHandler{
		uc:     uc,
		logger: log,
	}
}

type productURI struct {
	ID int64 `uri:"id" binding:"required,gt=0"`
}

type listQuery struct {
	Page       int      `form:"page"`
	Limit      int      `form:"limit"`
	Search     *string  `form:"search"`
	PriceMin   *string  `form:"priceMin"`
	PriceMax   *string  `form:"priceMax"`
	Categories []string `form:"categories"`
	SortBy     *string  `form:"sortBy"`
}

// ListProducts handles GET /products/list.
func (h *ProductHandler) ListProducts(c *gin.Context) {
	var q listQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.badRequest(c, "malformed query string", err)
		return
	}

	filters, err := q.toFilters()
	if err != nil {
		h.fail(c, err)
		return
	}

	out, err := h.uc.ListProducts(c.Request.Context(), filters)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.OK(c, http.StatusOK, out)
}

// GetProduct handles GET /products/:id.
func (h *ProductHandler) GetProduct(c *gin.Context) {
	var uri productURI
	if err := c.ShouldBindUri(&uri); err != nil {
		h.badRequest(c, "invalid product id", err)
		return
	}

	detail, err := h.uc.GetProduct(c.Request.Context(), uri.ID)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.OK(c, http.StatusOK, detail)
}

// CreateProduct handles POST /admin/products/new.
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var input dto.CreateProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.badRequest(c, "malformed request body", err)
		return
	}

	id, err := h.uc.CreateProduct(c.Request.Context(), &input)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.OK(c, http.StatusCreated, gin.H{"id": id})
}

// DeleteProduct handles DELETE /admin/products/:id.
func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	var uri productURI
	if err := c.ShouldBindUri(&uri); err != nil {
		h.badRequest(c, "invalid product id", err)
		return
	}

	if err := h.uc.DeleteProduct(c.Request.Context(), uri.ID); err != nil {
		h.fail(c, err)
		return
	}
	response.OK(c, http.StatusOK, gin.H{"id": uri.ID})
}

func (h *ProductHandler) fail(c *gin.Context, err error) {
	if _, ok := apperr.As(err); !ok {
		h.logger.Error("product request failed", zap.String("path", c.Request.URL.Path), zap.Error(err))
	}
	response.Error(c, err)
}

// badRequest rejects input that could not be decoded. The decoder error is
// logged rather than returned.
func (h *ProductHandler) badRequest(c *gin.Context, message string, err error) {
	h.logger.Debug(message, zap.String("path", c.Request.URL.Path), zap.Error(err))
	response.Fail(c, http.StatusBadRequest, response.CodeBadRequest, message, nil)
}

func (q *listQuery) toFilters() (*dto.ProductFilters, error) {
	f := &dto.ProductFilters{Page: q.Page, Limit: q.Limit}

	if q.Search != nil && strings.TrimSpace(*q.Search) != "" {
		f.Search = q.Search
	}

	var err error
	if f.PriceMin, err = parsePrice("priceMin", q.PriceMin); err != nil {
		return nil, err
	}
	if f.PriceMax, err = parsePrice("priceMax", q.PriceMax); err != nil {
		return nil, err
	}

	// categories may be repeated, comma separated, or both.
	for _, raw := range q.Categories {
		for _, part := range strings.Split(raw, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			id, err := strconv.ParseInt(part, 10, 64)
			if err != nil {
				return nil, apperr.ValidationFailed("categories must be integer ids", map[string]string{"categories": raw})
			}
			f.Categories = append(f.Categories, id)
		}
	}

	if q.SortBy != nil && *q.SortBy != "" {
		s := dto.SortBy(*q.SortBy)
		f.SortBy = &s
	}
	return f, nil
}

func parsePrice(field string, raw *string) (*decimal.Decimal, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(*raw)
	if err != nil || d.IsNegative() {
		return nil, apperr.ValidationFailed(field+" must be a non-negative number", map[string]string{field: *raw})
	}
	return &d, nil
}
