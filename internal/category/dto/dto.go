package dto

import "github.com/Naveenravi07/ecommerce-backend/internal/model"

const (
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100
)

type CategoryFilters struct {
	ParentID *int64 // Nil means ignore
	RootOnly bool   // Only categories without a parent; wins over ParentID
	Page     int
	PageSize int
}

// CategoryPage is one page of categories with the paging that produced it.
type CategoryPage struct {
	Items      []model.Category `json:"items"`
	TotalCount int              `json:"totalCount"`
	Page       int              `json:"page"`
	PageSize   int              `json:"pageSize"`
}
