package dto

import "github.com/shopspring/decimal"

type SortBy string

const (
	SortPriceLow  SortBy = "price-low"
	SortPriceHigh SortBy = "price-high"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 40
)

// ProductFilters is the listing input. Nil / empty fields are absent filters
// and never narrow the result set.
type ProductFilters struct {
	Page       int
	Limit      int
	Search     *string
	PriceMin   *decimal.Decimal
	PriceMax   *decimal.Decimal
	Categories []int64
	SortBy     *SortBy
}

func (f *ProductFilters) Offset() int {
	return (f.Page - 1) * f.Limit
}
