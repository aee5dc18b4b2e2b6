package dto

type CategoryRef struct {
	ID   *int64  `json:"id"`
	Name *string `json:"name"`
}

type ImageOutput struct {
	ID  int64  `json:"id"`
	URL string `json:"url"`
}

type ProductListItem struct {
	ID             int64         `json:"id"`
	Title          string        `json:"title"`
	Description    string        `json:"description"`
	Price          float64       `json:"price"`
	ShippingFee    int           `json:"shippingfee"`
	Category       CategoryRef   `json:"category"`
	Featured       bool          `json:"featured"`
	Stock          *int          `json:"stock"`
	Images         []ImageOutput `json:"images"`
	PrimaryImageID *int64        `json:"primaryImageId"`
	OfferPrice     *float64      `json:"offerPrice"`
	CreatedAt      string        `json:"createdAt"`
	UpdatedAt      string        `json:"updatedAt"`
}

type Pagination struct {
	CurrentPage  int  `json:"currentPage"`
	TotalPages   int  `json:"totalPages"`
	TotalItems   int  `json:"totalItems"`
	ItemsPerPage int  `json:"itemsPerPage"`
	HasNextPage  bool `json:"hasNextPage"`
	HasPrevPage  bool `json:"hasPrevPage"`
}

// EchoedFilters returns the filter inputs as given, null when absent.
type EchoedFilters struct {
	Search     *string  `json:"search"`
	Categories []int64  `json:"categories"`
	PriceMin   *float64 `json:"priceMin"`
	PriceMax   *float64 `json:"priceMax"`
	SortBy     *SortBy  `json:"sortBy"`
}

type ListProductsOutput struct {
	Items      []ProductListItem `json:"items"`
	Pagination Pagination        `json:"pagination"`
	Filters    EchoedFilters     `json:"filters"`
}

type VariantOutput struct {
	ID         int64    `json:"id"`
	Size       *string  `json:"size"`
	Price      float64  `json:"price"`
	OfferPrice *float64 `json:"offerPrice"`
	Stock      int      `json:"stock"`
}

type ColorOutput struct {
	ID             int64           `json:"id"`
	Name           string          `json:"name"`
	HexCode        *string         `json:"hexCode"`
	PrimaryImageID *int64          `json:"primaryImageId"`
	Images         []ImageOutput   `json:"images"`
	Variants       []VariantOutput `json:"variants"`
}

type ProductDetail struct {
	ID               int64             `json:"id"`
	Title            string            `json:"title"`
	Description      string            `json:"description"`
	ShippingFee      int               `json:"shippingfee"`
	Featured         bool              `json:"featured"`
	ProductDetails   map[string]string `json:"productDetails"`
	Category         CategoryRef       `json:"category"`
	PrimaryVariantID *int64            `json:"primaryVariantId"`
	Colors           []ColorOutput     `json:"colors"`
	CreatedAt        string            `json:"createdAt"`
	UpdatedAt        string            `json:"updatedAt"`
}
