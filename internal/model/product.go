package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	BaseModel
	Title            string  `db:"title"`
	Description      string  `db:"description"`
	CategoryID       int64   `db:"category_id"`
	Featured         bool    `db:"featured"`
	ShippingFee      int     `db:"shipping_fee"`
	Deleted          bool    `db:"deleted"`
	PrimaryVariantID *int64  `db:"primary_variant_id"` // Set once the variant row exists
	ProductDetails   Details `db:"product_details"`
}

type Color struct {
	ID             int64     `db:"id"`
	ProductID      int64     `db:"product_id"`
	Name           string    `db:"name"`
	HexCode        *string   `db:"hex_code"`
	PrimaryImageID *int64    `db:"primary_image_id"` // Set once the image row exists
	CreatedAt      time.Time `db:"created_at"`
}

type Image struct {
	ID      int64  `db:"id"`
	ColorID int64  `db:"color_id"`
	URL     string `db:"url"`
}

type Variant struct {
	ID         int64               `db:"id"`
	ProductID  int64               `db:"product_id"`
	ColorID    *int64              `db:"color_id"`
	Size       *Size               `db:"size"`
	Price      decimal.Decimal     `db:"price"`
	OfferPrice decimal.NullDecimal `db:"offer_price"`
	Stock      int                 `db:"stock"`
}

// EffectivePrice is the offer price when present, else the base price.
func (v *Variant) EffectivePrice() decimal.Decimal {
	if v.OfferPrice.Valid {
		return v.OfferPrice.Decimal
	}
	return v.Price
}

// ProductSummaryRow is one row of the listing page query: a product joined to
// its primary variant, that variant's color and the category.
type ProductSummaryRow struct {
	ID             int64               `db:"id"`
	Title          string              `db:"title"`
	Description    string              `db:"description"`
	ShippingFee    int                 `db:"shipping_fee"`
	Featured       bool                `db:"featured"`
	CreatedAt      time.Time           `db:"created_at"`
	UpdatedAt      time.Time           `db:"updated_at"`
	CategoryID     *int64              `db:"category_id"`
	CategoryName   *string             `db:"category_name"`
	Price          decimal.NullDecimal `db:"price"`
	OfferPrice     decimal.NullDecimal `db:"offer_price"`
	Stock          *int                `db:"stock"`
	PrimaryImageID *int64              `db:"primary_image_id"`
}

// ProductImage is an image tagged with the product owning its color.
type ProductImage struct {
	ProductID int64  `db:"product_id"`
	ImageID   int64  `db:"image_id"`
	URL       string `db:"url"`
}

// ProductDetailRow is a product joined to its category.
type ProductDetailRow struct {
	Product
	CategoryName *string `db:"category_name"`
	// JoinedCategoryID is null when the category row is missing.
	JoinedCategoryID *int64 `db:"joined_category_id"`
}
