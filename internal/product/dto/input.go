package dto

import (
	"github.com/Naveenravi07/ecommerce-backend/internal/model"
	"github.com/shopspring/decimal"
)

type CreateProductInput struct {
	Title          string             `json:"title" validate:"min=3,max=100"`
	Description    string             `json:"description" validate:"min=3,max=100"`
	CategoryID     int64              `json:"categoryId" validate:"required,gt=0"`
	Featured       bool               `json:"featured"`
	ShippingFee    int                `json:"shippingfee" validate:"gte=0"`
	ProductDetails map[string]string  `json:"productDetails"`
	Colors         []CreateColorInput `json:"colors" validate:"required,min=1,dive"`
}

type CreateColorInput struct {
	Name     string               `json:"name" validate:"min=1,max=50"`
	HexCode  *string              `json:"hexCode" validate:"omitempty,hexcolor,len=7"`
	Images   []CreateImageInput   `json:"images" validate:"required,min=1,dive"`
	Variants []CreateVariantInput `json:"variants" validate:"required,min=1,dive"`
}

type CreateImageInput struct {
	URL       string `json:"url" validate:"required,url"`
	IsPrimary bool   `json:"isPrimary"`
}

type CreateVariantInput struct {
	Size       *model.Size         `json:"size" validate:"omitempty,oneof=XS S M L XL XXL XXXL"`
	Price      decimal.NullDecimal `json:"price"`
	OfferPrice decimal.NullDecimal `json:"offerPrice"`
	Stock      int                 `json:"stock" validate:"gte=0"`
	IsPrimary  bool                `json:"isPrimary"`
}
