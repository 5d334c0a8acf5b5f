package models

import "github.com/shopspring/decimal"

// DefaultProductImage is shown for products without their own image.
const DefaultProductImage = "https://images.unsplash.com/photo-1611930022073-b7a4ba5fcccd?auto=format&fit=crop&q=80"

// Product is a purchasable catalog entry.
type Product struct {
	BaseModel
	Name        string          `gorm:"not null" json:"name"`
	Description string          `gorm:"type:text" json:"description"`
	Price       decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"price"`
	Category    Category        `gorm:"type:varchar(32);index;not null" json:"category"`
	ImageURL    string          `json:"image_url"`
	Stock       int             `gorm:"not null;default:0" json:"stock"`
}

// Image returns the product image or the storefront default.
func (p Product) Image() string {
	if p.ImageURL == "" {
		return DefaultProductImage
	}
	return p.ImageURL
}
