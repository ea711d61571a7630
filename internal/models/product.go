package models

import "gorm.io/gorm"

// Gender buckets the storefront category pages browse by.
const (
	CategoryMen    = "men"
	CategoryWomen  = "women"
	CategoryUnisex = "unisex"
)

// Product represents one catalog entry in the store.
type Product struct {
	ID            string   `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name          string   `json:"name" validate:"required,min=3,max=200"`
	Description   string   `json:"description" validate:"omitempty,max=1000"`
	Price         float64  `json:"price" validate:"gte=0"`
	OriginalPrice *float64 `json:"original_price,omitempty" validate:"omitempty,gt=0"`
	Category      string   `json:"category" validate:"required,oneof=men women unisex"`
	Images        []string `json:"images" gorm:"serializer:json"`
	Sizes         []string `json:"sizes" gorm:"serializer:json" validate:"required,min=1"`
	Colors        []string `json:"colors" gorm:"serializer:json" validate:"required,min=1"`
	Tags          []string `json:"tags,omitempty" gorm:"serializer:json"`
	Material      string   `json:"material,omitempty" validate:"omitempty,max=200"`
	IsNew         bool     `json:"is_new"`
	IsFeatured    bool     `json:"is_featured"`
	Stock         int      `json:"stock" validate:"gte=0"`
	// Position is the product's slot in the curated catalog order. The "featured"
	// sort on the storefront is exactly this order.
	Position   int `json:"-" gorm:"index"`
	gorm.Model     // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}

// HasSize reports whether the product is offered in the given size.
func (p *Product) HasSize(size string) bool {
	for _, s := range p.Sizes {
		if s == size {
			return true
		}
	}
	return false
}

// HasColor reports whether the product is offered in the given color.
func (p *Product) HasColor(color string) bool {
	for _, c := range p.Colors {
		if c == color {
			return true
		}
	}
	return false
}

// MainImage returns the first product image, or an empty string when none exist.
func (p *Product) MainImage() string {
	if len(p.Images) == 0 {
		return ""
	}
	return p.Images[0]
}
