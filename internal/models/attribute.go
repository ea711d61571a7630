package models

import "gorm.io/gorm"

// Size is a managed size attribute (e.g. "M", "32") offered on products.
type Size struct {
	ID         string `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name       string `json:"name" gorm:"uniqueIndex;type:varchar(100)" validate:"required,min=1,max=100"`
	gorm.Model        // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}

// Color is a managed color attribute with an optional hex code for swatches.
type Color struct {
	ID         string  `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name       string  `json:"name" gorm:"uniqueIndex;type:varchar(100)" validate:"required,min=1,max=100"`
	HexCode    *string `json:"hex_code,omitempty" gorm:"type:varchar(7)" validate:"omitempty,hexcolor"`
	gorm.Model         // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}

// Category is a managed category attribute with a URL slug.
type Category struct {
	ID         string `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name       string `json:"name" gorm:"uniqueIndex;type:varchar(200)" validate:"required,min=1,max=200"`
	Slug       string `json:"slug" gorm:"uniqueIndex;type:varchar(255)" validate:"required,min=1,max=255"`
	gorm.Model        // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}
