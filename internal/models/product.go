package models

import (
	"time"

	"gorm.io/datatypes"
)

type ProductType string

const (
	ProductPhysical ProductType = "physical"
	ProductDigital  ProductType = "digital"
)

func ValidProductType(s string) bool {
	switch ProductType(s) {
	case ProductPhysical, ProductDigital:
		return true
	}
	return false
}

// Product merchandise portal. ID string ditentukan admin (bukan auto
// increment), duplikat ditolak di handler.
type Product struct {
	ID          string                      `gorm:"primaryKey;type:varchar(64)" json:"id"`
	Name        string                      `gorm:"not null" json:"name"`
	Description string                      `json:"description"`
	Price       int64                       `json:"price"`
	Images      datatypes.JSONSlice[string] `json:"images"`
	Category    string                      `gorm:"index" json:"category"`
	Stock       int                         `json:"stock"`
	Featured    bool                        `json:"featured"`
	ProductType ProductType                 `gorm:"type:varchar(20);default:'physical'" json:"productType"`

	// Platforms map nama marketplace eksternal -> URL lapak.
	Platforms datatypes.JSONMap `json:"platforms"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
