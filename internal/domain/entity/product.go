package entity

import (
	"time"
)

// ProductCategory enumerates the farm-product categories in the catalog.
type ProductCategory string

const (
	ProductCategoryVegetable ProductCategory = "vegetable"
	ProductCategoryFruit     ProductCategory = "fruit"
	ProductCategoryGrain     ProductCategory = "grain"
	ProductCategoryDairy     ProductCategory = "dairy"
	ProductCategoryMeat      ProductCategory = "meat"
	ProductCategoryOther     ProductCategory = "other"
)

// Valid reports whether the category is one of the known product categories.
func (c ProductCategory) Valid() bool {
	switch c {
	case ProductCategoryVegetable, ProductCategoryFruit, ProductCategoryGrain,
		ProductCategoryDairy, ProductCategoryMeat, ProductCategoryOther:
		return true
	default:
		return false
	}
}

// Product is a global catalog entry. Products are not owned by any shop;
// shops attach their own prices through ShopProduct join rows.
type Product struct {
	ID        string          `json:"id"`         // Generated identifier, format "prod_<unix-ms>_<suffix>".
	Name      string          `json:"name"`       // Catalog name, e.g. "Roma Tomato".
	Category  ProductCategory `json:"category"`   // Farm-product category.
	Unit      string          `json:"unit"`       // Pricing unit, e.g. "kg", "dozen", "litre".
	IsActive  bool            `json:"is_active"`  // Inactive products are hidden from listings and comparisons.
	CreatedAt time.Time       `json:"created_at"` // Timestamp of creation.
	UpdatedAt time.Time       `json:"updated_at"` // Timestamp of the last modification.
}
