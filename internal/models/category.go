package models

import "strings"

// Category is one of the fixed storefront sections a product belongs to.
type Category string

const (
	CategoryParfums  Category = "parfums"
	CategorySkincare Category = "skincare"
	CategoryMakeup   Category = "makeup"
	CategoryOthers   Category = "others"
)

// CategoryInfo is what the category picker renders.
type CategoryInfo struct {
	ID   Category `json:"id"`
	Name string   `json:"name"`
}

var categories = []CategoryInfo{
	{ID: CategoryParfums, Name: "Parfums"},
	{ID: CategorySkincare, Name: "Skin Care"},
	{ID: CategoryMakeup, Name: "Make Up"},
	{ID: CategoryOthers, Name: "Others"},
}

// Categories returns the categories in display order.
func Categories() []CategoryInfo {
	out := make([]CategoryInfo, len(categories))
	copy(out, categories)
	return out
}

// Valid reports whether c is a known category.
func (c Category) Valid() bool {
	for _, info := range categories {
		if info.ID == c {
			return true
		}
	}
	return false
}

// ParseCategory normalizes a slug and checks it against the known set.
func ParseCategory(value string) (Category, bool) {
	c := Category(strings.ToLower(strings.TrimSpace(value)))
	return c, c.Valid()
}
