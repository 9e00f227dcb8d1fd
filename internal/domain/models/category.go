// internal/domain/models/category.go
package models

// Category is a top-level grouping shown in the catalog menu.
//
// ID is 1-based and doubles as the selection index used by the catalog
// view; 0 means "nothing selected".
type Category struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// CategoryGroup lists the subcategories that belong to one category, in
// display order. Category is the stable identifier (e.g. "design"), not the
// display name.
type CategoryGroup struct {
	Category      string   `json:"category"`
	Subcategories []string `json:"subcategories"`
}
