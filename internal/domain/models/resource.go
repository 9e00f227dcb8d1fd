package models

// Resource is a single catalog entry as stored in the static data asset.
//
// Records are decoded verbatim and treated as immutable once fetched.
// Category and Subcategory hold identifiers ("design", "colors"); display
// names come from the catalog lookup tables.
type Resource struct {
	Name        string `json:"name"`
	Category    string `json:"category"`
	Subcategory string `json:"subcategory"`

	Description string `json:"description,omitempty"` // may contain limited HTML
	URL         string `json:"url,omitempty"`
	Image       string `json:"image,omitempty"`
}
