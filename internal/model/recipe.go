package model

// Recipe is a normalized TheMealDB entry. Name is the identity used for
// deduplication and ordering.
type Recipe struct {
	Name         string   `json:"name"`
	Ingredients  []string `json:"ingredients"`
	Instructions string   `json:"instructions"`
	Category     string   `json:"category"`
}

// HasIngredients reports whether at least one ingredient line is present
func (r Recipe) HasIngredients() bool {
	return len(r.Ingredients) > 0
}

// SortOrder selects how recipe names are ordered for display
type SortOrder string

const (
	// SortCodepoint compares names by Unicode code point (case-sensitive)
	SortCodepoint SortOrder = "codepoint"

	// SortLocale compares names with the collation of the UI language
	SortLocale SortOrder = "locale"
)

// String returns the string representation of SortOrder
func (o SortOrder) String() string {
	return string(o)
}

// IsValid reports whether o is a known sort order
func (o SortOrder) IsValid() bool {
	return o == SortCodepoint || o == SortLocale
}
