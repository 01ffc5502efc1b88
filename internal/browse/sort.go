package browse

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/ytget/recipe-browser/internal/model"
)

// SortRecipes returns a copy of recipes ordered by name. Equal names keep
// their input order.
//
// SortCodepoint compares names as Go strings, which for UTF-8 is Unicode code
// point order: uppercase ASCII sorts before lowercase, so "Banana Bread"
// precedes "apple crumble". SortLocale uses the collation rules of lang.
// Unknown orders fall back to SortCodepoint.
func SortRecipes(recipes []model.Recipe, order model.SortOrder, lang language.Tag) []model.Recipe {
	sorted := make([]model.Recipe, len(recipes))
	copy(sorted, recipes)

	switch order {
	case model.SortLocale:
		c := collate.New(lang)
		sort.SliceStable(sorted, func(i, j int) bool {
			return c.CompareString(sorted[i].Name, sorted[j].Name) < 0
		})
	default:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Name < sorted[j].Name
		})
	}
	return sorted
}

// LanguageTag maps a UI language code to a collation tag. "system" and
// unparsable codes map to English.
func LanguageTag(code string) language.Tag {
	if code == "" || code == "system" {
		return language.English
	}
	tag, err := language.Parse(code)
	if err != nil {
		return language.English
	}
	return tag
}
