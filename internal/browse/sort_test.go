package browse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"

	"github.com/ytget/recipe-browser/internal/model"
)

func names(recipes []model.Recipe) []string {
	out := make([]string, len(recipes))
	for i, r := range recipes {
		out[i] = r.Name
	}
	return out
}

func TestSortRecipesCodepoint(t *testing.T) {
	input := []model.Recipe{{Name: "Banana Bread"}, {Name: "Apple Pie"}, {Name: "apple crumble"}}

	got := SortRecipes(input, model.SortCodepoint, language.English)

	assert.Equal(t, []string{"Apple Pie", "Banana Bread", "apple crumble"}, names(got))
	assert.Equal(t, []string{"Banana Bread", "Apple Pie", "apple crumble"}, names(input), "input must not be reordered")
}

func TestSortRecipesLocale(t *testing.T) {
	input := []model.Recipe{{Name: "Banana Bread"}, {Name: "Apple Pie"}, {Name: "apple crumble"}}

	got := SortRecipes(input, model.SortLocale, language.English)

	assert.Equal(t, []string{"apple crumble", "Apple Pie", "Banana Bread"}, names(got))
}

func TestSortRecipesIsStable(t *testing.T) {
	input := []model.Recipe{
		{Name: "Soup", Category: "first"},
		{Name: "Bread"},
		{Name: "Soup", Category: "second"},
		{Name: "Soup", Category: "third"},
	}

	for _, order := range []model.SortOrder{model.SortCodepoint, model.SortLocale} {
		got := SortRecipes(input, order, language.English)
		assert.Equal(t, "Bread", got[0].Name)
		assert.Equal(t, []string{"first", "second", "third"},
			[]string{got[1].Category, got[2].Category, got[3].Category}, "order %s", order)
	}
}

func TestSortRecipesUnknownOrderFallsBack(t *testing.T) {
	input := []model.Recipe{{Name: "b"}, {Name: "B"}, {Name: "a"}}

	got := SortRecipes(input, model.SortOrder("bogus"), language.English)

	assert.Equal(t, []string{"B", "a", "b"}, names(got))
}

func TestSortRecipesEmpty(t *testing.T) {
	got := SortRecipes(nil, model.SortCodepoint, language.English)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestLanguageTag(t *testing.T) {
	assert.Equal(t, language.English, LanguageTag(""))
	assert.Equal(t, language.English, LanguageTag("system"))
	assert.Equal(t, language.English, LanguageTag("!!"))
	assert.Equal(t, "zh", LanguageTag("zh").String())
}
