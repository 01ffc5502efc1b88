package ui

import (
	"strings"

	"github.com/ytget/recipe-browser/internal/model"
)

// FormatDetail renders a recipe for the detail pane
func FormatDetail(recipe model.Recipe, loc *Localization) string {
	var b strings.Builder

	b.WriteString(loc.GetText(KeyRecipeName) + ": " + recipe.Name + "\n")
	b.WriteString(loc.GetText(KeyCategory) + ": " + recipe.Category + "\n\n")

	b.WriteString(loc.GetText(KeyIngredients) + ":\n")
	if recipe.HasIngredients() {
		for _, ingredient := range recipe.Ingredients {
			b.WriteString("- " + ingredient + "\n")
		}
	} else {
		b.WriteString("- " + loc.GetText(KeyNoIngredients) + "\n")
	}

	b.WriteString("\n" + loc.GetText(KeyInstructions) + ":\n")
	b.WriteString(recipe.Instructions)
	return b.String()
}
