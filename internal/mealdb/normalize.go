package mealdb

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ytget/recipe-browser/internal/model"
)

// MaxIngredientSlots is the number of strIngredientN/strMeasureN pairs in the schema.
const MaxIngredientSlots = 20

// Placeholders used when the payload omits a field
const (
	PlaceholderName         = "Unknown Recipe"
	PlaceholderInstructions = "No detailed instructions."
	PlaceholderCategory     = "Unknown Category"
)

// Payload field names
const (
	fieldName          = "strMeal"
	fieldCategory      = "strCategory"
	fieldInstructions  = "strInstructions"
	fieldIngredientFmt = "strIngredient"
	fieldMeasureFmt    = "strMeasure"
)

// searchResponse is the body of search.php. Meals is nil when the API
// reports no matches with "meals": null or omits the field.
type searchResponse struct {
	Meals []map[string]any `json:"meals"`
}

// normalizeMeals converts every raw meal in order.
func normalizeMeals(meals []map[string]any) ([]model.Recipe, error) {
	recipes := make([]model.Recipe, 0, len(meals))
	for i, meal := range meals {
		recipe, err := normalizeMeal(meal)
		if err != nil {
			return nil, fmt.Errorf("meal %d: %w", i, err)
		}
		recipes = append(recipes, recipe)
	}
	return recipes, nil
}

// normalizeMeal maps one raw meal object into a Recipe.
func normalizeMeal(meal map[string]any) (model.Recipe, error) {
	name, err := stringField(meal, fieldName)
	if err != nil {
		return model.Recipe{}, err
	}
	category, err := stringField(meal, fieldCategory)
	if err != nil {
		return model.Recipe{}, err
	}
	instructions, err := stringField(meal, fieldInstructions)
	if err != nil {
		return model.Recipe{}, err
	}
	ingredients, err := collectIngredients(meal)
	if err != nil {
		return model.Recipe{}, err
	}

	return model.Recipe{
		Name:         withFallback(strings.TrimSpace(name), PlaceholderName),
		Ingredients:  ingredients,
		Instructions: withFallback(strings.ReplaceAll(instructions, "\r\n", "\n"), PlaceholderInstructions),
		Category:     withFallback(strings.TrimSpace(category), PlaceholderCategory),
	}, nil
}

// collectIngredients reads slots 1..MaxIngredientSlots and stops at the first
// absent or blank ingredient, even if later slots are filled.
func collectIngredients(meal map[string]any) ([]string, error) {
	ingredients := make([]string, 0, MaxIngredientSlots)
	for i := 1; i <= MaxIngredientSlots; i++ {
		suffix := strconv.Itoa(i)
		ingredient, err := stringField(meal, fieldIngredientFmt+suffix)
		if err != nil {
			return nil, err
		}
		ingredient = strings.TrimSpace(ingredient)
		if ingredient == "" {
			break
		}

		measure, err := stringField(meal, fieldMeasureFmt+suffix)
		if err != nil {
			return nil, err
		}
		measure = strings.TrimSpace(measure)
		if measure != "" {
			ingredients = append(ingredients, measure+" "+ingredient)
		} else {
			ingredients = append(ingredients, ingredient)
		}
	}
	return ingredients, nil
}

// stringField returns the string value of key. Missing keys and JSON null
// yield "". Any other JSON type is a schema violation.
func stringField(meal map[string]any, key string) (string, error) {
	raw, ok := meal[key]
	if !ok || raw == nil {
		return "", nil
	}
	s, ok := raw.(string)
	if !ok {
		return "", fmt.Errorf("field %s: expected string, got %T", key, raw)
	}
	return s, nil
}

func withFallback(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}
