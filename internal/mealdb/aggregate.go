package mealdb

import (
	"context"

	"go.uber.org/zap"

	"github.com/ytget/recipe-browser/internal/model"
)

// ProgressFunc is called after each letter of a sweep with the number of
// letters processed so far out of total.
type ProgressFunc func(letter rune, done, total int)

// Alphabet is the sequence of first letters requested by FetchAll.
const Alphabet = "abcdefghijklmnopqrstuvwxyz"

// FetchAll approximates the full catalogue by requesting every first letter
// in order, one request at a time. Recipes are merged by name: a later letter
// overwrites an earlier record with the same name but keeps its position, so
// the result order is stable for identical responses. Failing letters
// contribute nothing. Cancelling ctx aborts between letters and returns
// ctx.Err().
func (c *Client) FetchAll(ctx context.Context, progress ProgressFunc) ([]model.Recipe, error) {
	merged := newRecipeSet()
	total := len(Alphabet)

	for i, letter := range Alphabet {
		if err := ctx.Err(); err != nil {
			c.logger.Debug("sweep aborted", zap.Int("letters_done", i), zap.Error(err))
			return nil, err
		}

		recipes := c.SearchByFirstLetter(ctx, letter)
		for _, r := range recipes {
			merged.put(r)
		}

		if progress != nil {
			progress(letter, i+1, total)
		}
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	result := merged.values()
	c.logger.Info("sweep completed", zap.Int("recipes", len(result)))
	return result, nil
}

// recipeSet is a name-keyed set that remembers first insertion order.
type recipeSet struct {
	index   map[string]int
	recipes []model.Recipe
}

func newRecipeSet() *recipeSet {
	return &recipeSet{index: make(map[string]int)}
}

// put stores r, replacing any earlier recipe with the same name in place.
func (s *recipeSet) put(r model.Recipe) {
	if i, ok := s.index[r.Name]; ok {
		s.recipes[i] = r
		return
	}
	s.index[r.Name] = len(s.recipes)
	s.recipes = append(s.recipes, r)
}

func (s *recipeSet) values() []model.Recipe {
	out := make([]model.Recipe, len(s.recipes))
	copy(out, s.recipes)
	return out
}
