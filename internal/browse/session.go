package browse

import (
	"golang.org/x/text/language"

	"github.com/ytget/recipe-browser/internal/model"
)

// NoSelection is the selected index of a session with nothing selected.
const NoSelection = -1

// Session is the view-model for one finished query. It is created fresh for
// every query and is owned by the UI goroutine.
type Session struct {
	query    model.Query
	recipes  []model.Recipe
	selected int
}

// NewSession orders the query's recipes and starts with no selection.
func NewSession(query model.Query, order model.SortOrder, lang language.Tag) *Session {
	return &Session{
		query:    query,
		recipes:  SortRecipes(query.Recipes, order, lang),
		selected: NoSelection,
	}
}

// Query returns the query the session was built from.
func (s *Session) Query() model.Query { return s.query }

// Len returns the number of displayed recipes.
func (s *Session) Len() int { return len(s.recipes) }

// IsEmpty reports whether the query produced no recipes.
func (s *Session) IsEmpty() bool { return len(s.recipes) == 0 }

// Names returns the display names in list order.
func (s *Session) Names() []string {
	names := make([]string, len(s.recipes))
	for i, r := range s.recipes {
		names[i] = r.Name
	}
	return names
}

// At returns the recipe displayed at index i.
func (s *Session) At(i int) (model.Recipe, bool) {
	if i < 0 || i >= len(s.recipes) {
		return model.Recipe{}, false
	}
	return s.recipes[i], true
}

// Lookup returns the first displayed recipe named name.
func (s *Session) Lookup(name string) (model.Recipe, bool) {
	for _, r := range s.recipes {
		if r.Name == name {
			return r, true
		}
	}
	return model.Recipe{}, false
}

// Select marks index i as selected and returns its recipe. An out of range
// index clears the selection.
func (s *Session) Select(i int) (model.Recipe, bool) {
	r, ok := s.At(i)
	if !ok {
		s.selected = NoSelection
		return model.Recipe{}, false
	}
	s.selected = i
	return r, true
}

// ClearSelection drops the current selection.
func (s *Session) ClearSelection() {
	s.selected = NoSelection
}

// Selected returns the selected recipe, if any.
func (s *Session) Selected() (model.Recipe, bool) {
	return s.At(s.selected)
}

// SelectedIndex returns the selected index or NoSelection.
func (s *Session) SelectedIndex() int { return s.selected }
