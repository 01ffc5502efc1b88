package ui

import (
	"github.com/ytget/recipe-browser/internal/browse"
	"github.com/ytget/recipe-browser/internal/mealdb"
	"github.com/ytget/recipe-browser/internal/model"
)

// progressText describes a running query for the notification panel
func progressText(loc *Localization, q model.Query) string {
	if q.Kind != model.QueryKindAll {
		return loc.GetText(KeySearching)
	}
	if q.LettersDone == 0 {
		return loc.GetText(KeyFetchingAll)
	}
	return loc.Format(KeyFetchingLetter, q.Letter, q.LettersDone, model.LettersTotal)
}

// resultTitle is the heading shown above the recipe list
func resultTitle(loc *Localization, q model.Query) string {
	switch {
	case q.Kind == model.QueryKindAll && q.Status == model.QueryStatusCompleted:
		return loc.Format(KeyAllRecipes, len(q.Recipes))
	case q.Kind == model.QueryKindKeyword && q.Status == model.QueryStatusCompleted && len(q.Recipes) > 0:
		return loc.Format(KeySearchResultsFor, q.Term)
	default:
		return loc.GetText(KeySearchResults)
	}
}

// completionMessage returns the information dialog for a completed query
func completionMessage(loc *Localization, q model.Query) (title, message string) {
	if q.Kind == model.QueryKindAll {
		return loc.GetText(KeyLoadComplete), loc.Format(KeyLoadedAll, len(q.Recipes))
	}
	if len(q.Recipes) == 0 {
		return loc.GetText(KeySearchResult), loc.Format(KeyNoMatches, q.Term)
	}
	return loc.GetText(KeySearchComplete), loc.Format(KeyFoundMatches, len(q.Recipes))
}

// failureMessage returns the error dialog for a failed query
func failureMessage(loc *Localization, q model.Query) (title, message string) {
	if q.Kind == model.QueryKindAll && q.LastError == browse.ErrNoRecipes.Error() {
		return loc.GetText(KeyLoadFailed), loc.GetText(KeyNoRecipesFetched)
	}

	switch q.ErrorKind {
	case mealdb.KindTimeout.String():
		return loc.GetText(KeyTimeoutTitle), loc.GetText(KeyTimeoutMessage)
	case mealdb.KindConnection.String():
		return loc.GetText(KeyConnectionTitle), loc.GetText(KeyConnectionMessage)
	case mealdb.KindRequest.String():
		return loc.GetText(KeyRequestTitle), loc.Format(KeyRequestMessage, q.LastError)
	default:
		return loc.GetText(KeyUnknownTitle), loc.Format(KeyUnknownMessage, q.LastError)
	}
}
