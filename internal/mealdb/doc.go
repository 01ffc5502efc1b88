// Package mealdb provides the TheMealDB client used by the recipe browser.
//
// It searches recipes by keyword or by first letter, normalizes every match
// into a model.Recipe, and sweeps the alphabet to approximate a full listing.
// Keyword failures are classified (timeout, connection, request, unknown) so
// callers can report them; first-letter failures are logged and swallowed.
package mealdb
