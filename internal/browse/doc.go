package browse

// Package browse owns the presentation state between the TheMealDB client and
// the UI: it runs queries in the background with progress and cancellation,
// orders results, and exposes each query's results as a Session view-model.
