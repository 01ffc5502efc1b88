package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// QueryKind distinguishes a keyword search from the alphabet sweep
type QueryKind string

const (
	QueryKindKeyword QueryKind = "keyword"
	QueryKindAll     QueryKind = "all"
)

// LettersTotal is the number of first-letter requests in one sweep
const LettersTotal = 26

// QueryIDPrefix prefixes generated query identifiers
const QueryIDPrefix = "query-"

// Query represents a single user-initiated fetch and its outcome
type Query struct {
	ID          string
	Kind        QueryKind
	Term        string      // keyword for keyword searches, empty for sweeps
	Status      QueryStatus
	Progress    float64 // 0.0 to 1.0
	Percent     int     // 0 to 100
	Letter      string  // last letter requested during a sweep
	LettersDone int
	Recipes     []Recipe
	ErrorKind   string // classification of LastError, e.g. "Timeout"
	LastError   string
	StartedAt   time.Time
	FinishedAt  time.Time
}

// NewQuery creates a pending query with a fresh identifier
func NewQuery(kind QueryKind, term string) *Query {
	return &Query{
		ID:        QueryIDPrefix + uuid.NewString(),
		Kind:      kind,
		Term:      strings.TrimSpace(term),
		Status:    QueryStatusPending,
		StartedAt: time.Now(),
	}
}

// SetLetterProgress records that done of LettersTotal letters were fetched
func (q *Query) SetLetterProgress(letter rune, done int) {
	if done < 0 {
		done = 0
	}
	if done > LettersTotal {
		done = LettersTotal
	}
	q.Letter = string(letter)
	q.LettersDone = done
	q.Progress = float64(done) / float64(LettersTotal)
	q.Percent = done * 100 / LettersTotal
}

// Finish moves the query into a finished state
func (q *Query) Finish(status QueryStatus) {
	q.Status = status
	q.FinishedAt = time.Now()
	if status == QueryStatusCompleted {
		q.Progress = 1.0
		q.Percent = 100
	}
}

// Elapsed returns how long the query ran, or has been running so far
func (q *Query) Elapsed() time.Duration {
	if q.FinishedAt.IsZero() {
		return time.Since(q.StartedAt)
	}
	return q.FinishedAt.Sub(q.StartedAt)
}

// GetDisplayTitle returns a short human readable description of the query
func (q *Query) GetDisplayTitle() string {
	switch q.Kind {
	case QueryKindKeyword:
		return fmt.Sprintf("'%s'", q.Term)
	case QueryKindAll:
		return fmt.Sprintf("all (%d)", len(q.Recipes))
	default:
		return q.ID
	}
}
