package browse

import (
	"context"
	"errors"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/ytget/recipe-browser/internal/mealdb"
	"github.com/ytget/recipe-browser/internal/model"
)

var (
	// ErrEmptyKeyword is returned by Search for a blank keyword.
	ErrEmptyKeyword = errors.New("keyword must not be empty")

	// ErrNoRecipes marks a sweep that produced no recipes at all.
	ErrNoRecipes = errors.New("no recipes could be fetched")

	// ErrNoQuery is returned by Cancel when nothing is running.
	ErrNoQuery = errors.New("no active query")
)

// Fetcher is the subset of the TheMealDB client the service drives.
type Fetcher interface {
	SearchByKeyword(ctx context.Context, query string) ([]model.Recipe, error)
	FetchAll(ctx context.Context, progress mealdb.ProgressFunc) ([]model.Recipe, error)
}

// Service runs recipe queries in the background. At most one query is in
// flight: starting a new one cancels the previous. Every state change is
// reported to the update callback as a copy of the query.
type Service struct {
	mu       sync.Mutex
	fetcher  Fetcher
	logger   *zap.Logger
	current  *model.Query
	cancel   context.CancelFunc
	onUpdate func(model.Query) // callback for UI updates
	wg       sync.WaitGroup
}

// NewService creates a query service backed by fetcher
func NewService(fetcher Fetcher, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		fetcher: fetcher,
		logger:  logger,
	}
}

// SetUpdateCallback sets the callback function for query updates
func (s *Service) SetUpdateCallback(callback func(model.Query)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onUpdate = callback
}

// SetFetcher replaces the fetcher used by subsequent queries
func (s *Service) SetFetcher(fetcher Fetcher) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fetcher = fetcher
}

// Search starts a keyword search
func (s *Service) Search(keyword string) (model.Query, error) {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return model.Query{}, ErrEmptyKeyword
	}

	q := model.NewQuery(model.QueryKindKeyword, keyword)
	return s.start(q, func(ctx context.Context, f Fetcher) ([]model.Recipe, error) {
		return f.SearchByKeyword(ctx, keyword)
	}), nil
}

// LoadAll starts the alphabet sweep
func (s *Service) LoadAll() model.Query {
	q := model.NewQuery(model.QueryKindAll, "")
	return s.start(q, func(ctx context.Context, f Fetcher) ([]model.Recipe, error) {
		return f.FetchAll(ctx, func(letter rune, done, total int) {
			s.updateProgress(q, letter, done)
		})
	})
}

// Current returns the most recent query, running or finished
func (s *Service) Current() (model.Query, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return model.Query{}, false
	}
	return *s.current, true
}

// Cancel stops the running query
func (s *Service) Cancel() error {
	s.mu.Lock()
	q := s.current
	if q == nil || !q.Status.IsActive() {
		s.mu.Unlock()
		return ErrNoQuery
	}
	snapshot := s.cancelLocked()
	callback := s.onUpdate
	s.mu.Unlock()

	s.logger.Info("query cancelled", zap.String("id", q.ID))
	notify(callback, snapshot)
	return nil
}

// Wait blocks until every started query goroutine has returned
func (s *Service) Wait() {
	s.wg.Wait()
}

// Close cancels the running query and waits for it to return
func (s *Service) Close() {
	_ = s.Cancel()
	s.Wait()
}

type fetchFunc func(ctx context.Context, f Fetcher) ([]model.Recipe, error)

// start supersedes the current query with q and runs fetch in the background
func (s *Service) start(q *model.Query, fetch fetchFunc) model.Query {
	ctx, cancel := context.WithCancel(context.Background())

	s.mu.Lock()
	var superseded *model.Query
	if s.current != nil && s.current.Status.IsActive() {
		prev := s.cancelLocked()
		superseded = &prev
	}
	q.Status = model.QueryStatusRunning
	s.current = q
	s.cancel = cancel
	fetcher := s.fetcher
	snapshot := *q
	callback := s.onUpdate
	s.wg.Add(1)
	s.mu.Unlock()

	if superseded != nil {
		s.logger.Info("query superseded", zap.String("id", superseded.ID), zap.String("by", q.ID))
		notify(callback, *superseded)
	}
	s.logger.Info("query started",
		zap.String("id", q.ID),
		zap.String("kind", string(q.Kind)),
		zap.String("term", q.Term))
	notify(callback, snapshot)

	go s.run(ctx, cancel, q, fetcher, fetch)
	return snapshot
}

// run executes fetch and records the outcome unless q was superseded or cancelled
func (s *Service) run(ctx context.Context, cancel context.CancelFunc, q *model.Query, fetcher Fetcher, fetch fetchFunc) {
	defer s.wg.Done()
	defer cancel()

	var recipes []model.Recipe
	var err error
	if fetcher == nil {
		err = errors.New("no recipe source configured")
	} else {
		recipes, err = fetch(ctx, fetcher)
	}

	s.mu.Lock()
	if s.current != q || q.Status.IsFinished() {
		s.mu.Unlock()
		s.logger.Debug("dropping result of finished query", zap.String("id", q.ID))
		return
	}

	switch {
	case ctx.Err() != nil || errors.Is(err, context.Canceled):
		q.Finish(model.QueryStatusCancelled)
	case err != nil:
		q.Recipes = []model.Recipe{}
		q.ErrorKind = mealdb.KindOf(err).String()
		q.LastError = err.Error()
		q.Finish(model.QueryStatusError)
	case q.Kind == model.QueryKindAll && len(recipes) == 0:
		q.Recipes = []model.Recipe{}
		q.LastError = ErrNoRecipes.Error()
		q.Finish(model.QueryStatusError)
	default:
		if recipes == nil {
			recipes = []model.Recipe{}
		}
		q.Recipes = recipes
		q.Finish(model.QueryStatusCompleted)
	}
	s.cancel = nil
	snapshot := *q
	callback := s.onUpdate
	s.mu.Unlock()

	fields := []zap.Field{
		zap.String("id", q.ID),
		zap.String("status", snapshot.Status.String()),
		zap.Int("recipes", len(snapshot.Recipes)),
		zap.Duration("elapsed", snapshot.Elapsed()),
	}
	if snapshot.Status == model.QueryStatusError {
		s.logger.Warn("query failed", append(fields, zap.String("kind", snapshot.ErrorKind), zap.String("error", snapshot.LastError))...)
	} else {
		s.logger.Info("query finished", fields...)
	}
	notify(callback, snapshot)
}

// updateProgress records sweep progress for q if it is still current
func (s *Service) updateProgress(q *model.Query, letter rune, done int) {
	s.mu.Lock()
	if s.current != q || !q.Status.IsActive() {
		s.mu.Unlock()
		return
	}
	q.SetLetterProgress(letter, done)
	snapshot := *q
	callback := s.onUpdate
	s.mu.Unlock()

	notify(callback, snapshot)
}

// cancelLocked marks the current query cancelled and returns a copy of it.
// s.mu must be held.
func (s *Service) cancelLocked() model.Query {
	q := s.current
	q.Finish(model.QueryStatusCancelled)
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	return *q
}

// notify calls the update callback if set
func notify(callback func(model.Query), q model.Query) {
	if callback != nil {
		callback(q)
	}
}
