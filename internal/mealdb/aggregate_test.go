package mealdb_test

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// letterServer serves canned bodies per first letter and counts requests.
type letterServer struct {
	mu     sync.Mutex
	bodies map[string]string
	fail   map[string]int
	calls  []string
}

func (s *letterServer) handle(w http.ResponseWriter, r *http.Request) {
	letter := r.URL.Query().Get("f")

	s.mu.Lock()
	s.calls = append(s.calls, letter)
	status, failing := s.fail[letter]
	body, ok := s.bodies[letter]
	s.mu.Unlock()

	if failing {
		w.WriteHeader(status)
		return
	}
	if !ok {
		body = `{"meals":null}`
	}
	_, _ = w.Write([]byte(body))
}

func (s *letterServer) callCount() int {
	return len(s.snapshot())
}

func (s *letterServer) snapshot() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.calls...)
}

func TestFetchAllQueriesEveryLetterInOrder(t *testing.T) {
	srv := &letterServer{}
	client := newTestClient(t, srv.handle)

	var progress []int
	recipes, err := client.FetchAll(context.Background(), func(letter rune, done, total int) {
		assert.Equal(t, 26, total)
		progress = append(progress, done)
	})
	require.NoError(t, err)
	assert.Empty(t, recipes)

	calls := srv.snapshot()
	require.Len(t, calls, 26)
	assert.Equal(t, "a", calls[0])
	assert.Equal(t, "z", calls[25])
	require.Len(t, progress, 26)
	assert.Equal(t, 1, progress[0])
	assert.Equal(t, 26, progress[25])
}

func TestFetchAllDeduplicatesByNameLastWriteWins(t *testing.T) {
	srv := &letterServer{bodies: map[string]string{
		"b": `{"meals":[{"strMeal":"Beef Stew","strCategory":"Beef"}]}`,
		"s": `{"meals":[{"strMeal":"Tomato Soup","strCategory":"Starter"},{"strMeal":"Shakshuka","strCategory":"Vegetarian"}]}`,
		"t": `{"meals":[{"strMeal":"Tomato Soup","strCategory":"Soup"}]}`,
	}}
	client := newTestClient(t, srv.handle)

	recipes, err := client.FetchAll(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, recipes, 3)

	names := make([]string, 0, len(recipes))
	var soup []string
	for _, r := range recipes {
		names = append(names, r.Name)
		if r.Name == "Tomato Soup" {
			soup = append(soup, r.Category)
		}
	}
	assert.Equal(t, []string{"Beef Stew", "Tomato Soup", "Shakshuka"}, names)
	assert.Equal(t, []string{"Soup"}, soup, "later letter must overwrite earlier record")
}

func TestFetchAllIsDeterministic(t *testing.T) {
	srv := &letterServer{bodies: map[string]string{
		"a": `{"meals":[{"strMeal":"Apam balik"},{"strMeal":"Apple Frangipan Tart"}]}`,
		"c": `{"meals":[{"strMeal":"Chicken Handi"},{"strMeal":"Apam balik"}]}`,
		"k": `{"meals":[{"strMeal":"Kumpir"}]}`,
	}}
	client := newTestClient(t, srv.handle)

	first, err := client.FetchAll(context.Background(), nil)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := client.FetchAll(context.Background(), nil)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestFetchAllSkipsFailingLetters(t *testing.T) {
	srv := &letterServer{
		bodies: map[string]string{
			"a": `{"meals":[{"strMeal":"Apam balik"}]}`,
			"b": `{"meals":[{"strMeal":"Bakewell tart"}]}`,
			"c": `{"meals":[{"strMeal":"Corba"}]}`,
		},
		fail: map[string]int{"b": http.StatusInternalServerError},
	}
	client := newTestClient(t, srv.handle)

	recipes, err := client.FetchAll(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, recipes, 2)
	assert.Equal(t, "Apam balik", recipes[0].Name)
	assert.Equal(t, "Corba", recipes[1].Name)
	assert.Equal(t, 26, srv.callCount(), "no retries and no early abort")
}

func TestFetchAllCancelled(t *testing.T) {
	srv := &letterServer{bodies: map[string]string{
		"a": `{"meals":[{"strMeal":"Apam balik"}]}`,
	}}
	client := newTestClient(t, srv.handle)

	ctx, cancel := context.WithCancel(context.Background())
	recipes, err := client.FetchAll(ctx, func(letter rune, done, total int) {
		if letter == 'c' {
			cancel()
		}
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
	assert.Nil(t, recipes)
	assert.Equal(t, 3, srv.callCount())
}
