package mealdb_test

import (
	"context"
	"errors"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/recipe-browser/internal/mealdb"
)

const chickenHandi = `{"meals":[{"idMeal":"52795","strMeal":"Chicken Handi","strCategory":"Chicken",
"strInstructions":"Take a large pot.\r\nAdd the onions.",
"strIngredient1":"Chicken","strMeasure1":"1.2 kg",
"strIngredient2":"Onion","strMeasure2":"5 thinly sliced",
"strIngredient3":"","strMeasure3":"",
"strIngredient4":"Tomatoes","strMeasure4":"2"}]}`

func newTestClient(t *testing.T, handler http.HandlerFunc, opts ...mealdb.Option) *mealdb.Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := mealdb.New(server.URL, opts...)
	require.NoError(t, err)
	return client
}

func TestNewDefaults(t *testing.T) {
	client, err := mealdb.New("")
	require.NoError(t, err)
	assert.Equal(t, mealdb.DefaultBaseURL, client.BaseURL())
	assert.Equal(t, mealdb.DefaultTimeout, client.Timeout())
}

func TestNewTrimsTrailingSlash(t *testing.T) {
	client, err := mealdb.New("https://example.com/api/", mealdb.WithTimeout(3*time.Second))
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/api", client.BaseURL())
	assert.Equal(t, 3*time.Second, client.Timeout())
}

func TestNewRejectsUnsupportedScheme(t *testing.T) {
	_, err := mealdb.New("ftp://example.com")
	require.Error(t, err)
}

func TestSearchByKeywordSuccess(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search.php", r.URL.Path)
		assert.Equal(t, "arrabiata", r.URL.Query().Get("s"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(chickenHandi))
	})

	recipes, err := client.SearchByKeyword(context.Background(), "arrabiata")
	require.NoError(t, err)
	require.Len(t, recipes, 1)
	assert.Equal(t, "Chicken Handi", recipes[0].Name)
	assert.Equal(t, []string{"1.2 kg Chicken", "5 thinly sliced Onion"}, recipes[0].Ingredients)
	assert.Equal(t, "Take a large pot.\nAdd the onions.", recipes[0].Instructions)
	assert.Equal(t, "Chicken", recipes[0].Category)
}

func TestSearchByKeywordEncodesQuery(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "tomato soup&x=1", r.URL.Query().Get("s"))
		_, _ = w.Write([]byte(`{"meals":null}`))
	})

	_, err := client.SearchByKeyword(context.Background(), "  tomato soup&x=1 ")
	require.NoError(t, err)
}

func TestSearchByKeywordReturnsEveryMatch(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"meals":[{"strMeal":"A"},{"strMeal":"B"},{"strMeal":""}]}`))
	})

	recipes, err := client.SearchByKeyword(context.Background(), "x")
	require.NoError(t, err)
	require.Len(t, recipes, 3)
	for _, r := range recipes {
		assert.NotEmpty(t, r.Name)
	}
	assert.Equal(t, mealdb.PlaceholderName, recipes[2].Name)
}

func TestSearchByKeywordNoMatches(t *testing.T) {
	bodies := map[string]string{
		"null meals":   `{"meals":null}`,
		"absent meals": `{}`,
		"empty meals":  `{"meals":[]}`,
	}
	for name, body := range bodies {
		t.Run(name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(body))
			})

			recipes, err := client.SearchByKeyword(context.Background(), "zzz")
			require.NoError(t, err)
			assert.NotNil(t, recipes)
			assert.Empty(t, recipes)
		})
	}
}

func TestSearchByKeywordEmptyQuery(t *testing.T) {
	called := false
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	recipes, err := client.SearchByKeyword(context.Background(), "   ")
	require.Error(t, err)
	assert.True(t, errors.Is(err, mealdb.ErrEmptyQuery))
	assert.Equal(t, mealdb.KindRequest, mealdb.KindOf(err))
	assert.Empty(t, recipes)
	assert.False(t, called, "no request expected for a blank query")
}

func TestSearchByKeywordHTTPError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"boom"}`))
	})

	recipes, err := client.SearchByKeyword(context.Background(), "fail")
	require.Error(t, err)
	assert.Empty(t, recipes)
	assert.Equal(t, mealdb.KindRequest, mealdb.KindOf(err))

	var statusErr *mealdb.StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusInternalServerError, statusErr.StatusCode)
}

func TestSearchByKeywordMalformedBody(t *testing.T) {
	bodies := map[string]string{
		"not json":      `<html>oops</html>`,
		"empty body":    ``,
		"meals string":  `{"meals":"Invalid"}`,
		"truncated obj": `{"meals":[{"strMeal":"A"`,
		"trailing data": `{"meals":[{"strMeal":"A"}]} trailing garbage`,
		"two documents": `{"meals":null}{"meals":null}`,
	}
	for name, body := range bodies {
		t.Run(name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(body))
			})

			recipes, err := client.SearchByKeyword(context.Background(), "x")
			require.Error(t, err)
			assert.Empty(t, recipes)
			assert.Equal(t, mealdb.KindRequest, mealdb.KindOf(err))
		})
	}
}

func TestSearchByKeywordUnexpectedFieldType(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"meals":[{"strMeal":"A","strCategory":7}]}`))
	})

	_, err := client.SearchByKeyword(context.Background(), "x")
	require.Error(t, err)
	assert.Equal(t, mealdb.KindUnknown, mealdb.KindOf(err))
}

func TestSearchByKeywordTimeout(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}, mealdb.WithTimeout(50*time.Millisecond))

	recipes, err := client.SearchByKeyword(context.Background(), "slow")
	require.Error(t, err)
	assert.Empty(t, recipes)
	assert.Equal(t, mealdb.KindTimeout, mealdb.KindOf(err))
	assert.Equal(t, "Timeout", mealdb.KindOf(err).String())
}

func TestSearchByKeywordConnectionError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	addr := server.URL
	server.Close()

	client, err := mealdb.New(addr, mealdb.WithTimeout(2*time.Second))
	require.NoError(t, err)

	recipes, err := client.SearchByKeyword(context.Background(), "offline")
	require.Error(t, err)
	assert.Empty(t, recipes)
	assert.Equal(t, mealdb.KindConnection, mealdb.KindOf(err))
}

func TestSearchByKeywordTrailingWhitespaceAccepted(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("{\"meals\":[{\"strMeal\":\"A\"}]}\n\n"))
	})

	recipes, err := client.SearchByKeyword(context.Background(), "a")
	require.NoError(t, err)
	require.Len(t, recipes, 1)
	assert.Equal(t, "A", recipes[0].Name)
}

func TestSearchByKeywordUntrustedCertificate(t *testing.T) {
	server := httptest.NewUnstartedServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"meals":null}`))
	}))
	server.Config.ErrorLog = log.New(io.Discard, "", 0)
	server.StartTLS()
	t.Cleanup(server.Close)

	// The default transport does not trust the test server's certificate
	client, err := mealdb.New(server.URL, mealdb.WithTimeout(2*time.Second))
	require.NoError(t, err)

	recipes, err := client.SearchByKeyword(context.Background(), "secure")
	require.Error(t, err)
	assert.Empty(t, recipes)
	assert.Equal(t, mealdb.KindConnection, mealdb.KindOf(err))
	assert.Equal(t, "ConnectionError", mealdb.KindOf(err).String())
}

func TestSearchByKeywordTrustedCertificate(t *testing.T) {
	server := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(chickenHandi))
	}))
	t.Cleanup(server.Close)

	client, err := mealdb.New(server.URL, mealdb.WithHTTPClient(server.Client()))
	require.NoError(t, err)

	recipes, err := client.SearchByKeyword(context.Background(), "chicken")
	require.NoError(t, err)
	require.Len(t, recipes, 1)
}

func TestSearchByKeywordCancelled(t *testing.T) {
	started := make(chan struct{})
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		close(started)
		<-r.Context().Done()
	})

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		<-started
		cancel()
	}()

	_, err := client.SearchByKeyword(ctx, "slow")
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
	assert.Equal(t, mealdb.KindUnknown, mealdb.KindOf(err), "cancellation is not a classified failure")
}

func TestSearchByFirstLetter(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "c", r.URL.Query().Get("f"))
		_, _ = w.Write([]byte(chickenHandi))
	})

	recipes := client.SearchByFirstLetter(context.Background(), 'C')
	require.Len(t, recipes, 1)
	assert.Equal(t, "Chicken Handi", recipes[0].Name)
}

func TestSearchByFirstLetterSwallowsFailures(t *testing.T) {
	handlers := map[string]http.HandlerFunc{
		"server error": func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		},
		"bad json": func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`nope`))
		},
		"timeout": func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-r.Context().Done():
			case <-time.After(2 * time.Second):
			}
		},
	}
	for name, handler := range handlers {
		t.Run(name, func(t *testing.T) {
			client := newTestClient(t, handler, mealdb.WithTimeout(50*time.Millisecond))

			recipes := client.SearchByFirstLetter(context.Background(), 'a')
			assert.NotNil(t, recipes)
			assert.Empty(t, recipes)
		})
	}
}

func TestSearchByFirstLetterRejectsNonLetter(t *testing.T) {
	called := false
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	assert.Empty(t, client.SearchByFirstLetter(context.Background(), '7'))
	assert.False(t, called)
}
