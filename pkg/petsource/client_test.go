package petsource

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pawhub/pawhub/errors"
)

// fakeClock advances only when told to
type fakeClock struct {
	current time.Time
}

func (f *fakeClock) now() time.Time          { return f.current }
func (f *fakeClock) advance(d time.Duration) { f.current = f.current.Add(d) }

func newTestServer(t *testing.T, tokenCalls *int32) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/v2/oauth2/token", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.NoError(t, r.ParseForm())
		if r.Form.Get("client_id") != "id" || r.Form.Get("client_secret") != "secret" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		atomic.AddInt32(tokenCalls, 1)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"token_type":   "Bearer",
			"expires_in":   3600,
			"access_token": "tok-1",
		})
	})
	mux.HandleFunc("/v2/animals", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer tok-1" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"animals": []map[string]interface{}{
				{
					"id":              101,
					"organization_id": "OR77",
					"type":            "Dog",
					"name":            "Biscuit",
					"gender":          "male",
					"status":          "adoptable",
					"breeds":          map[string]string{"primary": "Beagle"},
					"photos": []map[string]string{
						{"medium": "https://img.example/biscuit-md.jpg"},
					},
				},
			},
			"pagination": map[string]int{
				"current_page": 1,
				"total_pages":  3,
				"total_count":  250,
			},
		})
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func newTestClient(server *httptest.Server, clock *fakeClock) *Client {
	return New(Config{
		BaseURL:      server.URL,
		ClientID:     "id",
		ClientSecret: "secret",
		PageSize:     50,
		HTTPClient:   server.Client(),
		Now:          clock.now,
	})
}

func TestListAnimals(t *testing.T) {
	var tokenCalls int32
	server := newTestServer(t, &tokenCalls)
	clock := &fakeClock{current: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
	client := newTestClient(server, clock)

	page, err := client.ListAnimals(context.Background(), 1)
	require.NoError(t, err)

	require.Len(t, page.Animals, 1)
	animal := page.Animals[0]
	assert.Equal(t, int64(101), animal.ID)
	assert.Equal(t, "Biscuit", animal.Name)
	assert.Equal(t, "Beagle", animal.Breeds.Primary)
	assert.Equal(t, "https://img.example/biscuit-md.jpg", animal.PhotoURL())
	assert.Equal(t, 3, page.Pagination.TotalPages)
}

func TestTokenCachedAcrossCalls(t *testing.T) {
	var tokenCalls int32
	server := newTestServer(t, &tokenCalls)
	clock := &fakeClock{current: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
	client := newTestClient(server, clock)

	for i := 0; i < 3; i++ {
		_, err := client.ListAnimals(context.Background(), 1)
		require.NoError(t, err)
	}

	assert.Equal(t, int32(1), atomic.LoadInt32(&tokenCalls), "token fetched once while fresh")
}

func TestTokenRefreshedAfterExpiry(t *testing.T) {
	var tokenCalls int32
	server := newTestServer(t, &tokenCalls)
	clock := &fakeClock{current: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
	client := newTestClient(server, clock)

	_, err := client.ListAnimals(context.Background(), 1)
	require.NoError(t, err)

	// past expires_in minus the refresh margin
	clock.advance(3600 * time.Second)

	_, err = client.ListAnimals(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, int32(2), atomic.LoadInt32(&tokenCalls))
}

func TestTokenRefreshedWithinMargin(t *testing.T) {
	var tokenCalls int32
	server := newTestServer(t, &tokenCalls)
	clock := &fakeClock{current: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
	client := newTestClient(server, clock)

	_, err := client.ListAnimals(context.Background(), 1)
	require.NoError(t, err)

	// 10 seconds of validity left, inside the 30s margin
	clock.advance(3590 * time.Second)

	_, err = client.ListAnimals(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, int32(2), atomic.LoadInt32(&tokenCalls))
}

func TestBadCredentials(t *testing.T) {
	var tokenCalls int32
	server := newTestServer(t, &tokenCalls)
	clock := &fakeClock{current: time.Now()}

	client := New(Config{
		BaseURL:      server.URL,
		ClientID:     "id",
		ClientSecret: "wrong",
		HTTPClient:   server.Client(),
		Now:          clock.now,
	})

	_, err := client.ListAnimals(context.Background(), 1)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.UpstreamUnauthorized))
}

func TestTokenCacheInvalidate(t *testing.T) {
	clock := &fakeClock{current: time.Now()}
	cache := newTokenCache(clock.now)

	calls := 0
	fetch := func() (string, time.Duration, error) {
		calls++
		return "tok", time.Hour, nil
	}

	_, err := cache.get(fetch)
	require.NoError(t, err)
	_, err = cache.get(fetch)
	require.NoError(t, err)
	require.Equal(t, 1, calls)

	cache.invalidate()

	_, err = cache.get(fetch)
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
}
