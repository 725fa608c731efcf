package headlines

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memCache struct {
	headlines []string
	fetchedAt time.Time
	saves     int
}

func (m *memCache) SaveHeadlines(_ context.Context, hs []string) error {
	m.headlines = append([]string(nil), hs...)
	m.fetchedAt = time.Now()
	m.saves++
	return nil
}

func (m *memCache) LoadHeadlines(_ context.Context) ([]string, time.Time, error) {
	return m.headlines, m.fetchedAt, nil
}

func rssDoc(count int) string {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0"?><rss version="2.0"><channel><title>t</title>`)
	for i := 0; i < count; i++ {
		fmt.Fprintf(&b, "<item><title>Titre %d</title></item>", i)
	}
	b.WriteString(`</channel></rss>`)
	return b.String()
}

func TestFetch_CapsPerFeed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, rssDoc(25))
	}))
	defer srv.Close()

	r := NewRSS([]string{srv.URL}, nil, DefaultTTL)
	got, err := r.Fetch(context.Background(), false)
	require.NoError(t, err)
	assert.Len(t, got, maxPerFeed)
	assert.Equal(t, "Titre 0", got[0])
}

func TestFetch_SkipsFailingFeeds(t *testing.T) {
	good := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, rssDoc(3))
	}))
	defer good.Close()
	bad := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer bad.Close()

	r := NewRSS([]string{bad.URL, good.URL}, nil, DefaultTTL)
	got, err := r.Fetch(context.Background(), false)
	require.NoError(t, err)
	assert.Len(t, got, 3)
}

func TestFetch_UsesFreshCache(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls++
		fmt.Fprint(w, rssDoc(2))
	}))
	defer srv.Close()

	cache := &memCache{}
	r := NewRSS([]string{srv.URL}, cache, time.Hour)

	first, err := r.Fetch(context.Background(), false)
	require.NoError(t, err)
	require.Len(t, first, 2)
	assert.Equal(t, 1, cache.saves)

	second, err := r.Fetch(context.Background(), false)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, calls, "fresh cache should prevent a second fetch")
}

func TestFetch_ForceRefreshBypassesCache(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls++
		fmt.Fprint(w, rssDoc(2))
	}))
	defer srv.Close()

	cache := &memCache{}
	r := NewRSS([]string{srv.URL}, cache, time.Hour)

	_, err := r.Fetch(context.Background(), false)
	require.NoError(t, err)
	_, err = r.Fetch(context.Background(), true)
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
}

func TestFetch_StaleCacheServedWhenFeedsDie(t *testing.T) {
	cache := &memCache{
		headlines: []string{"vieux titre"},
		fetchedAt: time.Now().Add(-time.Hour),
	}
	r := NewRSS([]string{"http://127.0.0.1:0/unreachable"}, cache, time.Minute)

	got, err := r.Fetch(context.Background(), false)
	require.NoError(t, err)
	assert.Equal(t, []string{"vieux titre"}, got)
}

func TestFetch_EmptyPoolIsNotAnError(t *testing.T) {
	r := NewRSS([]string{"http://127.0.0.1:0/unreachable"}, nil, time.Minute)
	got, err := r.Fetch(context.Background(), false)
	require.NoError(t, err)
	assert.Empty(t, got)
}
