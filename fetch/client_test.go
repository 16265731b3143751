package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frejajensen9/web-based-search-engine-24/internal/testutil"
)

func TestClientFetchReturnsBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Last-Modified", "Mon, 01 Jan 2024 00:00:00 GMT")
		w.Write([]byte("<html><title>hi</title></html>"))
	}))
	defer srv.Close()

	c, err := NewClient()
	require.NoError(t, err)

	page, err := c.Fetch(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Contains(t, string(page.Body), "<title>hi</title>")
	assert.Equal(t, 2024, page.LastModified.Year())
}

func TestClientFetchNon2xxIsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	c, err := NewClient()
	require.NoError(t, err)

	_, err = c.Fetch(context.Background(), srv.URL)
	require.Error(t, err)
	var fe *FetchError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, http.StatusNotFound, fe.StatusCode)
}

func TestClientFollowsRedirectsUpToMax(t *testing.T) {
	var target string
	mux := http.NewServeMux()
	mux.HandleFunc("/start", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, target+"/end", http.StatusFound)
	})
	mux.HandleFunc("/end", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()
	target = srv.URL

	c, err := NewClient()
	require.NoError(t, err)

	page, err := c.Fetch(context.Background(), srv.URL+"/start")
	require.NoError(t, err)
	assert.Equal(t, "ok", string(page.Body))
}

func TestClientFetchAgainstFakeTransport(t *testing.T) {
	rt := &testutil.MapRoundTrip{Responses: map[string]*http.Response{
		"http://fake.example/known": testutil.Response200("<title>Known</title>"),
	}}
	c := NewClientWithTransport(rt)

	page, err := c.Fetch(context.Background(), "http://fake.example/known")
	require.NoError(t, err)
	assert.Contains(t, string(page.Body), "Known")

	_, err = c.Fetch(context.Background(), "http://fake.example/unknown")
	require.Error(t, err)
	var fe *FetchError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, http.StatusNotFound, fe.StatusCode)
}
