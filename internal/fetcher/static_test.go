package fetcher

import (
	"compress/gzip"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pitchforge/pitchforge/internal/config"
	"github.com/pitchforge/pitchforge/internal/types"
)

func newStaticForTest() *Static {
	return NewStatic(config.DefaultConfig(), slog.New(slog.DiscardHandler))
}

func TestStatic_Fetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NotEmpty(t, r.Header.Get("User-Agent"))
		w.Write([]byte("<html><body><h1>ok</h1></body></html>"))
	}))
	defer srv.Close()

	f := newStaticForTest()
	defer f.Close()

	page, err := f.Fetch(context.Background(), srv.URL)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, page.StatusCode)
	assert.True(t, page.IsSuccess())
	assert.Contains(t, string(page.Body), "<h1>ok</h1>")

	doc, err := page.Document()
	require.NoError(t, err)
	assert.Equal(t, "ok", doc.Find("h1").Text())
}

func TestStatic_FetchGzipBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Encoding", "gzip")
		gz := gzip.NewWriter(w)
		gz.Write([]byte("<html><body>compressed</body></html>"))
		gz.Close()
	}))
	defer srv.Close()

	f := newStaticForTest()
	defer f.Close()

	page, err := f.Fetch(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Contains(t, string(page.Body), "compressed")
}

func TestStatic_FetchErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()

	f := newStaticForTest()
	defer f.Close()

	_, err := f.Fetch(context.Background(), srv.URL)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP 404")
}

func TestStatic_FetchEmptyBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	f := newStaticForTest()
	defer f.Close()

	_, err := f.Fetch(context.Background(), srv.URL)
	require.ErrorIs(t, err, types.ErrEmptyPage)
}

func TestStatic_FollowsRedirects(t *testing.T) {
	var mux http.ServeMux
	srv := httptest.NewServer(&mux)
	defer srv.Close()

	mux.HandleFunc("/old", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/new", http.StatusMovedPermanently)
	})
	mux.HandleFunc("/new", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html><body>moved here</body></html>"))
	})

	f := newStaticForTest()
	defer f.Close()

	page, err := f.Fetch(context.Background(), srv.URL+"/old")
	require.NoError(t, err)
	assert.Equal(t, srv.URL+"/new", page.FinalURL)
}

func TestStatic_Type(t *testing.T) {
	assert.Equal(t, "static", newStaticForTest().Type())
}
