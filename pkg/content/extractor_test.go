package content

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"newsmix/pkg/cache"
	"newsmix/pkg/domain"
)

func testExtractor(minTextLen int) *Extractor {
	return NewExtractor(5*time.Second, "", minTextLen, cache.New[*domain.ScrapedArticle](time.Minute))
}

// para builds a paragraph of roughly n characters of prose
func para(n int) string {
	var b strings.Builder
	for b.Len() < n {
		b.WriteString("The quick brown fox jumps over the lazy dog near the riverbank this morning. ")
	}
	return b.String()
}

func TestExtractor_Extract_ArticleSelector(t *testing.T) {
	body := para(1200)
	page := `<html><head><title>Big Story - Example News</title></head><body>
<nav><a href="/">home</a><a href="/news">news</a></nav>
<article><h2>Section heading</h2><p>` + body + `</p></article>
<footer>about us</footer>
</body></html>`

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NotEmpty(t, r.Header.Get("User-Agent"))
		w.Write([]byte(page))
	}))
	defer ts.Close()

	e := testExtractor(500)
	got, err := e.Extract(context.Background(), ts.URL)
	require.NoError(t, err)

	assert.Equal(t, "Big Story - Example News", got.Title)
	assert.Contains(t, got.TextContent, "quick brown fox")
	assert.NotContains(t, got.TextContent, "about us") // footer stripped
	assert.NotContains(t, got.Content, "<script")
	assert.Equal(t, strings.TrimPrefix(ts.URL, "http://"), got.SiteName)
}

func TestExtractor_Extract_DensityFallback(t *testing.T) {
	// no article container; the link-sparse div must beat the link farm
	prose := para(900)
	page := `<html><head><title>t</title></head><body>
<div class="menu"><a href="/a">aaaa</a><a href="/b">bbbb</a><a href="/c">cccc</a></div>
<div class="stuff"><p>` + prose + `</p><a href="/more">more</a></div>
</body></html>`

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(page))
	}))
	defer ts.Close()

	e := testExtractor(500)
	got, err := e.Extract(context.Background(), ts.URL)
	require.NoError(t, err)
	assert.Contains(t, got.TextContent, "quick brown fox")
}

func TestExtractor_Extract_ThinContent(t *testing.T) {
	page := `<html><head><title>t</title></head><body><div><p>Subscribe now!</p></div></body></html>`

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(page))
	}))
	defer ts.Close()

	e := testExtractor(500)
	_, err := e.Extract(context.Background(), ts.URL)
	require.ErrorIs(t, err, ErrNoContent)
}

func TestExtractor_Extract_ThinResultNotCached(t *testing.T) {
	var fetches atomic.Int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fetches.Add(1)
		w.Write([]byte(`<html><head><title>t</title></head><body><p>too short</p></body></html>`))
	}))
	defer ts.Close()

	e := testExtractor(500)

	_, err := e.Extract(context.Background(), ts.URL)
	require.ErrorIs(t, err, ErrNoContent)
	_, err = e.Extract(context.Background(), ts.URL)
	require.ErrorIs(t, err, ErrNoContent)

	// thin results are never cached, every call re-fetches
	assert.Equal(t, int32(2), fetches.Load())
}

func TestExtractor_Extract_SuccessCached(t *testing.T) {
	var fetches atomic.Int32
	page := `<html><head><title>t</title></head><body><article><p>` + para(1000) + `</p></article></body></html>`
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fetches.Add(1)
		w.Write([]byte(page))
	}))
	defer ts.Close()

	e := testExtractor(500)

	first, err := e.Extract(context.Background(), ts.URL)
	require.NoError(t, err)
	second, err := e.Extract(context.Background(), ts.URL)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, int32(1), fetches.Load())
}

func TestExtractor_Extract_BoilerplateRemoved(t *testing.T) {
	page := `<html><head><title>Big Story</title></head><body><article>
<h1>Big Story</h1>
<button>Share</button>
<span>Copy link</span>
<p>Follow us on social media</p>
<p>` + para(1000) + `</p>
</article></body></html>`

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(page))
	}))
	defer ts.Close()

	e := testExtractor(500)
	got, err := e.Extract(context.Background(), ts.URL)
	require.NoError(t, err)

	assert.NotContains(t, got.TextContent, "Copy link")
	assert.NotContains(t, got.TextContent, "Follow us on")
	// the h1 duplicating the page title goes too
	assert.NotContains(t, got.Content, "<h1>")
}

func TestExtractor_Extract_Errors(t *testing.T) {
	e := testExtractor(500)
	ctx := context.Background()

	t.Run("invalid url", func(t *testing.T) {
		_, err := e.Extract(ctx, "not-a-url")
		require.Error(t, err)
	})

	t.Run("non-200 status", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer ts.Close()

		_, err := e.Extract(ctx, ts.URL)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unexpected status code 404")
	})

	t.Run("unreachable host", func(t *testing.T) {
		_, err := e.Extract(ctx, "http://127.0.0.1:1/article")
		require.Error(t, err)
	})
}

func TestFlattenText(t *testing.T) {
	assert.Equal(t, "a b c", flattenText("  a\n\n b\t c  "))
	assert.Equal(t, "", flattenText("   \n\t "))
}
