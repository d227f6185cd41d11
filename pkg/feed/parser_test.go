package feed

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/mmcdole/gofeed"
	ext "github.com/mmcdole/gofeed/extensions"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParser_Parse(t *testing.T) {
	rss := `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0" xmlns:media="http://search.yahoo.com/mrss/">
  <channel>
    <title>Test News</title>
    <link>https://example.com</link>
    <description>Test feed</description>
    <item>
      <title>First Article</title>
      <link>https://example.com/first</link>
      <guid>guid-first</guid>
      <description>&lt;p&gt;First &amp;amp; foremost&lt;/p&gt;</description>
      <pubDate>Mon, 02 Jan 2024 15:04:05 +0000</pubDate>
      <category>technology</category>
      <media:content url="https://example.com/first.jpg" type="image/jpeg"/>
    </item>
    <item>
      <title>Second Article</title>
      <link>https://example.com/second</link>
      <description>plain description</description>
    </item>
  </channel>
</rss>`

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NotEmpty(t, r.Header.Get("User-Agent"))
		assert.NotEmpty(t, r.Header.Get("Accept"))
		w.Header().Set("Content-Type", "application/rss+xml")
		w.Write([]byte(rss))
	}))
	defer ts.Close()

	parser := NewParser(5*time.Second, "Newsmix/1.0")
	parsed, err := parser.Parse(context.Background(), ts.URL)
	require.NoError(t, err)

	assert.Equal(t, "Test News", parsed.Title)
	assert.Equal(t, "https://example.com", parsed.Link)
	require.Len(t, parsed.Items, 2)

	first := parsed.Items[0]
	assert.Equal(t, "First Article", first.Title)
	assert.Equal(t, "https://example.com/first", first.Link)
	assert.Equal(t, "guid-first", first.GUID)
	assert.Equal(t, "First & foremost", first.Snippet)
	assert.Equal(t, "2024-01-02T15:04:05Z", first.ISODate)
	assert.Equal(t, []string{"technology"}, first.Categories)
	assert.Equal(t, "https://example.com/first.jpg", first.ImageURL)

	second := parsed.Items[1]
	assert.Equal(t, "Second Article", second.Title)
	assert.Equal(t, "https://example.com/second", second.GUID) // falls back to link
	assert.Empty(t, second.ISODate)
	assert.Empty(t, second.ImageURL)
}

func TestParser_Parse_Errors(t *testing.T) {
	t.Run("non-200 status", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
		}))
		defer ts.Close()

		parser := NewParser(5*time.Second, "Newsmix/1.0")
		_, err := parser.Parse(context.Background(), ts.URL)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unexpected status code: 403")
	})

	t.Run("malformed feed", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("this is not xml"))
		}))
		defer ts.Close()

		parser := NewParser(5*time.Second, "Newsmix/1.0")
		_, err := parser.Parse(context.Background(), ts.URL)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parse feed")
	})

	t.Run("unreachable host", func(t *testing.T) {
		parser := NewParser(time.Second, "Newsmix/1.0")
		_, err := parser.Parse(context.Background(), "http://127.0.0.1:1/feed")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "fetch feed")
	})
}

func TestExtractImageURL(t *testing.T) {
	tests := []struct {
		name string
		item *gofeed.Item
		want string
	}{
		{
			name: "media content wins over enclosure",
			item: &gofeed.Item{
				Extensions: ext.Extensions{
					"media": {"content": []ext.Extension{{Attrs: map[string]string{"url": "https://example.com/media.jpg"}}}},
				},
				Enclosures: []*gofeed.Enclosure{{URL: "https://example.com/enc.jpg"}},
			},
			want: "https://example.com/media.jpg",
		},
		{
			name: "enclosure",
			item: &gofeed.Item{Enclosures: []*gofeed.Enclosure{{URL: "https://example.com/enc.jpg"}}},
			want: "https://example.com/enc.jpg",
		},
		{
			name: "media thumbnail",
			item: &gofeed.Item{
				Extensions: ext.Extensions{
					"media": {"thumbnail": []ext.Extension{{Attrs: map[string]string{"url": "https://example.com/thumb.jpg"}}}},
				},
			},
			want: "https://example.com/thumb.jpg",
		},
		{
			name: "item image",
			item: &gofeed.Item{Image: &gofeed.Image{URL: "https://example.com/item.jpg"}},
			want: "https://example.com/item.jpg",
		},
		{
			name: "img tag in content",
			item: &gofeed.Item{Content: `<p>text</p><img src="https://example.com/inline.jpg" alt="">`},
			want: "https://example.com/inline.jpg",
		},
		{
			name: "img tag in description",
			item: &gofeed.Item{Description: `<img src='https://example.com/desc.jpg'>`},
			want: "https://example.com/desc.jpg",
		},
		{
			name: "custom field",
			item: &gofeed.Item{Custom: map[string]string{"fullimage": `<img src="https://example.com/custom.jpg">`}},
			want: "https://example.com/custom.jpg",
		},
		{
			name: "no image",
			item: &gofeed.Item{Title: "bare"},
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractImageURL(tt.item))
		})
	}
}

func TestCoerceText(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{"nil", nil, ""},
		{"plain string", "  hello  ", "hello"},
		{"string pointer", ptr("world"), "world"},
		{"nil string pointer", (*string)(nil), ""},
		{"wrapped text node", map[string]any{"_": "inner text", "$": map[string]any{"lang": "en"}}, "inner text"},
		{"hash text key", map[string]any{"#text": "value"}, "value"},
		{"map without text key", map[string]any{"other": "x"}, ""},
		{"array takes first", []any{"first", "second"}, "first"},
		{"empty array", []any{}, ""},
		{"nested wrapped in array", []any{map[string]any{"_": "deep"}}, "deep"},
		{"extension value", ext.Extension{Value: " ext "}, "ext"},
		{"extension slice", []ext.Extension{{Value: "one"}, {Value: "two"}}, "one"},
		{"unknown type", 42, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CoerceText(tt.in))
		})
	}
}

func TestPlainText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"no markup", "plain text", "plain text"},
		{"strips tags", "<p>hello <b>world</b></p>", "hello world"},
		{"decodes entities", "a &amp; b &lt;c&gt; &quot;d&quot; &#39;e&#39;&nbsp;f", `a & b <c> "d" 'e' f`},
		{"collapses whitespace", "too   many\n\t spaces", "too many spaces"},
		{"tags and entities together", "<div>Tom &amp; Jerry</div>\n<span>cartoon</span>", "Tom & Jerry cartoon"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PlainText(tt.in)
			assert.Equal(t, tt.want, got)
			assert.NotContains(t, got, "  ")
		})
	}
}

func ptr(s string) *string { return &s }
