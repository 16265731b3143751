package htmlx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractTitleTextAndLinks(t *testing.T) {
	body := `<html><head><title> My Page </title><style>.x{color:red}</style></head>
<body><script>var x=1;</script><p>Hello <b>world</b></p><a href="/b">B</a><a href="http://other.example/c">C</a></body></html>`

	var x Extractor
	page, err := x.Extract("http://test.example/a", []byte(body))
	require.NoError(t, err)

	assert.Equal(t, "My Page", page.Title)
	assert.Contains(t, page.Text, "Hello")
	assert.Contains(t, page.Text, "world")
	assert.NotContains(t, page.Text, "color:red")
	assert.NotContains(t, page.Text, "var x=1")
	assert.ElementsMatch(t, []string{"/b", "http://other.example/c"}, page.Links)
}

func TestExtractMalformedHTMLStillReturnsWhatItCan(t *testing.T) {
	var x Extractor
	page, err := x.Extract("http://test.example/a", []byte("<html><p>unterminated"))
	require.NoError(t, err)
	assert.Contains(t, page.Text, "unterminated")
}
