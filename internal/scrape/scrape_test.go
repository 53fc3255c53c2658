package scrape

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// itemPage is a trimmed-down HN item page: four comment rows, one collapsed,
// one hidden under the collapsed one.
const itemPage = `<html><body><table class="comment-tree">
<tr class="athing comtr" id="100"><td class="ind" indent="0"></td><td>
<a class="hnuser">alice</a>
<div class="commtext c00">First &amp; foremost <i>yes</i></div>
<div class="reply"></div></td></tr>
<tr class="athing comtr" id="200"><td class="ind" indent="0"></td><td>
<a class="hnuser">bob</a>
<div class="commtext c9c">Faded <p>take</p></div>
<div class="reply"></div></td></tr>
<tr class="athing comtr coll" id="300"><td class="ind" indent="0"></td><td>
<a class="hnuser">carol</a>
<div class="commtext c00">Collapsed rant</div>
<div class="reply"></div></td></tr>
<tr class="athing comtr noshow" id="310"><td class="ind" indent="1"></td><td>
<a class="hnuser">dave</a>
<div class="commtext c00">Hidden reply</div>
<div class="reply"></div></td></tr>
<tr class="athing comtr" id="400"><td class="ind" indent="1"></td><td>
<a class="hnuser">eve</a>
<div class="commtext">No color class</div>
<div class="reply"></div></td></tr>
</table></body></html>`

func TestParseItemHTML(t *testing.T) {
	records, err := ParseItemHTML(itemPage)
	require.NoError(t, err)
	require.Len(t, records, 3)

	first := records[100]
	assert.Equal(t, 0, first.Position)
	assert.Equal(t, "First & foremost yes", first.Text)
	assert.Equal(t, 0, first.Downvotes)

	second := records[200]
	assert.Equal(t, 1, second.Position)
	assert.Equal(t, "Faded take", second.Text)
	assert.Equal(t, 5, second.Downvotes)

	// Positions skip collapsed/hidden rows without gaps.
	third := records[400]
	assert.Equal(t, 2, third.Position)
	assert.Equal(t, 0, third.Downvotes)
}

func TestParseItemHTML_SkipsCollapsedRows(t *testing.T) {
	records, err := ParseItemHTML(itemPage)
	require.NoError(t, err)
	assert.NotContains(t, records, 300)
	assert.NotContains(t, records, 310)
}

func TestParseItemHTML_NoComments(t *testing.T) {
	records, err := ParseItemHTML(`<html><body>no thread here</body></html>`)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestParseItemHTML_DownvotePalette(t *testing.T) {
	levels := map[string]int{
		"c00": 0, "c5a": 1, "c73": 2, "c82": 3, "c88": 4,
		"c9c": 5, "caa": 6, "cbe": 7, "cce": 8, "cdd": 9,
	}
	for class, want := range levels {
		page := `<tr class="athing comtr" id="7"><td>` +
			`<div class="commtext ` + class + `">x</div><div class="reply"></div></td></tr>`
		records, err := ParseItemHTML(page)
		require.NoError(t, err)
		require.Contains(t, records, 7, "class %s", class)
		assert.Equal(t, want, records[7].Downvotes, "class %s", class)
	}
}

func TestGetItemPage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/item", r.URL.Path)
		assert.Equal(t, "42", r.URL.Query().Get("id"))
		w.Write([]byte(itemPage))
	}))
	defer srv.Close()

	c := NewClientWith(srv.Client(), srv.URL)
	records, err := c.GetItemPage(context.Background(), 42)
	require.NoError(t, err)
	assert.Len(t, records, 3)
}

func TestGetItemPage_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := NewClientWith(srv.Client(), srv.URL)
	_, err := c.GetItemPage(context.Background(), 42)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")
}
