package cmd

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hnrecap/internal/cache"
)

// fakeHN serves both faces of HN: the Firebase API under /item/<id>.json and
// the rendered page under /item?id=<id>.
func fakeHN(t *testing.T, items map[int]string, page string) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/item/", func(w http.ResponseWriter, r *http.Request) {
		var id int
		if _, err := fmt.Sscanf(r.URL.Path, "/item/%d.json", &id); err != nil {
			http.NotFound(w, r)
			return
		}
		body, ok := items[id]
		if !ok {
			body = "null"
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, body)
	})
	mux.HandleFunc("/item", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, page)
	})
	return httptest.NewServer(mux)
}

// The reference discussion: A and B top-level, C replying to B with five
// downvotes, D flagged so the page omits it.
var recapItems = map[int]string{
	1:  `{"id":1,"type":"story","by":"op","title":"A story","kids":[10,20,40]}`,
	10: `{"id":10,"type":"comment","by":"alice","parent":1}`,
	20: `{"id":20,"type":"comment","by":"bob","parent":1,"kids":[30]}`,
	30: `{"id":30,"type":"comment","by":"carol","parent":20}`,
	40: `{"id":40,"type":"comment","by":"dave","parent":1}`,
}

const recapPage = `<table>
<tr class="athing comtr" id="10"><td><div class="commtext c00">first take</div><div class="reply"></div></td></tr>
<tr class="athing comtr" id="20"><td><div class="commtext c00">second take</div><div class="reply"></div></td></tr>
<tr class="athing comtr" id="30"><td><div class="commtext c9c">a faded reply</div><div class="reply"></div></td></tr>
</table>`

func TestRecapCmd(t *testing.T) {
	srv := fakeHN(t, recapItems, recapPage)
	defer srv.Close()

	dir := t.TempDir()
	dbPath := filepath.Join(dir, "recap.db")
	cfgFile := writeConfig(t, dir,
		"api_base_url: "+srv.URL+"\n"+
			"page_base_url: "+srv.URL+"\n"+
			"cache_dir: "+dir+"\n"+
			"db_path: "+dbPath+"\n")

	out, err := runCmd(t, "--config", cfgFile, "recap", "1")
	require.NoError(t, err)

	want := "[1] (score: 1000) <replies: 0> {downvotes: 0} alice: first take\n" +
		"[2] (score: 667) <replies: 1> {downvotes: 0} bob: second take\n" +
		"[2.1] (score: 167) <replies: 0> {downvotes: 5} carol: a faded reply\n"
	assert.Equal(t, want, out)

	// The path table was persisted for later resolution.
	db, err := cache.Open(dbPath)
	require.NoError(t, err)
	defer db.Close()
	id, ok, err := db.ResolvePath(1, "2.1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 30, id)
}

func TestRecapCmd_NoStore(t *testing.T) {
	srv := fakeHN(t, recapItems, recapPage)
	defer srv.Close()

	dir := t.TempDir()
	dbPath := filepath.Join(dir, "recap.db")
	cfgFile := writeConfig(t, dir,
		"api_base_url: "+srv.URL+"\n"+
			"page_base_url: "+srv.URL+"\n"+
			"db_path: "+dbPath+"\n")

	_, err := runCmd(t, "--config", cfgFile, "recap", "1", "--no-store")
	require.NoError(t, err)

	assert.NoFileExists(t, dbPath)
}

func TestRecapCmd_BadStoryID(t *testing.T) {
	_, err := runCmd(t, "recap", "not-a-number")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid story id")
}
