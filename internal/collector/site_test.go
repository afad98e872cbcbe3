package collector

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const listPage = `<!DOCTYPE html>
<html><body>
<article class="post">
	<h2 class="entry-title"><a href="/news/flood-update">Flood Update for Langihan</a></h2>
	<p class="excerpt">Water levels receding along the creek.</p>
</article>
<article class="post">
	<h2 class="entry-title"><a href="https://example.com/news/market">Night Market Reopens</a></h2>
	<p class="excerpt">Vendors return to the downtown strip.</p>
</article>
<article class="post">
	<h2 class="entry-title"><a href="/news/empty"></a></h2>
</article>
</body></html>`

func TestSiteFetcherScrapesHeadlines(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(listPage))
	}))
	defer srv.Close()

	f := &SiteFetcher{
		SourceName: "Brigada News",
		PageURL:    srv.URL + "/bnfm-butuan/",
		Selectors: SiteSelectors{
			Item:        "article.post",
			Title:       "h2.entry-title",
			Link:        "h2.entry-title a",
			Description: "p.excerpt",
		},
	}

	items, err := f.Fetch(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 2, "entries without a title are skipped")

	assert.Equal(t, "Flood Update for Langihan", items[0].Title)
	assert.Equal(t, srv.URL+"/news/flood-update", items[0].Link, "relative links resolved")
	assert.Equal(t, "Water levels receding along the creek.", items[0].Description)

	assert.Equal(t, "Night Market Reopens", items[1].Title)
	assert.Equal(t, "https://example.com/news/market", items[1].Link)
}

func TestSiteFetcherUnreachablePageIsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	f := &SiteFetcher{
		SourceName: "Brigada News",
		PageURL:    srv.URL + "/gone/",
		Selectors:  SiteSelectors{Item: "article", Title: "h2", Link: "a"},
	}

	_, err := f.Fetch(context.Background())
	assert.Error(t, err)
}
