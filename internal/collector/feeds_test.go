package collector

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultFeeds(t *testing.T) {
	feeds := DefaultFeeds()
	require.Len(t, feeds, 7)
	for _, f := range feeds {
		assert.NotEmpty(t, f.Name)
		assert.NotEmpty(t, f.URL)
	}
}

func TestLoadFeedsEmptyPathUsesDefaults(t *testing.T) {
	feeds, err := LoadFeeds("")
	require.NoError(t, err)
	assert.Equal(t, DefaultFeeds(), feeds)
}

func TestLoadFeedsFromYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "feeds.yaml")
	content := `
- name: Bombo Radyo Butuan
  url: https://butuan.bomboradyo.com/feed/
- name: Brigada News
  url: https://www.brigadanews.ph/bnfm-butuan/
  kind: site
  selectors:
    item: article.post
    title: h2.entry-title
    link: a
    description: p.excerpt
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	feeds, err := LoadFeeds(path)
	require.NoError(t, err)
	require.Len(t, feeds, 2)

	assert.Empty(t, feeds[0].Kind, "unset kind means rss at build time")
	assert.Equal(t, "site", feeds[1].Kind)
	assert.Equal(t, "article.post", feeds[1].Selectors.Item)
	assert.Equal(t, "h2.entry-title", feeds[1].Selectors.Title)
}

func TestLoadFeedsMissingFileIsError(t *testing.T) {
	_, err := LoadFeeds(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestBuildSelectsFetcherByKind(t *testing.T) {
	fetchers := Build([]FeedConfig{
		{Name: "MindaNews", URL: "https://mindanews.com/feed/"},
		{Name: "Brigada News", URL: "https://www.brigadanews.ph/bnfm-butuan/", Kind: "site"},
	}, "https://converter.example/api")

	require.Len(t, fetchers, 2)

	rss, ok := fetchers[0].(*RSSFetcher)
	require.True(t, ok)
	assert.Equal(t, "MindaNews", rss.Name())
	assert.Equal(t, "https://converter.example/api", rss.Endpoint)

	site, ok := fetchers[1].(*SiteFetcher)
	require.True(t, ok)
	assert.Equal(t, "Brigada News", site.Name())
}
