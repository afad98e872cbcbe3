package collector

import (
	"context"
	"fmt"
	"strings"

	"github.com/gocolly/colly/v2"
)

// SiteSelectors locate headline entries on a list page.
type SiteSelectors struct {
	// Item matches the repeated container, one per headline.
	Item string `yaml:"item"`
	// Title is the child selector for the headline text.
	Title string `yaml:"title"`
	// Link is the child selector whose href becomes the article URL.
	Link string `yaml:"link"`
	// Description optionally matches a teaser paragraph.
	Description string `yaml:"description"`
}

// SiteFetcher scrapes a headline list page for sources that expose no
// usable feed. Scraped entries carry no publication date, so they fall
// back to capture time during normalization.
type SiteFetcher struct {
	SourceName string
	PageURL    string
	Selectors  SiteSelectors
}

func (f *SiteFetcher) Name() string {
	return f.SourceName
}

func (f *SiteFetcher) Fetch(ctx context.Context) ([]RawItem, error) {
	c := colly.NewCollector(
		colly.UserAgent("PintigButuanBot/1.0"),
	)
	c.SetRequestTimeout(FeedTimeout)

	items := make([]RawItem, 0, 30)

	c.OnHTML(f.Selectors.Item, func(e *colly.HTMLElement) {
		title := strings.TrimSpace(e.ChildText(f.Selectors.Title))
		if title == "" {
			return
		}

		link := e.ChildAttr(f.Selectors.Link, "href")
		if link != "" && !strings.HasPrefix(link, "http") {
			link = e.Request.AbsoluteURL(link)
		}

		desc := ""
		if f.Selectors.Description != "" {
			desc = strings.TrimSpace(e.ChildText(f.Selectors.Description))
		}

		items = append(items, RawItem{
			Title:       title,
			Description: desc,
			Link:        link,
		})
	})

	if err := c.Visit(f.PageURL); err != nil {
		return nil, fmt.Errorf("%s: visit %s: %w", f.SourceName, f.PageURL, err)
	}

	return items, nil
}
