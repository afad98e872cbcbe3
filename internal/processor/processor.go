package processor

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/Donnel-prog/PintigButuan/internal/collector"
	"github.com/PuerkitoBio/goquery"
)

// Article is the canonical record produced by the pipeline. Values are
// constructed fresh on every aggregation run and never mutated afterwards.
type Article struct {
	ID                 string `json:"id"`
	Title              string `json:"title"`
	Description        string `json:"description"`
	Content            string `json:"content"`
	URLToImage         string `json:"urlToImage"`
	PublishedAt        string `json:"publishedAt"` // RFC 3339
	Source             string `json:"source"`
	Author             string `json:"author"`
	URL                string `json:"url"`
	Region             string `json:"region"`
	IsAdminAlert       bool   `json:"isAdminAlert"`
	IsVerified         bool   `json:"isVerified"`
	VerificationSource string `json:"verificationSource"`
}

const (
	descriptionLimit = 300

	// removedSentinel marks items the upstream source retracted.
	removedSentinel = "[Removed]"
)

// FallbackImages is the fixed placeholder pool, assigned cyclically by item
// ordinal when a source provides no image.
var FallbackImages = []string{
	"https://images.unsplash.com/photo-1596422846543-75c6fc197f07?auto=format&fit=crop&w=800&q=80",
	"https://images.unsplash.com/photo-1504384308090-c894fdcc538d?auto=format&fit=crop&w=800&q=80",
	"https://images.unsplash.com/photo-1517048676732-d65bc937f952?auto=format&fit=crop&w=800&q=80",
	"https://images.unsplash.com/photo-1507525428034-b723cf961d3e?auto=format&fit=crop&w=800&q=80",
	"https://images.unsplash.com/photo-1523348837708-15d4a09cfac2?auto=format&fit=crop&w=800&q=80",
	"https://images.unsplash.com/photo-1518509562904-e7ef99cdcc86?auto=format&fit=crop&w=800&q=80",
}

// FallbackImage returns the pool entry for the Nth item of a feed.
func FallbackImage(ordinal int) string {
	if ordinal < 0 {
		ordinal = -ordinal
	}
	return FallbackImages[ordinal%len(FallbackImages)]
}

// Aggregators append a " - Publisher Name" attribution to titles; the suffix
// is a dash followed by 3+ non-dash characters at the end of the string.
var titleSuffixRe = regexp.MustCompile(`\s*[-–—]\s*[^-–—]{3,}$`)

// CleanTitle strips a trailing source-attribution suffix.
func CleanTitle(title string) string {
	return strings.TrimSpace(titleSuffixRe.ReplaceAllString(title, ""))
}

// CleanHTML strips markup and collapses non-breaking spaces and ellipsis
// entities to plain text.
func CleanHTML(s string) string {
	if s == "" {
		return ""
	}
	text := s
	if doc, err := goquery.NewDocumentFromReader(strings.NewReader(s)); err == nil {
		text = doc.Text()
	}
	text = strings.ReplaceAll(text, "\u00a0", " ")
	text = strings.ReplaceAll(text, "…", "...")
	return strings.TrimSpace(text)
}

// GenerateID derives the stable article identifier from title and source.
// The fold is fixed: h = h*31 + rune over the lowercased concatenation,
// with 32-bit signed wraparound, absolute value, rendered in base 36. Same
// inputs yield the same id across runs and processes.
func GenerateID(title, source string) string {
	raw := strings.ToLower(title + source)
	var h int32
	for _, r := range raw {
		h = h*31 + int32(r)
	}
	v := int64(h)
	if v < 0 {
		v = -v
	}
	return strconv.FormatInt(v, 36)
}

// Fingerprint is the dedup key: lowercased, trimmed title cut to its first
// 60 characters. Distinct from the id, which also folds in the source.
func Fingerprint(title string) string {
	t := strings.TrimSpace(strings.ToLower(title))
	r := []rune(t)
	if len(r) > 60 {
		r = r[:60]
	}
	return string(r)
}

// Deduplicate drops retracted items and cross-source duplicates of the same
// story. First-seen wins, so merge order decides which source survives.
func Deduplicate(articles []Article) []Article {
	seen := make(map[string]struct{}, len(articles))
	out := make([]Article, 0, len(articles))
	for _, a := range articles {
		if a.Title == "" || a.Title == removedSentinel {
			continue
		}
		fp := Fingerprint(a.Title)
		if _, ok := seen[fp]; ok {
			continue
		}
		seen[fp] = struct{}{}
		out = append(out, a)
	}
	return out
}

// SortByRecency orders most recent first. Stable, so equal timestamps keep
// their relative fetch order.
func SortByRecency(articles []Article) {
	sort.SliceStable(articles, func(i, j int) bool {
		return parseWhen(articles[i].PublishedAt).After(parseWhen(articles[j].PublishedAt))
	})
}

func parseWhen(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

// pubDateFormats covers the timestamp shapes seen from the converter and
// from raw feeds.
var pubDateFormats = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	time.RFC1123Z,
	time.RFC1123,
	time.RFC822Z,
	time.RFC822,
	"Mon, 2 Jan 2006 15:04:05 -0700",
	"2006-01-02T15:04:05",
}

func normalizePubDate(raw string, now time.Time) string {
	raw = strings.TrimSpace(raw)
	if raw != "" {
		for _, layout := range pubDateFormats {
			if t, err := time.Parse(layout, raw); err == nil {
				return t.UTC().Format(time.RFC3339)
			}
		}
	}
	return now.UTC().Format(time.RFC3339)
}

func truncateRunes(s string, limit int) string {
	r := []rune(s)
	if len(r) <= limit {
		return s
	}
	return string(r[:limit])
}

func extractImage(it collector.RawItem, ordinal int) string {
	if it.Thumbnail != "" {
		return it.Thumbnail
	}
	if it.Enclosure != "" {
		return it.Enclosure
	}
	if it.Content != "" {
		if doc, err := goquery.NewDocumentFromReader(strings.NewReader(it.Content)); err == nil {
			if src, ok := doc.Find("img").First().Attr("src"); ok && src != "" {
				return src
			}
		}
	}
	return FallbackImage(ordinal)
}

// Process converts one feed's raw items into canonical articles. The item
// ordinal within the feed drives the cyclic fallback-image selection, so
// placeholder images stay stable and varied inside one feed. Retracted and
// empty titles survive until Deduplicate filters them, keeping ordinals
// aligned with the raw feed.
func Process(source string, items []collector.RawItem, now time.Time) []Article {
	out := make([]Article, 0, len(items))
	for i, it := range items {
		title := CleanTitle(it.Title)
		desc := truncateRunes(CleanHTML(it.Description), descriptionLimit)
		content := CleanHTML(it.Content)
		if content == "" {
			content = desc
		}
		author := it.Author
		if author == "" {
			author = source
		}

		out = append(out, Article{
			ID:                 GenerateID(title, source),
			Title:              title,
			Description:        desc,
			Content:            content,
			URLToImage:         extractImage(it, i),
			PublishedAt:        normalizePubDate(it.PubDate, now),
			Source:             source,
			Author:             author,
			URL:                it.Link,
			Region:             DetectDistrict(title),
			IsAdminAlert:       false,
			IsVerified:         true,
			VerificationSource: "Verified local news via " + source,
		})
	}
	return out
}
