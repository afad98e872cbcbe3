package storage

import (
	"testing"
	"time"

	"github.com/Donnel-prog/PintigButuan/internal/processor"
	"github.com/stretchr/testify/assert"
)

func TestToRecord(t *testing.T) {
	a := processor.Article{
		ID:                 "1abc2d",
		Title:              "Flood Update for Langihan",
		Description:        "short teaser",
		URLToImage:         "https://img.example/a.jpg",
		URL:                "https://example.com/a",
		Source:             "Brigada News",
		Author:             "City Desk",
		Region:             "Langihan",
		PublishedAt:        "2026-07-31T08:30:00Z",
		IsVerified:         true,
		VerificationSource: "Verified local news via Brigada News",
	}

	rec := toRecord(a, time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC))

	assert.Equal(t, "1abc2d", rec.ID)
	assert.Equal(t, "2026-07-31", rec.PublishedDate)
	assert.Equal(t, time.Date(2026, 7, 31, 8, 30, 0, 0, time.UTC), rec.PublishedAt)
	assert.Equal(t, "Langihan", rec.Region)
	assert.Equal(t, true, rec.ExtraData["isVerified"])
	assert.Equal(t, false, rec.ExtraData["isAdminAlert"])
}

func TestToRecordUnparseableDateFallsBackToNow(t *testing.T) {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	rec := toRecord(processor.Article{ID: "x", PublishedAt: "garbage"}, now)

	assert.Equal(t, now, rec.PublishedAt)
	assert.Equal(t, "2026-08-01", rec.PublishedDate)
}
