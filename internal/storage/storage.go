package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/Donnel-prog/PintigButuan/internal/processor"
	"github.com/redis/go-redis/v9"
	"gorm.io/datatypes"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// snapshotKey holds the last-known-good collection as a single JSON blob,
// overwritten wholesale on every successful aggregation run.
const snapshotKey = "pintig:news:articles"

// NewsRecord is one archived article row.
type NewsRecord struct {
	ID            string    `gorm:"primaryKey;size:40" json:"id"`
	Title         string    `gorm:"size:512" json:"title"`
	Description   string    `gorm:"size:600" json:"description"`
	Content       string    `gorm:"type:text" json:"content"`
	ImageURL      string    `gorm:"size:1024" json:"urlToImage"`
	URL           string    `gorm:"size:1024" json:"url"`
	Source        string    `gorm:"size:64;index" json:"source"`
	Author        string    `gorm:"size:128" json:"author"`
	Region        string    `gorm:"size:64;index" json:"region"`
	PublishedAt   time.Time `gorm:"index" json:"publishedAt"`
	PublishedDate string    `gorm:"size:10;index" json:"publishedDate"` // YYYY-MM-DD, for date filtering

	ExtraData datatypes.JSONMap `gorm:"type:jsonb" json:"extraData"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type Store struct {
	// DB is nil when no DSN is configured; the archive is disabled then.
	DB    *gorm.DB
	Redis *redis.Client
}

func NewStore(dsn, redisAddr string) (*Store, error) {
	s := &Store{}

	if dsn != "" {
		db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
		if err != nil {
			return nil, fmt.Errorf("open postgres: %w", err)
		}
		if err := db.AutoMigrate(&NewsRecord{}); err != nil {
			return nil, fmt.Errorf("migrate: %w", err)
		}
		s.DB = db
	}

	rdb := redis.NewClient(&redis.Options{Addr: redisAddr})
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Printf("warn: redis ping failed: %v", err)
	}
	s.Redis = rdb

	return s, nil
}

// SaveArticles overwrites the cached collection wholesale, then archives
// the batch best-effort when a database is configured.
func (s *Store) SaveArticles(ctx context.Context, articles []processor.Article) error {
	if s.Redis != nil {
		bs, err := json.Marshal(articles)
		if err != nil {
			return fmt.Errorf("marshal articles: %w", err)
		}
		if err := s.Redis.Set(ctx, snapshotKey, bs, 0).Err(); err != nil {
			return fmt.Errorf("write snapshot: %w", err)
		}
	}

	if s.DB != nil {
		if err := s.archiveBatch(articles); err != nil {
			log.Printf("archive batch failed: %v", err)
		}
	}
	return nil
}

// LoadArticles reads the cached collection. An absent snapshot is a normal
// first-run condition and yields an empty result, not an error.
func (s *Store) LoadArticles(ctx context.Context) ([]processor.Article, error) {
	if s.Redis == nil {
		return nil, nil
	}
	bs, err := s.Redis.Get(ctx, snapshotKey).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read snapshot: %w", err)
	}
	var articles []processor.Article
	if err := json.Unmarshal(bs, &articles); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	return articles, nil
}

func toRecord(a processor.Article, now time.Time) NewsRecord {
	pub, err := time.Parse(time.RFC3339, a.PublishedAt)
	if err != nil {
		pub = now.UTC()
	}
	return NewsRecord{
		ID:            a.ID,
		Title:         a.Title,
		Description:   a.Description,
		Content:       a.Content,
		ImageURL:      a.URLToImage,
		URL:           a.URL,
		Source:        a.Source,
		Author:        a.Author,
		Region:        a.Region,
		PublishedAt:   pub,
		PublishedDate: pub.Format("2006-01-02"),
		ExtraData: datatypes.JSONMap{
			"isAdminAlert":       a.IsAdminAlert,
			"isVerified":         a.IsVerified,
			"verificationSource": a.VerificationSource,
		},
	}
}

// archiveBatch upserts by article id; existing rows get their display
// fields refreshed.
func (s *Store) archiveBatch(articles []processor.Article) error {
	now := time.Now()
	for _, a := range articles {
		rec := toRecord(a, now)
		if err := s.DB.Where("id = ?", rec.ID).FirstOrCreate(&rec).Error; err != nil {
			return err
		}
		_ = s.DB.Model(&NewsRecord{ID: rec.ID}).Updates(map[string]any{
			"title":          rec.Title,
			"description":    rec.Description,
			"region":         rec.Region,
			"published_at":   rec.PublishedAt,
			"published_date": rec.PublishedDate,
		}).Error
	}
	return nil
}

// ListArchive returns archived rows newest first, optionally filtered by
// region and published date (YYYY-MM-DD).
func (s *Store) ListArchive(region, date string, limit int) ([]NewsRecord, error) {
	if s.DB == nil {
		return nil, fmt.Errorf("archive unavailable: no database configured")
	}
	if limit <= 0 || limit > 500 {
		limit = 50
	}

	db := s.DB.Model(&NewsRecord{})
	if region != "" {
		db = db.Where("region = ?", region)
	}
	if date != "" {
		db = db.Where("published_date = ?", date)
	}

	var list []NewsRecord
	if err := db.Order("published_at DESC").Limit(limit).Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}
