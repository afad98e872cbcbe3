package api

import (
	"context"
	"log"
	"net/http"
	"strconv"

	"github.com/Donnel-prog/PintigButuan/internal/processor"
	"github.com/Donnel-prog/PintigButuan/internal/storage"
	"github.com/gin-gonic/gin"
)

// NewsProvider runs the aggregation pipeline. Both operations always
// return a displayable collection.
type NewsProvider interface {
	FetchNews(ctx context.Context) []processor.Article
	FetchMockNews(ctx context.Context) []processor.Article
}

// Snapshot reads the cached last-known-good collection.
type Snapshot interface {
	LoadArticles(ctx context.Context) ([]processor.Article, error)
}

// Archive lists stored article rows.
type Archive interface {
	ListArchive(region, date string, limit int) ([]storage.NewsRecord, error)
}

type Server struct {
	news    NewsProvider
	snap    Snapshot
	archive Archive // nil when no database is configured
}

func NewServer(news NewsProvider, snap Snapshot, archive Archive) *Server {
	return &Server{news: news, snap: snap, archive: archive}
}

func (s *Server) RegisterRoutes(r *gin.Engine) {
	r.GET("/health", s.health)

	v1 := r.Group("/api/v1")
	{
		v1.GET("/news", s.listNews)
		v1.GET("/news/mock", s.mockNews)
		v1.GET("/news/archive", s.listArchive)
	}
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// listNews serves the cached collection when one exists; an empty cache or
// refresh=1 triggers a full aggregation run. The pipeline never errors, so
// neither does this handler.
func (s *Server) listNews(c *gin.Context) {
	ctx := c.Request.Context()

	refresh := c.Query("refresh") == "1" || c.Query("refresh") == "true"

	var articles []processor.Article
	if !refresh && s.snap != nil {
		cached, err := s.snap.LoadArticles(ctx)
		if err != nil {
			log.Printf("snapshot read failed: %v", err)
		} else {
			articles = cached
		}
	}
	if len(articles) == 0 {
		articles = s.news.FetchNews(ctx)
	}

	if region := c.Query("region"); region != "" {
		filtered := make([]processor.Article, 0, len(articles))
		for _, a := range articles {
			if a.Region == region {
				filtered = append(filtered, a)
			}
		}
		articles = filtered
	}

	if limit, err := strconv.Atoi(c.DefaultQuery("limit", "0")); err == nil && limit > 0 && len(articles) > limit {
		articles = articles[:limit]
	}

	c.JSON(http.StatusOK, gin.H{
		"code":    "ok",
		"message": "success",
		"data":    articles,
	})
}

func (s *Server) mockNews(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"code":    "ok",
		"message": "success",
		"data":    s.news.FetchMockNews(c.Request.Context()),
	})
}

func (s *Server) listArchive(c *gin.Context) {
	if s.archive == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"code":    "archive_unavailable",
			"message": "no database configured",
		})
		return
	}

	limit, err := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if err != nil || limit <= 0 {
		limit = 50
	}

	list, err := s.archive.ListArchive(c.Query("region"), c.Query("date"), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"code":    "internal_error",
			"message": "internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"code":    "ok",
		"message": "success",
		"data":    list,
	})
}
