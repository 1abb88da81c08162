// Package server exposes the catalog repository as the Atelier REST API.
package server

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/atelier-dev/atelier-store/pkg/catalog"
)

// Catalog is the persistence surface the API serves. *repo.Repo
// implements it.
type Catalog interface {
	Snapshot(ctx context.Context) (*catalog.Snapshot, error)
	InsertArtwork(ctx context.Context, art catalog.Artwork) error
	DeleteArtwork(ctx context.Context, id string) error
	InsertBook(ctx context.Context, book catalog.Book) error
	DeleteBook(ctx context.Context, id string) error
	InsertJournal(ctx context.Context, post catalog.JournalPost) error
	DeleteJournal(ctx context.Context, id string) error
}

// Handler carries the dependencies of the API handlers.
type Handler struct {
	Store  Catalog
	Logger zerolog.Logger
}

// NewRouter builds the gin engine with all API routes mounted.
func NewRouter(store Catalog, logger zerolog.Logger) *gin.Engine {
	h := &Handler{Store: store, Logger: logger}

	r := gin.New()
	r.Use(gin.Recovery())

	// CORS: the API serves a browser client on another origin.
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, DELETE")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Accept-Encoding")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/sync", h.Sync)

		api.POST("/artworks", h.CreateArtwork)
		api.DELETE("/artworks/:id", h.DeleteArtwork)

		api.POST("/books", h.CreateBook)
		api.DELETE("/books/:id", h.DeleteBook)

		api.POST("/journal", h.CreateJournal)
		api.DELETE("/journal/:id", h.DeleteJournal)
	}

	return r
}

// Health reports liveness.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Sync serves the full catalog snapshot used at client bootstrap.
func (h *Handler) Sync(c *gin.Context) {
	snap, err := h.Store.Snapshot(c.Request.Context())
	if err != nil {
		h.Logger.Error().Err(err).Msg("snapshot failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database fetch error"})
		return
	}
	c.JSON(http.StatusOK, snap)
}

func (h *Handler) CreateArtwork(c *gin.Context) {
	var art catalog.Artwork
	if err := c.ShouldBindJSON(&art); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if art.ID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id is required"})
		return
	}
	if err := h.Store.InsertArtwork(c.Request.Context(), art); err != nil {
		h.Logger.Error().Err(err).Str("id", art.ID).Msg("insert artwork failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *Handler) DeleteArtwork(c *gin.Context) {
	if err := h.Store.DeleteArtwork(c.Request.Context(), c.Param("id")); err != nil {
		h.Logger.Error().Err(err).Str("id", c.Param("id")).Msg("delete artwork failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *Handler) CreateBook(c *gin.Context) {
	var book catalog.Book
	if err := c.ShouldBindJSON(&book); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if book.ID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id is required"})
		return
	}
	if err := h.Store.InsertBook(c.Request.Context(), book); err != nil {
		h.Logger.Error().Err(err).Str("id", book.ID).Msg("insert book failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *Handler) DeleteBook(c *gin.Context) {
	if err := h.Store.DeleteBook(c.Request.Context(), c.Param("id")); err != nil {
		h.Logger.Error().Err(err).Str("id", c.Param("id")).Msg("delete book failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *Handler) CreateJournal(c *gin.Context) {
	var post catalog.JournalPost
	if err := c.ShouldBindJSON(&post); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if post.ID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id is required"})
		return
	}
	if err := h.Store.InsertJournal(c.Request.Context(), post); err != nil {
		h.Logger.Error().Err(err).Str("id", post.ID).Msg("insert journal post failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *Handler) DeleteJournal(c *gin.Context) {
	if err := h.Store.DeleteJournal(c.Request.Context(), c.Param("id")); err != nil {
		h.Logger.Error().Err(err).Str("id", c.Param("id")).Msg("delete journal post failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
