package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/sarang-church/backend/models"
	"github.com/sarang-church/backend/services"
)

// NewsStore defines what the news handlers need from the persistence layer.
type NewsStore interface {
	List(ctx context.Context) ([]models.NewsPost, error)
	Create(ctx context.Context, post models.NewsPost) (*models.NewsPost, error)
	ReplaceAll(ctx context.Context, posts []models.NewsPost) (int, error)
	Patch(ctx context.Context, id int64, fields bson.M) (*models.NewsPost, error)
	Delete(ctx context.Context, id int64) error
}

// NewsHandler serves the /api/news endpoints.
type NewsHandler struct {
	store NewsStore
}

func NewNewsHandler(store NewsStore) *NewsHandler {
	return &NewsHandler{store: store}
}

// List handles GET /api/news.
func (h *NewsHandler) List(c *gin.Context) {
	items, err := h.store.List(c.Request.Context())
	if err != nil {
		logrus.WithError(err).Error("news list read failed")
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "read failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "count": len(items), "items": items})
}

// Create handles POST /api/news.
func (h *NewsHandler) Create(c *gin.Context) {
	var post models.NewsPost
	if err := c.ShouldBindJSON(&post); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid JSON body"})
		return
	}
	if err := post.ValidateNew(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": err.Error()})
		return
	}

	created, err := h.store.Create(c.Request.Context(), post)
	if err != nil {
		logrus.WithError(err).Error("news create write failed")
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "write failed"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"ok": true, "item": created})
}

// ReplaceAll handles PUT /api/news: the whole stored collection is
// overwritten from a JSON array body.
func (h *NewsHandler) ReplaceAll(c *gin.Context) {
	if c.ContentType() != "application/json" {
		c.JSON(http.StatusUnsupportedMediaType, gin.H{"ok": false, "error": "content-type must be application/json"})
		return
	}

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "failed to read request body"})
		return
	}

	trimmed := bytes.TrimLeft(body, " \t\r\n")
	if len(trimmed) == 0 || trimmed[0] != '[' {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "request body must be a JSON array"})
		return
	}

	var posts []models.NewsPost
	if err := json.Unmarshal(body, &posts); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid JSON body"})
		return
	}
	for i := range posts {
		if err := posts[i].ValidateNew(); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "item " + strconv.Itoa(i) + ": " + err.Error()})
			return
		}
	}

	count, err := h.store.ReplaceAll(c.Request.Context(), posts)
	if err != nil {
		logrus.WithError(err).Error("news replace write failed")
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "write failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "count": count})
}

// Update handles PUT/PATCH /api/news/:id as a partial patch: only fields
// present in the body change.
func (h *NewsHandler) Update(c *gin.Context) {
	id, ok := newsID(c)
	if !ok {
		return
	}

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "failed to read request body"})
		return
	}
	fields, err := models.ParsePatch(body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": err.Error()})
		return
	}

	updated, err := h.store.Patch(c.Request.Context(), id, fields)
	if errors.Is(err, services.ErrNewsNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "news not found"})
		return
	}
	if err != nil {
		logrus.WithError(err).WithField("id", id).Error("news update write failed")
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "write failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "item": updated})
}

// Delete handles DELETE /api/news/:id. No existence check: deleting an id
// that never existed still reports success.
func (h *NewsHandler) Delete(c *gin.Context) {
	id, ok := newsID(c)
	if !ok {
		return
	}

	if err := h.store.Delete(c.Request.Context(), id); err != nil {
		logrus.WithError(err).WithField("id", id).Error("news delete write failed")
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "write failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func newsID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid news id"})
		return 0, false
	}
	return id, true
}
