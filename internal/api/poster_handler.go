package api

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"jobboard/internal/poster"
)

// PosterHandler serves the poster CRUD endpoints.
type PosterHandler struct {
	repo   *poster.Repository
	logger *slog.Logger
}

// NewPosterHandler returns a PosterHandler.
func NewPosterHandler(repo *poster.Repository, logger *slog.Logger) *PosterHandler {
	return &PosterHandler{repo: repo, logger: logger}
}

// List returns every poster in creation order.
func (h *PosterHandler) List(c *gin.Context) {
	posters, err := h.repo.List()
	if err != nil {
		h.logger.Error("list posters", slog.String("error", err.Error()))
		Internal(c, "failed to load posters")
		return
	}
	c.JSON(http.StatusOK, posters)
}

// Create stores a new poster and returns it with its assigned id and
// creation timestamp.
func (h *PosterHandler) Create(c *gin.Context) {
	var fields poster.Fields
	if err := c.ShouldBindJSON(&fields); err != nil {
		BadRequest(c, err.Error())
		return
	}

	created, err := h.repo.Create(fields)
	if err != nil {
		h.logger.Error("create poster", slog.String("error", err.Error()))
		Internal(c, "failed to save poster")
		return
	}
	c.JSON(http.StatusOK, created)
}

// Update merges the provided fields over the stored poster. Fields absent
// from the body are preserved.
func (h *PosterHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		// A non-numeric id can never match a stored poster.
		NotFound(c, "Poster not found")
		return
	}

	var patch poster.Patch
	if err := c.ShouldBindJSON(&patch); err != nil {
		BadRequest(c, err.Error())
		return
	}

	updated, err := h.repo.Update(id, patch)
	switch {
	case errors.Is(err, poster.ErrNotFound):
		NotFound(c, "Poster not found")
	case err != nil:
		h.logger.Error("update poster", slog.Int64("id", id), slog.String("error", err.Error()))
		Internal(c, "failed to update poster")
	default:
		c.JSON(http.StatusOK, updated)
	}
}

// Delete removes the poster with the given id. Deletion is idempotent: an
// absent or unparsable id still succeeds.
func (h *PosterHandler) Delete(c *gin.Context) {
	if id, err := strconv.ParseInt(c.Param("id"), 10, 64); err == nil {
		if err := h.repo.Delete(id); err != nil {
			h.logger.Error("delete poster", slog.Int64("id", id), slog.String("error", err.Error()))
			Internal(c, "failed to delete poster")
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
