package web

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"reelrank/internal/catalog"
	"reelrank/internal/movies"
	"reelrank/internal/tmdb"
)

// Handlers adapts HTTP requests to the catalog workflows. All
// dependencies are injected; the package keeps no globals.
type Handlers struct {
	store  catalog.Store
	client catalog.Metadata
	logger *slog.Logger
}

func NewHandlers(store catalog.Store, client catalog.Metadata, logger *slog.Logger) *Handlers {
	return &Handlers{store: store, client: client, logger: logger}
}

// Register wires the five workflow routes onto the router.
func (h *Handlers) Register(r *gin.Engine) {
	r.GET("/", h.HomeHandler)
	r.GET("/add", h.AddFormHandler)
	r.POST("/add", h.SearchHandler)
	r.GET("/find", h.FindHandler)
	r.GET("/edit", h.EditFormHandler)
	r.POST("/edit", h.RateHandler)
	r.GET("/delete", h.DeleteHandler)
}

func (h *Handlers) HomeHandler(c *gin.Context) {
	ranked, err := catalog.ListRanked(h.store)
	if err != nil {
		h.renderError(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.HTML(http.StatusOK, "index.html", gin.H{"movies": ranked})
}

func (h *Handlers) AddFormHandler(c *gin.Context) {
	c.HTML(http.StatusOK, "add.html", gin.H{})
}

func (h *Handlers) SearchHandler(c *gin.Context) {
	result, err := catalog.SearchForTitle(h.client, catalog.SearchInput{
		Title:     c.PostForm("title"),
		Submitted: true,
	})
	if err != nil {
		h.renderError(c, http.StatusBadGateway, "movie search is temporarily unavailable")
		return
	}
	if result.Validation != nil {
		c.HTML(http.StatusBadRequest, "add.html", gin.H{"error": result.Validation.Message})
		return
	}
	c.HTML(http.StatusOK, "select.html", gin.H{"options": result.Candidates})
}

func (h *Handlers) FindHandler(c *gin.Context) {
	externalID, err := strconv.Atoi(c.Query("id"))
	if err != nil {
		h.renderError(c, http.StatusBadRequest, "invalid movie id")
		return
	}

	result, err := catalog.ConfirmCandidate(h.store, h.client, externalID)
	if err != nil {
		switch {
		case errors.Is(err, movies.ErrDuplicateTitle):
			h.renderError(c, http.StatusConflict, "that movie is already in your list")
		case errors.Is(err, tmdb.ErrUpstream):
			h.renderError(c, http.StatusBadGateway, "movie lookup is temporarily unavailable")
		default:
			h.renderError(c, http.StatusInternalServerError, err.Error())
		}
		return
	}

	c.Redirect(http.StatusFound, "/edit?id="+strconv.FormatUint(uint64(result.Movie.ID), 10))
}

func (h *Handlers) EditFormHandler(c *gin.Context) {
	id, ok := h.movieID(c)
	if !ok {
		return
	}

	result, err := catalog.RateExisting(h.store, catalog.RateInput{ID: id})
	if err != nil {
		h.workflowError(c, err)
		return
	}
	c.HTML(http.StatusOK, "edit.html", gin.H{"movie": result.Movie})
}

func (h *Handlers) RateHandler(c *gin.Context) {
	id, ok := h.movieID(c)
	if !ok {
		return
	}

	result, err := catalog.RateExisting(h.store, catalog.RateInput{
		ID:        id,
		Rating:    c.PostForm("rating"),
		Review:    c.PostForm("review"),
		Submitted: true,
	})
	if err != nil {
		h.workflowError(c, err)
		return
	}
	if result.Validation != nil {
		c.HTML(http.StatusBadRequest, "edit.html", gin.H{
			"movie": result.Movie,
			"error": result.Validation.Message,
		})
		return
	}
	c.Redirect(http.StatusFound, "/")
}

func (h *Handlers) DeleteHandler(c *gin.Context) {
	id, ok := h.movieID(c)
	if !ok {
		return
	}

	if _, err := catalog.RemoveRecord(h.store, id); err != nil {
		h.workflowError(c, err)
		return
	}
	c.Redirect(http.StatusFound, "/")
}

func (h *Handlers) movieID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Query("id"), 10, 64)
	if err != nil {
		h.renderError(c, http.StatusBadRequest, "invalid movie id")
		return 0, false
	}
	return uint(id), true
}

func (h *Handlers) workflowError(c *gin.Context, err error) {
	if errors.Is(err, movies.ErrNotFound) {
		h.renderError(c, http.StatusNotFound, "movie not found")
		return
	}
	h.renderError(c, http.StatusInternalServerError, err.Error())
}

func (h *Handlers) renderError(c *gin.Context, status int, message string) {
	if status >= http.StatusInternalServerError {
		h.logger.Error("request failed", slog.Int("status", status), slog.String("error", message))
	}
	c.HTML(status, "error.html", gin.H{"error": message})
}
