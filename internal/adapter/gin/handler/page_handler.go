package handler

import (
	"errors"
	"io"
	"net/http"

	"user-pages/internal/adapter/fetch"
	"user-pages/internal/usecase/user"
	apperrors "user-pages/pkg/errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PageHandler serves page data produced by the user loaders
type PageHandler struct {
	loader  user.Loader
	fetcher fetch.Fetcher
	log     *zap.Logger
}

// NewPageHandler creates a new PageHandler instance
func NewPageHandler(loader user.Loader, fetcher fetch.Fetcher, log *zap.Logger) *PageHandler {
	return &PageHandler{
		loader:  loader,
		fetcher: fetcher,
		log:     log,
	}
}

// ErrorResponse represents an error page
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// event builds the load event for the current route
func (h *PageHandler) event(c *gin.Context) user.Event {
	params := make(map[string]string, len(c.Params))
	for _, p := range c.Params {
		params[p.Key] = p.Value
	}
	return user.Event{
		Fetch:  h.fetcher,
		Params: params,
	}
}

// ListUsers handles GET /users
func (h *PageHandler) ListUsers(c *gin.Context) {
	page := h.loader.LoadUsers(c.Request.Context(), h.event(c))
	c.JSON(http.StatusOK, page)
}

// StreamUsers handles GET /stream/users as server-sent events
func (h *PageHandler) StreamUsers(c *gin.Context) {
	states := h.loader.WatchUsers(c.Request.Context(), h.event(c))

	c.Stream(func(w io.Writer) bool {
		state, ok := <-states
		if !ok {
			return false
		}
		c.SSEvent("state", state)
		return true
	})
}

// GetUser handles GET /users/:id
func (h *PageHandler) GetUser(c *gin.Context) {
	page, err := h.loader.LoadUser(c.Request.Context(), h.event(c))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, page)
}

// handleError renders an error escaped from a loader as an error page
func (h *PageHandler) handleError(c *gin.Context, err error) {
	var notFound *apperrors.NotFoundError
	if errors.As(err, &notFound) {
		h.log.Warn("page not found", zap.String("path", c.Request.URL.Path), zap.Error(err))
		c.JSON(http.StatusNotFound, ErrorResponse{
			Error:   "not_found",
			Message: notFound.Error(),
		})
		return
	}

	h.log.Error("page load failed", zap.String("path", c.Request.URL.Path), zap.Error(err))
	c.JSON(apperrors.StatusOf(err), ErrorResponse{
		Error:   "internal_error",
		Message: "An internal error occurred",
	})
}
