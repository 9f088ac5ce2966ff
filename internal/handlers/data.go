package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/selmenealex/my-finance/internal/auth"
	"github.com/selmenealex/my-finance/internal/repo"
	"github.com/selmenealex/my-finance/internal/service"

	"github.com/gin-gonic/gin"
)

// DataHandler reads and replaces the caller's data blob.
type DataHandler struct {
	svc *service.DataService
}

// NewDataHandler returns a new DataHandler.
func NewDataHandler(svc *service.DataService) *DataHandler {
	return &DataHandler{svc: svc}
}

// Get handles GET /api/data and returns the stored blob verbatim.
func (h *DataHandler) Get(c *gin.Context) {
	username := auth.UsernameFromContext(c)
	data, err := h.svc.Get(c.Request.Context(), username)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			// Account deleted out-of-band; the token maps to nobody now.
			c.Status(http.StatusUnauthorized)
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", data)
}

// Save handles POST /api/data, overwriting the stored blob with the request
// body. Any JSON value is accepted as-is.
func (h *DataHandler) Save(c *gin.Context) {
	username := auth.UsernameFromContext(c)
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if !json.Valid(body) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON body"})
		return
	}
	if err := h.svc.Replace(c.Request.Context(), username, body); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			c.Status(http.StatusUnauthorized)
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
