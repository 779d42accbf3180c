package httpHandler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"collection-server/middleware"
	"collection-server/usecases"
)

type ShareHandler struct {
	useCase *usecases.ShareUseCase
}

func NewShareHandler(useCase *usecases.ShareUseCase) *ShareHandler {
	return &ShareHandler{useCase: useCase}
}

type ShareRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// Create handles POST /collections/:id/shares
func (h *ShareHandler) Create(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	collectionID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req ShareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	share, err := h.useCase.Create(collectionID, userID, req.Email)
	if err != nil {
		switch {
		case errors.Is(err, usecases.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Collection or user not found"})
		case errors.Is(err, usecases.ErrSelfShare):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, usecases.ErrDuplicateShare):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to share collection"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Collection shared successfully",
		"data":    newShareResponse(*share),
	})
}

// Delete handles DELETE /collections/:id/shares/:shareId
func (h *ShareHandler) Delete(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	collectionID, ok := pathID(c, "id")
	if !ok {
		return
	}
	shareID, ok := pathID(c, "shareId")
	if !ok {
		return
	}

	if err := h.useCase.Delete(collectionID, shareID, userID); err != nil {
		switch {
		case errors.Is(err, usecases.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Share not found"})
		case errors.Is(err, usecases.ErrNotAllowed):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to revoke share"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
