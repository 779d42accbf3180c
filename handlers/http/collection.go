package httpHandler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"collection-server/middleware"
	"collection-server/usecases"
)

type CollectionHandler struct {
	useCase *usecases.CollectionUseCase
}

func NewCollectionHandler(useCase *usecases.CollectionUseCase) *CollectionHandler {
	return &CollectionHandler{useCase: useCase}
}

type CollectionRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

func pathID(c *gin.Context, name string) (uint, bool) {
	raw, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + name})
		return 0, false
	}
	return uint(raw), true
}

// List handles GET /collections
func (h *CollectionHandler) List(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	collections, err := h.useCase.ListOwned(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve collections"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":  newCollectionResponses(collections),
		"count": len(collections),
	})
}

// ListShared handles GET /collections/shares
func (h *CollectionHandler) ListShared(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	collections, err := h.useCase.ListShared(userID)
	if err != nil {
		if errors.Is(err, usecases.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "No shared collections"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve shared collections"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":  newCollectionResponses(collections),
		"count": len(collections),
	})
}

// Get handles GET /collections/:id
func (h *CollectionHandler) Get(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	collection, err := h.useCase.Get(id, userID)
	if err != nil {
		if errors.Is(err, usecases.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Collection not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve collection"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": newCollectionResponse(*collection)})
}

// Create handles POST /collections
func (h *CollectionHandler) Create(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req CollectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	collection, err := h.useCase.Create(userID, req.Name, req.Description)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create collection"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Collection created successfully",
		"data":    newCollectionResponse(*collection),
	})
}

// Update handles PUT /collections/:id
func (h *CollectionHandler) Update(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req CollectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	if err := h.useCase.Update(id, userID, req.Name, req.Description); err != nil {
		if errors.Is(err, usecases.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Collection not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update collection"})
		return
	}

	c.Status(http.StatusNoContent)
}

// Delete handles DELETE /collections/:id
func (h *CollectionHandler) Delete(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.useCase.Delete(id, userID); err != nil {
		if errors.Is(err, usecases.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Collection not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete collection"})
		return
	}

	c.Status(http.StatusNoContent)
}
