package httpHandler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"collection-server/middleware"
	"collection-server/usecases"
)

type ItemHandler struct {
	useCase *usecases.ItemUseCase
}

func NewItemHandler(useCase *usecases.ItemUseCase) *ItemHandler {
	return &ItemHandler{useCase: useCase}
}

type ItemRequest struct {
	Name        string `json:"name" binding:"required"`
	CategoryID  uint   `json:"category_id" binding:"required"`
	Description string `json:"description"`
	Condition   string `json:"condition"`
}

// List handles GET /collections/:id/items
func (h *ItemHandler) List(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	collectionID, ok := pathID(c, "id")
	if !ok {
		return
	}

	items, err := h.useCase.List(collectionID, userID)
	if err != nil {
		if errors.Is(err, usecases.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Collection not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve items"})
		return
	}

	responses := make([]ItemResponse, 0, len(items))
	for _, item := range items {
		responses = append(responses, newItemResponse(item))
	}

	c.JSON(http.StatusOK, gin.H{
		"data":  responses,
		"count": len(responses),
	})
}

// Get handles GET /collections/:id/items/:itemId
func (h *ItemHandler) Get(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	collectionID, ok := pathID(c, "id")
	if !ok {
		return
	}
	itemID, ok := pathID(c, "itemId")
	if !ok {
		return
	}

	item, err := h.useCase.Get(collectionID, itemID, userID)
	if err != nil {
		if errors.Is(err, usecases.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve item"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": newItemResponse(*item)})
}

// Create handles POST /collections/:id/items
func (h *ItemHandler) Create(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	collectionID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req ItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	item, err := h.useCase.Create(collectionID, userID, req.Name, req.CategoryID, req.Description, req.Condition)
	if err != nil {
		switch {
		case errors.Is(err, usecases.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Collection not found"})
		case errors.Is(err, usecases.ErrCategoryNotFound):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create item"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Item created successfully",
		"data":    newItemResponse(*item),
	})
}

// Update handles PUT /collections/:id/items/:itemId
func (h *ItemHandler) Update(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	collectionID, ok := pathID(c, "id")
	if !ok {
		return
	}
	itemID, ok := pathID(c, "itemId")
	if !ok {
		return
	}

	var req ItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	err := h.useCase.Update(collectionID, itemID, userID, req.Name, req.CategoryID, req.Description, req.Condition)
	if err != nil {
		switch {
		case errors.Is(err, usecases.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
		case errors.Is(err, usecases.ErrCategoryNotFound):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update item"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// Delete handles DELETE /collections/:id/items/:itemId
func (h *ItemHandler) Delete(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	collectionID, ok := pathID(c, "id")
	if !ok {
		return
	}
	itemID, ok := pathID(c, "itemId")
	if !ok {
		return
	}

	if err := h.useCase.Delete(collectionID, itemID, userID); err != nil {
		if errors.Is(err, usecases.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete item"})
		return
	}

	c.Status(http.StatusNoContent)
}
