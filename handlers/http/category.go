package httpHandler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"collection-server/usecases"
)

type CategoryHandler struct {
	useCase *usecases.CategoryUseCase
}

func NewCategoryHandler(useCase *usecases.CategoryUseCase) *CategoryHandler {
	return &CategoryHandler{useCase: useCase}
}

// List handles GET /categories
func (h *CategoryHandler) List(c *gin.Context) {
	categories, err := h.useCase.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve categories"})
		return
	}

	responses := make([]CategoryResponse, 0, len(categories))
	for _, category := range categories {
		responses = append(responses, newCategoryResponse(category))
	}

	c.JSON(http.StatusOK, gin.H{
		"data":  responses,
		"count": len(responses),
	})
}
