package http

import (
	"net/http"

	"diner-service/internal/domain"

	"github.com/gin-gonic/gin"
)

func (h *Handler) ListDishes(c *gin.Context) {
	dishes, err := h.dishes.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dishes)
}

func (h *Handler) GetDish(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	dish, err := h.dishes.Get(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dish)
}

func (h *Handler) CreateDish(c *gin.Context) {
	var req DishRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	dish, err := h.dishes.Create(c.Request.Context(), dishFromRequest(&req))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dish)
}

func (h *Handler) UpdateDish(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req DishRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	dish, err := h.dishes.Update(c.Request.Context(), id, dishFromRequest(&req))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dish)
}

func (h *Handler) DeleteDish(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.dishes.Delete(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// UploadDishImage stores a multipart image and returns the public URL
// the dish record should reference.
func (h *Handler) UploadDishImage(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file uploaded"})
		return
	}

	src, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read upload"})
		return
	}
	defer src.Close()

	url, err := h.images.Save(fileHeader.Filename, src)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "File upload failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": url})
}

func dishFromRequest(req *DishRequest) *domain.Dish {
	return &domain.Dish{
		Name:        req.Name,
		Category:    req.Category,
		Price:       req.Price,
		Description: req.Description,
		Ingredients: req.Ingredients,
		ImageURL:    req.ImageURL,
	}
}
