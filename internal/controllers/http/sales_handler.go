package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handler) DailySalesBetween(c *gin.Context) {
	sales, err := h.sales.Between(c.Request.Context(), c.Query("start"), c.Query("end"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, sales)
}
