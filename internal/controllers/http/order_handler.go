package http

import (
	"net/http"
	"strconv"
	"time"

	"diner-service/internal/domain"
	"diner-service/internal/services"

	"github.com/gin-gonic/gin"
)

func (h *Handler) OpenOrder(c *gin.Context) {
	var req OpenOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order, err := h.orders.Open(c.Request.Context(), req.TableID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *Handler) GetOrder(c *gin.Context) {
	id, ok := pathID(c, "orderId")
	if !ok {
		return
	}

	order, err := h.orders.Get(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *Handler) ListOrders(c *gin.Context) {
	status := domain.OrderStatus(c.Query("status"))
	page, _ := strconv.Atoi(c.DefaultQuery("page", "0"))
	size, _ := strconv.Atoi(c.DefaultQuery("size", "10"))

	result, err := h.orders.Page(c.Request.Context(), status, page, size)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *Handler) AddOrderItems(c *gin.Context) {
	id, ok := pathID(c, "orderId")
	if !ok {
		return
	}

	var reqs []OrderItemRequest
	if err := c.ShouldBindJSON(&reqs); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	lines := make([]services.OrderItemLine, 0, len(reqs))
	for _, r := range reqs {
		lines = append(lines, services.OrderItemLine{DishID: r.DishID, Quantity: r.Quantity})
	}

	order, err := h.orders.AddItems(c.Request.Context(), id, lines)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *Handler) GetOrderItems(c *gin.Context) {
	id, ok := pathID(c, "orderId")
	if !ok {
		return
	}

	items, err := h.orders.Items(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *Handler) RemoveOrderItem(c *gin.Context) {
	orderID, ok := pathID(c, "orderId")
	if !ok {
		return
	}
	itemID, ok := pathID(c, "itemId")
	if !ok {
		return
	}

	if err := h.orders.RemoveItem(c.Request.Context(), orderID, itemID); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) CloseOrder(c *gin.Context) {
	id, ok := pathID(c, "orderId")
	if !ok {
		return
	}

	// The close request body is optional.
	var req CloseOrderRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	order, err := h.orders.Close(c.Request.Context(), id, req.TableID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *Handler) TodayClosedOrders(c *gin.Context) {
	orders, err := h.orders.TodayClosed(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (h *Handler) TodaySales(c *gin.Context) {
	total, err := h.orders.TodaySales(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"sales": total})
}

func (h *Handler) ClosedOrdersByDate(c *gin.Context) {
	date, ok := queryDate(c)
	if !ok {
		return
	}

	orders, err := h.orders.ClosedByDate(c.Request.Context(), date)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (h *Handler) SalesByDate(c *gin.Context) {
	date, ok := queryDate(c)
	if !ok {
		return
	}

	total, err := h.orders.SalesByDate(c.Request.Context(), date)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"sales": total})
}

func queryDate(c *gin.Context) (time.Time, bool) {
	date, err := time.ParseInLocation(domain.DateLayout, c.Query("date"), time.Local)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date, expected YYYY-MM-DD"})
		return time.Time{}, false
	}
	return date, true
}
