package http

import (
	"fmt"
	"net/http"
	"strconv"

	"diner-service/internal/domain"

	"github.com/gin-gonic/gin"
	qrcode "github.com/skip2/go-qrcode"
)

func (h *Handler) ListTables(c *gin.Context) {
	tables, err := h.tables.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, tables)
}

func (h *Handler) ListAvailableTables(c *gin.Context) {
	tables, err := h.tables.ListAvailable(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, tables)
}

func (h *Handler) CreateTable(c *gin.Context) {
	var req TableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	table, err := h.tables.Create(c.Request.Context(), tableFromRequest(&req))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, table)
}

func (h *Handler) UpdateTable(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req TableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	table, err := h.tables.Update(c.Request.Context(), id, tableFromRequest(&req))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, table)
}

func (h *Handler) UpdateTableStatus(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req TableStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	table, err := h.tables.UpdateStatus(c.Request.Context(), id, domain.TableStatus(req.Status))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, table)
}

func (h *Handler) DeleteTable(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.tables.Delete(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// TableQRCode renders a PNG linking guests to the public reservation
// page for this table.
func (h *Handler) TableQRCode(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	table, err := h.tables.Get(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}

	url := fmt.Sprintf("%s/reserve?table=%d", h.publicBaseURL, table.ID)
	png, err := qrcode.Encode(url, qrcode.Medium, 256)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate QR code"})
		return
	}
	c.Data(http.StatusOK, "image/png", png)
}

func tableFromRequest(req *TableRequest) *domain.RestaurantTable {
	return &domain.RestaurantTable{
		Name:       req.Name,
		Capacity:   req.Capacity,
		Status:     domain.TableStatus(req.Status),
		Location:   req.Location,
		GridX:      req.GridX,
		GridY:      req.GridY,
		GridWidth:  req.GridWidth,
		GridHeight: req.GridHeight,
	}
}

// pathID parses a numeric path parameter, answering 400 itself when
// the value is not a positive integer.
func pathID(c *gin.Context, name string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return 0, false
	}
	return id, true
}
