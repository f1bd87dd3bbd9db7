package http

import (
	"net/http"

	"diner-service/internal/domain"

	"github.com/gin-gonic/gin"
)

func (h *Handler) CreateReservation(c *gin.Context) {
	var req ReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	res, err := h.reservations.Create(c.Request.Context(), &domain.Reservation{
		CustomerName:    req.CustomerName,
		CustomerPhone:   req.CustomerPhone,
		ReservationTime: req.ReservationTime,
		NumberOfGuests:  req.NumberOfGuests,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, res)
}

func (h *Handler) GetReservation(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	res, err := h.reservations.Get(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *Handler) UpdateReservation(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req ReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	res, err := h.reservations.Update(c.Request.Context(), id, &domain.Reservation{
		CustomerName:    req.CustomerName,
		CustomerPhone:   req.CustomerPhone,
		ReservationTime: req.ReservationTime,
		NumberOfGuests:  req.NumberOfGuests,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *Handler) CancelReservation(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.reservations.Cancel(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) ConfirmReservation(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req ConfirmReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.reservations.Confirm(c.Request.Context(), id, req.TableID); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) ListReservations(c *gin.Context) {
	out, err := h.reservations.ListAll(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *Handler) ListReservationsByPhone(c *gin.Context) {
	out, err := h.reservations.ListByCustomerPhone(c.Request.Context(), c.Param("phone"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *Handler) ListReservationsByName(c *gin.Context) {
	out, err := h.reservations.ListByCustomerName(c.Request.Context(), c.Param("name"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *Handler) ListReservationsByStatus(c *gin.Context) {
	out, err := h.reservations.ListByStatus(c.Request.Context(), domain.ReservationStatus(c.Param("status")))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *Handler) ListTodayReservations(c *gin.Context) {
	out, err := h.reservations.ListToday(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}
