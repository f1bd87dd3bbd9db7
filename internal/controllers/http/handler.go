package http

import (
	"net/http"

	"diner-service/internal/apperr"
	"diner-service/internal/auth"
	"diner-service/internal/infra"
	"diner-service/internal/services"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	tables       *services.TableService
	reservations *services.ReservationService
	orders       *services.OrderService
	dishes       *services.DishService
	sales        *services.SalesService
	admins       *services.AdminUserService
	sessions     *auth.SessionStore
	images       infra.ImageStoreInterface

	publicBaseURL string
}

func NewHandler(
	tables *services.TableService,
	reservations *services.ReservationService,
	orders *services.OrderService,
	dishes *services.DishService,
	sales *services.SalesService,
	admins *services.AdminUserService,
	sessions *auth.SessionStore,
	images infra.ImageStoreInterface,
	publicBaseURL string,
) *Handler {
	return &Handler{
		tables:        tables,
		reservations:  reservations,
		orders:        orders,
		dishes:        dishes,
		sales:         sales,
		admins:        admins,
		sessions:      sessions,
		images:        images,
		publicBaseURL: publicBaseURL,
	}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	public := r.Group("/api/v1/reservations")
	{
		public.POST("", h.CreateReservation)
		public.GET("/:id", h.GetReservation)
		public.PUT("/:id", h.UpdateReservation)
		public.DELETE("/:id", h.CancelReservation)
	}

	authGroup := r.Group("/api/v1/admin/auth")
	{
		authGroup.POST("/login", h.Login)
		authGroup.GET("/status", h.AuthStatus)
		authGroup.POST("/logout", auth.RequireSession(h.sessions), h.Logout)
	}

	admin := r.Group("/api/v1/admin", auth.RequireSession(h.sessions))
	{
		tables := admin.Group("/tables")
		{
			tables.GET("", h.ListTables)
			tables.GET("/available", h.ListAvailableTables)
			tables.POST("", h.CreateTable)
			tables.PUT("/:id", h.UpdateTable)
			tables.PUT("/:id/status", h.UpdateTableStatus)
			tables.DELETE("/:id", h.DeleteTable)
			tables.GET("/:id/qrcode", h.TableQRCode)
		}

		reservations := admin.Group("/reservations")
		{
			reservations.GET("", h.ListReservations)
			reservations.GET("/:id", h.GetReservation)
			reservations.GET("/phone/:phone", h.ListReservationsByPhone)
			reservations.GET("/name/:name", h.ListReservationsByName)
			reservations.GET("/status/:status", h.ListReservationsByStatus)
			reservations.GET("/today", h.ListTodayReservations)
			reservations.POST("", h.CreateReservation)
			reservations.PUT("/:id", h.UpdateReservation)
			reservations.PUT("/:id/confirm", h.ConfirmReservation)
			reservations.DELETE("/:id", h.CancelReservation)
		}

		dishes := admin.Group("/dishes")
		{
			dishes.GET("", h.ListDishes)
			dishes.GET("/:id", h.GetDish)
			dishes.POST("", h.CreateDish)
			dishes.PUT("/:id", h.UpdateDish)
			dishes.DELETE("/:id", h.DeleteDish)
			dishes.POST("/uploadImage", h.UploadDishImage)
		}

		orders := admin.Group("/orders")
		{
			orders.POST("", h.OpenOrder)
			orders.GET("", h.ListOrders)
			orders.GET("/:orderId", h.GetOrder)
			orders.POST("/:orderId/items", h.AddOrderItems)
			orders.GET("/:orderId/items", h.GetOrderItems)
			orders.DELETE("/:orderId/items/:itemId", h.RemoveOrderItem)
			orders.PUT("/:orderId/close", h.CloseOrder)
			orders.GET("/closed/today", h.TodayClosedOrders)
			orders.GET("/closed/today/sales", h.TodaySales)
			orders.GET("/closed/history", h.ClosedOrdersByDate)
			orders.GET("/closed/history/sales", h.SalesByDate)
		}

		admin.GET("/daily-sales", h.DailySalesBetween)
	}
}

// writeError translates service errors into status codes. Everything
// unrecognized is a 500 with a generic body.
func writeError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch apperr.KindOf(err) {
	case apperr.NotFound:
		status = http.StatusNotFound
	case apperr.Conflict:
		status = http.StatusConflict
	case apperr.InvalidArgument:
		status = http.StatusBadRequest
	}
	if status == http.StatusInternalServerError {
		c.JSON(status, gin.H{"error": "internal error"})
		return
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
