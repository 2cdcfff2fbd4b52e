package handlers

import (
	"net/http"

	"lounge_backend/internal/middleware"
	"lounge_backend/internal/repositories"
	"lounge_backend/internal/services"
	"lounge_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	*BaseHandler
	bookingService   services.BookingService
	subscriptionRepo repositories.SubscriptionRepository
}

func NewBookingHandler(
	base *BaseHandler,
	bookingService services.BookingService,
	subscriptionRepo repositories.SubscriptionRepository,
) *BookingHandler {
	return &BookingHandler{
		BaseHandler:      base,
		bookingService:   bookingService,
		subscriptionRepo: subscriptionRepo,
	}
}

func (h *BookingHandler) RegisterRoutes(r *gin.RouterGroup) {
	bookings := r.Group("/bookings")
	bookings.Use(middleware.AuthMiddleware())
	{
		// Новая бронь требует действующую подписку
		bookings.POST("", middleware.SubscriptionMiddleware(h.subscriptionRepo), h.Create)

		bookings.GET("", h.List)
		bookings.GET("/user", h.ListOwn)
		bookings.GET("/:id", h.GetByID)
		bookings.PATCH("/:id", h.Update)
		bookings.DELETE("/:id", h.Delete)

		bookings.PATCH("/:id/cancel", h.Cancel)

		admin := bookings.Group("")
		admin.Use(middleware.AdminMiddleware())
		{
			admin.PATCH("/:id/confirm", h.Confirm)
			admin.PATCH("/:id/complete", h.Complete)
		}
	}
}

// Create - новая бронь. UserID берется из токена; переопределить его
// в теле может только админ.
func (h *BookingHandler) Create(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateBookingRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	if req.UserID == "" || !h.IsAdmin(c) {
		req.UserID = userID
	}

	booking, err := h.bookingService.Create(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, booking)
}

func (h *BookingHandler) List(c *gin.Context) {
	var query dto.ListBookingsQuery
	if !h.BindAndValidate_Query(c, &query) {
		return
	}

	bookings, err := h.bookingService.List(&query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, bookings)
}

// ListOwn - брони текущего пользователя
func (h *BookingHandler) ListOwn(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	bookings, err := h.bookingService.ListByUser(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, bookings)
}

func (h *BookingHandler) GetByID(c *gin.Context) {
	booking, err := h.bookingService.GetByID(c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, booking)
}

func (h *BookingHandler) Update(c *gin.Context) {
	var req dto.UpdateBookingRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	booking, err := h.bookingService.Update(c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, booking)
}

func (h *BookingHandler) Delete(c *gin.Context) {
	if err := h.bookingService.Delete(c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Booking deleted"})
}

func (h *BookingHandler) Confirm(c *gin.Context) {
	booking, err := h.bookingService.Confirm(c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, booking)
}

func (h *BookingHandler) Cancel(c *gin.Context) {
	booking, err := h.bookingService.Cancel(c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, booking)
}

func (h *BookingHandler) Complete(c *gin.Context) {
	booking, err := h.bookingService.Complete(c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, booking)
}
