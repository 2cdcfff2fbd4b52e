package handlers

import (
	"net/http"

	"lounge_backend/internal/middleware"
	"lounge_backend/internal/services"
	"lounge_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type SubscriptionHandler struct {
	*BaseHandler
	subscriptionService services.SubscriptionService
}

func NewSubscriptionHandler(base *BaseHandler, subscriptionService services.SubscriptionService) *SubscriptionHandler {
	return &SubscriptionHandler{
		BaseHandler:         base,
		subscriptionService: subscriptionService,
	}
}

func (h *SubscriptionHandler) RegisterRoutes(r *gin.RouterGroup) {
	subscriptions := r.Group("/subscriptions")
	subscriptions.Use(middleware.AuthMiddleware())
	{
		subscriptions.GET("/user/:userId", h.ListByUser)
		subscriptions.GET("/:id", h.GetByID)
		subscriptions.GET("/:id/status", h.CheckStatus)
		subscriptions.PATCH("/:id/cancel", h.Cancel)

		admin := subscriptions.Group("")
		admin.Use(middleware.AdminMiddleware())
		{
			admin.POST("", h.Create)
			admin.GET("", h.List)
			admin.PATCH("/:id", h.Update)
			admin.DELETE("/:id", h.Delete)
		}
	}

	transactions := r.Group("/subscription-transactions")
	transactions.Use(middleware.AuthMiddleware())
	{
		transactions.GET("/user/:userId", h.ListTransactionsByUser)
		transactions.GET("/:id", h.GetTransaction)

		admin := transactions.Group("")
		admin.Use(middleware.AdminMiddleware())
		{
			admin.POST("", h.CreateTransaction)
			admin.GET("", h.ListTransactions)
			admin.PATCH("/:id", h.UpdateTransaction)
			admin.DELETE("/:id", h.DeleteTransaction)
		}
	}
}

func (h *SubscriptionHandler) Create(c *gin.Context) {
	var req dto.CreateSubscriptionRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	subscription, err := h.subscriptionService.Create(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, subscription)
}

func (h *SubscriptionHandler) List(c *gin.Context) {
	subscriptions, err := h.subscriptionService.List()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, subscriptions)
}

func (h *SubscriptionHandler) ListByUser(c *gin.Context) {
	subscriptions, err := h.subscriptionService.ListByUser(c.Param("userId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, subscriptions)
}

func (h *SubscriptionHandler) GetByID(c *gin.Context) {
	subscription, err := h.subscriptionService.GetByID(c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, subscription)
}

func (h *SubscriptionHandler) Update(c *gin.Context) {
	var req dto.UpdateSubscriptionRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	subscription, err := h.subscriptionService.Update(c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, subscription)
}

func (h *SubscriptionHandler) Delete(c *gin.Context) {
	if err := h.subscriptionService.Delete(c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Subscription deleted"})
}

func (h *SubscriptionHandler) Cancel(c *gin.Context) {
	subscription, err := h.subscriptionService.Cancel(c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, subscription)
}

// CheckStatus - действует ли подписка и сколько дней осталось
func (h *SubscriptionHandler) CheckStatus(c *gin.Context) {
	status, err := h.subscriptionService.CheckStatus(c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, status)
}

// --- Журнал платежей ---

func (h *SubscriptionHandler) CreateTransaction(c *gin.Context) {
	var req dto.CreateTransactionRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	tx, err := h.subscriptionService.CreateTransaction(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, tx)
}

func (h *SubscriptionHandler) ListTransactions(c *gin.Context) {
	txs, err := h.subscriptionService.ListTransactions()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, txs)
}

func (h *SubscriptionHandler) ListTransactionsByUser(c *gin.Context) {
	txs, err := h.subscriptionService.ListTransactionsByUser(c.Param("userId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, txs)
}

func (h *SubscriptionHandler) GetTransaction(c *gin.Context) {
	tx, err := h.subscriptionService.GetTransaction(c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, tx)
}

func (h *SubscriptionHandler) UpdateTransaction(c *gin.Context) {
	var req dto.UpdateTransactionRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	tx, err := h.subscriptionService.UpdateTransaction(c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, tx)
}

func (h *SubscriptionHandler) DeleteTransaction(c *gin.Context) {
	if err := h.subscriptionService.DeleteTransaction(c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Transaction deleted"})
}
