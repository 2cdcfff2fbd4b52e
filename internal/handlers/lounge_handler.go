package handlers

import (
	"net/http"
	"time"

	"lounge_backend/internal/middleware"
	"lounge_backend/internal/services"
	"lounge_backend/internal/services/dto"
	"lounge_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

type LoungeHandler struct {
	*BaseHandler
	loungeService services.LoungeService
	uploadService services.UploadService
	cache         *redis.Client
	cacheTTL      time.Duration
}

func NewLoungeHandler(
	base *BaseHandler,
	loungeService services.LoungeService,
	uploadService services.UploadService,
	cache *redis.Client,
	cacheTTL time.Duration,
) *LoungeHandler {
	return &LoungeHandler{
		BaseHandler:   base,
		loungeService: loungeService,
		uploadService: uploadService,
		cache:         cache,
		cacheTTL:      cacheTTL,
	}
}

func (h *LoungeHandler) RegisterRoutes(r *gin.RouterGroup) {
	lounges := r.Group("/lounges")
	{
		// Публичный каталог, ответы кешируются
		public := lounges.Group("")
		public.Use(middleware.CacheMiddleware(h.cache, h.cacheTTL))
		{
			public.GET("", h.List)
			public.GET("/:id", h.GetByID)
		}

		admin := lounges.Group("")
		admin.Use(middleware.AuthMiddleware(), middleware.AdminMiddleware())
		{
			admin.POST("", h.Create)
			admin.PATCH("/:id", h.Update)
			admin.DELETE("/:id", h.Delete)
			admin.POST("/:id/image", h.UploadImage)
			admin.GET("/analytics", h.Analytics)
			admin.GET("/:id/stats", h.Stats)
		}
	}
}

func (h *LoungeHandler) List(c *gin.Context) {
	var query dto.ListLoungesQuery
	if !h.BindAndValidate_Query(c, &query) {
		return
	}

	lounges, err := h.loungeService.List(&query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, lounges)
}

func (h *LoungeHandler) GetByID(c *gin.Context) {
	lounge, err := h.loungeService.GetByID(c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, lounge)
}

func (h *LoungeHandler) Create(c *gin.Context) {
	var req dto.CreateLoungeRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	lounge, err := h.loungeService.Create(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	middleware.InvalidateCache(h.cache)
	c.JSON(http.StatusCreated, lounge)
}

func (h *LoungeHandler) Update(c *gin.Context) {
	var req dto.UpdateLoungeRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	lounge, err := h.loungeService.Update(c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	middleware.InvalidateCache(h.cache)
	c.JSON(http.StatusOK, lounge)
}

func (h *LoungeHandler) Delete(c *gin.Context) {
	if err := h.loungeService.Delete(c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	middleware.InvalidateCache(h.cache)
	c.JSON(http.StatusOK, gin.H{"message": "Lounge deleted"})
}

// UploadImage - multipart-загрузка изображения зала.
// Файл сохраняется в хранилище, URL пишется в imageUrl.
func (h *LoungeHandler) UploadImage(c *gin.Context) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("image file is required"))
		return
	}

	upload, err := h.uploadService.UploadImage(c.Request.Context(), fileHeader)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	lounge, err := h.loungeService.SetImage(c.Param("id"), upload.URL)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	middleware.InvalidateCache(h.cache)
	c.JSON(http.StatusOK, lounge)
}

func (h *LoungeHandler) Analytics(c *gin.Context) {
	analytics, err := h.loungeService.Analytics()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, analytics)
}

func (h *LoungeHandler) Stats(c *gin.Context) {
	stats, err := h.loungeService.Stats(c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}
