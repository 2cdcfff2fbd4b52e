package handlers

import (
	"net/http"

	"lounge_backend/internal/middleware"
	"lounge_backend/internal/services"
	"lounge_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type UploadHandler struct {
	*BaseHandler
	uploadService services.UploadService
}

func NewUploadHandler(base *BaseHandler, uploadService services.UploadService) *UploadHandler {
	return &UploadHandler{
		BaseHandler:   base,
		uploadService: uploadService,
	}
}

func (h *UploadHandler) RegisterRoutes(r *gin.RouterGroup) {
	uploads := r.Group("/uploads")
	uploads.Use(middleware.AuthMiddleware(), middleware.AdminMiddleware())
	{
		uploads.POST("/image", h.UploadImage)
	}
}

// UploadImage - одиночная загрузка изображения через multipart-форму
func (h *UploadHandler) UploadImage(c *gin.Context) {
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

	c.JSON(http.StatusCreated, upload)
}
