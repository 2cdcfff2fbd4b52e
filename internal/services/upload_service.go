package services

import (
	"context"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"lounge_backend/internal/imageprocessor"
	"lounge_backend/internal/logger"
	"lounge_backend/internal/services/dto"
	"lounge_backend/internal/storage"
	"lounge_backend/pkg/apperrors"

	"github.com/google/uuid"
)

type UploadService interface {
	// UploadImage сохраняет изображение из multipart-формы и возвращает
	// публичный URL файла
	UploadImage(ctx context.Context, fileHeader *multipart.FileHeader) (*dto.UploadResponse, error)

	// DeleteFile удаляет ранее загруженный файл по его пути
	DeleteFile(ctx context.Context, path string) error
}

type UploadServiceImpl struct {
	storage      storage.Storage
	processor    *imageprocessor.Processor
	maxSize      int64
	allowedTypes []string
}

func NewUploadService(store storage.Storage, maxSize int64, allowedTypes []string) UploadService {
	return &UploadServiceImpl{
		storage:      store,
		processor:    imageprocessor.NewProcessor(85),
		maxSize:      maxSize,
		allowedTypes: allowedTypes,
	}
}

func (s *UploadServiceImpl) UploadImage(ctx context.Context, fileHeader *multipart.FileHeader) (*dto.UploadResponse, error) {
	if fileHeader == nil {
		return nil, apperrors.NewBadRequestError("file is required")
	}

	if fileHeader.Size > s.maxSize {
		return nil, apperrors.NewBadRequestError(
			fmt.Sprintf("file too large: max size is %d bytes", s.maxSize))
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if !s.typeAllowed(contentType) {
		return nil, apperrors.NewBadRequestError(
			fmt.Sprintf("unsupported file type: %s", contentType))
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	defer file.Close()

	// Имя файла генерируем сами, оригинальное не используется в пути
	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	filename := fmt.Sprintf("%s%s", uuid.New().String(), ext)
	path := fmt.Sprintf("lounges/%s/%s", time.Now().Format("2006/01"), filename)

	if err := s.storage.Save(ctx, path, file, contentType); err != nil {
		return nil, apperrors.InternalError(err)
	}

	url, err := s.storage.GetURL(ctx, path)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	// Миниатюра для каталога. Ошибка генерации не срывает загрузку.
	thumbnailURL := s.makeThumbnail(ctx, fileHeader, path, contentType)

	return &dto.UploadResponse{
		URL:          url,
		ThumbnailURL: thumbnailURL,
		Filename:     filename,
		Size:         fileHeader.Size,
		ContentType:  contentType,
	}, nil
}

func (s *UploadServiceImpl) makeThumbnail(ctx context.Context, fileHeader *multipart.FileHeader, originalPath, contentType string) string {
	if contentType != "image/jpeg" && contentType != "image/png" {
		return ""
	}

	src, err := fileHeader.Open()
	if err != nil {
		logger.Warn("failed to reopen upload for thumbnail", "path", originalPath, "error", err)
		return ""
	}
	defer src.Close()

	resized, err := s.processor.Resize(src, imageprocessor.SizeThumbnail)
	if err != nil {
		logger.Warn("failed to resize thumbnail", "path", originalPath, "error", err)
		return ""
	}

	ext := filepath.Ext(originalPath)
	thumbPath := strings.TrimSuffix(originalPath, ext) + "_thumb" + ext
	if err := s.storage.Save(ctx, thumbPath, resized, contentType); err != nil {
		logger.Warn("failed to store thumbnail", "path", thumbPath, "error", err)
		return ""
	}

	url, err := s.storage.GetURL(ctx, thumbPath)
	if err != nil {
		return ""
	}
	return url
}

func (s *UploadServiceImpl) DeleteFile(ctx context.Context, path string) error {
	if err := s.storage.Delete(ctx, path); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *UploadServiceImpl) typeAllowed(contentType string) bool {
	for _, t := range s.allowedTypes {
		if strings.EqualFold(t, contentType) {
			return true
		}
	}
	return false
}
