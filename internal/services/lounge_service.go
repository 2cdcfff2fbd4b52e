package services

import (
	"encoding/json"

	"lounge_backend/internal/models"
	"lounge_backend/internal/repositories"
	"lounge_backend/internal/services/dto"
	"lounge_backend/pkg/apperrors"

	"gorm.io/datatypes"
)

type LoungeService interface {
	Create(req *dto.CreateLoungeRequest) (*models.Lounge, error)
	GetByID(loungeID string) (*models.Lounge, error)
	List(query *dto.ListLoungesQuery) ([]models.Lounge, error)
	Update(loungeID string, req *dto.UpdateLoungeRequest) (*models.Lounge, error)
	Delete(loungeID string) error
	SetImage(loungeID, imageURL string) (*models.Lounge, error)
	Analytics() (*dto.LoungeAnalytics, error)
	Stats(loungeID string) (*dto.LoungeStats, error)
}

type LoungeServiceImpl struct {
	loungeRepo  repositories.LoungeRepository
	bookingRepo repositories.BookingRepository
}

func NewLoungeService(
	loungeRepo repositories.LoungeRepository,
	bookingRepo repositories.BookingRepository,
) LoungeService {
	return &LoungeServiceImpl{
		loungeRepo:  loungeRepo,
		bookingRepo: bookingRepo,
	}
}

// Create - добавление зала в каталог
func (s *LoungeServiceImpl) Create(req *dto.CreateLoungeRequest) (*models.Lounge, error) {
	amenities, err := marshalAmenities(req.Amenities)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	lounge := &models.Lounge{
		Name:                 req.Name,
		Location:             req.Location,
		Airport:              req.Airport,
		Country:              req.Country,
		Description:          req.Description,
		Price:                req.Price,
		ClassicDiscountPrice: req.ClassicDiscountPrice,
		PremiumDiscountPrice: req.PremiumDiscountPrice,
		ImageURL:             req.ImageURL,
		Amenities:            amenities,
	}

	if err := s.loungeRepo.Create(lounge); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return lounge, nil
}

func (s *LoungeServiceImpl) GetByID(loungeID string) (*models.Lounge, error) {
	lounge, err := s.loungeRepo.FindByID(loungeID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrLoungeNotFound) {
			return nil, apperrors.ErrLoungeNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return lounge, nil
}

// List - каталог залов. Поиск имеет приоритет над фильтрами,
// фильтр по аэропорту - над фильтром по стране.
func (s *LoungeServiceImpl) List(query *dto.ListLoungesQuery) ([]models.Lounge, error) {
	var (
		lounges []models.Lounge
		err     error
	)

	switch {
	case query != nil && query.Query != "":
		lounges, err = s.loungeRepo.Search(query.Query)
	case query != nil && query.Airport != "":
		lounges, err = s.loungeRepo.FindByAirport(query.Airport)
	case query != nil && query.Country != "":
		lounges, err = s.loungeRepo.FindByCountry(query.Country)
	default:
		lounges, err = s.loungeRepo.FindAll()
	}

	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return lounges, nil
}

// Update - частичное обновление зала
func (s *LoungeServiceImpl) Update(loungeID string, req *dto.UpdateLoungeRequest) (*models.Lounge, error) {
	lounge, err := s.loungeRepo.FindByID(loungeID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrLoungeNotFound) {
			return nil, apperrors.ErrLoungeNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	if req.Name != nil {
		lounge.Name = *req.Name
	}
	if req.Location != nil {
		lounge.Location = *req.Location
	}
	if req.Airport != nil {
		lounge.Airport = *req.Airport
	}
	if req.Country != nil {
		lounge.Country = *req.Country
	}
	if req.Description != nil {
		lounge.Description = *req.Description
	}
	if req.Price != nil {
		lounge.Price = *req.Price
	}
	if req.ClassicDiscountPrice != nil {
		lounge.ClassicDiscountPrice = *req.ClassicDiscountPrice
	}
	if req.PremiumDiscountPrice != nil {
		lounge.PremiumDiscountPrice = *req.PremiumDiscountPrice
	}
	if req.ImageURL != nil {
		lounge.ImageURL = *req.ImageURL
	}
	if req.Amenities != nil {
		amenities, err := marshalAmenities(req.Amenities)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		lounge.Amenities = amenities
	}

	if err := s.loungeRepo.Update(lounge); err != nil {
		if apperrors.Is(err, repositories.ErrLoungeNotFound) {
			return nil, apperrors.ErrLoungeNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	return lounge, nil
}

// Delete - удаление зала вместе с его бронями
func (s *LoungeServiceImpl) Delete(loungeID string) error {
	if err := s.loungeRepo.Delete(loungeID); err != nil {
		if apperrors.Is(err, repositories.ErrLoungeNotFound) {
			return apperrors.ErrLoungeNotFound
		}
		return apperrors.InternalError(err)
	}
	return nil
}

// SetImage - привязка загруженного изображения к залу
func (s *LoungeServiceImpl) SetImage(loungeID, imageURL string) (*models.Lounge, error) {
	lounge, err := s.loungeRepo.FindByID(loungeID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrLoungeNotFound) {
			return nil, apperrors.ErrLoungeNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	lounge.ImageURL = imageURL
	if err := s.loungeRepo.Update(lounge); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return lounge, nil
}

// Analytics - сводка по каталогу для админ-дашборда
func (s *LoungeServiceImpl) Analytics() (*dto.LoungeAnalytics, error) {
	total, err := s.loungeRepo.CountAll()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	byCountry, err := s.loungeRepo.CountByCountry()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	byAirport, err := s.loungeRepo.CountByAirport()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.LoungeAnalytics{
		TotalLounges:     total,
		LoungesByCountry: toGroupCounts(byCountry),
		LoungesByAirport: toGroupCounts(byAirport),
	}, nil
}

// Stats - статистика бронирований по конкретному залу
func (s *LoungeServiceImpl) Stats(loungeID string) (*dto.LoungeStats, error) {
	lounge, err := s.loungeRepo.FindByID(loungeID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrLoungeNotFound) {
			return nil, apperrors.ErrLoungeNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	total, err := s.bookingRepo.CountByLounge(loungeID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	completed, err := s.bookingRepo.CountByLoungeAndStatus(loungeID, models.BookingStatusCompleted)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	cancelled, err := s.bookingRepo.CountByLoungeAndStatus(loungeID, models.BookingStatusCancelled)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.LoungeStats{
		LoungeID:          lounge.ID,
		LoungeName:        lounge.Name,
		TotalBookings:     total,
		CompletedBookings: completed,
		CancelledBookings: cancelled,
	}, nil
}

func marshalAmenities(amenities []string) (datatypes.JSON, error) {
	if amenities == nil {
		return nil, nil
	}
	raw, err := json.Marshal(amenities)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(raw), nil
}

func toGroupCounts(rows []repositories.GroupCount) []dto.GroupCount {
	out := make([]dto.GroupCount, 0, len(rows))
	for _, row := range rows {
		out = append(out, dto.GroupCount{Label: row.Label, Count: row.Count})
	}
	return out
}
