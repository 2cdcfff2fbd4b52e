package repositories

import (
	"errors"

	"lounge_backend/internal/models"

	"gorm.io/gorm"
)

var ErrLoungeNotFound = errors.New("lounge not found")

// GroupCount - строка агрегата "значение -> количество" для аналитики
type GroupCount struct {
	Label string `json:"label"`
	Count int64  `json:"count"`
}

type LoungeRepository interface {
	FindByID(id string) (*models.Lounge, error)
	Create(lounge *models.Lounge) error
	Update(lounge *models.Lounge) error
	Delete(loungeID string) error
	FindAll() ([]models.Lounge, error)
	FindByAirport(airport string) ([]models.Lounge, error)
	FindByCountry(country string) ([]models.Lounge, error)
	Search(query string) ([]models.Lounge, error)
	CountAll() (int64, error)
	CountByCountry() ([]GroupCount, error)
	CountByAirport() ([]GroupCount, error)
}

type LoungeRepositoryImpl struct {
	db *gorm.DB
}

func NewLoungeRepository(db *gorm.DB) LoungeRepository {
	return &LoungeRepositoryImpl{db: db}
}

func (r *LoungeRepositoryImpl) FindByID(id string) (*models.Lounge, error) {
	var lounge models.Lounge
	err := r.db.First(&lounge, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLoungeNotFound
		}
		return nil, err
	}
	return &lounge, nil
}

func (r *LoungeRepositoryImpl) Create(lounge *models.Lounge) error {
	return r.db.Create(lounge).Error
}

func (r *LoungeRepositoryImpl) Update(lounge *models.Lounge) error {
	result := r.db.Model(&models.Lounge{}).Where("id = ?", lounge.ID).Updates(lounge)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrLoungeNotFound
	}
	return nil
}

func (r *LoungeRepositoryImpl) Delete(loungeID string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("lounge_id = ?", loungeID).Delete(&models.Booking{}).Error; err != nil {
			return err
		}

		result := tx.Where("id = ?", loungeID).Delete(&models.Lounge{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrLoungeNotFound
		}
		return nil
	})
}

func (r *LoungeRepositoryImpl) FindAll() ([]models.Lounge, error) {
	var lounges []models.Lounge
	err := r.db.Order("name").Find(&lounges).Error
	return lounges, err
}

func (r *LoungeRepositoryImpl) FindByAirport(airport string) ([]models.Lounge, error) {
	var lounges []models.Lounge
	err := r.db.Where("airport = ?", airport).Find(&lounges).Error
	return lounges, err
}

func (r *LoungeRepositoryImpl) FindByCountry(country string) ([]models.Lounge, error) {
	var lounges []models.Lounge
	err := r.db.Where("country = ?", country).Find(&lounges).Error
	return lounges, err
}

func (r *LoungeRepositoryImpl) Search(query string) ([]models.Lounge, error) {
	var lounges []models.Lounge
	pattern := "%" + query + "%"
	err := r.db.
		Where("name LIKE ?", pattern).
		Or("airport LIKE ?", pattern).
		Or("country LIKE ?", pattern).
		Find(&lounges).Error
	return lounges, err
}

func (r *LoungeRepositoryImpl) CountAll() (int64, error) {
	var count int64
	err := r.db.Model(&models.Lounge{}).Count(&count).Error
	return count, err
}

func (r *LoungeRepositoryImpl) CountByCountry() ([]GroupCount, error) {
	var rows []GroupCount
	err := r.db.Model(&models.Lounge{}).
		Select("country AS label, COUNT(id) AS count").
		Group("country").
		Scan(&rows).Error
	return rows, err
}

func (r *LoungeRepositoryImpl) CountByAirport() ([]GroupCount, error) {
	var rows []GroupCount
	err := r.db.Model(&models.Lounge{}).
		Select("airport AS label, COUNT(id) AS count").
		Group("airport").
		Scan(&rows).Error
	return rows, err
}
