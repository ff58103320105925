package meeting

import (
	"github.com/ryanpavini/sistema-na-backend/internal/models"
	"gorm.io/gorm"
)

type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

func (s *Service) Create(m *models.Meeting) error {
	return s.db.Create(m).Error
}

func (s *Service) List() ([]models.Meeting, error) {
	var meetings []models.Meeting
	err := s.db.Order("day_of_week asc").Find(&meetings).Error
	return meetings, err
}

func (s *Service) GetByID(id string) (*models.Meeting, error) {
	var m models.Meeting
	if err := s.db.Where("id = ?", id).First(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (s *Service) Update(id string, fields map[string]interface{}) (*models.Meeting, error) {
	if len(fields) == 0 {
		return s.GetByID(id)
	}

	result := s.db.Model(&models.Meeting{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}

	return s.GetByID(id)
}

func (s *Service) Delete(id string) error {
	result := s.db.Where("id = ?", id).Delete(&models.Meeting{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
