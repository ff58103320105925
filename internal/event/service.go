package event

import (
	"time"

	"github.com/microcosm-cc/bluemonday"
	"github.com/ryanpavini/sistema-na-backend/internal/models"
	"gorm.io/gorm"
)

type Service struct {
	db        *gorm.DB
	sanitizer *bluemonday.Policy
}

func NewService(db *gorm.DB) *Service {
	return &Service{
		db: db,
		// Descriptions are user-authored and rendered on the public site.
		sanitizer: bluemonday.StrictPolicy(),
	}
}

func (s *Service) Create(e *models.Event) error {
	e.Description = s.sanitizer.Sanitize(e.Description)
	return s.db.Create(e).Error
}

func (s *Service) List() ([]models.Event, error) {
	var events []models.Event
	err := s.db.Preload("Author").Order("date_time asc").Find(&events).Error
	return events, err
}

func (s *Service) GetByID(id string) (*models.Event, error) {
	var e models.Event
	if err := s.db.Preload("Author").Where("id = ?", id).First(&e).Error; err != nil {
		return nil, err
	}
	return &e, nil
}

// Next returns the first event strictly in the future.
func (s *Service) Next() (*models.Event, error) {
	var e models.Event
	err := s.db.Preload("Author").
		Where("date_time > ?", time.Now()).
		Order("date_time asc").
		First(&e).Error
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (s *Service) Update(id string, fields map[string]interface{}) (*models.Event, error) {
	if len(fields) == 0 {
		return s.GetByID(id)
	}

	if desc, ok := fields["description"].(string); ok {
		fields["description"] = s.sanitizer.Sanitize(desc)
	}

	result := s.db.Model(&models.Event{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}

	return s.GetByID(id)
}

func (s *Service) Delete(id string) error {
	result := s.db.Where("id = ?", id).Delete(&models.Event{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
