package secretariat

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

func (s *Service) Create(r *models.SecretariatRecord) error {
	return s.db.Create(r).Error
}

// Latest returns the most recent snapshot, or gorm.ErrRecordNotFound when no
// record has ever been saved.
func (s *Service) Latest() (*models.SecretariatRecord, error) {
	var r models.SecretariatRecord
	err := s.db.Preload("Author").Order("created_at desc").First(&r).Error
	if err != nil {
		return nil, err
	}
	return &r, nil
}
