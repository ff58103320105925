package admin

import (
	"github.com/ryanpavini/sistema-na-backend/internal/models"
	"gorm.io/gorm"
)

// Store is the GORM-backed credential store. Lookups return
// gorm.ErrRecordNotFound for missing records; any other error is an
// infrastructure failure and the two are never conflated.
type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) FindByEmail(email string) (*models.Admin, error) {
	var admin models.Admin
	if err := s.db.Where("email = ?", email).First(&admin).Error; err != nil {
		return nil, err
	}
	return &admin, nil
}

func (s *Store) FindByID(id string) (*models.Admin, error) {
	var admin models.Admin
	if err := s.db.Where("id = ?", id).First(&admin).Error; err != nil {
		return nil, err
	}
	return &admin, nil
}

// FindByResetToken matches the token as an exact, case-sensitive unique key.
func (s *Store) FindByResetToken(token string) (*models.Admin, error) {
	var admin models.Admin
	if err := s.db.Where("password_reset_token = ?", token).First(&admin).Error; err != nil {
		return nil, err
	}
	return &admin, nil
}

func (s *Store) Create(admin *models.Admin) error {
	return s.db.Create(admin).Error
}

// Update writes the given columns in a single statement.
func (s *Store) Update(id string, fields map[string]interface{}) error {
	result := s.db.Model(&models.Admin{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (s *Store) Delete(id string) error {
	result := s.db.Where("id = ?", id).Delete(&models.Admin{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ListExcluding returns every admin except the one with the given email.
func (s *Store) ListExcluding(email string) ([]models.Admin, error) {
	var admins []models.Admin
	if err := s.db.Where("email != ?", email).Order("created_at asc").Find(&admins).Error; err != nil {
		return nil, err
	}
	return admins, nil
}
