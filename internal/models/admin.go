package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Admin is one administrative principal. A freshly invited admin has no
// password yet: PasswordResetToken and PasswordResetExpires are set instead,
// and the account stays pending until the token is redeemed.
type Admin struct {
	ID                   string     `gorm:"type:uuid;primaryKey" json:"id"`
	Name                 string     `gorm:"size:100;not null" json:"name"`
	Email                string     `gorm:"uniqueIndex;size:100;not null" json:"email"`
	Password             *string    `gorm:"size:255" json:"-"`
	PasswordResetToken   *string    `gorm:"uniqueIndex;size:64" json:"-"`
	PasswordResetExpires *time.Time `json:"-"`
	CreatedAt            time.Time  `json:"created_at"`
	UpdatedAt            time.Time  `json:"updated_at"`
}

func (a *Admin) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}

// IsPending reports whether the account still awaits first activation.
func (a *Admin) IsPending() bool {
	return a.Password == nil
}
