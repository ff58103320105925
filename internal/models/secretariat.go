package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SecretariatRecord is a point-in-time snapshot of the cash and Pix balances
// held by the secretariat. Records are append-only; the latest one wins.
type SecretariatRecord struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	CashValue float64   `gorm:"not null" json:"cash_value"`
	PixValue  float64   `gorm:"not null" json:"pix_value"`
	AuthorID  string    `gorm:"type:uuid;not null" json:"author_id"`
	Author    *Admin    `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
}

func (r *SecretariatRecord) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}
