package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Event struct {
	ID          string    `gorm:"type:uuid;primaryKey" json:"id"`
	Title       string    `gorm:"size:200;not null" json:"title"`
	Description string    `gorm:"type:text;not null" json:"description"`
	DateTime    time.Time `gorm:"not null;index" json:"date_time"`
	Location    string    `gorm:"size:200;not null" json:"location"`
	Type        string    `gorm:"size:50;not null" json:"type"`
	Category    string    `gorm:"size:50;not null" json:"category"`
	AuthorID    string    `gorm:"type:uuid;not null" json:"author_id"`
	Author      *Admin    `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (e *Event) BeforeCreate(tx *gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	return nil
}
