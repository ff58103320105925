package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Meeting is a recurring weekly meeting slot, not a dated occurrence.
type Meeting struct {
	ID         string    `gorm:"type:uuid;primaryKey" json:"id"`
	DayOfWeek  string    `gorm:"size:20;not null" json:"day_of_week"`
	Time       string    `gorm:"size:5;not null" json:"time"`
	Type       string    `gorm:"size:50;not null" json:"type"`
	Category   string    `gorm:"size:50;not null" json:"category"`
	RoomOpener string    `gorm:"size:100;not null" json:"room_opener"`
	AuthorID   string    `gorm:"type:uuid;not null" json:"author_id"`
	Author     *Admin    `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (m *Meeting) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}
