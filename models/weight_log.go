package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// WeightLog holds at most one weight entry per (user, date); a second save on
// the same day replaces the first.
type WeightLog struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"-"`
	UserID    uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_weight_user_date;not null" json:"-"`
	Date      string    `gorm:"size:10;uniqueIndex:idx_weight_user_date;not null" json:"date"`
	Weight    float64   `gorm:"not null" json:"weight"` // kg
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

func (w *WeightLog) BeforeCreate(tx *gorm.DB) error {
	if w.ID == uuid.Nil {
		w.ID = uuid.New()
	}
	return nil
}

func (w WeightLog) LogDate() string { return w.Date }
