package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// WaterLog holds at most one water entry per (user, date). Amount accumulates
// across repeated "add water" actions within the same day.
type WaterLog struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"-"`
	UserID    uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_water_user_date;not null" json:"-"`
	Date      string    `gorm:"size:10;uniqueIndex:idx_water_user_date;not null" json:"date"`
	Amount    float64   `gorm:"not null" json:"amount"` // glasses
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

func (w *WaterLog) BeforeCreate(tx *gorm.DB) error {
	if w.ID == uuid.Nil {
		w.ID = uuid.New()
	}
	return nil
}

func (w WaterLog) LogDate() string { return w.Date }
