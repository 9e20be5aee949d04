package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// WorkoutLog is one logged workout. CaloriesBurned is filled in by the
// estimation service at creation time, never by user input.
type WorkoutLog struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID         uuid.UUID `gorm:"type:uuid;index;not null" json:"-"`
	Date           string    `gorm:"size:10;index;not null" json:"date"`
	ExerciseType   string    `gorm:"not null" json:"exerciseType"`
	Duration       int       `gorm:"not null" json:"duration"` // minutes
	Intensity      Intensity `gorm:"size:16;not null" json:"intensity"`
	CaloriesBurned float64   `json:"caloriesBurned"`
	CreatedAt      time.Time `json:"-"`
	UpdatedAt      time.Time `json:"-"`
}

func (w *WorkoutLog) BeforeCreate(tx *gorm.DB) error {
	if w.ID == uuid.Nil {
		w.ID = uuid.New()
	}
	return nil
}

func (w WorkoutLog) LogDate() string { return w.Date }
