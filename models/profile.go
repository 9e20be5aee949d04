package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DailyGoals holds the user's base daily targets. The calorie goal exposed to
// the UI is adjusted at read time by today's workouts and is never persisted.
type DailyGoals struct {
	Calories float64 `json:"calories" validate:"gte=0"`
	Protein  float64 `json:"protein" validate:"gte=0"`
	Carbs    float64 `json:"carbs" validate:"gte=0"`
	Fat      float64 `json:"fat" validate:"gte=0"`
	Water    float64 `json:"water" validate:"gte=0"`
}

type WaterReminder struct {
	Enabled   bool `json:"enabled"`
	Frequency int  `json:"frequency"` // minutes
}

type ReminderSettings struct {
	Water       WaterReminder `gorm:"embedded;embeddedPrefix:water_" json:"water"`
	Meal        bool          `json:"meal"`
	GoalReached bool          `json:"goalReached"`
}

// Profile is the single per-user profile row, created on first save and
// replaced wholesale on every save.
type Profile struct {
	ID            uuid.UUID        `gorm:"type:uuid;primaryKey" json:"-"`
	UserID        uuid.UUID        `gorm:"type:uuid;uniqueIndex;not null" json:"-"`
	Name          string           `json:"name" validate:"required"`
	Age           int              `json:"age" validate:"gte=1,lte=120"`
	Weight        float64          `json:"weight" validate:"gt=0"` // kg
	Height        float64          `json:"height" validate:"gt=0"` // cm
	Gender        Gender           `gorm:"size:16" json:"gender"`
	ActivityLevel ActivityLevel    `gorm:"size:16" json:"activityLevel"`
	Goal          Goal             `gorm:"size:16" json:"goal"`
	DailyGoals    DailyGoals       `gorm:"embedded;embeddedPrefix:goal_" json:"dailyGoals"`
	Reminders     ReminderSettings `gorm:"embedded;embeddedPrefix:reminder_" json:"reminderSettings"`
	CreatedAt     time.Time        `json:"-"`
	UpdatedAt     time.Time        `json:"-"`
}

func (p *Profile) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
