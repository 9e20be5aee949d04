package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Macros is the nutrition snapshot of a single meal.
type Macros struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

// Meal is one logged meal. Date is a YYYY-MM-DD calendar day with no time
// component; today-slices compare it by plain string equality.
type Meal struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID      uuid.UUID `gorm:"type:uuid;index;not null" json:"-"`
	Name        string    `gorm:"not null" json:"name"`
	Description string    `json:"description"`
	Macros      Macros    `gorm:"embedded;embeddedPrefix:macro_" json:"macros"`
	MealType    MealType  `gorm:"size:16;not null" json:"mealType"`
	Date        string    `gorm:"size:10;index;not null" json:"date"`
	CreatedAt   time.Time `json:"-"`
	UpdatedAt   time.Time `json:"-"`
}

func (m *Meal) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

func (m Meal) LogDate() string { return m.Date }

// CustomMeal is a reusable meal template. Name is unique per user,
// case-insensitively.
type CustomMeal struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID      uuid.UUID `gorm:"type:uuid;index;not null" json:"-"`
	Name        string    `gorm:"not null" json:"name"`
	Description string    `json:"description"`
	Macros      Macros    `gorm:"embedded;embeddedPrefix:macro_" json:"macros"`
	CreatedAt   time.Time `json:"-"`
	UpdatedAt   time.Time `json:"-"`
}

func (m *CustomMeal) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
