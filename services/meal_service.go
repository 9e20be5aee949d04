package services

import (
	"errors"

	"github.com/ankitmgs/Fitness-AI/config"
	"github.com/ankitmgs/Fitness-AI/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

func ListMeals(userID uuid.UUID) ([]models.Meal, error) {
	var meals []models.Meal
	err := config.DB.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&meals).Error
	return meals, err
}

func AddMeal(userID uuid.UUID, meal models.Meal) (*models.Meal, error) {
	meal.ID = uuid.Nil
	meal.UserID = userID
	if err := config.DB.Create(&meal).Error; err != nil {
		return nil, err
	}
	return &meal, nil
}

func UpdateMeal(userID, mealID uuid.UUID, in models.Meal) (*models.Meal, error) {
	var meal models.Meal
	err := config.DB.
		Where("id = ? AND user_id = ?", mealID, userID).
		First(&meal).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	meal.Name = in.Name
	meal.Description = in.Description
	meal.Macros = in.Macros
	meal.MealType = in.MealType
	meal.Date = in.Date
	if err := config.DB.Save(&meal).Error; err != nil {
		return nil, err
	}
	return &meal, nil
}

func DeleteMeal(userID, mealID uuid.UUID) error {
	res := config.DB.
		Where("id = ? AND user_id = ?", mealID, userID).
		Delete(&models.Meal{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
