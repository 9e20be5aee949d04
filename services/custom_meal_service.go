package services

import (
	"errors"

	"github.com/ankitmgs/Fitness-AI/config"
	"github.com/ankitmgs/Fitness-AI/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

func ListCustomMeals(userID uuid.UUID) ([]models.CustomMeal, error) {
	var meals []models.CustomMeal
	err := config.DB.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&meals).Error
	return meals, err
}

func AddCustomMeal(userID uuid.UUID, meal models.CustomMeal) (*models.CustomMeal, error) {
	var existing models.CustomMeal
	err := config.DB.
		Where("user_id = ? AND LOWER(name) = LOWER(?)", userID, meal.Name).
		First(&existing).Error
	if err == nil {
		return nil, ErrDuplicateName
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	meal.ID = uuid.Nil
	meal.UserID = userID
	if err := config.DB.Create(&meal).Error; err != nil {
		return nil, err
	}
	return &meal, nil
}

func UpdateCustomMeal(userID, mealID uuid.UUID, in models.CustomMeal) (*models.CustomMeal, error) {
	var meal models.CustomMeal
	err := config.DB.
		Where("id = ? AND user_id = ?", mealID, userID).
		First(&meal).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	// Renaming onto another template's name is a conflict too.
	var clash models.CustomMeal
	err = config.DB.
		Where("user_id = ? AND LOWER(name) = LOWER(?) AND id <> ?", userID, in.Name, mealID).
		First(&clash).Error
	if err == nil {
		return nil, ErrDuplicateName
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	meal.Name = in.Name
	meal.Description = in.Description
	meal.Macros = in.Macros
	if err := config.DB.Save(&meal).Error; err != nil {
		return nil, err
	}
	return &meal, nil
}

func DeleteCustomMeal(userID, mealID uuid.UUID) error {
	res := config.DB.
		Where("id = ? AND user_id = ?", mealID, userID).
		Delete(&models.CustomMeal{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
