package services

import (
	"errors"

	"github.com/ankitmgs/Fitness-AI/config"
	"github.com/ankitmgs/Fitness-AI/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

func ListWorkouts(userID uuid.UUID) ([]models.WorkoutLog, error) {
	var workouts []models.WorkoutLog
	err := config.DB.
		Where("user_id = ?", userID).
		Order("date DESC, created_at DESC").
		Find(&workouts).Error
	return workouts, err
}

func AddWorkout(userID uuid.UUID, workout models.WorkoutLog) (*models.WorkoutLog, error) {
	workout.ID = uuid.Nil
	workout.UserID = userID
	if err := config.DB.Create(&workout).Error; err != nil {
		return nil, err
	}
	return &workout, nil
}

func UpdateWorkout(userID, workoutID uuid.UUID, in models.WorkoutLog) (*models.WorkoutLog, error) {
	var workout models.WorkoutLog
	err := config.DB.
		Where("id = ? AND user_id = ?", workoutID, userID).
		First(&workout).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	workout.Date = in.Date
	workout.ExerciseType = in.ExerciseType
	workout.Duration = in.Duration
	workout.Intensity = in.Intensity
	workout.CaloriesBurned = in.CaloriesBurned
	if err := config.DB.Save(&workout).Error; err != nil {
		return nil, err
	}
	return &workout, nil
}

func DeleteWorkout(userID, workoutID uuid.UUID) error {
	res := config.DB.
		Where("id = ? AND user_id = ?", workoutID, userID).
		Delete(&models.WorkoutLog{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
