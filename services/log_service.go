package services

import (
	"errors"

	"github.com/ankitmgs/Fitness-AI/config"
	"github.com/ankitmgs/Fitness-AI/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Weight and water logs are keyed by (user, date): one row per calendar day,
// replaced rather than duplicated on repeat saves. Their wire shape carries no
// id, so the REST surface addresses them by date.

func ListWeightLogs(userID uuid.UUID) ([]models.WeightLog, error) {
	var logs []models.WeightLog
	err := config.DB.
		Where("user_id = ?", userID).
		Order("date ASC").
		Find(&logs).Error
	return logs, err
}

func UpsertWeightLog(userID uuid.UUID, date string, weight float64) (*models.WeightLog, error) {
	log := models.WeightLog{UserID: userID, Date: date, Weight: weight}
	err := config.DB.
		Where("user_id = ? AND date = ?", userID, date).
		Assign(map[string]interface{}{"weight": weight}).
		FirstOrCreate(&log).Error
	if err != nil {
		return nil, err
	}
	return &log, nil
}

// UpdateWeightLog moves or rewrites the entry stored under date. Moving onto a
// day that already has an entry is a conflict, not a silent merge.
func UpdateWeightLog(userID uuid.UUID, date, newDate string, weight float64) (*models.WeightLog, error) {
	var log models.WeightLog
	err := config.DB.
		Where("user_id = ? AND date = ?", userID, date).
		First(&log).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if newDate != date {
		var clash models.WeightLog
		err = config.DB.
			Where("user_id = ? AND date = ?", userID, newDate).
			First(&clash).Error
		if err == nil {
			return nil, ErrDateConflict
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}

	log.Date = newDate
	log.Weight = weight
	if err := config.DB.Save(&log).Error; err != nil {
		return nil, err
	}
	return &log, nil
}

func DeleteWeightLog(userID uuid.UUID, date string) error {
	res := config.DB.
		Where("user_id = ? AND date = ?", userID, date).
		Delete(&models.WeightLog{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func ListWaterLogs(userID uuid.UUID) ([]models.WaterLog, error) {
	var logs []models.WaterLog
	err := config.DB.
		Where("user_id = ?", userID).
		Order("date ASC").
		Find(&logs).Error
	return logs, err
}

func UpsertWaterLog(userID uuid.UUID, date string, amount float64) (*models.WaterLog, error) {
	log := models.WaterLog{UserID: userID, Date: date, Amount: amount}
	err := config.DB.
		Where("user_id = ? AND date = ?", userID, date).
		Assign(map[string]interface{}{"amount": amount}).
		FirstOrCreate(&log).Error
	if err != nil {
		return nil, err
	}
	return &log, nil
}

func DeleteWaterLog(userID uuid.UUID, date string) error {
	res := config.DB.
		Where("user_id = ? AND date = ?", userID, date).
		Delete(&models.WaterLog{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
