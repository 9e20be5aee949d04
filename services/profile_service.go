package services

import (
	"errors"

	"github.com/ankitmgs/Fitness-AI/config"
	"github.com/ankitmgs/Fitness-AI/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

func GetProfile(userID uuid.UUID) (*models.Profile, error) {
	var profile models.Profile
	err := config.DB.Where("user_id = ?", userID).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &profile, nil
}

// UpsertProfile creates the profile on first save and replaces it wholesale on
// every save after that.
func UpsertProfile(userID uuid.UUID, in models.Profile) (*models.Profile, error) {
	var profile models.Profile
	err := config.DB.Where("user_id = ?", userID).First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		in.ID = uuid.Nil
		in.UserID = userID
		if err := config.DB.Create(&in).Error; err != nil {
			return nil, err
		}
		return &in, nil
	}
	if err != nil {
		return nil, err
	}

	in.ID = profile.ID
	in.UserID = userID
	in.CreatedAt = profile.CreatedAt
	if err := config.DB.Save(&in).Error; err != nil {
		return nil, err
	}
	return &in, nil
}
