package controllers

import (
	"errors"
	"net/http"

	"github.com/ankitmgs/Fitness-AI/middlewares"
	"github.com/ankitmgs/Fitness-AI/models"
	"github.com/ankitmgs/Fitness-AI/services"

	"github.com/gin-gonic/gin"
)

func GetProfile(c *gin.Context) {
	userID := middlewares.UserID(c)

	profile, err := services.GetProfile(userID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Profile not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, profile)
}

func SaveProfile(c *gin.Context) {
	userID := middlewares.UserID(c)

	var input models.Profile
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := models.ValidateEnums(input.Gender, input.ActivityLevel, input.Goal); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	profile, err := services.UpsertProfile(userID, input)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid profile data"})
		return
	}
	c.JSON(http.StatusCreated, profile)
}
