package controllers

import (
	"errors"
	"net/http"

	"github.com/ankitmgs/Fitness-AI/middlewares"
	"github.com/ankitmgs/Fitness-AI/models"
	"github.com/ankitmgs/Fitness-AI/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CustomMealInput struct {
	Name        string        `json:"name" binding:"required"`
	Description string        `json:"description"`
	Macros      models.Macros `json:"macros"`
}

func ListCustomMeals(c *gin.Context) {
	userID := middlewares.UserID(c)

	meals, err := services.ListCustomMeals(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, meals)
}

func AddCustomMeal(c *gin.Context) {
	userID := middlewares.UserID(c)

	var input CustomMealInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	meal, err := services.AddCustomMeal(userID, models.CustomMeal{
		Name:        input.Name,
		Description: input.Description,
		Macros:      input.Macros,
	})
	if err != nil {
		if errors.Is(err, services.ErrDuplicateName) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid custom meal data"})
		return
	}
	c.JSON(http.StatusCreated, meal)
}

func UpdateCustomMeal(c *gin.Context) {
	userID := middlewares.UserID(c)

	mealID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid custom meal id"})
		return
	}

	var input CustomMealInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	meal, err := services.UpdateCustomMeal(userID, mealID, models.CustomMeal{
		Name:        input.Name,
		Description: input.Description,
		Macros:      input.Macros,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, services.ErrDuplicateName):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, meal)
}

func DeleteCustomMeal(c *gin.Context) {
	userID := middlewares.UserID(c)

	mealID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid custom meal id"})
		return
	}

	if err := services.DeleteCustomMeal(userID, mealID); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}
