package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/ankitmgs/Fitness-AI/middlewares"
	"github.com/ankitmgs/Fitness-AI/models"
	"github.com/ankitmgs/Fitness-AI/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type MealInput struct {
	Name        string          `json:"name" binding:"required"`
	Description string          `json:"description"`
	Macros      models.Macros   `json:"macros"`
	MealType    models.MealType `json:"mealType" binding:"required"`
	Date        string          `json:"date" binding:"required"`
}

func validDate(date string) bool {
	_, err := time.Parse("2006-01-02", date)
	return err == nil
}

func (in MealInput) validate() error {
	if !in.MealType.Valid() {
		return errors.New("invalid meal type")
	}
	if !validDate(in.Date) {
		return errors.New("date must be YYYY-MM-DD")
	}
	return nil
}

func ListMeals(c *gin.Context) {
	userID := middlewares.UserID(c)

	meals, err := services.ListMeals(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, meals)
}

func AddMeal(c *gin.Context) {
	userID := middlewares.UserID(c)

	var input MealInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := input.validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	meal, err := services.AddMeal(userID, models.Meal{
		Name:        input.Name,
		Description: input.Description,
		Macros:      input.Macros,
		MealType:    input.MealType,
		Date:        input.Date,
	})
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid meal data"})
		return
	}
	c.JSON(http.StatusCreated, meal)
}

func UpdateMeal(c *gin.Context) {
	userID := middlewares.UserID(c)

	mealID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid meal id"})
		return
	}

	var input MealInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := input.validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	meal, err := services.UpdateMeal(userID, mealID, models.Meal{
		Name:        input.Name,
		Description: input.Description,
		Macros:      input.Macros,
		MealType:    input.MealType,
		Date:        input.Date,
	})
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, meal)
}

func DeleteMeal(c *gin.Context) {
	userID := middlewares.UserID(c)

	mealID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid meal id"})
		return
	}

	if err := services.DeleteMeal(userID, mealID); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}
