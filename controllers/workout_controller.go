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

type WorkoutInput struct {
	Date           string           `json:"date" binding:"required"`
	ExerciseType   string           `json:"exerciseType" binding:"required"`
	Duration       int              `json:"duration" binding:"required,gt=0"`
	Intensity      models.Intensity `json:"intensity" binding:"required"`
	CaloriesBurned float64          `json:"caloriesBurned" binding:"gte=0"`
}

func (in WorkoutInput) validate() error {
	if !in.Intensity.Valid() {
		return errors.New("invalid intensity")
	}
	if !validDate(in.Date) {
		return errors.New("date must be YYYY-MM-DD")
	}
	return nil
}

func ListWorkouts(c *gin.Context) {
	userID := middlewares.UserID(c)

	workouts, err := services.ListWorkouts(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, workouts)
}

func AddWorkout(c *gin.Context) {
	userID := middlewares.UserID(c)

	var input WorkoutInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := input.validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	workout, err := services.AddWorkout(userID, models.WorkoutLog{
		Date:           input.Date,
		ExerciseType:   input.ExerciseType,
		Duration:       input.Duration,
		Intensity:      input.Intensity,
		CaloriesBurned: input.CaloriesBurned,
	})
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid workout data"})
		return
	}
	c.JSON(http.StatusCreated, workout)
}

func UpdateWorkout(c *gin.Context) {
	userID := middlewares.UserID(c)

	workoutID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid workout id"})
		return
	}

	var input WorkoutInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := input.validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	workout, err := services.UpdateWorkout(userID, workoutID, models.WorkoutLog{
		Date:           input.Date,
		ExerciseType:   input.ExerciseType,
		Duration:       input.Duration,
		Intensity:      input.Intensity,
		CaloriesBurned: input.CaloriesBurned,
	})
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, workout)
}

func DeleteWorkout(c *gin.Context) {
	userID := middlewares.UserID(c)

	workoutID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid workout id"})
		return
	}

	if err := services.DeleteWorkout(userID, workoutID); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}
