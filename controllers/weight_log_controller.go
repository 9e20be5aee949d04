package controllers

import (
	"errors"
	"net/http"

	"github.com/ankitmgs/Fitness-AI/middlewares"
	"github.com/ankitmgs/Fitness-AI/services"

	"github.com/gin-gonic/gin"
)

// Weight logs expose no id on the wire; the routes address them by date.

type WeightLogInput struct {
	Date   string  `json:"date" binding:"required"`
	Weight float64 `json:"weight" binding:"required,gt=0"`
}

func ListWeightLogs(c *gin.Context) {
	userID := middlewares.UserID(c)

	logs, err := services.ListWeightLogs(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, logs)
}

// SaveWeightLog upserts by (user, date): a second save on the same day
// replaces the first.
func SaveWeightLog(c *gin.Context) {
	userID := middlewares.UserID(c)

	var input WeightLogInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !validDate(input.Date) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
		return
	}

	log, err := services.UpsertWeightLog(userID, input.Date, input.Weight)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid weight log data"})
		return
	}
	c.JSON(http.StatusCreated, log)
}

// UpdateWeightLog rewrites the entry stored under the date in the path. A new
// date colliding with another entry is a conflict.
func UpdateWeightLog(c *gin.Context) {
	userID := middlewares.UserID(c)
	date := c.Param("id")

	var input WeightLogInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !validDate(date) || !validDate(input.Date) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
		return
	}

	log, err := services.UpdateWeightLog(userID, date, input.Date, input.Weight)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, services.ErrDateConflict):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, log)
}

func DeleteWeightLog(c *gin.Context) {
	userID := middlewares.UserID(c)
	date := c.Param("id")

	if !validDate(date) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
		return
	}

	if err := services.DeleteWeightLog(userID, date); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}
