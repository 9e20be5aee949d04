package controllers

import (
	"errors"
	"net/http"

	"github.com/ankitmgs/Fitness-AI/middlewares"
	"github.com/ankitmgs/Fitness-AI/services"

	"github.com/gin-gonic/gin"
)

type WaterLogInput struct {
	Date   string  `json:"date" binding:"required"`
	Amount float64 `json:"amount" binding:"gte=0"`
}

func ListWaterLogs(c *gin.Context) {
	userID := middlewares.UserID(c)

	logs, err := services.ListWaterLogs(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, logs)
}

// SaveWaterLog upserts by (user, date); the client accumulates the amount
// across repeated adds within a day.
func SaveWaterLog(c *gin.Context) {
	userID := middlewares.UserID(c)

	var input WaterLogInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !validDate(input.Date) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
		return
	}

	log, err := services.UpsertWaterLog(userID, input.Date, input.Amount)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid water log data"})
		return
	}
	c.JSON(http.StatusCreated, log)
}

func DeleteWaterLog(c *gin.Context) {
	userID := middlewares.UserID(c)
	date := c.Param("id")

	if !validDate(date) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
		return
	}

	if err := services.DeleteWaterLog(userID, date); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}
