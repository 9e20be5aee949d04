// Package client is the data-access and aggregation layer a frontend embeds:
// it pulls per-user records from the REST backend, derives today-slices and
// adjusted daily goals, and orchestrates mutations against the store and the
// AI estimation service.
package client

import (
	"context"

	"github.com/ankitmgs/Fitness-AI/models"
)

// MealAnalysis is what the estimation service produces for a free-text meal
// description.
type MealAnalysis struct {
	Name   string        `json:"name"`
	Macros models.Macros `json:"macros"`
}

// WorkoutParams describes a workout for calorie estimation. UserWeight is the
// profile's current weight in kg.
type WorkoutParams struct {
	ExerciseType string
	Duration     int // minutes
	Intensity    models.Intensity
	UserWeight   float64
}

// Estimator is the AI estimation service: an opaque function returning a
// structured estimate or failure. Failures are soft; the caller aborts the
// enclosing operation and the user retries manually.
type Estimator interface {
	AnalyzeMeal(ctx context.Context, description string) (*MealAnalysis, error)
	EstimateCaloriesBurned(ctx context.Context, params WorkoutParams) (float64, error)
}
