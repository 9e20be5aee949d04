package client

import (
	"testing"
	"time"

	"github.com/ankitmgs/Fitness-AI/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mealOn(date string, calories float64) models.Meal {
	return models.Meal{
		ID:       uuid.New(),
		Name:     "meal",
		Macros:   models.Macros{Calories: calories},
		MealType: models.MealTypeLunch,
		Date:     date,
	}
}

func workoutOn(date string, burned float64) models.WorkoutLog {
	return models.WorkoutLog{
		ID:             uuid.New(),
		Date:           date,
		ExerciseType:   "running",
		Duration:       30,
		Intensity:      models.IntensityMedium,
		CaloriesBurned: burned,
	}
}

func TestTodaySlice(t *testing.T) {
	meals := []models.Meal{
		mealOn("2024-01-10", 500),
		mealOn("2024-01-09", 400),
		mealOn("2024-01-10", 300),
		mealOn("2024-01-11", 200),
	}

	today := TodaySlice(meals, "2024-01-10")
	require.Len(t, today, 2)
	for _, m := range today {
		assert.Equal(t, "2024-01-10", m.Date)
	}

	// Idempotent under re-application.
	assert.Equal(t, today, TodaySlice(today, "2024-01-10"))

	assert.Empty(t, TodaySlice(meals, "2023-12-31"))
	assert.Empty(t, TodaySlice([]models.Meal{}, "2024-01-10"))
}

func TestAdjustGoalsBaseWhenNoWorkouts(t *testing.T) {
	profile := &models.Profile{
		DailyGoals: models.DailyGoals{Calories: 2500, Protein: 150, Carbs: 300, Fat: 80, Water: 8},
	}

	goals := AdjustGoals(profile, nil)
	require.NotNil(t, goals)
	assert.Equal(t, 2500.0, goals.Calories)
	assert.Equal(t, 150.0, goals.Protein)
	assert.Equal(t, 8.0, goals.Water)
}

func TestAdjustGoalsAddsTodaysBurn(t *testing.T) {
	profile := &models.Profile{
		DailyGoals: models.DailyGoals{Calories: 2500, Protein: 150},
	}
	workouts := []models.WorkoutLog{
		workoutOn("2024-01-10", 300),
		workoutOn("2024-01-10", 150),
	}

	goals := AdjustGoals(profile, workouts)
	require.NotNil(t, goals)
	assert.Equal(t, 2950.0, goals.Calories)
	// Non-calorie targets pass through unchanged.
	assert.Equal(t, 150.0, goals.Protein)
	// The profile's base goal is untouched.
	assert.Equal(t, 2500.0, profile.DailyGoals.Calories)
}

func TestAdjustGoalsMonotonic(t *testing.T) {
	profile := &models.Profile{DailyGoals: models.DailyGoals{Calories: 2000}}

	var workouts []models.WorkoutLog
	prev := AdjustGoals(profile, workouts).Calories
	for _, burn := range []float64{50, 120, 0, 300} {
		workouts = append(workouts, workoutOn("2024-01-10", burn))
		next := AdjustGoals(profile, workouts).Calories
		assert.GreaterOrEqual(t, next, prev)
		prev = next
	}
}

func TestAdjustGoalsNilProfile(t *testing.T) {
	assert.Nil(t, AdjustGoals(nil, []models.WorkoutLog{workoutOn("2024-01-10", 100)}))
}

func TestFilterRangeInclusiveBoundaries(t *testing.T) {
	start, err := time.ParseInLocation(DateLayout, "2024-01-10", time.Local)
	require.NoError(t, err)
	end, err := time.ParseInLocation(DateLayout, "2024-01-12", time.Local)
	require.NoError(t, err)

	meals := []models.Meal{
		mealOn("2024-01-09", 1), // one day before start: excluded
		mealOn("2024-01-10", 2), // exactly start: included
		mealOn("2024-01-11", 3),
		mealOn("2024-01-12", 4), // exactly end: included
		mealOn("2024-01-13", 5), // one day after end: excluded
	}

	got := FilterRange(meals, start, end)
	require.Len(t, got, 3)
	assert.Equal(t, "2024-01-10", got[0].Date)
	assert.Equal(t, "2024-01-12", got[2].Date)
}

func TestFilterRangeSingleDay(t *testing.T) {
	day, err := time.ParseInLocation(DateLayout, "2024-01-10", time.Local)
	require.NoError(t, err)

	meals := []models.Meal{
		mealOn("2024-01-09", 1),
		mealOn("2024-01-10", 2),
		mealOn("2024-01-10", 3),
		mealOn("2024-01-11", 4),
	}

	got := FilterRange(meals, day, day)
	require.Len(t, got, 2)
	for _, m := range got {
		assert.Equal(t, "2024-01-10", m.Date)
	}
}

func TestFilterRangeDropsUnparseableDates(t *testing.T) {
	day, err := time.ParseInLocation(DateLayout, "2024-01-10", time.Local)
	require.NoError(t, err)

	meals := []models.Meal{mealOn("not-a-date", 1), mealOn("2024-01-10", 2)}
	got := FilterRange(meals, day, day)
	require.Len(t, got, 1)
	assert.Equal(t, "2024-01-10", got[0].Date)
}

func TestGroupByDateOrdering(t *testing.T) {
	a := mealOn("2024-01-10", 1)
	b := mealOn("2024-01-12", 2)
	c := mealOn("2024-01-10", 3)
	d := mealOn("2024-01-11", 4)

	groups := GroupByDate([]models.Meal{a, b, c, d})
	require.Len(t, groups, 3)

	// Most recent day first.
	assert.Equal(t, "2024-01-12", groups[0].Date)
	assert.Equal(t, "2024-01-11", groups[1].Date)
	assert.Equal(t, "2024-01-10", groups[2].Date)

	// Within a day, records keep their source relative order.
	require.Len(t, groups[2].Logs, 2)
	assert.Equal(t, a.ID, groups[2].Logs[0].ID)
	assert.Equal(t, c.ID, groups[2].Logs[1].ID)
}

func TestGroupByDateFlattenIsPermutation(t *testing.T) {
	meals := []models.Meal{
		mealOn("2024-01-10", 1),
		mealOn("2024-01-12", 2),
		mealOn("2024-01-10", 3),
		mealOn("2024-01-11", 4),
		mealOn("2024-01-12", 5),
	}

	groups := GroupByDate(meals)

	var flattened []models.Meal
	for _, g := range groups {
		flattened = append(flattened, g.Logs...)
	}
	require.Len(t, flattened, len(meals))

	seen := make(map[uuid.UUID]int)
	for _, m := range meals {
		seen[m.ID]++
	}
	for _, m := range flattened {
		seen[m.ID]--
	}
	for id, count := range seen {
		assert.Zero(t, count, "meal %s lost or duplicated", id)
	}

	// Stable under repeated calls.
	assert.Equal(t, groups, GroupByDate(meals))
}

func TestConsumedCalories(t *testing.T) {
	assert.Zero(t, ConsumedCalories(nil))
	meals := []models.Meal{mealOn("2024-01-10", 500), mealOn("2024-01-10", 250.5)}
	assert.Equal(t, 750.5, ConsumedCalories(meals))
}
