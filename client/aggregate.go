package client

import (
	"sort"
	"time"

	"github.com/ankitmgs/Fitness-AI/models"
)

// DatedLog is any record carrying a YYYY-MM-DD calendar day.
type DatedLog interface {
	LogDate() string
}

// TodaySlice returns the records whose date equals the reference day, by
// exact string equality. Pure and idempotent; recomputed on every refresh.
func TodaySlice[T DatedLog](logs []T, today string) []T {
	out := make([]T, 0)
	for _, l := range logs {
		if l.LogDate() == today {
			out = append(out, l)
		}
	}
	return out
}

// AdjustGoals returns the daily goals with the calorie target raised by the
// calories burned in today's workouts. All other targets pass through. A nil
// profile yields nil: callers must treat that as "not ready", never as zeroed
// goals.
func AdjustGoals(profile *models.Profile, todayWorkouts []models.WorkoutLog) *models.DailyGoals {
	if profile == nil {
		return nil
	}
	var burned float64
	for _, w := range todayWorkouts {
		burned += w.CaloriesBurned
	}
	adjusted := profile.DailyGoals
	adjusted.Calories += burned
	return &adjusted
}

// ConsumedCalories sums calorie intake over a set of meals.
func ConsumedCalories(meals []models.Meal) float64 {
	var total float64
	for _, m := range meals {
		total += m.Macros.Calories
	}
	return total
}

// FilterRange keeps records whose date falls within [start's day, end's day],
// inclusive at both boundaries. Dates that fail to parse are dropped.
func FilterRange[T DatedLog](logs []T, start, end time.Time) []T {
	lo := dayStart(start)
	hi := dayEnd(end)
	out := make([]T, 0)
	for _, l := range logs {
		d, err := time.ParseInLocation(DateLayout, l.LogDate(), start.Location())
		if err != nil {
			continue
		}
		if !d.Before(lo) && !d.After(hi) {
			out = append(out, l)
		}
	}
	return out
}

// DateGroup is one day's worth of records, in their source relative order.
type DateGroup[T DatedLog] struct {
	Date string
	Logs []T
}

// GroupByDate groups records by exact date value and orders the groups most
// recent first. Stateless and stable: flattening the groups back yields a
// permutation of the input with nothing lost or duplicated.
func GroupByDate[T DatedLog](logs []T) []DateGroup[T] {
	byDate := make(map[string][]T)
	var order []string
	for _, l := range logs {
		d := l.LogDate()
		if _, seen := byDate[d]; !seen {
			order = append(order, d)
		}
		byDate[d] = append(byDate[d], l)
	}

	// YYYY-MM-DD strings order lexicographically as calendar days do.
	sort.Sort(sort.Reverse(sort.StringSlice(order)))

	groups := make([]DateGroup[T], 0, len(order))
	for _, d := range order {
		groups = append(groups, DateGroup[T]{Date: d, Logs: byDate[d]})
	}
	return groups
}
