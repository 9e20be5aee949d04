package client

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ankitmgs/Fitness-AI/models"

	"github.com/go-playground/validator/v10"
	"golang.org/x/sync/errgroup"
)

// ErrEstimationFailed wraps estimation-service failures. The enclosing
// mutation is aborted; nothing is persisted and the user retries manually.
var ErrEstimationFailed = errors.New("could not estimate, try again")

// Session owns the in-memory aggregation state for one authenticated user.
// It is not safe for concurrent use: the embedding UI drives one mutation at
// a time, and presentation code reads state only through Snapshot.
//
// Lifecycle: uninitialized -> loading -> ready, cleared again on Logout.
type Session struct {
	api       *API
	estimator Estimator
	notifier  Notifier
	userID    string
	devMode   bool
	now       func() time.Time
	validate  *validator.Validate

	profile       *models.Profile
	allMeals      []models.Meal
	todayMeals    []models.Meal
	allWorkouts   []models.WorkoutLog
	todayWorkouts []models.WorkoutLog
	customMeals   []models.CustomMeal
	weightLogs    []models.WeightLog
	waterLog      models.WaterLog
	adjustedGoals *models.DailyGoals

	loading     bool
	initialized bool
	fired       map[string]bool
}

type SessionOption func(*Session)

func WithEstimator(e Estimator) SessionOption {
	return func(s *Session) { s.estimator = e }
}

func WithNotifier(n Notifier) SessionOption {
	return func(s *Session) { s.notifier = n }
}

// WithDevMode seeds a default profile on first refresh when none exists,
// bypassing the profile-setup flow.
func WithDevMode(enabled bool) SessionOption {
	return func(s *Session) { s.devMode = enabled }
}

// WithClock overrides the wall clock; the reference "today" is derived from
// it once per refresh.
func WithClock(now func() time.Time) SessionOption {
	return func(s *Session) { s.now = now }
}

// NewSession builds the aggregation context for an authenticated user. userID
// is the identity provider's stable identifier; api already carries the
// bearer credential.
func NewSession(userID string, api *API, opts ...SessionOption) *Session {
	s := &Session{
		api:      api,
		userID:   userID,
		notifier: NopNotifier{},
		now:      time.Now,
		validate: validator.New(),
		fired:    make(map[string]bool),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.waterLog.Date = TodayString(s.now())
	return s
}

func (s *Session) authenticated() bool {
	return s != nil && s.api != nil && s.userID != ""
}

// Snapshot is the read-only view handed to presentation code.
type Snapshot struct {
	Profile       *models.Profile
	Meals         []models.Meal // today's meals
	AllMeals      []models.Meal
	Workouts      []models.WorkoutLog // today's workouts
	AllWorkouts   []models.WorkoutLog
	CustomMeals   []models.CustomMeal
	WeightLogs    []models.WeightLog
	WaterLog      models.WaterLog
	AdjustedGoals *models.DailyGoals
	IsLoading     bool
	IsInitialized bool
}

func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		Meals:         append([]models.Meal(nil), s.todayMeals...),
		AllMeals:      append([]models.Meal(nil), s.allMeals...),
		Workouts:      append([]models.WorkoutLog(nil), s.todayWorkouts...),
		AllWorkouts:   append([]models.WorkoutLog(nil), s.allWorkouts...),
		CustomMeals:   append([]models.CustomMeal(nil), s.customMeals...),
		WeightLogs:    append([]models.WeightLog(nil), s.weightLogs...),
		WaterLog:      s.waterLog,
		IsLoading:     s.loading,
		IsInitialized: s.initialized,
	}
	if s.profile != nil {
		p := *s.profile
		snap.Profile = &p
	}
	if s.adjustedGoals != nil {
		g := *s.adjustedGoals
		snap.AdjustedGoals = &g
	}
	return snap
}

// Refresh re-pulls every collection and recomputes today-slices and adjusted
// goals. A store failure on read degrades to empty collections so the UI can
// render a retriable empty state instead of crashing.
func (s *Session) Refresh(ctx context.Context) {
	if !s.authenticated() {
		return
	}
	s.loading = true
	defer func() {
		s.loading = false
		s.initialized = true
	}()

	today := TodayString(s.now())

	profile, err := s.api.GetProfile(ctx)
	if err != nil {
		if errors.Is(err, ErrNotFound) && s.devMode {
			profile, err = s.api.SaveProfile(ctx, DefaultProfile())
		}
		if err != nil {
			s.clear(today)
			return
		}
	}

	var (
		meals       []models.Meal
		weightLogs  []models.WeightLog
		waterLogs   []models.WaterLog
		workouts    []models.WorkoutLog
		customMeals []models.CustomMeal
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { var err error; meals, err = s.api.ListMeals(gctx); return err })
	g.Go(func() error { var err error; weightLogs, err = s.api.ListWeightLogs(gctx); return err })
	g.Go(func() error { var err error; waterLogs, err = s.api.ListWaterLogs(gctx); return err })
	g.Go(func() error { var err error; workouts, err = s.api.ListWorkouts(gctx); return err })
	g.Go(func() error { var err error; customMeals, err = s.api.ListCustomMeals(gctx); return err })
	if err := g.Wait(); err != nil {
		s.clear(today)
		return
	}

	s.profile = profile
	s.allMeals = meals
	s.allWorkouts = workouts
	s.customMeals = customMeals
	s.weightLogs = weightLogs
	s.todayMeals = TodaySlice(meals, today)
	s.todayWorkouts = TodaySlice(workouts, today)
	s.adjustedGoals = AdjustGoals(profile, s.todayWorkouts)

	s.waterLog = models.WaterLog{Date: today, Amount: 0}
	for _, l := range waterLogs {
		if l.Date == today {
			s.waterLog = l
			break
		}
	}

	s.checkGoalReached(today)
}

func (s *Session) clear(today string) {
	s.profile = nil
	s.allMeals = nil
	s.todayMeals = nil
	s.allWorkouts = nil
	s.todayWorkouts = nil
	s.customMeals = nil
	s.weightLogs = nil
	s.waterLog = models.WaterLog{Date: today, Amount: 0}
	s.adjustedGoals = nil
}

// Logout clears all loaded state; the session returns to uninitialized.
func (s *Session) Logout() {
	s.clear(TodayString(s.now()))
	s.initialized = false
	s.fired = make(map[string]bool)
	s.api = nil
	s.userID = ""
}

func (s *Session) checkGoalReached(today string) {
	if s.profile == nil || !s.profile.Reminders.GoalReached || s.adjustedGoals == nil {
		return
	}
	if ConsumedCalories(s.todayMeals) < s.adjustedGoals.Calories {
		return
	}
	key := goalReachedKey(s.userID, today)
	if s.fired[key] {
		return
	}
	s.fired[key] = true
	s.notifier.Notify(
		"Goal Achieved!",
		fmt.Sprintf("You've reached your daily calorie goal of %.0f kcal!", s.adjustedGoals.Calories),
	)
}

// --- Mutations. Each is a no-op when the session is unauthenticated. ---

// SaveProfile validates and persists the whole profile, then recomputes the
// adjusted goals from the new base targets.
func (s *Session) SaveProfile(ctx context.Context, profile models.Profile) error {
	if !s.authenticated() {
		return nil
	}
	if err := s.validate.Struct(profile); err != nil {
		return fmt.Errorf("%w: %v", ErrBadRequest, err)
	}
	if err := models.ValidateEnums(profile.Gender, profile.ActivityLevel, profile.Goal); err != nil {
		return fmt.Errorf("%w: %v", ErrBadRequest, err)
	}

	s.loading = true
	defer func() { s.loading = false }()

	saved, err := s.api.SaveProfile(ctx, profile)
	if err != nil {
		return err
	}
	s.profile = saved
	s.adjustedGoals = AdjustGoals(saved, s.todayWorkouts)
	return nil
}

// AddMeal logs a meal. Date defaults to today when empty.
func (s *Session) AddMeal(ctx context.Context, name, description string, macros models.Macros, mealType models.MealType, date string) error {
	if !s.authenticated() {
		return nil
	}
	if !mealType.Valid() {
		return fmt.Errorf("%w: invalid meal type %q", ErrBadRequest, mealType)
	}
	if date == "" {
		date = TodayString(s.now())
	}

	s.loading = true
	defer func() { s.loading = false }()

	meal := models.Meal{
		Name:        name,
		Description: description,
		Macros:      macros,
		MealType:    mealType,
		Date:        date,
	}
	if _, err := s.api.AddMeal(ctx, meal); err != nil {
		return err
	}
	s.Refresh(ctx)
	return nil
}

func (s *Session) UpdateMeal(ctx context.Context, meal models.Meal) error {
	if !s.authenticated() {
		return nil
	}
	s.loading = true
	defer func() { s.loading = false }()

	if _, err := s.api.UpdateMeal(ctx, meal.ID, meal); err != nil {
		return err
	}
	s.Refresh(ctx)
	return nil
}

func (s *Session) DeleteMeal(ctx context.Context, meal models.Meal) error {
	if !s.authenticated() {
		return nil
	}
	s.loading = true
	defer func() { s.loading = false }()

	if err := s.api.DeleteMeal(ctx, meal.ID); err != nil {
		return err
	}
	s.Refresh(ctx)
	return nil
}

// AddCustomMeal saves a meal template. Only the custom-meal slice is patched,
// from the store's confirmed response; no full reload for this path.
func (s *Session) AddCustomMeal(ctx context.Context, meal models.CustomMeal) error {
	if !s.authenticated() {
		return nil
	}
	saved, err := s.api.AddCustomMeal(ctx, meal)
	if err != nil {
		return err
	}
	s.customMeals = append([]models.CustomMeal{*saved}, s.customMeals...)
	return nil
}

func (s *Session) UpdateCustomMeal(ctx context.Context, meal models.CustomMeal) error {
	if !s.authenticated() {
		return nil
	}
	saved, err := s.api.UpdateCustomMeal(ctx, meal.ID, meal)
	if err != nil {
		return err
	}
	for i := range s.customMeals {
		if s.customMeals[i].ID == saved.ID {
			s.customMeals[i] = *saved
			break
		}
	}
	return nil
}

func (s *Session) DeleteCustomMeal(ctx context.Context, meal models.CustomMeal) error {
	if !s.authenticated() {
		return nil
	}
	if err := s.api.DeleteCustomMeal(ctx, meal.ID); err != nil {
		return err
	}
	kept := s.customMeals[:0]
	for _, m := range s.customMeals {
		if m.ID != meal.ID {
			kept = append(kept, m)
		}
	}
	s.customMeals = kept
	return nil
}

// LogCustomMeal re-logs a saved template as a fresh meal with the chosen type
// and date.
func (s *Session) LogCustomMeal(ctx context.Context, template models.CustomMeal, mealType models.MealType, date string) error {
	return s.AddMeal(ctx, template.Name, template.Description, template.Macros, mealType, date)
}

// AddWorkout estimates calories burned before anything is persisted. An
// estimation failure aborts the whole operation.
func (s *Session) AddWorkout(ctx context.Context, exerciseType string, duration int, intensity models.Intensity, date string) error {
	if !s.authenticated() || s.profile == nil {
		return nil
	}
	if s.estimator == nil {
		return fmt.Errorf("%w: no estimator configured", ErrEstimationFailed)
	}
	if !intensity.Valid() {
		return fmt.Errorf("%w: invalid intensity %q", ErrBadRequest, intensity)
	}
	if date == "" {
		date = TodayString(s.now())
	}

	s.loading = true
	defer func() { s.loading = false }()

	burned, err := s.estimator.EstimateCaloriesBurned(ctx, WorkoutParams{
		ExerciseType: exerciseType,
		Duration:     duration,
		Intensity:    intensity,
		UserWeight:   s.profile.Weight,
	})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrEstimationFailed, err)
	}

	workout := models.WorkoutLog{
		Date:           date,
		ExerciseType:   exerciseType,
		Duration:       duration,
		Intensity:      intensity,
		CaloriesBurned: burned,
	}
	if _, err := s.api.AddWorkout(ctx, workout); err != nil {
		return err
	}
	s.Refresh(ctx)
	return nil
}

// UpdateWorkout re-estimates calories for the changed parameters before
// persisting, mirroring creation.
func (s *Session) UpdateWorkout(ctx context.Context, workout models.WorkoutLog) error {
	if !s.authenticated() || s.profile == nil {
		return nil
	}
	if s.estimator == nil {
		return fmt.Errorf("%w: no estimator configured", ErrEstimationFailed)
	}

	s.loading = true
	defer func() { s.loading = false }()

	burned, err := s.estimator.EstimateCaloriesBurned(ctx, WorkoutParams{
		ExerciseType: workout.ExerciseType,
		Duration:     workout.Duration,
		Intensity:    workout.Intensity,
		UserWeight:   s.profile.Weight,
	})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrEstimationFailed, err)
	}
	workout.CaloriesBurned = burned

	if _, err := s.api.UpdateWorkout(ctx, workout.ID, workout); err != nil {
		return err
	}
	s.Refresh(ctx)
	return nil
}

func (s *Session) DeleteWorkout(ctx context.Context, workout models.WorkoutLog) error {
	if !s.authenticated() {
		return nil
	}
	s.loading = true
	defer func() { s.loading = false }()

	if err := s.api.DeleteWorkout(ctx, workout.ID); err != nil {
		return err
	}
	s.Refresh(ctx)
	return nil
}

// AddWeightLog upserts the day's weight entry. A log for the current day also
// rewrites the profile's stored weight.
func (s *Session) AddWeightLog(ctx context.Context, weight float64, date string) error {
	if !s.authenticated() {
		return nil
	}
	today := TodayString(s.now())
	if date == "" {
		date = today
	}

	s.loading = true
	defer func() { s.loading = false }()

	if _, err := s.api.SaveWeightLog(ctx, date, weight); err != nil {
		return err
	}

	if date == today && s.profile != nil {
		updated := *s.profile
		updated.Weight = weight
		saved, err := s.api.SaveProfile(ctx, updated)
		if err != nil {
			return err
		}
		s.profile = saved
	}

	s.Refresh(ctx)
	return nil
}

func (s *Session) DeleteWeightLog(ctx context.Context, date string) error {
	if !s.authenticated() {
		return nil
	}
	s.loading = true
	defer func() { s.loading = false }()

	if err := s.api.DeleteWeightLog(ctx, date); err != nil {
		return err
	}
	s.Refresh(ctx)
	return nil
}

// AddWater adds one glass to today's water log. High-frequency path: only the
// local water slice is patched, from the store's confirmed response.
func (s *Session) AddWater(ctx context.Context) error {
	if !s.authenticated() {
		return nil
	}
	today := TodayString(s.now())
	amount := s.waterLog.Amount
	if s.waterLog.Date != today {
		amount = 0 // the loaded log is stale; a new day started
	}

	saved, err := s.api.SaveWaterLog(ctx, today, amount+1)
	if err != nil {
		return err
	}
	s.waterLog = *saved
	return nil
}

func (s *Session) DeleteWaterLog(ctx context.Context, date string) error {
	if !s.authenticated() {
		return nil
	}
	s.loading = true
	defer func() { s.loading = false }()

	if err := s.api.DeleteWaterLog(ctx, date); err != nil {
		return err
	}
	s.Refresh(ctx)
	return nil
}

// DefaultProfile is the seed profile used in dev mode so a fresh database
// does not force the setup flow.
func DefaultProfile() models.Profile {
	return models.Profile{
		Name:          "Dev User",
		Age:           30,
		Weight:        75,
		Height:        180,
		Gender:        models.GenderMale,
		ActivityLevel: models.ActivityModerate,
		Goal:          models.GoalMaintain,
		DailyGoals: models.DailyGoals{
			Calories: 2500,
			Protein:  150,
			Carbs:    300,
			Fat:      80,
			Water:    8,
		},
		Reminders: models.ReminderSettings{
			Water:       models.WaterReminder{Enabled: true, Frequency: 120},
			Meal:        true,
			GoalReached: true,
		},
	}
}
