package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/ankitmgs/Fitness-AI/models"

	"github.com/google/uuid"
)

// Sentinel errors mirroring the backend's error taxonomy. Callers match with
// errors.Is.
var (
	ErrBadRequest   = errors.New("invalid request")
	ErrUnauthorized = errors.New("unauthorized")
	ErrNotFound     = errors.New("not found or permission denied")
	ErrConflict     = errors.New("conflict")
)

// API is a typed HTTP client for the record store. Every call carries the
// session's bearer credential; all routes are protected.
type API struct {
	baseURL string
	token   string
	client  *http.Client
}

func NewAPI(baseURL, token string) *API {
	return &API{
		baseURL: baseURL,
		token:   token,
		client:  &http.Client{Timeout: 15 * time.Second},
	}
}

func (a *API) do(ctx context.Context, method, path string, body, out interface{}) error {
	var buf io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		buf = bytes.NewBuffer(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, a.baseURL+path, buf)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+a.token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := a.client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return apiError(resp)
	}

	if out != nil && resp.StatusCode != http.StatusNoContent {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}

func apiError(resp *http.Response) error {
	var payload struct {
		Error string `json:"error"`
	}
	data, _ := io.ReadAll(resp.Body)
	_ = json.Unmarshal(data, &payload)
	msg := payload.Error
	if msg == "" {
		msg = resp.Status
	}

	switch resp.StatusCode {
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, msg)
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, msg)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, msg)
	case http.StatusConflict:
		return fmt.Errorf("%w: %s", ErrConflict, msg)
	default:
		return fmt.Errorf("server error %d: %s", resp.StatusCode, msg)
	}
}

// --- Profile ---

func (a *API) GetProfile(ctx context.Context) (*models.Profile, error) {
	var p models.Profile
	if err := a.do(ctx, http.MethodGet, "/api/profile", nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (a *API) SaveProfile(ctx context.Context, profile models.Profile) (*models.Profile, error) {
	var p models.Profile
	if err := a.do(ctx, http.MethodPost, "/api/profile", profile, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// --- Meals ---

func (a *API) ListMeals(ctx context.Context) ([]models.Meal, error) {
	var meals []models.Meal
	if err := a.do(ctx, http.MethodGet, "/api/meals", nil, &meals); err != nil {
		return nil, err
	}
	return meals, nil
}

func (a *API) AddMeal(ctx context.Context, meal models.Meal) (*models.Meal, error) {
	var m models.Meal
	if err := a.do(ctx, http.MethodPost, "/api/meals", meal, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

func (a *API) UpdateMeal(ctx context.Context, id uuid.UUID, meal models.Meal) (*models.Meal, error) {
	var m models.Meal
	if err := a.do(ctx, http.MethodPut, "/api/meals/"+id.String(), meal, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

func (a *API) DeleteMeal(ctx context.Context, id uuid.UUID) error {
	return a.do(ctx, http.MethodDelete, "/api/meals/"+id.String(), nil, nil)
}

// --- Custom meals ---

func (a *API) ListCustomMeals(ctx context.Context) ([]models.CustomMeal, error) {
	var meals []models.CustomMeal
	if err := a.do(ctx, http.MethodGet, "/api/custom-meals", nil, &meals); err != nil {
		return nil, err
	}
	return meals, nil
}

func (a *API) AddCustomMeal(ctx context.Context, meal models.CustomMeal) (*models.CustomMeal, error) {
	var m models.CustomMeal
	if err := a.do(ctx, http.MethodPost, "/api/custom-meals", meal, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

func (a *API) UpdateCustomMeal(ctx context.Context, id uuid.UUID, meal models.CustomMeal) (*models.CustomMeal, error) {
	var m models.CustomMeal
	if err := a.do(ctx, http.MethodPut, "/api/custom-meals/"+id.String(), meal, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

func (a *API) DeleteCustomMeal(ctx context.Context, id uuid.UUID) error {
	return a.do(ctx, http.MethodDelete, "/api/custom-meals/"+id.String(), nil, nil)
}

// --- Workouts ---

func (a *API) ListWorkouts(ctx context.Context) ([]models.WorkoutLog, error) {
	var workouts []models.WorkoutLog
	if err := a.do(ctx, http.MethodGet, "/api/workouts", nil, &workouts); err != nil {
		return nil, err
	}
	return workouts, nil
}

func (a *API) AddWorkout(ctx context.Context, workout models.WorkoutLog) (*models.WorkoutLog, error) {
	var w models.WorkoutLog
	if err := a.do(ctx, http.MethodPost, "/api/workouts", workout, &w); err != nil {
		return nil, err
	}
	return &w, nil
}

func (a *API) UpdateWorkout(ctx context.Context, id uuid.UUID, workout models.WorkoutLog) (*models.WorkoutLog, error) {
	var w models.WorkoutLog
	if err := a.do(ctx, http.MethodPut, "/api/workouts/"+id.String(), workout, &w); err != nil {
		return nil, err
	}
	return &w, nil
}

func (a *API) DeleteWorkout(ctx context.Context, id uuid.UUID) error {
	return a.do(ctx, http.MethodDelete, "/api/workouts/"+id.String(), nil, nil)
}

// --- Weight logs (addressed by date; their wire shape has no id) ---

func (a *API) ListWeightLogs(ctx context.Context) ([]models.WeightLog, error) {
	var logs []models.WeightLog
	if err := a.do(ctx, http.MethodGet, "/api/weight-logs", nil, &logs); err != nil {
		return nil, err
	}
	return logs, nil
}

func (a *API) SaveWeightLog(ctx context.Context, date string, weight float64) (*models.WeightLog, error) {
	var l models.WeightLog
	body := models.WeightLog{Date: date, Weight: weight}
	if err := a.do(ctx, http.MethodPost, "/api/weight-logs", body, &l); err != nil {
		return nil, err
	}
	return &l, nil
}

func (a *API) DeleteWeightLog(ctx context.Context, date string) error {
	return a.do(ctx, http.MethodDelete, "/api/weight-logs/"+date, nil, nil)
}

// --- Water logs (addressed by date) ---

func (a *API) ListWaterLogs(ctx context.Context) ([]models.WaterLog, error) {
	var logs []models.WaterLog
	if err := a.do(ctx, http.MethodGet, "/api/water-logs", nil, &logs); err != nil {
		return nil, err
	}
	return logs, nil
}

func (a *API) SaveWaterLog(ctx context.Context, date string, amount float64) (*models.WaterLog, error) {
	var l models.WaterLog
	body := models.WaterLog{Date: date, Amount: amount}
	if err := a.do(ctx, http.MethodPost, "/api/water-logs", body, &l); err != nil {
		return nil, err
	}
	return &l, nil
}

func (a *API) DeleteWaterLog(ctx context.Context, date string) error {
	return a.do(ctx, http.MethodDelete, "/api/water-logs/"+date, nil, nil)
}
