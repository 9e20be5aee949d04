package services

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/ankitmgs/Fitness-AI/client"
	"github.com/ankitmgs/Fitness-AI/models"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const estimationModel = "gemini-1.5-flash"

// GeminiEstimator implements client.Estimator on top of the Gemini API. Both
// prompts demand strict JSON; anything else is treated as a soft failure the
// user retries.
type GeminiEstimator struct {
	client *genai.Client
}

func NewGeminiEstimator(ctx context.Context) (*GeminiEstimator, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY not set")
	}
	c, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, err
	}
	return &GeminiEstimator{client: c}, nil
}

func (g *GeminiEstimator) Close() error {
	return g.client.Close()
}

func (g *GeminiEstimator) AnalyzeMeal(ctx context.Context, description string) (*client.MealAnalysis, error) {
	prompt := fmt.Sprintf(`Analyze this meal description and estimate its nutrition.
Respond with strict JSON only, no prose, in this exact shape:
{"name": "short meal name", "calories": 0, "protein": 0, "carbs": 0, "fat": 0}
Calories in kcal, protein/carbs/fat in grams.

Meal: %s`, description)

	raw, err := g.generate(ctx, prompt)
	if err != nil {
		return nil, err
	}
	return ParseMealAnalysis(raw)
}

func (g *GeminiEstimator) EstimateCaloriesBurned(ctx context.Context, params client.WorkoutParams) (float64, error) {
	prompt := fmt.Sprintf(`Estimate the calories burned by this workout.
Respond with strict JSON only, no prose: {"caloriesBurned": 0}

Exercise: %s
Duration: %d minutes
Intensity: %s
Body weight: %.1f kg`, params.ExerciseType, params.Duration, params.Intensity, params.UserWeight)

	raw, err := g.generate(ctx, prompt)
	if err != nil {
		return 0, err
	}
	return ParseCaloriesBurned(raw)
}

func (g *GeminiEstimator) generate(ctx context.Context, prompt string) (string, error) {
	model := g.client.GenerativeModel(estimationModel)
	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("generation request failed: %w", err)
	}

	var sb strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if text, ok := part.(genai.Text); ok {
				sb.WriteString(string(text))
			}
		}
	}
	out := sb.String()
	if out == "" {
		return "", fmt.Errorf("model returned no text")
	}
	return out, nil
}

// stripFences removes the markdown code fences models wrap JSON in.
func stripFences(raw string) string {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

// ParseMealAnalysis decodes the meal-analysis response. Exported (with
// ParseCaloriesBurned) so the decoding is testable without the network.
func ParseMealAnalysis(raw string) (*client.MealAnalysis, error) {
	var payload struct {
		Name     string  `json:"name"`
		Calories float64 `json:"calories"`
		Protein  float64 `json:"protein"`
		Carbs    float64 `json:"carbs"`
		Fat      float64 `json:"fat"`
	}
	if err := json.Unmarshal([]byte(stripFences(raw)), &payload); err != nil {
		return nil, fmt.Errorf("unparseable analysis response: %w", err)
	}
	if payload.Name == "" || payload.Calories <= 0 {
		return nil, fmt.Errorf("analysis response missing name or calories")
	}
	return &client.MealAnalysis{
		Name: payload.Name,
		Macros: models.Macros{
			Calories: payload.Calories,
			Protein:  payload.Protein,
			Carbs:    payload.Carbs,
			Fat:      payload.Fat,
		},
	}, nil
}

// ParseCaloriesBurned decodes the workout-estimate response and rejects
// non-positive values.
func ParseCaloriesBurned(raw string) (float64, error) {
	var payload struct {
		CaloriesBurned float64 `json:"caloriesBurned"`
	}
	if err := json.Unmarshal([]byte(stripFences(raw)), &payload); err != nil {
		return 0, fmt.Errorf("unparseable estimate response: %w", err)
	}
	if payload.CaloriesBurned <= 0 {
		return 0, fmt.Errorf("estimate response has no usable caloriesBurned value")
	}
	return payload.CaloriesBurned, nil
}
