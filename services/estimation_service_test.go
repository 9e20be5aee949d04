package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMealAnalysis(t *testing.T) {
	raw := `{"name": "Chicken Salad", "calories": 420, "protein": 35, "carbs": 12, "fat": 24}`

	analysis, err := ParseMealAnalysis(raw)
	require.NoError(t, err)
	assert.Equal(t, "Chicken Salad", analysis.Name)
	assert.Equal(t, 420.0, analysis.Macros.Calories)
	assert.Equal(t, 35.0, analysis.Macros.Protein)
	assert.Equal(t, 12.0, analysis.Macros.Carbs)
	assert.Equal(t, 24.0, analysis.Macros.Fat)
}

func TestParseMealAnalysisStripsCodeFences(t *testing.T) {
	raw := "```json\n{\"name\": \"Oatmeal\", \"calories\": 300, \"protein\": 10, \"carbs\": 54, \"fat\": 6}\n```"

	analysis, err := ParseMealAnalysis(raw)
	require.NoError(t, err)
	assert.Equal(t, "Oatmeal", analysis.Name)
	assert.Equal(t, 300.0, analysis.Macros.Calories)
}

func TestParseMealAnalysisRejectsBadPayloads(t *testing.T) {
	cases := map[string]string{
		"prose instead of JSON": "Sure! Here is the nutrition breakdown you asked for.",
		"missing name":          `{"calories": 400, "protein": 20, "carbs": 30, "fat": 10}`,
		"zero calories":         `{"name": "Water", "calories": 0}`,
		"negative calories":     `{"name": "Glitch", "calories": -100}`,
		"empty":                 "",
	}
	for label, raw := range cases {
		_, err := ParseMealAnalysis(raw)
		assert.Error(t, err, label)
	}
}

func TestParseCaloriesBurned(t *testing.T) {
	burned, err := ParseCaloriesBurned(`{"caloriesBurned": 312.5}`)
	require.NoError(t, err)
	assert.Equal(t, 312.5, burned)
}

func TestParseCaloriesBurnedStripsCodeFences(t *testing.T) {
	burned, err := ParseCaloriesBurned("```json\n{\"caloriesBurned\": 250}\n```")
	require.NoError(t, err)
	assert.Equal(t, 250.0, burned)
}

func TestParseCaloriesBurnedRejectsBadPayloads(t *testing.T) {
	cases := map[string]string{
		"prose":    "About 300 calories, give or take.",
		"zero":     `{"caloriesBurned": 0}`,
		"negative": `{"caloriesBurned": -50}`,
		"empty":    "",
	}
	for label, raw := range cases {
		_, err := ParseCaloriesBurned(raw)
		assert.Error(t, err, label)
	}
}

func TestStripFences(t *testing.T) {
	assert.Equal(t, `{"a":1}`, stripFences("```json\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, stripFences("```\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, stripFences(`  {"a":1}  `))
}
