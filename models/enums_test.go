package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMealTypeValid(t *testing.T) {
	for _, m := range []MealType{MealTypeBreakfast, MealTypeLunch, MealTypeDinner, MealTypeSnack} {
		assert.True(t, m.Valid(), string(m))
	}
	assert.False(t, MealType("brunch").Valid())
	assert.False(t, MealType("").Valid())
	assert.False(t, MealType("Breakfast").Valid(), "values are case sensitive")
}

func TestIntensityValid(t *testing.T) {
	for _, i := range []Intensity{IntensityLow, IntensityMedium, IntensityHigh} {
		assert.True(t, i.Valid(), string(i))
	}
	assert.False(t, Intensity("extreme").Valid())
	assert.False(t, Intensity("").Valid())
}

func TestValidateEnums(t *testing.T) {
	assert.NoError(t, ValidateEnums(GenderFemale, ActivityVeryActive, GoalLose))

	err := ValidateEnums(Gender("unknown"), ActivityModerate, GoalMaintain)
	assert.ErrorContains(t, err, "gender")

	err = ValidateEnums(GenderMale, ActivityLevel("couch"), GoalMaintain)
	assert.ErrorContains(t, err, "activity level")

	err = ValidateEnums(GenderMale, ActivityModerate, Goal("bulk"))
	assert.ErrorContains(t, err, "goal")
}
