package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func f64(v float64) *float64 { return &v }

func TestUser_BMI(t *testing.T) {
	tests := []struct {
		name   string
		height *float64
		weight *float64
		want   float64
		ok     bool
	}{
		{name: "both present", height: f64(180), weight: f64(75), want: 23.1, ok: true},
		{name: "rounds to one decimal", height: f64(165), weight: f64(68), want: 25.0, ok: true},
		{name: "height only", height: f64(180)},
		{name: "weight only", weight: f64(75)},
		{name: "neither"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := &User{HeightCM: tt.height, WeightKG: tt.weight}
			got, ok := u.BMI()
			assert.Equal(t, tt.ok, ok)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestBMICategory(t *testing.T) {
	assert.Equal(t, "underweight", BMICategory(18.4))
	assert.Equal(t, "normal", BMICategory(18.5))
	assert.Equal(t, "normal", BMICategory(24.9))
	assert.Equal(t, "overweight", BMICategory(25))
	assert.Equal(t, "overweight", BMICategory(29.9))
	assert.Equal(t, "obese", BMICategory(30))
}

func TestEnums(t *testing.T) {
	assert.True(t, GenderOther.Valid())
	assert.False(t, Gender("robot").Valid())

	goals := []Goal{GoalLoseWeight, GoalGainWeight, GoalMaintainWeight, GoalBuildMuscle,
		GoalImproveEndurance, GoalImproveHealth, GoalManageCondition}
	for _, g := range goals {
		assert.True(t, g.Valid(), g)
	}
	assert.False(t, Goal("get_rich").Valid())

	levels := []ActivityLevel{ActivitySedentary, ActivityLight, ActivityModerate, ActivityActive, ActivityVeryActive}
	for _, l := range levels {
		assert.True(t, l.Valid(), l)
	}
	assert.False(t, ActivityLevel("extreme").Valid())
}

func TestFieldSet(t *testing.T) {
	s := NewFieldSet(FieldPhone, FieldPassword)
	assert.True(t, s.Has(FieldPassword))
	assert.True(t, s.Has(FieldPhone))
	assert.False(t, s.Has(FieldGoal))

	var empty FieldSet
	assert.False(t, empty.Has(FieldPassword))
}
