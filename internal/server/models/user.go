// Package models contains the server-side data model.
package models

import (
	"math"
	"time"
)

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

type Goal string

const (
	GoalLoseWeight       Goal = "lose_weight"
	GoalGainWeight       Goal = "gain_weight"
	GoalMaintainWeight   Goal = "maintain_weight"
	GoalBuildMuscle      Goal = "build_muscle"
	GoalImproveEndurance Goal = "improve_endurance"
	GoalImproveHealth    Goal = "improve_health"
	GoalManageCondition  Goal = "manage_condition"
)

type ActivityLevel string

const (
	ActivitySedentary  ActivityLevel = "sedentary"
	ActivityLight      ActivityLevel = "light"
	ActivityModerate   ActivityLevel = "moderate"
	ActivityActive     ActivityLevel = "active"
	ActivityVeryActive ActivityLevel = "very_active"
)

// Body measurement bounds, inclusive.
const (
	MinHeightCM = 100.0
	MaxHeightCM = 250.0
	MinWeightKG = 30.0
	MaxWeightKG = 300.0
)

func (g Gender) Valid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderOther:
		return true
	}
	return false
}

func (g Goal) Valid() bool {
	switch g {
	case GoalLoseWeight, GoalGainWeight, GoalMaintainWeight, GoalBuildMuscle,
		GoalImproveEndurance, GoalImproveHealth, GoalManageCondition:
		return true
	}
	return false
}

func (a ActivityLevel) Valid() bool {
	switch a {
	case ActivitySedentary, ActivityLight, ActivityModerate, ActivityActive, ActivityVeryActive:
		return true
	}
	return false
}

// Preferences are the user's notification toggles and display settings.
type Preferences struct {
	NotifyActivity   bool
	NotifyMedication bool
	NotifyForum      bool
	NotifyAdvice     bool
	Locale           string
	Theme            string
	UnitSystem       string
}

// DefaultPreferences are applied to new records.
func DefaultPreferences() Preferences {
	return Preferences{
		NotifyActivity:   true,
		NotifyMedication: true,
		NotifyForum:      true,
		NotifyAdvice:     true,
		Locale:           "en",
		Theme:            "system",
		UnitSystem:       "metric",
	}
}

// User is the single persisted record: identity, credential, profile and
// preferences. PasswordHash always holds an argon2id hash, never plaintext.
type User struct {
	ID           string
	UserName     string
	ProviderID   *string
	PasswordHash string
	Role         string

	DisplayName   string
	Phone         string
	BirthDate     *time.Time
	Gender        *Gender
	HeightCM      *float64
	WeightKG      *float64
	Goal          *Goal
	ActivityLevel *ActivityLevel
	PhotoKey      string

	Preferences Preferences

	CreatedAt    time.Time
	LastActiveAt time.Time
}

// BMI returns weight / height_m², rounded to one decimal. ok is false unless
// both height and weight are set.
func (u *User) BMI() (bmi float64, ok bool) {
	if u.HeightCM == nil || u.WeightKG == nil || *u.HeightCM <= 0 {
		return 0, false
	}
	m := *u.HeightCM / 100
	return math.Round(*u.WeightKG/(m*m)*10) / 10, true
}

// BMICategory buckets a BMI at 18.5, 25 and 30.
func BMICategory(bmi float64) string {
	switch {
	case bmi < 18.5:
		return "underweight"
	case bmi < 25:
		return "normal"
	case bmi < 30:
		return "overweight"
	default:
		return "obese"
	}
}

// PhotoKeyPrefix is the object key prefix reserved for userID's photos.
func PhotoKeyPrefix(userID string) string {
	return "photos/" + userID + "/"
}
