package rest

import (
	"time"

	"github.com/dmitrijs2005/fitkeeper/internal/server/models"
)

const birthDateLayout = "2006-01-02"

type registerRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type changePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

type confirmPhotoRequest struct {
	Key string `json:"key"`
}

type preferencesDTO struct {
	NotifyActivity   bool   `json:"notifyActivity"`
	NotifyMedication bool   `json:"notifyMedication"`
	NotifyForum      bool   `json:"notifyForum"`
	NotifyAdvice     bool   `json:"notifyAdvice"`
	Locale           string `json:"locale"`
	Theme            string `json:"theme"`
	UnitSystem       string `json:"unitSystem"`
}

func preferencesToDTO(p models.Preferences) preferencesDTO {
	return preferencesDTO(p)
}

// preferencesPatchDTO decodes a partial preferences object; keys left out
// of the body stay nil.
type preferencesPatchDTO struct {
	NotifyActivity   *bool   `json:"notifyActivity"`
	NotifyMedication *bool   `json:"notifyMedication"`
	NotifyForum      *bool   `json:"notifyForum"`
	NotifyAdvice     *bool   `json:"notifyAdvice"`
	Locale           *string `json:"locale"`
	Theme            *string `json:"theme"`
	UnitSystem       *string `json:"unitSystem"`
}

func (d preferencesPatchDTO) model() models.PreferencesPatch {
	return models.PreferencesPatch(d)
}

type profileResponse struct {
	ID            string                `json:"id"`
	Username      string                `json:"username"`
	Role          string                `json:"role"`
	ProviderID    *string               `json:"providerId"`
	DisplayName   string                `json:"displayName"`
	Phone         string                `json:"phone"`
	BirthDate     *string               `json:"birthDate"`
	Gender        *models.Gender        `json:"gender"`
	HeightCM      *float64              `json:"heightCm"`
	WeightKG      *float64              `json:"weightKg"`
	Goal          *models.Goal          `json:"goal"`
	ActivityLevel *models.ActivityLevel `json:"activityLevel"`
	PhotoKey      string                `json:"photoKey"`
	BMI           *float64              `json:"bmi"`
	BMICategory   *string               `json:"bmiCategory"`
	Preferences   preferencesDTO        `json:"preferences"`
	CreatedAt     time.Time             `json:"createdAt"`
	LastActiveAt  time.Time             `json:"lastActiveAt"`
}

func newProfileResponse(u *models.User) profileResponse {
	resp := profileResponse{
		ID:            u.ID,
		Username:      u.UserName,
		Role:          u.Role,
		ProviderID:    u.ProviderID,
		DisplayName:   u.DisplayName,
		Phone:         u.Phone,
		Gender:        u.Gender,
		HeightCM:      u.HeightCM,
		WeightKG:      u.WeightKG,
		Goal:          u.Goal,
		ActivityLevel: u.ActivityLevel,
		PhotoKey:      u.PhotoKey,
		Preferences:   preferencesToDTO(u.Preferences),
		CreatedAt:     u.CreatedAt,
		LastActiveAt:  u.LastActiveAt,
	}

	if u.BirthDate != nil {
		s := u.BirthDate.Format(birthDateLayout)
		resp.BirthDate = &s
	}
	if bmi, ok := u.BMI(); ok {
		category := models.BMICategory(bmi)
		resp.BMI = &bmi
		resp.BMICategory = &category
	}

	return resp
}
