package models

import "time"

// Field names a mutable part of a User.
type Field string

const (
	FieldDisplayName   Field = "displayName"
	FieldPhone         Field = "phone"
	FieldBirthDate     Field = "birthDate"
	FieldGender        Field = "gender"
	FieldHeight        Field = "heightCm"
	FieldWeight        Field = "weightKg"
	FieldGoal          Field = "goal"
	FieldActivityLevel Field = "activityLevel"
	FieldPhotoKey      Field = "photoKey"
	FieldProviderID    Field = "providerId"
	FieldPreferences   Field = "preferences"
	FieldPassword      Field = "password"
)

// FieldSet lists the fields an update actually changes. Only fields in the
// set are copied from a ProfilePatch, and the password hash is recomputed
// only when FieldPassword is present.
type FieldSet map[Field]struct{}

func NewFieldSet(fields ...Field) FieldSet {
	s := make(FieldSet, len(fields))
	for _, f := range fields {
		s[f] = struct{}{}
	}
	return s
}

func (s FieldSet) Has(f Field) bool {
	_, ok := s[f]
	return ok
}

// ProfilePatch carries new values for an update. Pointer fields left nil
// clear the stored value when their Field is in the FieldSet.
type ProfilePatch struct {
	DisplayName   string
	Phone         string
	BirthDate     *time.Time
	Gender        *Gender
	HeightCM      *float64
	WeightKG      *float64
	Goal          *Goal
	ActivityLevel *ActivityLevel
	PhotoKey      string
	ProviderID    *string
	Preferences   PreferencesPatch

	// Password is plaintext and only read when FieldPassword is set.
	Password string
}

// PreferencesPatch is a partial update of Preferences. Nil fields keep the
// stored value.
type PreferencesPatch struct {
	NotifyActivity   *bool
	NotifyMedication *bool
	NotifyForum      *bool
	NotifyAdvice     *bool
	Locale           *string
	Theme            *string
	UnitSystem       *string
}

// Apply returns p merged over base.
func (p PreferencesPatch) Apply(base Preferences) Preferences {
	if p.NotifyActivity != nil {
		base.NotifyActivity = *p.NotifyActivity
	}
	if p.NotifyMedication != nil {
		base.NotifyMedication = *p.NotifyMedication
	}
	if p.NotifyForum != nil {
		base.NotifyForum = *p.NotifyForum
	}
	if p.NotifyAdvice != nil {
		base.NotifyAdvice = *p.NotifyAdvice
	}
	if p.Locale != nil {
		base.Locale = *p.Locale
	}
	if p.Theme != nil {
		base.Theme = *p.Theme
	}
	if p.UnitSystem != nil {
		base.UnitSystem = *p.UnitSystem
	}
	return base
}
