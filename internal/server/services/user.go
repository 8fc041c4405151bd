// Package services contains server-side business logic. UserService owns the
// credential lifecycle: registration, login and token issuance, profile
// reads and updates, and password changes.
package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/fitkeeper/internal/common"
	"github.com/dmitrijs2005/fitkeeper/internal/cryptox"
	"github.com/dmitrijs2005/fitkeeper/internal/logging"
	"github.com/dmitrijs2005/fitkeeper/internal/server/auth"
	"github.com/dmitrijs2005/fitkeeper/internal/server/config"
	"github.com/dmitrijs2005/fitkeeper/internal/server/models"
	"github.com/dmitrijs2005/fitkeeper/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/fitkeeper/internal/server/repositories/users"
	"github.com/dmitrijs2005/fitkeeper/internal/validation"
)

const maxDisplayNameLength = 100

// PhotoChecker reports whether an object key has been uploaded.
type PhotoChecker interface {
	Exists(ctx context.Context, key string) (bool, error)
}

type UserService struct {
	repomanager                 repomanager.RepositoryManager
	jwtSecret                   []byte
	accessTokenValidityDuration time.Duration
	log                         logging.Logger

	hashPassword func(password []byte) (string, error)
}

func NewUserService(m repomanager.RepositoryManager, cfg *config.Config, log logging.Logger) *UserService {
	return &UserService{
		repomanager:                 m,
		jwtSecret:                   []byte(cfg.SecretKey),
		accessTokenValidityDuration: cfg.AccessTokenValidityDuration,
		log:                         log,
		hashPassword:                cryptox.HashPassword,
	}
}

// Register creates a user. The username is trimmed and required, an empty
// role means common.RoleUser, and the password must pass validation.Password
// before it is hashed. A taken username yields common.ErrorAlreadyExists.
func (s *UserService) Register(ctx context.Context, username, password, role string) (*models.User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, common.NewValidationError("username", "Username is required")
	}

	switch role {
	case "":
		role = common.RoleUser
	case common.RoleUser, common.RoleAdmin:
	default:
		return nil, common.NewValidationError("role", fmt.Sprintf("Role must be %q or %q", common.RoleUser, common.RoleAdmin))
	}

	if r := validation.Password(password); !r.Valid {
		return nil, common.NewValidationError("password", r.Message)
	}

	repo := s.repomanager.Users()

	_, err := repo.GetUserByLogin(ctx, username)
	switch {
	case err == nil:
		return nil, common.ErrorAlreadyExists
	case !errors.Is(err, common.ErrorNotFound):
		return nil, common.NewInfrastructureError("lookup user", err)
	}

	pw := []byte(password)
	defer common.WipeByteArray(pw)

	hash, err := s.hashPassword(pw)
	if err != nil {
		return nil, common.NewInfrastructureError("hash password", err)
	}

	user := &models.User{
		UserName:     username,
		PasswordHash: hash,
		Role:         role,
		Preferences:  models.DefaultPreferences(),
	}

	u, err := repo.Create(ctx, user)
	if err != nil {
		// lost a race with a concurrent registration
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, common.ErrorAlreadyExists
		}
		return nil, common.NewInfrastructureError("create user", err)
	}

	s.log.Info(ctx, "user registered", "user_id", u.ID, "role", u.Role)
	return u, nil
}

// Login verifies the password and returns a signed access token. An unknown
// username yields common.ErrorNotFound and a wrong password
// common.ErrInvalidCredentials; callers rely on the distinction.
func (s *UserService) Login(ctx context.Context, username, password string) (string, error) {
	username = strings.TrimSpace(username)

	user, err := s.repomanager.Users().GetUserByLogin(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", common.ErrorNotFound
		}
		return "", common.NewInfrastructureError("lookup user", err)
	}

	pw := []byte(password)
	defer common.WipeByteArray(pw)

	ok, err := cryptox.VerifyPassword(user.PasswordHash, pw)
	if err != nil {
		return "", common.NewInfrastructureError("verify password", err)
	}
	if !ok {
		return "", common.ErrInvalidCredentials
	}

	token, err := auth.GenerateToken(user.ID, user.Role, s.jwtSecret, s.accessTokenValidityDuration)
	if err != nil {
		return "", common.NewInfrastructureError("sign token", err)
	}

	s.log.Info(ctx, "user logged in", "user_id", user.ID)
	return token, nil
}

func (s *UserService) GetProfile(ctx context.Context, userID string) (*models.User, error) {
	user, err := s.repomanager.Users().GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, common.NewInfrastructureError("get user", err)
	}
	return user, nil
}

// UpdateProfile copies the fields named in changed from patch onto the
// stored user. The row is locked for the read-modify-write, so concurrent
// updates and password changes are not lost. The password is rehashed only
// when changed holds models.FieldPassword.
func (s *UserService) UpdateProfile(ctx context.Context, userID string, patch models.ProfilePatch, changed models.FieldSet) (*models.User, error) {
	if err := validatePatch(patch, changed); err != nil {
		return nil, err
	}

	var hash string
	if changed.Has(models.FieldPassword) {
		pw := []byte(patch.Password)
		defer common.WipeByteArray(pw)

		var err error
		if hash, err = s.hashPassword(pw); err != nil {
			return nil, common.NewInfrastructureError("hash password", err)
		}
	}

	var updated *models.User
	err := s.repomanager.WithTx(ctx, func(ctx context.Context, repo users.Repository) error {
		user, err := repo.GetUserByIDForUpdate(ctx, userID)
		if err != nil {
			return err
		}

		applyPatch(user, patch, changed)
		if changed.Has(models.FieldPassword) {
			user.PasswordHash = hash
		}
		if err := validatePreferences(user.Preferences, changed); err != nil {
			return err
		}

		updated, err = repo.Update(ctx, user)
		return err
	})
	if err != nil {
		return nil, txError("update user", err)
	}

	return updated, nil
}

// ChangePassword checks current against the stored hash and then stores
// next. Both happen under the same row lock.
func (s *UserService) ChangePassword(ctx context.Context, userID, current, next string) error {
	if r := validation.Password(next); !r.Valid {
		return common.NewValidationError(string(models.FieldPassword), r.Message)
	}

	nextPW, currentPW := []byte(next), []byte(current)
	defer common.WipeByteArray(nextPW)
	defer common.WipeByteArray(currentPW)

	hash, err := s.hashPassword(nextPW)
	if err != nil {
		return common.NewInfrastructureError("hash password", err)
	}

	err = s.repomanager.WithTx(ctx, func(ctx context.Context, repo users.Repository) error {
		user, err := repo.GetUserByIDForUpdate(ctx, userID)
		if err != nil {
			return err
		}

		ok, err := cryptox.VerifyPassword(user.PasswordHash, currentPW)
		if err != nil {
			return common.NewInfrastructureError("verify password", err)
		}
		if !ok {
			return common.ErrInvalidCredentials
		}

		user.PasswordHash = hash
		_, err = repo.Update(ctx, user)
		return err
	})
	if err != nil {
		return txError("change password", err)
	}

	s.log.Info(ctx, "password changed", "user_id", userID)
	return nil
}

// SetPhoto attaches an uploaded object to the profile. The key must lie under
// the user's own prefix and the object must exist in the store.
func (s *UserService) SetPhoto(ctx context.Context, userID, key string, photos PhotoChecker) (*models.User, error) {
	prefix := models.PhotoKeyPrefix(userID)
	if !strings.HasPrefix(key, prefix) || len(key) == len(prefix) {
		return nil, common.NewValidationError("key", "Photo key does not belong to this user")
	}

	ok, err := photos.Exists(ctx, key)
	if err != nil {
		return nil, common.NewInfrastructureError("check photo", err)
	}
	if !ok {
		return nil, common.NewValidationError("key", "Photo has not been uploaded")
	}

	return s.UpdateProfile(ctx, userID, models.ProfilePatch{PhotoKey: key}, models.NewFieldSet(models.FieldPhotoKey))
}

// txError keeps domain errors from a transaction body and wraps the rest.
func txError(op string, err error) error {
	var ve *common.ValidationError
	var ie *common.InfrastructureError
	switch {
	case errors.Is(err, common.ErrorNotFound):
		return common.ErrorNotFound
	case errors.Is(err, common.ErrorAlreadyExists):
		return common.ErrorAlreadyExists
	case errors.Is(err, common.ErrInvalidCredentials):
		return common.ErrInvalidCredentials
	case errors.As(err, &ve), errors.As(err, &ie):
		return err
	}
	return common.NewInfrastructureError(op, err)
}

func validatePatch(p models.ProfilePatch, changed models.FieldSet) error {
	if changed.Has(models.FieldDisplayName) {
		if r := validation.Length(p.DisplayName, "Display name", 0, maxDisplayNameLength); !r.Valid {
			return common.NewValidationError(string(models.FieldDisplayName), r.Message)
		}
	}
	if changed.Has(models.FieldPhone) && p.Phone != "" {
		if r := validation.Phone(p.Phone, "Phone"); !r.Valid {
			return common.NewValidationError(string(models.FieldPhone), r.Message)
		}
	}
	if changed.Has(models.FieldGender) && p.Gender != nil && !p.Gender.Valid() {
		return common.NewValidationError(string(models.FieldGender), "Gender must be male, female or other")
	}
	if changed.Has(models.FieldGoal) && p.Goal != nil && !p.Goal.Valid() {
		return common.NewValidationError(string(models.FieldGoal), "Goal is not recognised")
	}
	if changed.Has(models.FieldActivityLevel) && p.ActivityLevel != nil && !p.ActivityLevel.Valid() {
		return common.NewValidationError(string(models.FieldActivityLevel), "Activity level is not recognised")
	}
	if changed.Has(models.FieldHeight) && p.HeightCM != nil {
		if err := checkRange(models.FieldHeight, "Height", *p.HeightCM, models.MinHeightCM, models.MaxHeightCM); err != nil {
			return err
		}
	}
	if changed.Has(models.FieldWeight) && p.WeightKG != nil {
		if err := checkRange(models.FieldWeight, "Weight", *p.WeightKG, models.MinWeightKG, models.MaxWeightKG); err != nil {
			return err
		}
	}
	if changed.Has(models.FieldPassword) {
		if r := validation.Password(p.Password); !r.Valid {
			return common.NewValidationError(string(models.FieldPassword), r.Message)
		}
	}
	return nil
}

// validatePreferences checks the merged preferences, so a partial patch is
// judged against the stored values it keeps.
func validatePreferences(p models.Preferences, changed models.FieldSet) error {
	if !changed.Has(models.FieldPreferences) {
		return nil
	}
	switch p.Theme {
	case "light", "dark", "system":
	default:
		return common.NewValidationError("theme", "Theme must be light, dark or system")
	}
	switch p.UnitSystem {
	case "metric", "imperial":
	default:
		return common.NewValidationError("unitSystem", "Unit system must be metric or imperial")
	}
	return nil
}

func checkRange(field models.Field, label string, v, min, max float64) error {
	if v < min || v > max {
		return common.NewValidationError(string(field), fmt.Sprintf("%s must be between %g and %g", label, min, max))
	}
	return nil
}

func applyPatch(u *models.User, p models.ProfilePatch, changed models.FieldSet) {
	for f := range changed {
		switch f {
		case models.FieldDisplayName:
			u.DisplayName = strings.TrimSpace(p.DisplayName)
		case models.FieldPhone:
			u.Phone = p.Phone
		case models.FieldBirthDate:
			u.BirthDate = p.BirthDate
		case models.FieldGender:
			u.Gender = p.Gender
		case models.FieldHeight:
			u.HeightCM = p.HeightCM
		case models.FieldWeight:
			u.WeightKG = p.WeightKG
		case models.FieldGoal:
			u.Goal = p.Goal
		case models.FieldActivityLevel:
			u.ActivityLevel = p.ActivityLevel
		case models.FieldPhotoKey:
			u.PhotoKey = p.PhotoKey
		case models.FieldProviderID:
			u.ProviderID = p.ProviderID
		case models.FieldPreferences:
			u.Preferences = p.Preferences.Apply(u.Preferences)
		}
	}
}
