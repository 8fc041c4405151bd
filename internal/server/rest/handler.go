package rest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/dmitrijs2005/fitkeeper/internal/common"
	"github.com/dmitrijs2005/fitkeeper/internal/logging"
	"github.com/dmitrijs2005/fitkeeper/internal/server/models"
	"github.com/dmitrijs2005/fitkeeper/internal/server/services"
	"github.com/gin-gonic/gin"
)

type UserService interface {
	Register(ctx context.Context, username, password, role string) (*models.User, error)
	Login(ctx context.Context, username, password string) (string, error)
	GetProfile(ctx context.Context, userID string) (*models.User, error)
	UpdateProfile(ctx context.Context, userID string, patch models.ProfilePatch, changed models.FieldSet) (*models.User, error)
	ChangePassword(ctx context.Context, userID, current, next string) error
	SetPhoto(ctx context.Context, userID, key string, photos services.PhotoChecker) (*models.User, error)
}

type PhotoStore interface {
	PresignUpload(ctx context.Context, userID string) (key string, url string, err error)
	PresignDownload(ctx context.Context, key string) (string, error)
	Exists(ctx context.Context, key string) (bool, error)
}

type Handler struct {
	users              UserService
	photos             PhotoStore
	logger             logging.Logger
	exposeErrorDetails bool
}

func NewHandler(us UserService, ps PhotoStore, l logging.Logger, exposeErrorDetails bool) *Handler {
	return &Handler{
		users:              us,
		photos:             ps,
		logger:             l.With("module", "http_handler"),
		exposeErrorDetails: exposeErrorDetails,
	}
}

func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "OK"})
}

func (h *Handler) Placeholder(resource string) gin.HandlerFunc {
	msg := fmt.Sprintf("%s endpoint not implemented yet", resource)
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": msg})
	}
}

func (h *Handler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	if _, err := h.users.Register(c.Request.Context(), req.Username, req.Password, req.Role); err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "User registered successfully"})
}

func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	token, err := h.users.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}

func (h *Handler) GetProfile(c *gin.Context) {
	claims, _ := ClaimsFrom(c)

	u, err := h.users.GetProfile(c.Request.Context(), claims.UserID)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, newProfileResponse(u))
}

// UpdateProfile treats every JSON key present in the body as a changed field.
// A null clears a nullable field. Preferences are merged key by key.
func (h *Handler) UpdateProfile(c *gin.Context) {
	claims, _ := ClaimsFrom(c)

	var raw map[string]json.RawMessage
	if err := c.ShouldBindJSON(&raw); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	patch, changed, err := decodePatch(raw)
	if err != nil {
		h.writeError(c, err)
		return
	}

	u, err := h.users.UpdateProfile(c.Request.Context(), claims.UserID, patch, changed)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, newProfileResponse(u))
}

func (h *Handler) ChangePassword(c *gin.Context) {
	claims, _ := ClaimsFrom(c)

	var req changePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	if err := h.users.ChangePassword(c.Request.Context(), claims.UserID, req.CurrentPassword, req.NewPassword); err != nil {
		h.writeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// UploadPhoto hands out a presigned PUT URL. The key stays provisional
// until the client confirms the upload with ConfirmPhoto.
func (h *Handler) UploadPhoto(c *gin.Context) {
	claims, _ := ClaimsFrom(c)

	key, url, err := h.photos.PresignUpload(c.Request.Context(), claims.UserID)
	if err != nil {
		h.writeError(c, common.NewInfrastructureError("presign upload", err))
		return
	}

	c.JSON(http.StatusOK, gin.H{"key": key, "url": url})
}

// ConfirmPhoto records an uploaded key as the user's photo.
func (h *Handler) ConfirmPhoto(c *gin.Context) {
	claims, _ := ClaimsFrom(c)

	var req confirmPhotoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	u, err := h.users.SetPhoto(c.Request.Context(), claims.UserID, req.Key, h.photos)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, newProfileResponse(u))
}

func (h *Handler) DownloadPhoto(c *gin.Context) {
	claims, _ := ClaimsFrom(c)
	ctx := c.Request.Context()

	u, err := h.users.GetProfile(ctx, claims.UserID)
	if err != nil {
		h.writeError(c, err)
		return
	}
	if u.PhotoKey == "" {
		c.JSON(http.StatusNotFound, gin.H{"message": "No profile photo"})
		return
	}

	url, err := h.photos.PresignDownload(ctx, u.PhotoKey)
	if err != nil {
		h.writeError(c, common.NewInfrastructureError("presign download", err))
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": url})
}

func (h *Handler) writeError(c *gin.Context, err error) {
	var ve *common.ValidationError

	switch {
	case errors.As(err, &ve):
		body := gin.H{"message": ve.Message}
		if ve.Field != "" {
			body["field"] = ve.Field
		}
		c.JSON(http.StatusBadRequest, body)
	case errors.Is(err, common.ErrorAlreadyExists):
		c.JSON(http.StatusBadRequest, gin.H{"message": "User already exists"})
	case errors.Is(err, common.ErrorNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
	case errors.Is(err, common.ErrInvalidCredentials):
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid credentials"})
	default:
		h.logger.Error(c.Request.Context(), "request failed", "path", c.FullPath(), "error", err)
		body := gin.H{"message": "Server error"}
		if h.exposeErrorDetails {
			body["error"] = err.Error()
		}
		c.JSON(http.StatusInternalServerError, body)
	}
}

func decodePatch(raw map[string]json.RawMessage) (models.ProfilePatch, models.FieldSet, error) {
	var p models.ProfilePatch
	changed := make(models.FieldSet, len(raw))

	for key, value := range raw {
		field := models.Field(key)

		var err error
		switch field {
		case models.FieldDisplayName:
			err = json.Unmarshal(value, &p.DisplayName)
		case models.FieldPhone:
			err = json.Unmarshal(value, &p.Phone)
		case models.FieldBirthDate:
			p.BirthDate, err = decodeBirthDate(value)
		case models.FieldGender:
			err = json.Unmarshal(value, &p.Gender)
		case models.FieldHeight:
			err = json.Unmarshal(value, &p.HeightCM)
		case models.FieldWeight:
			err = json.Unmarshal(value, &p.WeightKG)
		case models.FieldGoal:
			err = json.Unmarshal(value, &p.Goal)
		case models.FieldActivityLevel:
			err = json.Unmarshal(value, &p.ActivityLevel)
		case models.FieldPreferences:
			var prefs preferencesPatchDTO
			err = json.Unmarshal(value, &prefs)
			p.Preferences = prefs.model()
		default:
			return p, nil, common.NewValidationError(key, fmt.Sprintf("%s cannot be updated here", key))
		}
		if err != nil {
			return p, nil, common.NewValidationError(key, fmt.Sprintf("%s has an invalid value", key))
		}

		changed[field] = struct{}{}
	}

	return p, changed, nil
}

func decodeBirthDate(value json.RawMessage) (*time.Time, error) {
	var s *string
	if err := json.Unmarshal(value, &s); err != nil {
		return nil, err
	}
	if s == nil || *s == "" {
		return nil, nil
	}
	t, err := time.Parse(birthDateLayout, *s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
