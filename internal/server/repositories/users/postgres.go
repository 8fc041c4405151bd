package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/fitkeeper/internal/common"
	"github.com/dmitrijs2005/fitkeeper/internal/dbx"
	"github.com/dmitrijs2005/fitkeeper/internal/server/models"
	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolation = "23505"

const userColumns = `id, username, provider_id, password_hash, role,
		 display_name, phone, birth_date, gender, height_cm, weight_kg, goal, activity_level, photo_key,
		 notify_activity, notify_medication, notify_forum, notify_advice, locale, theme, unit_system,
		 created_at, last_active_at`

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	query :=
		`INSERT INTO users (username, provider_id, password_hash, role,
		 display_name, phone, birth_date, gender, height_cm, weight_kg, goal, activity_level, photo_key,
		 notify_activity, notify_medication, notify_forum, notify_advice, locale, theme, unit_system)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)
		 RETURNING id, created_at, last_active_at
		 `

	args := append([]any{user.UserName, user.ProviderID, user.PasswordHash, user.Role}, profileArgs(user)...)

	err := r.db.QueryRowContext(ctx, query, args...).Scan(&user.ID, &user.CreatedAt, &user.LastActiveAt)
	if err != nil {
		return nil, mapError(err)
	}

	return user, nil
}

func (r *PostgresRepository) GetUserByLogin(ctx context.Context, userName string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users
		 WHERE username = $1
		 `
	return scanUser(r.db.QueryRowContext(ctx, query, userName))
}

func (r *PostgresRepository) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users
		 WHERE id = $1
		 `
	return scanUser(r.db.QueryRowContext(ctx, query, id))
}

func (r *PostgresRepository) GetUserByIDForUpdate(ctx context.Context, id string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users
		 WHERE id = $1
		 FOR UPDATE
		 `
	return scanUser(r.db.QueryRowContext(ctx, query, id))
}

// Update overwrites every mutable column. last_active_at only moves forward.
func (r *PostgresRepository) Update(ctx context.Context, user *models.User) (*models.User, error) {
	query :=
		`UPDATE users SET provider_id = $2, password_hash = $3,
		 display_name = $4, phone = $5, birth_date = $6, gender = $7, height_cm = $8, weight_kg = $9,
		 goal = $10, activity_level = $11, photo_key = $12,
		 notify_activity = $13, notify_medication = $14, notify_forum = $15, notify_advice = $16,
		 locale = $17, theme = $18, unit_system = $19,
		 last_active_at = GREATEST(last_active_at, now())
		 WHERE id = $1
		 RETURNING last_active_at
		 `

	args := append([]any{user.ID, user.ProviderID, user.PasswordHash}, profileArgs(user)...)

	err := r.db.QueryRowContext(ctx, query, args...).Scan(&user.LastActiveAt)
	if err != nil {
		return nil, mapError(err)
	}

	return user, nil
}

func profileArgs(u *models.User) []any {
	p := u.Preferences
	return []any{
		u.DisplayName, u.Phone, u.BirthDate,
		nullString(u.Gender), u.HeightCM, u.WeightKG, nullString(u.Goal), nullString(u.ActivityLevel),
		u.PhotoKey,
		p.NotifyActivity, p.NotifyMedication, p.NotifyForum, p.NotifyAdvice,
		p.Locale, p.Theme, p.UnitSystem,
	}
}

func scanUser(row *sql.Row) (*models.User, error) {
	var (
		u          models.User
		providerID sql.NullString
		birthDate  sql.NullTime
		gender     sql.NullString
		height     sql.NullFloat64
		weight     sql.NullFloat64
		goal       sql.NullString
		activity   sql.NullString
	)
	p := &u.Preferences

	err := row.Scan(&u.ID, &u.UserName, &providerID, &u.PasswordHash, &u.Role,
		&u.DisplayName, &u.Phone, &birthDate, &gender, &height, &weight, &goal, &activity, &u.PhotoKey,
		&p.NotifyActivity, &p.NotifyMedication, &p.NotifyForum, &p.NotifyAdvice, &p.Locale, &p.Theme, &p.UnitSystem,
		&u.CreatedAt, &u.LastActiveAt)
	if err != nil {
		return nil, mapError(err)
	}

	if providerID.Valid {
		u.ProviderID = &providerID.String
	}
	if birthDate.Valid {
		t := birthDate.Time.UTC()
		u.BirthDate = &t
	}
	if height.Valid {
		u.HeightCM = &height.Float64
	}
	if weight.Valid {
		u.WeightKG = &weight.Float64
	}
	u.Gender = fromNullString[models.Gender](gender)
	u.Goal = fromNullString[models.Goal](goal)
	u.ActivityLevel = fromNullString[models.ActivityLevel](activity)

	return &u, nil
}

func mapError(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return common.ErrorNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return common.ErrorAlreadyExists
	}
	return fmt.Errorf("db error: %w", err)
}

func nullString[T ~string](v *T) sql.NullString {
	if v == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: string(*v), Valid: true}
}

func fromNullString[T ~string](v sql.NullString) *T {
	if !v.Valid {
		return nil
	}
	t := T(v.String)
	return &t
}

