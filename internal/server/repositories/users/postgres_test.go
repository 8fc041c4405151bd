package users

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/fitkeeper/internal/common"
	"github.com/dmitrijs2005/fitkeeper/internal/server/models"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var selectColumns = []string{"id", "username", "provider_id", "password_hash", "role",
	"display_name", "phone", "birth_date", "gender", "height_cm", "weight_kg", "goal", "activity_level", "photo_key",
	"notify_activity", "notify_medication", "notify_forum", "notify_advice", "locale", "theme", "unit_system",
	"created_at", "last_active_at"}

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

func anyArgs(n int) []driver.Value {
	args := make([]driver.Value, n)
	for i := range args {
		args[i] = sqlmock.AnyArg()
	}
	return args
}

func TestCreate_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	created := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	args := append([]driver.Value{"alice", sqlmock.AnyArg(), "$argon2id$hash", common.RoleUser}, anyArgs(16)...)

	mock.ExpectQuery(`(?s)^INSERT\s+INTO\s+users\s*\(username,\s*provider_id,\s*password_hash,\s*role,.*RETURNING\s+id,\s*created_at,\s*last_active_at\s*$`).
		WithArgs(args...).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "last_active_at"}).AddRow("42", created, created))

	u := &models.User{UserName: "alice", PasswordHash: "$argon2id$hash", Role: common.RoleUser, Preferences: models.DefaultPreferences()}
	got, err := repo.Create(context.Background(), u)
	require.NoError(t, err)
	assert.Equal(t, "42", got.ID)
	assert.Equal(t, created, got.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_UniqueViolation(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`INSERT\s+INTO\s+users`).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "users_username_key"})

	_, err := repo.Create(context.Background(), &models.User{UserName: "alice", PasswordHash: "h"})
	assert.ErrorIs(t, err, common.ErrorAlreadyExists)
}

func TestCreate_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`INSERT\s+INTO\s+users`).
		WillReturnError(errors.New("db down"))

	_, err := repo.Create(context.Background(), &models.User{UserName: "alice", PasswordHash: "h"})
	if err == nil || !regexp.MustCompile(`db error: .*db down`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}

func TestGetUserByLogin_Found(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	now := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	birth := time.Date(1990, 7, 14, 0, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows(selectColumns).
		AddRow("u-1", "alice", nil, "$argon2id$hash", "admin",
			"Alice", "5551234567", birth, "female", 170.0, 65.5, "build_muscle", nil, "photos/u-1/a.jpg",
			true, false, true, true, "en", "dark", "metric",
			now, now)

	mock.ExpectQuery(`(?s)^SELECT\s+id,\s*username,.*FROM\s+users\s+WHERE\s+username\s*=\s*\$1\s*$`).
		WithArgs("alice").
		WillReturnRows(rows)

	got, err := repo.GetUserByLogin(context.Background(), "alice")
	require.NoError(t, err)

	assert.Equal(t, "u-1", got.ID)
	assert.Equal(t, "admin", got.Role)
	assert.Nil(t, got.ProviderID)
	require.NotNil(t, got.BirthDate)
	assert.True(t, birth.Equal(*got.BirthDate))
	require.NotNil(t, got.Gender)
	assert.Equal(t, models.GenderFemale, *got.Gender)
	require.NotNil(t, got.HeightCM)
	assert.Equal(t, 170.0, *got.HeightCM)
	require.NotNil(t, got.Goal)
	assert.Equal(t, models.GoalBuildMuscle, *got.Goal)
	assert.Nil(t, got.ActivityLevel)
	assert.False(t, got.Preferences.NotifyMedication)
	assert.Equal(t, "dark", got.Preferences.Theme)
}

func TestGetUserByLogin_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`FROM\s+users\s+WHERE\s+username`).
		WithArgs("ghost").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetUserByLogin(context.Background(), "ghost")
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want common.ErrorNotFound, got %v", err)
	}
}

func TestGetUserByID_NotFoundAndError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`FROM\s+users\s+WHERE\s+id\s*=\s*\$1`).
		WithArgs("nope").
		WillReturnError(sql.ErrNoRows)
	mock.ExpectQuery(`FROM\s+users\s+WHERE\s+id\s*=\s*\$1`).
		WithArgs("u-1").
		WillReturnError(errors.New("db err"))

	_, err := repo.GetUserByID(context.Background(), "nope")
	assert.ErrorIs(t, err, common.ErrorNotFound)

	_, err = repo.GetUserByID(context.Background(), "u-1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db error: db err")
}

func TestGetUserByIDForUpdate_LocksRow(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	now := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows(selectColumns).
		AddRow("u-1", "alice", nil, "$argon2id$hash", "user",
			"", "", nil, nil, nil, nil, nil, nil, "",
			true, true, true, true, "en", "system", "metric",
			now, now)

	mock.ExpectQuery(`(?s)^SELECT\s+id,\s*username,.*FROM\s+users\s+WHERE\s+id\s*=\s*\$1\s+FOR\s+UPDATE\s*$`).
		WithArgs("u-1").
		WillReturnRows(rows)
	mock.ExpectQuery(`FOR\s+UPDATE`).
		WithArgs("ghost").
		WillReturnError(sql.ErrNoRows)

	got, err := repo.GetUserByIDForUpdate(context.Background(), "u-1")
	require.NoError(t, err)
	assert.Equal(t, "$argon2id$hash", got.PasswordHash)

	_, err = repo.GetUserByIDForUpdate(context.Background(), "ghost")
	assert.ErrorIs(t, err, common.ErrorNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdate_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	touched := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	args := append([]driver.Value{"u-1", sqlmock.AnyArg(), "new-hash"}, anyArgs(16)...)

	mock.ExpectQuery(`(?s)^UPDATE\s+users\s+SET.*last_active_at\s*=\s*GREATEST\(last_active_at,\s*now\(\)\).*WHERE\s+id\s*=\s*\$1\s+RETURNING\s+last_active_at\s*$`).
		WithArgs(args...).
		WillReturnRows(sqlmock.NewRows([]string{"last_active_at"}).AddRow(touched))

	got, err := repo.Update(context.Background(), &models.User{ID: "u-1", PasswordHash: "new-hash"})
	require.NoError(t, err)
	assert.Equal(t, touched, got.LastActiveAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdate_Errors(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`UPDATE\s+users`).WillReturnError(sql.ErrNoRows)
	mock.ExpectQuery(`UPDATE\s+users`).WillReturnError(&pgconn.PgError{Code: "23505"})
	mock.ExpectQuery(`UPDATE\s+users`).WillReturnError(&pgconn.PgError{Code: "23514"})

	_, err := repo.Update(context.Background(), &models.User{ID: "ghost"})
	assert.ErrorIs(t, err, common.ErrorNotFound)

	_, err = repo.Update(context.Background(), &models.User{ID: "u-1"})
	assert.ErrorIs(t, err, common.ErrorAlreadyExists)

	_, err = repo.Update(context.Background(), &models.User{ID: "u-1"})
	require.Error(t, err)
	assert.NotErrorIs(t, err, common.ErrorAlreadyExists)
	var pgErr *pgconn.PgError
	assert.ErrorAs(t, err, &pgErr)
}
