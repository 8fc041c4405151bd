package securestore

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"

	"github.com/dmitrijs2005/fitkeeper/internal/client/migrations"
	"github.com/dmitrijs2005/fitkeeper/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/fitkeeper/internal/common"
	"github.com/dmitrijs2005/fitkeeper/internal/cryptox"
	"github.com/dmitrijs2005/fitkeeper/internal/filex"
	"github.com/dmitrijs2005/fitkeeper/internal/logging"
	"github.com/pressly/goose/v3"

	_ "modernc.org/sqlite"
)

const (
	dbFileName  = "fitkeeper.db"
	keyFileName = "device.key"
)

func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}

	return goose.UpContext(ctx, db, ".")
}

// Open prepares dataDir, loads or creates the device key and migrates the
// local database. The returned Store owns the database handle.
func Open(ctx context.Context, dataDir string, logger logging.Logger) (*Store, error) {
	dir, err := filex.EnsureDir(dataDir)
	if err != nil {
		return nil, err
	}

	key, err := filex.ReadOrCreateKey(filepath.Join(dir, keyFileName), func() []byte {
		return common.GenerateRandByteArray(cryptox.KeySize)
	})
	if err != nil {
		return nil, err
	}
	if len(key) != cryptox.KeySize {
		return nil, fmt.Errorf("device key: expected %d bytes, got %d", cryptox.KeySize, len(key))
	}

	db, err := sql.Open("sqlite", filepath.Join(dir, dbFileName))
	if err != nil {
		return nil, fmt.Errorf("open local db: %w", err)
	}

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate local db: %w", err)
	}

	s := New(metadata.NewSQLiteRepository(db), key, logger)
	s.closer = db.Close
	return s, nil
}
