// Package repomanager hands out user repositories and owns schema migration
// and transaction scoping for the configured backend.
package repomanager

import (
	"context"

	"github.com/dmitrijs2005/fitkeeper/internal/server/repositories/users"
)

type RepositoryManager interface {
	RunMigrations(ctx context.Context) error
	Users() users.Repository
	// WithTx runs fn with a repository scoped to a single transaction.
	WithTx(ctx context.Context, fn func(ctx context.Context, repo users.Repository) error) error
}
