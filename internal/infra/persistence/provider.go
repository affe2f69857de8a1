// Package persistence selects the storage driver configured in storage.driver and
// exposes its repositories to the fx graph.
package persistence

import (
	"log/slog"

	"todoapi/config"
	"todoapi/internal/domain/repository"
	"todoapi/internal/errors"
	"todoapi/internal/infra/persistence/memory"
	"todoapi/internal/infra/persistence/postgres"

	"go.uber.org/fx"
)

// Params defines the dependencies for the persistence provider
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// Repositories is the set of storage-backed components shared by all usecases.
type Repositories struct {
	fx.Out

	TxManager    repository.TransactionManager
	IdentityRepo repository.IdentityRepository
	TodoRepo     repository.TodoRepository
}

// New builds the repositories for the configured driver.
func New(params Params) (Repositories, error) {
	switch params.Config.Storage.Driver {
	case "", config.StorageDriverPostgres:
		db, err := postgres.New(postgres.Params{
			Lifecycle: params.Lifecycle,
			Config:    params.Config,
			Logger:    params.Logger,
		})
		if err != nil {
			return Repositories{}, err
		}

		return Repositories{
			TxManager:    postgres.NewTransactionManager(db),
			IdentityRepo: postgres.NewIdentityRepository(db),
			TodoRepo:     postgres.NewTodoRepository(db),
		}, nil

	case config.StorageDriverMemory:
		params.Logger.Warn("Using in-memory storage, data is lost on restart")
		store := memory.NewStore()

		return Repositories{
			TxManager:    memory.NewTransactionManager(store),
			IdentityRepo: memory.NewIdentityRepository(store),
			TodoRepo:     memory.NewTodoRepository(store),
		}, nil

	default:
		return Repositories{}, errors.Errorf("unknown storage driver: %s", params.Config.Storage.Driver)
	}
}
