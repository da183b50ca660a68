package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/HealingGarden_Go/internal/config"
	"github.com/osse101/HealingGarden_Go/internal/database"
	"github.com/osse101/HealingGarden_Go/internal/database/postgres"
	"github.com/osse101/HealingGarden_Go/internal/database/sqlite"
	"github.com/osse101/HealingGarden_Go/internal/handler"
	"github.com/osse101/HealingGarden_Go/internal/persistence"
)

// Storage is the opened save backend
type Storage struct {
	Store persistence.Store
	// Pinger backs the readiness probe. Nil for backends that are always ready.
	Pinger handler.Pinger

	close         func() error
	schemaVersion func(ctx context.Context) (int64, error)
}

// SchemaVersion reports the applied database migration version
func (s *Storage) SchemaVersion(ctx context.Context) (int64, error) {
	if s.schemaVersion == nil {
		return 0, fmt.Errorf("%s: %s", ErrMsgNoSchema, s.Store.Name())
	}
	return s.schemaVersion(ctx)
}

// Close releases the backend's connections
func (s *Storage) Close() error {
	if s.close == nil {
		return nil
	}
	return s.close()
}

// OpenStorage opens the save backend named by the configuration. Database
// backends are migrated before use.
func OpenStorage(ctx context.Context, cfg *config.Config) (*Storage, error) {
	var (
		st  *Storage
		err error
	)

	switch cfg.SaveBackend {
	case persistence.BackendMemory:
		st = &Storage{Store: persistence.NewMemoryStore()}
	case persistence.BackendGdata:
		st, err = openGdata(cfg)
	case persistence.BackendSQLite:
		st, err = openSQLite(ctx, cfg)
	case persistence.BackendPostgres:
		st, err = openPostgres(ctx, cfg)
	default:
		return nil, fmt.Errorf("%s: %q", ErrMsgUnknownBackend, cfg.SaveBackend)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedOpenStorage, err)
	}

	slog.Info(LogMsgStorageOpened, "backend", st.Store.Name())
	return st, nil
}

func openGdata(cfg *config.Config) (*Storage, error) {
	store, err := persistence.OpenGdataStore(cfg.GdataAppName)
	if err != nil {
		return nil, err
	}
	return &Storage{Store: store}, nil
}

func openSQLite(ctx context.Context, cfg *config.Config) (*Storage, error) {
	store, err := sqlite.Open(ctx, cfg.SQLitePath)
	if err != nil {
		return nil, err
	}
	return &Storage{
		Store:  store,
		Pinger: store,
		close:  store.Close,
		schemaVersion: func(ctx context.Context) (int64, error) {
			return database.SchemaVersion(ctx, database.DialectSQLite, store.DB())
		},
	}, nil
}

func openPostgres(ctx context.Context, cfg *config.Config) (*Storage, error) {
	pool, err := database.NewPool(ctx, cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxIdleTime, cfg.DBMaxLifetime)
	if err != nil {
		return nil, err
	}
	if err := migratePostgres(ctx, pool); err != nil {
		pool.Close()
		return nil, err
	}
	return &Storage{
		Store:  postgres.NewSaveStore(pool),
		Pinger: pool,
		close: func() error {
			pool.Close()
			return nil
		},
		schemaVersion: func(ctx context.Context) (int64, error) {
			db := database.SQLDB(pool)
			defer db.Close()
			return database.SchemaVersion(ctx, database.DialectPostgres, db)
		},
	}, nil
}

func migratePostgres(ctx context.Context, pool *pgxpool.Pool) error {
	db := database.SQLDB(pool)
	defer db.Close()
	_, err := database.Migrate(ctx, database.DialectPostgres, db)
	return err
}
