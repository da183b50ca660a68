package database

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"

	"github.com/pressly/goose/v3"

	"github.com/osse101/HealingGarden_Go/internal/logger"
)

//go:embed migrations/postgres/*.sql migrations/sqlite/*.sql
var migrationFS embed.FS

// Supported migration dialects
const (
	DialectPostgres = goose.DialectPostgres
	DialectSQLite   = goose.DialectSQLite3
)

func migrationDir(dialect goose.Dialect) (fs.FS, error) {
	switch dialect {
	case DialectPostgres:
		return fs.Sub(migrationFS, "migrations/postgres")
	case DialectSQLite:
		return fs.Sub(migrationFS, "migrations/sqlite")
	default:
		return nil, fmt.Errorf("unsupported dialect %q", dialect)
	}
}

func newProvider(dialect goose.Dialect, db *sql.DB) (*goose.Provider, error) {
	dir, err := migrationDir(dialect)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgMigrationSetupFailed, err)
	}
	p, err := goose.NewProvider(dialect, db, dir)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgMigrationSetupFailed, err)
	}
	return p, nil
}

// Migrate brings the save tables up to date and returns the resulting schema version
func Migrate(ctx context.Context, dialect goose.Dialect, db *sql.DB) (int64, error) {
	log := logger.FromContext(ctx)

	p, err := newProvider(dialect, db)
	if err != nil {
		return 0, err
	}

	results, err := p.Up(ctx)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgMigrationFailed, err)
	}
	for _, r := range results {
		log.Info(LogMsgMigrationApplied, "dialect", string(dialect), "version", r.Source.Version, "duration", r.Duration)
	}

	version, err := p.GetDBVersion(ctx)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgMigrationFailed, err)
	}
	log.Debug(LogMsgSchemaVersion, "dialect", string(dialect), "version", version)
	return version, nil
}

// SchemaVersion reports the applied schema version without migrating
func SchemaVersion(ctx context.Context, dialect goose.Dialect, db *sql.DB) (int64, error) {
	p, err := newProvider(dialect, db)
	if err != nil {
		return 0, err
	}
	return p.GetDBVersion(ctx)
}
