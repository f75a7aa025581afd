package migrations

import (
	"database/sql"
	_ "embed"

	"github.com/goran-ethernal/ChainRelay/internal/db"
	"github.com/goran-ethernal/ChainRelay/internal/logger"
)

//go:embed 001_relay_journal.sql
var mig001 string

// RunMigrations brings the relay journal schema up to date.
func RunMigrations(log *logger.Logger, sqlDB *sql.DB) error {
	migrations := []db.Migration{
		{
			ID:  "001_relay_journal.sql",
			SQL: mig001,
		},
	}

	return db.RunMigrations(log, sqlDB, migrations)
}
