package journal

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/goran-ethernal/ChainRelay/internal/db"
	"github.com/goran-ethernal/ChainRelay/internal/logger"
	"github.com/goran-ethernal/ChainRelay/internal/migrations"
	"github.com/goran-ethernal/ChainRelay/internal/relay"
	"github.com/goran-ethernal/ChainRelay/pkg/config"
	pkgrelay "github.com/goran-ethernal/ChainRelay/pkg/relay"
	"github.com/russross/meddler"
	"github.com/tidwall/gjson"
)

const (
	table = "failed_operations"

	DefaultListLimit = 100
	MaxListLimit     = 1000
)

// subjectPaths are the variable paths naming the contract an operation is about,
// in lookup order.
var subjectPaths = []string{
	"input.coinMachineAddress",
	"input.whitelistId",
	"input.id",
}

// Compile-time check to ensure Journal implements pkgrelay.FailureRecorder interface.
var _ pkgrelay.FailureRecorder = (*Journal)(nil)

// Entry is one failed store operation.
type Entry struct {
	ID         int64           `meddler:"id,pk" json:"id"`
	Operation  string          `meddler:"operation" json:"operation"`
	Variables  map[string]any  `meddler:"variables,json" json:"variables"`
	Subject    *common.Address `meddler:"subject,address" json:"subject,omitempty"`
	Error      string          `meddler:"error" json:"error"`
	StatusCode int             `meddler:"status_code" json:"status_code,omitempty"`
	FailedAt   time.Time       `meddler:"failed_at,utctime" json:"failed_at"`
}

// Journal appends failed store operations to a SQLite table so operators can
// inspect them. Nothing reads the journal back into the relay.
type Journal struct {
	db  *sql.DB
	log *logger.Logger

	now func() time.Time
}

// Open opens the journal database and applies its migrations.
func Open(cfg config.DatabaseConfig, log *logger.Logger) (*Journal, error) {
	sqlDB, err := db.NewSQLiteDBFromConfig(cfg)
	if err != nil {
		return nil, err
	}

	if err := migrations.RunMigrations(log, sqlDB); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("failed to migrate journal database: %w", err)
	}

	log.Infow("journal opened", "path", cfg.Path)

	return New(sqlDB, log), nil
}

// New wraps an already migrated database.
func New(sqlDB *sql.DB, log *logger.Logger) *Journal {
	return &Journal{
		db:  sqlDB,
		log: log,
		now: time.Now,
	}
}

// RecordFailure stores op and the reason it failed. Storage errors are logged
// and otherwise ignored.
func (j *Journal) RecordFailure(ctx context.Context, op pkgrelay.Operation, cause error) {
	entry := &Entry{
		Operation: op.Name,
		Variables: op.Variables,
		Subject:   subjectOf(op),
		FailedAt:  j.now().UTC(),
	}
	if entry.Variables == nil {
		entry.Variables = map[string]any{}
	}
	if cause != nil {
		entry.Error = cause.Error()
	}

	var relayErr *relay.RelayError
	if errors.As(cause, &relayErr) {
		entry.StatusCode = relayErr.StatusCode
	}

	if err := ctx.Err(); err != nil {
		j.log.Warnw("skipping journal write", "operation", op.Name, "error", err)
		recordsTotal.WithLabelValues("skipped").Inc()
		return
	}

	if err := meddler.Insert(j.db, table, entry); err != nil {
		j.log.Errorw("failed to journal operation", "operation", op.Name, "error", err)
		recordsTotal.WithLabelValues("error").Inc()
		return
	}

	recordsTotal.WithLabelValues("success").Inc()
	j.log.Debugw("operation journaled", "id", entry.ID, "operation", op.Name)
}

// List returns the most recent failures first. A non-positive limit selects
// DefaultListLimit and larger limits are capped at MaxListLimit.
func (j *Journal) List(ctx context.Context, limit int) ([]*Entry, error) {
	switch {
	case limit <= 0:
		limit = DefaultListLimit
	case limit > MaxListLimit:
		limit = MaxListLimit
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var entries []*Entry
	query := fmt.Sprintf("SELECT * FROM %s ORDER BY id DESC LIMIT ?", table)
	if err := meddler.QueryAll(j.db, &entries, query, limit); err != nil {
		return nil, fmt.Errorf("failed to list journal entries: %w", err)
	}

	return entries, nil
}

// Close closes the journal database.
func (j *Journal) Close() error {
	return j.db.Close()
}

func subjectOf(op pkgrelay.Operation) *common.Address {
	if len(op.Variables) == 0 {
		return nil
	}

	raw, err := json.Marshal(op.Variables)
	if err != nil {
		return nil
	}

	for _, path := range subjectPaths {
		value := gjson.GetBytes(raw, path).String()
		if common.IsHexAddress(value) {
			address := common.HexToAddress(value)
			return &address
		}
	}

	return nil
}
