// Package mysqlstore is a store.Store backed by MySQL.
//
// Identifiers live in a BINARY(16) primary key holding the big-endian bytes,
// so ORDER BY id agrees with ruuid.UUID.Compare.
package mysqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/go-sql-driver/mysql"
	"go.uber.org/zap"

	"github.com/Lzww0608/ruuid"
	"github.com/Lzww0608/ruuid/internal/store"
)

const (
	schema = `CREATE TABLE IF NOT EXISTS uuid_records (
	id BINARY(16) NOT NULL PRIMARY KEY,
	label VARCHAR(255) NOT NULL
)`

	upsertQuery = `INSERT INTO uuid_records (id, label) VALUES (?, ?) ON DUPLICATE KEY UPDATE label = VALUES(label)`
	selectQuery = `SELECT label FROM uuid_records WHERE id = ?`
	deleteQuery = `DELETE FROM uuid_records WHERE id = ?`
	listQuery   = `SELECT id, label FROM uuid_records ORDER BY id`
)

// Store encapsulates all database operations on the uuid_records table.
type Store struct {
	db     *sql.DB
	logger *zap.Logger
}

var _ store.Store = (*Store)(nil)

// Config builds the driver configuration for dsn. It validates the DSN and
// forces the settings the store relies on.
func Config(dsn string) (*mysql.Config, error) {
	cfg, err := mysql.ParseDSN(dsn)
	if err != nil {
		return nil, fmt.Errorf("mysqlstore: parse dsn: %w", err)
	}
	if cfg.DBName == "" {
		return nil, errors.New("mysqlstore: dsn must name a database")
	}
	cfg.ParseTime = true
	if cfg.Timeout == 0 {
		cfg.Timeout = 5 * time.Second
	}
	return cfg, nil
}

// Open connects to MySQL using dsn.
func Open(dsn string, logger *zap.Logger) (*Store, error) {
	cfg, err := Config(dsn)
	if err != nil {
		return nil, err
	}

	connector, err := mysql.NewConnector(cfg)
	if err != nil {
		return nil, fmt.Errorf("mysqlstore: connector: %w", err)
	}
	db := sql.OpenDB(connector)

	// DB performance and safety tuning
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(time.Hour)

	if logger == nil {
		logger = zap.NewNop()
	}
	logger.Debug("opened mysql store", zap.String("addr", cfg.Addr), zap.String("db", cfg.DBName))

	return New(db, logger), nil
}

// New wraps an existing connection pool.
func New(db *sql.DB, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{db: db, logger: logger}
}

// EnsureSchema creates the uuid_records table if it does not exist.
func (s *Store) EnsureSchema(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("mysqlstore: create schema: %w", err)
	}
	return nil
}

// Put inserts or replaces the record for rec.ID.
func (s *Store) Put(ctx context.Context, rec store.Record) error {
	if err := rec.Validate(); err != nil {
		return err
	}
	if _, err := s.db.ExecContext(ctx, upsertQuery, rec.ID.Bytes(), rec.Label); err != nil {
		return fmt.Errorf("mysqlstore: put %s: %w", rec.ID, err)
	}
	s.logger.Debug("put record", zap.Stringer("id", rec.ID))
	return nil
}

// Get returns the record for id.
func (s *Store) Get(ctx context.Context, id ruuid.UUID) (store.Record, error) {
	var label string
	err := s.db.QueryRowContext(ctx, selectQuery, id.Bytes()).Scan(&label)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return store.Record{}, store.ErrNotFound
		}
		return store.Record{}, fmt.Errorf("mysqlstore: get %s: %w", id, err)
	}
	return store.Record{ID: id, Label: label}, nil
}

// Delete removes the record for id.
func (s *Store) Delete(ctx context.Context, id ruuid.UUID) error {
	res, err := s.db.ExecContext(ctx, deleteQuery, id.Bytes())
	if err != nil {
		return fmt.Errorf("mysqlstore: delete %s: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("mysqlstore: delete %s: %w", id, err)
	}
	if n == 0 {
		return store.ErrNotFound
	}
	s.logger.Debug("deleted record", zap.Stringer("id", id))
	return nil
}

// List returns all records ordered by id.
func (s *Store) List(ctx context.Context) ([]store.Record, error) {
	rows, err := s.db.QueryContext(ctx, listQuery)
	if err != nil {
		return nil, fmt.Errorf("mysqlstore: list: %w", err)
	}
	defer rows.Close()

	var recs []store.Record
	for rows.Next() {
		var rec store.Record
		// The 16-byte column scans through ruuid.UUID's sql.Scanner.
		if err := rows.Scan(&rec.ID, &rec.Label); err != nil {
			return nil, fmt.Errorf("mysqlstore: list: %w", err)
		}
		recs = append(recs, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("mysqlstore: list: %w", err)
	}
	return recs, nil
}

// Close closes the connection pool.
func (s *Store) Close() error {
	return s.db.Close()
}
