package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mitchellh/go-homedir"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/sqliteshim"
)

type kvRecord struct {
	bun.BaseModel `bun:"table:kv"`

	Key   string `bun:"key,pk,notnull"`
	Value []byte `bun:"value"`
}

// SQLitePersistence keeps the event list in a single row of a sqlite kv
// table.
type SQLitePersistence struct {
	codec
	db *bun.DB
}

var _ Persistence = (*SQLitePersistence)(nil)

// NewSQLite opens the sqlite database at path. ":memory:" is accepted.
func NewSQLite(ctx context.Context, path string) (*SQLitePersistence, error) {
	dsn := path
	if path != ":memory:" {
		expanded, err := homedir.Expand(path)
		if err != nil {
			return nil, fmt.Errorf("store: expand %s: %w", path, err)
		}
		if err := os.MkdirAll(filepath.Dir(expanded), 0o755); err != nil {
			return nil, fmt.Errorf("store: ensure base path: %w", err)
		}
		dsn = "file:" + expanded + "?mode=rwc"
	}

	sqldb, err := sql.Open(sqliteshim.ShimName, dsn)
	if err != nil {
		return nil, fmt.Errorf("store: open sqlite: %w", err)
	}
	// A single connection keeps ":memory:" databases alive between calls.
	sqldb.SetMaxOpenConns(1)

	db := bun.NewDB(sqldb, sqlitedialect.New())
	if _, err := db.NewCreateTable().Model((*kvRecord)(nil)).IfNotExists().Exec(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("store: create kv table: %w", err)
	}

	p := &SQLitePersistence{db: db}
	p.codec = codec{kv: p}
	return p, nil
}

func (p *SQLitePersistence) read(ctx context.Context, key string) ([]byte, error) {
	rec := new(kvRecord)
	err := p.db.NewSelect().Model(rec).Where("key = ?", key).Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNoData
	}
	if err != nil {
		return nil, err
	}
	return rec.Value, nil
}

func (p *SQLitePersistence) write(ctx context.Context, key string, value []byte) error {
	rec := &kvRecord{Key: key, Value: value}
	_, err := p.db.NewInsert().
		Model(rec).
		On("CONFLICT (key) DO UPDATE").
		Set("value = EXCLUDED.value").
		Exec(ctx)
	return err
}

// Close closes the database.
func (p *SQLitePersistence) Close() error {
	return p.db.Close()
}
