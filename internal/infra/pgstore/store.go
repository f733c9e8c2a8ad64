// Package pgstore is the PostgreSQL implementation of the store
// collaborator. Each collection is a single-table JSONB document store, and
// Watch rides LISTEN/NOTIFY: a trigger on every table raises the table's
// channel, and subscribers re-read the full set on each notification.
package pgstore

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"spa-promotions/internal/pkg/errs"
)

var (
	ErrNotFound  = errs.New("record not found")
	ErrDuplicate = errs.New("record already exists")
)

const (
	TableUsers      = "users"
	TableServices   = "services"
	TablePromotions = "promotions"
	TableRegistry   = "category_registry"
)

var tables = []string{TableUsers, TableServices, TablePromotions, TableRegistry}

type Store struct {
	pool *pgxpool.Pool
}

// New connects the pool and provisions every collection table plus its
// change-notification trigger. Provisioning is idempotent.
func New(ctx context.Context, dsn string) (*Store, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, errs.Wrap(err, "parse store dsn")
	}
	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, errs.Wrap(err, "connect store")
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, errs.Wrap(err, "ping store")
	}

	s := &Store{pool: pool}
	if err := s.provision(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) Close() {
	s.pool.Close()
}

func (s *Store) Pool() *pgxpool.Pool {
	return s.pool
}

func (s *Store) provision(ctx context.Context) error {
	const notifyFn = `
CREATE OR REPLACE FUNCTION notify_doc_change() RETURNS trigger AS $$
BEGIN
	PERFORM pg_notify(TG_TABLE_NAME || '_changed', TG_OP);
	RETURN NULL;
END;
$$ LANGUAGE plpgsql`

	if _, err := s.pool.Exec(ctx, notifyFn); err != nil {
		return errs.Wrap(err, "create notify function")
	}

	for _, table := range tables {
		ddl := fmt.Sprintf(`
CREATE TABLE IF NOT EXISTS %[1]s (
	id         text PRIMARY KEY,
	doc        jsonb NOT NULL,
	updated_at timestamptz NOT NULL DEFAULT now()
);
DROP TRIGGER IF EXISTS %[1]s_notify ON %[1]s;
CREATE TRIGGER %[1]s_notify
	AFTER INSERT OR UPDATE OR DELETE ON %[1]s
	FOR EACH STATEMENT EXECUTE FUNCTION notify_doc_change()`, table)
		if _, err := s.pool.Exec(ctx, ddl); err != nil {
			return errs.Wrap(err, "provision "+table)
		}
	}
	return nil
}
