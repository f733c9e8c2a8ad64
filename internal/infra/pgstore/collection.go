package pgstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"spa-promotions/internal/pkg/errs"
	"spa-promotions/internal/usecase/shared"
)

type Collection[T shared.Record] struct {
	store *Store
	table string
}

func NewCollection[T shared.Record](store *Store, table string) *Collection[T] {
	return &Collection[T]{store: store, table: table}
}

func (c *Collection[T]) List(ctx context.Context) ([]T, error) {
	rows, err := c.store.pool.Query(ctx, fmt.Sprintf("SELECT doc FROM %s ORDER BY id", c.table))
	if err != nil {
		return nil, errs.Wrap(err, "list "+c.table)
	}
	defer rows.Close()

	var out []T
	for rows.Next() {
		var raw []byte
		if err := rows.Scan(&raw); err != nil {
			return nil, errs.Wrap(err, "scan "+c.table)
		}
		var rec T
		if err := json.Unmarshal(raw, &rec); err != nil {
			return nil, errs.Wrap(err, "decode "+c.table)
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, errs.Wrap(err, "list "+c.table)
	}
	return out, nil
}

func (c *Collection[T]) Get(ctx context.Context, id string) (T, error) {
	var zero T
	var raw []byte
	err := c.store.pool.QueryRow(ctx, fmt.Sprintf("SELECT doc FROM %s WHERE id = $1", c.table), id).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return zero, errs.Wrap(ErrNotFound, id)
	}
	if err != nil {
		return zero, errs.Wrap(err, "get "+c.table)
	}
	var rec T
	if err := json.Unmarshal(raw, &rec); err != nil {
		return zero, errs.Wrap(err, "decode "+c.table)
	}
	return rec, nil
}

func (c *Collection[T]) Create(ctx context.Context, rec T) error {
	doc, err := json.Marshal(rec)
	if err != nil {
		return errs.Wrap(err, "encode "+c.table)
	}
	_, err = c.store.pool.Exec(ctx,
		fmt.Sprintf("INSERT INTO %s (id, doc) VALUES ($1, $2)", c.table),
		rec.RecordID(), doc)
	if isUniqueViolation(err) {
		return errs.Wrap(ErrDuplicate, rec.RecordID())
	}
	if err != nil {
		return errs.Wrap(err, "create "+c.table)
	}
	return nil
}

// Update replaces the whole document; the last writer wins.
func (c *Collection[T]) Update(ctx context.Context, id string, rec T) error {
	doc, err := json.Marshal(rec)
	if err != nil {
		return errs.Wrap(err, "encode "+c.table)
	}
	tag, err := c.store.pool.Exec(ctx,
		fmt.Sprintf("UPDATE %s SET doc = $2, updated_at = now() WHERE id = $1", c.table),
		id, doc)
	if err != nil {
		return errs.Wrap(err, "update "+c.table)
	}
	if tag.RowsAffected() == 0 {
		return errs.Wrap(ErrNotFound, id)
	}
	return nil
}

func (c *Collection[T]) Delete(ctx context.Context, id string) error {
	tag, err := c.store.pool.Exec(ctx, fmt.Sprintf("DELETE FROM %s WHERE id = $1", c.table), id)
	if err != nil {
		return errs.Wrap(err, "delete "+c.table)
	}
	if tag.RowsAffected() == 0 {
		return errs.Wrap(ErrNotFound, id)
	}
	return nil
}

// Watch holds a dedicated connection on LISTEN and re-reads the collection
// after every notification. The full set is also delivered once up front so
// subscribers start from current state.
func (c *Collection[T]) Watch(ctx context.Context) (<-chan []T, func(), error) {
	conn, err := c.store.pool.Acquire(ctx)
	if err != nil {
		return nil, nil, errs.Wrap(err, "acquire watch conn")
	}
	if _, err := conn.Exec(ctx, "LISTEN "+c.table+"_changed"); err != nil {
		conn.Release()
		return nil, nil, errs.Wrap(err, "listen "+c.table)
	}

	watchCtx, cancelCtx := context.WithCancel(ctx)
	ch := make(chan []T, 8)

	go func() {
		defer close(ch)
		defer conn.Release()

		if set, err := c.List(watchCtx); err == nil {
			select {
			case ch <- set:
			case <-watchCtx.Done():
				return
			}
		}

		for {
			if _, err := conn.Conn().WaitForNotification(watchCtx); err != nil {
				return
			}
			set, err := c.List(watchCtx)
			if err != nil {
				continue
			}
			select {
			case ch <- set:
			case <-watchCtx.Done():
				return
			}
		}
	}()

	return ch, cancelCtx, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
