// Package memstore is an in-memory implementation of the store collaborator.
// It backs unit tests and the memory driver mode. Records are deep-copied on
// the way in and out, so callers never alias internal state, and every write
// fans the full record set out to active watchers.
package memstore

import (
	"context"
	"sort"
	"sync"

	"github.com/jinzhu/copier"

	"spa-promotions/internal/pkg/errs"
	"spa-promotions/internal/usecase/shared"
)

var (
	ErrNotFound  = errs.New("record not found")
	ErrDuplicate = errs.New("record already exists")
)

type Collection[T shared.Record] struct {
	mu      sync.RWMutex
	records map[string]T
	subs    map[int]chan []T
	nextSub int
}

func NewCollection[T shared.Record]() *Collection[T] {
	return &Collection[T]{
		records: make(map[string]T),
		subs:    make(map[int]chan []T),
	}
}

func (c *Collection[T]) List(ctx context.Context) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.snapshotLocked()
}

func (c *Collection[T]) Get(ctx context.Context, id string) (T, error) {
	var zero T
	if err := ctx.Err(); err != nil {
		return zero, err
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	rec, ok := c.records[id]
	if !ok {
		return zero, errs.Wrap(ErrNotFound, id)
	}
	return deepCopy(rec)
}

func (c *Collection[T]) Create(ctx context.Context, rec T) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	stored, err := deepCopy(rec)
	if err != nil {
		return err
	}
	c.mu.Lock()
	if _, ok := c.records[rec.RecordID()]; ok {
		c.mu.Unlock()
		return errs.Wrap(ErrDuplicate, rec.RecordID())
	}
	c.records[rec.RecordID()] = stored
	c.notifyLocked()
	c.mu.Unlock()
	return nil
}

// Update is full-record last-writer-wins; there is no version check.
func (c *Collection[T]) Update(ctx context.Context, id string, rec T) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	stored, err := deepCopy(rec)
	if err != nil {
		return err
	}
	c.mu.Lock()
	if _, ok := c.records[id]; !ok {
		c.mu.Unlock()
		return errs.Wrap(ErrNotFound, id)
	}
	c.records[id] = stored
	c.notifyLocked()
	c.mu.Unlock()
	return nil
}

func (c *Collection[T]) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	c.mu.Lock()
	if _, ok := c.records[id]; !ok {
		c.mu.Unlock()
		return errs.Wrap(ErrNotFound, id)
	}
	delete(c.records, id)
	c.notifyLocked()
	c.mu.Unlock()
	return nil
}

// Watch subscribes to the full record set. The current set is delivered
// immediately, then again after every change. Cancel the returned func (or
// the context) to release the subscription.
func (c *Collection[T]) Watch(ctx context.Context) (<-chan []T, func(), error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}

	c.mu.Lock()
	initial, err := c.snapshotLocked()
	if err != nil {
		c.mu.Unlock()
		return nil, nil, err
	}
	id := c.nextSub
	c.nextSub++
	ch := make(chan []T, 8)
	c.subs[id] = ch
	// Enqueue the initial set before releasing the lock so a concurrent
	// write cannot slot its newer snapshot ahead of it. The fresh buffered
	// channel makes the send non-blocking.
	ch <- initial
	c.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			c.mu.Lock()
			delete(c.subs, id)
			close(ch)
			c.mu.Unlock()
		})
	}

	go func() {
		<-ctx.Done()
		cancel()
	}()

	return ch, cancel, nil
}

func (c *Collection[T]) snapshotLocked() ([]T, error) {
	out := make([]T, 0, len(c.records))
	for _, rec := range c.records {
		cp, err := deepCopy(rec)
		if err != nil {
			return nil, err
		}
		out = append(out, cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].RecordID() < out[j].RecordID() })
	return out, nil
}

// notifyLocked fans the post-write snapshot out without blocking the
// writer. A watcher that falls behind is skipped; it catches up on the next
// change.
func (c *Collection[T]) notifyLocked() {
	if len(c.subs) == 0 {
		return
	}
	snapshot, err := c.snapshotLocked()
	if err != nil {
		return
	}
	for _, ch := range c.subs {
		select {
		case ch <- snapshot:
		default:
		}
	}
}

func deepCopy[T any](src T) (T, error) {
	var dst T
	if err := copier.CopyWithOption(&dst, &src, copier.Option{DeepCopy: true}); err != nil {
		return dst, errs.Wrap(err, "copy record")
	}
	return dst, nil
}
