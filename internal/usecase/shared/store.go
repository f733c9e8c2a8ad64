package shared

import "context"

// Record is anything a store collection can hold. Identifiers are opaque
// strings generated by the caller before Create.
type Record interface {
	RecordID() string
}

// Collection is the per-collection port of the data-store collaborator.
// Each write is an independent, individually-failable operation; there is
// no multi-record transaction primitive, and Update is full-record with
// last-writer-wins semantics. Watch delivers the full updated set after any
// change by any actor, so concurrently connected viewers converge on the
// latest committed state.
type Collection[T Record] interface {
	List(ctx context.Context) ([]T, error)
	Get(ctx context.Context, id string) (T, error)
	Create(ctx context.Context, rec T) error
	Update(ctx context.Context, id string, rec T) error
	Delete(ctx context.Context, id string) error
	// Watch returns a channel receiving the full record set on every
	// change, plus a cancel func that releases the subscription.
	Watch(ctx context.Context) (<-chan []T, func(), error)
}

type (
	UserStore      = Collection[UserRecord]
	ServiceStore   = Collection[ServiceRecord]
	PromotionStore = Collection[PromotionRecord]
	RegistryStore  = Collection[RegistryRecord]
)
