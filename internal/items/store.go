package items

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"
	platformerrors "github.com/jmgilman/go/errors"
)

// Store persists items. Implementations report failures as PlatformErrors so
// the service can classify them.
type Store interface {
	Insert(ctx context.Context, item Item) error
	Get(ctx context.Context, id uuid.UUID) (Item, error)
}

type MemoryStore struct {
	mu    sync.RWMutex
	items map[uuid.UUID]Item
	names map[string]uuid.UUID
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		items: make(map[uuid.UUID]Item),
		names: make(map[string]uuid.UUID),
	}
}

func (s *MemoryStore) Insert(ctx context.Context, item Item) error {
	if err := ctx.Err(); err != nil {
		return contextError(err, "insert")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.names[item.Name]; ok {
		return platformerrors.Newf(platformerrors.CodeAlreadyExists, "item %q already exists", item.Name)
	}
	s.items[item.ID] = item
	s.names[item.Name] = item.ID
	return nil
}

func (s *MemoryStore) Get(ctx context.Context, id uuid.UUID) (Item, error) {
	if err := ctx.Err(); err != nil {
		return Item{}, contextError(err, "get")
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	item, ok := s.items[id]
	if !ok {
		return Item{}, platformerrors.Newf(platformerrors.CodeNotFound, "item %s not found", id)
	}
	return item, nil
}

// contextError reports an expired deadline as a TIMEOUT PlatformError and
// returns a cancellation as is, so callers can tell the two apart.
func contextError(err error, op string) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return platformerrors.Wrap(err, platformerrors.CodeTimeout, op+" timed out")
	}
	return err
}
