package quotecache

import (
	"context"
	"sync"

	"booking-engine/internal/usecase/commands"

	"github.com/google/uuid"
)

// MemoryCache is the in-process fallback used when no Redis address is
// configured, and in tests.
type MemoryCache struct {
	mu     sync.RWMutex
	quotes map[uuid.UUID]commands.Quote
}

func NewMemoryCache() *MemoryCache {
	return &MemoryCache{
		quotes: make(map[uuid.UUID]commands.Quote),
	}
}

func (c *MemoryCache) Put(_ context.Context, holderID uuid.UUID, q *commands.Quote) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.quotes[holderID] = *q
	return nil
}

func (c *MemoryCache) Get(_ context.Context, holderID uuid.UUID) (*commands.Quote, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	q, ok := c.quotes[holderID]
	if !ok {
		return nil, nil
	}
	return &q, nil
}

func (c *MemoryCache) Delete(_ context.Context, holderID uuid.UUID) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.quotes, holderID)
	return nil
}
