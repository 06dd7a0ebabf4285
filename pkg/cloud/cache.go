package cloud

import (
	"context"
	"sync"
)

type clientKey struct {
	service string
	region  string
	profile string
}

// Cache is a read-through client cache over a Factory, keyed by
// (service, region, profile).
//
// The first caller for a key constructs and publishes the client;
// subsequent callers reuse it. Construction failures are not cached, so a
// transient failure does not poison the key for the rest of the run.
//
// A Cache is owned by one dispatcher run and discarded with it.
type Cache struct {
	factory Factory

	mu      sync.RWMutex
	clients map[clientKey]Client
}

// NewCache creates a client cache over the given factory.
func NewCache(factory Factory) *Cache {
	return &Cache{
		factory: factory,
		clients: make(map[clientKey]Client),
	}
}

// Client returns the cached client for the triple, constructing it on
// first use.
func (c *Cache) Client(ctx context.Context, service, region, profile string) (Client, error) {
	key := clientKey{service: service, region: region, profile: profile}

	c.mu.RLock()
	client, ok := c.clients[key]
	c.mu.RUnlock()
	if ok {
		return client, nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if client, ok := c.clients[key]; ok {
		return client, nil
	}
	client, err := c.factory.Client(ctx, service, region, profile)
	if err != nil {
		return nil, err
	}
	c.clients[key] = client
	return client, nil
}

// Len returns the number of cached clients.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.clients)
}
