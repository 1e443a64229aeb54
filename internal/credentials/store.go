// Package credentials holds the token set obtained from the QuickBooks
// OAuth callback. The bridge is a single-company tool and deliberately keeps
// no durable credential state; the memory store is the only implementation.
package credentials

import (
	"context"
	"sync"

	"github.com/salesdesk/qbo-bridge/internal/entity"
)

// Store is the narrow seam every handler reads tokens through.
type Store interface {
	Get(ctx context.Context) (entity.Credentials, error)
	Put(ctx context.Context, creds entity.Credentials)
}

type Memory struct {
	mu    sync.RWMutex
	creds entity.Credentials
}

func NewMemory() *Memory {
	return &Memory{}
}

// Get returns the current credentials, or ErrNotConnected while the OAuth
// flow has not completed.
func (m *Memory) Get(_ context.Context) (entity.Credentials, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.creds.Empty() {
		return entity.Credentials{}, entity.ErrNotConnected
	}

	return m.creds, nil
}

func (m *Memory) Put(_ context.Context, creds entity.Credentials) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.creds = creds
}
