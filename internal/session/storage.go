package session

import (
	"context"
	"sync"

	"learnify/internal/qerrors"
)

// Storage is a local persistent key-value store holding string values.
type Storage interface {
	// GetItem returns the value stored under key. ok is false when the key is absent.
	GetItem(ctx context.Context, key string) (value string, ok bool, err error)
	// SetItem stores value under key, replacing any previous value.
	SetItem(ctx context.Context, key string, value string) error
	// RemoveItem deletes key. Removing an absent key is not an error.
	RemoveItem(ctx context.Context, key string) error
}

// MemoryStorage keeps items in a map for the life of the process.
type MemoryStorage struct {
	itemsLock *sync.RWMutex
	items     map[string]string
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{
		itemsLock: &sync.RWMutex{},
		items:     make(map[string]string),
	}
}

func (m *MemoryStorage) GetItem(ctx context.Context, key string) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}
	if key == "" {
		return "", false, qerrors.InvalidStorageKeyError
	}

	m.itemsLock.RLock()
	defer m.itemsLock.RUnlock()

	val, ok := m.items[key]
	return val, ok, nil
}

func (m *MemoryStorage) SetItem(ctx context.Context, key string, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if key == "" {
		return qerrors.InvalidStorageKeyError
	}

	m.itemsLock.Lock()
	defer m.itemsLock.Unlock()

	m.items[key] = value
	return nil
}

func (m *MemoryStorage) RemoveItem(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m.itemsLock.Lock()
	defer m.itemsLock.Unlock()

	delete(m.items, key)
	return nil
}
