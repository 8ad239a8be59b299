package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

// Storage is one persistence tier for the session. The store picks a tier per
// login ("remember me" selects the durable one) instead of reconfiguring any
// global target.
type Storage interface {
	Save(session Session) error
	Load() (Session, bool, error)
	Clear() error
}

// FileStorage survives restarts; the durable tier.
type FileStorage struct {
	path string
}

func NewFileStorage(path string) *FileStorage {
	return &FileStorage{path: path}
}

func (storage *FileStorage) Save(session Session) error {
	payload, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(storage.path), 0o700); err != nil {
		return fmt.Errorf("create session directory: %w", err)
	}
	if err := os.WriteFile(storage.path, payload, 0o600); err != nil {
		return fmt.Errorf("write session: %w", err)
	}
	return nil
}

func (storage *FileStorage) Load() (Session, bool, error) {
	payload, err := os.ReadFile(storage.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Session{}, false, nil
		}
		return Session{}, false, fmt.Errorf("read session: %w", err)
	}

	var session Session
	if err := json.Unmarshal(payload, &session); err != nil {
		return Session{}, false, fmt.Errorf("decode session: %w", err)
	}
	return session, true, nil
}

func (storage *FileStorage) Clear() error {
	if err := os.Remove(storage.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove session: %w", err)
	}
	return nil
}

// MemoryStorage lives only as long as the process; the ephemeral tier.
type MemoryStorage struct {
	mu      sync.Mutex
	session Session
	present bool
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{}
}

func (storage *MemoryStorage) Save(session Session) error {
	storage.mu.Lock()
	defer storage.mu.Unlock()
	storage.session = session
	storage.present = true
	return nil
}

func (storage *MemoryStorage) Load() (Session, bool, error) {
	storage.mu.Lock()
	defer storage.mu.Unlock()
	return storage.session, storage.present, nil
}

func (storage *MemoryStorage) Clear() error {
	storage.mu.Lock()
	defer storage.mu.Unlock()
	storage.session = Session{}
	storage.present = false
	return nil
}
