package session

import (
	"context"
	"strings"
	"sync"
)

// Store holds the session and exposes Login, SignUp, Logout, and UpdateUser
// as the only mutators.
type Store struct {
	mu        sync.Mutex
	api       API
	durable   Storage
	ephemeral Storage
	active    Storage
	session   Session
	hydrated  bool
}

func NewStore(api API, durable Storage, ephemeral Storage) *Store {
	return &Store{
		api:       api,
		durable:   durable,
		ephemeral: ephemeral,
		active:    ephemeral,
	}
}

// Hydrate loads any persisted session before the first route decision is
// made, so a surviving session never flashes as unauthenticated. The durable
// tier wins over the ephemeral one.
func (store *Store) Hydrate() error {
	store.mu.Lock()
	defer store.mu.Unlock()

	session, found, err := store.durable.Load()
	if err != nil {
		return err
	}
	if found {
		store.session = session
		store.active = store.durable
	} else {
		session, found, err = store.ephemeral.Load()
		if err != nil {
			return err
		}
		if found {
			store.session = session
			store.active = store.ephemeral
		}
	}

	store.hydrated = true
	return nil
}

func (store *Store) Hydrated() bool {
	store.mu.Lock()
	defer store.mu.Unlock()
	return store.hydrated
}

func (store *Store) Session() Session {
	store.mu.Lock()
	defer store.mu.Unlock()
	return store.session
}

// Login selects the persistence tier before issuing the request: durable when
// remember is set, ephemeral otherwise.
func (store *Store) Login(ctx context.Context, credentials Credentials, remember bool) error {
	target := store.ephemeral
	if remember {
		target = store.durable
	}

	result, err := store.api.Login(ctx, credentials.Email, credentials.Password)
	if err != nil {
		return err
	}

	store.mu.Lock()
	defer store.mu.Unlock()
	store.active = target
	store.session = Session{
		User:            result.User,
		AccessToken:     result.AccessToken,
		RefreshToken:    result.RefreshToken,
		IsAuthenticated: true,
	}
	return store.active.Save(store.session)
}

func (store *Store) SignUp(ctx context.Context, input SignUpInput) error {
	result, err := store.api.Register(ctx, input.Name, input.Email, input.Password)
	if err != nil {
		return err
	}

	store.mu.Lock()
	defer store.mu.Unlock()
	store.active = store.durable
	store.session = Session{
		User:            result.User,
		AccessToken:     result.AccessToken,
		RefreshToken:    result.RefreshToken,
		IsAuthenticated: true,
	}
	return store.active.Save(store.session)
}

// Logout clears the in-memory session and removes persisted data from both
// tiers unconditionally.
func (store *Store) Logout() error {
	store.mu.Lock()
	defer store.mu.Unlock()

	store.session = Session{}
	store.active = store.ephemeral

	durableErr := store.durable.Clear()
	ephemeralErr := store.ephemeral.Clear()
	if durableErr != nil {
		return durableErr
	}
	return ephemeralErr
}

// UpdateUser shallow-merges non-empty fields into the current user record.
// No-op when no session exists.
func (store *Store) UpdateUser(name string, email string) error {
	store.mu.Lock()
	defer store.mu.Unlock()

	if !store.session.IsAuthenticated {
		return nil
	}

	if trimmed := strings.TrimSpace(name); trimmed != "" {
		store.session.User.Name = trimmed
	}
	if trimmed := strings.TrimSpace(email); trimmed != "" {
		store.session.User.Email = trimmed
	}
	return store.active.Save(store.session)
}
