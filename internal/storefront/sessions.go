package storefront

import (
	"errors"
	"fmt"

	"github.com/gofrs/uuid"
	lru "github.com/hashicorp/golang-lru"
)

var ErrSessionNotFound = errors.New("session not found")

// SessionStore keeps the most recently used controllers. The least recently
// used session is dropped once the store is full.
type SessionStore struct {
	cache   *lru.Cache
	machine *Machine
}

func NewSessionStore(size int, m *Machine) (*SessionStore, error) {
	cache, err := lru.New(size)
	if err != nil {
		return nil, fmt.Errorf("storefront: create session cache: %w", err)
	}
	return &SessionStore{cache: cache, machine: m}, nil
}

func (s *SessionStore) Create() (string, *Controller, error) {
	id, err := uuid.NewV4()
	if err != nil {
		return "", nil, fmt.Errorf("storefront: generate session id: %w", err)
	}

	c := NewController(s.machine)
	s.cache.Add(id.String(), c)
	return id.String(), c, nil
}

func (s *SessionStore) Get(id string) (*Controller, error) {
	v, ok := s.cache.Get(id)
	if !ok {
		return nil, ErrSessionNotFound
	}
	return v.(*Controller), nil
}

func (s *SessionStore) Len() int {
	return s.cache.Len()
}
