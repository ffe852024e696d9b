package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/calverts/userhub/internal/domain/user"
)

var (
	// ErrNotFound reports an id with no matching record.
	ErrNotFound = errors.New("user not found")

	// ErrCorrupt reports a backing file that is not a valid JSON array.
	// It is propagated, never swallowed: treating corrupt data as an
	// empty store would overwrite it on the next save.
	ErrCorrupt = errors.New("store file corrupt")
)

// OpObserver receives one callback per logical store operation, wrapping
// the whole load-mutate-save cycle. Satisfied by observability.Prom.
type OpObserver interface {
	ObserveStore(op string, fn func() error) error
}

// FileStore persists the users collection as a single human-readable JSON
// array, rewritten wholesale on every mutation. Every operation re-reads
// the file; there is no in-process cache. The mutex serializes the
// load-mutate-save cycles so concurrent handlers cannot lose updates.
type FileStore struct {
	mu   sync.Mutex
	path string
	obs  OpObserver
}

// NewFileStore returns a store backed by the file at path. The file does
// not have to exist yet. obs may be nil.
func NewFileStore(path string, obs OpObserver) *FileStore {
	return &FileStore{path: path, obs: obs}
}

// NextID allocates the next user id: 1 for an empty collection, otherwise
// max existing id + 1. Derived from current contents on every insert, so
// ids are strictly increasing and never reused after deletion.
func NextID(users []user.User) int {
	next := 1

	for _, u := range users {
		if u.ID >= next {
			next = u.ID + 1
		}
	}

	return next
}

// Load reads the whole collection. An absent file is an empty store.
func (s *FileStore) Load() ([]user.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var users []user.User
	err := s.observe("load", func() (err error) {
		users, err = s.load()
		return
	})
	return users, err
}

// Save overwrites the backing file with the full collection.
func (s *FileStore) Save(users []user.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.observe("save", func() error {
		return s.save(users)
	})
}

func (s *FileStore) List() ([]user.User, error) {
	return s.Load()
}

func (s *FileStore) Create(name, email string, age int) (user.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var created user.User
	err := s.observe("create", func() error {
		users, err := s.load()
		if err != nil {
			return err
		}

		created = user.User{
			ID:    NextID(users),
			Name:  name,
			Email: email,
			Age:   age,
		}
		return s.save(append(users, created))
	})
	return created, err
}

func (s *FileStore) Get(id int) (user.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var found user.User
	err := s.observe("get", func() error {
		users, err := s.load()
		if err != nil {
			return err
		}

		for _, u := range users {
			if u.ID == id {
				found = u
				return nil
			}
		}
		return ErrNotFound
	})
	return found, err
}

func (s *FileStore) Update(id int, req user.UpdateUserRequest) (user.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var updated user.User
	err := s.observe("update", func() error {
		users, err := s.load()
		if err != nil {
			return err
		}

		for i := range users {
			if users[i].ID == id {
				req.ApplyTo(&users[i])
				updated = users[i]
				// The whole file is rewritten even though only one
				// record changed.
				return s.save(users)
			}
		}
		return ErrNotFound
	})
	return updated, err
}

func (s *FileStore) Delete(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.observe("delete", func() error {
		users, err := s.load()
		if err != nil {
			return err
		}

		kept := users[:0]
		found := false

		for _, u := range users {
			if u.ID == id {
				found = true
				continue
			}
			kept = append(kept, u)
		}

		if !found {
			return ErrNotFound
		}
		return s.save(kept)
	})
}

// load and save assume the caller holds the mutex.

func (s *FileStore) load() ([]user.User, error) {
	raw, err := os.ReadFile(s.path)

	if err != nil {
		if os.IsNotExist(err) {
			return []user.User{}, nil
		}
		return nil, err
	}

	var users []user.User
	if err := json.Unmarshal(raw, &users); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCorrupt, s.path, err)
	}
	if users == nil {
		users = []user.User{}
	}

	return users, nil
}

func (s *FileStore) save(users []user.User) error {
	if users == nil {
		users = []user.User{}
	}

	raw, err := json.MarshalIndent(users, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(s.path, raw, 0o644)
}

func (s *FileStore) observe(op string, fn func() error) error {
	if s.obs == nil {
		return fn()
	}
	return s.obs.ObserveStore(op, fn)
}
