// Package users owns the authoritative in-memory user registry and keeps a
// snapshot of it in durable storage.
package users

import (
	"context"
	"fmt"
	"strconv"
	"sync"

	"github.com/dmitrijs2005/lockify/internal/common"
	"github.com/dmitrijs2005/lockify/internal/logging"
	"github.com/dmitrijs2005/lockify/internal/server/models"
	"github.com/dmitrijs2005/lockify/internal/server/storage"
)

const initialID int64 = 1

// Option configures a Store.
type Option func(*Store)

// WithUniqueEmails makes Insert reject an email that is already registered.
// Without it several users may share an email and lookups by email return
// the earliest registered one.
func WithUniqueEmails() Option {
	return func(s *Store) { s.uniqueEmails = true }
}

// Store is the user registry. Every mutation is followed by a synchronous
// snapshot save performed under the write lock, so snapshots are written in
// mutation order and the caller observes its own write.
//
// A failed save is logged and otherwise ignored: the in-memory mutation
// stands and the registry keeps working from memory until the next
// successful save. State mutated after the last successful save is lost if
// the process dies.
type Store struct {
	mu     sync.RWMutex
	users  map[string]*models.User
	order  []string // insertion order, used for listing and email lookups
	nextID int64

	snapshots    storage.Snapshotter
	logger       logging.Logger
	uniqueEmails bool
}

func NewStore(snapshots storage.Snapshotter, logger logging.Logger, opts ...Option) *Store {
	s := &Store{
		users:     make(map[string]*models.User),
		nextID:    initialID,
		snapshots: snapshots,
		logger:    logger.With("module", "users"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load replaces the registry with the persisted snapshot and returns the
// number of users loaded and the next id to be issued. A missing, unreadable
// or corrupt snapshot yields an empty registry; the failure is only logged.
func (s *Store) Load(ctx context.Context) (int, int64) {
	snap, err := s.snapshots.Load(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.users = make(map[string]*models.User)
	s.order = nil
	s.nextID = initialID

	if err != nil {
		s.logger.Error(ctx, "error loading users, starting empty", "error", err)
		return 0, s.nextID
	}

	var maxID int64
	for _, u := range snap.Users {
		if u.ID == "" {
			s.logger.Warn(ctx, "skipping user without id", "email", u.Email)
			continue
		}
		if _, exists := s.users[u.ID]; !exists {
			s.order = append(s.order, u.ID)
		}
		rec := u
		s.users[u.ID] = &rec

		if n, err := strconv.ParseInt(u.ID, 10, 64); err == nil && n > maxID {
			maxID = n
		}
	}

	// The persisted counter is not trusted on its own: older snapshots hold
	// the user count there, which collides with live ids after deletions.
	s.nextID = max(snap.Counter, maxID+1, initialID)

	s.logger.Info(ctx, "users loaded", "count", len(s.users), "next_id", s.nextID)
	return len(s.users), s.nextID
}

// save must be called with s.mu held for writing.
func (s *Store) save(ctx context.Context) {
	snap := &storage.Snapshot{Users: make([]models.User, 0, len(s.order)), Counter: s.nextID}
	for _, id := range s.order {
		snap.Users = append(snap.Users, *s.users[id])
	}

	if err := s.snapshots.Save(ctx, snap); err != nil {
		s.logger.Error(ctx, "error saving users", "error", err)
		return
	}
	s.logger.Info(ctx, "users saved", "count", len(snap.Users))
}

// Insert stores a copy of u under a freshly allocated id and returns the id.
// The id in u is ignored.
func (s *Store) Insert(ctx context.Context, u models.User) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.uniqueEmails {
		if _, ok := s.findByEmailLocked(u.Email); ok {
			return "", fmt.Errorf("email %q: %w", u.Email, common.ErrorAlreadyExists)
		}
	}

	id := strconv.FormatInt(s.nextID, 10)
	s.nextID++

	u.ID = id
	s.users[id] = &u
	s.order = append(s.order, id)

	s.save(ctx)

	return id, nil
}

func (s *Store) GetByID(ctx context.Context, id string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	cp := *u
	return &cp, nil
}

// FindByEmail returns the earliest registered user with the given email.
func (s *Store) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.findByEmailLocked(email)
	if !ok {
		return nil, common.ErrorNotFound
	}
	cp := *u
	return &cp, nil
}

func (s *Store) findByEmailLocked(email string) (*models.User, bool) {
	for _, id := range s.order {
		if u := s.users[id]; u.Email == email {
			return u, true
		}
	}
	return nil, false
}

// List returns all users in registration order.
func (s *Store) List(ctx context.Context) []models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.User, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, *s.users[id])
	}
	return out
}

// DeleteByID removes the user and returns it. Nothing is saved when the id
// is unknown.
func (s *Store) DeleteByID(ctx context.Context, id string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	s.removeLocked(id)
	s.save(ctx)

	return u, nil
}

// DeleteByEmail removes the earliest registered user with the given email.
func (s *Store) DeleteByEmail(ctx context.Context, email string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.findByEmailLocked(email)
	if !ok {
		return nil, common.ErrorNotFound
	}
	s.removeLocked(u.ID)
	s.save(ctx)

	return u, nil
}

func (s *Store) removeLocked(id string) {
	delete(s.users, id)
	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

// Clear removes every user and resets id allocation to its initial value,
// so the next insert gets id "1" again. Returns the number removed.
func (s *Store) Clear(ctx context.Context) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := len(s.users)
	s.users = make(map[string]*models.User)
	s.order = nil
	s.nextID = initialID

	s.save(ctx)

	return n
}

// Len is the number of registered users.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.users)
}
