package repository

//go:generate mockgen -source=repository.go -destination=mock_repository.go -package=repository

import (
	"auction-etl/internal/etlerrors"
	model "auction-etl/internal/models"
	"fmt"
	"sync"
)

// UserDirectory defines the user de-duplication store shared by every file of a batch
type UserDirectory interface {
	UpsertBidder(user model.User)
	InsertSeller(user model.User) bool
	Contains(userID string) bool
	GetUser(userID string) (model.User, error)
	ListUsers() []model.User
	Len() int
}

// MemoryDirectory is a concurrency-safe, insertion-ordered in-memory implementation of UserDirectory
type MemoryDirectory struct {
	mu    sync.RWMutex
	order []string              // userIDs in first-seen order
	users map[string]model.User // key: userID -> value: latest profile
}

// NewMemoryDirectory creates an empty directory
func NewMemoryDirectory() *MemoryDirectory {
	return &MemoryDirectory{
		users: make(map[string]model.User),
	}
}

// UpsertBidder replaces the whole entry for the bidder. A replaced entry keeps its position.
func (d *MemoryDirectory) UpsertBidder(user model.User) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.put(user)
}

// InsertSeller adds a placeholder entry only when the user is unknown. It reports whether it inserted.
func (d *MemoryDirectory) InsertSeller(user model.User) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, ok := d.users[user.UserID]; ok {
		return false
	}
	d.put(user)
	return true
}

// Contains reports whether the user has an entry
func (d *MemoryDirectory) Contains(userID string) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()

	_, ok := d.users[userID]
	return ok
}

// GetUser returns the entry for a user
func (d *MemoryDirectory) GetUser(userID string) (model.User, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	user, ok := d.users[userID]
	if !ok {
		return model.User{}, fmt.Errorf("get user %s: %w", userID, etlerrors.ErrUserNotFound)
	}
	return user, nil
}

// ListUsers returns a snapshot of every entry in insertion order
func (d *MemoryDirectory) ListUsers() []model.User {
	d.mu.RLock()
	defer d.mu.RUnlock()

	users := make([]model.User, 0, len(d.order))
	for _, id := range d.order {
		users = append(users, d.users[id])
	}
	return users
}

// Len returns the number of distinct users
func (d *MemoryDirectory) Len() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.order)
}

// put must be called with the write lock held
func (d *MemoryDirectory) put(user model.User) {
	if _, ok := d.users[user.UserID]; !ok {
		d.order = append(d.order, user.UserID)
	}
	d.users[user.UserID] = user
}
