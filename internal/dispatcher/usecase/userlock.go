package usecase

import (
	"context"
	"sync"

	"golang.org/x/sync/semaphore"
)

// userLocks serializes work per user. Waiters are served in arrival order.
type userLocks struct {
	mu    sync.Mutex
	locks map[string]*userLock
}

type userLock struct {
	sem  *semaphore.Weighted
	refs int
}

func newUserLocks() *userLocks {
	return &userLocks{locks: make(map[string]*userLock)}
}

// acquire blocks until userID is free or ctx ends. The returned func releases it.
func (u *userLocks) acquire(ctx context.Context, userID string) (func(), error) {
	u.mu.Lock()
	lock, ok := u.locks[userID]
	if !ok {
		lock = &userLock{sem: semaphore.NewWeighted(1)}
		u.locks[userID] = lock
	}
	lock.refs++
	u.mu.Unlock()

	if err := lock.sem.Acquire(ctx, 1); err != nil {
		u.unref(userID, lock)
		return nil, err
	}

	return func() {
		lock.sem.Release(1)
		u.unref(userID, lock)
	}, nil
}

func (u *userLocks) unref(userID string, lock *userLock) {
	u.mu.Lock()
	defer u.mu.Unlock()

	lock.refs--
	if lock.refs == 0 {
		delete(u.locks, userID)
	}
}

func (u *userLocks) size() int {
	u.mu.Lock()
	defer u.mu.Unlock()
	return len(u.locks)
}
