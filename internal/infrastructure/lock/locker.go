// Package lock serializes writers that claim the same key.
//
// Two implementations are provided: LocalLocker for a single process and
// RedisLocker for several API instances sharing one Redis.
package lock

import (
	"context"
	"errors"
	"sync"
)

// ErrLockTimeout is returned when the lock could not be acquired before the
// context was done.
var ErrLockTimeout = errors.New("lock: timed out waiting for key")

// Unlock releases a lock acquired through Locker.Lock. It is safe to call
// more than once.
type Unlock func()

// Locker hands out exclusive, key-scoped locks.
type Locker interface {
	Lock(ctx context.Context, key string) (Unlock, error)
}

// onceUnlock runs release at most once however many goroutines call the
// returned Unlock.
func onceUnlock(release func()) Unlock {
	var once sync.Once
	return func() { once.Do(release) }
}
