package service

import (
	"context"

	"eco-restaurants/internal/domains/restaurant/model"
	"eco-restaurants/internal/infrastructure/lock"
)

const nameLockPrefix = "restaurant:name:"

// nameGuard enforces case-insensitive name uniqueness. Holding the key lock
// across lookup and write keeps concurrent claims of the same name from
// interleaving; the store's own uniqueness check backs it up if the lock
// is lost (for example a Redis TTL expiring mid-write).
type nameGuard struct {
	locker lock.Locker
	store  interface {
		FindByNameKey(ctx context.Context, key, excludeID string) (*model.Restaurant, error)
	}
}

// claim locks name's key, checks no other record holds it and runs write.
// excludeID is the record being renamed, empty on create.
func (g *nameGuard) claim(ctx context.Context, name, excludeID string, write func() error) error {
	key := model.NameKey(name)

	unlock, err := g.locker.Lock(ctx, nameLockPrefix+key)
	if err != nil {
		return model.NewStoreUnavailable("name lock", err)
	}
	defer unlock()

	existing, err := g.store.FindByNameKey(ctx, key, excludeID)
	if err != nil {
		return err
	}
	if existing != nil {
		return model.NewNameTaken(name)
	}

	return write()
}
