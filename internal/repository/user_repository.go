package repository

import (
	"context"

	"github.com/eaglebank/ledger/shared/errs"
	"github.com/eaglebank/ledger/shared/models"
	"github.com/eaglebank/ledger/shared/store"
)

// UserViewCache is the read-through cache in front of the user store.
// *redis.ViewCache[models.UserView] satisfies it.
type UserViewCache interface {
	Get(ctx context.Context, id string) (*models.UserView, bool)
	Set(ctx context.Context, id string, view *models.UserView)
}

// UserRepository stores users. The store is the system of record; the
// cache only serves views of users the store still holds, since cached
// entries can outlive the process.
type UserRepository struct {
	users *store.Store[models.User]
	cache UserViewCache
}

// NewUserRepository wraps users; cache may be nil.
func NewUserRepository(users *store.Store[models.User], cache UserViewCache) *UserRepository {
	return &UserRepository{users: users, cache: cache}
}

func (r *UserRepository) Create(ctx context.Context, user models.User) error {
	if !r.users.Set(user.ID, user) {
		return errs.ErrUserConflict
	}
	if r.cache != nil {
		r.cache.Set(ctx, user.ID, models.NewUserView(&user))
	}
	return nil
}

// GetByID answers NotFound for any id the store does not hold, whatever
// the cache says. For known ids the cache is read first and warmed from
// the store on a miss.
func (r *UserRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	if r.cache != nil && r.users.ContainsKey(id) {
		if view, ok := r.cache.Get(ctx, id); ok {
			return view.User(), nil
		}
	}

	user, ok := r.users.Get(id)
	if !ok {
		return nil, errs.ErrUserNotFound
	}
	if r.cache != nil {
		r.cache.Set(ctx, id, models.NewUserView(&user))
	}
	return &user, nil
}

func (r *UserRepository) Exists(id string) bool {
	return r.users.ContainsKey(id)
}
