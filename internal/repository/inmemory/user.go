package inmemory

import (
	"context"
	"sync"

	userdomain "expense-tracker-go/internal/domain/user"
)

type InMemoryUsers struct {
	mu     sync.RWMutex
	items  map[uint]userdomain.User
	nextID uint
}

func NewInMemoryUsers() *InMemoryUsers {
	return &InMemoryUsers{
		items:  make(map[uint]userdomain.User),
		nextID: 1,
	}
}

func (r *InMemoryUsers) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, account := range r.items {
		if account.Username == username {
			return true, nil
		}
	}
	return false, nil
}

func (r *InMemoryUsers) FindByUsername(ctx context.Context, username string) (*userdomain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, account := range r.items {
		if account.Username == username {
			found := account
			return &found, nil
		}
	}
	return nil, nil
}

func (r *InMemoryUsers) FindByCredentials(ctx context.Context, username, password string) (*userdomain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, account := range r.items {
		if account.Username == username && account.Password == password {
			found := account
			return &found, nil
		}
	}
	return nil, nil
}

func (r *InMemoryUsers) Create(ctx context.Context, account *userdomain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	account.ID = r.nextID
	r.nextID++
	r.items[account.ID] = *account
	return nil
}
