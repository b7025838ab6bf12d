package account

import (
	"errors"
	"sync"

	"golang.org/x/crypto/bcrypt"

	"github.com/rentvehicle/rentkit/pkg/validator"
)

// Store is an in-memory user registry safe for concurrent use.
type Store struct {
	mu         sync.RWMutex
	users      []*User
	byUsername map[string]*User
	bcryptCost int
}

// Option configures a Store.
type Option func(*Store)

// WithBcryptCost overrides the bcrypt work factor. Values outside the bcrypt
// range are ignored. Lowering the cost is intended for tests only.
func WithBcryptCost(cost int) Option {
	return func(s *Store) {
		if cost >= bcrypt.MinCost && cost <= bcrypt.MaxCost {
			s.bcryptCost = cost
		}
	}
}

// NewStore creates an empty user registry.
func NewStore(opts ...Option) *Store {
	s := &Store{
		byUsername: make(map[string]*User),
		bcryptCost: bcrypt.DefaultCost,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Register creates a new user with a bcrypt-hashed password. The username
// must be unique.
func (s *Store) Register(username, password, name string, role Role) (User, error) {
	if err := validator.Apply(
		validator.Required("username", username),
		validator.Required("password", password),
		validator.Required("name", name),
		validator.OneOf("role", role, RoleAdministrator, RoleCustomer),
	); err != nil {
		return User{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return User{}, errors.Join(ErrPasswordHashing, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byUsername[username]; exists {
		return User{}, ErrUsernameTaken
	}

	u := &User{
		Username:     username,
		Name:         name,
		Role:         role,
		passwordHash: hash,
	}
	s.users = append(s.users, u)
	s.byUsername[username] = u
	return *u, nil
}

// Authenticate verifies the username and password pair. Unknown usernames
// and wrong passwords are indistinguishable to the caller.
func (s *Store) Authenticate(username, password string) (User, error) {
	s.mu.RLock()
	u, exists := s.byUsername[username]
	s.mu.RUnlock()

	if !exists {
		return User{}, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(u.passwordHash, []byte(password)); err != nil {
		return User{}, ErrInvalidCredentials
	}
	return *u, nil
}

// Find returns a copy of the user with the given username.
func (s *Store) Find(username string) (User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, exists := s.byUsername[username]
	if !exists {
		return User{}, ErrUserNotFound
	}
	return *u, nil
}

// List returns copies of all users in registration order.
func (s *Store) List() []User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]User, 0, len(s.users))
	for _, u := range s.users {
		out = append(out, *u)
	}
	return out
}
