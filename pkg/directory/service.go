package directory

import (
	"context"
	"log/slog"
	"slices"
	"strings"
	"sync"

	"github.com/dmitrymomot/userdash/pkg/cache"
	"github.com/dmitrymomot/userdash/pkg/logger"
)

// Fetcher loads the full user list.
type Fetcher interface {
	ListUsers(ctx context.Context) ([]User, error)
}

// Listing is one filtered view of a profile's users.
type Listing struct {
	Query    string `json:"query"`
	Users    []User `json:"users"`
	Total    int    `json:"total"`
	Shown    int    `json:"shown"`
	Filtered bool   `json:"filtered"`
}

type profileList struct {
	mu     sync.Mutex
	users  []User
	loaded bool
}

// Service keeps a per-profile, locally editable copy of the user list.
type Service struct {
	fetcher Fetcher
	lists   *cache.LRUCache[string, *profileList]
	logger  *slog.Logger
}

type ServiceOption func(*Service)

func WithLogger(l *slog.Logger) ServiceOption {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithCapacity bounds the number of cached profile lists.
func WithCapacity(n int) ServiceOption {
	return func(s *Service) {
		if n > 0 {
			s.lists = cache.NewLRUCache[string, *profileList](n)
		}
	}
}

func NewService(f Fetcher, opts ...ServiceOption) *Service {
	s := &Service{
		fetcher: f,
		lists:   cache.NewLRUCache[string, *profileList](1024),
		logger:  logger.Discard(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// List returns the profile's users filtered by query, fetching on first use.
func (s *Service) List(ctx context.Context, profileID, query string) (Listing, error) {
	pl := s.list(profileID)
	pl.mu.Lock()
	defer pl.mu.Unlock()

	if !pl.loaded {
		if err := s.load(ctx, profileID, pl); err != nil {
			return Listing{Query: query}, err
		}
	}
	return listing(pl.users, query), nil
}

// Refresh re-fetches the profile's list, discarding local deletions.
func (s *Service) Refresh(ctx context.Context, profileID string) error {
	pl := s.list(profileID)
	pl.mu.Lock()
	defer pl.mu.Unlock()
	return s.load(ctx, profileID, pl)
}

// Delete removes the user from the profile's list and returns it.
func (s *Service) Delete(ctx context.Context, profileID string, id int) (User, error) {
	pl := s.list(profileID)
	pl.mu.Lock()
	defer pl.mu.Unlock()

	if !pl.loaded {
		if err := s.load(ctx, profileID, pl); err != nil {
			return User{}, err
		}
	}

	i := slices.IndexFunc(pl.users, func(u User) bool { return u.ID == id })
	if i < 0 {
		return User{}, ErrUserNotFound
	}
	removed := pl.users[i]
	pl.users = slices.Delete(slices.Clone(pl.users), i, i+1)

	s.logger.InfoContext(ctx, "user deleted locally",
		logger.Component("directory"),
		logger.ProfileID(profileID),
		slog.Int("user_id", id),
	)
	return removed, nil
}

func (s *Service) list(profileID string) *profileList {
	return s.lists.GetOrCreate(profileID, func() *profileList { return &profileList{} })
}

// load requires pl.mu. A failed fetch keeps the previous list.
func (s *Service) load(ctx context.Context, profileID string, pl *profileList) error {
	users, err := s.fetcher.ListUsers(ctx)
	if err != nil {
		s.logger.LogAttrs(ctx, slog.LevelError, "fetch users failed",
			logger.Component("directory"),
			logger.ProfileID(profileID),
			logger.Error(err),
		)
		return err
	}
	pl.users = users
	pl.loaded = true
	return nil
}

func listing(users []User, query string) Listing {
	shown := Filter(users, query)
	return Listing{
		Query:    query,
		Users:    shown,
		Total:    len(users),
		Shown:    len(shown),
		Filtered: strings.TrimSpace(query) != "",
	}
}
