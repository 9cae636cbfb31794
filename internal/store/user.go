package store

import (
	"context"
	"sync"

	"conduit-cli/internal/api"
	"conduit-cli/internal/logging"
	"conduit-cli/internal/models"
	"conduit-cli/internal/persist"
)

// UserStore owns the current identity and bearer token.
//
// Lifecycle: anonymous → authenticating → authenticated/failed → logged out.
// The user and token are replaced wholesale on every successful auth
// operation and left untouched on rejection. The token is non-empty exactly
// when a user is present.
type UserStore struct {
	mu        sync.Mutex
	client    api.Client
	persister persist.Persister
	track     *tracker
	log       logging.Logger

	current *models.User
	token   string
}

func NewUserStore(client api.Client, persister persist.Persister, log logging.Logger) *UserStore {
	return &UserStore{
		client:    client,
		persister: persister,
		track:     newTracker("user", log),
		log:       log,
	}
}

// rehydrate seeds the store from previously persisted state. Called once by
// the container before anything else touches the store.
func (s *UserStore) rehydrate(state *persist.State) {
	if state == nil || state.User == nil {
		return
	}
	s.mu.Lock()
	s.current = state.User
	s.token = state.Token
	if s.token == "" {
		s.token = state.User.Token
	}
	s.mu.Unlock()
}

// Register creates a new account and signs it in.
func (s *UserStore) Register(ctx context.Context, username, email, password string) error {
	return s.track.run(ctx, "registerUser", func(ctx context.Context) error {
		u, err := s.client.Register(ctx, username, email, password)
		if err != nil {
			return err
		}
		s.setUser(ctx, u)
		return nil
	})
}

// Login authenticates with email and password.
func (s *UserStore) Login(ctx context.Context, email, password string) error {
	return s.track.run(ctx, "loginUser", func(ctx context.Context) error {
		u, err := s.client.Login(ctx, email, password)
		if err != nil {
			return err
		}
		s.setUser(ctx, u)
		return nil
	})
}

// FetchCurrentUser refreshes the identity record using the stored token.
func (s *UserStore) FetchCurrentUser(ctx context.Context) error {
	return s.track.run(ctx, "getUser", func(ctx context.Context) error {
		u, err := s.client.CurrentUser(ctx, s.Token())
		if err != nil {
			return err
		}
		s.setUser(ctx, u)
		return nil
	})
}

// UpdateProfile sends a partial profile update; nil patch fields mean
// "unchanged". The server answers with the full user record, which replaces
// the current one.
func (s *UserStore) UpdateProfile(ctx context.Context, patch api.UserPatch) error {
	return s.track.run(ctx, "updateUser", func(ctx context.Context) error {
		u, err := s.client.UpdateUser(ctx, s.Token(), patch)
		if err != nil {
			return err
		}
		s.setUser(ctx, u)
		return nil
	})
}

// LogOut clears the identity and token immediately. No network call is made
// and the operation status is untouched; only the persisted slice is
// rewritten to its anonymous form.
func (s *UserStore) LogOut(ctx context.Context) {
	s.mu.Lock()
	s.current = nil
	s.token = ""
	s.mu.Unlock()

	if err := s.persister.Save(ctx, &persist.State{}); err != nil {
		s.log.Warn(ctx, "failed to persist logout", "error", err)
	}
}

func (s *UserStore) setUser(ctx context.Context, u *models.User) {
	s.mu.Lock()
	s.current = u
	s.token = u.Token
	s.mu.Unlock()

	if err := s.persister.Save(ctx, &persist.State{User: u, Token: u.Token}); err != nil {
		s.log.Warn(ctx, "failed to persist user state", "error", err)
	}
}

// CurrentUser returns a copy of the signed-in user, or nil when anonymous.
func (s *UserStore) CurrentUser() *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return nil
	}
	u := *s.current
	return &u
}

// Token returns the current bearer token, empty when anonymous.
func (s *UserStore) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

// IsAuthenticated is the derived flag navigation guards consume.
func (s *UserStore) IsAuthenticated() bool {
	return s.Token() != ""
}

// Status reports the tracker state of the last user operation.
func (s *UserStore) Status() (Status, error) {
	return s.track.snapshot()
}
