// Package session holds the dashboard's signed-in identity.
package session

import (
	"context"
	"errors"
	"log"
	"strings"
	"sync"

	"github.com/google/uuid"

	"ecokosova-dashboard/internal/models"
	"ecokosova-dashboard/internal/prefs"
)

var ErrNoSession = errors.New("no active session")

// DefaultUser is seeded when nothing has been persisted yet
func DefaultUser() models.User {
	return models.User{
		ID:    "1",
		Name:  "Admin User",
		Email: "admin@ecokosova.com",
		Role:  models.RoleAdmin,
	}
}

type Store struct {
	mu       sync.RWMutex
	prefs    prefs.Store
	verifier Verifier
	user     *models.User
	onLogout []func(models.User)
	onUpdate []func(models.User)

	seedDefault bool
}

type Option func(*Store)

// WithoutDefaultUser starts anonymous when nothing is persisted
func WithoutDefaultUser() Option {
	return func(s *Store) { s.seedDefault = false }
}

// NewStore restores the persisted session or seeds the default admin.
// A nil verifier accepts any non-empty credentials.
func NewStore(ctx context.Context, p prefs.Store, verifier Verifier, opts ...Option) *Store {
	if verifier == nil {
		verifier = DemoVerifier{}
	}
	s := &Store{prefs: p, verifier: verifier, seedDefault: true}
	for _, opt := range opts {
		opt(s)
	}

	var saved models.User
	if prefs.LoadJSON(ctx, p, prefs.KeyUser, &saved) && saved.ID != "" {
		s.user = &saved
		return s
	}
	if !s.seedDefault {
		return s
	}

	def := DefaultUser()
	s.user = &def
	s.persistLocked(ctx)
	log.Printf("👤 Seeded default session for %s", def.Email)
	return s
}

// OnLogout registers a hook run after the session is cleared. The hook
// receives the user that was signed out (zero when there was none).
func (s *Store) OnLogout(fn func(models.User)) {
	s.mu.Lock()
	s.onLogout = append(s.onLogout, fn)
	s.mu.Unlock()
}

// OnUpdate registers a hook run after a profile update is saved
func (s *Store) OnUpdate(fn func(models.User)) {
	s.mu.Lock()
	s.onUpdate = append(s.onUpdate, fn)
	s.mu.Unlock()
}

// Login returns false when either field is empty or the verifier rejects
// the credentials. The display name is the email's local part and the role
// is admin for any email containing "admin". The returned user is the one
// this call signed in.
func (s *Store) Login(ctx context.Context, email, password string) (models.User, bool) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return models.User{}, false
	}
	if !s.verifier.Verify(email, password) {
		log.Printf("❌ Login rejected for %s", email)
		return models.User{}, false
	}

	user := models.User{
		ID:    uuid.NewString(),
		Name:  nameFromEmail(email),
		Email: email,
		Role:  roleFromEmail(email),
	}

	s.mu.Lock()
	s.user = &user
	s.persistLocked(ctx)
	s.mu.Unlock()

	log.Printf("✅ Login successful: %s (%s)", user.Email, user.Role)
	return user, true
}

// Logout clears the persisted session and runs the logout hooks
func (s *Store) Logout(ctx context.Context) {
	s.mu.Lock()
	var previous models.User
	if s.user != nil {
		previous = *s.user
	}
	s.user = nil
	if err := s.prefs.Delete(ctx, prefs.KeyUser); err != nil {
		log.Printf("⚠️  Failed to clear session: %v", err)
	}
	hooks := s.onLogout
	s.mu.Unlock()

	for _, fn := range hooks {
		fn(previous)
	}
}

// UpdateUser merges the non-nil fields of u into the current session
func (s *Store) UpdateUser(ctx context.Context, u models.UserUpdate) (models.User, error) {
	s.mu.Lock()
	if s.user == nil {
		s.mu.Unlock()
		return models.User{}, ErrNoSession
	}

	if u.Name != nil {
		s.user.Name = *u.Name
	}
	if u.Email != nil {
		s.user.Email = *u.Email
	}
	if u.Role != nil {
		s.user.Role = *u.Role
	}
	if u.Avatar != nil {
		s.user.Avatar = *u.Avatar
	}
	s.persistLocked(ctx)
	updated := *s.user
	hooks := s.onUpdate
	s.mu.Unlock()

	for _, fn := range hooks {
		fn(updated)
	}
	return updated, nil
}

// CurrentUser returns a copy of the signed-in user, or nil
func (s *Store) CurrentUser() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

func (s *Store) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user != nil
}

func (s *Store) persistLocked(ctx context.Context) {
	if err := prefs.SaveJSON(ctx, s.prefs, prefs.KeyUser, s.user); err != nil {
		log.Printf("⚠️  Failed to persist session: %v", err)
	}
}

func nameFromEmail(email string) string {
	local, _, _ := strings.Cut(email, "@")
	if local == "" {
		return "User"
	}
	return local
}

func roleFromEmail(email string) models.Role {
	if strings.Contains(email, "admin") {
		return models.RoleAdmin
	}
	return models.RoleOperator
}
