// AngelaMos | 2026
// service_test.go

package auth

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tkprod/portfolio-api/internal/core"
)

type memoryUsers struct {
	mu    sync.Mutex
	byID  map[string]*UserInfo
	seq   int
	login map[string]time.Time
}

func newMemoryUsers() *memoryUsers {
	return &memoryUsers{
		byID:  make(map[string]*UserInfo),
		login: make(map[string]time.Time),
	}
}

func (m *memoryUsers) GetByEmail(_ context.Context, email string) (*UserInfo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.byID {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, fmt.Errorf("get user by email: %w", core.ErrNotFound)
}

func (m *memoryUsers) GetByID(_ context.Context, id string) (*UserInfo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.byID[id]
	if !ok {
		return nil, fmt.Errorf("get user: %w", core.ErrNotFound)
	}
	cp := *u
	return &cp, nil
}

func (m *memoryUsers) Create(
	_ context.Context,
	name, email, passwordHash, role string,
) (*UserInfo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.byID {
		if u.Email == email {
			return nil, fmt.Errorf("create user: %w", core.ErrDuplicateKey)
		}
	}
	m.seq++
	u := &UserInfo{
		ID:           fmt.Sprintf("user-%d", m.seq),
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		Role:         role,
	}
	m.byID[u.ID] = u
	cp := *u
	return &cp, nil
}

func (m *memoryUsers) RecordLogin(_ context.Context, id string, at time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.login[id] = at
	if u, ok := m.byID[id]; ok {
		u.LastLogin = &at
	}
	return nil
}

func (m *memoryUsers) UpdatePassword(_ context.Context, id, hash string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.byID[id].PasswordHash = hash
	return nil
}

func (m *memoryUsers) UpdateProfile(
	_ context.Context,
	id string,
	changes ProfileChanges,
) (*UserInfo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.byID[id]
	if !ok {
		return nil, fmt.Errorf("update user: %w", core.ErrNotFound)
	}
	if changes.Email != nil {
		for otherID, other := range m.byID {
			if otherID != id && other.Email == *changes.Email {
				return nil, fmt.Errorf("update user: %w", core.ErrDuplicateKey)
			}
		}
		u.Email = *changes.Email
	}
	if changes.Name != nil {
		u.Name = *changes.Name
	}
	if changes.PasswordHash != nil {
		u.PasswordHash = *changes.PasswordHash
	}
	cp := *u
	return &cp, nil
}

func newTestService(t *testing.T) (*Service, *memoryUsers, *TokenService) {
	t.Helper()
	users := newMemoryUsers()
	tokens := newTestTokenService(t, "secret")
	return NewService(users, tokens), users, tokens
}

func register(t *testing.T, svc *Service, email, password string) *AuthResponse {
	t.Helper()
	resp, err := svc.Register(context.Background(), RegisterRequest{
		Name:     "Admin",
		Email:    email,
		Password: password,
	})
	require.NoError(t, err)
	return resp
}

func TestRegister(t *testing.T) {
	svc, users, tokens := newTestService(t)

	resp := register(t, svc, "  Admin@Example.com ", "secret1")
	assert.Equal(t, RoleAdmin, resp.User.Role)
	assert.Equal(t, "admin@example.com", resp.User.Email)

	subject, err := tokens.Verify(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, subject)

	stored, err := users.GetByID(context.Background(), resp.User.ID)
	require.NoError(t, err)
	assert.NotEqual(t, "secret1", stored.PasswordHash)
	assert.True(t, strings.HasPrefix(stored.PasswordHash, "$argon2id$"))

	_, err = svc.Register(context.Background(), RegisterRequest{
		Name:     "Other",
		Email:    "admin@example.com",
		Password: "secret2",
	})
	assert.ErrorIs(t, err, ErrUserExists)
}

func TestLogin(t *testing.T) {
	svc, users, tokens := newTestService(t)
	registered := register(t, svc, "admin@example.com", "secret1")

	fixed := time.Date(2026, time.March, 1, 10, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }

	resp, err := svc.Login(context.Background(), LoginRequest{
		Email:    "ADMIN@example.com",
		Password: "secret1",
	})
	require.NoError(t, err)

	subject, err := tokens.Verify(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, registered.User.ID, subject)
	assert.Equal(t, fixed, users.login[registered.User.ID])

	profile, err := svc.GetProfile(context.Background(), subject)
	require.NoError(t, err)
	require.NotNil(t, profile.LastLogin)
	assert.Equal(t, fixed, *profile.LastLogin)
}

func TestLoginDoesNotRevealWhichFieldWasWrong(t *testing.T) {
	svc, _, _ := newTestService(t)
	register(t, svc, "admin@example.com", "secret1")

	_, wrongPassword := svc.Login(context.Background(), LoginRequest{
		Email:    "admin@example.com",
		Password: "nope",
	})
	_, unknownEmail := svc.Login(context.Background(), LoginRequest{
		Email:    "ghost@example.com",
		Password: "secret1",
	})

	assert.ErrorIs(t, wrongPassword, ErrInvalidCredentials)
	assert.ErrorIs(t, unknownEmail, ErrInvalidCredentials)
	assert.Equal(t, wrongPassword.Error(), unknownEmail.Error())
}

func TestUpdateProfile(t *testing.T) {
	svc, _, _ := newTestService(t)
	first := register(t, svc, "first@example.com", "secret1")
	register(t, svc, "second@example.com", "secret1")

	taken := "second@example.com"
	_, err := svc.UpdateProfile(context.Background(), first.User.ID, UpdateProfileRequest{
		Email: &taken,
	})
	assert.ErrorIs(t, err, ErrUserExists)

	name := "Renamed"
	password := "new-secret"
	updated, err := svc.UpdateProfile(context.Background(), first.User.ID, UpdateProfileRequest{
		Name:     &name,
		Password: &password,
	})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Name)
	assert.Equal(t, "first@example.com", updated.Email)

	_, err = svc.Login(context.Background(), LoginRequest{
		Email:    "first@example.com",
		Password: "new-secret",
	})
	assert.NoError(t, err)

	_, err = svc.UpdateProfile(context.Background(), "", UpdateProfileRequest{})
	assert.ErrorIs(t, err, core.ErrUnauthorized)
}

func TestRequestPasswordReset(t *testing.T) {
	svc, _, _ := newTestService(t)
	register(t, svc, "admin@example.com", "secret1")

	assert.NoError(t, svc.RequestPasswordReset(context.Background(), "admin@example.com"))
	assert.ErrorIs(t,
		svc.RequestPasswordReset(context.Background(), "ghost@example.com"),
		core.ErrNotFound,
	)
}
