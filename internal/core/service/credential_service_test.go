package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/cogip/cogip-api/internal/core/domain"
	"github.com/cogip/cogip-api/internal/core/ports"
	"github.com/cogip/cogip-api/internal/pkg/password"
)

var discardLogger = zerolog.Nop()

type stubUserRepo struct {
	users   map[string]*domain.User
	nextID  int64
	findErr error
	listErr error
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) error {
	if _, exists := r.users[user.Username]; exists {
		return domain.ErrUserExists
	}
	r.nextID++
	user.ID = r.nextID
	r.users[user.Username] = cloneUser(user)
	return nil
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	u, ok := r.users[username]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) List(_ context.Context) ([]*domain.User, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	out := make([]*domain.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, cloneUser(u))
	}
	return out, nil
}

func registerUser(t *testing.T, svc *CredentialService, username, pw string, role domain.Role) *domain.User {
	t.Helper()
	u, err := svc.Register(context.Background(), ports.RegisterUserInput{Username: username, Password: pw, Role: string(role)})
	if err != nil {
		t.Fatalf("register %s: %v", username, err)
	}
	return u
}

func TestCredentialService_Register_HashesPassword(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewCredentialService(repo, discardLogger)

	user := registerUser(t, svc, "alice", "pw1", domain.RoleIntern)
	if user.ID == 0 {
		t.Fatalf("expected ID to be assigned")
	}
	stored := repo.users["alice"]
	if stored.PasswordHash == "pw1" || stored.PasswordHash == "" {
		t.Fatalf("expected password to be hashed, got %q", stored.PasswordHash)
	}
	if !password.Check(stored.PasswordHash, "pw1") {
		t.Fatalf("stored hash does not match password")
	}
	if stored.Role != domain.RoleIntern {
		t.Fatalf("unexpected role: %s", stored.Role)
	}
}

func TestCredentialService_Register_Validation(t *testing.T) {
	svc := NewCredentialService(newStubUserRepo(), discardLogger)
	ctx := context.Background()

	if _, err := svc.Register(ctx, ports.RegisterUserInput{Password: "pw", Role: "admin"}); !errors.Is(err, domain.ErrBadRequest) {
		t.Fatalf("expected ErrBadRequest for empty username, got %v", err)
	}
	if _, err := svc.Register(ctx, ports.RegisterUserInput{Username: "bob", Password: "pw", Role: "root"}); !errors.Is(err, domain.ErrInvalidRole) {
		t.Fatalf("expected ErrInvalidRole, got %v", err)
	}
}

func TestCredentialService_Register_PasswordTooLong(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewCredentialService(repo, discardLogger)

	// 40 two-byte runes: short in characters, 80 bytes for bcrypt.
	long := strings.Repeat("é", 40)
	_, err := svc.Register(context.Background(), ports.RegisterUserInput{Username: "bob", Password: long, Role: "intern"})
	if !errors.Is(err, domain.ErrPasswordTooLong) {
		t.Fatalf("expected ErrPasswordTooLong, got %v", err)
	}
	if errors.Is(err, domain.ErrPersistence) {
		t.Fatalf("input error must not be reported as a store failure")
	}
	if len(repo.users) != 0 {
		t.Fatalf("no user should be stored")
	}

	registerUser(t, svc, "carol", strings.Repeat("x", 72), domain.RoleIntern)
}

func TestCredentialService_Register_Duplicate(t *testing.T) {
	svc := NewCredentialService(newStubUserRepo(), discardLogger)
	registerUser(t, svc, "bob", "pw", domain.RoleAdmin)

	_, err := svc.Register(context.Background(), ports.RegisterUserInput{Username: "bob", Password: "pw2", Role: "intern"})
	if !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestCredentialService_FindByCredentials(t *testing.T) {
	svc := NewCredentialService(newStubUserRepo(), discardLogger)
	registerUser(t, svc, "alice", "pw1", domain.RoleIntern)
	ctx := context.Background()

	user, err := svc.FindByCredentials(ctx, "alice", "pw1")
	if err != nil {
		t.Fatalf("expected match, got %v", err)
	}
	if user.Username != "alice" || user.Role != domain.RoleIntern {
		t.Fatalf("unexpected user: %+v", user)
	}

	for _, tc := range []struct{ username, password string }{
		{"alice", "wrong"},
		{"ghost", "pw1"},
		{"Alice", "pw1"},
		{"", ""},
	} {
		if _, err := svc.FindByCredentials(ctx, tc.username, tc.password); !errors.Is(err, domain.ErrInvalidCredentials) {
			t.Fatalf("FindByCredentials(%q, %q): expected ErrInvalidCredentials, got %v", tc.username, tc.password, err)
		}
	}
}

func TestCredentialService_FindByCredentials_StoreError(t *testing.T) {
	repo := newStubUserRepo()
	repo.findErr = errors.New("connection refused")
	svc := NewCredentialService(repo, discardLogger)

	_, err := svc.FindByCredentials(context.Background(), "alice", "pw1")
	if !errors.Is(err, domain.ErrPersistence) {
		t.Fatalf("expected ErrPersistence, got %v", err)
	}
}

func TestCredentialService_FindRoleByUsername(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewCredentialService(repo, discardLogger)
	registerUser(t, svc, "carol", "pw", domain.RoleAccountant)

	role, err := svc.FindRoleByUsername(context.Background(), "carol")
	if err != nil || role != domain.RoleAccountant {
		t.Fatalf("expected accountant, got %q (%v)", role, err)
	}

	if _, err := svc.FindRoleByUsername(context.Background(), "ghost"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}

	repo.findErr = errors.New("timeout")
	if _, err := svc.FindRoleByUsername(context.Background(), "carol"); !errors.Is(err, domain.ErrPersistence) {
		t.Fatalf("expected ErrPersistence, got %v", err)
	}
}

func TestCredentialService_List(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewCredentialService(repo, discardLogger)
	registerUser(t, svc, "a", "pw", domain.RoleAdmin)
	registerUser(t, svc, "b", "pw", domain.RoleIntern)

	users, err := svc.List(context.Background())
	if err != nil || len(users) != 2 {
		t.Fatalf("expected 2 users, got %d (%v)", len(users), err)
	}

	repo.listErr = errors.New("boom")
	if _, err := svc.List(context.Background()); !errors.Is(err, domain.ErrPersistence) {
		t.Fatalf("expected ErrPersistence, got %v", err)
	}
}

func TestCredentialService_EnsureAdmin(t *testing.T) {
	ctx := context.Background()

	t.Run("seeds empty store", func(t *testing.T) {
		svc := NewCredentialService(newStubUserRepo(), discardLogger)

		created, err := svc.EnsureAdmin(ctx, "root", "changeme")
		if err != nil || !created {
			t.Fatalf("expected admin to be created, got created=%v err=%v", created, err)
		}
		user, err := svc.FindByCredentials(ctx, "root", "changeme")
		if err != nil {
			t.Fatalf("seeded admin cannot log in: %v", err)
		}
		if user.Role != domain.RoleAdmin {
			t.Fatalf("expected admin role, got %q", user.Role)
		}
	})

	t.Run("skips populated store", func(t *testing.T) {
		repo := newStubUserRepo()
		svc := NewCredentialService(repo, discardLogger)
		registerUser(t, svc, "alice", "pw1", domain.RoleIntern)

		created, err := svc.EnsureAdmin(ctx, "root", "changeme")
		if err != nil || created {
			t.Fatalf("expected no seed, got created=%v err=%v", created, err)
		}
		if _, ok := repo.users["root"]; ok {
			t.Fatalf("admin must not be added to a populated store")
		}
	})

	t.Run("list error", func(t *testing.T) {
		repo := newStubUserRepo()
		repo.listErr = errors.New("connection refused")
		svc := NewCredentialService(repo, discardLogger)

		if _, err := svc.EnsureAdmin(ctx, "root", "changeme"); !errors.Is(err, domain.ErrPersistence) {
			t.Fatalf("expected ErrPersistence, got %v", err)
		}
	})
}
