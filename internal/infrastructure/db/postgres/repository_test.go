package postgres

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/cogip/cogip-api/internal/core/domain"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := Open(context.Background(), Config{Driver: "sqlite", DSN: ":memory:", LogLevel: gormlogger.Silent})
	require.NoError(t, err)
	require.NoError(t, Migrate(context.Background(), db))
	t.Cleanup(func() { _ = Close(db) })
	return db
}

func TestOpen_UnsupportedDriver(t *testing.T) {
	_, err := Open(context.Background(), Config{Driver: "oracle"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported database driver")
}

func TestUserRepository_CreateAndFind(t *testing.T) {
	repo := NewUserRepository(openTestDB(t))
	ctx := context.Background()

	user := &domain.User{Username: "alice", PasswordHash: "hash", Role: domain.RoleIntern, CreatedAt: time.Now().UTC()}
	require.NoError(t, repo.Create(ctx, user))
	assert.NotZero(t, user.ID)

	found, err := repo.FindByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, user.ID, found.ID)
	assert.Equal(t, domain.RoleIntern, found.Role)
	assert.Equal(t, "hash", found.PasswordHash)
}

func TestUserRepository_UsernameIsCaseSensitive(t *testing.T) {
	repo := NewUserRepository(openTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &domain.User{Username: "alice", PasswordHash: "h", Role: domain.RoleAdmin, CreatedAt: time.Now()}))

	_, err := repo.FindByUsername(ctx, "Alice")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestUserRepository_Duplicate(t *testing.T) {
	repo := NewUserRepository(openTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &domain.User{Username: "bob", PasswordHash: "h1", Role: domain.RoleAdmin, CreatedAt: time.Now()}))
	err := repo.Create(ctx, &domain.User{Username: "bob", PasswordHash: "h2", Role: domain.RoleIntern, CreatedAt: time.Now()})
	assert.ErrorIs(t, err, domain.ErrUserExists)

	found, err := repo.FindByUsername(ctx, "bob")
	require.NoError(t, err)
	assert.Equal(t, "h1", found.PasswordHash, "existing user must not be overwritten")
}

func TestUserRepository_ConcurrentDuplicate(t *testing.T) {
	repo := NewUserRepository(openTestDB(t))
	ctx := context.Background()

	const n = 10
	errs := make(chan error, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- repo.Create(ctx, &domain.User{Username: "carol", PasswordHash: "h", Role: domain.RoleIntern, CreatedAt: time.Now()})
		}()
	}
	wg.Wait()
	close(errs)

	created := 0
	for err := range errs {
		if err == nil {
			created++
			continue
		}
		assert.ErrorIs(t, err, domain.ErrUserExists)
	}
	assert.Equal(t, 1, created)

	users, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestUserRepository_List(t *testing.T) {
	repo := NewUserRepository(openTestDB(t))
	ctx := context.Background()

	for _, name := range []string{"a", "b", "c"} {
		require.NoError(t, repo.Create(ctx, &domain.User{Username: name, PasswordHash: "h", Role: domain.RoleIntern, CreatedAt: time.Now()}))
	}

	users, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, users, 3)
	assert.Equal(t, "a", users[0].Username)
	assert.Equal(t, "c", users[2].Username)
}

func TestCompanyRepository(t *testing.T) {
	repo := NewCompanyRepository(openTestDB(t))
	ctx := context.Background()

	c := &domain.Company{Name: "Acme", Country: "BE", VAT: "BE0123456789", Type: "client", CreatedAt: time.Now().UTC()}
	require.NoError(t, repo.Create(ctx, c))
	assert.Equal(t, int64(1), c.ID)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "BE0123456789", list[0].VAT)
}

func TestContactRepository(t *testing.T) {
	repo := NewContactRepository(openTestDB(t))
	ctx := context.Background()

	c := &domain.Contact{Name: "Jean", Email: "jean@acme.be", Phone: "+32 2 000", CompanyID: 1, CreatedAt: time.Now().UTC()}
	require.NoError(t, repo.Create(ctx, c))
	assert.NotZero(t, c.ID)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, int64(1), list[0].CompanyID)
}

func TestInvoiceRepository(t *testing.T) {
	repo := NewInvoiceRepository(openTestDB(t))
	ctx := context.Background()
	due := time.Date(2026, 5, 31, 0, 0, 0, 0, time.UTC)

	inv := &domain.Invoice{Reference: "F-001", CompanyID: 2, Amount: 99.95, DueDate: due, CreatedAt: time.Now().UTC()}
	require.NoError(t, repo.Create(ctx, inv))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "F-001", list[0].Reference)
	assert.InDelta(t, 99.95, list[0].Amount, 0.001)
	assert.True(t, due.Equal(list[0].DueDate))

	err = repo.Create(ctx, &domain.Invoice{Reference: "F-001", CompanyID: 2, Amount: 1, DueDate: due, CreatedAt: time.Now()})
	assert.Error(t, err, "references are unique")
}

func TestRepository_ClosedPoolFails(t *testing.T) {
	db := openTestDB(t)
	repo := NewCompanyRepository(db)
	require.NoError(t, Close(db))

	_, err := repo.List(context.Background())
	assert.Error(t, err)
	assert.Error(t, Ping(context.Background(), db))
}
