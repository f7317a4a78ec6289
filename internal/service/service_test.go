package service_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/internhub/internhub/internal/db"
	"github.com/internhub/internhub/internal/repository"
	"github.com/internhub/internhub/internal/service"
	"github.com/jmoiron/sqlx"
)

const testJWTSecret = "test-secret-key-for-unit-tests"

func newTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")
	database, err := db.Init("sqlite", dbPath)
	if err != nil {
		t.Fatalf("init db: %v", err)
	}
	if err := db.RunMigrations(database.DB, "sqlite"); err != nil {
		t.Fatalf("run migrations: %v", err)
	}
	t.Cleanup(func() { database.Close() })

	return database
}

// newTestAuthService uses bcrypt cost 4 for fast tests
func newTestAuthService(t *testing.T) (*service.AuthService, *sqlx.DB) {
	t.Helper()

	database := newTestDB(t)
	userRepo := repository.NewUserRepository(database)
	auth := service.NewAuthService(userRepo, nil, testJWTSecret, 168*time.Hour, 4, false)
	return auth, database
}

func registerTestUser(t *testing.T, auth *service.AuthService, email string) int64 {
	t.Helper()

	user, err := auth.Register("Test User", email, "password123", "9999999999")
	if err != nil {
		t.Fatalf("register %s: %v", email, err)
	}
	return user.ID
}
