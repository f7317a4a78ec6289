package repository_test

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/internhub/internhub/internal/db"
	"github.com/internhub/internhub/internal/model"
	"github.com/internhub/internhub/internal/repository"
	"github.com/jmoiron/sqlx"
)

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

func createTestUser(t *testing.T, users repository.UserRepository, email string) *model.User {
	t.Helper()

	user := &model.User{
		Email:        email,
		PasswordHash: "$2a$04$notarealhashbutlookslikeone",
		Mobile:       "9999999999",
	}
	if err := users.Create(user); err != nil {
		t.Fatalf("create user %s: %v", email, err)
	}
	return user
}

func TestUserRepository_DuplicateEmailConstraint(t *testing.T) {
	database := newTestDB(t)
	users := repository.NewUserRepository(database)

	createTestUser(t, users, "unique@example.com")

	err := users.Create(&model.User{
		Email:        "unique@example.com",
		PasswordHash: "hash",
	})
	if !errors.Is(err, repository.ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}
}

func TestUserRepository_ByIDNotFound(t *testing.T) {
	database := newTestDB(t)
	users := repository.NewUserRepository(database)

	_, err := users.ByID(12345)
	if !errors.Is(err, repository.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserRepository_UpdateProfileMissingUser(t *testing.T) {
	database := newTestDB(t)
	users := repository.NewUserRepository(database)

	err := users.UpdateProfile(&model.User{ID: 54321})
	if !errors.Is(err, repository.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestApplicationRepository_UniqueConstraintClosesRace(t *testing.T) {
	database := newTestDB(t)
	users := repository.NewUserRepository(database)
	apps := repository.NewApplicationRepository(database)

	user := createTestUser(t, users, "race@example.com")

	first := &model.Application{UserID: user.ID, InternshipID: 10, AppliedOn: time.Now().UTC()}
	if err := apps.Create(first); err != nil {
		t.Fatalf("first Create: %v", err)
	}

	// A second insert for the same pair must fail at the storage level, with
	// no preceding existence check involved.
	second := &model.Application{UserID: user.ID, InternshipID: 10, AppliedOn: time.Now().UTC()}
	err := apps.Create(second)
	if !errors.Is(err, repository.ErrAlreadyApplied) {
		t.Fatalf("expected ErrAlreadyApplied, got %v", err)
	}

	// A different user applying to the same internship is fine
	other := createTestUser(t, users, "other@example.com")
	third := &model.Application{UserID: other.ID, InternshipID: 10, AppliedOn: time.Now().UTC()}
	if err := apps.Create(third); err != nil {
		t.Fatalf("Create for other user: %v", err)
	}
}

func TestShortlistRepository_ConflictIsNoOp(t *testing.T) {
	database := newTestDB(t)
	users := repository.NewUserRepository(database)
	shortlists := repository.NewShortlistRepository(database)

	user := createTestUser(t, users, "shortlist@example.com")

	if err := shortlists.Add(user.ID, 5); err != nil {
		t.Fatalf("first Add: %v", err)
	}
	if err := shortlists.Add(user.ID, 5); err != nil {
		t.Fatalf("conflicting Add should be a no-op: %v", err)
	}

	count, err := shortlists.Count(user.ID, 5)
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected one row, got %d", count)
	}
}

func TestShortlistRepository_InternshipIDsEmpty(t *testing.T) {
	database := newTestDB(t)
	users := repository.NewUserRepository(database)
	shortlists := repository.NewShortlistRepository(database)

	user := createTestUser(t, users, "empty@example.com")

	ids, err := shortlists.InternshipIDs(user.ID)
	if err != nil {
		t.Fatalf("InternshipIDs: %v", err)
	}
	if ids == nil || len(ids) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", ids)
	}
}
