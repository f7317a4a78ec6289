package service_test

import (
	"testing"

	"github.com/internhub/internhub/internal/repository"
	"github.com/internhub/internhub/internal/service"
)

func newTestShortlistService(t *testing.T) (*service.ShortlistService, repository.ShortlistRepository, int64) {
	t.Helper()

	auth, database := newTestAuthService(t)
	id := registerTestUser(t, auth, "saver@example.com")
	shortlistRepo := repository.NewShortlistRepository(database)
	return service.NewShortlistService(shortlistRepo), shortlistRepo, id
}

func TestShortlistService_AddIsIdempotent(t *testing.T) {
	shortlist, repo, userID := newTestShortlistService(t)

	if err := shortlist.Add(userID, 42); err != nil {
		t.Fatalf("first Add: %v", err)
	}
	if err := shortlist.Add(userID, 42); err != nil {
		t.Fatalf("second Add: %v", err)
	}

	count, err := repo.Count(userID, 42)
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected exactly one shortlist row, got %d", count)
	}
}

func TestShortlistService_RemoveMissingIsNoOp(t *testing.T) {
	shortlist, _, userID := newTestShortlistService(t)

	if err := shortlist.Remove(userID, 999); err != nil {
		t.Fatalf("Remove of missing row should succeed: %v", err)
	}
}

func TestShortlistService_AddThenRemove(t *testing.T) {
	shortlist, repo, userID := newTestShortlistService(t)

	if err := shortlist.Add(userID, 7); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := shortlist.Remove(userID, 7); err != nil {
		t.Fatalf("Remove: %v", err)
	}

	count, err := repo.Count(userID, 7)
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected no rows after remove, got %d", count)
	}
}

func TestShortlistService_List(t *testing.T) {
	shortlist, _, userID := newTestShortlistService(t)

	ids, err := shortlist.List(userID)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(ids) != 0 {
		t.Fatalf("expected empty shortlist, got %v", ids)
	}

	for _, id := range []int64{3, 1, 2} {
		if err := shortlist.Add(userID, id); err != nil {
			t.Fatalf("Add %d: %v", id, err)
		}
	}

	ids, err = shortlist.List(userID)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(ids) != 3 {
		t.Fatalf("expected 3 ids, got %v", ids)
	}

	seen := map[int64]bool{}
	for _, id := range ids {
		seen[id] = true
	}
	for _, want := range []int64{1, 2, 3} {
		if !seen[want] {
			t.Fatalf("expected id %d in shortlist, got %v", want, ids)
		}
	}
}
