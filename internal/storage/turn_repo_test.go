package storage

import (
	"context"
	"testing"
)

func newTestDB(t *testing.T) *TurnRepository {
	t.Helper()

	db, err := New(":memory:")
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	if err := Migrate(db); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	return NewTurnRepository(db)
}

func TestTurnRepository_AppendAndGetRecent(t *testing.T) {
	repo := newTestDB(t)
	ctx := context.Background()

	messages := []struct {
		role    Role
		content string
	}{
		{RoleUser, "first question"},
		{RoleAssistant, "first answer"},
		{RoleUser, "second question"},
		{RoleAssistant, "second answer"},
	}

	for _, m := range messages {
		if err := repo.Append(ctx, "session-1", m.role, m.content); err != nil {
			t.Fatalf("failed to append: %v", err)
		}
	}

	turns, err := repo.GetRecent(ctx, "session-1", 10)
	if err != nil {
		t.Fatalf("failed to get turns: %v", err)
	}

	if len(turns) != 4 {
		t.Fatalf("expected 4 turns, got %d", len(turns))
	}

	for i, m := range messages {
		if turns[i].Role != m.role {
			t.Errorf("turn %d: expected role %q, got %q", i, m.role, turns[i].Role)
		}
		if turns[i].Content != m.content {
			t.Errorf("turn %d: expected content %q, got %q", i, m.content, turns[i].Content)
		}
	}
}

func TestTurnRepository_GetRecentLimit(t *testing.T) {
	repo := newTestDB(t)
	ctx := context.Background()

	for i := 0; i < 10; i++ {
		role := RoleUser
		if i%2 == 1 {
			role = RoleAssistant
		}
		if err := repo.Append(ctx, "session-1", role, "message"); err != nil {
			t.Fatalf("failed to append: %v", err)
		}
	}

	turns, err := repo.GetRecent(ctx, "session-1", 4)
	if err != nil {
		t.Fatalf("failed to get turns: %v", err)
	}

	if len(turns) != 4 {
		t.Fatalf("expected 4 turns, got %d", len(turns))
	}

	// Last 4 of 10: user, assistant, user, assistant
	want := []Role{RoleUser, RoleAssistant, RoleUser, RoleAssistant}
	for i, r := range want {
		if turns[i].Role != r {
			t.Errorf("turn %d: expected role %q, got %q", i, r, turns[i].Role)
		}
	}

	// Returned in chronological order: ids strictly ascending.
	for i := 1; i < len(turns); i++ {
		if turns[i].ID <= turns[i-1].ID {
			t.Errorf("turns out of order: id %d followed by %d", turns[i-1].ID, turns[i].ID)
		}
	}
}

func TestTurnRepository_GetRecentEmptySession(t *testing.T) {
	repo := newTestDB(t)

	turns, err := repo.GetRecent(context.Background(), "no-such-session", 6)
	if err != nil {
		t.Fatalf("expected no error for empty session, got %v", err)
	}
	if len(turns) != 0 {
		t.Errorf("expected no turns, got %d", len(turns))
	}
}

func TestTurnRepository_SessionIsolation(t *testing.T) {
	repo := newTestDB(t)
	ctx := context.Background()

	if err := repo.Append(ctx, "session-a", RoleUser, "hello from a"); err != nil {
		t.Fatalf("failed to append: %v", err)
	}
	if err := repo.Append(ctx, "session-b", RoleUser, "hello from b"); err != nil {
		t.Fatalf("failed to append: %v", err)
	}

	turns, err := repo.GetRecent(ctx, "session-a", 10)
	if err != nil {
		t.Fatalf("failed to get turns: %v", err)
	}

	if len(turns) != 1 {
		t.Fatalf("expected 1 turn, got %d", len(turns))
	}
	if turns[0].Content != "hello from a" {
		t.Errorf("unexpected content: %q", turns[0].Content)
	}
}

func TestTurnRepository_DeleteSession(t *testing.T) {
	repo := newTestDB(t)
	ctx := context.Background()

	if err := repo.Append(ctx, "session-a", RoleUser, "keep me out"); err != nil {
		t.Fatalf("failed to append: %v", err)
	}
	if err := repo.Append(ctx, "session-b", RoleUser, "survivor"); err != nil {
		t.Fatalf("failed to append: %v", err)
	}

	if err := repo.DeleteSession(ctx, "session-a"); err != nil {
		t.Fatalf("failed to delete session: %v", err)
	}

	turns, err := repo.GetRecent(ctx, "session-a", 10)
	if err != nil {
		t.Fatalf("failed to get turns: %v", err)
	}
	if len(turns) != 0 {
		t.Errorf("expected deleted session to be empty, got %d turns", len(turns))
	}

	turns, err = repo.GetRecent(ctx, "session-b", 10)
	if err != nil {
		t.Fatalf("failed to get turns: %v", err)
	}
	if len(turns) != 1 {
		t.Errorf("expected other session untouched, got %d turns", len(turns))
	}
}
