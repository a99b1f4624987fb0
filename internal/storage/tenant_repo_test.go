package storage

import (
	"context"
	"errors"
	"testing"
)

func newTenantRepo(t *testing.T) *TenantRepository {
	t.Helper()

	db, err := New(":memory:")
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	if err := Migrate(db); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	return NewTenantRepository(db)
}

func TestTenantRepository_CreateAndExists(t *testing.T) {
	repo := newTenantRepo(t)
	ctx := context.Background()

	exists, err := repo.Exists(ctx, "tenant-1")
	if err != nil {
		t.Fatalf("failed to check tenant: %v", err)
	}
	if exists {
		t.Error("expected tenant to not exist before create")
	}

	if err := repo.Create(ctx, "tenant-1"); err != nil {
		t.Fatalf("failed to create tenant: %v", err)
	}

	exists, err = repo.Exists(ctx, "tenant-1")
	if err != nil {
		t.Fatalf("failed to check tenant: %v", err)
	}
	if !exists {
		t.Error("expected tenant to exist after create")
	}
}

func TestTenantRepository_CreateIdempotent(t *testing.T) {
	repo := newTenantRepo(t)
	ctx := context.Background()

	if err := repo.Create(ctx, "tenant-1"); err != nil {
		t.Fatalf("failed to create tenant: %v", err)
	}
	if err := repo.Create(ctx, "tenant-1"); err != nil {
		t.Fatalf("expected second create to succeed, got %v", err)
	}
}

func TestTenantRepository_Delete(t *testing.T) {
	repo := newTenantRepo(t)
	ctx := context.Background()

	if err := repo.Create(ctx, "tenant-1"); err != nil {
		t.Fatalf("failed to create tenant: %v", err)
	}

	if err := repo.Delete(ctx, "tenant-1"); err != nil {
		t.Fatalf("failed to delete tenant: %v", err)
	}

	exists, err := repo.Exists(ctx, "tenant-1")
	if err != nil {
		t.Fatalf("failed to check tenant: %v", err)
	}
	if exists {
		t.Error("expected tenant to not exist after delete")
	}
}

func TestTenantRepository_DeleteUnknown(t *testing.T) {
	repo := newTenantRepo(t)

	err := repo.Delete(context.Background(), "no-such-tenant")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
