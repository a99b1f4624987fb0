package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// TenantRepository tracks which tenant partitions exist.
type TenantRepository struct {
	db *sql.DB
}

// NewTenantRepository creates a new tenant repository.
func NewTenantRepository(db *sql.DB) *TenantRepository {
	return &TenantRepository{db: db}
}

// Exists reports whether a tenant has been registered.
func (r *TenantRepository) Exists(ctx context.Context, tenantID string) (bool, error) {
	query := `SELECT 1 FROM tenants WHERE id = ?`

	var one int
	err := r.db.QueryRowContext(ctx, query, tenantID).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check tenant: %w", err)
	}

	return true, nil
}

// Create registers a tenant. Registering an existing tenant is a no-op.
func (r *TenantRepository) Create(ctx context.Context, tenantID string) error {
	query := `INSERT OR IGNORE INTO tenants (id, created_at) VALUES (?, ?)`

	if _, err := r.db.ExecContext(ctx, query, tenantID, time.Now().UTC()); err != nil {
		return fmt.Errorf("failed to create tenant: %w", err)
	}

	return nil
}

// Delete removes a tenant registration. Deleting an unknown tenant returns
// ErrNotFound.
func (r *TenantRepository) Delete(ctx context.Context, tenantID string) error {
	query := `DELETE FROM tenants WHERE id = ?`

	result, err := r.db.ExecContext(ctx, query, tenantID)
	if err != nil {
		return fmt.Errorf("failed to delete tenant: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check deleted rows: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}

	return nil
}
