package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// TurnRepository persists conversation turns in SQLite.
type TurnRepository struct {
	db *sql.DB
}

// NewTurnRepository creates a new turn repository.
func NewTurnRepository(db *sql.DB) *TurnRepository {
	return &TurnRepository{db: db}
}

// Append adds a turn to the end of a session's conversation log.
func (r *TurnRepository) Append(ctx context.Context, sessionID string, role Role, content string) error {
	query := `
		INSERT INTO conversation_turns (session_id, role, content, created_at)
		VALUES (?, ?, ?, ?)`

	// Timestamps come from Go rather than SQLite so same-second appends keep
	// sub-second ordering; the autoincrement id breaks any remaining ties.
	_, err := r.db.ExecContext(ctx, query, sessionID, string(role), content, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to append turn: %w", err)
	}

	return nil
}

// GetRecent returns the last limit turns of a session in chronological order.
// A session with no history returns an empty slice.
func (r *TurnRepository) GetRecent(ctx context.Context, sessionID string, limit int) ([]Turn, error) {
	query := `
		SELECT id, session_id, role, content, created_at
		FROM conversation_turns
		WHERE session_id = ?
		ORDER BY created_at DESC, id DESC
		LIMIT ?`

	rows, err := r.db.QueryContext(ctx, query, sessionID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query turns: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var turns []Turn
	for rows.Next() {
		var t Turn
		var role string
		if err := rows.Scan(&t.ID, &t.SessionID, &role, &t.Content, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan turn: %w", err)
		}
		t.Role = Role(role)
		turns = append(turns, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate turns: %w", err)
	}

	// The query selects the newest turns; reverse into chronological order.
	for i, j := 0, len(turns)-1; i < j; i, j = i+1, j-1 {
		turns[i], turns[j] = turns[j], turns[i]
	}

	return turns, nil
}

// DeleteSession removes every turn belonging to a session.
func (r *TurnRepository) DeleteSession(ctx context.Context, sessionID string) error {
	query := `DELETE FROM conversation_turns WHERE session_id = ?`

	if _, err := r.db.ExecContext(ctx, query, sessionID); err != nil {
		return fmt.Errorf("failed to delete session turns: %w", err)
	}

	return nil
}
