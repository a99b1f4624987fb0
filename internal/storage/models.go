package storage

import "time"

// Role identifies the author of a conversation turn.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Turn represents one message in a session's conversation log.
// Turns form an append-only log; ordering is by timestamp with the row id as
// a tiebreaker for same-instant appends.
type Turn struct {
	ID        int64
	SessionID string
	Role      Role
	Content   string
	CreatedAt time.Time
}

// TenantRecord represents a registered tenant partition.
type TenantRecord struct {
	ID        string
	CreatedAt time.Time
}
