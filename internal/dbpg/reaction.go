package dbpg

import (
	"time"

	"github.com/google/uuid"
)

// MemoryReaction is one emoji reaction by one user on one memory. The
// composite unique index enforces at most one row per (memory, user, emoji).
type MemoryReaction struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;column:id" json:"id"`
	MemoryID  uuid.UUID `gorm:"type:uuid;column:memory_id;not null;uniqueIndex:idx_memory_user_emoji" json:"memory_id"`
	UserID    uuid.UUID `gorm:"type:uuid;column:user_id;not null;uniqueIndex:idx_memory_user_emoji" json:"user_id"`
	Emoji     string    `gorm:"column:emoji;type:varchar(16);not null;uniqueIndex:idx_memory_user_emoji" json:"emoji"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (MemoryReaction) TableName() string { return "memory_reactions" }
