package dbpg

import (
	"time"

	"github.com/google/uuid"
)

// MemoryComment is one threaded comment on a memory. DeletedAt is a manual
// soft-delete marker, not gorm.DeletedAt: soft-deleted rows must stay
// addressable as parents of replies that were created before the delete.
type MemoryComment struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey;column:id" json:"id"`
	MemoryID        uuid.UUID  `gorm:"type:uuid;column:memory_id;not null;index" json:"memory_id"`
	UserID          uuid.UUID  `gorm:"type:uuid;column:user_id;not null" json:"user_id"`
	ParentCommentID *uuid.UUID `gorm:"type:uuid;column:parent_comment_id" json:"parent_comment_id,omitempty"`
	Content         string     `gorm:"column:content;type:text;not null" json:"content"`
	CreatedAt       time.Time  `gorm:"column:created_at" json:"created_at"`
	UpdatedAt       time.Time  `gorm:"column:updated_at" json:"updated_at"`
	DeletedAt       *time.Time `gorm:"column:deleted_at;index" json:"deleted_at,omitempty"`
}

func (MemoryComment) TableName() string { return "memory_comments" }
