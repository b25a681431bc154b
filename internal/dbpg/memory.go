package dbpg

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Memory lifecycle states.
const (
	StatusDraft     = "draft"
	StatusPublished = "published"
	StatusArchived  = "archived"
)

// Memory is one content item owned by a user inside a family unit. Every
// query against this table is scoped to a single family_unit_id.
type Memory struct {
	ID           uuid.UUID      `gorm:"type:uuid;primaryKey;column:id" json:"id"`
	UserID       uuid.UUID      `gorm:"type:uuid;column:user_id;not null" json:"user_id"`
	FamilyUnitID uuid.UUID      `gorm:"type:uuid;column:family_unit_id;not null;index" json:"family_unit_id"`
	Title        *string        `gorm:"column:title" json:"title,omitempty"`
	Description  *string        `gorm:"column:description" json:"description,omitempty"`
	MemoryDate   *time.Time     `gorm:"column:memory_date;type:date" json:"memory_date,omitempty"`
	Location     *string        `gorm:"column:location" json:"location,omitempty"`
	Tags         pq.StringArray `gorm:"column:tags;type:text[]" json:"tags"`
	Status       string         `gorm:"column:status;type:varchar(16);default:draft;index" json:"status"`
	CreatedAt    time.Time      `gorm:"column:created_at" json:"created_at"`
	UpdatedAt    time.Time      `gorm:"column:updated_at" json:"updated_at"`

	Media []MemoryMedia `gorm:"foreignKey:MemoryID" json:"media"`
}

func (Memory) TableName() string { return "memories" }
