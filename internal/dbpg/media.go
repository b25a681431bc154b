package dbpg

import (
	"time"

	"github.com/google/uuid"
)

// MemoryMedia is a media attachment reference. Upload, thumbnailing and
// signed-URL generation happen in a separate service; the feed carries these
// rows verbatim.
type MemoryMedia struct {
	MediaID          uuid.UUID `gorm:"type:uuid;primaryKey;column:id" json:"id"`
	MemoryID         uuid.UUID `gorm:"type:uuid;column:memory_id;not null;index" json:"memory_id"`
	StoragePath      string    `gorm:"column:storage_path;not null" json:"storage_path"`
	StorageBucket    string    `gorm:"column:storage_bucket;default:memories" json:"storage_bucket"`
	FileName         string    `gorm:"column:file_name" json:"file_name"`
	MimeType         string    `gorm:"column:mime_type" json:"mime_type"`
	FileSize         int64     `gorm:"column:file_size" json:"file_size"`
	ThumbnailPath    *string   `gorm:"column:thumbnail_path" json:"thumbnail_path,omitempty"`
	ProcessingStatus string    `gorm:"column:processing_status;type:varchar(16);default:pending" json:"processing_status"`
	CreatedAt        time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt        time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (MemoryMedia) TableName() string { return "memory_media" }
