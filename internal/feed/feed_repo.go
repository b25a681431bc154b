package feed

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/metacogna-lab/be-timelesslove-v1.0.0/internal/dbpg"
)

type FeedRepository struct {
	db *gorm.DB
}

func NewFeedRepository(db *gorm.DB) *FeedRepository {
	return &FeedRepository{db: db}
}

// --------- MEMORIES ---------
type Memories interface {
	GetMemory(ctx context.Context, id, familyUnitID uuid.UUID) (*dbpg.Memory, error)
	ListMemories(ctx context.Context, familyUnitID uuid.UUID, filters Filters) ([]dbpg.Memory, error)
}

func (r *FeedRepository) GetMemory(ctx context.Context, id, familyUnitID uuid.UUID) (*dbpg.Memory, error) {
	var memory dbpg.Memory
	err := r.db.WithContext(ctx).
		Preload("Media").
		First(&memory, "id = ? AND family_unit_id = ?", id, familyUnitID).Error
	if err != nil {
		return nil, err
	}
	return &memory, nil
}

// ListMemories fetches the feed candidate set for one family unit. Status,
// owner, tag and date-range predicates are pushed down to Postgres; free-text
// search stays in the service. The order is fixed so repeated requests see
// the same candidate sequence.
func (r *FeedRepository) ListMemories(ctx context.Context, familyUnitID uuid.UUID, filters Filters) ([]dbpg.Memory, error) {
	q := r.db.WithContext(ctx).
		Preload("Media").
		Where("family_unit_id = ?", familyUnitID).
		Where("status = ?", filters.Status)

	if filters.UserID != nil {
		q = q.Where("user_id = ?", *filters.UserID)
	}
	if len(filters.Tags) > 0 {
		q = q.Where("tags @> ?", pq.Array(filters.Tags))
	}
	if filters.DateFrom != nil {
		q = q.Where("memory_date >= ?", *filters.DateFrom)
	}
	if filters.DateTo != nil {
		q = q.Where("memory_date <= ?", *filters.DateTo)
	}

	var memories []dbpg.Memory
	err := q.Order("created_at DESC, id ASC").Find(&memories).Error
	return memories, err
}

// --------- REACTIONS ---------
type Reactions interface {
	AddReaction(ctx context.Context, reaction *dbpg.MemoryReaction) (bool, error)
	GetReaction(ctx context.Context, id uuid.UUID) (*dbpg.MemoryReaction, error)
	DeleteReaction(ctx context.Context, id uuid.UUID) error
	ReactionsForMemory(ctx context.Context, memoryID uuid.UUID) ([]dbpg.MemoryReaction, error)
	UserReactions(ctx context.Context, memoryID, userID uuid.UUID) ([]string, error)
}

// AddReaction inserts the reaction with conflict handling on the
// (memory, user, emoji) unique index. Returns false when the row already
// existed. The atomic insert-if-absent closes the race a check-then-insert
// sequence would leave under concurrent identical requests.
func (r *FeedRepository) AddReaction(ctx context.Context, reaction *dbpg.MemoryReaction) (bool, error) {
	res := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "memory_id"}, {Name: "user_id"}, {Name: "emoji"}},
		DoNothing: true,
	}).Create(reaction)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *FeedRepository) GetReaction(ctx context.Context, id uuid.UUID) (*dbpg.MemoryReaction, error) {
	var reaction dbpg.MemoryReaction
	err := r.db.WithContext(ctx).First(&reaction, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &reaction, nil
}

func (r *FeedRepository) DeleteReaction(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&dbpg.MemoryReaction{}, "id = ?", id).Error
}

func (r *FeedRepository) ReactionsForMemory(ctx context.Context, memoryID uuid.UUID) ([]dbpg.MemoryReaction, error) {
	var reactions []dbpg.MemoryReaction
	err := r.db.WithContext(ctx).
		Where("memory_id = ?", memoryID).
		Order("created_at ASC").
		Find(&reactions).Error
	return reactions, err
}

func (r *FeedRepository) UserReactions(ctx context.Context, memoryID, userID uuid.UUID) ([]string, error) {
	var emojis []string
	err := r.db.WithContext(ctx).
		Model(&dbpg.MemoryReaction{}).
		Where("memory_id = ? AND user_id = ?", memoryID, userID).
		Order("created_at ASC").
		Pluck("emoji", &emojis).Error
	return emojis, err
}

// --------- COMMENTS ---------
type Comments interface {
	CreateComment(ctx context.Context, comment *dbpg.MemoryComment) error
	// GetComment returns the row regardless of soft-delete state; callers
	// decide whether a deleted row is addressable (depth walks) or not
	// (updates, deletes).
	GetComment(ctx context.Context, id uuid.UUID) (*dbpg.MemoryComment, error)
	UpdateComment(ctx context.Context, comment *dbpg.MemoryComment) error
	SoftDeleteComment(ctx context.Context, id uuid.UUID, at time.Time) error
	// CommentsForMemory returns the visible (non-soft-deleted) comments in
	// ascending creation order, the order tree building relies on.
	CommentsForMemory(ctx context.Context, memoryID uuid.UUID) ([]dbpg.MemoryComment, error)
}

func (r *FeedRepository) CreateComment(ctx context.Context, comment *dbpg.MemoryComment) error {
	return r.db.WithContext(ctx).Create(comment).Error
}

func (r *FeedRepository) GetComment(ctx context.Context, id uuid.UUID) (*dbpg.MemoryComment, error) {
	var comment dbpg.MemoryComment
	err := r.db.WithContext(ctx).First(&comment, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

func (r *FeedRepository) UpdateComment(ctx context.Context, comment *dbpg.MemoryComment) error {
	return r.db.WithContext(ctx).Save(comment).Error
}

func (r *FeedRepository) SoftDeleteComment(ctx context.Context, id uuid.UUID, at time.Time) error {
	return r.db.WithContext(ctx).
		Model(&dbpg.MemoryComment{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"deleted_at": at, "updated_at": at}).Error
}

func (r *FeedRepository) CommentsForMemory(ctx context.Context, memoryID uuid.UUID) ([]dbpg.MemoryComment, error) {
	var comments []dbpg.MemoryComment
	err := r.db.WithContext(ctx).
		Where("memory_id = ? AND deleted_at IS NULL", memoryID).
		Order("created_at ASC, id ASC").
		Find(&comments).Error
	return comments, err
}

// memoryInFamily resolves a memory scoped to one family unit, translating a
// missing row into the conflated not-found error.
func memoryInFamily(ctx context.Context, memories Memories, memoryID, familyUnitID uuid.UUID) (*dbpg.Memory, error) {
	memory, err := memories.GetMemory(ctx, memoryID, familyUnitID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errMemoryNotFound()
	}
	if err != nil {
		return nil, err
	}
	return memory, nil
}
