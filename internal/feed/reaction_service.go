package feed

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/metacogna-lab/be-timelesslove-v1.0.0/internal/common"
	"github.com/metacogna-lab/be-timelesslove-v1.0.0/internal/dbpg"
)

type ReactionService struct {
	memories  Memories
	reactions Reactions
}

func NewReactionService(m Memories, r Reactions) *ReactionService {
	return &ReactionService{memories: m, reactions: r}
}

// CreateReaction records one emoji reaction by the caller on a memory in
// their family unit. At most one reaction per (memory, user, emoji) exists;
// a second identical request fails with DuplicateReaction.
func (s *ReactionService) CreateReaction(ctx context.Context, memoryID, userID, familyUnitID uuid.UUID, emoji string) (*dbpg.MemoryReaction, error) {
	if err := common.ValidateEmoji(emoji); err != nil {
		return nil, &Error{Kind: KindInvalidEmoji, Message: err.Error()}
	}

	if _, err := memoryInFamily(ctx, s.memories, memoryID, familyUnitID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	reaction := &dbpg.MemoryReaction{
		ID:        uuid.New(),
		MemoryID:  memoryID,
		UserID:    userID,
		Emoji:     emoji,
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := s.reactions.AddReaction(ctx, reaction)
	if err != nil {
		return nil, err
	}
	if !created {
		return nil, &Error{Kind: KindDuplicateReaction, Message: "reaction already exists"}
	}
	return reaction, nil
}

// DeleteReaction removes a reaction owned by the caller. Hard delete; there
// is no soft-delete for reactions.
func (s *ReactionService) DeleteReaction(ctx context.Context, reactionID, userID uuid.UUID) error {
	reaction, err := s.reactions.GetReaction(ctx, reactionID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errReactionNotFound()
	}
	if err != nil {
		return err
	}
	if reaction.UserID != userID {
		return errReactionNotFound()
	}

	return s.reactions.DeleteReaction(ctx, reactionID)
}

func (s *ReactionService) ReactionsForMemory(ctx context.Context, memoryID, familyUnitID uuid.UUID) ([]dbpg.MemoryReaction, error) {
	if _, err := memoryInFamily(ctx, s.memories, memoryID, familyUnitID); err != nil {
		return nil, err
	}
	return s.reactions.ReactionsForMemory(ctx, memoryID)
}

// UserReactions returns the emojis the given user has reacted with on one
// memory, in reaction order.
func (s *ReactionService) UserReactions(ctx context.Context, memoryID, userID, familyUnitID uuid.UUID) ([]string, error) {
	if _, err := memoryInFamily(ctx, s.memories, memoryID, familyUnitID); err != nil {
		return nil, err
	}
	return s.reactions.UserReactions(ctx, memoryID, userID)
}
