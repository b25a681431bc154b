package feed

import (
	"context"

	"github.com/google/uuid"

	"github.com/metacogna-lab/be-timelesslove-v1.0.0/internal/dbpg"
)

// Engagement holds the derived social-signal counters for one memory. It is
// recomputed on every feed request and never cached across requests.
type Engagement struct {
	MemoryID         uuid.UUID      `json:"memory_id"`
	ReactionCount    int            `json:"reaction_count"`
	CommentCount     int            `json:"comment_count"`
	UniqueReactors   int            `json:"unique_reactors"`
	ReactionsByEmoji map[string]int `json:"reactions_by_emoji"`
}

// MemoryEngagement computes the engagement counters for one memory after
// validating that it belongs to the given family unit.
func (s *FeedService) MemoryEngagement(ctx context.Context, memoryID, familyUnitID uuid.UUID) (Engagement, error) {
	if _, err := memoryInFamily(ctx, s.memories, memoryID, familyUnitID); err != nil {
		return Engagement{}, err
	}

	reactions, err := s.reactions.ReactionsForMemory(ctx, memoryID)
	if err != nil {
		return Engagement{}, err
	}
	comments, err := s.comments.CommentsForMemory(ctx, memoryID)
	if err != nil {
		return Engagement{}, err
	}

	return computeEngagement(memoryID, reactions, comments), nil
}

// computeEngagement is the pure aggregation core: no shared state, safe to
// run concurrently for many memories.
func computeEngagement(memoryID uuid.UUID, reactions []dbpg.MemoryReaction, comments []dbpg.MemoryComment) Engagement {
	histogram := reactionHistogram(reactions)

	total := 0
	for _, n := range histogram {
		total += n
	}

	return Engagement{
		MemoryID:         memoryID,
		ReactionCount:    total,
		CommentCount:     topLevelCount(comments),
		UniqueReactors:   uniqueReactorCount(reactions),
		ReactionsByEmoji: histogram,
	}
}

func reactionHistogram(reactions []dbpg.MemoryReaction) map[string]int {
	histogram := make(map[string]int, len(reactions))
	for _, r := range reactions {
		histogram[r.Emoji]++
	}
	return histogram
}

func uniqueReactorCount(reactions []dbpg.MemoryReaction) int {
	seen := make(map[uuid.UUID]struct{}, len(reactions))
	for _, r := range reactions {
		seen[r.UserID] = struct{}{}
	}
	return len(seen)
}

// topLevelCount counts parent-less comments; replies never contribute to
// comment_count.
func topLevelCount(comments []dbpg.MemoryComment) int {
	n := 0
	for _, c := range comments {
		if c.ParentCommentID == nil {
			n++
		}
	}
	return n
}
