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

// maxNestingDepth caps how many parent hops a reply chain may have. A comment
// whose parent already sits at this depth is rejected.
const maxNestingDepth = 3

type CommentService struct {
	memories Memories
	comments Comments
}

func NewCommentService(m Memories, c Comments) *CommentService {
	return &CommentService{memories: m, comments: c}
}

type CreateCommentInput struct {
	Content         string
	ParentCommentID *uuid.UUID
}

func (s *CommentService) CreateComment(ctx context.Context, memoryID, userID, familyUnitID uuid.UUID, in CreateCommentInput) (*dbpg.MemoryComment, error) {
	content, err := common.ValidateCommentContent(in.Content)
	if err != nil {
		return nil, &Error{Kind: KindEmptyOrOversizeContent, Message: err.Error()}
	}

	if _, err := memoryInFamily(ctx, s.memories, memoryID, familyUnitID); err != nil {
		return nil, err
	}

	if in.ParentCommentID != nil {
		parent, err := s.comments.GetComment(ctx, *in.ParentCommentID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errCommentNotFound()
		}
		if err != nil {
			return nil, err
		}
		if parent.MemoryID != memoryID {
			return nil, errCommentNotFound()
		}

		depth, err := s.commentDepth(ctx, parent)
		if err != nil {
			return nil, err
		}
		if depth >= maxNestingDepth {
			return nil, &Error{Kind: KindMaxNestingDepthExceeded, Message: "maximum nesting depth of 3 exceeded"}
		}
	}

	now := time.Now().UTC()
	comment := &dbpg.MemoryComment{
		ID:              uuid.New(),
		MemoryID:        memoryID,
		UserID:          userID,
		ParentCommentID: in.ParentCommentID,
		Content:         content,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := s.comments.CreateComment(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// commentDepth walks the parent chain upward from the given comment, counting
// hops, stopping at a root or as soon as the cap is reached. One point lookup
// per hop, so the walk costs at most maxNestingDepth lookups. Soft-deleted
// ancestors still count: they remain addressable as parents.
func (s *CommentService) commentDepth(ctx context.Context, comment *dbpg.MemoryComment) (int, error) {
	depth := 0
	current := comment
	for depth < maxNestingDepth && current.ParentCommentID != nil {
		parent, err := s.comments.GetComment(ctx, *current.ParentCommentID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			break
		}
		if err != nil {
			return 0, err
		}
		depth++
		current = parent
	}
	return depth, nil
}

// UpdateComment replaces the content of a live comment. Author-only.
func (s *CommentService) UpdateComment(ctx context.Context, commentID, userID uuid.UUID, content string) (*dbpg.MemoryComment, error) {
	trimmed, err := common.ValidateCommentContent(content)
	if err != nil {
		return nil, &Error{Kind: KindEmptyOrOversizeContent, Message: err.Error()}
	}

	comment, err := s.comments.GetComment(ctx, commentID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errCommentNotFound()
	}
	if err != nil {
		return nil, err
	}
	if comment.DeletedAt != nil || comment.UserID != userID {
		return nil, errCommentNotFound()
	}

	comment.Content = trimmed
	comment.UpdatedAt = time.Now().UTC()
	if err := s.comments.UpdateComment(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// DeleteComment soft-deletes a comment. Permitted for the author, or for an
// adult acting on any comment whose memory is in the caller's family unit.
// Replies are neither cascaded nor re-parented.
func (s *CommentService) DeleteComment(ctx context.Context, commentID, userID, familyUnitID uuid.UUID, role string) error {
	comment, err := s.comments.GetComment(ctx, commentID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errCommentNotFound()
	}
	if err != nil {
		return err
	}
	if comment.DeletedAt != nil {
		return errCommentNotFound()
	}

	canDelete := comment.UserID == userID
	if !canDelete && role == common.RoleAdult {
		_, err := memoryInFamily(ctx, s.memories, comment.MemoryID, familyUnitID)
		var derr *Error
		switch {
		case err == nil:
			canDelete = true
		case errors.As(err, &derr):
			// memory outside the caller's family; fall through to denial
		default:
			return err
		}
	}
	if !canDelete {
		return errCommentNotFound()
	}

	return s.comments.SoftDeleteComment(ctx, commentID, time.Now().UTC())
}

// ThreadForMemory returns the full visible comment tree for one memory.
func (s *CommentService) ThreadForMemory(ctx context.Context, memoryID, familyUnitID uuid.UUID) ([]*CommentNode, error) {
	if _, err := memoryInFamily(ctx, s.memories, memoryID, familyUnitID); err != nil {
		return nil, err
	}
	comments, err := s.comments.CommentsForMemory(ctx, memoryID)
	if err != nil {
		return nil, err
	}
	return BuildCommentTree(comments), nil
}
