package feed

import (
	"time"

	"github.com/google/uuid"

	"github.com/metacogna-lab/be-timelesslove-v1.0.0/internal/dbpg"
)

// CommentNode is one comment in a reconstructed thread. Each stored comment
// is owned by exactly one node in the arena; parent/child structure lives in
// the Replies slices, never in duplicated comment copies.
type CommentNode struct {
	ID              uuid.UUID      `json:"id"`
	MemoryID        uuid.UUID      `json:"memory_id"`
	UserID          uuid.UUID      `json:"user_id"`
	ParentCommentID *uuid.UUID     `json:"parent_comment_id,omitempty"`
	Content         string         `json:"content"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	ReplyCount      int            `json:"reply_count"`
	Replies         []*CommentNode `json:"replies"`
}

func newCommentNode(c dbpg.MemoryComment) *CommentNode {
	return &CommentNode{
		ID:              c.ID,
		MemoryID:        c.MemoryID,
		UserID:          c.UserID,
		ParentCommentID: c.ParentCommentID,
		Content:         c.Content,
		CreatedAt:       c.CreatedAt,
		UpdatedAt:       c.UpdatedAt,
		Replies:         []*CommentNode{},
	}
}

// BuildCommentTree reconstructs the reply tree from the flat visible comment
// set of one memory. Single pass over the input, O(n). Root ordering and
// reply ordering within a parent follow the input order (ascending creation
// time). ReplyCount counts direct children only.
//
// A reply whose parent is not in the set (the parent was soft-deleted) is
// promoted to a root rather than silently dropped.
func BuildCommentTree(comments []dbpg.MemoryComment) []*CommentNode {
	nodes := make(map[uuid.UUID]*CommentNode, len(comments))
	for _, c := range comments {
		nodes[c.ID] = newCommentNode(c)
	}

	roots := make([]*CommentNode, 0, len(comments))
	for _, c := range comments {
		node := nodes[c.ID]
		if c.ParentCommentID != nil {
			if parent, ok := nodes[*c.ParentCommentID]; ok {
				parent.Replies = append(parent.Replies, node)
				parent.ReplyCount++
				continue
			}
		}
		roots = append(roots, node)
	}
	return roots
}
