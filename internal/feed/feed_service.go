package feed

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/metacogna-lab/be-timelesslove-v1.0.0/internal/config"
	"github.com/metacogna-lab/be-timelesslove-v1.0.0/internal/dbpg"
)

// Sort keys accepted by the feed.
const (
	OrderByFeedScore  = "feed_score"
	OrderByCreatedAt  = "created_at"
	OrderByMemoryDate = "memory_date"
)

// topCommentLimit caps the comment previews attached to each feed item.
const topCommentLimit = 3

// Filters narrows the feed candidate set before scoring.
type Filters struct {
	Status         string
	UserID         *uuid.UUID
	Tags           []string
	DateFrom       *time.Time
	DateTo         *time.Time
	SearchQuery    string
	OrderBy        string
	OrderDirection string
}

func (f Filters) withDefaults() Filters {
	if f.Status == "" {
		f.Status = dbpg.StatusPublished
	}
	if f.OrderBy == "" {
		f.OrderBy = OrderByFeedScore
	}
	if f.OrderDirection == "" {
		f.OrderDirection = "desc"
	}
	return f
}

type Pagination struct {
	Page     int
	PageSize int
}

func (p Pagination) normalized(defaultSize, maxSize int) Pagination {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PageSize < 1 {
		p.PageSize = defaultSize
	}
	if p.PageSize > maxSize {
		p.PageSize = maxSize
	}
	return p
}

// FeedItem is one scored, enriched memory in the assembled feed.
type FeedItem struct {
	ID           uuid.UUID          `json:"id"`
	UserID       uuid.UUID          `json:"user_id"`
	FamilyUnitID uuid.UUID          `json:"family_unit_id"`
	Title        *string            `json:"title,omitempty"`
	Description  *string            `json:"description,omitempty"`
	MemoryDate   *time.Time         `json:"memory_date,omitempty"`
	Location     *string            `json:"location,omitempty"`
	Tags         []string           `json:"tags"`
	Status       string             `json:"status"`
	CreatedAt    time.Time          `json:"created_at"`
	UpdatedAt    time.Time          `json:"updated_at"`
	Media        []dbpg.MemoryMedia `json:"media"`

	ReactionCount    int            `json:"reaction_count"`
	CommentCount     int            `json:"comment_count"`
	UniqueReactors   int            `json:"unique_reactors"`
	ReactionsByEmoji map[string]int `json:"reactions_by_emoji"`
	UserReactions    []string       `json:"user_reactions"`
	TopComments      []*CommentNode `json:"top_comments"`
	FeedScore        float64        `json:"feed_score"`
}

type PageInfo struct {
	Page       int  `json:"page"`
	PageSize   int  `json:"page_size"`
	TotalPages int  `json:"total_pages"`
	HasMore    bool `json:"has_more"`
}

type FeedPage struct {
	Items      []*FeedItem `json:"items"`
	Pagination PageInfo    `json:"pagination"`
	TotalCount int         `json:"total_count"`
	HasMore    bool        `json:"has_more"`
}

type FeedService struct {
	memories  Memories
	reactions Reactions
	comments  Comments

	workers         int
	defaultPageSize int
	maxPageSize     int
}

func NewFeedService(m Memories, r Reactions, c Comments, cfg *config.Config) *FeedService {
	workers := cfg.Feed.Workers
	if workers < 1 {
		workers = 1
	}
	return &FeedService{
		memories:        m,
		reactions:       r,
		comments:        c,
		workers:         workers,
		defaultPageSize: cfg.Feed.DefaultPageSize,
		maxPageSize:     cfg.Feed.MaxPageSize,
	}
}

// GetFeed assembles the paginated, engagement-ranked memory feed for one
// family unit: fetch candidates, filter, score every candidate, sort,
// paginate, then enrich only the returned page.
func (s *FeedService) GetFeed(ctx context.Context, familyUnitID, userID uuid.UUID, filters Filters, page Pagination) (*FeedPage, error) {
	filters = filters.withDefaults()
	page = page.normalized(s.defaultPageSize, s.maxPageSize)

	memories, err := s.memories.ListMemories(ctx, familyUnitID, filters)
	if err != nil {
		return nil, err
	}

	if q := strings.TrimSpace(filters.SearchQuery); q != "" {
		memories = filterBySearch(memories, q)
	}

	items, err := s.scoreCandidates(ctx, memories)
	if err != nil {
		return nil, err
	}

	sortFeedItems(items, filters.OrderBy, filters.OrderDirection)

	totalCount := len(items)
	start := (page.Page - 1) * page.PageSize
	end := start + page.PageSize
	if start > totalCount {
		start = totalCount
	}
	if end > totalCount {
		end = totalCount
	}
	pageItems := items[start:end]

	for _, item := range pageItems {
		if err := s.enrich(ctx, userID, item); err != nil {
			return nil, err
		}
	}

	totalPages := (totalCount + page.PageSize - 1) / page.PageSize
	hasMore := end < totalCount

	return &FeedPage{
		Items: pageItems,
		Pagination: PageInfo{
			Page:       page.Page,
			PageSize:   page.PageSize,
			TotalPages: totalPages,
			HasMore:    hasMore,
		},
		TotalCount: totalCount,
		HasMore:    hasMore,
	}, nil
}

// filterBySearch retains memories whose title or description contains the
// query as a case-insensitive substring. A plain filter, not ranked search.
func filterBySearch(memories []dbpg.Memory, query string) []dbpg.Memory {
	q := strings.ToLower(query)
	out := make([]dbpg.Memory, 0, len(memories))
	for _, m := range memories {
		if containsFold(m.Title, q) || containsFold(m.Description, q) {
			out = append(out, m)
		}
	}
	return out
}

func containsFold(s *string, loweredQuery string) bool {
	if s == nil {
		return false
	}
	return strings.Contains(strings.ToLower(*s), loweredQuery)
}

// scoreCandidates computes engagement and feed score for every candidate.
// Aggregations for different memories are independent reads, so they fan out
// across a bounded worker set; results are written by index, preserving the
// candidate order regardless of completion order. The dominant cost of a
// feed request lives here: one engagement computation per candidate,
// whatever the page size.
func (s *FeedService) scoreCandidates(ctx context.Context, memories []dbpg.Memory) ([]*FeedItem, error) {
	items := make([]*FeedItem, len(memories))
	errs := make([]error, len(memories))
	now := time.Now().UTC()

	sem := make(chan struct{}, s.workers)
	var wg sync.WaitGroup
	for i := range memories {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int) {
			defer wg.Done()
			defer func() { <-sem }()
			if err := ctx.Err(); err != nil {
				errs[i] = err
				return
			}
			items[i], errs[i] = s.scoreOne(ctx, now, &memories[i])
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return items, nil
}

func (s *FeedService) scoreOne(ctx context.Context, now time.Time, memory *dbpg.Memory) (*FeedItem, error) {
	reactions, err := s.reactions.ReactionsForMemory(ctx, memory.ID)
	if err != nil {
		return nil, err
	}
	comments, err := s.comments.CommentsForMemory(ctx, memory.ID)
	if err != nil {
		return nil, err
	}

	engagement := computeEngagement(memory.ID, reactions, comments)

	item := feedItemFromMemory(memory)
	item.ReactionCount = engagement.ReactionCount
	item.CommentCount = engagement.CommentCount
	item.UniqueReactors = engagement.UniqueReactors
	item.ReactionsByEmoji = engagement.ReactionsByEmoji
	item.FeedScore = FeedScore(now, memory.CreatedAt, engagement)
	return item, nil
}

func feedItemFromMemory(m *dbpg.Memory) *FeedItem {
	media := m.Media
	if media == nil {
		media = []dbpg.MemoryMedia{}
	}
	tags := []string(m.Tags)
	if tags == nil {
		tags = []string{}
	}
	return &FeedItem{
		ID:            m.ID,
		UserID:        m.UserID,
		FamilyUnitID:  m.FamilyUnitID,
		Title:         m.Title,
		Description:   m.Description,
		MemoryDate:    m.MemoryDate,
		Location:      m.Location,
		Tags:          tags,
		Status:        m.Status,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
		Media:         media,
		UserReactions: []string{},
		TopComments:   []*CommentNode{},
	}
}

// sortFeedItems orders the scored set. The sort is stable: equal keys keep
// the candidate fetch order, so identical inputs always produce identical
// pages.
func sortFeedItems(items []*FeedItem, orderBy, direction string) {
	desc := direction == "desc"

	var less func(a, b *FeedItem) bool
	switch orderBy {
	case OrderByCreatedAt:
		less = func(a, b *FeedItem) bool { return a.CreatedAt.Before(b.CreatedAt) }
	case OrderByMemoryDate:
		// memories without a date sort lowest ascending
		less = func(a, b *FeedItem) bool {
			return memoryDateOrZero(a).Before(memoryDateOrZero(b))
		}
	default:
		less = func(a, b *FeedItem) bool { return a.FeedScore < b.FeedScore }
	}

	sort.SliceStable(items, func(i, j int) bool {
		if desc {
			return less(items[j], items[i])
		}
		return less(items[i], items[j])
	})
}

func memoryDateOrZero(item *FeedItem) time.Time {
	if item.MemoryDate == nil {
		return time.Time{}
	}
	return *item.MemoryDate
}

// enrich attaches the per-viewer data to one page item: the first comment
// trees and the caller's own reaction emojis. Runs only for the returned
// page, never the full candidate set.
func (s *FeedService) enrich(ctx context.Context, userID uuid.UUID, item *FeedItem) error {
	comments, err := s.comments.CommentsForMemory(ctx, item.ID)
	if err != nil {
		return err
	}
	roots := BuildCommentTree(comments)
	if len(roots) > topCommentLimit {
		roots = roots[:topCommentLimit]
	}
	item.TopComments = roots

	emojis, err := s.reactions.UserReactions(ctx, item.ID, userID)
	if err != nil {
		return err
	}
	if emojis == nil {
		emojis = []string{}
	}
	item.UserReactions = emojis
	return nil
}
