package feed

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/metacogna-lab/be-timelesslove-v1.0.0/internal/config"
	"github.com/metacogna-lab/be-timelesslove-v1.0.0/internal/dbpg"
)

// fakeStore is an in-memory stand-in for the repository, shared by all three
// store interfaces. Scoring fans out across goroutines, so reads take the
// lock too.
type fakeStore struct {
	mu        sync.Mutex
	memories  []dbpg.Memory
	reactions map[uuid.UUID][]dbpg.MemoryReaction
	comments  map[uuid.UUID][]dbpg.MemoryComment
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		reactions: make(map[uuid.UUID][]dbpg.MemoryReaction),
		comments:  make(map[uuid.UUID][]dbpg.MemoryComment),
	}
}

func (f *fakeStore) GetMemory(_ context.Context, id, familyUnitID uuid.UUID) (*dbpg.Memory, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.memories {
		if f.memories[i].ID == id && f.memories[i].FamilyUnitID == familyUnitID {
			m := f.memories[i]
			return &m, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeStore) ListMemories(_ context.Context, familyUnitID uuid.UUID, filters Filters) ([]dbpg.Memory, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []dbpg.Memory
	for _, m := range f.memories {
		if m.FamilyUnitID != familyUnitID || m.Status != filters.Status {
			continue
		}
		if filters.UserID != nil && m.UserID != *filters.UserID {
			continue
		}
		out = append(out, m)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (f *fakeStore) AddReaction(_ context.Context, reaction *dbpg.MemoryReaction) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, r := range f.reactions[reaction.MemoryID] {
		if r.UserID == reaction.UserID && r.Emoji == reaction.Emoji {
			return false, nil
		}
	}
	f.reactions[reaction.MemoryID] = append(f.reactions[reaction.MemoryID], *reaction)
	return true, nil
}

func (f *fakeStore) GetReaction(_ context.Context, id uuid.UUID) (*dbpg.MemoryReaction, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, rs := range f.reactions {
		for _, r := range rs {
			if r.ID == id {
				r := r
				return &r, nil
			}
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeStore) DeleteReaction(_ context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for memoryID, rs := range f.reactions {
		for i, r := range rs {
			if r.ID == id {
				f.reactions[memoryID] = append(rs[:i], rs[i+1:]...)
				return nil
			}
		}
	}
	return nil
}

func (f *fakeStore) ReactionsForMemory(_ context.Context, memoryID uuid.UUID) ([]dbpg.MemoryReaction, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]dbpg.MemoryReaction(nil), f.reactions[memoryID]...), nil
}

func (f *fakeStore) UserReactions(_ context.Context, memoryID, userID uuid.UUID) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var emojis []string
	for _, r := range f.reactions[memoryID] {
		if r.UserID == userID {
			emojis = append(emojis, r.Emoji)
		}
	}
	return emojis, nil
}

func (f *fakeStore) CreateComment(_ context.Context, comment *dbpg.MemoryComment) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.comments[comment.MemoryID] = append(f.comments[comment.MemoryID], *comment)
	return nil
}

func (f *fakeStore) GetComment(_ context.Context, id uuid.UUID) (*dbpg.MemoryComment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, cs := range f.comments {
		for _, c := range cs {
			if c.ID == id {
				c := c
				return &c, nil
			}
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeStore) UpdateComment(_ context.Context, comment *dbpg.MemoryComment) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cs := f.comments[comment.MemoryID]
	for i := range cs {
		if cs[i].ID == comment.ID {
			cs[i] = *comment
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (f *fakeStore) SoftDeleteComment(_ context.Context, id uuid.UUID, at time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for memoryID := range f.comments {
		for i := range f.comments[memoryID] {
			if f.comments[memoryID][i].ID == id {
				f.comments[memoryID][i].DeletedAt = &at
				return nil
			}
		}
	}
	return gorm.ErrRecordNotFound
}

func (f *fakeStore) CommentsForMemory(_ context.Context, memoryID uuid.UUID) ([]dbpg.MemoryComment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []dbpg.MemoryComment
	for _, c := range f.comments[memoryID] {
		if c.DeletedAt == nil {
			out = append(out, c)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func testFeedConfig() *config.Config {
	return &config.Config{Feed: config.FeedConfig{
		Workers:         4,
		DefaultPageSize: 20,
		MaxPageSize:     100,
	}}
}

func publishedMemory(familyUnitID uuid.UUID, title string, createdAt time.Time) dbpg.Memory {
	t := title
	return dbpg.Memory{
		ID:           uuid.New(),
		UserID:       uuid.New(),
		FamilyUnitID: familyUnitID,
		Title:        &t,
		Status:       dbpg.StatusPublished,
		CreatedAt:    createdAt,
		UpdatedAt:    createdAt,
	}
}

func TestGetFeed_Pagination(t *testing.T) {
	store := newFakeStore()
	familyID := uuid.New()
	now := time.Now().UTC()

	for i := 0; i < 45; i++ {
		store.memories = append(store.memories,
			publishedMemory(familyID, fmt.Sprintf("memory %d", i), now.Add(-time.Duration(i)*time.Hour)))
	}

	svc := NewFeedService(store, store, store, testFeedConfig())
	ctx := context.Background()
	viewer := uuid.New()

	page1, err := svc.GetFeed(ctx, familyID, viewer, Filters{}, Pagination{Page: 1, PageSize: 20})
	require.NoError(t, err)
	assert.Len(t, page1.Items, 20)
	assert.Equal(t, 45, page1.TotalCount)
	assert.Equal(t, 3, page1.Pagination.TotalPages)
	assert.True(t, page1.HasMore)

	page2, err := svc.GetFeed(ctx, familyID, viewer, Filters{}, Pagination{Page: 2, PageSize: 20})
	require.NoError(t, err)
	assert.Len(t, page2.Items, 20)
	assert.True(t, page2.HasMore)

	page3, err := svc.GetFeed(ctx, familyID, viewer, Filters{}, Pagination{Page: 3, PageSize: 20})
	require.NoError(t, err)
	assert.Len(t, page3.Items, 5)
	assert.False(t, page3.HasMore)

	// past the end: empty page, same totals
	page4, err := svc.GetFeed(ctx, familyID, viewer, Filters{}, Pagination{Page: 4, PageSize: 20})
	require.NoError(t, err)
	assert.Empty(t, page4.Items)
	assert.Equal(t, 45, page4.TotalCount)
	assert.False(t, page4.HasMore)
}

func TestGetFeed_PaginationNormalized(t *testing.T) {
	store := newFakeStore()
	familyID := uuid.New()
	store.memories = append(store.memories, publishedMemory(familyID, "one", time.Now().UTC()))

	svc := NewFeedService(store, store, store, testFeedConfig())

	page, err := svc.GetFeed(context.Background(), familyID, uuid.New(), Filters{}, Pagination{Page: -3, PageSize: 0})
	require.NoError(t, err)
	assert.Equal(t, 1, page.Pagination.Page)
	assert.Equal(t, 20, page.Pagination.PageSize)

	page, err = svc.GetFeed(context.Background(), familyID, uuid.New(), Filters{}, Pagination{Page: 1, PageSize: 9999})
	require.NoError(t, err)
	assert.Equal(t, 100, page.Pagination.PageSize)
}

func TestGetFeed_RankingByScore(t *testing.T) {
	store := newFakeStore()
	familyID := uuid.New()
	now := time.Now().UTC()

	fresh := publishedMemory(familyID, "fresh and loved", now.Add(-1*time.Hour))
	stale := publishedMemory(familyID, "two months old", now.Add(-60*24*time.Hour))
	store.memories = []dbpg.Memory{stale, fresh}

	for i := 0; i < 10; i++ {
		store.reactions[fresh.ID] = append(store.reactions[fresh.ID], reactionBy(fresh.ID, uuid.New(), "❤️"))
	}
	for i := 0; i < 5; i++ {
		store.comments[fresh.ID] = append(store.comments[fresh.ID], dbpg.MemoryComment{
			ID: uuid.New(), MemoryID: fresh.ID, UserID: uuid.New(), Content: "lovely",
			CreatedAt: now.Add(-30 * time.Minute),
		})
	}
	store.reactions[stale.ID] = append(store.reactions[stale.ID], reactionBy(stale.ID, uuid.New(), "👍"))

	svc := NewFeedService(store, store, store, testFeedConfig())
	page, err := svc.GetFeed(context.Background(), familyID, uuid.New(), Filters{}, Pagination{})
	require.NoError(t, err)
	require.Len(t, page.Items, 2)

	assert.Equal(t, fresh.ID, page.Items[0].ID)
	assert.Equal(t, stale.ID, page.Items[1].ID)
	assert.Greater(t, page.Items[0].FeedScore, page.Items[1].FeedScore)
	assert.InDelta(t, 1.794, page.Items[0].FeedScore, 0.01)
	assert.InDelta(t, 0.279, page.Items[1].FeedScore, 0.01)
}

func TestGetFeed_OrderByCreatedAtAscending(t *testing.T) {
	store := newFakeStore()
	familyID := uuid.New()
	now := time.Now().UTC()

	oldest := publishedMemory(familyID, "oldest", now.Add(-72*time.Hour))
	newest := publishedMemory(familyID, "newest", now.Add(-1*time.Hour))
	middle := publishedMemory(familyID, "middle", now.Add(-24*time.Hour))
	store.memories = []dbpg.Memory{oldest, newest, middle}

	svc := NewFeedService(store, store, store, testFeedConfig())
	page, err := svc.GetFeed(context.Background(), familyID, uuid.New(),
		Filters{OrderBy: OrderByCreatedAt, OrderDirection: "asc"}, Pagination{})
	require.NoError(t, err)
	require.Len(t, page.Items, 3)
	assert.Equal(t, oldest.ID, page.Items[0].ID)
	assert.Equal(t, middle.ID, page.Items[1].ID)
	assert.Equal(t, newest.ID, page.Items[2].ID)
}

func TestGetFeed_SearchFilter(t *testing.T) {
	store := newFakeStore()
	familyID := uuid.New()
	now := time.Now().UTC()

	beach := publishedMemory(familyID, "Day at the Beach", now.Add(-2*time.Hour))
	park := publishedMemory(familyID, "picnic in the park", now.Add(-3*time.Hour))
	desc := "we built sandcastles at the beach"
	park2 := publishedMemory(familyID, "afternoon walk", now.Add(-4*time.Hour))
	park2.Description = &desc
	store.memories = []dbpg.Memory{beach, park, park2}

	svc := NewFeedService(store, store, store, testFeedConfig())
	page, err := svc.GetFeed(context.Background(), familyID, uuid.New(),
		Filters{SearchQuery: "BEACH"}, Pagination{})
	require.NoError(t, err)
	require.Len(t, page.Items, 2)
	assert.Equal(t, 2, page.TotalCount)

	ids := []uuid.UUID{page.Items[0].ID, page.Items[1].ID}
	assert.Contains(t, ids, beach.ID)
	assert.Contains(t, ids, park2.ID)
}

func TestGetFeed_FamilyIsolation(t *testing.T) {
	store := newFakeStore()
	familyID := uuid.New()
	otherFamily := uuid.New()
	now := time.Now().UTC()

	mine := publishedMemory(familyID, "ours", now)
	store.memories = []dbpg.Memory{mine, publishedMemory(otherFamily, "theirs", now)}

	svc := NewFeedService(store, store, store, testFeedConfig())
	page, err := svc.GetFeed(context.Background(), familyID, uuid.New(), Filters{}, Pagination{})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, mine.ID, page.Items[0].ID)
}

func TestGetFeed_DraftsExcludedByDefault(t *testing.T) {
	store := newFakeStore()
	familyID := uuid.New()
	now := time.Now().UTC()

	draft := publishedMemory(familyID, "draft", now)
	draft.Status = dbpg.StatusDraft
	published := publishedMemory(familyID, "published", now.Add(-time.Hour))
	store.memories = []dbpg.Memory{draft, published}

	svc := NewFeedService(store, store, store, testFeedConfig())
	page, err := svc.GetFeed(context.Background(), familyID, uuid.New(), Filters{}, Pagination{})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, published.ID, page.Items[0].ID)
}

func TestGetFeed_Enrichment(t *testing.T) {
	store := newFakeStore()
	familyID := uuid.New()
	viewer := uuid.New()
	now := time.Now().UTC()

	memory := publishedMemory(familyID, "enriched", now.Add(-time.Hour))
	store.memories = []dbpg.Memory{memory}

	// five roots; top_comments must cap at the first three
	for i := 0; i < 5; i++ {
		store.comments[memory.ID] = append(store.comments[memory.ID], dbpg.MemoryComment{
			ID: uuid.New(), MemoryID: memory.ID, UserID: uuid.New(),
			Content:   fmt.Sprintf("root %d", i),
			CreatedAt: now.Add(time.Duration(i) * time.Minute),
		})
	}
	store.reactions[memory.ID] = append(store.reactions[memory.ID],
		reactionBy(memory.ID, viewer, "👍"),
		reactionBy(memory.ID, viewer, "🔥"),
		reactionBy(memory.ID, uuid.New(), "❤️"),
	)

	svc := NewFeedService(store, store, store, testFeedConfig())
	page, err := svc.GetFeed(context.Background(), familyID, viewer, Filters{}, Pagination{})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)

	item := page.Items[0]
	require.Len(t, item.TopComments, 3)
	assert.Equal(t, "root 0", item.TopComments[0].Content)
	assert.Equal(t, []string{"👍", "🔥"}, item.UserReactions)
	assert.Equal(t, 3, item.ReactionCount)
	assert.Equal(t, 2, item.UniqueReactors)
	assert.Equal(t, 5, item.CommentCount)
}

func TestGetFeed_SoftDeletedCommentsExcluded(t *testing.T) {
	store := newFakeStore()
	familyID := uuid.New()
	now := time.Now().UTC()
	deletedAt := now

	memory := publishedMemory(familyID, "pruned", now.Add(-time.Hour))
	store.memories = []dbpg.Memory{memory}
	store.comments[memory.ID] = []dbpg.MemoryComment{
		{ID: uuid.New(), MemoryID: memory.ID, UserID: uuid.New(), Content: "visible", CreatedAt: now},
		{ID: uuid.New(), MemoryID: memory.ID, UserID: uuid.New(), Content: "gone", CreatedAt: now, DeletedAt: &deletedAt},
	}

	svc := NewFeedService(store, store, store, testFeedConfig())
	page, err := svc.GetFeed(context.Background(), familyID, uuid.New(), Filters{}, Pagination{})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, 1, page.Items[0].CommentCount)
	assert.Len(t, page.Items[0].TopComments, 1)
}

func TestGetFeed_Empty(t *testing.T) {
	store := newFakeStore()
	svc := NewFeedService(store, store, store, testFeedConfig())

	page, err := svc.GetFeed(context.Background(), uuid.New(), uuid.New(), Filters{}, Pagination{})
	require.NoError(t, err)
	assert.Empty(t, page.Items)
	assert.Zero(t, page.TotalCount)
	assert.Zero(t, page.Pagination.TotalPages)
	assert.False(t, page.HasMore)
}

func TestGetFeed_Deterministic(t *testing.T) {
	store := newFakeStore()
	familyID := uuid.New()
	now := time.Now().UTC()

	for i := 0; i < 30; i++ {
		m := publishedMemory(familyID, fmt.Sprintf("memory %d", i), now.Add(-time.Duration(i)*time.Hour))
		store.memories = append(store.memories, m)
		for j := 0; j <= i%4; j++ {
			store.reactions[m.ID] = append(store.reactions[m.ID], reactionBy(m.ID, uuid.New(), "👍"))
		}
	}

	svc := NewFeedService(store, store, store, testFeedConfig())
	ctx := context.Background()
	viewer := uuid.New()

	first, err := svc.GetFeed(ctx, familyID, viewer, Filters{}, Pagination{PageSize: 10})
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := svc.GetFeed(ctx, familyID, viewer, Filters{}, Pagination{PageSize: 10})
		require.NoError(t, err)
		require.Len(t, again.Items, len(first.Items))
		for j := range first.Items {
			assert.Equal(t, first.Items[j].ID, again.Items[j].ID)
		}
	}
}

func TestMemoryEngagement_ScopedToFamily(t *testing.T) {
	store := newFakeStore()
	familyID := uuid.New()
	memory := publishedMemory(familyID, "scoped", time.Now().UTC())
	store.memories = []dbpg.Memory{memory}
	store.reactions[memory.ID] = []dbpg.MemoryReaction{reactionBy(memory.ID, uuid.New(), "💯")}

	svc := NewFeedService(store, store, store, testFeedConfig())

	eng, err := svc.MemoryEngagement(context.Background(), memory.ID, familyID)
	require.NoError(t, err)
	assert.Equal(t, 1, eng.ReactionCount)

	_, err = svc.MemoryEngagement(context.Background(), memory.ID, uuid.New())
	requireKind(t, err, KindNotFoundOrAccessDenied)
}
