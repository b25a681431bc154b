//go:build wireinject
// +build wireinject

package di

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	"github.com/metacogna-lab/be-timelesslove-v1.0.0/internal/config"
	"github.com/metacogna-lab/be-timelesslove-v1.0.0/internal/feed"
)

// InitFeedHandlers assembles the feed engine on top of one DB handle.
// Declaration only; wire generates the real body in wire_gen.go.
func InitFeedHandlers(db *gorm.DB, cfg *config.Config) *feed.FeedHandlers {
	wire.Build(
		feed.NewFeedRepository,
		wire.Bind(new(feed.Memories), new(*feed.FeedRepository)),
		wire.Bind(new(feed.Reactions), new(*feed.FeedRepository)),
		wire.Bind(new(feed.Comments), new(*feed.FeedRepository)),
		feed.NewReactionService,
		feed.NewCommentService,
		feed.NewFeedService,
		feed.NewFeedHandlers,
	)
	return &feed.FeedHandlers{} // dummy for compilation
}
