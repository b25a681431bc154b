package feed

import (
	"math"
	"time"
)

// Feed scoring weights
const (
	timeWeight       = 0.6
	engagementWeight = 0.4
	reactionWeight   = 1.0
	commentWeight    = 2.0
)

// FeedScore combines recency decay with log-compressed engagement into the
// single ranking value. Deterministic given now; no side effects.
func FeedScore(now, createdAt time.Time, engagement Engagement) float64 {
	hoursAgo := now.Sub(createdAt).Hours()
	return timeScore(hoursAgo)*timeWeight + engagementScore(engagement)*engagementWeight
}

// timeScore is hyperbolic decay over a 24-hour half-life denominator, with a
// step multiplier per age tier. The tiers are intentionally discontinuous
// with the decay curve: scores cliff at 24h, 7d and 30d.
func timeScore(hoursAgo float64) float64 {
	score := 1.0 / (1.0 + hoursAgo/24.0)

	switch {
	case hoursAgo <= 24:
		return score
	case hoursAgo <= 168: // 7 days
		return score * 0.7
	case hoursAgo <= 720: // 30 days
		return score * 0.4
	default:
		return score * 0.2
	}
}

// engagementScore weights comments twice as heavily as reactions and
// compresses on a log scale so heavily engaged memories cannot dominate the
// feed indefinitely.
func engagementScore(engagement Engagement) float64 {
	raw := float64(engagement.ReactionCount)*reactionWeight +
		float64(engagement.CommentCount)*commentWeight
	if raw <= 0 {
		return 0
	}
	return math.Log1p(raw)
}
