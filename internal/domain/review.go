package domain

import "time"

// AnonymousReviewerName replaces the author name when Telegram provides none.
const AnonymousReviewerName = "Без имени"

// Review is a customer review, append-only.
type Review struct {
	ID        int64
	UserID    int64
	UserName  string
	Text      string
	CreatedAt time.Time // always UTC
}

// DisplayName returns the stored name or the anonymous fallback.
func (r Review) DisplayName() string {
	if r.UserName == "" {
		return AnonymousReviewerName
	}
	return r.UserName
}
