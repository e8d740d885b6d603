package handler

import (
	"fmt"
	"strings"

	"toolrent/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// reviewsListLimit caps how many reviews a single listing shows.
const reviewsListLimit = 10

// handleReviews shows the most recent reviews
func (h *Handler) handleReviews(c tele.Context) error {
	ack(c)

	reviews, err := h.reviews.Recent(reviewsListLimit)
	if err != nil {
		h.logger.Error("Failed to list reviews",
			zap.Error(err),
			zap.Int64("user_id", c.Sender().ID),
		)
		return c.Send(genericErrorText)
	}

	if len(reviews) == 0 {
		return c.Send(noReviewsText, reviewAddMarkup())
	}

	lines := make([]string, 0, len(reviews))
	for _, r := range reviews {
		lines = append(lines, fmt.Sprintf("💬 %s\n  👤 %s, %s",
			r.Text, r.DisplayName(), h.clock.FormatLocal(r.CreatedAt)))
	}

	return c.Send(reviewsHeaderText+strings.Join(lines, "\n\n"), reviewAddMarkup())
}

// handleReviewAdd enters the review dialogue
func (h *Handler) handleReviewAdd(c tele.Context) error {
	ack(c)
	h.sessions.Set(c.Sender().ID, &domain.Session{State: domain.StateAwaitingReview})
	return c.Send(reviewPromptText)
}
