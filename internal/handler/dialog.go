package handler

import (
	"errors"
	"strings"

	"toolrent/internal/domain"
	"toolrent/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// cancelSentinel aborts the reminder dialogue and skips the note step.
const cancelSentinel = "-"

// handleReminderStart enters the reminder dialogue
func (h *Handler) handleReminderStart(c tele.Context) error {
	ack(c)
	h.sessions.Set(c.Sender().ID, &domain.Session{State: domain.StateAwaitingDatetime})
	return c.Send(reminderPromptText)
}

// handleText drives the per-user dialogue state machine
func (h *Handler) handleText(c tele.Context) error {
	userID := c.Sender().ID
	text := strings.TrimSpace(c.Text())

	// Commands are routed by their own handlers
	if strings.HasPrefix(text, "/") {
		return nil
	}

	sess := h.sessions.Get(userID)

	switch sess.State {
	case domain.StateAwaitingDatetime:
		return h.onDatetimeInput(c, text)
	case domain.StateAwaitingNote:
		return h.onNoteInput(c, sess, text)
	case domain.StateAwaitingReview:
		return h.onReviewInput(c, text)
	default:
		// No active dialogue, nothing to do with free text
		return nil
	}
}

// onDatetimeInput validates the reminder time. Invalid input keeps the
// user in the same state with scratch data untouched.
func (h *Handler) onDatetimeInput(c tele.Context, text string) error {
	userID := c.Sender().ID

	if text == cancelSentinel {
		h.sessions.Reset(userID)
		return c.Send(reminderCancelledText, mainMenuMarkup())
	}

	dueLocal, err := h.reminders.ParseDueAt(text)
	if errors.Is(err, service.ErrPastDatetime) {
		return c.Send(pastDatetimeText)
	}
	if err != nil {
		return c.Send(badDatetimeText)
	}

	h.sessions.Set(userID, &domain.Session{
		State: domain.StateAwaitingNote,
		DueAt: dueLocal,
	})
	return c.Send(askNoteText)
}

// onNoteInput completes the reminder dialogue: any input is accepted,
// "-" falls back to the default note.
func (h *Handler) onNoteInput(c tele.Context, sess *domain.Session, text string) error {
	userID := c.Sender().ID
	chatID := c.Chat().ID

	rem, err := h.reminders.Create(userID, chatID, sess.DueAt, text)
	if err != nil {
		h.logger.Error("Failed to create reminder",
			zap.Error(err),
			zap.Int64("user_id", userID),
		)
		return c.Send(genericErrorText)
	}

	h.sessions.Reset(userID)
	return c.Send(
		reminderConfirmationText(h.clock.FormatLocal(rem.DueAt), h.clock.Zone(), rem.Note),
		mainMenuMarkup(),
	)
}

// onReviewInput completes the review dialogue. Empty input re-prompts.
func (h *Handler) onReviewInput(c tele.Context, text string) error {
	userID := c.Sender().ID

	if text == "" {
		return c.Send(emptyReviewText)
	}

	if _, err := h.reviews.Submit(userID, senderName(c.Sender()), text); err != nil {
		h.logger.Error("Failed to save review",
			zap.Error(err),
			zap.Int64("user_id", userID),
		)
		return c.Send(genericErrorText)
	}

	h.sessions.Reset(userID)
	return c.Send(reviewThanksText, mainMenuMarkup())
}

// senderName builds a display name: full name, then @username, then empty
// (the anonymous fallback is applied when rendering).
func senderName(u *tele.User) string {
	name := strings.TrimSpace(strings.TrimSpace(u.FirstName) + " " + strings.TrimSpace(u.LastName))
	if name != "" {
		return name
	}
	if u.Username != "" {
		return "@" + u.Username
	}
	return ""
}
