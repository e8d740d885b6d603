package handler

import (
	"toolrent/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleStart handles /start and /menu and shows the main menu
func (h *Handler) handleStart(c tele.Context) error {
	userID := c.Sender().ID

	h.logger.Info("User opened main menu",
		zap.Int64("user_id", userID),
		zap.String("username", c.Sender().Username),
	)

	ack(c)
	h.sessions.Reset(userID)
	return c.Send(startText, mainMenuMarkup())
}

// handleHelp shows the command reference
func (h *Handler) handleHelp(c tele.Context) error {
	ack(c)
	return c.Send(helpText)
}

// handleCancel aborts the active dialogue. Without one there is nothing
// to cancel and the command is ignored.
func (h *Handler) handleCancel(c tele.Context) error {
	userID := c.Sender().ID

	if h.sessions.Get(userID).State == domain.StateIdle {
		return nil
	}

	h.sessions.Reset(userID)
	return c.Send(operationCancelledText, mainMenuMarkup())
}
