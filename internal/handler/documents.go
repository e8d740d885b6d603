package handler

import (
	"fmt"
	"os"
	"path/filepath"

	"toolrent/internal/config"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handlePrice sends the price list document
func (h *Handler) handlePrice(c tele.Context) error {
	ack(c)
	return h.sendDocument(c, h.price, priceCaption)
}

// handleContract sends the rental contract document
func (h *Handler) handleContract(c tele.Context) error {
	ack(c)
	return h.sendDocument(c, h.contract, contractCaption)
}

// sendDocument delivers a static document: a configured URL wins over
// the local file; with neither available the user gets a plain notice.
func (h *Handler) sendDocument(c tele.Context, doc config.DocumentConfig, caption string) error {
	if doc.URL != "" {
		return c.Send(fmt.Sprintf("%s\n%s", caption, doc.URL))
	}

	if doc.FilePath != "" {
		if _, err := os.Stat(doc.FilePath); err == nil {
			return c.Send(&tele.Document{
				File:     tele.FromDisk(doc.FilePath),
				FileName: filepath.Base(doc.FilePath),
				Caption:  caption,
			})
		}
	}

	h.logger.Warn("Document unavailable",
		zap.String("path", doc.FilePath),
		zap.Int64("user_id", c.Sender().ID),
	)
	return c.Send(fileUnavailableText)
}

// handleContacts sends the contacts card
func (h *Handler) handleContacts(c tele.Context) error {
	ack(c)
	return c.Send(contactsText, &tele.SendOptions{
		ParseMode:             tele.ModeMarkdown,
		DisableWebPagePreview: true,
	})
}
