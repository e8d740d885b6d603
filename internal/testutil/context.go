package testutil

import (
	tele "gopkg.in/telebot.v3"
)

// FakeContext is a minimal telebot context for handler tests. Only the
// methods the handlers touch are implemented; calling anything else
// panics through the embedded nil interface.
type FakeContext struct {
	tele.Context

	User     *tele.User
	Convo    *tele.Chat
	Incoming string
	Sent     []string
}

// NewFakeContext creates a context for an incoming text message.
func NewFakeContext(userID, chatID int64, text string) *FakeContext {
	return &FakeContext{
		User:     &tele.User{ID: userID},
		Convo:    &tele.Chat{ID: chatID},
		Incoming: text,
	}
}

func (c *FakeContext) Sender() *tele.User { return c.User }

func (c *FakeContext) Chat() *tele.Chat { return c.Convo }

func (c *FakeContext) Text() string { return c.Incoming }

func (c *FakeContext) Callback() *tele.Callback { return nil }

func (c *FakeContext) Respond(resp ...*tele.CallbackResponse) error { return nil }

// Send records outgoing text messages; non-string payloads (documents,
// menus passed as opts) are ignored.
func (c *FakeContext) Send(what interface{}, opts ...interface{}) error {
	if s, ok := what.(string); ok {
		c.Sent = append(c.Sent, s)
	}
	return nil
}

// LastSent returns the most recent outgoing message, or "" when none.
func (c *FakeContext) LastSent() string {
	if len(c.Sent) == 0 {
		return ""
	}
	return c.Sent[len(c.Sent)-1]
}
