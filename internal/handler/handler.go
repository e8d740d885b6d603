package handler

import (
	"toolrent/internal/clock"
	"toolrent/internal/config"
	"toolrent/internal/service"
	"toolrent/internal/session"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Handler manages all bot interactions
type Handler struct {
	bot       *tele.Bot
	reminders *service.ReminderService
	reviews   *service.ReviewService
	sessions  *session.Store
	clock     *clock.Clock
	price     config.DocumentConfig
	contract  config.DocumentConfig
	logger    *zap.Logger
}

// NewHandler creates a new handler instance
func NewHandler(
	bot *tele.Bot,
	reminders *service.ReminderService,
	reviews *service.ReviewService,
	sessions *session.Store,
	clk *clock.Clock,
	cfg *config.Config,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		bot:       bot,
		reminders: reminders,
		reviews:   reviews,
		sessions:  sessions,
		clock:     clk,
		price:     cfg.Price,
		contract:  cfg.Contract,
		logger:    logger,
	}
}

// RegisterHandlers registers all bot handlers
func (h *Handler) RegisterHandlers() {
	// Commands
	h.bot.Handle("/start", h.handleStart)
	h.bot.Handle("/menu", h.handleStart)
	h.bot.Handle("/price", h.handlePrice)
	h.bot.Handle("/contract", h.handleContract)
	h.bot.Handle("/contacts", h.handleContacts)
	h.bot.Handle("/reminder", h.handleReminderStart)
	h.bot.Handle("/reviews", h.handleReviews)
	h.bot.Handle("/help", h.handleHelp)
	h.bot.Handle("/cancel", h.handleCancel)

	// Dialogue input
	h.bot.Handle(tele.OnText, h.handleText)

	// Callback queries (inline buttons)
	h.bot.Handle(&btnPrice, h.handlePrice)
	h.bot.Handle(&btnContract, h.handleContract)
	h.bot.Handle(&btnContacts, h.handleContacts)
	h.bot.Handle(&btnReminder, h.handleReminderStart)
	h.bot.Handle(&btnReviews, h.handleReviews)
	h.bot.Handle(&btnReviewAdd, h.handleReviewAdd)
	h.bot.Handle(&btnHelp, h.handleHelp)
}

// Inline keyboard buttons
var (
	btnPrice = tele.Btn{
		Unique: "show_price",
		Text:   "📄 Прайс",
	}
	btnContract = tele.Btn{
		Unique: "show_contract",
		Text:   "📝 Договор",
	}
	btnContacts = tele.Btn{
		Unique: "show_contacts",
		Text:   "📞 Наши контакты",
	}
	btnReminder = tele.Btn{
		Unique: "set_reminder",
		Text:   "⏰ Установить напоминание",
	}
	btnReviews = tele.Btn{
		Unique: "reviews",
		Text:   "💬 Отзывы",
	}
	btnReviewAdd = tele.Btn{
		Unique: "review_add",
		Text:   "✍️ Оставить отзыв",
	}
	btnHelp = tele.Btn{
		Unique: "help",
		Text:   "❓ Помощь",
	}
)

// mainMenuMarkup returns the main menu keyboard
func mainMenuMarkup() *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{}
	menu.Inline(
		menu.Row(btnPrice, btnContract),
		menu.Row(btnContacts),
		menu.Row(btnReminder),
		menu.Row(btnReviews),
		menu.Row(btnHelp),
	)
	return menu
}

// reviewAddMarkup returns the single "add review" button shown under listings
func reviewAddMarkup() *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}
	markup.Inline(markup.Row(btnReviewAdd))
	return markup
}

// ack answers the callback query when the update came from a button press
func ack(c tele.Context) {
	if c.Callback() != nil {
		_ = c.Respond()
	}
}
