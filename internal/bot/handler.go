package bot

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	tgbot "github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/sirupsen/logrus"

	"inspilink/internal/config"
	"inspilink/internal/discover"
	"inspilink/internal/form"
	"inspilink/internal/preferences"
	"inspilink/internal/query"
	"inspilink/internal/service"
)

// sender is the part of *tgbot.Bot the handler talks to.
type sender interface {
	SendMessage(ctx context.Context, params *tgbot.SendMessageParams) (*models.Message, error)
}

// commandFunc runs a command and returns the reply. An empty reply sends
// nothing besides the queued notifications.
type commandFunc func(ctx context.Context, chatID int64, args string) string

// Handler holds dependencies for the Telegram bot handlers.
type Handler struct {
	bot   *tgbot.Bot
	send  sender
	cfg   config.Config
	links *service.Links
	feed  *discover.Feed
	prefs *preferences.Preferences
	log   logrus.FieldLogger

	commands map[string]commandFunc

	mu        sync.Mutex
	redirects map[int64]*time.Timer
	stopped   bool
	updates   sync.WaitGroup
	done      chan struct{}
}

// NewHandler creates a new bot handler instance.
func NewHandler(cfg config.Config, links *service.Links, feed *discover.Feed, prefs *preferences.Preferences, logger logrus.FieldLogger) (*Handler, error) {
	h := newHandler(nil, cfg, links, feed, prefs, logger)

	b, err := tgbot.New(cfg.TelegramBotToken,
		tgbot.WithDefaultHandler(h.handleUpdate),
		tgbot.WithMiddlewares(h.ownerOnly),
	)
	if err != nil {
		h.log.WithError(err).Error("Failed to create Telegram bot instance")
		return nil, fmt.Errorf("failed to create bot: %w", err)
	}
	h.bot = b
	h.send = b

	h.log.Info("Telegram bot handler initialized")
	return h, nil
}

func newHandler(send sender, cfg config.Config, links *service.Links, feed *discover.Feed, prefs *preferences.Preferences, logger logrus.FieldLogger) *Handler {
	h := &Handler{
		send:      send,
		cfg:       cfg,
		links:     links,
		feed:      feed,
		prefs:     prefs,
		log:       logger.WithField("component", "bot_handler"),
		redirects: make(map[int64]*time.Timer),
		done:      make(chan struct{}),
	}
	h.registerHandlers()
	return h
}

// registerHandlers sets up the command table.
func (h *Handler) registerHandlers() {
	h.commands = map[string]commandFunc{
		"start":      h.startCommand,
		"home":       h.startCommand,
		"help":       h.helpCommand,
		"add":        h.addCommand,
		"list":       h.listCommand,
		"remove":     h.removeCommand,
		"copy":       h.copyCommand,
		"discover":   h.discoverCommand,
		"item":       h.itemCommand,
		"save":       h.saveCommand,
		"categories": h.categoriesCommand,
		"darkmode":   h.darkModeCommand,
	}
	h.log.WithField("commands", len(h.commands)).Info("Registered command handlers")
}

// Start begins polling for updates from Telegram.
// This function blocks until the context is cancelled.
func (h *Handler) Start(ctx context.Context) {
	h.serve(ctx, h.bot.Start)
}

// Done is closed once Start has returned and every update it accepted has
// been handled. Storage can be closed after that.
func (h *Handler) Done() <-chan struct{} {
	return h.done
}

// serve runs poll until ctx ends, then stops taking updates and waits for
// the ones still running. The bot runs each handler in its own goroutine.
func (h *Handler) serve(ctx context.Context, poll func(context.Context)) {
	defer close(h.done)

	h.log.Info("Starting Telegram bot polling...")
	poll(ctx)

	h.mu.Lock()
	h.stopped = true
	h.mu.Unlock()
	h.stopRedirects()

	h.updates.Wait()
	h.log.Info("Telegram bot polling stopped.")
}

// acquire registers an update as running. It reports false once serve is
// shutting down.
func (h *Handler) acquire() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.stopped {
		return false
	}
	h.updates.Add(1)
	return true
}

// ownerOnly drops messages from other chats when an owner chat is configured.
func (h *Handler) ownerOnly(next tgbot.HandlerFunc) tgbot.HandlerFunc {
	return func(ctx context.Context, b *tgbot.Bot, update *models.Update) {
		if h.cfg.OwnerChatID != 0 && update.Message != nil && update.Message.Chat.ID != h.cfg.OwnerChatID {
			h.log.WithField("chat_id", update.Message.Chat.ID).Warn("Ignoring message from foreign chat")
			return
		}
		next(ctx, b, update)
	}
}

func (h *Handler) handleUpdate(ctx context.Context, _ *tgbot.Bot, update *models.Update) {
	if update.Message == nil || update.Message.Text == "" {
		return
	}
	chatID := update.Message.Chat.ID
	log := h.log.WithField("chat_id", chatID)

	if !h.acquire() {
		log.Debug("Shutting down, update dropped")
		return
	}
	defer h.updates.Done()

	// Any message navigates away from the not-found view.
	h.cancelRedirect(chatID)

	name, args, ok := parseCommand(update.Message.Text)
	if !ok {
		log.Debug("Received plain text message")
		h.reply(ctx, chatID, "Send a command to get started.\n\n"+helpText)
		return
	}
	log = log.WithField("command", "/"+name)

	cmd, found := h.commands[name]
	if !found {
		log.Info("Unknown command, showing not found")
		h.reply(ctx, chatID, renderNotFound())
		h.scheduleRedirect(ctx, chatID)
		return
	}

	log.Info("Received command")
	cmdCtx, ob := withOutbox(ctx)
	h.reply(ctx, chatID, cmd(cmdCtx, chatID, args))
	for _, ev := range ob.drain() {
		h.reply(ctx, chatID, renderEvent(ev))
	}
}

// reply sends text, split into several messages when it is too long.
func (h *Handler) reply(ctx context.Context, chatID int64, text string) {
	for _, part := range chunk(text, maxMessageLen) {
		_, err := h.send.SendMessage(ctx, &tgbot.SendMessageParams{
			ChatID: chatID,
			Text:   part,
		})
		if err != nil {
			h.log.WithError(err).WithField("chat_id", chatID).Error("Failed to send message")
			return
		}
	}
}

// scheduleRedirect sends the home view after the configured delay unless the
// chat navigates elsewhere first.
func (h *Handler) scheduleRedirect(ctx context.Context, chatID int64) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if t, ok := h.redirects[chatID]; ok {
		t.Stop()
	}

	var t *time.Timer
	t = time.AfterFunc(h.cfg.NotFoundRedirect, func() {
		h.mu.Lock()
		if h.redirects[chatID] != t {
			h.mu.Unlock()
			return
		}
		delete(h.redirects, chatID)
		h.mu.Unlock()

		if ctx.Err() != nil || !h.acquire() {
			return
		}
		defer h.updates.Done()
		h.reply(ctx, chatID, h.home(ctx))
	})
	h.redirects[chatID] = t
}

func (h *Handler) cancelRedirect(chatID int64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if t, ok := h.redirects[chatID]; ok {
		t.Stop()
		delete(h.redirects, chatID)
	}
}

func (h *Handler) stopRedirects() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for id, t := range h.redirects {
		t.Stop()
		delete(h.redirects, id)
	}
}

func (h *Handler) home(ctx context.Context) string {
	return renderHome(h.links.Count(), h.links.Saving(), h.prefs.DarkMode(ctx), h.feed.Featured())
}

func (h *Handler) startCommand(ctx context.Context, _ int64, _ string) string {
	return h.home(ctx)
}

func (h *Handler) helpCommand(context.Context, int64, string) string {
	return helpText
}

func (h *Handler) addCommand(ctx context.Context, _ int64, args string) string {
	if args == "" {
		return "Add New Link\n\n/add url | title | category | description | tags\n" +
			"Tags are comma separated, e.g. design, inspiration"
	}

	link, err := h.links.Save(ctx, parseAddFields(args))
	var fe form.FieldErrors
	switch {
	case errors.As(err, &fe):
		return renderFieldErrors(fe)
	case errors.Is(err, service.ErrSaveInFlight):
		return "A save is already in progress, please wait."
	case err != nil:
		// The failure notification is already queued.
		return ""
	}
	return "Saved\n\n" + renderLink(link)
}

func (h *Handler) listCommand(_ context.Context, _ int64, args string) string {
	spec, err := filterFromArgs(args)
	if err != nil {
		return err.Error()
	}
	return renderLinks(h.links.List(spec), h.links.Count())
}

func (h *Handler) removeCommand(ctx context.Context, _ int64, args string) string {
	id, err := parseID(args)
	if err != nil {
		return "Usage: /remove <id>"
	}
	removed, err := h.links.Remove(ctx, id)
	if err != nil {
		h.log.WithError(err).WithField("link_id", id).Error("Failed to remove link")
		return ""
	}
	if !removed {
		return fmt.Sprintf("Link #%d not found.", id)
	}
	return ""
}

func (h *Handler) copyCommand(ctx context.Context, _ int64, args string) string {
	id, err := parseID(args)
	if err != nil {
		return "Usage: /copy <id>"
	}
	url, err := h.links.CopyURL(ctx, id)
	if err != nil {
		return fmt.Sprintf("Link #%d not found.", id)
	}
	return url
}

func (h *Handler) discoverCommand(ctx context.Context, chatID int64, args string) string {
	spec, err := feedSpecFromArgs(args)
	if err != nil {
		return err.Error()
	}

	h.reply(ctx, chatID, "Loading inspiring content...")
	items, err := h.feed.Fetch(ctx)
	if err != nil {
		return ""
	}
	return renderFeed(query.ApplyFeed(items, spec), spec)
}

func (h *Handler) itemCommand(_ context.Context, _ int64, args string) string {
	id, err := parseID(args)
	if err != nil {
		return "Usage: /item <item id>"
	}
	item, ok := h.feed.Get(id)
	if !ok {
		return fmt.Sprintf("Item #%d not found.", id)
	}
	return renderItem(item)
}

func (h *Handler) saveCommand(ctx context.Context, _ int64, args string) string {
	id, err := parseID(args)
	if err != nil {
		return "Usage: /save <item id>"
	}
	item, err := h.feed.ToggleSave(ctx, id)
	switch {
	case errors.Is(err, discover.ErrNotFound):
		return fmt.Sprintf("Item #%d not found.", id)
	case errors.Is(err, discover.ErrBusy):
		return "Still updating that item, please wait."
	case err != nil:
		return ""
	}
	return renderItem(item)
}

func (h *Handler) categoriesCommand(context.Context, int64, string) string {
	return renderCategories(h.links.Categories())
}

func (h *Handler) darkModeCommand(ctx context.Context, _ int64, _ string) string {
	on, err := h.prefs.ToggleDarkMode(ctx)
	if err != nil {
		h.log.WithError(err).Error("Failed to toggle dark mode")
		return "Failed to save your theme preference. Please try again."
	}
	if on {
		return "Dark mode on"
	}
	return "Dark mode off"
}
