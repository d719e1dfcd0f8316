package bot

import (
	"context"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	tgbot "github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inspilink/internal/collection"
	"inspilink/internal/config"
	"inspilink/internal/discover"
	"inspilink/internal/notify"
	"inspilink/internal/preferences"
	"inspilink/internal/service"
	"inspilink/internal/simulate"
	"inspilink/internal/storage"
)

const testChat int64 = 7

type fakeSender struct {
	mu   sync.Mutex
	sent []string
	err  error
}

func (f *fakeSender) SendMessage(_ context.Context, params *tgbot.SendMessageParams) (*models.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	f.sent = append(f.sent, params.Text)
	return &models.Message{Text: params.Text}, nil
}

// take returns and forgets everything sent so far.
func (f *fakeSender) take() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := f.sent
	f.sent = nil
	return out
}

func (f *fakeSender) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.sent)
}

func testLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetLevel(logrus.ErrorLevel)
	return l
}

type botFixture struct {
	h     *Handler
	send  *fakeSender
	prefs *preferences.Preferences
	links *service.Links
}

func newBotFixture(t *testing.T, cfg config.Config) botFixture {
	t.Helper()
	return newBotFixtureWithSaveDelay(t, cfg, 0)
}

func newBotFixtureWithSaveDelay(t *testing.T, cfg config.Config, saveDelay time.Duration) botFixture {
	t.Helper()
	log := testLogger()
	kv := storage.NewMemory()

	store := collection.NewStore(kv, log, collection.WithSeed(collection.DemoLinks()))
	store.Load(context.Background())

	links := service.NewLinks(store, simulate.NewLatency(saveDelay), ChatNotifier{}, nil, log)
	feed := discover.NewFeed(discover.Seed(), simulate.NewLatency(0), simulate.NewLatency(0), ChatNotifier{}, log)
	prefs := preferences.New(kv, false, log)

	send := &fakeSender{}
	return botFixture{
		h:     newHandler(send, cfg, links, feed, prefs, log),
		send:  send,
		prefs: prefs,
		links: links,
	}
}

func message(chatID int64, text string) *models.Update {
	return &models.Update{Message: &models.Message{Chat: models.Chat{ID: chatID}, Text: text}}
}

func (f botFixture) run(text string) []string {
	f.h.handleUpdate(context.Background(), nil, message(testChat, text))
	return f.send.take()
}

func TestHandler_Start(t *testing.T) {
	f := newBotFixture(t, config.Config{})

	sent := f.run("/start")
	require.Len(t, sent, 1)
	assert.Contains(t, sent[0], "Your collection: 2 links")
	assert.Contains(t, sent[0], "Theme: light")
	assert.Contains(t, sent[0], "#1 The Complete Guide to UX Research Methods (UX Collective)")
	assert.Contains(t, sent[0], "/discover")
}

func TestHandler_Add(t *testing.T) {
	f := newBotFixture(t, config.Config{})

	sent := f.run("/add go.dev | Go | development | | lang, google")
	require.Len(t, sent, 2)
	assert.True(t, strings.HasPrefix(sent[0], "Saved\n\n#"), sent[0])
	assert.Contains(t, sent[0], "https://go.dev\nDevelopment · ")
	assert.Contains(t, sent[0], "Tags: lang, google")
	assert.Equal(t, "✅ "+notify.MsgLinkSaved, sent[1])
	assert.Equal(t, 3, f.links.Count())

	sent = f.run("/add not a url")
	require.Len(t, sent, 1)
	assert.True(t, strings.HasPrefix(sent[0],
		"Please fix the following:\n• Please enter a valid URL\n• Title is required\n• Category is required\n\nCategories: "), sent[0])
	assert.Equal(t, 3, f.links.Count())

	// Chat is free text, so the category list is enforced on the way in.
	sent = f.run("/add go.dev | Go | Gardening")
	require.Len(t, sent, 1)
	assert.True(t, strings.HasPrefix(sent[0], "Please fix the following:\n• Category is required\n\n"), sent[0])
	sent = f.run("/add go.dev |   | Design")
	assert.Equal(t, []string{"Please fix the following:\n• Title is required"}, sent)
	assert.Equal(t, 3, f.links.Count())

	sent = f.run("/add")
	require.Len(t, sent, 1)
	assert.True(t, strings.HasPrefix(sent[0], "Add New Link"))
}

func TestHandler_List(t *testing.T) {
	f := newBotFixture(t, config.Config{})

	sent := f.run("/list react")
	require.Len(t, sent, 1)
	assert.True(t, strings.HasPrefix(sent[0], "My Link Collection (1 of 2)"), sent[0])
	assert.Contains(t, sent[0], "https://react.dev")

	sent = f.run("/list category=design")
	require.Len(t, sent, 1)
	assert.Contains(t, sent[0], "No links match your current search or filters")

	sent = f.run("/list sort=random")
	require.Len(t, sent, 1)
	assert.Contains(t, sent[0], "unknown sort")
}

func TestHandler_RemoveAndCopy(t *testing.T) {
	f := newBotFixture(t, config.Config{})

	assert.Equal(t, []string{"https://react.dev", "✅ " + notify.MsgURLCopied}, f.run("/copy 2"))
	assert.Equal(t, []string{"Link #99 not found."}, f.run("/copy 99"))

	assert.Equal(t, []string{"✅ " + notify.MsgLinkRemoved}, f.run("/remove 2"))
	assert.Equal(t, []string{"Link #2 not found."}, f.run("/remove 2"))
	assert.Equal(t, []string{"Usage: /remove <id>"}, f.run("/remove two"))
	assert.Equal(t, 1, f.links.Count())
}

func TestHandler_Discover(t *testing.T) {
	f := newBotFixture(t, config.Config{})

	sent := f.run("/discover tab=trending")
	require.Len(t, sent, 2)
	assert.Equal(t, "Loading inspiring content...", sent[0])
	assert.True(t, strings.HasPrefix(sent[1], "Explore Curated Content (7)"), sent[1])

	sent = f.run("/discover category=nowhere")
	require.Len(t, sent, 2)
	assert.Contains(t, sent[1], "No content available in this category")

	sent = f.run("/discover tab=hot")
	require.Len(t, sent, 1)
	assert.Contains(t, sent[0], "unknown tab")
}

func TestHandler_SaveToggle(t *testing.T) {
	f := newBotFixture(t, config.Config{})

	sent := f.run("/save 4")
	require.Len(t, sent, 2)
	assert.Contains(t, sent[0], "199 saves · saved")
	assert.Equal(t, "✅ "+notify.MsgItemSaved, sent[1])

	sent = f.run("/save 4")
	require.Len(t, sent, 2)
	assert.Contains(t, sent[0], "198 saves")
	assert.NotContains(t, sent[0], "· saved")
	assert.Equal(t, "ℹ️ "+notify.MsgItemUnsaved, sent[1])

	assert.Equal(t, []string{"Item #404 not found."}, f.run("/save 404"))
}

func TestHandler_DarkMode(t *testing.T) {
	f := newBotFixture(t, config.Config{})
	ctx := context.Background()

	assert.Equal(t, []string{"Dark mode on"}, f.run("/darkmode"))
	assert.True(t, f.prefs.DarkMode(ctx))
	assert.Contains(t, f.run("/start")[0], "Theme: dark")

	assert.Equal(t, []string{"Dark mode off"}, f.run("/darkmode"))
	assert.False(t, f.prefs.DarkMode(ctx))
}

func TestHandler_Categories(t *testing.T) {
	f := newBotFixture(t, config.Config{})

	sent := f.run("/categories")
	require.Len(t, sent, 1)
	assert.True(t, strings.HasPrefix(sent[0], "Filter by Category\n• All\n• Development\n\n"), sent[0])
}

func TestHandler_NotFoundRedirectsHome(t *testing.T) {
	f := newBotFixture(t, config.Config{NotFoundRedirect: 10 * time.Millisecond})

	sent := f.run("/nope")
	require.Len(t, sent, 1)
	assert.True(t, strings.HasPrefix(sent[0], "404 Page Not Found"))

	require.Eventually(t, func() bool { return f.send.count() == 1 }, time.Second, 5*time.Millisecond)
	home := f.send.take()
	assert.True(t, strings.HasPrefix(home[0], "InspiLink"), home[0])
}

func TestHandler_NavigatingAwayCancelsRedirect(t *testing.T) {
	f := newBotFixture(t, config.Config{NotFoundRedirect: time.Hour})

	f.run("/nope")
	f.h.mu.Lock()
	assert.Len(t, f.h.redirects, 1)
	f.h.mu.Unlock()

	f.run("/help")
	f.h.mu.Lock()
	assert.Empty(t, f.h.redirects)
	f.h.mu.Unlock()
}

func TestHandler_PlainTextAndSendErrors(t *testing.T) {
	f := newBotFixture(t, config.Config{})

	sent := f.run("https://go.dev")
	require.Len(t, sent, 1)
	assert.True(t, strings.HasPrefix(sent[0], "Send a command to get started."))

	// Send failures are logged, never panic.
	f.send.err = assert.AnError
	assert.Empty(t, f.run("/start"))
}

func TestHandler_OwnerOnly(t *testing.T) {
	f := newBotFixture(t, config.Config{OwnerChatID: testChat})

	var handled []int64
	next := func(_ context.Context, _ *tgbot.Bot, update *models.Update) {
		var id int64
		if update.Message != nil {
			id = update.Message.Chat.ID
		}
		handled = append(handled, id)
	}
	mw := f.h.ownerOnly(next)

	mw(context.Background(), nil, message(99, "/start"))
	mw(context.Background(), nil, message(testChat, "/start"))
	mw(context.Background(), nil, &models.Update{})

	assert.Equal(t, []int64{testChat, 0}, handled, "updates without a message pass through")
}

func TestHandler_Item(t *testing.T) {
	f := newBotFixture(t, config.Config{})

	sent := f.run("/item 7")
	require.Len(t, sent, 1)
	assert.True(t, strings.HasPrefix(sent[0], "#7 Build a Morning Routine That Actually Works\nby Optimal Living"), sent[0])

	f.run("/save 7")
	assert.Contains(t, f.run("/item 7")[0], "424 saves", "the item reflects the toggle")

	assert.Equal(t, []string{"Item #404 not found."}, f.run("/item 404"))
	assert.Equal(t, []string{"Usage: /item <item id>"}, f.run("/item"))
}

func TestHandler_HomeShowsSaveInFlight(t *testing.T) {
	f := newBotFixtureWithSaveDelay(t, config.Config{}, 200*time.Millisecond)

	saved := make(chan struct{})
	go func() {
		defer close(saved)
		f.h.handleUpdate(context.Background(), nil, message(testChat, "/add go.dev | Go | Design"))
	}()
	require.Eventually(t, f.links.Saving, time.Second, time.Millisecond)

	sent := f.run("/start")
	require.Len(t, sent, 1)
	assert.Contains(t, sent[0], "Your collection: 2 links\nSaving a link...\nTheme: light")

	<-saved
	f.send.take()
	sent = f.run("/start")
	require.Len(t, sent, 1)
	assert.Contains(t, sent[0], "Your collection: 3 links\nTheme: light")
}

func TestHandler_ServeWaitsForRunningUpdates(t *testing.T) {
	f := newBotFixtureWithSaveDelay(t, config.Config{}, 100*time.Millisecond)
	ctx, cancel := context.WithCancel(context.Background())

	polling := make(chan struct{})
	go f.h.serve(ctx, func(ctx context.Context) {
		close(polling)
		<-ctx.Done()
	})
	<-polling

	saved := make(chan struct{})
	go func() {
		defer close(saved)
		f.h.handleUpdate(context.Background(), nil, message(testChat, "/add go.dev | Go | Design"))
	}()
	require.Eventually(t, f.links.Saving, time.Second, time.Millisecond)

	cancel()
	select {
	case <-f.h.Done():
	case <-time.After(time.Second):
		t.Fatal("serve did not finish")
	}
	select {
	case <-saved:
	default:
		t.Fatal("serve finished while an update was still running")
	}
	assert.Equal(t, 3, f.links.Count())

	// Updates arriving after shutdown are dropped.
	f.send.take()
	f.h.handleUpdate(context.Background(), nil, message(testChat, "/start"))
	assert.Empty(t, f.send.take())
}
