package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	"inspilink/internal/bot"
	"inspilink/internal/collection"
	"inspilink/internal/config"
	"inspilink/internal/discover"
	"inspilink/internal/notify"
	"inspilink/internal/preferences"
	"inspilink/internal/scraper"
	"inspilink/internal/service"
	"inspilink/internal/simulate"
	"inspilink/internal/storage"
)

func main() {
	// --- Configuration Loading ---
	cfg, err := config.LoadConfig("./configs")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	// --- Logger Setup ---
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetOutput(os.Stdout)
	// validate already parsed the level once.
	lvl, _ := cfg.Level()
	log.SetLevel(lvl)

	log.WithFields(logrus.Fields{
		"badgerdb_path":   cfg.BadgerDBPath,
		"owner_chat_id":   cfg.OwnerChatID,
		"scraper_enabled": cfg.ScraperEnabled,
		"failure_rate":    cfg.SimulatedFailureRate,
	}).Info("Configuration loaded successfully")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// --- Initialize Components ---
	log.Info("Initializing components...")

	// Database
	kv, err := storage.NewBadgerKV(cfg.BadgerDBPath, log)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer func() {
		log.Info("Closing database...")
		if err := kv.Close(); err != nil {
			log.WithError(err).Error("Error closing database")
		}
	}()
	go kv.RunGC(ctx, cfg.GCInterval)

	notifier := notify.Multi{notify.NewLogNotifier(log), bot.ChatNotifier{}}

	// Collection
	var storeOpts []collection.Option
	if cfg.SeedDemoLinks {
		storeOpts = append(storeOpts, collection.WithSeed(collection.DemoLinks()))
	}
	store := collection.NewStore(kv, log, storeOpts...)
	links := store.Load(ctx)
	log.WithField("link_count", len(links)).Info("Collection loaded")

	prefs := preferences.New(kv, cfg.DarkModeDefault, log)

	// Simulated backend
	failRate := simulate.WithFailureRate(cfg.SimulatedFailureRate)
	feed := discover.NewFeed(discover.Seed(),
		simulate.NewLatency(cfg.FetchDelay, failRate),
		simulate.NewLatency(cfg.ToggleDelay, failRate),
		notifier, log)

	// Scraper
	var scr scraper.Scraper
	if cfg.ScraperEnabled {
		scr = scraper.NewRodScraper(cfg.ScrapeTimeout, log)
	}

	linkService := service.NewLinks(store, simulate.NewLatency(cfg.SaveDelay, failRate), notifier, scr, log)

	// Bot Handler
	botHandler, err := bot.NewHandler(cfg, linkService, feed, prefs, log)
	if err != nil {
		log.Fatalf("Failed to initialize Telegram bot handler: %v", err)
	}

	// --- Application Startup ---
	log.Info("Starting InspiLink...")
	go botHandler.Start(ctx)

	log.Info("InspiLink is running. Press Ctrl+C to exit.")

	// --- Wait for Shutdown Signal ---
	<-ctx.Done()

	log.Info("Shutting down InspiLink...")
	stop()

	// Handlers still running may write to the database closed below.
	<-botHandler.Done()

	log.Info("InspiLink shut down gracefully.")
}
