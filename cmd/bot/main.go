package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/KirkDiggler/betabeer/internal/common/clock"
	"github.com/KirkDiggler/betabeer/internal/common/uuid"
	"github.com/KirkDiggler/betabeer/internal/config"
	"github.com/KirkDiggler/betabeer/internal/events"
	"github.com/KirkDiggler/betabeer/internal/handlers/discord"
	groupRepo "github.com/KirkDiggler/betabeer/internal/repositories/group"
	"github.com/KirkDiggler/betabeer/internal/services/betting"
	"github.com/KirkDiggler/betabeer/internal/services/messaging"
	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.Load(".env")
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger := log.StandardLogger()
	if err := cfg.ConfigureLogger(logger); err != nil {
		log.Fatalf("Failed to configure logging: %v", err)
	}

	// Initialize Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	defer redisClient.Close()

	// The repository pings Redis on creation
	groups, err := groupRepo.NewRedis(&groupRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		logger.WithError(err).Fatal("Failed to create group repository")
	}

	publisher, err := newPublisher(cfg)
	if err != nil {
		logger.WithError(err).Fatal("Failed to create event publisher")
	}
	defer func() {
		if err := publisher.Close(); err != nil {
			logger.WithError(err).Warn("Failed to close event publisher")
		}
	}()

	bettingSvc, err := betting.New(&betting.Config{
		GroupRepo:     groups,
		Publisher:     publisher,
		Clock:         clock.New(),
		UUIDGenerator: uuid.New(),
		Logger:        logger,
	})
	if err != nil {
		logger.WithError(err).Fatal("Failed to create betting service")
	}

	messagingSvc, err := messaging.NewService(&messaging.ServiceConfig{})
	if err != nil {
		logger.WithError(err).Fatal("Failed to create messaging service")
	}

	bot, err := discord.New(&discord.Config{
		Token:            cfg.DiscordToken,
		ApplicationID:    cfg.ApplicationID,
		GuildID:          cfg.GuildID,
		BettingService:   bettingSvc,
		MessagingService: messagingSvc,
		Logger:           logger,
	})
	if err != nil {
		logger.WithError(err).Fatal("Failed to create Discord bot")
	}

	if err := bot.Start(); err != nil {
		logger.WithError(err).Fatal("Failed to start Discord bot")
	}

	// Wait for interrupt signal to gracefully shutdown
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	if err := bot.Stop(); err != nil {
		logger.WithError(err).Error("Error stopping bot")
	}

	logger.Info("Bot has been shut down")
}

// newPublisher sends events to NATS when configured and drops them otherwise
func newPublisher(cfg *config.Config) (events.Publisher, error) {
	if !cfg.EventsEnabled() {
		return events.NewNoop(), nil
	}
	publisher, err := events.NewNATS(&events.NATSConfig{
		URL:           cfg.NATSURL,
		SubjectPrefix: cfg.NATSSubjectPrefix,
		Name:          "betabeer",
	})
	if err != nil {
		return nil, err
	}
	return publisher, nil
}
