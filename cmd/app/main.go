package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Domenick1991/courtbooking/config"
	"github.com/Domenick1991/courtbooking/internal/bootstrap"
	"github.com/Domenick1991/courtbooking/internal/cache"
	"github.com/Domenick1991/courtbooking/internal/kafka"
	"github.com/Domenick1991/courtbooking/internal/parser"
	"github.com/Domenick1991/courtbooking/internal/repository"
	"github.com/Domenick1991/courtbooking/internal/service/availability"
	"github.com/Domenick1991/courtbooking/internal/service/booking"
	"github.com/Domenick1991/courtbooking/internal/workflow"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var steps workflow.Steps
	var availabilitySvc availability.UseCase
	var bookingSvc booking.UseCase

	if remoteStepsConfigured(cfg) {
		// The step services own the schedule state, so this process only
		// runs the workflow; the slot and booking read routes live with
		// the step server.
		log.Printf("using remote step services")
		steps = workflow.NewRemoteSteps(
			cfg.Steps.ParserURL,
			cfg.Steps.AvailabilityURL,
			cfg.Steps.BookingURL,
			time.Duration(cfg.Steps.TimeoutSeconds)*time.Second,
		)
	} else {
		repo := repository.NewMemorySlotRepository(
			time.Now(),
			cfg.Schedule.HorizonDays,
			cfg.Schedule.Courts,
			cfg.Schedule.Times,
			cfg.Schedule.SlotMinutes,
		)

		var availabilityCache *cache.RedisCache
		if cfg.Redis.Addr != "" {
			availabilityCache = cache.NewRedisCache(cfg.Redis, time.Duration(cfg.Schedule.AvailabilityCacheTTL)*time.Second)
		}
		availabilitySvc = availability.NewService(repo, cacheOrNil(availabilityCache))

		bookingOpts := []booking.ServiceOption{}
		if availabilityCache != nil {
			bookingOpts = append(bookingOpts, booking.WithCache(availabilityCache))
		}
		if len(cfg.Kafka.Brokers) > 0 {
			producer := kafka.NewProducer(cfg.Kafka.Brokers)
			defer producer.Close()
			bookingOpts = append(bookingOpts, booking.WithProducer(producer, cfg.Kafka.NotificationsTopic))
		}
		bookingSvc = booking.NewService(repo, bookingOpts...)

		intentParser, err := parser.NewGeminiParser(ctx, cfg.Parser.APIKey(), cfg.Parser.Model)
		if err != nil {
			log.Fatalf("create parser: %v", err)
		}
		defer intentParser.Close()

		steps = workflow.NewLocalSteps(intentParser, availabilitySvc, bookingSvc)
	}

	engine := workflow.NewEngine(steps)

	if err := bootstrap.Run(ctx, cfg, engine, availabilitySvc, bookingSvc); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

func remoteStepsConfigured(cfg *config.Config) bool {
	return cfg.Steps.ParserURL != "" && cfg.Steps.AvailabilityURL != "" && cfg.Steps.BookingURL != ""
}

// cacheOrNil keeps a typed nil out of the availability.Cache interface.
func cacheOrNil(c *cache.RedisCache) availability.Cache {
	if c == nil {
		return nil
	}
	return c
}
