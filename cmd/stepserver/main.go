package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/Domenick1991/courtbooking/api"
	"github.com/Domenick1991/courtbooking/config"
	availabilityapi "github.com/Domenick1991/courtbooking/internal/api/availability_service_api"
	bookingapi "github.com/Domenick1991/courtbooking/internal/api/booking_service_api"
	parserapi "github.com/Domenick1991/courtbooking/internal/api/parser_service_api"
	"github.com/Domenick1991/courtbooking/internal/kafka"
	"github.com/Domenick1991/courtbooking/internal/parser"
	"github.com/Domenick1991/courtbooking/internal/repository"
	"github.com/Domenick1991/courtbooking/internal/service/availability"
	"github.com/Domenick1991/courtbooking/internal/service/booking"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

// stepserver runs the workflow step services for the remote topology.
// -step selects which steps this process serves. The availability and
// booking steps share one in-memory repository, so they must run in the
// same process; the parser step is stateless and can run anywhere.
// Because the repository lives here, this process also serves the public
// slot and booking read routes for the state it owns.
func main() {
	_ = godotenv.Load()

	steps := flag.String("step", "all", "comma-separated steps to serve: parse, availability, book, or all")
	addr := flag.String("addr", ":8090", "listen address")
	flag.Parse()

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

	serve := map[string]bool{}
	for _, s := range strings.Split(*steps, ",") {
		serve[strings.TrimSpace(s)] = true
	}
	if serve["all"] {
		serve["parse"] = true
		serve["availability"] = true
		serve["book"] = true
	}

	router := gin.Default()
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	if serve["parse"] {
		intentParser, err := parser.NewGeminiParser(ctx, cfg.Parser.APIKey(), cfg.Parser.Model)
		if err != nil {
			log.Fatalf("create parser: %v", err)
		}
		defer intentParser.Close()
		parserapi.NewServer(intentParser).Register(router)
	}

	if serve["availability"] || serve["book"] {
		repo := repository.NewMemorySlotRepository(
			time.Now(),
			cfg.Schedule.HorizonDays,
			cfg.Schedule.Courts,
			cfg.Schedule.Times,
			cfg.Schedule.SlotMinutes,
		)

		if serve["availability"] {
			availabilitySvc := availability.NewService(repo, nil)
			availabilityapi.NewServer(availabilitySvc).Register(router)
			api.NewSlotHandler(availabilitySvc).Register(router.Group("/slots"))
		}
		if serve["book"] {
			opts := []booking.ServiceOption{}
			if len(cfg.Kafka.Brokers) > 0 {
				producer := kafka.NewProducer(cfg.Kafka.Brokers)
				defer producer.Close()
				opts = append(opts, booking.WithProducer(producer, cfg.Kafka.NotificationsTopic))
			}
			bookingSvc := booking.NewService(repo, opts...)
			bookingapi.NewServer(bookingSvc).Register(router)
			api.NewBookingHandler(bookingSvc).Register(router.Group("/bookings"))
		}
	}

	httpServer := &http.Server{Addr: *addr, Handler: router}

	errCh := make(chan error, 1)
	go func() { errCh <- httpServer.ListenAndServe() }()

	select {
	case err := <-errCh:
		log.Fatalf("server error: %v", err)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			log.Printf("shutdown http server: %v", err)
		}
	}
}
