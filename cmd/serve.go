package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/samandr77/microservices/portal/internal/api"
	"github.com/samandr77/microservices/portal/internal/api/events"
	"github.com/samandr77/microservices/portal/internal/clients/mailer"
	"github.com/samandr77/microservices/portal/internal/repository"
	"github.com/samandr77/microservices/portal/internal/seed"
	"github.com/samandr77/microservices/portal/internal/service"
	"github.com/samandr77/microservices/portal/pkg/broker"
	"github.com/samandr77/microservices/portal/pkg/config"
	"github.com/samandr77/microservices/portal/pkg/i18n"
	"github.com/samandr77/microservices/portal/pkg/job"
	"github.com/samandr77/microservices/portal/pkg/logger"
)

const (
	ReadTimeout  = 5 * time.Second
	WriteTimeout = 10 * time.Second
)

//nolint:funlen
func serve(parent context.Context, envPath string) error {
	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	cfg, err := config.New(envPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	l := logger.New(logger.ParseLevel(cfg.Logger.Level))

	data, err := seed.Load()
	panicOnErr("load seed data", err)

	err = data.Validate()
	panicOnErr("validate seed data", err)

	catalog := i18n.DefaultCatalog()
	if missing := catalog.MissingKeys(); len(missing) > 0 {
		slog.WarnContext(ctx, "untranslated messages", "keys", missing)
	}

	store := repository.NewStore(repository.NewNetwork(cfg.Mock.Latency, cfg.Mock.Offline), data)

	var publisher service.Publisher = broker.NewLogPublisher(l)

	if cfg.Kafka.Enabled() {
		producer := broker.NewProducer(l, cfg.Kafka.Brokers)
		defer producer.Close()

		publisher = producer
	}

	var mail service.Mailer

	if cfg.Mailer.Enabled() {
		mail = mailer.New(cfg.Mailer)
	}

	s := service.New(store, catalog, publisher, mail, service.Config{
		InquiryTopic:  cfg.Kafka.InquiryTopic,
		ChatTopic:     cfg.Kafka.ChatTopic,
		Inbox:         cfg.Mailer.Inbox,
		ChatRetention: cfg.Jobs.ChatRetention,
	})

	// Kafka consumers
	if cfg.Kafka.Enabled() {
		consumer := broker.NewConsumer(l, cfg.Kafka.Brokers, cfg.Kafka.ConsumerID, cfg.Kafka.InquiryTopic)
		defer consumer.Close()

		eventHandler := events.NewEventHandler(s)

		consumer.Handle(cfg.Kafka.InquiryTopic, eventHandler.OnInquirySubmitted)
		consumer.Consume(ctx)
	}

	{
		job.NewService().
			RegisterJob("expire offers", cfg.Jobs.OffersExpiryInterval, s.ExpireOffers).
			RegisterJob("trim chat", cfg.Jobs.ChatTrimInterval, s.TrimChat).
			Start(ctx)
	}

	locale := i18n.MustParse(cfg.Locale.Default)

	handler := api.NewHandler(s, catalog)
	mw := api.NewMiddleware(catalog, locale, cfg.Auth.JWTSecret)

	router := api.NewRouter(handler, mw)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:      router,
		ReadTimeout:  ReadTimeout,
		WriteTimeout: WriteTimeout,
	}

	var wg sync.WaitGroup

	wg.Add(1)

	go func() {
		defer wg.Done()

		slog.InfoContext(ctx, "http server started",
			"port", cfg.HTTP.Port,
			"default_locale", locale.String(),
			"mock_latency", cfg.Mock.Latency.String(),
			"kafka", cfg.Kafka.Enabled(),
			"mailer", cfg.Mailer.Enabled(),
		)

		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Panicf("listen and serve: %s", err)
		}

		slog.DebugContext(ctx, "http server stopped")
	}()

	waitSignal(cancel, server)

	wg.Wait()

	return nil
}

func waitSignal(cancel context.CancelFunc, server *http.Server) {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	sig := <-ch

	slog.Info("got OS signal", "signal", sig.String())

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), time.Second)
	defer shutdownCancel()

	err := server.Shutdown(shutdownCtx)
	if err != nil {
		slog.ErrorContext(shutdownCtx, "server shutdown", "error", err)
	}
}
