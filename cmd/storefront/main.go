package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/brasalia01/aloomia-ecommerce-hub-sub000/internal/config"
	"github.com/brasalia01/aloomia-ecommerce-hub-sub000/internal/delivery/httpapi"
	"github.com/brasalia01/aloomia-ecommerce-hub-sub000/internal/delivery/httpapi/handlers"
	"github.com/brasalia01/aloomia-ecommerce-hub-sub000/internal/domain"
	"github.com/brasalia01/aloomia-ecommerce-hub-sub000/internal/infrastructure/kafka"
	"github.com/brasalia01/aloomia-ecommerce-hub-sub000/internal/infrastructure/metrics"
	"github.com/brasalia01/aloomia-ecommerce-hub-sub000/internal/infrastructure/migrate"
	"github.com/brasalia01/aloomia-ecommerce-hub-sub000/internal/infrastructure/postgres"
	"github.com/brasalia01/aloomia-ecommerce-hub-sub000/internal/infrastructure/postgres/repository"
	"github.com/brasalia01/aloomia-ecommerce-hub-sub000/internal/usecase"
	orderusecase "github.com/brasalia01/aloomia-ecommerce-hub-sub000/internal/usecase/order"
	paymentusecase "github.com/brasalia01/aloomia-ecommerce-hub-sub000/internal/usecase/payment"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("failed to load .env")
	}
	// Reading config
	cfg := config.MustLoad()
	// Init database
	db := postgres.MustInitDB(cfg)

	if cfg.StoreDB.MigrationsPath != "" {
		if err := migrate.RunMigrations(db, cfg.StoreDB.MigrationsPath); err != nil {
			log.Fatalf("failed to run migrations: %v", err)
		}
	} else {
		if err := postgres.AutoMigrate(db); err != nil {
			log.Fatalf("failed to auto-migrate: %v", err)
		}
	}

	brokers := []string{fmt.Sprintf("%s:%s", cfg.Kafka.Host, cfg.Kafka.Port)}
	pub := kafka.NewDefaultKafkaPublisher(brokers)
	defer pub.Close()
	sub := kafka.NewDefaultKafkaSubscriber(brokers)

	storeMetrics := metrics.NewStoreMetrics()
	txManager := repository.NewGormTxManager(db)

	// Init repositories
	orderRepo := repository.NewDefaultOrderRepository(db)
	paymentRepo := repository.NewDefaultPaymentRepository(db)
	receiverRepo := repository.NewDefaultReceiverRepository(db)
	productRepo := repository.NewDefaultProductRepository(db)
	categoryRepo := repository.NewDefaultCategoryRepository(db)
	reviewRepo := repository.NewDefaultReviewRepository(db)
	chatRepo := repository.NewDefaultChatRepository(db)
	notificationRepo := repository.NewDefaultNotificationRepository(db)
	profileRepo := repository.NewDefaultProfileRepository(db)
	newsletterRepo := repository.NewDefaultNewsletterRepository(db)

	// Init usecases
	orderUc := orderusecase.NewDefaultOrderUsecase(orderRepo, paymentRepo, txManager, pub, storeMetrics)
	paymentUc := paymentusecase.NewDefaultPaymentUsecase(
		paymentRepo,
		receiverRepo,
		orderRepo,
		notificationRepo,
		txManager,
		pub,
		storeMetrics,
	)
	catalogUc := usecase.NewDefaultCatalogUsecase(productRepo, categoryRepo)
	reviewUc := usecase.NewDefaultReviewUsecase(reviewRepo, orderRepo)
	chatUc := usecase.NewDefaultChatUsecase(chatRepo, pub)
	notificationUc := usecase.NewDefaultNotificationUsecase(notificationRepo)
	newsletterUc := usecase.NewDefaultNewsletterUsecase(newsletterRepo)
	profileUc := usecase.NewDefaultProfileUsecase(profileRepo)
	analyticsUc := usecase.NewDefaultAnalyticsUsecase(orderRepo, profileRepo)

	router := httpapi.NewRouter(httpapi.RouterDeps{
		JWTSecret: cfg.Auth.JWTSecret,
		Orders:    handlers.NewOrderHandler(orderUc),
		Payments:  handlers.NewPaymentHandler(paymentUc),
		Catalog:   handlers.NewCatalogHandler(catalogUc),
		Reviews:   handlers.NewReviewHandler(reviewUc),
		Chats:     handlers.NewChatHandler(chatUc),
		Store:     handlers.NewStoreHandler(notificationUc, newsletterUc, profileUc, analyticsUc),
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Stale-order sweeper
	go func() {
		ticker := time.NewTicker(cfg.Payments.SweepInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if err := orderUc.CancelStaleOrders(ctx, cfg.Payments.StaleOrderTTL); err != nil {
					slog.Error("stale order sweep failed", "error", err.Error())
				}
			}
		}
	}()

	// Event feed consumer. Keeps an audit trail of everything published to
	// the order and payment topics.
	go consumeEvents(ctx, sub)

	server := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", cfg.HTTPServer.Host, cfg.HTTPServer.Port),
		Handler: router,
	}

	go func() {
		slog.Info("storefront service listening", "addr", server.Addr, "env", cfg.Env)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("failed to serve: %v", err)
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("server shutdown failed", "error", err.Error())
	}
}

func consumeEvents(ctx context.Context, sub *kafka.DefaultKafkaSubscriber) {
	for _, topic := range []string{kafka.TopicOrders, kafka.TopicPayments} {
		messages, err := sub.Subscribe(topic, "storefront-audit")
		if err != nil {
			slog.Error("failed to subscribe", "topic", topic, "error", err.Error())
			continue
		}
		go func(topic string, messages <-chan domain.Message) {
			for {
				select {
				case <-ctx.Done():
					return
				case msg, ok := <-messages:
					if !ok {
						return
					}
					slog.Info("event", "topic", topic, "key", string(msg.Key), "payload", string(msg.Value))
				}
			}
		}(topic, messages)
	}
	<-ctx.Done()
}
