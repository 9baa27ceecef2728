package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/xavierca1/ligue-landing/internal/config"
	"github.com/xavierca1/ligue-landing/internal/infra/database"
	"github.com/xavierca1/ligue-landing/internal/infra/http/handlers"
	"github.com/xavierca1/ligue-landing/internal/infra/logger"
	"github.com/xavierca1/ligue-landing/internal/infra/mail"
	"github.com/xavierca1/ligue-landing/internal/infra/queue"
	"github.com/xavierca1/ligue-landing/internal/usecase"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		log.Fatal(err)
	}

	zl, err := logger.New(cfg.App.Environment, cfg.App.LogLevel)
	if err != nil {
		log.Fatal(err)
	}
	defer zl.Sync()
	zap.ReplaceGlobals(zl)
	ctx = logger.WithContext(ctx, zl)

	if err := run(ctx, cfg, zl); err != nil {
		zl.Fatal("server stopped with error", zap.Error(err))
	}
}

func run(ctx context.Context, cfg *config.Config, zl *zap.Logger) error {
	db, err := database.NewDBConnection(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer db.Close()

	if cfg.Database.AutoMigrate {
		if err := database.Migrate(ctx, db); err != nil {
			return err
		}
	}

	// 1. Repositórios
	leadRepo := database.NewLeadRepository(db)
	contactRepo := database.NewContactFormRepository(db)
	newsletterRepo := database.NewNewsletterRepository(db)
	analyticsRepo := database.NewAnalyticsEventRepository(db)

	// 2. Eventos e e-mail, ambos opcionais
	var (
		publisher queue.Publisher = queue.NopPublisher{}
		broker    handlers.BrokerState
	)
	if cfg.AMQP.Enabled() {
		rabbitMQ, err := queue.NewRabbitMQ(cfg.AMQP.URL)
		if err != nil {
			return err
		}
		defer rabbitMQ.Close()
		publisher = queue.NewProducer(rabbitMQ.Ch)
		broker = rabbitMQ.Conn
	} else {
		zl.Warn("AMQP_URL not set, domain events disabled")
	}

	var notifier usecase.NotificationService
	if cfg.Mail.Enabled() {
		notifier = mail.NewEmailSender(cfg.Mail)
	} else {
		zl.Warn("MAIL_HOST or MAIL_NOTIFY_TO not set, contact notifications disabled")
	}

	// 3. UseCases
	createLeadUC := usecase.NewCreateLeadUseCase(leadRepo, publisher)
	getLeadsUC := usecase.NewGetLeadsUseCase(leadRepo)
	updateLeadStatusUC := usecase.NewUpdateLeadStatusUseCase(leadRepo, publisher)
	createContactFormUC := usecase.NewCreateContactFormUseCase(leadRepo, contactRepo, publisher, notifier)
	subscribeUC := usecase.NewCreateNewsletterSubscriptionUseCase(newsletterRepo, publisher)
	unsubscribeUC := usecase.NewUnsubscribeNewsletterUseCase(newsletterRepo, publisher)
	listSubscriptionsUC := usecase.NewGetNewsletterSubscriptionsUseCase(newsletterRepo)
	createEventUC := usecase.NewCreateAnalyticsEventUseCase(analyticsRepo)

	// 4. Handlers
	routes := Routes{
		Leads:       handlers.NewLeadHandler(createLeadUC, getLeadsUC, updateLeadStatusUC),
		Contact:     handlers.NewContactFormHandler(createContactFormUC),
		Newsletter:  handlers.NewNewsletterHandler(subscribeUC, unsubscribeUC, listSubscriptionsUC),
		Analytics:   handlers.NewAnalyticsHandler(createEventUC),
		Health:      handlers.NewHealthHandler(db, broker, cfg.Mail.Enabled(), cfg.App.Version),
		Logger:      zl,
		CORSOrigins: cfg.Server.AllowedOrigins,
	}

	srv := &http.Server{
		Addr:         cfg.Server.GetServerAddr(),
		Handler:      NewRouter(routes),
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		zl.Info("landing API listening", zap.String("addr", srv.Addr), zap.String("version", cfg.App.Version))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	zl.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
