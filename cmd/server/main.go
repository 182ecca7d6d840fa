package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/letterdrop/internal/auth"
	appconfig "github.com/dmitrymomot/letterdrop/internal/config"
	"github.com/dmitrymomot/letterdrop/internal/newsletter"
	"github.com/dmitrymomot/letterdrop/internal/server"
	"github.com/dmitrymomot/letterdrop/internal/storage"
	"github.com/dmitrymomot/letterdrop/internal/subscription"
	"github.com/dmitrymomot/letterdrop/pkg/config"
	"github.com/dmitrymomot/letterdrop/pkg/email"
	"github.com/dmitrymomot/letterdrop/pkg/httpserver"
	"github.com/dmitrymomot/letterdrop/pkg/logger"
	"github.com/dmitrymomot/letterdrop/pkg/pg"
)

func main() {
	var appCfg appconfig.AppConfig
	config.MustLoad(&appCfg)

	log := logger.New(
		logger.WithEnvironment(appCfg.Environment, appCfg.ServiceName),
		logger.WithContextValue("request_id", middleware.RequestIDKey),
	)
	logger.SetAsDefault(log)

	if err := run(context.Background(), appCfg, log); err != nil {
		log.Error("service stopped with error", logger.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, appCfg appconfig.AppConfig, log *slog.Logger) error {
	var pgCfg pg.Config
	config.MustLoad(&pgCfg)

	pool, err := pg.Connect(ctx, pgCfg)
	if err != nil {
		return err
	}
	defer pool.Close()

	if err := pg.Migrate(ctx, pool, pgCfg, log); err != nil {
		return err
	}

	sender, err := newEmailSender(appCfg, log)
	if err != nil {
		return err
	}

	subscriptionStore := storage.NewSubscriptionStore(pool)
	credentialStore := storage.NewCredentialStore(pool)

	verifier := auth.NewVerifier(credentialStore, auth.WithLogger(log))
	subscriptions := subscription.NewService(subscriptionStore, sender, appCfg.BaseURL,
		subscription.WithLogger(log),
	)
	newsletters := newsletter.NewService(verifier, subscriptionStore, sender,
		newsletter.WithLogger(log),
	)

	srv := server.New(subscriptions, newsletters,
		server.WithLogger(log),
		server.WithHealthcheck(pg.Healthcheck(pool)),
	)

	var httpCfg httpserver.Config
	config.MustLoad(&httpCfg)

	return httpserver.New(httpCfg, log).Run(ctx, srv.Router())
}

// newEmailSender picks the Postmark transport when credentials are present
// and falls back to the on-disk dev sender otherwise.
func newEmailSender(appCfg appconfig.AppConfig, log *slog.Logger) (email.EmailSender, error) {
	var emailCfg email.Config
	config.MustLoad(&emailCfg)

	if emailCfg.PostmarkServerToken == "" || emailCfg.PostmarkAccountToken == "" {
		log.Warn("postmark credentials absent, writing emails to disk",
			slog.String("dir", appCfg.DevEmailDir),
		)
		return email.NewDevSender(appCfg.DevEmailDir), nil
	}

	return email.NewPostmarkClient(emailCfg)
}
