package main

import (
	"context"
	"log/slog"
	"os"

	"photocard/config"
	"photocard/internal/delivery"
	"photocard/internal/delivery/api"
	"photocard/internal/delivery/api/router/handler"
	"photocard/internal/domain/entity"
	"photocard/internal/domain/lifecycle"
	"photocard/internal/domain/repository"
	"photocard/internal/errors"
	"photocard/internal/infra/auth/identity"
	"photocard/internal/infra/firebase"
	logs "photocard/internal/infra/log"
	"photocard/internal/infra/persistence/bolt"
	"photocard/internal/infra/persistence/firestore"
	"photocard/internal/infra/pubsub"
	"photocard/internal/infra/storage"
	"photocard/internal/media"
	"photocard/internal/replica"
	"photocard/internal/usecase"
	"photocard/internal/usecase/impl"

	"firebase.google.com/go/v4/auth"
	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectHandler(),
		injectDelivery(),
		fx.Invoke(
			startFeeds,
			pubsub.RegisterChangeRelay,
			bootstrapSession,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			newReplica,
		),
		firebase.Module,
		storage.Module,
		pubsub.Module,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			firestore.NewChangeSource,
			firestore.NewCatalogRepository,
			bolt.NewSearchHistoryRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			newTokenRevoker,
			identity.ProvideAuthenticator,
			media.NewMaterializer,
		),
	)
}

// newTokenRevoker exposes the admin auth client for sign-out.
func newTokenRevoker(client *auth.Client) identity.TokenRevoker {
	return client
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewSessionService,
			impl.NewCatalogService,
			impl.NewSearchHistoryService,
			impl.NewImageService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewStatusHandler,
			handler.NewCatalogHandler,
			handler.NewSessionHandler,
			handler.NewMeHandler,
			handler.NewImageHandler,
			handler.NewEventHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func newReplica(cfg *config.Config, logger *slog.Logger) *replica.Replica {
	return replica.New(replica.Options{
		ReresolvePending: cfg.Replica.ReresolvePending,
	}, logger)
}

// watchedCollections returns the configured collections, or all of them.
func watchedCollections(names []string) ([]entity.Collection, error) {
	if len(names) == 0 {
		return entity.Collections(), nil
	}

	collections := make([]entity.Collection, 0, len(names))
	for _, name := range names {
		c := entity.Collection(name)
		if !c.Valid() {
			return nil, errors.Errorf("unknown collection %q in replica.collections", name)
		}
		collections = append(collections, c)
	}

	return collections, nil
}

// startFeeds subscribes the replica to every watched collection for the
// lifetime of the application.
func startFeeds(lc fx.Lifecycle, cfg *config.Config, source repository.ChangeSource, rep *replica.Replica, logger *slog.Logger) error {
	collections, err := watchedCollections(cfg.Replica.Collections)
	if err != nil {
		return err
	}

	group := replica.NewFeedGroup(collections, source, rep, replica.RetryPolicy{
		MaxRetries: cfg.Replica.Retry.MaxRetries,
		BaseDelay:  cfg.Replica.Retry.BaseDelay,
		MaxDelay:   cfg.Replica.Retry.MaxDelay,
	}, logger)

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			group.Start(ctx)

			return nil
		},
		OnStop: func(context.Context) error {
			group.Stop()

			return nil
		},
	})

	return nil
}

// bootstrapSession signs in anonymously once the application started so
// the replica always tracks a user. A failure leaves no current user.
func bootstrapSession(lc fx.Lifecycle, sessions usecase.SessionUsecase, logger *slog.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				signInCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), lifecycle.DefaultTimeout)
				defer cancel()

				if _, err := sessions.SignInAnonymous(signInCtx); err != nil {
					logger.Warn("Anonymous sign-in failed", slog.Any("error", err))
				}
			}()

			return nil
		},
	})
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
