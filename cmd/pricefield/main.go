package main

import (
	"context"
	"log/slog"
	"os"

	"pricefield/config"
	"pricefield/internal/delivery"
	"pricefield/internal/delivery/http"
	"pricefield/internal/delivery/http/middleware"
	"pricefield/internal/delivery/http/router/handler"
	"pricefield/internal/domain/service"
	"pricefield/internal/infra/clock"
	"pricefield/internal/infra/idgen"
	logs "pricefield/internal/infra/log"
	"pricefield/internal/infra/persistence/kv"
	"pricefield/internal/infra/pubsub"
	"pricefield/internal/infra/qrcode"
	"pricefield/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		kv.NewStore,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			kv.NewUserRepository,
			kv.NewShopRepository,
			kv.NewProductRepository,
			kv.NewShopProductRepository,
			kv.NewPriceUpdateRepository,
			kv.NewSubscriptionRepository,
			kv.NewPaymentRepository,
			kv.NewFavoriteRepository,
			kv.NewSettingsRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			clock.NewSystemClock,
			idgen.NewGenerator,
			pubsub.NewEventPublisher,
			newQRCodeService,
		),
	)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		// Use default values if not configured
		return qrcode.NewQRCodeService(256, "M")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewUserService,
			impl.NewShopService,
			impl.NewProductService,
			impl.NewPriceService,
			impl.NewComparisonService,
			impl.NewHistoryService,
			impl.NewShopPriceService,
			impl.NewSubscriptionService,
			impl.NewPaymentService,
			impl.NewFavoriteService,
			impl.NewSearchService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewUserHandler,
			handler.NewShopHandler,
			handler.NewProductHandler,
			handler.NewPriceHandler,
			handler.NewComparisonHandler,
			handler.NewSubscriptionHandler,
			handler.NewPaymentHandler,
			handler.NewFavoriteHandler,
			handler.NewSearchHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
