package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/khangviet/storefront/config"
	"github.com/khangviet/storefront/internal/admin"
	"github.com/khangviet/storefront/internal/controller"
	backendapi "github.com/khangviet/storefront/internal/infrastructure/backend-api"
	imagehost "github.com/khangviet/storefront/internal/infrastructure/image-host"
	"github.com/khangviet/storefront/internal/infrastructure/message-queue/kafka"
	"github.com/khangviet/storefront/internal/infrastructure/tracing"
	localmiddleware "github.com/khangviet/storefront/internal/middleware"
	"github.com/khangviet/storefront/internal/repository"
	"github.com/khangviet/storefront/internal/service"
	"github.com/khangviet/storefront/pkg/httpclient"
	"github.com/khangviet/storefront/pkg/response"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel/trace"
)

const bodyLimit = "11M"

type App struct {
	Config    *config.Config
	Storage   repository.StorageRepository
	Backend   *backendapi.Client
	Publisher kafka.Publisher
	Uploader  imagehost.Uploader
	Notifier  service.Notifier
	Server    *echo.Echo
	Metrics   *prometheus.Registry

	sessions  service.SessionService
	carts     *service.CartServiceImpl
	registry  *admin.Registry
	scheduler gocron.Scheduler
	closers   []func() error
}

func InitLogger() zerolog.Logger {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	log.Logger = logger
	zerolog.DefaultContextLogger = &log.Logger
	return logger
}

// connect fills every dependency that was not provided by the caller.
func (app *App) connect(ctx context.Context) error {
	if app.Storage == nil {
		storage, closer, err := OpenStorage(ctx, app.Config)
		if err != nil {
			return err
		}
		app.Storage = storage
		app.closers = append(app.closers, closer)
	}

	if app.Backend == nil {
		app.Backend = backendapi.CreateNewClient(app.Config.BackendConfig)
	}

	if app.Publisher == nil {
		app.Publisher = kafka.NoopPublisher{}
		if app.Config.KafkaConfig.BrokerAddress != "" {
			publisher, err := kafka.CreateKafkaProducer(ctx, app.Config)
			if err != nil {
				log.Error().Err(err).Msg("Failed to connect to kafka, events will be dropped")
			} else {
				app.Publisher = publisher
				app.closers = append(app.closers, publisher.Close)
			}
		}
	}

	if app.Uploader == nil {
		app.Uploader = imagehost.CreateCloudinaryUploader(app.Config.ImageHostConfig, httpclient.NewClient(time.Minute))
	}

	if app.Notifier == nil {
		app.Notifier = service.CreateEmailNotifier(app.Config.SMTPConfig)
	}

	return nil
}

// Setup builds the echo server and every route on top of the connected dependencies.
func (app *App) Setup(tracer trace.Tracer) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	if tracer != nil {
		e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
			return func(c echo.Context) error {
				// span creation and naming
				ctx, span := tracer.Start(c.Request().Context(), fmt.Sprintf("[%s] %s", c.Request().Method, c.Path()))
				defer span.End()

				req := c.Request()
				c.SetRequest(req.WithContext(ctx))

				return next(c)
			}
		})
	}

	// collectors live on a registry owned by this server, never the global one
	app.Metrics = prometheus.NewRegistry()
	app.Metrics.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{Registerer: app.Metrics}))
	e.Use(middleware.Recover())
	e.Use(localmiddleware.Logger)
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     app.Config.AllowedOrigins,
		AllowCredentials: true,
	}))
	e.Use(middleware.Gzip())
	e.Use(middleware.BodyLimit(bodyLimit))

	carts := service.CreateCartService(app.Storage)
	auth := service.CreateAuthService(app.Backend, app.Storage)
	sessions := service.CreateSessionService(carts, auth)
	shop := service.CreateShopService(app.Backend, carts)
	checkout := service.CreateCheckoutService(app.Backend, carts, app.Publisher, app.Notifier)
	gallery := service.CreateGalleryService(app.Backend)
	uploads := service.CreateUploadService(app.Uploader, app.Config.ImageHostConfig.Concurrency)
	registry := admin.CreateRegistry(app.Backend, app.Publisher)

	app.carts = carts
	app.sessions = sessions
	app.registry = registry

	g := e.Group("/api/v1")

	g.GET("/ping", func(c echo.Context) error {
		return response.WriteSuccessResponse(c, "Hello, World!", nil)
	})

	g.Use(localmiddleware.Session(app.Config.SessionConfig, app.Config.Environment == "production", auth, sessions))

	controller.CreateSessionController(g, sessions)
	controller.CreateShopController(g, shop)
	controller.CreateCartController(g, carts, shop)
	controller.CreateCheckoutController(g, checkout)
	controller.CreateGalleryController(g, gallery)
	controller.CreateCalendarController(g)
	controller.CreateAuthController(g, auth)
	controller.CreateAdminController(g, registry, uploads, localmiddleware.RequireAdmin(auth))

	app.Server = e
	return e
}

// SweepSessions forgets sessions idle past the configured timeout along with
// their admin workspaces and cart locks.
func (app *App) SweepSessions() {
	evicted := app.sessions.Sweep(app.Config.SessionConfig.IdleTimeout)
	app.registry.Evict(evicted...)
	for _, id := range evicted {
		app.carts.Forget(id)
	}
	swept := app.registry.Sweep(app.Config.SessionConfig.IdleTimeout)
	if len(evicted) > 0 || swept > 0 {
		log.Info().Int("sessions", len(evicted)).Int("workspaces", swept).Msg("Idle sessions swept")
	}
}

func (app *App) Start() error {
	logger := InitLogger()
	ctx := context.Background()

	traceProvider, err := tracing.InitTracing(app.Config.TracingConfig.CollectorHost)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize tracing")
	}

	defer func() {
		if err := traceProvider.Shutdown(context.Background()); err != nil {
			logger.Error().Err(err).Msg("Failed to shutdown tracing")
		}
	}()

	if err := app.connect(ctx); err != nil {
		return err
	}

	e := app.Setup(traceProvider.Tracer(tracing.ServiceName))

	go func() {
		metrics := echo.New()
		metrics.HideBanner = true
		metrics.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: app.Metrics}))
		if err := metrics.Start(fmt.Sprintf(":%s", app.Config.MetricsPort)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start metrics server")
		}
	}()

	s, err := gocron.NewScheduler()
	if err != nil {
		return err
	}

	_, err = s.NewJob(
		gocron.DurationJob(
			app.Config.SessionConfig.SweepInterval,
		),
		gocron.NewTask(
			app.SweepSessions,
		),
	)
	if err != nil {
		return err
	}

	s.Start()
	app.scheduler = s

	if err := e.Start(fmt.Sprintf(":%s", app.Config.ServicePort)); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (app *App) StopServer() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var failures []error
	if app.Server != nil {
		failures = append(failures, app.Server.Shutdown(ctx))
	}
	if app.scheduler != nil {
		failures = append(failures, app.scheduler.Shutdown())
	}
	for _, closer := range app.closers {
		failures = append(failures, closer())
	}

	return errors.Join(failures...)
}
