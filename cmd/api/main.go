package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"github.com/urevent360-byte/urevent360app-sub000/api/routes"
	appointmentsvc "github.com/urevent360-byte/urevent360app-sub000/internal/appointments"
	authsvc "github.com/urevent360-byte/urevent360app-sub000/internal/auth"
	bookingsvc "github.com/urevent360-byte/urevent360app-sub000/internal/bookings"
	budgetsvc "github.com/urevent360-byte/urevent360app-sub000/internal/budget"
	"github.com/urevent360-byte/urevent360app-sub000/internal/calendar"
	cartsvc "github.com/urevent360-byte/urevent360app-sub000/internal/cart"
	directorysvc "github.com/urevent360-byte/urevent360app-sub000/internal/directory"
	eventsvc "github.com/urevent360-byte/urevent360app-sub000/internal/events"
	finalizesvc "github.com/urevent360-byte/urevent360app-sub000/internal/finalize"
	plannersvc "github.com/urevent360-byte/urevent360app-sub000/internal/planner"
	scenariosvc "github.com/urevent360-byte/urevent360app-sub000/internal/scenarios"
	"github.com/urevent360-byte/urevent360app-sub000/internal/users"
	"github.com/urevent360-byte/urevent360app-sub000/pkg/auth/session"
	"github.com/urevent360-byte/urevent360app-sub000/pkg/config"
	"github.com/urevent360-byte/urevent360app-sub000/pkg/db"
	"github.com/urevent360-byte/urevent360app-sub000/pkg/keylock"
	"github.com/urevent360-byte/urevent360app-sub000/pkg/logger"
	"github.com/urevent360-byte/urevent360app-sub000/pkg/migrate"
	"github.com/urevent360-byte/urevent360app-sub000/pkg/redis"
)

const shutdownTimeout = 15 * time.Second

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing database", err)
		}
	}()

	if err := migrate.MaybeRunDev(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to run dev migrations", err)
		os.Exit(1)
	}

	redisClient, err := redis.New(context.Background(), cfg.Redis, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap redis", err)
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing redis", err)
		}
	}()

	sessionManager, err := session.NewManager(redisClient, cfg.JWT)
	if err != nil {
		logg.Error(context.Background(), "failed to create session manager", err)
		os.Exit(1)
	}

	svcs, err := buildServices(cfg, dbClient, sessionManager)
	if err != nil {
		logg.Error(context.Background(), "failed to wire services", err)
		os.Exit(1)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr:    addr,
		Handler: routes.NewRouter(cfg, logg, dbClient, redisClient, sessionManager, svcs),
	}

	runCtx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	group, groupCtx := errgroup.WithContext(runCtx)
	group.Go(func() error {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})
	group.Go(func() error {
		<-groupCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := group.Wait(); err != nil {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}

	logg.Info(ctx, "api server shut down gracefully")
}

func buildServices(cfg *config.Config, dbClient *db.Client, sessionManager *session.Manager) (routes.Services, error) {
	gdb := dbClient.DB()
	locks := keylock.New()

	eventRepo := eventsvc.NewRepository(gdb)
	plannerRepo := plannersvc.NewRepository(gdb)
	directoryRepo := directorysvc.NewRepository(gdb)
	scenarioRepo := scenariosvc.NewRepository(gdb)
	appointmentRepo := appointmentsvc.NewRepository(gdb)
	calendarRepo := calendar.NewRepository(gdb)
	bookingRepo := bookingsvc.NewRepository(gdb)
	paymentRepo := bookingsvc.NewPaymentStore(gdb)

	authService, err := authsvc.NewService(authsvc.ServiceParams{
		UserRepo:       users.NewRepository(gdb),
		SessionManager: sessionManager,
		JWTConfig:      cfg.JWT,
		PasswordConfig: cfg.Password,
	})
	if err != nil {
		return routes.Services{}, err
	}

	eventService, err := eventsvc.NewService(eventRepo)
	if err != nil {
		return routes.Services{}, err
	}

	plannerService, err := plannersvc.NewService(plannerRepo, eventService, locks)
	if err != nil {
		return routes.Services{}, err
	}

	directoryService, err := directorysvc.NewService(directoryRepo, eventService)
	if err != nil {
		return routes.Services{}, err
	}

	cartService, err := cartsvc.NewService(plannerRepo, eventService, locks)
	if err != nil {
		return routes.Services{}, err
	}

	scenarioService, err := scenariosvc.NewService(scenarioRepo, eventService, locks)
	if err != nil {
		return routes.Services{}, err
	}

	appointmentService, err := appointmentsvc.NewService(appointmentRepo, calendarRepo, eventService, locks)
	if err != nil {
		return routes.Services{}, err
	}

	bookingService, err := bookingsvc.NewService(dbClient, bookingRepo, paymentRepo, eventService)
	if err != nil {
		return routes.Services{}, err
	}

	budgetService, err := budgetsvc.NewService(bookingRepo, paymentRepo, eventService)
	if err != nil {
		return routes.Services{}, err
	}

	finalizeService, err := finalizesvc.NewService(
		dbClient,
		eventRepo,
		eventService,
		plannerRepo,
		appointmentRepo,
		bookingRepo,
		calendarRepo,
		locks,
	)
	if err != nil {
		return routes.Services{}, err
	}

	return routes.Services{
		Auth:         authService,
		Events:       eventService,
		Planner:      plannerService,
		Directory:    directoryService,
		Cart:         cartService,
		Scenarios:    scenarioService,
		Appointments: appointmentService,
		Bookings:     bookingService,
		Budget:       budgetService,
		Finalize:     finalizeService,
	}, nil
}
