package routes

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/urevent360-byte/urevent360app-sub000/api/controllers"
	"github.com/urevent360-byte/urevent360app-sub000/api/middleware"
	appointmentsvc "github.com/urevent360-byte/urevent360app-sub000/internal/appointments"
	authsvc "github.com/urevent360-byte/urevent360app-sub000/internal/auth"
	bookingsvc "github.com/urevent360-byte/urevent360app-sub000/internal/bookings"
	budgetsvc "github.com/urevent360-byte/urevent360app-sub000/internal/budget"
	cartsvc "github.com/urevent360-byte/urevent360app-sub000/internal/cart"
	directorysvc "github.com/urevent360-byte/urevent360app-sub000/internal/directory"
	eventsvc "github.com/urevent360-byte/urevent360app-sub000/internal/events"
	finalizesvc "github.com/urevent360-byte/urevent360app-sub000/internal/finalize"
	plannersvc "github.com/urevent360-byte/urevent360app-sub000/internal/planner"
	scenariosvc "github.com/urevent360-byte/urevent360app-sub000/internal/scenarios"
	"github.com/urevent360-byte/urevent360app-sub000/pkg/auth/session"
	"github.com/urevent360-byte/urevent360app-sub000/pkg/config"
	"github.com/urevent360-byte/urevent360app-sub000/pkg/db"
	"github.com/urevent360-byte/urevent360app-sub000/pkg/enums"
	"github.com/urevent360-byte/urevent360app-sub000/pkg/logger"
	"github.com/urevent360-byte/urevent360app-sub000/pkg/redis"
)

type sessionManager interface {
	session.AccessSessionChecker
	Rotate(context.Context, string, string) (string, string, error)
	Revoke(context.Context, string) error
}

// Services bundles the domain services the router exposes.
type Services struct {
	Auth         authsvc.Service
	Events       eventsvc.Service
	Planner      plannersvc.Service
	Directory    directorysvc.Service
	Cart         cartsvc.Service
	Scenarios    scenariosvc.Service
	Appointments appointmentsvc.Service
	Bookings     bookingsvc.Service
	Budget       budgetsvc.Service
	Finalize     finalizesvc.Service
}

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	dbP db.Pinger,
	redisClient *redis.Client,
	sessions sessionManager,
	svcs Services,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(),
	)

	loginPolicy := middleware.NewAuthRateLimitPolicy(
		"login",
		cfg.AuthRateLimit.LoginWindow,
		cfg.AuthRateLimit.LoginIPLimit,
		cfg.AuthRateLimit.LoginEmailLimit,
	)
	registerPolicy := middleware.NewAuthRateLimitPolicy(
		"register",
		cfg.AuthRateLimit.RegisterWindow,
		cfg.AuthRateLimit.RegisterIPLimit,
		cfg.AuthRateLimit.RegisterEmailLimit,
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, dbP, redisClient))
	})

	r.Route("/api/public", func(r chi.Router) {
		r.Get("/ping", controllers.PublicPing())
		r.Post("/validate", controllers.PublicValidate(logg))
	})

	r.Route("/api/v1/auth", func(r chi.Router) {
		r.With(middleware.AuthRateLimit(loginPolicy, redisClient, logg)).Post("/login", controllers.AuthLogin(svcs.Auth, logg))
		r.With(middleware.AuthRateLimit(registerPolicy, redisClient, logg)).Post("/register", controllers.AuthRegister(svcs.Auth, logg))
		r.Post("/logout", controllers.AuthLogout(sessions, cfg.JWT, logg))
		r.Post("/refresh", controllers.AuthRefresh(sessions, cfg.JWT, logg))
	})

	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.Auth(cfg.JWT, sessions, logg))
		r.Use(middleware.Idempotency(redisClient, logg))

		r.Get("/ping", controllers.PrivatePing())
		r.With(middleware.RequireRole(enums.UserRoleAdmin.String(), logg)).
			Get("/ping/admin", controllers.AdminPing())

		r.Route("/v1/events", func(r chi.Router) {
			r.Post("/", controllers.CreateEvent(svcs.Events, logg))
			r.Get("/", controllers.ListEvents(svcs.Events, logg))

			r.Route("/{eventID}", func(r chi.Router) {
				r.Get("/", controllers.GetEvent(svcs.Events, logg))

				r.Route("/planner", func(r chi.Router) {
					r.Get("/state", controllers.GetPlannerState(svcs.Planner, logg))
					r.Post("/state", controllers.WritePlannerState(svcs.Planner, logg))
					r.Post("/save-state", controllers.SavePlannerState(svcs.Planner, logg))
					r.Get("/steps", controllers.ListPlannerSteps(svcs.Planner, logg))
					r.Get("/vendors/{serviceType}", controllers.VendorsForStep(svcs.Directory, logg))
					r.Post("/finalize", controllers.FinalizeEvent(svcs.Finalize, logg))

					r.Route("/scenarios", func(r chi.Router) {
						r.Get("/", controllers.ListScenarios(svcs.Scenarios, logg))
						r.Post("/save", controllers.SaveScenario(svcs.Scenarios, logg))
						r.Delete("/{scenarioID}", controllers.DeleteScenario(svcs.Scenarios, logg))
					})
				})

				r.Route("/cart", func(r chi.Router) {
					r.Get("/", controllers.ListCartItems(svcs.Cart, logg))
					r.Post("/add", controllers.AddCartItem(svcs.Cart, logg))
					r.Delete("/remove/{itemID}", controllers.RemoveCartItem(svcs.Cart, logg))
					r.Post("/clear", controllers.ClearCart(svcs.Cart, logg))
				})

				r.Get("/budget-tracker", controllers.BudgetOverview(svcs.Budget, logg))
				r.Get("/bookings", controllers.ListBookings(svcs.Bookings, logg))
			})
		})

		r.Route("/v1/bookings", func(r chi.Router) {
			r.Post("/{bookingID}/payments", controllers.RecordPayment(svcs.Bookings, logg))
		})

		r.Route("/v1/appointments", func(r chi.Router) {
			r.Post("/", controllers.CreateAppointment(svcs.Appointments, logg))
			r.Get("/", controllers.ListAppointments(svcs.Appointments, logg))
			r.With(middleware.RequireRole(enums.UserRoleVendor.String(), logg)).
				Put("/{appointmentID}/respond", controllers.RespondAppointment(svcs.Appointments, logg))
			r.Put("/{appointmentID}/confirm", controllers.ConfirmAppointment(svcs.Appointments, logg))
		})

		r.Route("/v1/vendors", func(r chi.Router) {
			r.Get("/search", controllers.SearchVendors(svcs.Directory, logg))
		})
		r.Route("/v1/venues", func(r chi.Router) {
			r.Get("/search", controllers.SearchVenues(svcs.Directory, logg))
		})
	})

	return r
}
