package api

import (
	"net/http"

	"github.com/dom/league-build-planner/internal/api/handlers"
	"github.com/dom/league-build-planner/internal/api/middleware"
	"github.com/dom/league-build-planner/internal/config"
	"github.com/dom/league-build-planner/internal/service"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

func NewRouter(services *service.Services, cfg *config.Config, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(middleware.Logger(logger))
	r.Use(chiMiddleware.Recoverer)
	r.Use(middleware.Metrics)
	r.Use(middleware.CORS(cfg.CORSAllowedOrigins))

	r.NotFound(handlers.NotFound)
	r.MethodNotAllowed(handlers.MethodNotAllowed)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})
	r.Handle("/metrics", promhttp.Handler())

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(services.Auth, logger)
	userHandler := handlers.NewUserHandler(services.User, logger)
	catalogHandler := handlers.NewCatalogHandler(services.Catalog, logger)
	buildHandler := handlers.NewBuildHandler(services.Build, logger)
	buildItemHandler := handlers.NewBuildItemHandler(services.Build, logger)
	favouriteHandler := handlers.NewFavouriteHandler(services.Favourite, logger)
	fandomHandler := handlers.NewFandomHandler(services.Fandom, logger)

	requireAuth := middleware.Auth(services.Auth, logger)

	r.Route("/api", func(r chi.Router) {
		// Public auth routes
		r.Group(func(r chi.Router) {
			r.Use(middleware.RateLimit(cfg.RateLimitRPS, cfg.RateLimitBurst))
			r.Post("/signup", authHandler.Register)
			r.Post("/login", authHandler.Login)
		})

		// Users
		r.Get("/users", userHandler.List)
		r.Get("/users/{id:[0-9]+}", userHandler.Get)

		// Catalog
		r.Get("/champions", catalogHandler.ListChampions)
		r.Get("/champions/{id:[0-9]+}", catalogHandler.GetChampion)
		r.Get("/items", catalogHandler.ListItems)
		r.Get("/items/{id:[0-9]+}", catalogHandler.GetItem)
		r.Get("/stats", catalogHandler.ListStats)
		r.Get("/stats/{id:[0-9]+}", catalogHandler.GetStats)

		// Builds
		r.Get("/builds", buildHandler.List)
		r.Get("/builds/{id:[0-9]+}", buildHandler.Get)

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(requireAuth)

			r.Get("/user", authHandler.Me)
			r.Get("/user/", authHandler.Me)

			r.Post("/builds", buildHandler.Create)
			r.Delete("/builds/{id:[0-9]+}", buildHandler.Delete)

			r.Get("/favourites", favouriteHandler.List)
			r.Post("/favourites/{buildID:[0-9]+}", favouriteHandler.Add)
			r.Delete("/favourites/{buildID:[0-9]+}", favouriteHandler.Remove)

			r.Get("/builditems", buildItemHandler.ListOwned)
			r.Post("/builditems/{buildID:[0-9]+}/{itemID:[0-9]+}", buildItemHandler.Add)
			r.Delete("/builditems/{buildID:[0-9]+}/{itemID:[0-9]+}", buildItemHandler.Remove)
		})

		// Fan content
		r.Route("/fandom", func(r chi.Router) {
			r.Get("/people", fandomHandler.ListPeople)
			r.Get("/people/{id:[0-9]+}", fandomHandler.GetPerson)
			r.Get("/planets", fandomHandler.ListPlanets)
			r.Get("/planets/{id:[0-9]+}", fandomHandler.GetPlanet)
			r.Get("/users", fandomHandler.ListUsers)
			r.Get("/users/favorites", fandomHandler.ListFavorites)

			r.Post("/favorite/planet/{id:[0-9]+}", fandomHandler.AddPlanetFavorite)
			r.Delete("/favorite/planet/{id:[0-9]+}", fandomHandler.RemovePlanetFavorite)
			r.Post("/favorite/people/{id:[0-9]+}", fandomHandler.AddCharacterFavorite)
			r.Delete("/favorite/people/{id:[0-9]+}", fandomHandler.RemoveCharacterFavorite)
		})
	})

	return r
}
