package rest

import (
	"context"
	"net/http"
	"time"

	"catalog-service/internal/core/port"
	"catalog-service/internal/core/query"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

const apiPrefix = "/api/v1"

// ServerConfig - параметры HTTP-сервера
type ServerConfig struct {
	Port           string
	AllowedOrigins []string
}

type Server struct {
	httpServer *http.Server
	logger     port.LoggerPort
}

func NewServer(cfg ServerConfig,
	listingHandler *ListingHandler,
	searchHandler *SearchHandler,
	filterHandler *FilterHandler,
	locationHandler *LocationHandler,
	baseLogger port.LoggerPort) *Server {

	r := chi.NewRouter()

	r.Use(middleware.RealIP, LoggerMiddleware(baseLogger), middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", "X-Trace-ID"},
		ExposedHeaders: []string{"Location", "X-Trace-ID"},
		MaxAge:         300,
	}))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		RespondWithJSON(w, http.StatusOK, HealthResponse{Status: "ok", Time: time.Now().UTC()})
	})

	r.Route(apiPrefix, func(r chi.Router) {
		// три пространства выдачи; общее живет в подроутере /listings
		r.Get(string(query.RouteSale), searchHandler.Search(query.RouteSale))
		r.Get(string(query.RouteRent), searchHandler.Search(query.RouteRent))

		r.Route(string(query.RouteCombined), func(r chi.Router) {
			r.Get("/", searchHandler.Search(query.RouteCombined))
			r.Post("/", listingHandler.CreateListing)
			r.Get("/by-slug/{slug}", listingHandler.GetListingBySlug)
			r.Get("/{listingID}", listingHandler.GetListing)
			r.Put("/{listingID}", listingHandler.UpdateListing)
			r.Patch("/{listingID}/status", listingHandler.ChangeStatus)
			r.Delete("/{listingID}", listingHandler.DeleteListing)
		})

		r.Get("/filters/options", filterHandler.GetFilterOptions)
		r.Get("/filters/url", searchHandler.FilterURL)
		r.Get("/dictionaries", filterHandler.GetDictionaries)

		r.Route("/locations", func(r chi.Router) {
			r.Get("/countries", locationHandler.Countries)
			r.Get("/countries/{country}/states", locationHandler.States)
			r.Get("/countries/{country}/cities", locationHandler.Cities)
			r.Get("/countries/{country}/cities/{city}/districts", locationHandler.Districts)
			r.Get("/cascade", locationHandler.Cascade)
		})
	})

	return &Server{
		httpServer: &http.Server{
			Addr:              ":" + cfg.Port,
			Handler:           r,
			ReadHeaderTimeout: 10 * time.Second,
		},
		logger: baseLogger,
	}
}

// Handler - корневой роутер
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

func (s *Server) Start() error {
	s.logger.Info("Starting REST server", port.Fields{"address": s.httpServer.Addr})
	return s.httpServer.ListenAndServe()
}

func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("Stopping REST server...", nil)
	return s.httpServer.Shutdown(ctx)
}
