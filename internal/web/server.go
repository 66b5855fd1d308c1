package web

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"

	"github.com/parcel-comps/internal/comps"
	"github.com/parcel-comps/internal/property"
	"github.com/parcel-comps/internal/web/handlers"
	"github.com/parcel-comps/internal/web/middleware"
)

// Server represents the API server.
type Server struct {
	config     *Config
	db         *sql.DB
	httpServer *http.Server
	router     *mux.Router
}

// NewServer creates an API server over an open database handle.
func NewServer(config *Config, db *sql.DB) *Server {
	server := &Server{
		config: config,
		db:     db,
	}

	server.setupRoutes()

	server.httpServer = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", config.Server.Host, config.Server.Port),
		Handler:      server.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return server
}

// setupRoutes configures all HTTP routes.
func (s *Server) setupRoutes() {
	s.router = mux.NewRouter()

	store := property.NewStore(s.db)
	service := comps.NewService(store)

	apiHandler := &handlers.APIHandler{DB: s.db}
	propertiesHandler := &handlers.PropertiesHandler{Store: store}
	compsHandler := &handlers.CompsHandler{Service: service}

	api := s.router.PathPrefix("/api").Subrouter()

	api.HandleFunc("/health", apiHandler.Health).Methods("GET")

	// by-address must register before the {id} route or mux would
	// swallow it as an account number.
	if s.config.Features.ByAddressEnabled {
		api.HandleFunc("/properties/by-address", propertiesHandler.GetByAddress).Methods("GET")
	}
	api.HandleFunc("/properties/{id}", propertiesHandler.GetProperty).Methods("GET")
	api.HandleFunc("/properties/{id}/comparables", compsHandler.GetComparables).Methods("GET")
	api.HandleFunc("/comparables", compsHandler.PostComparables).Methods("POST")
	api.HandleFunc("/subdivisions/{code}/properties", propertiesHandler.ListSubdivision).Methods("GET")

	if s.config.Features.StatsEnabled {
		api.HandleFunc("/stats", apiHandler.GetStats).Methods("GET")
	}

	s.router.Use(middleware.CORS())
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RequestLogging())

	if s.config.Auth.Enabled {
		api.Use(middleware.APIKey(s.config.Auth.APIKey))
	}
}

// Start runs the server until SIGINT/SIGTERM, then shuts down
// gracefully.
func (s *Server) Start() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		fmt.Printf("Starting server on http://%s\n", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			fmt.Printf("Server error: %v\n", err)
		}
	}()

	<-stop
	fmt.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		fmt.Printf("Server shutdown error: %v\n", err)
	}

	if err := s.db.Close(); err != nil {
		fmt.Printf("Database close error: %v\n", err)
	}

	fmt.Println("Server stopped")
	return nil
}
