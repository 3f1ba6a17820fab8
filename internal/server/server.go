// FilePath: internal/server/server.go
package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gobees/hub/api"
	"github.com/gobees/hub/internal/beeservice"
	"github.com/gobees/hub/internal/cache"
	"github.com/gobees/hub/internal/cleanup"
	"github.com/gobees/hub/internal/config"
	"github.com/gobees/hub/internal/database"
	"github.com/gobees/hub/internal/repository/sqlstore"
	"github.com/gorilla/handlers"
	nuts "github.com/vaudience/go-nuts"
)

// Server represents our HTTP server
type Server struct {
	config     *config.Config
	srv        *http.Server
	db         database.DB
	beeservice *beeservice.BeeService
}

// New creates a new server instance
func New(cfg *config.Config) *Server {
	return &Server{
		config: cfg,
	}
}

// Start opens the store, wires the service and listens for requests
// until an interrupt arrives.
func (s *Server) Start() error {
	db, err := database.Open(s.config.Storage)
	if err != nil {
		return fmt.Errorf("error opening store: %w", err)
	}
	s.db = db

	if err := sqlstore.InitializeSchema(db); err != nil {
		db.Close()
		return fmt.Errorf("error initializing schema: %w", err)
	}

	s.beeservice = buildBeeService(db, s.config)
	if err := s.beeservice.Validate(); err != nil {
		db.Close()
		return err
	}
	s.setupCleanupHandlers()

	router := api.NewRouter(s.beeservice)
	corsHandler := handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{"GET", "POST", "PUT", "DELETE"}),
		handlers.AllowedHeaders([]string{"Content-Type"}),
	)

	s.srv = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", s.config.Server.Host, s.config.Server.Port),
		Handler:      handlers.RecoveryHandler()(corsHandler(router)),
		ReadTimeout:  s.config.Server.ReadTimeout,
		WriteTimeout: s.config.Server.WriteTimeout,
	}

	go func() {
		nuts.L.Infof("[Server] Starting server on %s", s.srv.Addr)
		if err := s.srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			nuts.L.Errorf("[Server] Error starting server: %v", err)
			os.Exit(1)
		}
	}()

	return s.waitForShutdown()
}

// waitForShutdown waits for interrupt signal, then shuts the server
// down and closes the store. Open and close stay paired here.
func (s *Server) waitForShutdown() error {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	nuts.L.Infof("[Server] Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), s.config.Server.ShutdownTimeout)
	defer cancel()

	if err := s.srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("error shutting down server: %w", err)
	}

	if err := s.db.Close(); err != nil {
		return fmt.Errorf("error closing store: %w", err)
	}

	nuts.L.Infof("[Server] Server shut down successfully")
	return nil
}

func (s *Server) setupCleanupHandlers() {
	s.beeservice.Cleanup.OnCleanup(cleanup.EventApiaryDeleted, func(id string) {
		nuts.L.Infof("[Cleanup] Apiary %s and all associated data deleted", id)
	})

	s.beeservice.Cleanup.OnCleanup(cleanup.EventHiveDeleted, func(id string) {
		nuts.L.Infof("[Cleanup] Hive %s and all its records deleted", id)
	})

	s.beeservice.Cleanup.OnCleanup(cleanup.EventRecordingDeleted, func(id string) {
		nuts.L.Infof("[Cleanup] One day of records deleted for hive %s", id)
	})

	s.beeservice.Cleanup.OnCleanup(cleanup.EventStoreWiped, func(id string) {
		nuts.L.Infof("[Cleanup] Store wiped")
	})
}

// buildBeeService wires repositories and the recordings cache.
func buildBeeService(db database.DB, cfg *config.Config) *beeservice.BeeService {
	apiaries := sqlstore.NewApiaryRepository(db)
	hives := sqlstore.NewHiveRepository(db)
	records := sqlstore.NewRecordRepository(db)
	admin := sqlstore.NewAdminRepository(db)

	var recordingsCache cache.RecordingsCache = cache.NewNoopCache()
	if cfg.Redis.Host != "" {
		redisCache, err := cache.NewRedisCache(cfg.Redis)
		if err != nil {
			nuts.L.Warnf("[Server] Redis unavailable, running without recordings cache: %v", err)
		} else {
			recordingsCache = redisCache
		}
	}

	return beeservice.New(apiaries, hives, records, admin, recordingsCache)
}
