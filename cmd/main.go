package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"user_service/internal/handlers"
	"user_service/internal/logger"
	"user_service/internal/repository"
	"user_service/internal/repository/db"
	"user_service/internal/server"
	"user_service/internal/service"

	"github.com/spf13/viper"
)

const (
	defaultPort   = "4000"
	defaultDBPath = "users.db"

	shutdownTimeout = 10 * time.Second
)

func main() {
	// init logger
	log := logger.Get(logger.InfoLevel)

	// load config.yml (optional) and environment
	if err := loadConfig(); err != nil {
		log.Fatalw("error reading config", "err", err)
	}

	secret := viper.GetString("secret_code")
	if secret == "" {
		log.Fatalw("secret_code is not configured; set the SECRET_CODE environment variable")
	}

	// open the store; a failure here is fatal — the listener never
	// starts against a store we could not reach.
	database, err := openDB(log)
	if err != nil {
		log.Fatalw("failed to init sqlite", "err", err)
	}
	defer func() {
		if cerr := database.Close(); cerr != nil {
			log.Errorw("failed to close sqlite", "err", cerr)
		}
	}()

	// wire dependencies
	repos := repository.NewRepository(database)
	services := service.NewService(repos, secret)
	apiHandler := handlers.NewHandler(services, log)

	// start HTTP server
	srv := &server.Server{}
	runHTTPServer(srv, viper.GetString("port"), apiHandler, log)

	// graceful shutdown
	waitForShutdown(srv, log)
}

// loadConfig reads the optional configs/config.yml and wires in
// environment overrides: DB_PATH, SECRET_CODE and PORT.
func loadConfig() error {
	viper.AddConfigPath("configs")
	viper.SetConfigName("config")
	viper.AutomaticEnv()
	if err := viper.ReadInConfig(); err != nil {
		// Environment-only configuration is fine.
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return err
	}
	return nil
}

// openDB initializes the SQLite database using configuration.
func openDB(log *logger.Logger) (*sql.DB, error) {
	dbPath := viper.GetString("db_path")
	if dbPath == "" {
		log.Infow("db_path not set; using default file", "default", defaultDBPath)
		dbPath = defaultDBPath
	}
	return db.InitDB(dbPath)
}

// runHTTPServer runs the HTTP server in a separate goroutine.
func runHTTPServer(srv *server.Server, port string, handler *handlers.Handler, log *logger.Logger) {
	go func() {
		if port == "" {
			port = defaultPort
		}
		log.Infow("starting server", "port", port)
		if err := srv.Run(port, handler.InitRoutes()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalw("error starting server", "err", err)
		}
	}()
}

// waitForShutdown listens for termination signals and performs graceful shutdown.
func waitForShutdown(srv *server.Server, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalw("server forced to shutdown", "err", err)
	}
}
