// Command server runs the farm API and its database maintenance tasks.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"dalu/config"
	"dalu/database"
	"dalu/pkg/logging"
	"dalu/router"
)

var rootCmd = &cobra.Command{
	Use:           "server",
	Short:         "Dalu farm API server",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runServe,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the HTTP API (default)",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(dbCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// setup loads config and opens the database; callers close both.
func setup() (config.ServerConfig, *zap.Logger, *gorm.DB, error) {
	cfg, err := config.LoadServer()
	if err != nil {
		return cfg, nil, nil, err
	}
	log, err := logging.New(cfg.LogLevel)
	if err != nil {
		return cfg, nil, nil, err
	}
	db, err := database.Open(cfg.DatabaseURL)
	if err != nil {
		_ = log.Sync()
		return cfg, nil, nil, err
	}
	return cfg, log, db, nil
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, log, db, err := setup()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()
	defer database.Close(db)

	log.Info("config", zap.Stringer("cfg", cfg))

	if cfg.AutoCreateTables {
		if err := database.Migrate(db, log); err != nil {
			return err
		}
	}

	e := router.Build(db, cfg, log)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errc := make(chan error, 1)
	go func() {
		log.Info("listening", zap.String("addr", ":"+cfg.Port), zap.String("api", cfg.APIPrefix))
		errc <- e.Start(":" + cfg.Port)
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}
