package cli

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"sudoku-engine/internal/puzzles"
	httptransport "sudoku-engine/internal/transport/http"
	"sudoku-engine/pkg/config"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the solver and generator over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()

		store, err := puzzles.Open(cfg.DatabasePath)
		if err != nil {
			return fmt.Errorf("opening puzzle store: %w", err)
		}
		defer store.Close()

		if !verbose {
			gin.SetMode(gin.ReleaseMode)
		}
		r := gin.New()
		r.Use(gin.Recovery())

		httptransport.RegisterRoutes(r, &httptransport.Server{Store: store, Log: log})

		server := &http.Server{
			Addr:    ":" + cfg.Port,
			Handler: r,
		}

		// Graceful shutdown on SIGINT/SIGTERM.
		go func() {
			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
			<-sigCh
			log.Info().Msg("shutting down")

			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := server.Shutdown(ctx); err != nil {
				log.Error().Err(err).Msg("server shutdown")
			}
		}()

		log.Info().Str("port", cfg.Port).Msg("listening")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	},
}
