package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/sadopc/wyrm/internal/api"
	"github.com/sadopc/wyrm/internal/github"
	"github.com/sadopc/wyrm/internal/spotify"
)

func serveCmd() *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the local REST backend",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, cfg, err := openStore()
			if err != nil {
				return err
			}
			defer s.Close()

			logLevel := slog.LevelInfo
			if cfg.LogLevel == "debug" {
				logLevel = slog.LevelDebug
			}
			logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel}))
			slog.SetDefault(logger)

			if port == 0 {
				port = cfg.Port
			}

			router := api.NewRouter(api.Deps{
				Store:   s,
				GitHub:  &github.Loader{DataDir: cfg.DataDir},
				Spotify: spotify.NewClient(),
				OutDir:  cfg.OutDir,
				Logger:  logger,
			})

			addr := fmt.Sprintf("127.0.0.1:%d", port)
			srv := &http.Server{
				Addr:         addr,
				Handler:      router,
				ReadTimeout:  30 * time.Second,
				WriteTimeout: 60 * time.Second,
				IdleTimeout:  120 * time.Second,
			}

			done := make(chan os.Signal, 1)
			signal.Notify(done, os.Interrupt, syscall.SIGTERM)

			go func() {
				logger.Info("backend starting", "addr", addr)
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					logger.Error("server error", "error", err)
					os.Exit(1)
				}
			}()

			<-done
			logger.Info("shutting down...")

			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := srv.Shutdown(ctx); err != nil {
				logger.Error("shutdown error", "error", err)
			}

			logger.Info("server stopped")
			return nil
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 0, "listen port (defaults to config)")
	return cmd
}
