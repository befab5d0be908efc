package cmd

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

	"github.com/mathcoach/mathcoach/internal/exercise"
	"github.com/mathcoach/mathcoach/internal/grading"
	"github.com/mathcoach/mathcoach/internal/httpapi"
	"github.com/mathcoach/mathcoach/internal/llm"
	"github.com/mathcoach/mathcoach/internal/store"
	"github.com/mathcoach/mathcoach/internal/subtopic"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd)
	},
}

func init() {
	serveCmd.Flags().String("addr", "", "Listen address (overrides MATHCOACH_ADDR env var, default :8080)")
}

// runServe opens the store, builds the services, and serves the API until
// SIGINT or SIGTERM.
func runServe(cmd *cobra.Command) error {
	ctx := cmd.Context()

	logger, err := zap.NewProduction()
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	defer logger.Sync()

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	// A missing credential is not fatal: the service still answers every
	// request from the fallback tables.
	var provider llm.Provider
	if p, err := llm.NewProviderFromEnv(ctx, st.EventRepo()); err != nil {
		logger.Warn("LLM provider not configured, serving fallback content only", zap.Error(err))
	} else {
		provider = p
		logger.Info("LLM provider ready", zap.String("model", p.ModelID()))
	}

	exercises := exercise.NewService(provider, subtopic.NewRepo(st.DB()), logger, exercise.DefaultConfig())
	grades := grading.NewService(provider, grading.NewHTTPFetcher(nil), logger, grading.DefaultConfig())

	srv := &http.Server{
		Addr: resolveAddr(cmd),
		Handler: httpapi.NewRouter(httpapi.Deps{
			Exercises: exercises,
			Grades:    grades,
			Logger:    logger,
		}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", zap.String("addr", srv.Addr))
		errCh <- srv.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	case sig := <-stop:
		logger.Info("shutting down", zap.String("signal", sig.String()))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

// resolveAddr returns the listen address using --addr (highest priority),
// then MATHCOACH_ADDR, then :8080.
func resolveAddr(cmd *cobra.Command) string {
	if a, _ := cmd.Flags().GetString("addr"); a != "" {
		return a
	}
	if a := os.Getenv("MATHCOACH_ADDR"); a != "" {
		return a
	}
	return ":8080"
}
