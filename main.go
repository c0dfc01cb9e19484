package main

import (
	"context"
	stderrors "errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"mbticonsultant/internal"
	"mbticonsultant/internal/admin"
	"mbticonsultant/internal/config"
	"mbticonsultant/internal/container"
	"mbticonsultant/internal/errors"
	"mbticonsultant/ui"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := run(ctx)
	stop()
	if err != nil {
		log.Printf("The MBTI Consultant stopped: %v", err)
		os.Exit(1)
	}
}

// run wires the application and serves until ctx is cancelled. The container
// is shut down on every return path, so buffered logs are always flushed.
func run(ctx context.Context) error {
	appConfig, err := config.Load()
	if err != nil {
		return errors.Wrap(err, "failed to load configuration")
	}

	logger := internal.NewLogger(internal.ParseLogLevel(appConfig.Logging.Level))
	internal.DefaultLogger = logger

	appContainer, err := container.New(appConfig, logger)
	if err != nil {
		return errors.Wrap(err, "failed to create application container")
	}
	defer appContainer.Shutdown(context.Background())

	if _, err := appContainer.Verify(ctx); err != nil {
		logger.Error("Failed to load personality table %s: %v", appConfig.Data.File, err)
		return errors.Wrapf(err, "failed to load personality table %s", appConfig.Data.File)
	}

	server, err := ui.NewServer(appContainer.RenderService, appContainer.Assets, ui.Options{
		GinMode:  appConfig.Server.GinMode,
		Defaults: appContainer.DefaultStyle(),
	}, logger)
	if err != nil {
		return errors.Wrap(err, "failed to initialize server")
	}

	servers := []*http.Server{{
		Addr:              ":" + appConfig.Server.Port,
		Handler:           server.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}}
	if appConfig.Admin.Enabled {
		servers = append(servers, &http.Server{
			Addr: ":" + appConfig.Admin.Port,
			Handler: admin.NewRouter(appContainer.Metrics, func(r *http.Request) error {
				return appContainer.Health(r.Context())
			}),
			ReadHeaderTimeout: 10 * time.Second,
		})
		logger.Info("Admin server (health, metrics, pprof) starting on port %s", appConfig.Admin.Port)
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, srv := range servers {
		g.Go(func() error {
			if err := srv.ListenAndServe(); err != nil && !stderrors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		})
	}
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		var errs []error
		for _, srv := range servers {
			errs = append(errs, srv.Shutdown(shutdownCtx))
		}
		return stderrors.Join(errs...)
	})

	logger.Info("Starting The MBTI Consultant on port %s", appConfig.Server.Port)
	if err := g.Wait(); err != nil {
		logger.Error("Server stopped: %v", err)
		return err
	}
	logger.Info("Server stopped")
	return nil
}
