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

	"portfolio-backend/config"
	_ "portfolio-backend/docs" // Important for Swagger
	v1 "portfolio-backend/internal/delivery/http/v1"
	"portfolio-backend/internal/usecase"
	"portfolio-backend/pkg/email"
	"portfolio-backend/pkg/logger"
	"portfolio-backend/pkg/validation"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// version is set at build time with -ldflags "-X main.version=..."
var version = "dev"

// @title           Portfolio Backend API
// @version         1.0
// @description     Contact form relay for the portfolio site.
// @host            localhost:3001
// @BasePath        /
func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		port  string
		debug bool
	)

	root := &cobra.Command{
		Use:           "portfolio-api",
		Short:         "Serve the portfolio contact relay",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(port, debug)
		},
	}
	root.Flags().StringVar(&port, "port", "", "listen port (overrides PORT)")
	root.Flags().BoolVar(&debug, "debug", false, "human-readable development logging")

	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the build version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version)
		},
	})

	return root
}

func run(portFlag string, debug bool) error {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\nSet GMAIL_USER and GMAIL_APP_PASSWORD in the environment or a .env file\n", err)
		return err
	}
	if portFlag != "" {
		cfg.Port = portFlag
	}

	// 2. Setup Logger
	if err := logger.Init(debug || !cfg.ReleaseMode); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to set up logger: %v\n", err)
		return err
	}
	log := logger.Log
	defer func() { _ = log.Sync() }()

	// 3. Setup Mail Transport
	sender := email.NewSMTPSender(cfg)
	log.Info("Mail transport configured",
		zap.String("host", sender.Host()),
		zap.String("mailbox", cfg.SMTPUsername),
	)

	// 4. Setup UseCases
	contactUC := usecase.NewContactUsecase(sender, validation.New(), cfg.SMTPUsername, log)
	healthUC := usecase.NewHealthUsecase()

	// 5. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		ContactUC: contactUC,
		HealthUC:  healthUC,
		Config:    cfg,
		Log:       log,
	})

	// 6. Start Server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Info("Server is running", zap.String("port", cfg.Port), zap.String("allowed_origin", cfg.FrontendURL))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-serveErr:
		log.Error("Listen failed", zap.Error(err))
		return err
	case <-quit:
	}
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
		return err
	}

	log.Info("Server exiting")
	return nil
}
