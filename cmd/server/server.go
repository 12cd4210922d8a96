package main

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	grpc_logging "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"

	"github.com/laasilva/dracolich-library-api-sub000/internal/errors"
	"github.com/laasilva/dracolich-library-api-sub000/internal/handlers/library/v1alpha1"
	"github.com/laasilva/dracolich-library-api-sub000/internal/orchestrators/library"
	"github.com/laasilva/dracolich-library-api-sub000/internal/orchestrators/seed"
	"github.com/laasilva/dracolich-library-api-sub000/internal/pkg/metrics"
	"github.com/laasilva/dracolich-library-api-sub000/internal/repositories/documents"
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the gRPC server",
	Long:  `Connect the document store, seed it if empty and serve the library over gRPC.`,
	RunE:  runServer,
}

func init() {
	serverCmd.Flags().Int("port", 50051, "gRPC server port")
	serverCmd.Flags().Int("metrics-port", 9090, "Prometheus metrics port (0 disables)")
	serverCmd.Flags().Bool("seed", true, "seed the store at start-up")
	serverCmd.Flags().Bool("repair-partial", false, "resume a partially seeded store instead of skipping it")
	serverCmd.Flags().Bool("batch-children", false, "load subclasses and subraces with one read per kind")
}

func runServer(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger, err := newLogger(os.Stderr, cfg)
	if err != nil {
		return err
	}
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repo, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeStore()
	slog.InfoContext(ctx, "document store ready", "store", cfg.Store)

	m, err := metrics.New(nil)
	if err != nil {
		return err
	}

	svc, err := library.NewOrchestrator(&library.Config{
		Repository:    repo,
		Metrics:       m,
		BatchChildren: cfg.BatchChildren,
	})
	if err != nil {
		return err
	}

	handler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{LibraryService: svc})
	if err != nil {
		return errors.Wrap(err, "failed to create library handler")
	}

	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.Port))
	if err != nil {
		return errors.WrapWithCode(err, errors.CodeUnavailable, "failed to listen")
	}

	logFunc := grpc_logging.LoggerFunc(func(ctx context.Context, level grpc_logging.Level, msg string, fields ...any) {
		logger.Log(ctx, slog.Level(level), msg, fields...)
	})
	srv := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			grpc_logging.UnaryServerInterceptor(logFunc),
			grpc_recovery.UnaryServerInterceptor(),
		),
		grpc.ChainStreamInterceptor(
			grpc_logging.StreamServerInterceptor(logFunc),
			grpc_recovery.StreamServerInterceptor(),
		),
	)

	v1alpha1.RegisterLibraryServiceServer(srv, handler)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(srv, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(v1alpha1.ServiceName, grpc_health_v1.HealthCheckResponse_NOT_SERVING)

	reflection.Register(srv)

	errChan := make(chan error, 2)
	go func() {
		slog.InfoContext(ctx, "gRPC server starting", "port", cfg.Port)
		if err := srv.Serve(lis); err != nil {
			errChan <- errors.Wrap(err, "failed to serve")
		}
	}()

	metricsServer := startMetrics(ctx, cfg.MetricsPort, m, errChan)

	if cfg.Seed {
		if err := runSeed(ctx, repo, m, cfg.RepairPartial); err != nil {
			srv.Stop()
			return err
		}
	}
	healthServer.SetServingStatus(v1alpha1.ServiceName, grpc_health_v1.HealthCheckResponse_SERVING)

	select {
	case <-ctx.Done():
		slog.Info("shutting down gRPC server")
		healthServer.Shutdown()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if metricsServer != nil {
			_ = metricsServer.Shutdown(shutdownCtx)
		}

		stopped := make(chan struct{})
		go func() {
			srv.GracefulStop()
			close(stopped)
		}()

		select {
		case <-shutdownCtx.Done():
			slog.Warn("graceful shutdown timeout exceeded, forcing stop")
			srv.Stop()
		case <-stopped:
			slog.Info("server stopped gracefully")
		}

		return nil
	case err := <-errChan:
		srv.Stop()
		return err
	}
}

func startMetrics(ctx context.Context, port int, m *metrics.Metrics, errChan chan<- error) *http.Server {
	if port == 0 {
		return nil
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", m.Handler())
	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		slog.InfoContext(ctx, "metrics server starting", "port", port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- errors.Wrap(err, "metrics server failed")
		}
	}()
	return server
}

func runSeed(ctx context.Context, repo documents.Repository, m *metrics.Metrics, repair bool) error {
	seeder, err := seed.NewOrchestrator(&seed.Config{
		Repository:    repo,
		Metrics:       m,
		RepairPartial: repair,
	})
	if err != nil {
		return err
	}

	out, err := seeder.SeedAll(ctx, &seed.SeedAllInput{})
	if err != nil {
		return err
	}

	slog.InfoContext(ctx, "seed finished",
		"skipped", out.Skipped,
		"inserted", out.Inserted(),
		"duplicates", out.Duplicates())
	return nil
}
