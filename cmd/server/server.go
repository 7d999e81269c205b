package main

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"

	grpc_logging "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"

	apiv1alpha1 "github.com/anyventure/companion-api/internal/api/v1alpha1"
	"github.com/anyventure/companion-api/internal/handlers/api/v1alpha1"
	"github.com/anyventure/companion-api/internal/orchestrators/catalog"
	"github.com/anyventure/companion-api/internal/orchestrators/character"
	"github.com/anyventure/companion-api/internal/orchestrators/dice"
	"github.com/anyventure/companion-api/internal/pkg/idgen"
	"github.com/anyventure/companion-api/internal/telemetry"
)

const serviceName = "anyventure-companion"

var (
	grpcPort  int
	redisAddr string
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the gRPC server",
	Long:  `Start the companion gRPC server with the catalog, character and dice services.`,
	RunE:  runServer,
}

func init() {
	serverCmd.Flags().IntVar(&grpcPort, "port", 50051, "gRPC server port (overrides ANYVENTURE_GRPC_PORT)")
	serverCmd.Flags().StringVar(&redisAddr, "redis", "", "Redis address (overrides ANYVENTURE_REDIS_ADDR)")
}

func runServer(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	setupLogger(cfg)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	shutdownTracing, err := telemetry.Setup(ctx, telemetry.Config{
		ServiceName: serviceName,
		Endpoint:    cfg.OTelEndpoint,
	})
	if err != nil {
		return fmt.Errorf("failed to set up tracing: %w", err)
	}
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			slog.Error("failed to flush traces", "error", err)
		}
	}()

	repos, err := connectRepositories(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() {
		_ = repos.Close()
	}()

	srv, err := newGRPCServer(repos)
	if err != nil {
		return err
	}

	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.GRPCPort))
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}

	errChan := make(chan error, 1)
	go func() {
		slog.Info("gRPC server starting", "port", cfg.GRPCPort, "redis", cfg.RedisAddr)
		if err := srv.Serve(lis); err != nil {
			errChan <- fmt.Errorf("failed to serve: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		slog.Info("shutting down gRPC server")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

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
		return err
	}
}

// newGRPCServer wires orchestrators and handlers onto a server with interceptors and health
func newGRPCServer(repos *repositories) (*grpc.Server, error) {
	catalogService, err := catalog.NewOrchestrator(&catalog.Config{
		SpellRepo:     repos.spells,
		ItemRepo:      repos.items,
		CreatureRepo:  repos.creatures,
		CharacterRepo: repos.chars,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create catalog orchestrator: %w", err)
	}

	characterService, err := character.New(&character.Config{
		CharacterRepo: repos.chars,
		SpellRepo:     repos.spells,
		IDGenerator:   idgen.NewUUID(idgen.PrefixCharacter),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create character orchestrator: %w", err)
	}

	diceService, err := dice.NewOrchestrator(&dice.Config{
		RollLogRepo:   repos.rollLogs,
		CharacterRepo: repos.chars,
		IDGenerator:   idgen.NewUUID(idgen.PrefixRoll),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create dice orchestrator: %w", err)
	}

	catalogHandler, err := v1alpha1.NewCatalogHandler(&v1alpha1.CatalogHandlerConfig{CatalogService: catalogService})
	if err != nil {
		return nil, fmt.Errorf("failed to create catalog handler: %w", err)
	}
	characterHandler, err := v1alpha1.NewCharacterHandler(&v1alpha1.CharacterHandlerConfig{CharacterService: characterService})
	if err != nil {
		return nil, fmt.Errorf("failed to create character handler: %w", err)
	}
	diceHandler, err := v1alpha1.NewDiceHandler(&v1alpha1.DiceHandlerConfig{DiceService: diceService})
	if err != nil {
		return nil, fmt.Errorf("failed to create dice handler: %w", err)
	}

	recoveryOpt := grpc_recovery.WithRecoveryHandlerContext(recoverPanic)
	srv := grpc.NewServer(
		grpc.StatsHandler(otelgrpc.NewServerHandler()),
		grpc.ChainUnaryInterceptor(
			grpc_logging.UnaryServerInterceptor(grpc_logging.LoggerFunc(logFunc)),
			grpc_recovery.UnaryServerInterceptor(recoveryOpt),
		),
		grpc.ChainStreamInterceptor(
			grpc_logging.StreamServerInterceptor(grpc_logging.LoggerFunc(logFunc)),
			grpc_recovery.StreamServerInterceptor(recoveryOpt),
		),
	)

	apiv1alpha1.RegisterCatalogServiceServer(srv, catalogHandler)
	apiv1alpha1.RegisterCharacterServiceServer(srv, characterHandler)
	apiv1alpha1.RegisterDiceServiceServer(srv, diceHandler)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(srv, healthServer)

	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	for _, name := range []string{
		apiv1alpha1.CatalogService_ServiceDesc.ServiceName,
		apiv1alpha1.CharacterService_ServiceDesc.ServiceName,
		apiv1alpha1.DiceService_ServiceDesc.ServiceName,
	} {
		healthServer.SetServingStatus(name, grpc_health_v1.HealthCheckResponse_SERVING)
	}

	return srv, nil
}

// logFunc bridges interceptor logging onto slog; the level values line up
func logFunc(ctx context.Context, level grpc_logging.Level, msg string, fields ...any) {
	slog.Log(ctx, slog.Level(level), msg, fields...)
}

func recoverPanic(ctx context.Context, p any) error {
	slog.ErrorContext(ctx, "recovered from panic", "panic", p)
	return status.Error(codes.Internal, "internal error")
}
