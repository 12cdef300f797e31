package main

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"os/signal"
	"syscall"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/KirkDiggler/rpg-tales/internal/auth"
	"github.com/KirkDiggler/rpg-tales/internal/clients/narrative"
	"github.com/KirkDiggler/rpg-tales/internal/config"
	"github.com/KirkDiggler/rpg-tales/internal/engine/rpgtoolkit"
	"github.com/KirkDiggler/rpg-tales/internal/entities"
	"github.com/KirkDiggler/rpg-tales/internal/handlers/tales/v1alpha1"
	"github.com/KirkDiggler/rpg-tales/internal/orchestrators/session"
	"github.com/KirkDiggler/rpg-tales/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-tales/internal/pkg/idgen"
	redisclient "github.com/KirkDiggler/rpg-tales/internal/redis"
	"github.com/KirkDiggler/rpg-tales/internal/repositories/journal"
	"github.com/KirkDiggler/rpg-tales/internal/repositories/room"
	"github.com/KirkDiggler/rpg-tales/internal/server"
	"github.com/KirkDiggler/rpg-tales/internal/telemetry"
)

const shutdownTimeout = 30 * time.Second

var (
	grpcPort int
	envFile  string
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the gRPC server",
	Long:  `Start the RPG Tales gRPC server. Settings come from TALES_* environment variables.`,
	RunE:  runServer,
}

func init() {
	serverCmd.Flags().IntVar(&grpcPort, "port", 0, "gRPC server port (overrides TALES_PORT)")
	serverCmd.Flags().StringVar(&envFile, "env-file", ".env", "optional .env file to load")
}

func runServer(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(envFile)
	if err != nil {
		return err
	}
	if grpcPort != 0 {
		cfg.Port = grpcPort
	}

	logger := cfg.NewLogger()
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	tel := telemetry.Config{
		Endpoint:    cfg.Telemetry.Endpoint,
		Enabled:     cfg.Telemetry.Enabled,
		ServiceName: cfg.Telemetry.ServiceName,
	}
	shutdownTracing, err := telemetry.Setup(ctx, tel)
	if err != nil {
		return err
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(flushCtx); err != nil {
			slog.Warn("failed to flush traces", "error", err)
		}
	}()

	g, gctx := errgroup.WithContext(ctx)

	clk := clock.New()

	rooms, err := buildRoomRepository(gctx, g, cfg, clk)
	if err != nil {
		return err
	}

	journalStore, err := journal.OpenSQLite(cfg.Journal.Path)
	if err != nil {
		return err
	}
	defer func() {
		_ = journalStore.Close()
	}()

	narrator, err := narrative.NewGemini(ctx, &narrative.Config{
		APIKey:      cfg.Gemini.APIKey,
		BaseURL:     cfg.Gemini.BaseURL,
		TextModel:   cfg.Gemini.TextModel,
		ImageModel:  cfg.Gemini.ImageModel,
		Language:    cfg.Gemini.Language,
		HTTPTimeout: cfg.Gemini.Timeout,
	})
	if err != nil {
		return fmt.Errorf("failed to create narrator: %w", err)
	}

	engine, err := rpgtoolkit.NewAdapter(&rpgtoolkit.AdapterConfig{DiceRoller: dice.DefaultRoller})
	if err != nil {
		return fmt.Errorf("failed to create engine: %w", err)
	}

	authenticator, err := auth.New(&auth.Config{
		Secret:      []byte(cfg.Auth.Secret),
		TTL:         cfg.Auth.TokenTTL,
		Clock:       clk,
		IDGenerator: idgen.NewUUID("player"),
	})
	if err != nil {
		return fmt.Errorf("failed to create authenticator: %w", err)
	}

	orchestrator, err := session.NewOrchestrator(&session.Config{
		RoomRepo:          rooms,
		JournalRepo:       journalStore,
		Narrator:          narrator,
		Engine:            engine,
		TokenIssuer:       authenticator,
		RoomCodeGenerator: idgen.NewRoomCode(entities.RoomCodeLength),
		Clock:             clk,
		GenerationTimeout: cfg.Gemini.Timeout,
	})
	if err != nil {
		return fmt.Errorf("failed to create session orchestrator: %w", err)
	}

	handler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{
		SessionService: orchestrator,
		Authenticator:  authenticator,
	})
	if err != nil {
		return fmt.Errorf("failed to create tales handler: %w", err)
	}

	srv, err := server.New(&server.Config{
		Handler:       handler,
		Authenticator: authenticator,
		Logger:        logger,
		Tracing:       tel.Active(),
	})
	if err != nil {
		return err
	}

	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.Port))
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}

	g.Go(func() error {
		slog.Info("gRPC server starting", "port", cfg.Port, "redis", cfg.Redis.URL != "")
		if err := srv.Serve(lis); err != nil {
			return fmt.Errorf("failed to serve: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		slog.Info("shutting down gRPC server")
		gracefulStop(srv)
		return nil
	})

	return g.Wait()
}

// buildRoomRepository picks Redis when a URL is configured and the in-memory
// store otherwise. The in-memory store gets a janitor that expires idle rooms.
func buildRoomRepository(ctx context.Context, g *errgroup.Group, cfg *config.Config, clk clock.Clock) (room.Repository, error) {
	if cfg.Redis.URL != "" {
		client, err := redisclient.NewClientFromURL(cfg.Redis.URL, &redisclient.Options{
			PoolSize: cfg.Redis.PoolSize,
		})
		if err != nil {
			return nil, err
		}
		if err := client.Ping(ctx).Err(); err != nil {
			return nil, fmt.Errorf("failed to reach redis: %w", err)
		}
		g.Go(func() error {
			<-ctx.Done()
			return client.Close()
		})

		return room.NewRedisRepository(&room.Config{
			Client:       client,
			Clock:        clk,
			TTL:          cfg.Rooms.TTL,
			PollInterval: cfg.Rooms.PollInterval,
		})
	}

	repo, err := room.NewInMemoryRepository(&room.InMemoryConfig{
		EventBus: events.NewBus(),
		Clock:    clk,
		TTL:      cfg.Rooms.TTL,
	})
	if err != nil {
		return nil, err
	}

	g.Go(func() error {
		ticker := time.NewTicker(cfg.Rooms.JanitorPeriod)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return nil
			case <-ticker.C:
				if n := repo.Expire(ctx); n > 0 {
					slog.Info("expired idle rooms", "count", n)
				}
			}
		}
	})

	return repo, nil
}

func gracefulStop(srv *server.Server) {
	srv.Health.Shutdown()

	stopped := make(chan struct{})
	go func() {
		srv.GracefulStop()
		close(stopped)
	}()

	select {
	case <-time.After(shutdownTimeout):
		slog.Warn("graceful shutdown timeout exceeded, forcing stop")
		srv.Stop()
	case <-stopped:
		slog.Info("server stopped gracefully")
	}
}
