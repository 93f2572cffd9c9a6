package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/iudanet/versioneditor/internal/config"
	"github.com/iudanet/versioneditor/internal/server"
	"github.com/iudanet/versioneditor/internal/server/metrics"
	"github.com/iudanet/versioneditor/internal/server/storage"
	"github.com/iudanet/versioneditor/internal/server/storage/boltdb"
	"github.com/iudanet/versioneditor/internal/server/storage/sqlite"
	"github.com/iudanet/versioneditor/internal/server/versions"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var showVersion bool

	cmd := &cobra.Command{
		Use:           "versioneditor-server",
		Short:         "Version history server for the text editor",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if showVersion {
				printVersion()
				return nil
			}

			cfg, err := config.LoadServer(cmd.Flags())
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				return err
			}

			logger := config.NewLogger(cfg.Log, os.Stdout)
			slog.SetDefault(logger)

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			if err := run(ctx, logger, cfg); err != nil {
				logger.Error("server failed", slog.Any("error", err))
				return err
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&showVersion, "version", false, "Show version information")
	config.ServerFlags(cmd.Flags())

	return cmd
}

func run(ctx context.Context, logger *slog.Logger, cfg *config.Server) error {
	logger.Info("Versioneditor server starting",
		slog.String("version", Version),
		slog.String("storage_driver", cfg.Storage.Driver),
		slog.String("storage_path", cfg.Storage.Path),
		slog.String("save_mode", cfg.Versions.SaveMode))

	st, err := openStorage(ctx, cfg.Storage)
	if err != nil {
		return err
	}
	defer func() {
		if err := st.Close(); err != nil {
			logger.Error("failed to close storage", slog.Any("error", err))
		}
	}()

	m := metrics.New()

	svc := versions.NewService(logger, st,
		versions.WithRecorder(m),
		versions.WithOptions(versions.Options{
			SaveMode:       versions.SaveMode(cfg.Versions.SaveMode),
			MaxTextBytes:   cfg.Versions.MaxTextBytes,
			MaxSaveRetries: cfg.Versions.MaxSaveRetries,
		}),
	)
	if err := svc.Init(ctx); err != nil {
		return fmt.Errorf("failed to initialize version service: %w", err)
	}

	return server.New(logger, cfg, svc, m, Version).Run(ctx)
}

func openStorage(ctx context.Context, cfg config.StorageConfig) (storage.VersionStorage, error) {
	switch cfg.Driver {
	case "bolt":
		st, err := boltdb.New(ctx, cfg.Path)
		if err != nil {
			return nil, fmt.Errorf("failed to open bolt storage: %w", err)
		}
		return st, nil
	default:
		st, err := sqlite.New(ctx, cfg.Path)
		if err != nil {
			return nil, fmt.Errorf("failed to open sqlite storage: %w", err)
		}
		return st, nil
	}
}

func printVersion() {
	fmt.Printf("Versioneditor Server\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
