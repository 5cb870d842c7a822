package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/bright-coral-crab/tooldeck/internal/api"
	"github.com/bright-coral-crab/tooldeck/internal/api/health"
	"github.com/bright-coral-crab/tooldeck/internal/metrics"
	"github.com/bright-coral-crab/tooldeck/internal/storage"
	"github.com/bright-coral-crab/tooldeck/internal/store"
	"github.com/bright-coral-crab/tooldeck/pkg/config"
)

var (
	configFile string
	httpAddr   string
	ephemeral  bool
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "tooldeck-server",
	Short: "ToolDeck Server - Admin backend for the AI tools directory",
	Long: `ToolDeck Server exposes the admin API for the curated AI tools
directory: the tool catalog, the user roster, and site settings, all
gated by role-based permissions.`,
	RunE: runServer,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("tooldeck-server %s\n", config.Version)
		fmt.Printf("  commit: %s\n", config.Commit)
		fmt.Printf("  built:  %s\n", config.BuildTime)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "config file path (optional)")
	rootCmd.PersistentFlags().StringVarP(&httpAddr, "address", "a", "", "HTTP listen address")
	rootCmd.PersistentFlags().BoolVar(&ephemeral, "ephemeral", false, "keep all data in memory (no database file)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, args []string) error {
	var cfg *Config

	if configFile != "" {
		var err error
		cfg, err = LoadConfig(configFile)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
	} else {
		cfg = DefaultConfig()
	}

	if httpAddr != "" {
		cfg.Server.Address = httpAddr
	}
	cfg.Verbose = verbose

	jwtSecret := os.Getenv("TOOLDECK_JWT_SECRET")
	if jwtSecret == "" {
		return fmt.Errorf("TOOLDECK_JWT_SECRET environment variable is required")
	}

	var kv storage.KV
	var sqliteKV *storage.SQLiteKV
	if ephemeral {
		kv = storage.NewMemoryKV()
		log.Printf("running ephemeral: data will not survive a restart")
	} else {
		// Auto-create data directory
		dbDir := filepath.Dir(cfg.Database.Path)
		if err := os.MkdirAll(dbDir, 0750); err != nil {
			return fmt.Errorf("create data directory: %w", err)
		}

		sqliteKV = storage.NewSQLiteKV(cfg.Database.Path)
		if err := sqliteKV.Open(); err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		kv = sqliteKV
		log.Printf("database initialized at %s", cfg.Database.Path)
	}
	defer kv.Close()

	st := store.New(kv)
	if err := st.Load(cmd.Context()); err != nil {
		return fmt.Errorf("load store: %w", err)
	}

	ttl, err := cfg.AccessTokenTTL()
	if err != nil {
		return fmt.Errorf("parse token ttl: %w", err)
	}

	apiCfg := &api.Config{
		Address:          cfg.Server.Address,
		JWTSecret:        []byte(jwtSecret),
		AccessTokenTTL:   ttl,
		RateLimitPerIP:   cfg.API.RateLimitPerIP,
		RateLimitPerUser: cfg.API.RateLimitPerUser,
		Verbose:          cfg.Verbose,
	}

	srv, err := api.New(apiCfg, st, kv)
	if err != nil {
		return fmt.Errorf("create server: %w", err)
	}
	if sqliteKV != nil {
		srv.RegisterHealthChecker(health.NewSQLiteChecker(sqliteKV.DB()))
	}
	srv.RegisterHealthChecker(health.NewStoreChecker(st.Loaded))

	metricsSrv := metrics.NewServer(cfg.Server.MetricsAddress)
	metrics.SetBuildInfo(config.Version, config.Commit, config.BuildTime)

	// Setup signal handling
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		sig := <-sigChan
		log.Printf("received signal %v, shutting down...", sig)
		cancel()
	}()

	log.Printf("starting tooldeck-server %s", config.Version)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return srv.Run(gctx)
	})
	g.Go(func() error {
		return metricsSrv.Start()
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		return metricsSrv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		return fmt.Errorf("run server: %w", err)
	}

	log.Printf("server stopped")
	return nil
}
