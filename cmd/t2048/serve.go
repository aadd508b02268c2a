package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/metrics"
	"github.com/vovakirdan/tui-2048/internal/platform/tui"
	"github.com/vovakirdan/tui-2048/internal/platform/web"
	"github.com/vovakirdan/tui-2048/internal/storage"
	redisstore "github.com/vovakirdan/tui-2048/internal/storage/redis"
)

const shutdownTimeout = 10 * time.Second

var (
	flagSSHAddr     string
	flagHostKey     string
	flagHTTPAddr    string
	flagRedisURL    string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the 2048 SSH server",
	Long: `Start an SSH server that lets users connect and play 2048.

Each SSH connection gets its own session with the menu. Scores are stored
per server in SQLite (all users share the same leaderboard). Games in
progress are saved per SSH user, in SQLite or, with --redis, in Redis so
that several servers can share them.

With --http a status server is started next to the SSH server:
  /healthz             - health of the databases
  /metrics             - Prometheus metrics
  /api/scores/{game}   - leaderboard as JSON
  /api/stats/{game}    - aggregate stats as JSON

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.t2048/host_key

Environment (also read from .env):
  T2048_HTTP_ADDR   - default for --http
  T2048_REDIS_URL   - default for --redis

Examples:
  t2048 serve                             # Listen on :23234 with auto-generated key
  t2048 serve --ssh :2222                 # Listen on port 2222
  t2048 serve --http :8080                # Also serve health, metrics and scores
  t2048 serve --redis redis://localhost:6379/0

Users can connect with:
  ssh localhost -p 23234`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().StringVar(&flagHTTPAddr, "http", "", "HTTP status server address (disabled if empty, env T2048_HTTP_ADDR)")
	serveCmd.Flags().StringVar(&flagRedisURL, "redis", "", "Redis URL for saved games (SQLite if empty, env T2048_REDIS_URL)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(cmd *cobra.Command, _ []string) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "t2048",
	})

	if err := serve(cmd, logger); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func serve(cmd *cobra.Command, logger *log.Logger) error {
	httpAddr := flagOrEnv(cmd, "http", flagHTTPAddr, "T2048_HTTP_ADDR")
	redisURL := flagOrEnv(cmd, "redis", flagRedisURL, "T2048_REDIS_URL")

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("cannot open scores database: %w", err)
	}
	defer store.Close()

	checks := map[string]web.Pinger{"sqlite": store}
	var saves storage.SavedGameStore = store

	if redisURL != "" {
		rcfg := redisstore.DefaultConfig()
		rcfg.URL = redisURL
		rs, err := redisstore.New(rcfg)
		if err != nil {
			return err
		}
		defer rs.Close()
		saves = rs
		checks["redis"] = rs
		logger.Info("saving games in redis")
	}

	m := metrics.New()
	t2048.SetObserver(m)

	sshCfg := tui.DefaultSSHServerConfig()
	sshCfg.Address = flagSSHAddr
	sshCfg.HostKeyPath = flagHostKey
	sshCfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	sshCfg.TickRate = flagFPS

	sshServer, err := tui.NewSSHServer(sshCfg, tui.SSHDeps{
		Scores:   store,
		Saves:    saves,
		Sessions: m.SSHSessions,
		Logger:   logger.WithPrefix("t2048-ssh"),
	})
	if err != nil {
		return err
	}

	var httpServer *web.Server
	if httpAddr != "" {
		httpLogger := logger.WithPrefix("t2048-http")
		router := web.NewRouter(web.RouterConfig{
			Logger:  httpLogger,
			Scores:  store,
			Metrics: m.Handler(),
			Checks:  checks,
		})
		httpCfg := web.DefaultServerConfig()
		httpCfg.Addr = httpAddr
		httpServer = web.NewServer(router, httpCfg, httpLogger)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Printf("Starting 2048 SSH server on %s\n", sshCfg.Address)
	fmt.Println("Press Ctrl+C to stop")

	g, gctx := errgroup.WithContext(ctx)
	g.Go(sshServer.ListenAndServe)
	if httpServer != nil {
		g.Go(httpServer.Start)
	}

	// Either a signal or a failed server stops everything
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		var errs []error
		if httpServer != nil {
			errs = append(errs, httpServer.Shutdown(shutdownCtx))
		}
		errs = append(errs, sshServer.Shutdown(shutdownCtx))
		return errors.Join(errs...)
	})

	return g.Wait()
}

// flagOrEnv returns the flag value when set on the command line,
// otherwise the environment variable.
func flagOrEnv(cmd *cobra.Command, name, value, env string) string {
	if cmd.Flags().Changed(name) {
		return value
	}
	if v := os.Getenv(env); v != "" {
		return v
	}
	return value
}
