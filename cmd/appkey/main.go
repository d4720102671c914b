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

	"github.com/appkey-demo/appkey-go/internal/api"
	"github.com/appkey-demo/appkey-go/internal/authenticator"
	"github.com/appkey-demo/appkey-go/internal/config"
	"github.com/appkey-demo/appkey-go/internal/logging"
	"github.com/appkey-demo/appkey-go/internal/orchestrator"
	"github.com/appkey-demo/appkey-go/internal/session"
	"github.com/appkey-demo/appkey-go/internal/state"
	"golang.org/x/sync/errgroup"
)

var Version = "dev"

// expiryCheckInterval is how often the watcher compares the access
// token's exp claim against the clock.
const expiryCheckInterval = 30 * time.Second

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := logging.NewLogger(cfg.Environment, cfg.LogLevel)
	logger.Info("appkey starting",
		slog.String("version", Version),
		slog.String("api", cfg.APIURL),
		slog.String("rp", cfg.RelyingPartyID),
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, err := state.Load(cfg.StatePath)
	if err != nil {
		return fmt.Errorf("loading state: %w", err)
	}
	defer store.Close()

	appToken := cfg.AppToken
	if override := store.AppToken(); override != "" {
		logger.Debug("using persisted app-token override")
		appToken = override
	}

	client := api.NewClient(cfg.APIURL, appToken, &http.Client{Timeout: cfg.HTTPTimeout})
	virtual := authenticator.NewVirtual("AppKey Demo", cfg.RelyingPartyID, cfg.Origin)
	sess := session.New(logger)
	orch := orchestrator.New(client, virtual, sess, store, logger, cfg.RelyingPartyID, cfg.Locale)

	app, err := orch.LoadApp(ctx)
	if err != nil {
		return err
	}

	if user, err := orch.Restore(ctx); err != nil {
		return err
	} else if user != nil {
		logger.Info("session restored", slog.String("handle", user.Handle))
	}

	shell := newREPL(orch, app, os.Stdin, os.Stdout, logger)

	// The watcher stops when the REPL ends, not only on signals.
	watchCtx, cancelWatch := context.WithCancel(ctx)
	defer cancelWatch()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer cancelWatch()
		return shell.Run(gctx)
	})

	g.Go(func() error {
		watchExpiry(watchCtx, orch, logger)
		return nil
	})

	return g.Wait()
}

// watchExpiry logs the user out locally once the access token's exp
// claim has passed. The server would reject the token anyway; this
// keeps the local state honest.
func watchExpiry(ctx context.Context, orch *orchestrator.Orchestrator, logger *slog.Logger) {
	ticker := time.NewTicker(expiryCheckInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		token := orch.Session().Token()
		if token == "" {
			continue
		}

		exp, err := orchestrator.TokenExpiry(token)
		if err != nil {
			logger.Debug("cannot read token expiry", slog.String("error", err.Error()))
			continue
		}

		if time.Now().After(exp) {
			logger.Warn("access token expired, logging out")

			if err := orch.Logout(); err != nil {
				logger.Warn("expiry logout failed", slog.String("error", err.Error()))
			}
		}
	}
}
