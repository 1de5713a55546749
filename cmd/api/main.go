package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/placegram/places-api/internal/adapters/httpapi"
	memcardrepo "github.com/placegram/places-api/internal/adapters/memory/cardrepo"
	memuserrepo "github.com/placegram/places-api/internal/adapters/memory/userrepo"
	postgres "github.com/placegram/places-api/internal/adapters/postgres"
	pgcardrepo "github.com/placegram/places-api/internal/adapters/postgres/cardrepo"
	pguserrepo "github.com/placegram/places-api/internal/adapters/postgres/userrepo"
	"github.com/placegram/places-api/internal/app/cards"
	"github.com/placegram/places-api/internal/app/users"
	"github.com/placegram/places-api/internal/platform/auth/password"
	"github.com/placegram/places-api/internal/platform/auth/token"
	platformclock "github.com/placegram/places-api/internal/platform/clock"
	"github.com/placegram/places-api/internal/platform/config"
	cardrepoport "github.com/placegram/places-api/internal/ports/out/cardrepo"
	userrepoport "github.com/placegram/places-api/internal/ports/out/userrepo"
)

func main() {
	log := slog.New(slog.NewJSONHandler(os.Stderr, nil))
	slog.SetDefault(log)

	srvCfg, err := config.LoadServerConfigFromEnv()
	if err != nil {
		log.Error("invalid server config", "error", err)
		os.Exit(1)
	}
	tokenCfg, err := config.LoadTokenConfigFromEnv()
	if err != nil {
		log.Error("invalid token config", "error", err)
		os.Exit(1)
	}

	clk := platformclock.NewSystemClock()
	codec := token.NewCodecWithClock(tokenCfg.Secret, tokenCfg.TTL, clk)

	var (
		userRepo userrepoport.Repository
		cardRepo cardrepoport.Repository
		cleanup  func()
	)

	switch srvCfg.StorageBackend {
	case "postgres":
		pool, err := postgres.NewPool(context.Background(), srvCfg.DatabaseURL, postgres.PoolOptions{})
		if err != nil {
			log.Error("invalid postgres config", "error", err)
			os.Exit(1)
		}
		cleanup = pool.Close

		userRepo = pguserrepo.NewRepo(pool)
		cardRepo = pgcardrepo.NewRepo(pool)
	default:
		userRepo = memuserrepo.NewRepo()
		cardRepo = memcardrepo.NewRepo()
	}

	if cleanup != nil {
		defer cleanup()
	}

	userSvc := users.NewService(userRepo, password.NewBcryptHasher(), codec)
	cardSvc := cards.NewService(cardRepo, clk)

	api := httpapi.NewServer(userSvc, cardSvc, log)
	handler := httpapi.NewRouter(api, httpapi.RouterOptions{
		AuthMiddleware: httpapi.NewAuthMiddleware(codec, log),
	})

	srv := &http.Server{
		Addr:              ":" + srvCfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	// Graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Info("api listening", "port", srvCfg.Port, "storage", srvCfg.StorageBackend)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("listen failed", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)
}
