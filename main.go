package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
	zero "github.com/rs/zerolog/log"

	"github.com/estuaire/vidfed/internal/client"
	"github.com/estuaire/vidfed/internal/config"
	db "github.com/estuaire/vidfed/internal/db/impl"
	"github.com/estuaire/vidfed/internal/gateway"
	"github.com/estuaire/vidfed/internal/health"
	"github.com/estuaire/vidfed/internal/inbox"
	"github.com/estuaire/vidfed/internal/initialization"
	"github.com/estuaire/vidfed/internal/queue"
	"github.com/estuaire/vidfed/internal/resolver"
	"github.com/estuaire/vidfed/internal/utils"
	"github.com/estuaire/vidfed/internal/web"

	_ "github.com/mattn/go-sqlite3"
)

func main() {
	zero.Logger = zero.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	cfg, err := config.ReadConfig()
	if err != nil {
		log.Fatal(err)
	}
	if cfg.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	d, err := initialization.OpenDB(cfg.DbUrl)
	if err != nil {
		log.Fatal(err)
	}
	zero.Info().Msg("database connection established")

	q, err := initialization.InitQueue(&cfg)
	if err != nil {
		zero.Fatal().Err(err).Msg("unable to connect with backlite database")
		os.Exit(1)
	}

	if os.Getenv("SETUP") != "" {
		err = initialization.SetupDB(&cfg, d, cfg.MigrationsFolder, cfg.DbUrl)
		if err != nil {
			log.Fatal(err)
		}
	}

	ctx := context.Background()
	dd := db.New(cfg, d)

	if err = initialization.EnsureInstance(ctx, dd, &cfg); err != nil {
		log.Fatal(err)
	}

	pemKey, err := dd.GetPrivateKeyByActorURL(ctx, cfg.Url.String())
	if err != nil {
		zero.Fatal().Err(err).Msg("instance key not found")
		os.Exit(1)
	}
	key, err := utils.ParsePrivateKeyPem(pemKey)
	if err != nil {
		zero.Fatal().Err(err).Send()
		os.Exit(1)
	}

	fragment, _ := url.Parse("#main-key")
	keyId := cfg.Url.ResolveReference(fragment)
	httpClient, err := client.New(dd, &http.Client{}, key, keyId)
	if err != nil {
		zero.Fatal().Err(err).Send()
		os.Exit(1)
	}

	res := resolver.New(dd, httpClient, &cfg)

	tracker := health.New()
	go tracker.Run(ctx, dd, cfg.HealthFlushInterval)

	apQueue := queue.New(ctx, httpClient, q, tracker, res.Resolve)
	gw := gateway.New(dd, httpClient, apQueue, res, &cfg)
	dispatcher := inbox.New(dd, gw, res, &cfg)

	handler := web.New(&cfg, dd, gw, dispatcher)
	router := chi.NewRouter()
	if cfg.Debug {
		router.Use(middleware.Logger)
	}
	handler.Mount(router)

	s := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Port),
		Handler: router,
	}

	zero.Info().Uint16("port", cfg.Port).Msg("started server")
	err = s.ListenAndServe()
	if err != nil {
		log.Fatal(err)
	}
}
