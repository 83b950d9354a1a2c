package app

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/Dhaneyl/course-platform/internal/app/server"
	"github.com/Dhaneyl/course-platform/internal/catalog"
	"github.com/Dhaneyl/course-platform/internal/config"
	"github.com/Dhaneyl/course-platform/internal/delivery/http"
	"github.com/Dhaneyl/course-platform/internal/service"
	"github.com/Dhaneyl/course-platform/internal/service/enrollment"
	"github.com/Dhaneyl/course-platform/internal/service/favorites"
	"github.com/Dhaneyl/course-platform/internal/service/session"
	"github.com/Dhaneyl/course-platform/internal/storage/localstore"
	"github.com/Dhaneyl/course-platform/pkg/logger"
)

func Run(cfg *config.Config) {

	log := logger.New(cfg.Env)
	log.Info("Starting with Env: " + cfg.Env)

	store, err := localstore.Open(cfg.Storage.Path, log)
	if err != nil {
		log.FatalErr("error opening device store", err)
	}

	cat, err := catalog.New(log, cfg.Catalog.Seed)
	if err != nil {
		log.FatalErr("error seeding catalog", err)
	}

	sessionStore := session.New(log, store, cfg.Auth.LoginDelay)
	favoritesStore := favorites.New(log, store)
	enrollmentStore := enrollment.New(log, store, cat, sessionStore)
	tokens := session.NewTokenManager(cfg.Auth.SecretKey, "course-platform", cfg.Auth.TokenTTL)

	u := service.Collection{
		Catalog:        cat,
		Session:        sessionStore,
		Favorites:      favoritesStore,
		Enrollments:    enrollmentStore,
		Tokens:         tokens,
		PageSize:       cfg.Catalog.PageSize,
		SearchDebounce: cfg.Catalog.SearchDebounce,
	}

	r := http.InitRoutes(log, u)

	srv := server.New(cfg.HTTPServer.Address, cfg.HTTPServer.Timeout, cfg.HTTPServer.IdleTimeout, r)
	srv.Start()
	log.Info("listening", "address", cfg.HTTPServer.Address)

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)

	select {
	case s := <-interrupt:
		log.Info("app signal: " + s.String())
	case err := <-srv.Notify():
		log.ErrorErr("server error", err)
	}
	if err := srv.Shutdown(); err != nil {
		log.ErrorErr("shutdown error", err)
	}
}
