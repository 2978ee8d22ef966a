package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/schoolpulse/surveyhub/app"
	"github.com/schoolpulse/surveyhub/config"
	"github.com/schoolpulse/surveyhub/database"
	"github.com/schoolpulse/surveyhub/httpx"
	"github.com/schoolpulse/surveyhub/log"
	"github.com/schoolpulse/surveyhub/routes"
	"github.com/schoolpulse/surveyhub/survey"
)

func main() {
	cfg, err := config.ParseFlags()
	if err != nil {
		log.Fatal("main.config:", err)
	}
	if cfg.Debug {
		log.SetLevel(log.DebugLevel)
	}

	db, err := database.Open(cfg)
	if err != nil {
		log.Fatal("main.db.open:", err)
	}
	defer db.Close()

	surveys := survey.New(db)

	ctx := context.Background()
	if err := surveys.EnsureSchema(ctx); err != nil {
		log.Fatal("main.db.schema:", err)
	}
	if err := surveys.LoadDir(ctx, cfg.DataDir); err != nil {
		log.Fatal("main.load:", err)
	}

	app := app.App{
		DB:           db,
		BearerServer: httpx.NewBearerServer(db, cfg),
		Service:      surveys,
		Config:       cfg,
	}

	handler := routes.Wire(app)

	err = runServer(cfg, handler)
	if !errors.Is(err, http.ErrServerClosed) {
		log.Fatal("main.server:", err)
	}
}

func runServer(cfg config.Config, handler http.Handler) error {
	srv := &http.Server{
		Addr:         cfg.Addr,
		Handler:      handler,
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	log.Info("Listening on " + cfg.Url())
	return srv.ListenAndServe()
}
