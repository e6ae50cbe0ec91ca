package main

import (
	"errors"
	"net/http"
	"time"

	"github.com/rnbwlabs/survey/app"
	"github.com/rnbwlabs/survey/config"
	"github.com/rnbwlabs/survey/log"
	"github.com/rnbwlabs/survey/mail"
	"github.com/rnbwlabs/survey/routes"
	"github.com/rnbwlabs/survey/survey"
)

func main() {
	cfg, err := config.ParseFlags()
	if err != nil {
		log.Fatal("main.config:", err)
	}
	if cfg.Debug {
		log.SetLevel(log.DebugLevel)
	}

	// a schema broken enough to render a broken control must never
	// reach a visitor
	if err := survey.Schema.Check(); err != nil {
		log.Fatal("main.schema:", err)
	}

	sender := mail.NewSMTPSender(mail.SMTPConfig{
		Host:     cfg.EmailHost,
		Port:     cfg.EmailPort,
		Username: cfg.EmailUser,
		Password: cfg.EmailPassword,
	})

	app := app.App{
		Config: cfg,
		Sender: sender,
		Schema: survey.Schema,
		Rules:  survey.NewRuleSet(survey.Schema),
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
