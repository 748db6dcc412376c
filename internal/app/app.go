package app

import (
	"context"
	"log"
	"net/http"

	"github.com/gkratosBR/Glitch-Arena/internal/config"
)

type App struct {
	ServiceProvider *ServiceProvider
}

func NewApp() *App {
	return &App{}
}

func (s *App) initServiceProvider() {
	s.ServiceProvider = newServiceProvider()
}

func (s *App) Run() error {
	err := config.Load(".env")
	if err != nil {
		log.Printf("Error loading .env file: %v", err)
	}
	s.initServiceProvider()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	r := s.ServiceProvider.Router(ctx)

	// Фоновый расчёт ставок
	go s.ServiceProvider.SettlementService(ctx).Run(ctx)

	log.Printf("starting server at %s", s.ServiceProvider.HTTPCfg().Address())
	err = http.ListenAndServe(s.ServiceProvider.HTTPCfg().Address(), r)
	if err != nil {
		return err
	}
	return err
}
