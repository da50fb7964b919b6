package main

import (
	"os"

	"github.com/enertrics/storefront-backend/internal/app"
	config "github.com/enertrics/storefront-backend/internal/cfg"
	"github.com/enertrics/storefront-backend/pkg/logger"
)

//	@title			Enertrics Storefront API
//	@version		1.0
//	@description	Backend витрины Enertrics Power: каталог, корзина, блог, контакты и вакансии.
//	@host			localhost:8080
//	@BasePath		/api/v1
func main() {
	log := logger.NewSlogLogger()

	cfg, err := config.Load(log)
	if err != nil {
		log.Errorf(err, "failed to load config")
		os.Exit(1)
	}

	application, err := app.NewApp(cfg, log)
	if err != nil {
		log.Errorf(err, "failed to initialize app")
		os.Exit(1)
	}

	if err := application.Run(); err != nil {
		os.Exit(1)
	}
}
