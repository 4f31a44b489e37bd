package main

import (
	"log"
	"os"

	"github.com/mesmerizedfloppa/shop-analytics/cmd/shop-analytics/app"
	"github.com/mesmerizedfloppa/shop-analytics/configs"
)

func main() {
	env := os.Getenv("APP_ENV") // dev | staging | prod
	if env == "" {
		env = "dev"
	}

	cfg, err := configs.Load("configs", env)
	if err != nil {
		log.Fatal(err)
	}

	app, err := app.InitWithConfig(cfg)
	if err != nil {
		log.Fatal(err)
	}

	log.Printf("shop-analytics (%s) listening on %s", env, cfg.App.HTTPAddr)
	if err := app.Router.Run(cfg.App.HTTPAddr); err != nil {
		log.Fatal(err)
	}
}
