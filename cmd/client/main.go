package main

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/activityboard/internal/client/app"
	"github.com/dmitrijs2005/activityboard/internal/client/config"
)

func main() {

	ctx := context.Background()
	cfg, err := config.LoadConfig(os.Args[1:])
	if err != nil {
		log.Fatalf("%v", err)
	}

	a, err := app.NewApp(cfg)
	if err != nil {
		log.Fatalf("%v", err)
	}

	if err := a.Run(ctx); err != nil {
		log.Fatalf("%v", err)
	}
}
