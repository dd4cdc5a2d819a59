package main

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/lockify/internal/buildinfo"
	"github.com/dmitrijs2005/lockify/internal/server"
	"github.com/dmitrijs2005/lockify/internal/server/config"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	app, err := server.NewApp(ctx, cfg)

	if err != nil {
		log.Printf("%v", err)
		os.Exit(1)
	}

	app.Run(ctx)

}
