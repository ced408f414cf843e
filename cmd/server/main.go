package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"

	"github.com/dmitrijs2005/coderefine/internal/server"
	"github.com/dmitrijs2005/coderefine/internal/server/config"
)

func main() {

	// .env is optional; GROQ_API_KEY may come from the real environment
	_ = godotenv.Load()

	ctx := context.Background()
	cfg := config.LoadConfig()
	app, err := server.NewApp(ctx, cfg)

	if err != nil {
		log.Printf("%v", err)
		return
	}

	app.Run(ctx)

}
