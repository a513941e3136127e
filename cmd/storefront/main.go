package main

import (
	"log"
	"os"

	"petbloom/internal/cli"

	"github.com/joho/godotenv"
)

func main() {
	// Optional .env, same lookup the demo server uses.
	_ = godotenv.Load()
	log.SetFlags(0)

	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
