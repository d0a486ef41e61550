package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/ducat-dev/ducat/internal/commands"
)

func main() {
	// Optional .env for DUCAT_CONFIG and friends; absence is fine.
	_ = godotenv.Load()

	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
