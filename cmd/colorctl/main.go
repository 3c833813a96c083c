package main

import (
	"github.com/joho/godotenv"

	"color-chooser/internal/cli"
)

func main() {
	_ = godotenv.Load()
	cli.Execute()
}
