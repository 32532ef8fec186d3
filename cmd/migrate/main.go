package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/sbexpress/hris-backend-go/internal/config"
	"github.com/sbexpress/hris-backend-go/internal/pkg/database"
)

func main() {
	action := flag.String("action", "up", "migration action: up, down or version")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		os.Exit(1)
	}

	result, err := database.Migrate(cfg.DatabaseURL(), *action)
	if err != nil {
		fmt.Println("Migration failed:", err)
		os.Exit(1)
	}
	fmt.Println(result)
}
