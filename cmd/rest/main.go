package main

import (
	"log"

	"nutrichat-be/internal/bootstrap"
	"nutrichat-be/internal/config"
	"nutrichat-be/internal/server"
	"nutrichat-be/pkg/database"
)

func main() {
	// 1. Load Configuration
	cfg := config.Load()

	// 2. Initialize Database
	gormDB, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}

	// 3. Bootstrap Dependencies (Container)
	container := bootstrap.NewContainer(gormDB, cfg)
	defer container.Logger.Sync()

	// 4. Initialize and run Server
	srv := server.New(cfg, container)
	log.Fatal(srv.Run())
}
