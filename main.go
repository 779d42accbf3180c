package main

import (
	"log"

	"collection-server/confs"
	"collection-server/db"
	"collection-server/pkg/logging"
	"collection-server/server"
)

func main() {
	// load config
	cfg, err := confs.Load()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	logger := logging.New(cfg.LogLevel)

	// connect to database Postgres
	database, err := db.Connect(cfg)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		return
	}

	// run server
	srv := server.NewServer(database, cfg, logger)
	if err := srv.Start(); err != nil {
		logger.Error("server stopped", "error", err)
	}
}
