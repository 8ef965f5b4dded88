package main

import (
	"log"
	"os"

	"github.com/persimmonlabs/PARA-DAP/internal/config"
	"github.com/persimmonlabs/PARA-DAP/internal/db"
	"github.com/persimmonlabs/PARA-DAP/internal/logger"
	"github.com/persimmonlabs/PARA-DAP/internal/store"
	"github.com/persimmonlabs/PARA-DAP/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		cfg = config.DefaultConfig()
	}

	if err := logger.Init(logger.Config{
		Level:      logger.ParseLevel(cfg.LogLevel),
		FilePath:   cfg.LogFile,
		MaxSize:    10 * 1024 * 1024, // 10MB
		MaxBackups: 5,
		Console:    cfg.LogConsole,
	}); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Close()

	addr := os.Getenv("PARA_LISTEN_ADDR")
	if addr == "" {
		addr = cfg.ListenAddr
	}

	var database *db.DB
	if path := os.Getenv("PARA_DB_PATH"); path != "" {
		database, err = db.Open(path)
	} else if cfg.DBPath != "" {
		database, err = db.Open(cfg.DBPath)
	} else {
		database, err = db.OpenDefault()
	}
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer func() {
		if err := database.Close(); err != nil {
			log.Printf("Error closing database: %v", err)
		}
	}()

	srv := server.New(store.New(database))

	log.Printf("PARA server starting on %s", addr)
	logger.Info("server starting", logger.F("addr", addr))
	if err := srv.Start(addr); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
