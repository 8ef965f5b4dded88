package cli

import (
	"fmt"

	"github.com/persimmonlabs/PARA-DAP/internal/config"
	"github.com/persimmonlabs/PARA-DAP/internal/logger"
	"github.com/persimmonlabs/PARA-DAP/server"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long: `Start the PARA REST API server over the local database.

Examples:
  para serve
  para serve --listen :9000`,
	RunE: runServe,
}

var serveListen string

func init() {
	serveCmd.Flags().StringVar(&serveListen, "listen", "", "Bind address (default from config)")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		cfg = config.DefaultConfig()
	}

	addr := cfg.ListenAddr
	if serveListen != "" {
		addr = serveListen
	}

	database, st, err := openStore()
	if err != nil {
		return err
	}
	defer func() {
		_ = database.Close()
		logger.Info("database closed")
	}()

	srv := server.New(st)

	fmt.Printf("PARA server listening on %s\n", addr)
	logger.Info("server starting", logger.F("addr", addr))
	return srv.Start(addr)
}
