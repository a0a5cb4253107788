package main

import (
	"os"

	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/cobra"

	"craftly/internal/config"
	"craftly/internal/logger"
)

// @title Craftly API
// @version 1.0
// @description Admin API of the Craftly file-backed CMS.
// @BasePath /__craftly_api
func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "craftly",
		Short: "File-backed CMS serving an admin API and public pages",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cfg := config.Load()
			logger.Init(logger.Config{
				Level:  logger.ParseLevel(cfg.Log.Level),
				Format: cfg.Log.Format,
				Output: os.Stdout,
			})
		},
		SilenceUsage: true,
		RunE:         runServe,
	}

	root.AddCommand(newServeCmd(), newRoutesCmd(), newLangsCmd())
	return root
}
