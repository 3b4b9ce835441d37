package cmd

import (
	"github.com/spf13/cobra"

	"github.com/iterary/plastron/pkg/config"
	"github.com/iterary/plastron/pkg/logging"
	"github.com/iterary/plastron/pkg/schedule"
	"github.com/iterary/plastron/pkg/server"
	"github.com/iterary/plastron/pkg/soc"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the schedule generation REST API",
	Long:  `Start an HTTP server exposing schedule generation as JSON and plain-text endpoints.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		levelStr, _ := cmd.Flags().GetString("log-level")
		format, _ := cmd.Flags().GetString("log-format")
		logger := logging.NewLogger(logging.ParseLevel(levelStr), format)

		srvCfg := server.DefaultConfig()
		if cfg, err := config.Load(); err == nil {
			if cfg.ListenAddr != "" {
				srvCfg.Addr = cfg.ListenAddr
			}
			srvCfg.APIKey = cfg.APIKey
			srvCfg.KeyRequired = cfg.KeyRequired
		}

		if cmd.Flags().Changed("addr") {
			srvCfg.Addr, _ = cmd.Flags().GetString("addr")
		}
		if cmd.Flags().Changed("api-key") {
			srvCfg.APIKey, _ = cmd.Flags().GetString("api-key")
			srvCfg.KeyRequired = srvCfg.APIKey != ""
		}

		srv := server.New(srvCfg, soc.NewClient(), schedule.DefaultParams(), logger)
		return srv.ListenAndServe()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringP("addr", "a", ":8000", "Listen address")
	serveCmd.Flags().String("api-key", "", "Require this X-API-Key header on generation endpoints")
	serveCmd.Flags().String("log-level", "info", "Log level (debug, info, warn, error)")
	serveCmd.Flags().String("log-format", "text", "Log format (text or json)")
}
