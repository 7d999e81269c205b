// Package main is the anyventure command: the companion gRPC server, the
// catalog seeder and a terminal client for both
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/anyventure/companion-api/cmd/server/client"
	"github.com/anyventure/companion-api/internal/config"
)

var logLevel string

var rootCmd = &cobra.Command{
	Use:   "anyventure",
	Short: "Anyventure campaign companion",
	Long: `Anyventure companion serves the spell, item and bestiary catalogs,
character spellbooks and skill check rolls over gRPC.

Configuration is read from ANYVENTURE_* environment variables; flags win.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "debug, info, warn or error (overrides ANYVENTURE_LOG_LEVEL)")

	rootCmd.AddCommand(serverCmd, seedCmd, client.ClientCmd)
}

// loadConfig reads the environment, then applies any flags set on cmd
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("port") {
		cfg.GRPCPort = grpcPort
	}
	if flags.Changed("redis") {
		cfg.RedisAddr = redisAddr
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = logLevel
	}

	return cfg, cfg.Validate()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "anyventure: %v\n", err)
		os.Exit(1)
	}
}
